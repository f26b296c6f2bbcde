// Package renderer turns engine reports into markdown, and markdown into
// styled terminal output.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	// pct formats a decimal return as a signed percentage.
	"pct": func(v float64) string { return fmt.Sprintf("%+.2f%%", 100*v) },
	// rate formats an exchange rate with enough digits to be useful.
	"rate": func(v float64) string { return fmt.Sprintf("%.4f", v) },
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials. Errors are rendered into the output rather than
// returned: a broken template is a bug the report should surface, not hide.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// Print renders a markdown report for the terminal, styled to the detected
// theme. When styling is impossible (e.g. no usable terminal profile) the raw
// markdown is written instead, so the report is never lost.
func Print(w io.Writer, markdown string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			_, werr := io.WriteString(w, out)
			return werr
		}
	}
	_, werr := io.WriteString(w, markdown)
	return werr
}
