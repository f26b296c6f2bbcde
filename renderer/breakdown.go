package renderer

import "github.com/TomaszMurek1/scout"

// RenderBreakdown renders the performance attribution of one period to a
// markdown string.
func RenderBreakdown(b *scout.Breakdown) string {
	partials := map[string]string{
		"breakdown_flows":    "breakdown_flows.md",
		"breakdown_pnl":      "breakdown_pnl.md",
		"breakdown_invested": "breakdown_invested.md",
	}
	return renderTemplate("breakdown", "breakdown.md", partials, b)
}

// RenderBreakdowns renders a one-line-per-period overview of the breakdowns.
func RenderBreakdowns(all map[scout.Period]*scout.Breakdown, asOf scout.Date) string {
	data := struct {
		Date       scout.Date
		Breakdowns map[scout.Period]*scout.Breakdown
	}{asOf, all}
	return renderTemplate("breakdowns", "breakdowns.md", nil, data)
}

// RenderReturns renders the per-period return measures to a markdown string.
func RenderReturns(all map[scout.Period]scout.Returns, asOf scout.Date) string {
	data := struct {
		Date    scout.Date
		Returns map[scout.Period]scout.Returns
	}{asOf, all}
	return renderTemplate("returns", "returns.md", nil, data)
}
