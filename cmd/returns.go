package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/TomaszMurek1/scout"
	"github.com/TomaszMurek1/scout/renderer"
)

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	date   string
	ledger string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display time- and money-weighted returns per period" }
func (*returnsCmd) Usage() string {
	return `scs returns [-d <date>] [-l <ledger>]

  Reports the time-weighted return of the portfolio and of the securities
  sleeve, and the money-weighted return, for each reporting period ending at
  the given date. A period with no usable data reports 0.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "End date of the reporting periods.")
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := scout.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine, err := newEngine(c.ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderReturns(engine.Returns(on), on))
	return subcommands.ExitSuccess
}
