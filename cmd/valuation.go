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

// valuationCmd holds the flags for the 'valuation' subcommand.
type valuationCmd struct {
	date   string
	ledger string
}

func (*valuationCmd) Name() string     { return "valuation" }
func (*valuationCmd) Synopsis() string { return "display the portfolio valuation at a date" }
func (*valuationCmd) Usage() string {
	return `scs valuation [-d <date>] [-l <ledger>]

  Values every open position at the given date using the most recent quote at
  or before that date, and reports totals in the portfolio currency. Holdings
  without a usable quote are listed but excluded from the totals.
`
}

func (c *valuationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "Date of the valuation.")
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *valuationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderValuation(engine.Valuation(on)))
	return subcommands.ExitSuccess
}
