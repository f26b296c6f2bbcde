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

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	date   string
	period string
	ledger string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the performance breakdown per period" }
func (*breakdownCmd) Usage() string {
	return `scs breakdown [-d <date>] [-p <period>] [-l <ledger>]

  Attributes the change in portfolio value over each reporting period (1d, 1w,
  1m, 3m, 6m, 1y, ytd, itd) between external flows, income, and gains. With -p
  a single period is reported in detail.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "End date of the reporting periods.")
	f.StringVar(&c.period, "p", "", "Single period to detail (e.g. 1m, ytd).")
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.period != "" {
		period, err := scout.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.RenderBreakdown(engine.Breakdown(period, on)))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderBreakdowns(engine.Breakdowns(on), on))
	return subcommands.ExitSuccess
}
