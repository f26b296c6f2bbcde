package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/TomaszMurek1/scout"
)

type fmtCmd struct {
	ledger string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `scs fmt [-l <ledger>]

  Validates and formats the ledger files. Each transaction is re-validated,
  quick fixes are applied (missing ids, missing dates), and the file is
  written back sorted by date in canonical JSONL form.
  By default all ledgers are formatted in-place. Use -l for a single one.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to format. Formats all by default.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledgers, err := DecodeLedgers(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(ledgers) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no ledgers found to format.\n")
		return subcommands.ExitSuccess
	}

	for _, ledger := range ledgers {
		if err := scout.SaveLedger(PortfolioPath(), ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", ledger.Name(), err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatted ledger %q.\n", ledger.Name())
	}
	return subcommands.ExitSuccess
}
