package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/TomaszMurek1/scout"
	"github.com/TomaszMurek1/scout/feed"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	ledger string
	pairs  string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch the latest quotes and exchange rates" }
func (*updateCmd) Usage() string {
	return `scs update [-l <ledger>] [-pairs <FROM-TO,FROM-TO>]

  Fetches the latest closing price of every ticker traded in the ledger, and
  the latest exchange rate of the given pairs, and appends them to the market
  data file. A failing symbol is skipped, not fatal.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger whose tickers are refreshed. Defaults to the only ledger if one exists.")
	f.StringVar(&c.pairs, "pairs", "", "Comma-separated currency pairs to refresh (e.g. USD-PLN,EUR-PLN).")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}

	client := feed.NewClient()
	client.UpdatePrices(market, ledger)
	if c.pairs != "" {
		client.UpdateRates(market, strings.Split(c.pairs, ",")...)
	}

	if err := scout.SaveMarketData(*marketFile, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Market data updated in %s\n", *marketFile)
	return subcommands.ExitSuccess
}
