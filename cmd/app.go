// Package cmd implements the CLI application to record transactions, refresh
// quotes, and report on a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/TomaszMurek1/scout"
	"github.com/TomaszMurek1/scout/renderer"
)

// Commands is the list of all subcommands; a main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&valuationCmd{},
	&breakdownCmd{},
	&returnsCmd{},
	&holdingsCmd{},
	&updateCmd{},
	&fmtCmd{},

	&buyCmd{},
	&sellCmd{},
	&depositCmd{},
	&withdrawCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// loaded before the flag defaults below read the environment.
var _ = godotenv.Load()

var (
	portfolioPath = flag.String("portfolio-path", envOr("SCOUT_PORTFOLIO", "."), "Path to the folder containing ledger files (JSONL format)")
	marketFile    = flag.String("market-file", envOr("SCOUT_MARKET", "market.jsonl"), "Path to the market data file (JSONL format)")
	baseCurrency  = flag.String("currency", envOr("SCOUT_CURRENCY", "PLN"), "Reporting currency of the portfolio")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PortfolioPath returns the folder holding the ledger files.
func PortfolioPath() string { return *portfolioPath }

// DecodeLedger loads the ledger matching the name, or the single default one.
func DecodeLedger(name string) (*scout.Ledger, error) {
	return scout.FindLedger(*portfolioPath, name)
}

// DecodeLedgers loads all ledgers matching the name (all of them when empty).
func DecodeLedgers(name string) ([]*scout.Ledger, error) {
	return scout.FindLedgers(*portfolioPath, name)
}

// DecodeMarketData loads the market data file, empty when missing.
func DecodeMarketData() (*scout.MarketData, error) {
	return scout.LoadMarketData(*marketFile)
}

// newEngine loads the ledger and market data and builds the valuation engine.
func newEngine(ledgerName string) (*scout.Engine, error) {
	ledger, err := DecodeLedger(ledgerName)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	market, err := DecodeMarketData()
	if err != nil {
		return nil, fmt.Errorf("could not load market data: %w", err)
	}
	return scout.NewEngine(ledger, market, *baseCurrency)
}

// recordTransaction validates the transaction and appends it to the ledger file.
func recordTransaction(ledgerName string, tx scout.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger(ledgerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := scout.SaveLedger(*portfolioPath, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s transaction in ledger %q\n", tx.What(), ledger.Name())
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	if err := renderer.Print(os.Stdout, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
	}
}
