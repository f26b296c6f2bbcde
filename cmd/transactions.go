package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/TomaszMurek1/scout"
)

// resolveRate returns the conversion rate to record on a transaction. An
// explicit rate wins; otherwise the most recent market rate at the
// transaction date is used (1 for the base currency).
func resolveRate(currency string, explicit float64, on scout.Date) (decimal.Decimal, error) {
	if explicit > 0 {
		return decimal.NewFromFloat(explicit), nil
	}
	if currency == *baseCurrency {
		return decimal.NewFromInt(1), nil
	}
	market, err := DecodeMarketData()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("could not load market data to resolve the rate: %w", err)
	}
	fx, err := scout.NewConverter(market, *baseCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(fx.Rate(currency, *baseCurrency, on)), nil
}

// --- Buy Command ---

type buyCmd struct {
	date     string
	ticker   string
	shares   float64
	price    float64
	fee      float64
	currency string
	rate     float64
	ledger   string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `scs buy -t <ticker> -q <shares> -p <price> [-d <date>] [-f <fee>] [-c <currency>] [-r <rate>] [-l <ledger>]

  Purchases shares of a security. The total cost is debited from the cash
  balance. Without -r the conversion rate is resolved from market data at the
  transaction date and recorded on the transaction.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fee, "f", 0, "Brokerage fee, in the transaction currency")
	f.StringVar(&c.currency, "c", "", "Transaction currency. Defaults to the portfolio currency.")
	f.Float64Var(&c.rate, "r", 0, "Conversion rate to the portfolio currency")
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.shares <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := scout.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	rate, err := resolveRate(currency, c.rate, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := scout.NewBuy(day, c.ticker, scout.Q(c.shares), decimal.NewFromFloat(c.price), decimal.NewFromFloat(c.fee), currency, rate)
	return recordTransaction(c.ledger, tx)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	ticker   string
	shares   float64
	price    float64
	fee      float64
	currency string
	rate     float64
	ledger   string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `scs sell -t <ticker> -q <shares> -p <price> [-d <date>] [-f <fee>] [-c <currency>] [-r <rate>] [-l <ledger>]

  Sells shares of a security. The proceeds are credited to the cash balance.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fee, "f", 0, "Brokerage fee, in the transaction currency")
	f.StringVar(&c.currency, "c", "", "Transaction currency. Defaults to the portfolio currency.")
	f.Float64Var(&c.rate, "r", 0, "Conversion rate to the portfolio currency")
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.shares <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := scout.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	rate, err := resolveRate(currency, c.rate, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := scout.NewSell(day, c.ticker, scout.Q(c.shares), decimal.NewFromFloat(c.price), decimal.NewFromFloat(c.fee), currency, rate)
	return recordTransaction(c.ledger, tx)
}

// --- Deposit Command ---

type depositCmd struct {
	date     string
	amount   float64
	currency string
	rate     float64
	ledger   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record money moved into the portfolio" }
func (*depositCmd) Usage() string {
	return `scs deposit -a <amount> [-d <date>] [-c <currency>] [-r <rate>] [-l <ledger>]

  Records an external cash inflow. Deposits are flows, not performance: they
  never count as gains in any report.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount deposited")
	f.StringVar(&c.currency, "c", "", "Transaction currency. Defaults to the portfolio currency.")
	f.Float64Var(&c.rate, "r", 0, "Conversion rate to the portfolio currency")
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := scout.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	rate, err := resolveRate(currency, c.rate, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := scout.NewDeposit(day, decimal.NewFromFloat(c.amount), currency, rate)
	return recordTransaction(c.ledger, tx)
}

// --- Withdraw Command ---

type withdrawCmd struct {
	date     string
	amount   float64
	currency string
	rate     float64
	ledger   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record money moved out of the portfolio" }
func (*withdrawCmd) Usage() string {
	return `scs withdraw -a <amount> [-d <date>] [-c <currency>] [-r <rate>] [-l <ledger>]

  Records an external cash outflow.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", scout.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount withdrawn")
	f.StringVar(&c.currency, "c", "", "Transaction currency. Defaults to the portfolio currency.")
	f.Float64Var(&c.rate, "r", 0, "Conversion rate to the portfolio currency")
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := scout.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *baseCurrency
	}
	rate, err := resolveRate(currency, c.rate, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := scout.NewWithdrawal(day, decimal.NewFromFloat(c.amount), currency, rate)
	return recordTransaction(c.ledger, tx)
}
