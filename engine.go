package scout

import "fmt"

// Engine combines the transaction ledger with market data to answer every
// valuation and performance question of the dashboard. It is stateless: all
// results are recomputed from its inputs, and calling any method twice with
// identical inputs yields identical outputs.
type Engine struct {
	Ledger       *Ledger
	Market       *MarketData
	BaseCurrency string

	fx *Converter
}

// NewEngine creates an engine reporting in the given base currency.
func NewEngine(ledger *Ledger, market *MarketData, baseCurrency string) (*Engine, error) {
	fx, err := NewConverter(market, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("invalid base currency: %w", err)
	}
	return &Engine{
		Ledger:       ledger,
		Market:       market,
		BaseCurrency: baseCurrency,
		fx:           fx,
	}, nil
}

// Converter returns the engine's currency converter.
func (e *Engine) Converter() *Converter { return e.fx }

// base returns a zero amount in the base currency, convenient as an accumulator seed.
func (e *Engine) base() Money { return M(0, e.BaseCurrency) }

// inBase converts a transaction amount to the base currency using the rate
// recorded on the transaction itself, not a fresh lookup. This preserves the
// historical cost exactly as experienced when the transaction happened.
func (e *Engine) inBase(tx Transaction) Money {
	return tx.Amount().MulRate(tx.Rate(), e.BaseCurrency)
}

// CashBalance computes the cash sleeve of the portfolio at a date, in the
// base currency: external flows in and out, proceeds and costs of trades, and
// income less expenses, each converted at its transaction's recorded rate.
func (e *Engine) CashBalance(asOf Date) Money {
	balance := e.base()
	for tx := range e.Ledger.TransactionsAsOf(asOf) {
		amount := e.inBase(tx)
		switch v := tx.(type) {
		case Deposit, Dividend, Interest:
			balance = balance.Add(amount)
		case Withdrawal, Fee, Tax:
			balance = balance.Sub(amount)
		case Buy:
			cost := amount.Add(M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency))
			balance = balance.Sub(cost)
		case Sell:
			proceeds := amount.Sub(M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency))
			balance = balance.Add(proceeds)
		}
	}
	return balance
}

// PortfolioValue computes the total portfolio value at a date: the market
// value of all priced holdings plus the cash balance.
func (e *Engine) PortfolioValue(asOf Date) Money {
	v := e.Valuation(asOf)
	return v.TotalValue.Add(e.CashBalance(asOf))
}
