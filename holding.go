package scout

import "slices"

// Holding is a derived snapshot of a position: shares held, average cost in
// both currencies, and the latest known price and exchange rate. It is
// recomputed from the ledger whenever needed, never stored.
type Holding struct {
	Ticker      string
	Shares      Quantity
	Currency    string
	AvgCost     Money // per share, instrument currency
	AvgCostBase Money // per share, base currency at recorded trade rates
	LastPrice   Money // zero when no quote exists
	FxRate      float64
	Unpriced    bool
}

// MarketValue returns the value of the position in the instrument currency,
// or a zero amount for an unpriced holding.
func (h Holding) MarketValue() Money { return h.LastPrice.Mul(h.Shares) }

// Position returns the number of shares of a ticker held at a date, replaying
// the buys and sells of the ledger.
func (e *Engine) Position(ticker string, asOf Date) Quantity {
	var position Quantity
	for tx := range e.Ledger.TransactionsAsOf(asOf) {
		switch v := tx.(type) {
		case Buy:
			if v.Ticker == ticker {
				position = position.Add(v.Shares)
			}
		case Sell:
			if v.Ticker == ticker {
				position = position.Sub(v.Shares)
			}
		}
	}
	return position
}

// Holdings derives the open positions at a date, sorted by ticker. Positions
// reduced to zero (or oversold below zero by an inconsistent ledger) are
// dropped. Average cost follows the average-cost method: a sell consumes cost
// proportionally to the shares it removes.
func (e *Engine) Holdings(asOf Date) []Holding {
	type book struct {
		shares   Quantity
		currency string
		cost     Money // running cost, instrument currency
		costBase Money // running cost, base currency
	}
	books := make(map[string]*book)

	for tx := range e.Ledger.TransactionsAsOf(asOf) {
		switch v := tx.(type) {
		case Buy:
			b, ok := books[v.Ticker]
			if !ok {
				b = &book{currency: v.Currency, cost: M(0, v.Currency), costBase: e.base()}
				books[v.Ticker] = b
			}
			b.shares = b.shares.Add(v.Shares)
			b.cost = b.cost.Add(v.Amount())
			b.costBase = b.costBase.Add(e.inBase(v))
		case Sell:
			b, ok := books[v.Ticker]
			if !ok || b.shares.IsZero() {
				continue
			}
			// consume cost proportionally to the shares sold.
			ratio := v.Shares.Div(b.shares)
			b.cost = b.cost.Sub(b.cost.Mul(ratio))
			b.costBase = b.costBase.Sub(b.costBase.Mul(ratio))
			b.shares = b.shares.Sub(v.Shares)
		}
	}

	holdings := make([]Holding, 0, len(books))
	for ticker, b := range books {
		if !b.shares.IsPositive() {
			continue
		}
		h := Holding{
			Ticker:      ticker,
			Shares:      b.shares,
			Currency:    b.currency,
			AvgCost:     b.cost.Div(b.shares),
			AvgCostBase: b.costBase.Div(b.shares),
			LastPrice:   M(0, b.currency),
			FxRate:      e.fx.Rate(b.currency, e.BaseCurrency, asOf),
		}
		if price, ok := e.Market.PriceAsOf(ticker, asOf); ok {
			h.LastPrice = M(price, b.currency)
		} else {
			h.Unpriced = true
		}
		holdings = append(holdings, h)
	}
	slices.SortFunc(holdings, func(a, b Holding) int {
		switch {
		case a.Ticker < b.Ticker:
			return -1
		case a.Ticker > b.Ticker:
			return 1
		default:
			return 0
		}
	})
	return holdings
}
