package scout

// InvestedCapital is the cumulative cash deployed into a holding: the sum of
// shares*price over its buys, in the instrument currency and in the base
// currency at each buy's recorded rate.
//
// This is cost basis under a "total cash deployed" convention, not FIFO or
// average-cost lot accounting: sells do not reduce it. It measures how much
// money was ever put into the position, which is what the dashboard compares
// current value against.
type InvestedCapital struct {
	Holding Money // instrument currency
	Base    Money // portfolio base currency
}

// InvestedCapital replays the buy side of the ledger up to asOf and returns
// the invested capital per ticker. Sells, dividends, fees, taxes, interest,
// deposits and withdrawals never contribute: they affect cash or realized
// P&L, not deployed capital.
func (e *Engine) InvestedCapital(asOf Date) map[string]InvestedCapital {
	invested := make(map[string]InvestedCapital)
	for tx := range e.Ledger.TransactionsAsOf(asOf) {
		buy, ok := tx.(Buy)
		if !ok || buy.Ticker == "" || buy.Shares.IsZero() {
			continue
		}
		entry, ok := invested[buy.Ticker]
		if !ok {
			entry = InvestedCapital{
				Holding: M(0, buy.Currency),
				Base:    e.base(),
			}
		}
		entry.Holding = entry.Holding.Add(buy.Amount())
		entry.Base = entry.Base.Add(e.inBase(buy))
		invested[buy.Ticker] = entry
	}
	return invested
}

// TotalInvested sums the invested capital of every holding, in base currency.
func (e *Engine) TotalInvested(asOf Date) Money {
	total := e.base()
	for _, entry := range e.InvestedCapital(asOf) {
		total = total.Add(entry.Base)
	}
	return total
}
