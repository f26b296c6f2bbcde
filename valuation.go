package scout

// HoldingValuation is the point-in-time value of a single position, in its
// own currency and in the portfolio base currency.
type HoldingValuation struct {
	Ticker   string
	Shares   Quantity
	Currency string
	Price    Money   // most recent quote at or before the valuation date
	FxRate   float64 // instrument to base conversion rate at the valuation date

	Value        Money // shares * price, instrument currency
	ValueBase    Money
	Invested     Money // cumulative buy cost, instrument currency
	InvestedBase Money
	GainLoss     Money
	GainLossBase Money

	// IsPositive is strictly Value > Invested: a flat position is not flagged
	// positive. The headline percentage below treats zero as neutral instead;
	// the dashboard renders the two differently on purpose.
	IsPositive bool

	// Unpriced marks a holding with no quote at or before the valuation date.
	// It is excluded from every total but still reported, so the UI can show
	// "no price" instead of a silent zero.
	Unpriced bool
}

// Valuation is the point-in-time value of the whole portfolio.
type Valuation struct {
	Date     Date
	Currency string

	ByHolding map[string]HoldingValuation

	TotalValue       Money // base currency, priced holdings only
	TotalInvested    Money
	TotalGainLoss    Money
	PercentageChange Percent // 0 when nothing is invested, never NaN
}

// Valuation values every open position at a date. Holdings with no resolvable
// price are reported as unpriced and kept out of the aggregates.
func (e *Engine) Valuation(asOf Date) *Valuation {
	invested := e.InvestedCapital(asOf)

	v := &Valuation{
		Date:          asOf,
		Currency:      e.BaseCurrency,
		ByHolding:     make(map[string]HoldingValuation),
		TotalValue:    e.base(),
		TotalInvested: e.base(),
		TotalGainLoss: e.base(),
	}

	for _, h := range e.Holdings(asOf) {
		// a ticker with no recorded buys (e.g. a transferred-in position)
		// simply has zero invested capital.
		inv, ok := invested[h.Ticker]
		if !ok {
			inv = InvestedCapital{Holding: M(0, h.Currency), Base: e.base()}
		}

		hv := HoldingValuation{
			Ticker:       h.Ticker,
			Shares:       h.Shares,
			Currency:     h.Currency,
			Price:        h.LastPrice,
			FxRate:       h.FxRate,
			Invested:     inv.Holding,
			InvestedBase: inv.Base,
			Unpriced:     h.Unpriced,
		}

		if h.Unpriced {
			logger.Warn().
				Str("ticker", h.Ticker).
				Stringer("date", asOf).
				Msg("no price at or before date, holding excluded from totals")
			v.ByHolding[h.Ticker] = hv
			continue
		}

		hv.Value = h.MarketValue()
		hv.ValueBase = e.fx.ToBase(hv.Value, asOf)
		hv.GainLoss = hv.Value.Sub(hv.Invested)
		hv.GainLossBase = hv.ValueBase.Sub(hv.InvestedBase)
		hv.IsPositive = hv.GainLoss.IsPositive()

		v.TotalValue = v.TotalValue.Add(hv.ValueBase)
		v.TotalInvested = v.TotalInvested.Add(hv.InvestedBase)
		v.TotalGainLoss = v.TotalGainLoss.Add(hv.GainLossBase)
		v.ByHolding[h.Ticker] = hv
	}

	if v.TotalInvested.IsPositive() {
		v.PercentageChange = Percent(100 * v.TotalGainLoss.AsFloat() / v.TotalInvested.AsFloat())
	}
	return v
}
