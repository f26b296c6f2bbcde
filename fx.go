package scout

import "github.com/shopspring/decimal"

// Converter converts amounts between currencies using historical rates from
// MarketData. It is a pure function over its inputs: no caching, no state.
type Converter struct {
	market *MarketData
	base   string
}

// NewConverter creates a converter targeting the given base currency.
func NewConverter(market *MarketData, baseCurrency string) (*Converter, error) {
	if err := ValidateCurrency(baseCurrency); err != nil {
		return nil, err
	}
	return &Converter{market: market, base: baseCurrency}, nil
}

// BaseCurrency returns the currency all conversions target by default.
func (c *Converter) BaseCurrency() string { return c.base }

// Rate returns the conversion rate from one currency to another at a given
// date. Identical currencies convert at exactly 1 without a lookup.
//
// When no rate resolves (neither the direct nor the inverse pair has data at
// or before the date) the converter degrades gracefully: it returns 1 and
// logs the condition. Returning 0 would silently corrupt every aggregate the
// amount flows into; returning 1 keeps the amount visible at face value.
func (c *Converter) Rate(from, to string, on Date) float64 {
	if from == to {
		return 1
	}
	rate, ok := c.market.RateAsOf(from, to, on)
	if !ok {
		logger.Warn().
			Str("pair", PairKey(from, to)).
			Stringer("date", on).
			Msg("no exchange rate at or before date, falling back to 1")
		return 1
	}
	return rate
}

// Convert converts an amount into the target currency at a given date.
func (c *Converter) Convert(amount Money, to string, on Date) Money {
	if amount.Currency() == to {
		return amount
	}
	rate := c.Rate(amount.Currency(), to, on)
	return amount.MulRate(decimal.NewFromFloat(rate), to)
}

// ToBase converts an amount into the base currency at a given date.
func (c *Converter) ToBase(amount Money, on Date) Money {
	return c.Convert(amount, c.base, on)
}
