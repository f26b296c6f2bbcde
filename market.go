package scout

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// MarketData holds the historical price series per ticker and the historical
// exchange rate series per currency pair. Both are sparse: quotes exist only
// for days the provider published one, and every query resolves to the most
// recent value at or before the requested date.
type MarketData struct {
	prices map[string]*History[float64]
	rates  map[string]*History[float64]
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		prices: make(map[string]*History[float64]),
		rates:  make(map[string]*History[float64]),
	}
}

// PairKey builds the series key for a currency pair, "EUR-USD" meaning the
// price of one EUR in USD.
func PairKey(from, to string) string { return from + "-" + to }

// SplitPair breaks a pair key into its currencies.
func SplitPair(pair string) (from, to string, err error) {
	from, to, ok := strings.Cut(pair, "-")
	if !ok || from == "" || to == "" {
		return "", "", fmt.Errorf("malformed currency pair %q, want \"FROM-TO\"", pair)
	}
	return from, to, nil
}

// AddPrice records the closing price of a ticker on a given day.
// An existing quote for that day is overwritten.
func (m *MarketData) AddPrice(ticker string, on Date, close float64) {
	h, ok := m.prices[ticker]
	if !ok {
		h = &History[float64]{}
		m.prices[ticker] = h
	}
	h.Append(on, close)
}

// AddRate records the closing exchange rate of a currency pair on a given day.
func (m *MarketData) AddRate(from, to string, on Date, rate float64) {
	key := PairKey(from, to)
	h, ok := m.rates[key]
	if !ok {
		h = &History[float64]{}
		m.rates[key] = h
	}
	h.Append(on, rate)
}

// HasPrices reports whether any price history exists for the ticker.
func (m *MarketData) HasPrices(ticker string) bool {
	h, ok := m.prices[ticker]
	return ok && h.Len() > 0
}

// PriceAsOf returns the most recent closing price of a ticker at or before
// 'on'. It returns false when no quote qualifies: the caller decides whether
// that means "unpriced" (valuation) or a fallback (conversion).
func (m *MarketData) PriceAsOf(ticker string, on Date) (float64, bool) {
	h, ok := m.prices[ticker]
	if !ok {
		return 0, false
	}
	return h.ValueAsOf(on)
}

// RateAsOf returns the most recent exchange rate for the pair at or before
// 'on'. When the direct pair has no data, the inverse pair is tried and
// inverted.
func (m *MarketData) RateAsOf(from, to string, on Date) (float64, bool) {
	if h, ok := m.rates[PairKey(from, to)]; ok {
		if rate, ok := h.ValueAsOf(on); ok {
			return rate, true
		}
	}
	if h, ok := m.rates[PairKey(to, from)]; ok {
		if rate, ok := h.ValueAsOf(on); ok && rate != 0 {
			return 1 / rate, true
		}
	}
	return 0, false
}

// PriceHistory returns the price history of a ticker, or nil if none exists.
func (m *MarketData) PriceHistory(ticker string) *History[float64] { return m.prices[ticker] }

// RateHistory returns the rate history of a pair key, or nil if none exists.
func (m *MarketData) RateHistory(pair string) *History[float64] { return m.rates[pair] }

// Tickers returns an iterator over all tickers with price data, sorted.
func (m *MarketData) Tickers() iter.Seq[string] {
	keys := make([]string, 0, len(m.prices))
	for k := range m.prices {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return slices.Values(keys)
}

// Pairs returns an iterator over all currency pair keys with rate data, sorted.
func (m *MarketData) Pairs() iter.Seq[string] {
	keys := make([]string, 0, len(m.rates))
	for k := range m.rates {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return slices.Values(keys)
}
