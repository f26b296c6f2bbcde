package scout

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Market data is persisted as a JSONL stream, one quote per line, so the file
// stays human-readable and diffs cleanly under git. A line is either a price
// record ("ticker" set) or an exchange rate record ("pair" set).

// quoteRecord is the on-disk shape of a single market data line.
type quoteRecord struct {
	Date   Date    `json:"date"`
	Ticker string  `json:"ticker,omitempty"`
	Pair   string  `json:"pair,omitempty"`
	Close  float64 `json:"close"`
}

// DecodeMarketData decodes a JSONL stream of quote records into a MarketData
// collection. Duplicate quotes for the same day overwrite, so re-importing a
// feed is harmless.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	m := NewMarketData()
	scanner := bufio.NewScanner(r)
	i := 0

	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var q quoteRecord
		if err := json.Unmarshal(line, &q); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}

		switch {
		case q.Ticker != "":
			m.AddPrice(q.Ticker, q.Date, q.Close)
		case q.Pair != "":
			from, to, err := SplitPair(q.Pair)
			if err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", i, err)
			}
			m.AddRate(from, to, q.Date, q.Close)
		default:
			return nil, fmt.Errorf("parse error on line %d: neither ticker nor pair set", i)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading market data: %w", err)
	}
	return m, nil
}

// EncodeMarketData persists the market data as a JSONL stream: price series
// first then rate series, each in ticker then date order, for stable output.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	write := func(q quoteRecord) error {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("cannot marshal quote: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write quote: %w", err)
		}
		return nil
	}

	for ticker := range m.Tickers() {
		for on, close := range m.PriceHistory(ticker).Values() {
			if err := write(quoteRecord{Date: on, Ticker: ticker, Close: close}); err != nil {
				return err
			}
		}
	}
	for pair := range m.Pairs() {
		for on, rate := range m.RateHistory(pair).Values() {
			if err := write(quoteRecord{Date: on, Pair: pair, Close: rate}); err != nil {
				return err
			}
		}
	}
	return nil
}
