// Package feed pulls daily closing prices and exchange rates from a public
// chart endpoint and appends them to a market data collection. Responses are
// cached on disk for the day, so repeated refreshes are free.
package feed

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"

	"github.com/TomaszMurek1/scout"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "feed").Logger()

const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Client fetches quotes from a chart endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with the default endpoint and a daily disk cache.
func NewClient() *Client {
	return &Client{BaseURL: defaultBaseURL, HTTP: daily()}
}

// jsonpath expressions into the chart payload. The endpoint nests the series
// deep in the response; jsonpath keeps the extraction resilient to the fields
// around it changing.
const (
	pathClose     = "$.chart.result[0].indicators.quote[0].close[-1:]"
	pathTimestamp = "$.chart.result[0].timestamp[-1:]"
)

// LatestClose returns the most recent closing price of a symbol and the day
// it was quoted.
func (c *Client) LatestClose(symbol string) (float64, scout.Date, error) {
	addr := c.BaseURL + url.PathEscape(symbol) + "?interval=1d&range=5d"

	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return 0, scout.Date{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	close, err := extractFloat(jobj, pathClose)
	if err != nil {
		return 0, scout.Date{}, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	ts, err := extractFloat(jobj, pathTimestamp)
	if err != nil {
		return 0, scout.Date{}, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	return close, scout.DateFromUnix(int64(ts)), nil
}

// LatestRate returns the most recent exchange rate of a currency pair, quoted
// as the price of one 'from' unit in 'to' units.
func (c *Client) LatestRate(from, to string) (float64, scout.Date, error) {
	return c.LatestClose(from + to + "=X")
}

// UpdatePrices fetches the latest close of every ticker traded in the ledger
// and appends it to the market data. A failing ticker is logged and skipped,
// one dead symbol never blocks the rest of the refresh.
func (c *Client) UpdatePrices(m *scout.MarketData, ledger *scout.Ledger) {
	for ticker := range ledger.Tickers() {
		close, on, err := c.LatestClose(ticker)
		if err != nil {
			logger.Warn().Err(err).Str("ticker", ticker).Msg("price refresh failed, keeping previous quote")
			continue
		}
		m.AddPrice(ticker, on, close)
		logger.Info().Str("ticker", ticker).Float64("close", close).Stringer("date", on).Msg("price updated")
	}
}

// UpdateRates fetches the latest exchange rate of every pair and appends it
// to the market data. Pairs use the "FROM-TO" key form.
func (c *Client) UpdateRates(m *scout.MarketData, pairs ...string) {
	for _, pair := range pairs {
		from, to, err := scout.SplitPair(pair)
		if err != nil {
			logger.Warn().Err(err).Str("pair", pair).Msg("skipping malformed pair")
			continue
		}
		rate, on, err := c.LatestRate(from, to)
		if err != nil {
			logger.Warn().Err(err).Str("pair", pair).Msg("rate refresh failed, keeping previous quote")
			continue
		}
		m.AddRate(from, to, on, rate)
		logger.Info().Str("pair", pair).Float64("rate", rate).Stringer("date", on).Msg("rate updated")
	}
}

// extractFloat resolves a jsonpath into the payload and returns it as a
// float. The library sometimes wraps a slice-expression result in a
// one-element list, so both shapes are accepted.
func extractFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q: not a number: %v", path, jval)
	}
	return val, nil
}
