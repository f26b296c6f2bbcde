package renderer

import "github.com/TomaszMurek1/scout"

// RenderValuation renders a point-in-time valuation to a markdown string.
func RenderValuation(v *scout.Valuation) string {
	partials := map[string]string{
		"valuation_holdings": "valuation_holdings.md",
		"valuation_totals":   "valuation_totals.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, v)
}

// RenderHoldings renders the open positions to a markdown string.
func RenderHoldings(holdings []scout.Holding, asOf scout.Date) string {
	data := struct {
		Date     scout.Date
		Holdings []scout.Holding
	}{asOf, holdings}
	return renderTemplate("holdings", "holdings.md", nil, data)
}
