package feed

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/TomaszMurek1/scout"
)

// chartPayload mimics the provider's response shape: the close series nested
// deep inside the chart result.
func chartPayload(ts int64, closes string) string {
	return fmt.Sprintf(`{
		"chart": {
			"result": [{
				"meta": {"currency": "USD"},
				"timestamp": [%d, %d],
				"indicators": {"quote": [{"close": [%s]}]}
			}]
		}
	}`, ts-86400, ts, closes)
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return &Client{BaseURL: server.URL + "/", HTTP: server.Client()}, server
}

func TestClient_LatestClose(t *testing.T) {
	// 2025-07-30 UTC
	const ts = int64(1753833600)
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartPayload(ts, "149.5, 150.25"))
	})
	defer server.Close()

	close, on, err := client.LatestClose("AAPL")
	if err != nil {
		t.Fatalf("LatestClose: %v", err)
	}
	if close != 150.25 {
		t.Errorf("close = %v, want 150.25", close)
	}
	if on != scout.DateFromUnix(ts) {
		t.Errorf("date = %v, want %v", on, scout.DateFromUnix(ts))
	}
}

func TestClient_LatestClose_BadPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[]}}`)
	})
	defer server.Close()

	if _, _, err := client.LatestClose("AAPL"); err == nil {
		t.Error("LatestClose accepted an empty chart result")
	}
}

func TestClient_LatestClose_HTTPError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer server.Close()

	if _, _, err := client.LatestClose("AAPL"); err == nil {
		t.Error("LatestClose ignored an HTTP error status")
	}
}

// One dead symbol must not block the refresh of the others.
func TestClient_UpdatePrices_SkipsFailures(t *testing.T) {
	const ts = int64(1753833600)
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/DEAD" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, chartPayload(ts, "99, 100"))
	})
	defer server.Close()

	one := decimal.NewFromInt(1)
	ledger := scout.NewLedger()
	err := ledger.Append(
		scout.NewBuy(scout.MustParseDate("2025-01-10"), "DEAD", scout.Q(1), decimal.NewFromInt(10), decimal.Zero, "USD", one),
		scout.NewBuy(scout.MustParseDate("2025-01-11"), "AAPL", scout.Q(1), decimal.NewFromInt(10), decimal.Zero, "USD", one),
	)
	if err != nil {
		t.Fatal(err)
	}

	market := scout.NewMarketData()
	client.UpdatePrices(market, ledger)

	if market.HasPrices("DEAD") {
		t.Error("failed symbol ended up with a price")
	}
	if got, ok := market.PriceAsOf("AAPL", scout.DateFromUnix(ts)); !ok || got != 100 {
		t.Errorf("AAPL price = (%v, %v), want (100, true)", got, ok)
	}
}

func TestClient_UpdateRates(t *testing.T) {
	const ts = int64(1753833600)
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartPayload(ts, "4.01, 4.05"))
	})
	defer server.Close()

	market := scout.NewMarketData()
	client.UpdateRates(market, "USD-PLN", "malformed")

	if got, ok := market.RateAsOf("USD", "PLN", scout.DateFromUnix(ts)); !ok || got != 4.05 {
		t.Errorf("USD-PLN rate = (%v, %v), want (4.05, true)", got, ok)
	}
}
