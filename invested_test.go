package scout

import "testing"

func TestInvestedCapital_BuysOnly(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewDeposit(day("2025-01-01"), dec(10000), "USD", one),
		NewBuy(day("2025-01-10"), "AAPL", Q(5), dec(80), dec(0), "USD", one),
		NewBuy(day("2025-02-10"), "AAPL", Q(5), dec(100), dec(0), "USD", one),
		NewSell(day("2025-03-01"), "AAPL", Q(4), dec(120), dec(0), "USD", one),
		NewDividend(day("2025-03-15"), "AAPL", dec(10), "USD", one),
		NewFee(day("2025-03-16"), "", dec(5), "USD", one),
	)

	invested := engine.InvestedCapital(day("2025-12-31"))
	entry, ok := invested["AAPL"]
	if !ok {
		t.Fatal("no invested capital entry for AAPL")
	}
	// only the two buys count: 5*80 + 5*100. The sell, the dividend and the
	// fee change cash and realized P&L, never deployed capital.
	assertMoney(t, "invested", entry.Holding, M(900, "USD"))
	assertMoney(t, "invested base", entry.Base, M(900, "USD"))
}

func TestInvestedCapital_RecordedRates(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewBuy(day("2025-01-10"), "SAP", Q(10), dec(100), dec(0), "EUR", dec(1.10)),
		NewBuy(day("2025-02-10"), "SAP", Q(10), dec(100), dec(0), "EUR", dec(1.20)),
	)

	entry := engine.InvestedCapital(day("2025-12-31"))["SAP"]
	assertMoney(t, "invested", entry.Holding, M(2000, "EUR"))
	// each buy converts at its own recorded rate: 1000*1.10 + 1000*1.20.
	assertMoney(t, "invested base", entry.Base, M(2300, "USD"))
}

// Same transactions in a different recording order must produce the same sum.
func TestInvestedCapital_OrderInsensitive(t *testing.T) {
	a := newTestEngine(t, "USD",
		NewBuy(day("2025-01-10"), "AAPL", Q(5), dec(80), dec(0), "USD", one),
		NewBuy(day("2025-02-10"), "AAPL", Q(5), dec(100), dec(0), "USD", one),
	)
	b := newTestEngine(t, "USD",
		NewBuy(day("2025-02-10"), "AAPL", Q(5), dec(100), dec(0), "USD", one),
		NewBuy(day("2025-01-10"), "AAPL", Q(5), dec(80), dec(0), "USD", one),
	)

	asOf := day("2025-12-31")
	assertMoney(t, "total invested", a.TotalInvested(asOf), b.TotalInvested(asOf))
}

func TestInvestedCapital_AsOfExcludesLaterBuys(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewBuy(day("2025-01-10"), "AAPL", Q(5), dec(80), dec(0), "USD", one),
		NewBuy(day("2025-06-10"), "AAPL", Q(5), dec(100), dec(0), "USD", one),
	)

	entry := engine.InvestedCapital(day("2025-03-01"))["AAPL"]
	assertMoney(t, "invested as of march", entry.Base, M(400, "USD"))
}
