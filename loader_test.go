package scout

import (
	"path/filepath"
	"testing"
)

func TestSaveAndFindLedger(t *testing.T) {
	dir := t.TempDir()

	ledger := newTestLedger(t,
		NewDeposit(day("2025-01-01"), dec(1000), "USD", one),
		NewBuy(day("2025-01-10"), "AAPL", Q(10), dec(100), dec(0), "USD", one),
	)
	ledger.name = "john/broker"

	if err := SaveLedger(dir, ledger); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}

	back, err := FindLedger(dir, "john/broker")
	if err != nil {
		t.Fatalf("FindLedger: %v", err)
	}
	if back.Name() != "john/broker" || back.Len() != 2 {
		t.Errorf("loaded ledger = %q with %d transactions", back.Name(), back.Len())
	}
}

func TestFindLedger_EmptyDirectoryDefaults(t *testing.T) {
	ledger, err := FindLedger(t.TempDir(), "")
	if err != nil {
		t.Fatalf("FindLedger on empty dir: %v", err)
	}
	if ledger.Name() != "transactions" || ledger.Len() != 0 {
		t.Errorf("default ledger = %q with %d transactions", ledger.Name(), ledger.Len())
	}
}

func TestFindLedger_Ambiguous(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		l := newTestLedger(t, NewDeposit(day("2025-01-01"), dec(1), "USD", one))
		l.name = name
		if err := SaveLedger(dir, l); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := FindLedger(dir, ""); err == nil {
		t.Error("FindLedger resolved an ambiguous query")
	}
	if _, err := FindLedger(dir, "nope"); err == nil {
		t.Error("FindLedger found a ledger that does not exist")
	}

	ledgers, err := FindLedgers(dir, "")
	if err != nil {
		t.Fatalf("FindLedgers: %v", err)
	}
	if len(ledgers) != 2 {
		t.Errorf("FindLedgers returned %d ledgers, want 2", len(ledgers))
	}
}

func TestSaveAndLoadMarketData(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data", "market.jsonl")

	m := NewMarketData()
	m.AddPrice("AAPL", day("2025-01-10"), 150)
	m.AddRate("EUR", "USD", day("2025-01-10"), 1.1)

	if err := SaveMarketData(file, m); err != nil {
		t.Fatalf("SaveMarketData: %v", err)
	}

	back, err := LoadMarketData(file)
	if err != nil {
		t.Fatalf("LoadMarketData: %v", err)
	}
	if got, ok := back.PriceAsOf("AAPL", day("2025-01-10")); !ok || got != 150 {
		t.Errorf("price after reload = (%v, %v)", got, ok)
	}
}

func TestLoadMarketData_MissingFileIsEmpty(t *testing.T) {
	m, err := LoadMarketData(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("LoadMarketData: %v", err)
	}
	if m.HasPrices("AAPL") {
		t.Error("fresh market data is not empty")
	}
}
