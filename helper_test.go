package scout

import (
	"testing"

	"github.com/shopspring/decimal"
)

// test helpers shared by the package tests.

func day(s string) Date { return MustParseDate(s) }

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

var one = decimal.NewFromInt(1)

// newTestLedger builds a sorted, validated ledger or fails the test.
func newTestLedger(t *testing.T, txs ...Transaction) *Ledger {
	t.Helper()
	ledger := NewLedger()
	if err := ledger.Append(txs...); err != nil {
		t.Fatalf("invalid test ledger: %v", err)
	}
	return ledger
}

// newTestEngine builds an engine over the given transactions and an empty
// market. Tests add quotes directly on engine.Market.
func newTestEngine(t *testing.T, base string, txs ...Transaction) *Engine {
	t.Helper()
	engine, err := NewEngine(newTestLedger(t, txs...), NewMarketData(), base)
	if err != nil {
		t.Fatalf("invalid test engine: %v", err)
	}
	return engine
}

// assertMoney fails the test when got is not the expected amount.
func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
