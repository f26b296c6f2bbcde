package scout

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	input := strings.Join([]string{
		`{"id":"a1","transaction_type":"deposit","date":"2025-01-01","currency":"USD","currency_rate":1,"amount":10000}`,
		``,
		`{"id":"a2","transaction_type":"buy","date":"2025-01-10","currency":"USD","currency_rate":1,"ticker":"AAPL","shares":10,"price":150.5,"fee":2}`,
		`{"id":"a3","transaction_type":"dividend","date":"2025-03-01","currency":"USD","currency_rate":1,"ticker":"AAPL","amount":12.5}`,
	}, "\n")

	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("decoded %d transactions, want 3 (empty lines skipped)", ledger.Len())
	}

	var txs []Transaction
	for tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}

	buy, ok := txs[1].(Buy)
	if !ok {
		t.Fatalf("second transaction is %T, want Buy", txs[1])
	}
	if buy.Ticker != "AAPL" || !buy.Shares.Equal(Q(10)) {
		t.Errorf("buy = %+v", buy)
	}
	assertMoney(t, "buy amount", buy.Amount(), M(1505, "USD"))
}

func TestDecodeLedger_UnknownType(t *testing.T) {
	input := `{"transaction_type":"warp","date":"2025-01-01","currency":"USD","amount":1}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Error("DecodeLedger accepted an unknown transaction type")
	}
}

func TestDecodeLedger_InvalidTransaction(t *testing.T) {
	// buys need positive shares even when the JSON is well formed.
	input := `{"transaction_type":"buy","date":"2025-01-01","currency":"USD","ticker":"AAPL","shares":0,"price":10}`
	if _, err := DecodeLedger(strings.NewReader(input)); err == nil {
		t.Error("DecodeLedger accepted an invalid transaction")
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	ledger := newTestLedger(t,
		NewDeposit(day("2025-01-01"), dec(10000), "USD", one),
		NewBuy(day("2025-01-10"), "AAPL", Q(10), dec(150.5), dec(2), "USD", one),
		NewSell(day("2025-02-01"), "AAPL", Q(4), dec(160), dec(2), "USD", one),
		NewDividend(day("2025-03-01"), "AAPL", dec(12.5), "USD", one),
		NewInterest(day("2025-03-02"), dec(1.2), "USD", one),
		NewFee(day("2025-03-03"), "", dec(5), "USD", one),
		NewTax(day("2025-03-04"), "AAPL", dec(3), "USD", one),
		NewWithdrawal(day("2025-04-01"), dec(500), "USD", one),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if back.Len() != ledger.Len() {
		t.Fatalf("round trip lost transactions: %d != %d", back.Len(), ledger.Len())
	}

	want := make([]Transaction, 0, ledger.Len())
	for tx := range ledger.Transactions() {
		want = append(want, tx)
	}
	i := 0
	for tx := range back.Transactions() {
		if tx.What() != want[i].What() || tx.When() != want[i].When() || tx.TxID() != want[i].TxID() {
			t.Errorf("transaction %d = %s %s %s, want %s %s %s",
				i, tx.What(), tx.When(), tx.TxID(), want[i].What(), want[i].When(), want[i].TxID())
		}
		if !tx.Amount().Equal(want[i].Amount()) {
			t.Errorf("transaction %d amount = %s, want %s", i, tx.Amount(), want[i].Amount())
		}
		i++
	}
}

// decimals must serialize as JSON numbers, not quoted strings.
func TestEncodeTransaction_PlainNumbers(t *testing.T) {
	var buf bytes.Buffer
	tx, err := ValidateTransaction(NewDeposit(day("2025-01-01"), dec(100.5), "USD", one))
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"100.5"`) || !strings.Contains(buf.String(), `"amount":100.5`) {
		t.Errorf("encoded transaction = %s", buf.String())
	}
}
