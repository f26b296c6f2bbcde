package scout

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes a stream of JSONL transaction records into a sorted
// Ledger. Each line carries a "transaction_type" discriminator naming the
// concrete struct to decode into.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Type TxType `json:"transaction_type"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify transaction in line %q: %w", string(line), err)
		}

		var decoded Transaction
		var err error

		switch identifier.Type {
		case TxBuy:
			var tx Buy
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxSell:
			var tx Sell
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxDividend:
			var tx Dividend
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxInterest:
			var tx Interest
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxFee:
			var tx Fee
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxTax:
			var tx Tax
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxDeposit:
			var tx Deposit
			err = json.Unmarshal(line, &tx)
			decoded = tx
		case TxWithdrawal:
			var tx Withdrawal
			err = json.Unmarshal(line, &tx)
			decoded = tx
		default:
			err = fmt.Errorf("unknown transaction type: %q", identifier.Type)
		}
		if err != nil {
			return nil, err
		}

		if err := ledger.Append(decoded); err != nil {
			return nil, fmt.Errorf("invalid transaction in line %q: %w", string(line), err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction marshals a single transaction and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal %s transaction: %w", tx.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the transactions to an io.Writer in JSONL format, in
// chronological order (same-day transactions keep their recording order).
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
