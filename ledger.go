package scout

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger represents the list of all recorded transactions.
//
// In a Ledger transactions are always in chronological order. The ledger is
// the system of record: every holding, valuation, or breakdown is a value
// derived from it and can be recomputed at will.
type Ledger struct {
	name         string
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Name returns the name of the ledger (its relative file path without extension).
func (l *Ledger) Name() string { return l.name }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates and adds transactions to the ledger, keeping it sorted.
// The first invalid transaction aborts the whole append.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		validated, err := ValidateTransaction(tx)
		if err != nil {
			return fmt.Errorf("invalid %s transaction: %w", tx.What(), err)
		}
		l.transactions = append(l.transactions, validated)
	}
	l.sort()
	return nil
}

// sort keeps transactions in chronological order. The sort is stable so
// same-day transactions keep their recording order.
func (l *Ledger) sort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// TransactionsAsOf returns an iterator over the transactions dated at or
// before 'on', in chronological order.
func (l *Ledger) TransactionsAsOf(on Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.When().After(on) {
				// the ledger is sorted, nothing interesting past this point.
				return
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// TransactionsWithin returns an iterator over the transactions inside the
// range, boundaries included.
func (l *Ledger) TransactionsWithin(r Range) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.When().After(r.To) {
				return
			}
			if tx.When().Before(r.From) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Tickers returns an iterator over all tickers that appear in trade
// transactions, in order of first appearance.
func (l *Ledger) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			if !tx.What().IsTrade() {
				continue
			}
			var ticker string
			switch v := tx.(type) {
			case Buy:
				ticker = v.Ticker
			case Sell:
				ticker = v.Ticker
			}
			if _, ok := seen[ticker]; ok {
				continue
			}
			seen[ticker] = struct{}{}
			if !yield(ticker) {
				return
			}
		}
	}
}

// Inception returns the date of the first transaction, or the zero date for
// an empty ledger.
func (l *Ledger) Inception() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// ValidateTransaction checks a transaction for correctness and applies quick
// fixes where applicable (missing id, missing date). It returns the validated
// (and potentially modified) transaction or an error.
func ValidateTransaction(tx Transaction) (Transaction, error) {
	var err error
	switch v := tx.(type) {
	case Buy:
		err = v.Validate()
		return v, err
	case Sell:
		err = v.Validate()
		return v, err
	case Dividend:
		err = v.Validate()
		return v, err
	case Interest:
		err = v.Validate()
		return v, err
	case Fee:
		err = v.Validate()
		return v, err
	case Tax:
		err = v.Validate()
		return v, err
	case Deposit:
		err = v.Validate()
		return v, err
	case Withdrawal:
		err = v.Validate()
		return v, err
	default:
		return tx, fmt.Errorf("unsupported transaction type %T", tx)
	}
}
