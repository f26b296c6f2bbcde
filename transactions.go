package scout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of a transaction.
type TxType string

const (
	TxBuy        TxType = "buy"
	TxSell       TxType = "sell"
	TxDividend   TxType = "dividend"
	TxInterest   TxType = "interest"
	TxFee        TxType = "fee"
	TxTax        TxType = "tax"
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
)

// IsTrade reports whether the type moves shares (buy or sell).
func (t TxType) IsTrade() bool { return t == TxBuy || t == TxSell }

// IsExternalFlow reports whether the type moves money across the portfolio
// boundary (deposit or withdrawal). Trades and income do not: they move value
// between sleeves of the same portfolio.
func (t TxType) IsExternalFlow() bool { return t == TxDeposit || t == TxWithdrawal }

// IsIncomeExpense reports whether the type is an income or expense entry.
func (t TxType) IsIncomeExpense() bool {
	return t == TxDividend || t == TxInterest || t == TxFee || t == TxTax
}

// Transaction is the common interface of all ledger entries. A transaction is
// immutable once recorded; correcting one means recording a reversal.
type Transaction interface {
	// What returns the kind of the transaction (e.g. "buy", "deposit").
	What() TxType
	// When returns the date on which the transaction occurred.
	When() Date
	// TxID returns the unique identifier of the transaction.
	TxID() string
	// Amount returns the gross amount of the transaction in its own currency:
	// shares*price for trades, the recorded amount for everything else.
	Amount() Money
	// Rate returns the exchange rate from the transaction currency to the
	// portfolio base currency, as recorded when the transaction happened.
	Rate() decimal.Decimal
}

// baseTx carries the fields shared by every transaction kind.
type baseTx struct {
	ID           string          `json:"id,omitempty"`
	Type         TxType          `json:"transaction_type"`
	Date         Date            `json:"date"`
	Currency     string          `json:"currency"`
	CurrencyRate decimal.Decimal `json:"currency_rate"`
}

func (t baseTx) What() TxType { return t.Type }
func (t baseTx) When() Date   { return t.Date }
func (t baseTx) TxID() string { return t.ID }

// Rate returns the recorded conversion rate to the base currency. A missing
// rate means the transaction currency is the base currency, hence 1.
func (t baseTx) Rate() decimal.Decimal {
	if t.CurrencyRate.IsZero() {
		return decimal.NewFromInt(1)
	}
	return t.CurrencyRate
}

// validate applies quick fixes (id, date) and checks the shared fields.
func (t *baseTx) validate() error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Currency == "" {
		return errors.New("transaction currency is missing")
	}
	if err := ValidateCurrency(t.Currency); err != nil {
		return err
	}
	if t.CurrencyRate.IsNegative() {
		return fmt.Errorf("negative currency rate %s", t.CurrencyRate)
	}
	return nil
}

// secTx is a component for security-based transactions.
type secTx struct {
	baseTx
	Ticker string `json:"ticker"`
}

func (t *secTx) validate() error {
	if err := t.baseTx.validate(); err != nil {
		return err
	}
	if t.Ticker == "" {
		return errors.New("security ticker is missing")
	}
	return nil
}

// Buy records the purchase of a quantity of a security at a unit price.
type Buy struct {
	secTx
	Shares Quantity        `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Fee    decimal.Decimal `json:"fee,omitempty"`
}

// NewBuy creates a new Buy transaction. The rate is the instrument-to-base
// conversion rate observed on the transaction day.
func NewBuy(day Date, ticker string, shares Quantity, price decimal.Decimal, fee decimal.Decimal, currency string, rate decimal.Decimal) Buy {
	return Buy{
		secTx:  secTx{baseTx: baseTx{Type: TxBuy, Date: day, Currency: currency, CurrencyRate: rate}, Ticker: ticker},
		Shares: shares,
		Price:  price,
		Fee:    fee,
	}
}

// Amount is the gross cost of the purchase, fee excluded.
func (t Buy) Amount() Money { return M(t.Shares.Decimal().Mul(t.Price), t.Currency) }

func (t *Buy) Validate() error {
	if err := t.secTx.validate(); err != nil {
		return err
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("buy of %q needs a positive number of shares, got %s", t.Ticker, t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("buy of %q has a negative price %s", t.Ticker, t.Price)
	}
	return nil
}

// Sell records the sale of a quantity of a security at a unit price.
type Sell struct {
	secTx
	Shares Quantity        `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Fee    decimal.Decimal `json:"fee,omitempty"`
}

// NewSell creates a new Sell transaction.
func NewSell(day Date, ticker string, shares Quantity, price decimal.Decimal, fee decimal.Decimal, currency string, rate decimal.Decimal) Sell {
	return Sell{
		secTx:  secTx{baseTx: baseTx{Type: TxSell, Date: day, Currency: currency, CurrencyRate: rate}, Ticker: ticker},
		Shares: shares,
		Price:  price,
		Fee:    fee,
	}
}

// Amount is the gross proceeds of the sale, fee excluded.
func (t Sell) Amount() Money { return M(t.Shares.Decimal().Mul(t.Price), t.Currency) }

func (t *Sell) Validate() error {
	if err := t.secTx.validate(); err != nil {
		return err
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("sell of %q needs a positive number of shares, got %s", t.Ticker, t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("sell of %q has a negative price %s", t.Ticker, t.Price)
	}
	return nil
}

// Dividend records dividend income paid out by a security.
type Dividend struct {
	secTx
	Value decimal.Decimal `json:"amount"`
}

// NewDividend creates a new Dividend transaction for a total payout amount.
func NewDividend(day Date, ticker string, amount decimal.Decimal, currency string, rate decimal.Decimal) Dividend {
	return Dividend{
		secTx: secTx{baseTx: baseTx{Type: TxDividend, Date: day, Currency: currency, CurrencyRate: rate}, Ticker: ticker},
		Value: amount,
	}
}

func (t Dividend) Amount() Money { return M(t.Value, t.Currency) }

func (t *Dividend) Validate() error {
	if err := t.secTx.validate(); err != nil {
		return err
	}
	if t.Value.IsNegative() {
		return fmt.Errorf("dividend from %q has a negative amount %s", t.Ticker, t.Value)
	}
	return nil
}

// cashTx is a component for pure cash entries. The optional ticker attributes
// the entry to a security (e.g. a withholding tax on a dividend).
type cashTx struct {
	baseTx
	Ticker string          `json:"ticker,omitempty"`
	Value  decimal.Decimal `json:"amount"`
}

func (t cashTx) Amount() Money { return M(t.Value, t.Currency) }

func (t *cashTx) validate() error {
	if err := t.baseTx.validate(); err != nil {
		return err
	}
	if t.Value.IsNegative() {
		return fmt.Errorf("%s has a negative amount %s", t.Type, t.Value)
	}
	return nil
}

// Interest records interest earned on the cash balance.
type Interest struct{ cashTx }

// Fee records a brokerage or custody fee.
type Fee struct{ cashTx }

// Tax records a tax payment (e.g. dividend withholding).
type Tax struct{ cashTx }

// NewInterest creates a new Interest transaction.
func NewInterest(day Date, amount decimal.Decimal, currency string, rate decimal.Decimal) Interest {
	return Interest{cashTx{baseTx: baseTx{Type: TxInterest, Date: day, Currency: currency, CurrencyRate: rate}, Value: amount}}
}

// NewFee creates a new Fee transaction, optionally attributed to a security.
func NewFee(day Date, ticker string, amount decimal.Decimal, currency string, rate decimal.Decimal) Fee {
	return Fee{cashTx{baseTx: baseTx{Type: TxFee, Date: day, Currency: currency, CurrencyRate: rate}, Ticker: ticker, Value: amount}}
}

// NewTax creates a new Tax transaction, optionally attributed to a security.
func NewTax(day Date, ticker string, amount decimal.Decimal, currency string, rate decimal.Decimal) Tax {
	return Tax{cashTx{baseTx: baseTx{Type: TxTax, Date: day, Currency: currency, CurrencyRate: rate}, Ticker: ticker, Value: amount}}
}

func (t *Interest) Validate() error { return t.cashTx.validate() }
func (t *Fee) Validate() error      { return t.cashTx.validate() }
func (t *Tax) Validate() error      { return t.cashTx.validate() }

// Deposit records money moved into the portfolio from the outside.
type Deposit struct {
	baseTx
	Value decimal.Decimal `json:"amount"`
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(day Date, amount decimal.Decimal, currency string, rate decimal.Decimal) Deposit {
	return Deposit{baseTx: baseTx{Type: TxDeposit, Date: day, Currency: currency, CurrencyRate: rate}, Value: amount}
}

func (t Deposit) Amount() Money { return M(t.Value, t.Currency) }

func (t *Deposit) Validate() error {
	if err := t.baseTx.validate(); err != nil {
		return err
	}
	if !t.Value.IsPositive() {
		return fmt.Errorf("deposit needs a positive amount, got %s", t.Value)
	}
	return nil
}

// Withdrawal records money moved out of the portfolio.
type Withdrawal struct {
	baseTx
	Value decimal.Decimal `json:"amount"`
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(day Date, amount decimal.Decimal, currency string, rate decimal.Decimal) Withdrawal {
	return Withdrawal{baseTx: baseTx{Type: TxWithdrawal, Date: day, Currency: currency, CurrencyRate: rate}, Value: amount}
}

func (t Withdrawal) Amount() Money { return M(t.Value, t.Currency) }

func (t *Withdrawal) Validate() error {
	if err := t.baseTx.validate(); err != nil {
		return err
	}
	if !t.Value.IsPositive() {
		return fmt.Errorf("withdrawal needs a positive amount, got %s", t.Value)
	}
	return nil
}

var (
	_ Transaction = Buy{}
	_ Transaction = Sell{}
	_ Transaction = Dividend{}
	_ Transaction = Interest{}
	_ Transaction = Fee{}
	_ Transaction = Tax{}
	_ Transaction = Deposit{}
	_ Transaction = Withdrawal{}
)
