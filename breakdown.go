package scout

// CashFlows sums the external flows of a period, in base currency at each
// transaction's recorded rate.
type CashFlows struct {
	Deposits    Money
	Withdrawals Money
	NetExternal Money // Deposits - Withdrawals
}

// IncomeExpenses sums the income and expense entries of a period. Buckets are
// kept separate and unsigned so callers choose their own sign convention.
type IncomeExpenses struct {
	Dividends Money
	Interest  Money
	Fees      Money
	Taxes     Money
}

// Net returns income minus expenses.
func (i IncomeExpenses) Net() Money {
	return i.Dividends.Add(i.Interest).Sub(i.Fees).Sub(i.Taxes)
}

// PnL attributes the change in portfolio value over a period.
type PnL struct {
	// TotalExFlows is (ending - beginning) - net external flows: the
	// performance of the period with the distorting effect of deposits and
	// withdrawals removed. Gains are never conflated with money the user
	// added or removed.
	TotalExFlows Money
	// Realized approximates the gains locked in by sells during the period,
	// using average-cost basis at recorded rates.
	Realized Money
	// UnrealizedResidual is what remains of TotalExFlows after realized gains
	// and net income: the paper change of the open positions.
	UnrealizedResidual Money
}

// InvestedBreakdown restricts the period quantities to the securities sleeve,
// so the UI can show the performance of stock picks separately from the
// cash-inclusive strategy.
type InvestedBreakdown struct {
	BeginningValue Money
	EndingValue    Money
	NetTrades      Money // buys - sells within the period, fees included
	CapitalGains   Money // (ending - beginning) - net trades
	SimpleReturn   Percent
}

// Breakdown is the performance attribution of one reporting period.
type Breakdown struct {
	Period   Period
	Range    Range
	Currency string

	BeginningValue Money // portfolio value (securities + cash) at the cutoff
	EndingValue    Money

	CashFlows      CashFlows
	IncomeExpenses IncomeExpenses
	PnL            PnL
	Invested       InvestedBreakdown
}

// Breakdown partitions the ledger around the period cutoff and attributes the
// change in value between flows, income, and gains. An empty ledger or an
// empty period yields zero values, not an error.
func (e *Engine) Breakdown(p Period, asOf Date) *Breakdown {
	b := &Breakdown{
		Period:         p,
		Currency:       e.BaseCurrency,
		BeginningValue: e.base(),
		CashFlows:      CashFlows{Deposits: e.base(), Withdrawals: e.base(), NetExternal: e.base()},
		IncomeExpenses: IncomeExpenses{Dividends: e.base(), Interest: e.base(), Fees: e.base(), Taxes: e.base()},
	}

	cutoff, bounded := p.Cutoff(asOf)
	var from Date
	if bounded {
		from = cutoff.Add(1)
		b.BeginningValue = e.PortfolioValue(cutoff)
		b.Invested.BeginningValue = e.Valuation(cutoff).TotalValue
	} else {
		// inception to date: the whole history, starting from nothing.
		from = e.Ledger.Inception()
		b.Invested.BeginningValue = e.base()
	}
	b.Range = Range{From: from, To: asOf}
	b.EndingValue = e.PortfolioValue(asOf)

	netTrades := e.base()
	for tx := range e.Ledger.TransactionsWithin(b.Range) {
		amount := e.inBase(tx)
		switch v := tx.(type) {
		case Deposit:
			b.CashFlows.Deposits = b.CashFlows.Deposits.Add(amount)
		case Withdrawal:
			b.CashFlows.Withdrawals = b.CashFlows.Withdrawals.Add(amount)
		case Dividend:
			b.IncomeExpenses.Dividends = b.IncomeExpenses.Dividends.Add(amount)
		case Interest:
			b.IncomeExpenses.Interest = b.IncomeExpenses.Interest.Add(amount)
		case Fee:
			b.IncomeExpenses.Fees = b.IncomeExpenses.Fees.Add(amount)
		case Tax:
			b.IncomeExpenses.Taxes = b.IncomeExpenses.Taxes.Add(amount)
		case Buy:
			netTrades = netTrades.Add(amount).Add(M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency))
		case Sell:
			netTrades = netTrades.Sub(amount).Add(M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency))
		}
	}
	b.CashFlows.NetExternal = b.CashFlows.Deposits.Sub(b.CashFlows.Withdrawals)

	b.PnL.TotalExFlows = b.EndingValue.Sub(b.BeginningValue).Sub(b.CashFlows.NetExternal)
	b.PnL.Realized = e.realizedGains(b.Range)
	b.PnL.UnrealizedResidual = b.PnL.TotalExFlows.Sub(b.PnL.Realized).Sub(b.IncomeExpenses.Net())

	endValuation := e.Valuation(asOf)
	b.Invested.EndingValue = endValuation.TotalValue
	b.Invested.NetTrades = netTrades
	b.Invested.CapitalGains = b.Invested.EndingValue.Sub(b.Invested.BeginningValue).Sub(netTrades)
	if endValuation.TotalInvested.IsPositive() {
		b.Invested.SimpleReturn = Percent(100 * endValuation.TotalGainLoss.AsFloat() / endValuation.TotalInvested.AsFloat())
	}

	return b
}

// Breakdowns computes the breakdown of every reporting period.
func (e *Engine) Breakdowns(asOf Date) map[Period]*Breakdown {
	out := make(map[Period]*Breakdown, len(Periods()))
	for _, p := range Periods() {
		out[p] = e.Breakdown(p, asOf)
	}
	return out
}

// realizedGains approximates the gains locked in by the sells of a period:
// proceeds minus average-cost basis, both in base currency at recorded rates.
// The ledger is replayed from inception so the cost book is correct when the
// period starts.
func (e *Engine) realizedGains(r Range) Money {
	type book struct {
		shares   Quantity
		costBase Money
	}
	books := make(map[string]*book)
	realized := e.base()

	for tx := range e.Ledger.TransactionsAsOf(r.To) {
		switch v := tx.(type) {
		case Buy:
			b, ok := books[v.Ticker]
			if !ok {
				b = &book{costBase: e.base()}
				books[v.Ticker] = b
			}
			b.shares = b.shares.Add(v.Shares)
			b.costBase = b.costBase.Add(e.inBase(v))
		case Sell:
			b, ok := books[v.Ticker]
			if !ok || !b.shares.IsPositive() {
				continue
			}
			ratio := v.Shares.Div(b.shares)
			costOfSale := b.costBase.Mul(ratio)
			if r.Contains(v.When()) {
				realized = realized.Add(e.inBase(v).Sub(costOfSale))
			}
			b.costBase = b.costBase.Sub(costOfSale)
			b.shares = b.shares.Sub(v.Shares)
		}
	}
	return realized
}
