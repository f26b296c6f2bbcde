package scout

import (
	"math"
	"sort"
)

// Returns holds the three return measures of one reporting period, each a
// decimal (0.034 means 3.4%). Missing or insufficient data yields 0 so one
// empty period never blocks the rendering of the others.
type Returns struct {
	// TWR is the time-weighted return of the whole portfolio: sub-period
	// returns chain-linked around every external flow, so the size and timing
	// of deposits and withdrawals do not distort measured performance.
	TWR float64
	// TWRInvested is the same methodology restricted to the securities
	// sleeve, with trades as the sleeve's flows: stock-picking quality
	// isolated from cash drag.
	TWRInvested float64
	// MWRR is the money-weighted return: the internal rate of return of the
	// period's flows, expressed over the period. Sensitive to flow timing by
	// design, this is the return the investor personally experienced.
	MWRR float64
}

// PeriodReturns computes the three return measures for one period.
func (e *Engine) PeriodReturns(p Period, asOf Date) Returns {
	cutoff, bounded := p.Cutoff(asOf)
	if !bounded {
		cutoff = e.Ledger.Inception().Add(-1)
	}
	if cutoff.IsZero() || cutoff.After(asOf) {
		return Returns{}
	}
	window := Range{From: cutoff.Add(1), To: asOf}

	portfolioFlows := e.externalFlows(window)
	tradeFlows := e.tradeFlows(window)

	portfolioValue := func(d Date) float64 { return e.PortfolioValue(d).AsFloat() }
	investedValue := func(d Date) float64 { return e.Valuation(d).TotalValue.AsFloat() }

	return Returns{
		TWR:         chainLinkedReturn(cutoff, asOf, portfolioFlows, portfolioValue),
		TWRInvested: chainLinkedReturn(cutoff, asOf, tradeFlows, investedValue),
		MWRR:        moneyWeightedReturn(cutoff, asOf, portfolioFlows, portfolioValue),
	}
}

// Returns computes the return measures of every reporting period.
func (e *Engine) Returns(asOf Date) map[Period]Returns {
	out := make(map[Period]Returns, len(Periods()))
	for _, p := range Periods() {
		out[p] = e.PeriodReturns(p, asOf)
	}
	return out
}

// datedFlow is a net signed amount crossing a boundary on one day, in base
// currency as a float (returns are ratios, exactness is not needed here).
type datedFlow struct {
	on     Date
	amount float64
}

// externalFlows nets the deposits and withdrawals of the window per day.
func (e *Engine) externalFlows(window Range) []datedFlow {
	byDay := make(map[Date]float64)
	for tx := range e.Ledger.TransactionsWithin(window) {
		switch tx.(type) {
		case Deposit:
			byDay[tx.When()] += e.inBase(tx).AsFloat()
		case Withdrawal:
			byDay[tx.When()] -= e.inBase(tx).AsFloat()
		}
	}
	return sortFlows(byDay)
}

// tradeFlows nets the buys and sells of the window per day: the flows in and
// out of the securities sleeve, fees included since they are cash the sleeve
// consumed.
func (e *Engine) tradeFlows(window Range) []datedFlow {
	byDay := make(map[Date]float64)
	for tx := range e.Ledger.TransactionsWithin(window) {
		switch v := tx.(type) {
		case Buy:
			byDay[v.When()] += e.inBase(v).AsFloat() + M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency).AsFloat()
		case Sell:
			byDay[v.When()] -= e.inBase(v).AsFloat() - M(v.Fee, v.Currency).MulRate(v.Rate(), e.BaseCurrency).AsFloat()
		}
	}
	return sortFlows(byDay)
}

func sortFlows(byDay map[Date]float64) []datedFlow {
	flows := make([]datedFlow, 0, len(byDay))
	for on, amount := range byDay {
		if amount == 0 {
			continue
		}
		flows = append(flows, datedFlow{on: on, amount: amount})
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].on.Before(flows[j].on) })
	return flows
}

// chainLinkedReturn computes a true time-weighted return: the window is split
// at every flow date, each sub-period return is measured on the value just
// before the flow, and the sub-periods are geometrically linked. Flows are
// treated as happening at the start of their day, so a sub-period ends on the
// evening before.
func chainLinkedReturn(cutoff, asOf Date, flows []datedFlow, valueAt func(Date) float64) float64 {
	chain := 1.0
	base := valueAt(cutoff)
	grew := false

	for _, f := range flows {
		pre := valueAt(f.on.Add(-1))
		if base > 0 {
			chain *= pre / base
			grew = true
		}
		base = pre + f.amount
	}

	end := valueAt(asOf)
	if base > 0 {
		chain *= end / base
		grew = true
	}
	if !grew {
		return 0
	}
	return sanitize(chain - 1)
}

// moneyWeightedReturn solves the internal rate of return of the period: the
// beginning value is treated as an initial outlay, external flows follow the
// investor's sign convention, and the ending value closes the stream. The
// annual rate found by Newton-Raphson is then compounded over the period
// length so all period keys stay comparable.
func moneyWeightedReturn(cutoff, asOf Date, flows []datedFlow, valueAt func(Date) float64) float64 {
	begin := valueAt(cutoff)
	end := valueAt(asOf)

	stream := make([]datedFlow, 0, len(flows)+2)
	if begin > 0 {
		stream = append(stream, datedFlow{on: cutoff, amount: -begin})
	}
	for _, f := range flows {
		stream = append(stream, datedFlow{on: f.on, amount: -f.amount})
	}
	if end > 0 {
		stream = append(stream, datedFlow{on: asOf, amount: end})
	}
	if len(stream) < 2 {
		return 0
	}
	// an IRR only exists when the stream changes sign.
	hasNegative, hasPositive := false, false
	for _, f := range stream {
		hasNegative = hasNegative || f.amount < 0
		hasPositive = hasPositive || f.amount > 0
	}
	if !hasNegative || !hasPositive {
		return 0
	}

	annual := solveIRR(stream)
	days := float64(asOf.Sub(stream[0].on))
	if days <= 0 {
		return 0
	}
	return sanitize(math.Pow(1+annual, days/365) - 1)
}

// solveIRR finds the annualized rate where the net present value of the dated
// flows is zero, by Newton-Raphson with a numeric derivative.
func solveIRR(flows []datedFlow) float64 {
	base := flows[0].on
	years := func(d Date) float64 { return float64(d.Sub(base)) / 365 }
	npv := func(r float64) float64 {
		s := 0.0
		for _, f := range flows {
			s += f.amount / math.Pow(1+r, years(f.on))
		}
		return s
	}
	deriv := func(r float64) float64 {
		const h = 1e-6
		return (npv(r+h) - npv(r-h)) / (2 * h)
	}

	r := 0.1
	for i := 0; i < 100; i++ {
		f := npv(r)
		df := deriv(r)
		if math.Abs(df) < 1e-12 {
			break
		}
		next := r - f/df
		if math.IsNaN(next) || next <= -1 {
			break
		}
		if math.Abs(next-r) < 1e-9 {
			return next
		}
		r = next
	}
	return sanitize(r)
}

// sanitize maps NaN and infinities to 0, the documented "no data" value.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
