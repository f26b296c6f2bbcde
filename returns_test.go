package scout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturns_SimpleGrowth(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewDeposit(day("2025-01-01"), dec(1000), "USD", one),
		NewBuy(day("2025-01-02"), "AAPL", Q(10), dec(100), dec(0), "USD", one),
	)
	engine.Market.AddPrice("AAPL", day("2025-06-30"), 100)
	engine.Market.AddPrice("AAPL", day("2025-07-30"), 110)

	r := engine.PeriodReturns(OneMonth, day("2025-07-30"))

	// no flows in the window: all measures agree on 10%.
	assert.InDelta(t, 0.10, r.TWR, 1e-9)
	assert.InDelta(t, 0.10, r.TWRInvested, 1e-9)
	assert.InDelta(t, 0.10, r.MWRR, 1e-6)
}

// A deposit mid-period must not count as performance in the time-weighted
// return: the two sub-periods are chain-linked around it.
func TestReturns_TWRNeutralizesDeposit(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewDeposit(day("2025-01-01"), dec(1000), "USD", one),
		NewBuy(day("2025-01-02"), "AAPL", Q(10), dec(100), dec(0), "USD", one),
		NewDeposit(day("2025-07-10"), dec(500), "USD", one),
	)
	engine.Market.AddPrice("AAPL", day("2025-06-30"), 100)
	engine.Market.AddPrice("AAPL", day("2025-07-30"), 110)

	r := engine.PeriodReturns(OneMonth, day("2025-07-30"))

	// sub-period 1: 1000 -> 1000 (flat). flow +500. sub-period 2: 1500 -> 1600.
	wantTWR := (1000.0/1000.0)*(1600.0/1500.0) - 1
	assert.InDelta(t, wantTWR, r.TWR, 1e-9)

	// the securities sleeve ignores the cash deposit entirely.
	assert.InDelta(t, 0.10, r.TWRInvested, 1e-9)

	// money-weighted sits between flat and the sleeve's 10%.
	assert.Greater(t, r.MWRR, 0.0)
	assert.Less(t, r.MWRR, 0.10)
}

// A buy moves cash into the sleeve: the sleeve's time-weighted return must
// not book it as a gain.
func TestReturns_InvestedTWRNeutralizesBuy(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewDeposit(day("2025-01-01"), dec(5000), "USD", one),
		NewBuy(day("2025-01-02"), "AAPL", Q(10), dec(100), dec(0), "USD", one),
		NewBuy(day("2025-07-10"), "AAPL", Q(5), dec(100), dec(0), "USD", one),
	)
	engine.Market.AddPrice("AAPL", day("2025-06-30"), 100)
	engine.Market.AddPrice("AAPL", day("2025-07-30"), 100)

	r := engine.PeriodReturns(OneMonth, day("2025-07-30"))
	// price is flat: buying more shares is not performance.
	assert.InDelta(t, 0.0, r.TWRInvested, 1e-9)
}

func TestReturns_EmptyLedgerIsZeroNotNaN(t *testing.T) {
	engine := newTestEngine(t, "USD")

	for p, r := range engine.Returns(day("2025-07-30")) {
		for name, v := range map[string]float64{"twr": r.TWR, "twr_invested": r.TWRInvested, "mwrr": r.MWRR} {
			if v != 0 {
				t.Errorf("%s/%s = %v, want 0", p, name, v)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s/%s is not finite", p, name)
			}
		}
	}
}

func TestReturns_AllPeriodsPresent(t *testing.T) {
	engine := newTestEngine(t, "USD",
		NewDeposit(day("2025-01-01"), dec(1000), "USD", one),
	)
	all := engine.Returns(day("2025-07-30"))
	for _, p := range Periods() {
		if _, ok := all[p]; !ok {
			t.Errorf("missing returns for period %s", p)
		}
	}
}

func TestSolveIRR_KnownRate(t *testing.T) {
	// invest 1000, receive 1100 one year later: IRR is 10%.
	flows := []datedFlow{
		{on: day("2025-01-01"), amount: -1000},
		{on: day("2026-01-01"), amount: 1100},
	}
	assert.InDelta(t, 0.10, solveIRR(flows), 1e-4)
}
