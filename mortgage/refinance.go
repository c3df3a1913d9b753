/*
refinance.go - Refinance comparator

PURPOSE:
  Compares staying on the original loan against refinancing at a chosen
  month. The amortization engine runs twice: the original schedule is the
  baseline, and a new schedule starts at the effective month with the
  balance at that point as its principal.

COMPARISON:
  - Total interest under each path to a common horizon: the longer of the
    two terms, with the shorter path contributing zero payments after its
    own end.
  - Breakeven month: the first month the refinance path's cumulative cost
    (payments plus closing costs, added at the effective month) strictly
    undercuts the baseline's cumulative payments. Reported with an
    explicit found indicator; a refinance that never breaks even within
    the horizon is an answer, not an error.

  Both paths are compared on principal and interest. PMI and recurring
  ownership costs are identical across the paths and cancel out of the
  comparison.

SEE ALSO:
  - amortize.go: runLoan, the shared schedule loop
*/
package mortgage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// CompareRefinance evaluates the scenario's refinance configuration
// against the original loan.
func CompareRefinance(s Scenario) (*RefinanceComparison, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Refinance == nil {
		return nil, ErrNoRefinance
	}

	baseline, err := Amortize(s)
	if err != nil {
		return nil, err
	}

	eff := s.Refinance.EffectiveMonth
	balance := baseline.BalanceBefore(eff)

	refiStart := finance.PeriodDate(s.StartDate, eff)
	refiSched := runLoan(balance, s.Refinance.AnnualRate, s.Refinance.TermMonths, refiStart, s.Refinance.TermMonths, nil)

	// Interest already paid before the switch stays on both paths' books.
	preInterest := decimal.Zero
	if eff > 1 {
		preInterest = baseline.Rows[eff-2].CumulativeInterest
	}

	cmp := &RefinanceComparison{
		EffectiveMonth:         eff,
		RemainingBalance:       balance,
		ClosingCosts:           s.Refinance.ClosingCosts,
		BaselineTotalInterest:  baseline.TotalInterest(),
		RefinanceTotalInterest: preInterest.Add(refiSched.TotalInterest()),
	}

	cmp.BreakevenMonth, cmp.BreakevenFound = breakeven(baseline, refiSched, eff, s.Refinance.ClosingCosts)
	return cmp, nil
}

// breakeven walks both cumulative cost curves to the common horizon and
// returns the first month the refinance path is strictly cheaper.
func breakeven(baseline, refi *Schedule, eff int, closingCosts decimal.Decimal) (int, bool) {
	horizon := len(baseline.Rows)
	if h := eff - 1 + len(refi.Rows); h > horizon {
		horizon = h
	}

	baseCum := decimal.Zero
	refiCum := decimal.Zero

	for m := 1; m <= horizon; m++ {
		if m <= len(baseline.Rows) {
			baseCum = baseCum.Add(baseline.Rows[m-1].Payment)
		}

		if m < eff {
			// Shared history: the refinance path pays the original loan
			// until the switch.
			refiCum = refiCum.Add(baseline.Rows[m-1].Payment)
		} else {
			if m == eff {
				refiCum = refiCum.Add(closingCosts)
			}
			if idx := m - eff; idx < len(refi.Rows) {
				refiCum = refiCum.Add(refi.Rows[idx].Payment)
			}
		}

		if refiCum.LessThan(baseCum) {
			return m, true
		}
	}

	return 0, false
}
