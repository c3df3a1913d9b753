/*
amortize.go - The amortization engine

PURPOSE:
  Drives the loan-math primitives and the PMI policy across periods
  1..termMonths (or to an early cutoff), emitting one immutable
  AmortizationRow per period.

STATE MACHINE:
  Initial:    balance = loan amount, cumulatives = 0
  Transition: fixed payment -> interest/principal split -> PMI on the
              beginning balance -> balance update -> accumulate -> emit row
  Terminal:   balance exactly zero at the final period, or the requested
              cutoff reached with the remaining balance reported

FAILURE:
  A scenario violating its invariants fails before the first period with a
  ValidationError; the engine never emits a partial schedule on bad input.

SEE ALSO:
  - finance/loan.go: FixedPayment, SplitPayment
  - pmi.go: per-period premium
  - refinance.go: re-runs this engine from a mid-term balance
*/
package mortgage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// =============================================================================
// PUBLIC ENTRY POINTS
// =============================================================================

// Amortize produces the full schedule for the scenario's loan.
func Amortize(s Scenario) (*Schedule, error) {
	return AmortizeTo(s, s.TermMonths)
}

// AmortizeTo produces the schedule up to and including the cutoff period,
// reporting the balance remaining at that point. The refinance comparator
// and resale netting rely on this partial form. A cutoff at or past the
// term yields the full schedule.
func AmortizeTo(s Scenario, cutoff int) (*Schedule, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if cutoff < 1 {
		return nil, &ValidationError{Field: "cutoff", Message: "must be at least 1"}
	}
	if cutoff > s.TermMonths {
		cutoff = s.TermMonths
	}

	pmi := NewPMIPolicy(s.LoanAmount(), s.HomePrice, s.PMI)
	return runLoan(s.LoanAmount(), s.AnnualRate, s.TermMonths, s.StartDate, cutoff, pmi), nil
}

// =============================================================================
// CORE LOOP
// =============================================================================

// runLoan is the shared loop for original and refinanced loans. PMI may be
// nil (refinanced loans are compared on principal and interest only).
// Inputs are trusted; validation happens at the public entry points.
func runLoan(principal, annualRate decimal.Decimal, termMonths int, start time.Time, cutoff int, pmi *PMIPolicy) *Schedule {
	rate := finance.MonthlyRate(annualRate)
	scheduled := finance.FixedPayment(principal, rate, termMonths)

	rows := make([]AmortizationRow, 0, cutoff)
	balance := principal
	cumInterest := decimal.Zero
	cumPrincipal := decimal.Zero

	for period := 1; period <= cutoff; period++ {
		interest, principalPaid := finance.SplitPayment(balance, rate, scheduled)

		// The final period absorbs the accumulated rounding remainder in
		// either direction: whatever balance is left is paid off, so the
		// effective payment can differ from the scheduled one by a few
		// cents and the ending balance lands exactly on zero.
		if period == termMonths {
			principalPaid = balance
		}
		payment := interest.Add(principalPaid)

		var premium decimal.Decimal
		if pmi != nil {
			premium = pmi.Assess(balance)
		}

		ending := balance.Sub(principalPaid)
		cumInterest = cumInterest.Add(interest)
		cumPrincipal = cumPrincipal.Add(principalPaid)

		rows = append(rows, AmortizationRow{
			Period:              period,
			Date:                finance.PeriodDate(start, period),
			BeginningBalance:    balance,
			Payment:             payment,
			Interest:            interest,
			Principal:           principalPaid,
			PMI:                 premium,
			EndingBalance:       ending,
			CumulativeInterest:  cumInterest,
			CumulativePrincipal: cumPrincipal,
		})

		balance = ending
		if balance.IsZero() {
			break
		}
	}

	return &Schedule{Rows: rows, RemainingBalance: balance}
}

// =============================================================================
// COST SNAPSHOT
// =============================================================================

// MonthlyCost builds the six-amount breakdown for one period of the
// schedule. Period 1 is the conventional snapshot; any period works, and
// the values reflect PMI state and cost growth at that period.
func MonthlyCost(s Scenario, sched *Schedule, period int) (MonthlyCostSummary, error) {
	if period < 1 || period > len(sched.Rows) {
		return MonthlyCostSummary{}, &ValidationError{Field: "period", Message: "outside the schedule"}
	}

	row := sched.Rows[period-1]
	costs := s.Costs.atMonth(period)

	return MonthlyCostSummary{
		Period:            period,
		PrincipalInterest: row.Payment,
		Taxes:             costs.PropertyTaxMonthly,
		Insurance:         costs.InsuranceMonthly,
		HOA:               costs.HOAMonthly,
		Maintenance:       costs.Maintenance.Monthly,
		PMI:               row.PMI,
	}, nil
}

// atMonth returns the recurring costs effective at 1-based month m.
// With no growth rate the costs are constant (the default policy: no tax
// reassessment modeled). With a growth rate they step up at each
// 12-month boundary, the same point annual rent growth applies.
func (c RecurringCosts) atMonth(m int) RecurringCosts {
	if c.AnnualGrowth.IsZero() || m <= 12 {
		return c
	}

	years := (m - 1) / 12
	factor := finance.One.Add(c.AnnualGrowth).Pow(decimal.NewFromInt(int64(years)))

	grown := c
	grown.PropertyTaxMonthly = finance.RoundCents(c.PropertyTaxMonthly.Mul(factor))
	grown.InsuranceMonthly = finance.RoundCents(c.InsuranceMonthly.Mul(factor))
	grown.HOAMonthly = finance.RoundCents(c.HOAMonthly.Mul(factor))
	grown.Maintenance.Monthly = finance.RoundCents(c.Maintenance.Monthly.Mul(factor))
	return grown
}

// MonthlyOutflow is one month's total ownership cost: P&I plus recurring
// costs plus PMI. Shared by the rent-vs-buy simulator.
func monthlyOutflow(s Scenario, row AmortizationRow) decimal.Decimal {
	costs := s.Costs.atMonth(row.Period)
	return row.Payment.
		Add(costs.PropertyTaxMonthly).
		Add(costs.InsuranceMonthly).
		Add(costs.HOAMonthly).
		Add(costs.Maintenance.Monthly).
		Add(row.PMI)
}
