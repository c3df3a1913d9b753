/*
rentbuy.go - Rent-vs-buy cumulative cost simulator

PURPOSE:
  Projects cumulative rent cost and cumulative buy cost over a shared
  horizon, month by month. Two series pairs are always produced: one to
  the resale month (when a resale is configured) and one over the full
  original term, mirroring the dual-chart contract.

RENT GROWTH:
  Annual compounding in a single step: rent is multiplied by (1 + growth)
  at the start of each new 12-month year (months 13, 25, ...), not
  continuously.

BUY COST:
  payment + taxes + insurance + HOA + maintenance + PMI, minus the tax
  benefit when the deduction toggle is on. The deduction base is interest
  plus property tax (deductible costs; principal never is).

RESALE NETTING:
  At the resale month the buy series is reduced by the net proceeds
  (resale value x (1 - selling cost pct) - outstanding balance) as a
  single-month adjustment, not amortized. The series may go negative;
  clamping is a display concern.

SEE ALSO:
  - amortize.go: the schedule the buy series is built from
  - resale.go: proceeds computation
*/
package mortgage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// CompareRentBuy builds both rent-vs-buy series pairs for the scenario.
// The schedule must be the scenario's full-term schedule.
func CompareRentBuy(s Scenario, sched *Schedule) (*RentBuyComparison, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cmp := &RentBuyComparison{
		Full: simulate(s, sched, len(sched.Rows), false),
	}

	if s.Resale != nil {
		horizon := s.Resale.Month
		if horizon > len(sched.Rows) {
			horizon = len(sched.Rows)
		}
		series := simulate(s, sched, horizon, true)
		cmp.ToResale = &series
	}

	return cmp, nil
}

// simulate walks months 1..horizon accumulating both series. netResale
// applies the resale proceeds adjustment at the sale month.
func simulate(s Scenario, sched *Schedule, horizon int, netResale bool) RentBuySeries {
	series := RentBuySeries{
		Rent: make([]decimal.Decimal, horizon),
		Buy:  make([]decimal.Decimal, horizon),
	}

	rent := s.Rent.Monthly
	rentGrowth := finance.One.Add(s.Rent.AnnualGrowth)
	cumRent := decimal.Zero
	cumBuy := decimal.Zero

	for m := 1; m <= horizon; m++ {
		if finance.YearBoundary(m) {
			rent = rent.Mul(rentGrowth)
		}
		cumRent = finance.RoundCents(cumRent.Add(rent))

		row := sched.Rows[m-1]
		outflow := monthlyOutflow(s, row)
		if s.TaxDeduction {
			outflow = outflow.Sub(taxBenefit(s, row))
		}
		cumBuy = finance.RoundCents(cumBuy.Add(outflow))

		if netResale && s.Resale != nil && m == s.Resale.Month {
			cumBuy = finance.RoundCents(cumBuy.Sub(netProceeds(s, sched)))
		}

		series.Rent[m-1] = cumRent
		series.Buy[m-1] = cumBuy
	}

	return series
}

// taxBenefit is the month's deduction value: (interest + property tax)
// times the marginal rate.
func taxBenefit(s Scenario, row AmortizationRow) decimal.Decimal {
	if s.MarginalTaxRate.IsZero() {
		return decimal.Zero
	}
	deductible := row.Interest.Add(s.Costs.atMonth(row.Period).PropertyTaxMonthly)
	return finance.RoundCents(deductible.Mul(s.MarginalTaxRate))
}
