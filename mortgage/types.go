/*
Package mortgage implements the mortgage analysis engine.

PURPOSE:
  Pure computation from a validated Scenario to amortization schedules,
  a rent-vs-buy comparison, resale equity, and a refinance comparison.
  The engine holds no state between invocations and performs no I/O;
  presentation collaborators (api/, report/) consume the output structures
  without altering their values.

KEY CONCEPTS IN THIS FILE (types.go):
  - Scenario: the immutable input record (validated before computation)
  - AmortizationRow / Schedule: one immutable row per period, in order
  - MonthlyCostSummary: six named amounts for the cost-breakdown chart
  - RentBuySeries / RentBuyComparison: cumulative cost curves, dual horizon
  - ResaleImpact, RefinanceComparison: summary aggregates
  - Analysis: everything a presentation layer needs from one invocation

DESIGN PRINCIPLES:
  1. Immutability: rows are emitted in sequence and never mutated after
  2. Precision: decimal.Decimal for all currency, one rounding policy
  3. Purity: concurrent invocations need no coordination

SEE ALSO:
  - scenario.go: invariant validation
  - amortize.go: the period state machine
  - rentbuy.go, refinance.go, resale.go: derived comparisons
*/
package mortgage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// =============================================================================
// SCENARIO - Validated input record
// =============================================================================

// Scenario describes one mortgage situation. Construct it (directly or via
// the factory package), call Validate, then hand it to the engine. The
// engine never modifies a Scenario.
type Scenario struct {
	HomePrice      decimal.Decimal
	DownPayment    decimal.Decimal // dollars; kept in sync with DownPaymentPct by the factory
	DownPaymentPct decimal.Decimal // fraction of price (0.20 for 20%)

	AnnualRate decimal.Decimal // fraction (0.065 for 6.5%)
	TermMonths int
	StartDate  time.Time

	PMI   PMIConfig
	Costs RecurringCosts
	Rent  RentTrack

	// Optional toggles
	TaxDeduction    bool
	MarginalTaxRate decimal.Decimal // fraction, used only when TaxDeduction

	Resale    *ResaleConfig    // nil = hold for the full term
	Refinance *RefinanceConfig // nil = no refinance comparison
}

// LoanAmount is price minus down payment.
func (s Scenario) LoanAmount() decimal.Decimal {
	return s.HomePrice.Sub(s.DownPayment)
}

// Horizon is the number of months simulations cover: the resale month when
// one is configured, otherwise the full term.
func (s Scenario) Horizon() int {
	if s.Resale != nil && s.Resale.Month < s.TermMonths {
		return s.Resale.Month
	}
	return s.TermMonths
}

// PMIConfig controls the mortgage-insurance premium and its cancellation.
type PMIConfig struct {
	AnnualRate  decimal.Decimal  // fraction of original loan per year (0.006 for 0.6%)
	FlatMonthly *decimal.Decimal // overrides the rate-derived premium when set
	Waived      bool             // lender waiver: never charge PMI
	CancelLTV   decimal.Decimal  // cancellation threshold; zero means DefaultCancelLTV
}

// DefaultCancelLTV is the conventional 80% loan-to-value cancellation point.
var DefaultCancelLTV = finance.MustParse("0.80")

// Threshold returns the effective cancellation LTV.
func (c PMIConfig) Threshold() decimal.Decimal {
	if c.CancelLTV.IsZero() {
		return DefaultCancelLTV
	}
	return c.CancelLTV
}

// RecurringCosts are the ownership costs outside principal and interest.
// All monthly figures; period-invariant unless AnnualGrowth is set, in
// which case they step up once at each 12-month boundary (no mid-year
// reassessment is modeled).
type RecurringCosts struct {
	PropertyTaxMonthly decimal.Decimal
	InsuranceMonthly   decimal.Decimal
	HOAMonthly         decimal.Decimal
	Maintenance        MaintenanceConfig
	AnnualGrowth       decimal.Decimal // fraction; zero = constant costs
}

// MaintenanceConfig carries the normalized monthly maintenance figure plus
// the optional annual buckets it was derived from (kept for reporting).
type MaintenanceConfig struct {
	Monthly       decimal.Decimal
	AnnualBuckets map[string]decimal.Decimal // e.g. "roof": 500; informational
}

// RentTrack describes the renting alternative.
type RentTrack struct {
	Monthly      decimal.Decimal
	AnnualGrowth decimal.Decimal // fraction; applied at each new 12-month boundary
}

// ResaleConfig models selling the home at a given month.
type ResaleConfig struct {
	Month            int             // 1-based schedule month of the sale
	Value            decimal.Decimal // projected sale price; zero = derive from AppreciationRate
	AppreciationRate decimal.Decimal // annual fraction used when Value is zero
	SellingCostPct   decimal.Decimal // fraction of sale price (0.06 for 6%)
}

// RefinanceConfig models replacing the loan at a given month.
type RefinanceConfig struct {
	AnnualRate     decimal.Decimal
	TermMonths     int
	EffectiveMonth int // 1-based month the new loan starts
	ClosingCosts   decimal.Decimal
}

// =============================================================================
// AMORTIZATION OUTPUT
// =============================================================================

// AmortizationRow is one period of the schedule. Rows are emitted in order
// and immutable once emitted.
type AmortizationRow struct {
	Period           int       // 1-based
	Date             time.Time // StartDate advanced period-1 months
	BeginningBalance decimal.Decimal
	Payment          decimal.Decimal // effective payment (interest + principal)
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	PMI              decimal.Decimal // zero once cancelled or never active
	EndingBalance    decimal.Decimal

	CumulativeInterest  decimal.Decimal
	CumulativePrincipal decimal.Decimal
}

// Schedule is the ordered sequence of rows plus the balance left at the
// point the engine stopped (zero for a full-term run, the cutoff balance
// for a partial one).
type Schedule struct {
	Rows             []AmortizationRow
	RemainingBalance decimal.Decimal
}

// TotalInterest is the cumulative interest over the whole schedule.
func (s *Schedule) TotalInterest() decimal.Decimal {
	if len(s.Rows) == 0 {
		return decimal.Zero
	}
	return s.Rows[len(s.Rows)-1].CumulativeInterest
}

// BalanceBefore returns the balance at the start of 1-based month m,
// i.e. before that month's payment. Months past the schedule end are zero.
func (s *Schedule) BalanceBefore(m int) decimal.Decimal {
	if m < 1 || len(s.Rows) == 0 {
		return decimal.Zero
	}
	if m > len(s.Rows) {
		return s.RemainingBalance
	}
	return s.Rows[m-1].BeginningBalance
}

// BalanceAfter returns the balance at the end of 1-based month m.
func (s *Schedule) BalanceAfter(m int) decimal.Decimal {
	if m < 1 || len(s.Rows) == 0 {
		return decimal.Zero
	}
	if m > len(s.Rows) {
		return s.RemainingBalance
	}
	return s.Rows[m-1].EndingBalance
}

// CumulativeInterestSeries returns interest-to-date indexed by month,
// for the cumulative-interest chart.
func (s *Schedule) CumulativeInterestSeries() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = row.CumulativeInterest
	}
	return out
}

// =============================================================================
// DERIVED SUMMARIES
// =============================================================================

// MonthlyCostSummary is the six-amount cost breakdown for one period.
// It is a snapshot: PMI cancellation and cost growth change the values
// over the schedule, so a summary is valid for its period only.
type MonthlyCostSummary struct {
	Period            int
	PrincipalInterest decimal.Decimal
	Taxes             decimal.Decimal
	Insurance         decimal.Decimal
	HOA               decimal.Decimal
	Maintenance       decimal.Decimal
	PMI               decimal.Decimal
}

// Total is the sum of all six components.
func (m MonthlyCostSummary) Total() decimal.Decimal {
	return m.PrincipalInterest.
		Add(m.Taxes).
		Add(m.Insurance).
		Add(m.HOA).
		Add(m.Maintenance).
		Add(m.PMI)
}

// RentBuySeries holds two equal-length cumulative cost sequences indexed
// by month 1..horizon.
type RentBuySeries struct {
	Rent []decimal.Decimal
	Buy  []decimal.Decimal
}

// Horizon is the number of months the series covers.
func (s RentBuySeries) Horizon() int { return len(s.Rent) }

// RentBuyComparison always carries the full-term series; ToResale is set
// when the scenario configures a resale, mirroring the dual-chart contract.
type RentBuyComparison struct {
	Full     RentBuySeries
	ToResale *RentBuySeries
}

// ResaleImpact summarizes equity realized at the sale month.
type ResaleImpact struct {
	SaleMonth     int
	ResaleValue   decimal.Decimal
	SellingCosts  decimal.Decimal
	NetProceeds   decimal.Decimal
	BalanceAtSale decimal.Decimal
	NetEquity     decimal.Decimal
}

// RefinanceComparison compares keeping the original loan against
// refinancing at the effective month.
type RefinanceComparison struct {
	EffectiveMonth   int
	RemainingBalance decimal.Decimal // balance rolled into the new loan
	ClosingCosts     decimal.Decimal

	BaselineTotalInterest  decimal.Decimal // original path, to the common horizon
	RefinanceTotalInterest decimal.Decimal // pre-refi interest + new loan interest

	// BreakevenMonth is the first month the refinance path's cumulative
	// cost strictly undercuts the baseline's. BreakevenFound is false when
	// the refinance never breaks even within the horizon.
	BreakevenMonth int
	BreakevenFound bool
}

// Savings is baseline interest minus refinance interest and closing costs.
// Negative means the refinance costs more.
func (r RefinanceComparison) Savings() decimal.Decimal {
	return r.BaselineTotalInterest.Sub(r.RefinanceTotalInterest).Sub(r.ClosingCosts)
}

// =============================================================================
// ANALYSIS - One invocation's complete output
// =============================================================================

// Analysis bundles every output a presentation collaborator consumes.
// All structures are owned by the caller.
type Analysis struct {
	Scenario Scenario
	Schedule *Schedule

	FirstMonth MonthlyCostSummary
	RentBuy    *RentBuyComparison
	Resale     *ResaleImpact         // nil when no resale configured
	Refinance  *RefinanceComparison  // nil when no refinance configured
}
