/*
scenario.go - Scenario invariant validation

PURPOSE:
  Enforces the input invariants before any computation runs. The engine
  either produces a complete schedule or nothing; a violated invariant
  surfaces as a ValidationError naming the field, never a partial result.

INVARIANTS:
  - home price > 0, down payment >= 0 and <= price
  - loan amount > 0
  - term >= 1 month, rate >= 0
  - PMI rate and cancellation threshold within sane bounds
  - resale month, if set, in [1, term]; selling cost pct in [0, 1)
  - refinance month, if set, in [1, term] and <= resale month when both set
  - marginal tax rate in [0, 1) when the deduction toggle is on

SEE ALSO:
  - errors.go: ValidationError
  - factory/scenario.go: builds Scenarios from JSON/YAML input
*/
package mortgage

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Validate checks every scenario invariant, returning the first violation
// as a *ValidationError. A nil return means the engine may proceed.
func (s Scenario) Validate() error {
	if !s.HomePrice.IsPositive() {
		return &ValidationError{Field: "home_price", Message: "must be positive"}
	}
	if s.DownPayment.IsNegative() {
		return &ValidationError{Field: "down_payment", Message: "must not be negative"}
	}
	if s.DownPayment.GreaterThan(s.HomePrice) {
		return &ValidationError{Field: "down_payment", Message: "exceeds home price"}
	}
	if !s.LoanAmount().IsPositive() {
		return &ValidationError{Field: "loan_amount", Message: "must be positive"}
	}
	if s.TermMonths < 1 {
		return &ValidationError{Field: "term_months", Message: "must be at least 1"}
	}
	if s.AnnualRate.IsNegative() {
		return &ValidationError{Field: "annual_rate", Message: "must not be negative"}
	}

	if s.PMI.AnnualRate.IsNegative() {
		return &ValidationError{Field: "pmi.annual_rate", Message: "must not be negative"}
	}
	if t := s.PMI.Threshold(); !t.IsPositive() || t.GreaterThan(one) {
		return &ValidationError{Field: "pmi.cancel_ltv", Message: "must be in (0, 1]"}
	}

	if s.Rent.Monthly.IsNegative() {
		return &ValidationError{Field: "rent.monthly", Message: "must not be negative"}
	}

	if s.Resale != nil {
		if s.Resale.Month < 1 || s.Resale.Month > s.TermMonths {
			return &ValidationError{Field: "resale.month", Message: "must be within the loan term"}
		}
		if s.Resale.SellingCostPct.IsNegative() || s.Resale.SellingCostPct.GreaterThanOrEqual(one) {
			return &ValidationError{Field: "resale.selling_cost_pct", Message: "must be in [0, 1)"}
		}
		if s.Resale.Value.IsNegative() {
			return &ValidationError{Field: "resale.value", Message: "must not be negative"}
		}
	}

	if s.Refinance != nil {
		if s.Refinance.EffectiveMonth < 1 || s.Refinance.EffectiveMonth > s.TermMonths {
			return &ValidationError{Field: "refinance.effective_month", Message: "must be within the loan term"}
		}
		if s.Resale != nil && s.Refinance.EffectiveMonth > s.Resale.Month {
			return &ValidationError{Field: "refinance.effective_month", Message: "must not be after the resale month"}
		}
		if s.Refinance.TermMonths < 1 {
			return &ValidationError{Field: "refinance.term_months", Message: "must be at least 1"}
		}
		if s.Refinance.AnnualRate.IsNegative() {
			return &ValidationError{Field: "refinance.annual_rate", Message: "must not be negative"}
		}
		if s.Refinance.ClosingCosts.IsNegative() {
			return &ValidationError{Field: "refinance.closing_costs", Message: "must not be negative"}
		}
	}

	if s.TaxDeduction {
		if s.MarginalTaxRate.IsNegative() || s.MarginalTaxRate.GreaterThanOrEqual(one) {
			return &ValidationError{Field: "marginal_tax_rate", Message: "must be in [0, 1)"}
		}
	}

	return nil
}
