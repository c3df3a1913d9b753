/*
loan.go - Fixed-rate loan formulas

PURPOSE:
  The three primitives the amortization engine is built from:
  - MonthlyRate:  annual rate -> per-period rate
  - FixedPayment: the standard annuity payment
  - SplitPayment: per-period interest/principal split with the final-period
                  rounding absorption

ZERO-RATE LOANS:
  A zero interest rate is a valid, recognized edge case, not an error.
  FixedPayment degrades to linear amortization (principal / term) and
  SplitPayment attributes the whole payment to principal.

ROUNDING:
  Interest is rounded to cents per period (not pre-rounded globally).
  Principal is capped at the remaining balance so the last period absorbs
  any rounding remainder and the ending balance lands exactly on zero.

SEE ALSO:
  - money.go: RoundCents policy
  - mortgage/amortize.go: drives these across the full term
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE CONVERSION
// =============================================================================

// MonthlyRate converts an annual interest rate (as a fraction, 0.065 for
// 6.5%) into the per-month rate used by the annuity formula.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(Twelve)
}

// =============================================================================
// PAYMENT FORMULA
// =============================================================================

// FixedPayment computes the level monthly payment for a fixed-rate loan:
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// When monthlyRate is zero the annuity formula divides by zero, so the
// payment degrades to linear amortization: principal / termMonths.
// The result is rounded to cents; the schedule's final period absorbs
// the accumulated remainder.
func FixedPayment(principal, monthlyRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if monthlyRate.IsZero() {
		return RoundCents(principal.Div(n))
	}

	growth := One.Add(monthlyRate).Pow(n)
	payment := principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(One))
	return RoundCents(payment)
}

// =============================================================================
// PER-PERIOD SPLIT
// =============================================================================

// SplitPayment divides one period's payment into interest and principal.
// Interest is balance * monthlyRate rounded to cents for this period;
// principal is the remainder of the payment, capped so it never exceeds
// the outstanding balance. The schedule's final period additionally pays
// off whatever balance remains, so the effective payment there may differ
// from the scheduled one by the rounding remainder.
func SplitPayment(balance, monthlyRate, payment decimal.Decimal) (interest, principal decimal.Decimal) {
	interest = RoundCents(balance.Mul(monthlyRate))
	principal = RoundCents(payment.Sub(interest))
	if principal.GreaterThan(balance) {
		principal = balance
	}
	return interest, principal
}
