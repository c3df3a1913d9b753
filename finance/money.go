/*
Package finance provides the financial primitives for the mortgage engine.

PURPOSE:
  This package contains the domain-agnostic building blocks every higher-level
  computation rests on: currency values, the shared rounding policy, the
  fixed-rate loan formulas, and month arithmetic.

KEY CONCEPTS IN THIS FILE (money.go):
  - All currency values are decimal.Decimal to avoid floating-point drift
  - RoundCents: the single rounding policy, applied per period on every path
  - Small constructors for literals in code and tests

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere money flows
  2. One rounding policy: round half-up to 2 places, applied at the same
     points on every computation path so results are reproducible
  3. Purity: no state, no I/O - plain functions over values

SEE ALSO:
  - loan.go: payment formula and interest/principal split
  - month.go: month indexing and calendar dates
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CURRENCY HELPERS
// =============================================================================

var (
	Zero    = decimal.Zero
	Twelve  = decimal.NewFromInt(12)
	Hundred = decimal.NewFromInt(100)
	One     = decimal.NewFromInt(1)
)

// RoundCents applies the engine-wide rounding policy: round half-up to
// currency precision (2 decimal places). Every per-period amount passes
// through here exactly once.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Dollars builds a decimal from a float literal. Intended for configuration
// boundaries and tests; internal math never round-trips through float64.
func Dollars(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Percent converts a percentage figure (6.5 meaning 6.5%) to a fraction.
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Div(Hundred)
}

// MustParse parses a decimal string, returning zero on failure.
func MustParse(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// WithinCents reports whether two amounts differ by at most one cent.
// Used by callers asserting schedule invariants that tolerate the
// final-period rounding absorption.
func WithinCents(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01))
}
