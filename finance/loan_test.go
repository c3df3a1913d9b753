package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/mortgage-engine/finance"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(s string) decimal.Decimal {
	return finance.MustParse(s)
}

// =============================================================================
// PAYMENT FORMULA TESTS
// =============================================================================

func TestFixedPayment_StandardLoan(t *testing.T) {
	// GIVEN: $400,000 at 6% annual over 360 months
	// WHEN: Computing the level payment
	// THEN: Payment is $2,398.20 (annuity formula, rounded to cents)

	rate := finance.MonthlyRate(d("0.06"))
	payment := finance.FixedPayment(d("400000"), rate, 360)

	assert.True(t, payment.Equal(d("2398.20")),
		"expected 2398.20, got %s", payment)
}

func TestFixedPayment_ZeroRate_LinearAmortization(t *testing.T) {
	// GIVEN: $12,000 at 0% over 12 months
	// WHEN: Computing the payment
	// THEN: Linear amortization, $1,000.00 per month (not an error)

	payment := finance.FixedPayment(d("12000"), decimal.Zero, 12)

	assert.True(t, payment.Equal(d("1000.00")),
		"expected 1000.00, got %s", payment)
}

func TestFixedPayment_OneMonthTerm(t *testing.T) {
	// GIVEN: A one-month loan
	// WHEN: Computing the payment
	// THEN: Payment is principal plus one month's interest

	rate := finance.MonthlyRate(d("0.06"))
	payment := finance.FixedPayment(d("1000"), rate, 1)

	// 1000 * 1.005 = 1005.00
	assert.True(t, payment.Equal(d("1005.00")),
		"expected 1005.00, got %s", payment)
}

// =============================================================================
// PAYMENT SPLIT TESTS
// =============================================================================

func TestSplitPayment_FirstPeriod(t *testing.T) {
	// GIVEN: Full $400,000 balance, 0.5% monthly rate, $2,398.20 payment
	// WHEN: Splitting the first period's payment
	// THEN: Interest $2,000.00, principal $398.20

	rate := finance.MonthlyRate(d("0.06"))
	interest, principal := finance.SplitPayment(d("400000"), rate, d("2398.20"))

	assert.True(t, interest.Equal(d("2000.00")), "interest: got %s", interest)
	assert.True(t, principal.Equal(d("398.20")), "principal: got %s", principal)
}

func TestSplitPayment_ZeroRate_AllPrincipal(t *testing.T) {
	// GIVEN: Zero monthly rate
	// WHEN: Splitting a payment
	// THEN: The whole payment is principal

	interest, principal := finance.SplitPayment(d("12000"), decimal.Zero, d("1000"))

	assert.True(t, interest.IsZero(), "interest should be zero, got %s", interest)
	assert.True(t, principal.Equal(d("1000")), "principal: got %s", principal)
}

func TestSplitPayment_PrincipalCappedAtBalance(t *testing.T) {
	// GIVEN: A balance smaller than the scheduled payment's principal share
	// WHEN: Splitting the payment
	// THEN: Principal is capped at the balance (never overshoots)

	rate := finance.MonthlyRate(d("0.06"))
	_, principal := finance.SplitPayment(d("100.00"), rate, d("2398.20"))

	assert.True(t, principal.Equal(d("100.00")), "principal: got %s", principal)
}

// =============================================================================
// ROUNDING POLICY TESTS
// =============================================================================

func TestRoundCents_HalfUp(t *testing.T) {
	// GIVEN: Amounts landing exactly on a half cent
	// WHEN: Applying the rounding policy
	// THEN: Half rounds up (1998.005 -> 1998.01), not banker's rounding

	assert.True(t, finance.RoundCents(d("1998.005")).Equal(d("1998.01")))
	assert.True(t, finance.RoundCents(d("1998.004")).Equal(d("1998.00")))
}

func TestPercent_ConvertsToFraction(t *testing.T) {
	assert.True(t, finance.Percent(6.5).Equal(d("0.065")))
	assert.True(t, finance.Percent(0).IsZero())
}

func TestWithinCents(t *testing.T) {
	assert.True(t, finance.WithinCents(d("100.00"), d("100.01")))
	assert.False(t, finance.WithinCents(d("100.00"), d("100.02")))
}
