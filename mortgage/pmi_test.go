package mortgage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/mortgage-engine/mortgage"
)

// =============================================================================
// PMI POLICY TESTS
// =============================================================================

func TestPMIPolicy_HighLTV_ChargesRateDerivedPremium(t *testing.T) {
	// GIVEN: $270,000 loan on a $300,000 home (90% LTV), 0.6% annual PMI
	// WHEN: Assessing the first period
	// THEN: Premium is 0.006 * 270,000 / 12 = $135.00

	policy := mortgage.NewPMIPolicy(d("270000"), d("300000"), mortgage.PMIConfig{
		AnnualRate: d("0.006"),
	})

	premium := policy.Assess(d("270000"))
	assert.True(t, premium.Equal(d("135.00")), "premium: got %s", premium)
}

func TestPMIPolicy_TwentyFivePercentDown_NeverActive(t *testing.T) {
	// GIVEN: 25% down on a $300,000 home (75% starting LTV, 80% threshold)
	// WHEN: Assessing from period 1
	// THEN: PMI is inactive from the very first period

	policy := mortgage.NewPMIPolicy(d("225000"), d("300000"), mortgage.PMIConfig{
		AnnualRate: d("0.006"),
	})

	assert.True(t, policy.Assess(d("225000")).IsZero())
}

func TestPMIPolicy_CancellationIsOneWayLatch(t *testing.T) {
	// GIVEN: An active policy near the 80% threshold
	// WHEN: The balance crosses below and then an older, higher balance is
	//       assessed again
	// THEN: PMI stays cancelled; the latch never re-opens

	policy := mortgage.NewPMIPolicy(d("270000"), d("300000"), mortgage.PMIConfig{
		AnnualRate: d("0.006"),
	})

	assert.False(t, policy.Assess(d("250000")).IsZero(), "above threshold, still active")
	assert.True(t, policy.Assess(d("240000")).IsZero(), "at threshold, cancelled")
	assert.True(t, policy.Assess(d("250000")).IsZero(), "latch must not re-open")
}

func TestPMIPolicy_FlatMonthlyOverridesRate(t *testing.T) {
	// GIVEN: Both a flat monthly premium and an annual rate
	// WHEN: Assessing
	// THEN: The flat figure wins

	flat := d("87.50")
	policy := mortgage.NewPMIPolicy(d("270000"), d("300000"), mortgage.PMIConfig{
		AnnualRate:  d("0.006"),
		FlatMonthly: &flat,
	})

	assert.True(t, policy.Assess(d("270000")).Equal(d("87.50")))
}

func TestPMIPolicy_Waived_NeverCharges(t *testing.T) {
	policy := mortgage.NewPMIPolicy(d("270000"), d("300000"), mortgage.PMIConfig{
		AnnualRate: d("0.006"),
		Waived:     true,
	})

	assert.True(t, policy.Assess(d("270000")).IsZero())
}

func TestPMIPolicy_CustomThreshold(t *testing.T) {
	// GIVEN: A stricter 78% cancellation threshold
	// WHEN: Assessing a balance between 78% and 80% LTV
	// THEN: PMI is still charged (the custom threshold governs)

	policy := mortgage.NewPMIPolicy(d("270000"), d("300000"), mortgage.PMIConfig{
		AnnualRate: d("0.006"),
		CancelLTV:  d("0.78"),
	})

	// 79% LTV: above 78%, below the conventional 80%
	assert.False(t, policy.Assess(d("237000")).IsZero())
	// 78% exactly: cancelled
	assert.True(t, policy.Assess(d("234000")).IsZero())
}

// =============================================================================
// SCHEDULE INTEGRATION TESTS
// =============================================================================

func TestAmortize_PMI_AssessedOnBeginningBalance(t *testing.T) {
	// GIVEN: 10% down on a $300,000 home with 0.6% PMI
	// WHEN: Amortizing
	// THEN: Every period up to cancellation carries the $135.00 premium,
	//       assessed on the balance before the period's principal payment,
	//       and once a period is premium-free every later one is too

	s := mortgage.Scenario{
		HomePrice:   d("300000"),
		DownPayment: d("30000"),
		AnnualRate:  d("0.06"),
		TermMonths:  360,
		StartDate:   jan2025(),
		PMI:         mortgage.PMIConfig{AnnualRate: d("0.006")},
		Rent:        mortgage.RentTrack{Monthly: d("1500")},
	}

	sched, err := mortgage.Amortize(s)
	require.NoError(t, err)

	assert.True(t, sched.Rows[0].PMI.Equal(d("135.00")), "period 1: got %s", sched.Rows[0].PMI)

	cancelled := false
	threshold := d("240000") // 80% of 300,000
	for _, row := range sched.Rows {
		if cancelled {
			assert.True(t, row.PMI.IsZero(), "period %d: PMI after cancellation", row.Period)
			continue
		}
		if row.PMI.IsZero() {
			cancelled = true
			// Cancellation happens the first period the beginning balance
			// no longer exceeds the threshold.
			assert.True(t, row.BeginningBalance.LessThanOrEqual(threshold),
				"period %d cancelled early at balance %s", row.Period, row.BeginningBalance)
			continue
		}
		assert.True(t, row.BeginningBalance.GreaterThan(threshold),
			"period %d charged at balance %s", row.Period, row.BeginningBalance)
	}
	assert.True(t, cancelled, "PMI never cancelled over the full term")
}

func TestAmortize_TwentyPercentDown_NoPMIAnywhere(t *testing.T) {
	// GIVEN: Exactly 20% down (starting LTV equals the threshold)
	// WHEN: Amortizing
	// THEN: PMI is zero from period 1; the threshold is "exceeds", not "meets"

	s := mortgage.Scenario{
		HomePrice:   d("300000"),
		DownPayment: d("60000"),
		AnnualRate:  d("0.06"),
		TermMonths:  360,
		StartDate:   jan2025(),
		PMI:         mortgage.PMIConfig{AnnualRate: d("0.006")},
		Rent:        mortgage.RentTrack{Monthly: d("1500")},
	}

	sched, err := mortgage.Amortize(s)
	require.NoError(t, err)

	for _, row := range sched.Rows[:24] {
		assert.True(t, row.PMI.IsZero(), "period %d: got %s", row.Period, row.PMI)
	}
}
