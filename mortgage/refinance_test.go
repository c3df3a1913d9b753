package mortgage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/mortgage-engine/mortgage"
)

// =============================================================================
// REFINANCE COMPARISON TESTS
// =============================================================================

func TestCompareRefinance_LowerRate_BreakevenFound(t *testing.T) {
	// GIVEN: The 6% loan refinanced at month 24 into 5% over a fresh
	//        360-month term, $3,000 closing costs
	// WHEN: Comparing
	// THEN: The new loan starts from the month-24 balance, and the lower
	//       payment recovers the closing costs within months

	s := standardLoan()
	s.Refinance = &mortgage.RefinanceConfig{
		AnnualRate:     d("0.05"),
		TermMonths:     360,
		EffectiveMonth: 24,
		ClosingCosts:   d("3000"),
	}

	cmp, err := mortgage.CompareRefinance(s)
	require.NoError(t, err)

	assert.Equal(t, 24, cmp.EffectiveMonth)
	assert.True(t, cmp.RemainingBalance.Equal(d("390319.61")),
		"rolled balance: got %s", cmp.RemainingBalance)
	assert.True(t, cmp.ClosingCosts.Equal(d("3000")))

	// The 6%->5% payment drop (~$303/month) clears $3,000 of closing
	// costs in month 33: nine post-switch payments plus change.
	assert.True(t, cmp.BreakevenFound, "breakeven should exist")
	assert.Equal(t, 33, cmp.BreakevenMonth)
}

func TestCompareRefinance_HigherRate_NoBreakeven(t *testing.T) {
	// GIVEN: A refinance into a HIGHER rate
	// WHEN: Comparing
	// THEN: The refinance path never undercuts the baseline; the absence
	//       is reported explicitly, not as an error

	s := standardLoan()
	s.Refinance = &mortgage.RefinanceConfig{
		AnnualRate:     d("0.07"),
		TermMonths:     360,
		EffectiveMonth: 24,
		ClosingCosts:   d("3000"),
	}

	cmp, err := mortgage.CompareRefinance(s)
	require.NoError(t, err)

	assert.False(t, cmp.BreakevenFound)
	assert.Equal(t, 0, cmp.BreakevenMonth)

	// More interest on the new path, so savings net of closing costs
	// are negative.
	assert.True(t, cmp.Savings().IsNegative(), "savings: got %s", cmp.Savings())
}

func TestCompareRefinance_InterestTotals_IncludeSharedHistory(t *testing.T) {
	// GIVEN: A refinance at month 24
	// WHEN: Comparing interest totals
	// THEN: The refinance total carries the interest already paid before
	//       the switch plus the new loan's interest

	s := standardLoan()
	s.Refinance = &mortgage.RefinanceConfig{
		AnnualRate:     d("0.05"),
		TermMonths:     360,
		EffectiveMonth: 24,
		ClosingCosts:   d("3000"),
	}

	baseline, err := mortgage.Amortize(s)
	require.NoError(t, err)

	cmp, err := mortgage.CompareRefinance(s)
	require.NoError(t, err)

	preInterest := baseline.Rows[22].CumulativeInterest // through month 23
	assert.True(t, cmp.RefinanceTotalInterest.GreaterThan(preInterest))
	assert.True(t, cmp.BaselineTotalInterest.Equal(baseline.TotalInterest()))

	// At a lower rate the refinance saves interest even before netting
	// closing costs.
	assert.True(t, cmp.RefinanceTotalInterest.LessThan(cmp.BaselineTotalInterest))
}

func TestCompareRefinance_EffectiveMonthOne_NoSharedHistory(t *testing.T) {
	// GIVEN: A refinance effective at month 1 (immediate replacement)
	// WHEN: Comparing
	// THEN: The whole original loan amount rolls into the new loan

	s := standardLoan()
	s.Refinance = &mortgage.RefinanceConfig{
		AnnualRate:     d("0.05"),
		TermMonths:     360,
		EffectiveMonth: 1,
		ClosingCosts:   d("3000"),
	}

	cmp, err := mortgage.CompareRefinance(s)
	require.NoError(t, err)

	assert.True(t, cmp.RemainingBalance.Equal(d("400000")))
	assert.True(t, cmp.BreakevenFound)
}

func TestCompareRefinance_NoConfiguration_SentinelError(t *testing.T) {
	_, err := mortgage.CompareRefinance(standardLoan())
	assert.True(t, errors.Is(err, mortgage.ErrNoRefinance))
}

// =============================================================================
// RESALE IMPACT TESTS
// =============================================================================

func TestResaleOutcome_ExplicitValue(t *testing.T) {
	// GIVEN: A sale at month 120 for $600,000 with 6% selling costs
	// WHEN: Summarizing the sale
	// THEN: Proceeds net of selling costs, equity net of the balance

	s := standardLoan()
	s.Resale = &mortgage.ResaleConfig{
		Month:          120,
		Value:          d("600000"),
		SellingCostPct: d("0.06"),
	}

	sched, err := mortgage.Amortize(s)
	require.NoError(t, err)

	impact, err := mortgage.ResaleOutcome(s, sched)
	require.NoError(t, err)

	assert.Equal(t, 120, impact.SaleMonth)
	assert.True(t, impact.ResaleValue.Equal(d("600000")))
	assert.True(t, impact.SellingCosts.Equal(d("36000.00")))
	assert.True(t, impact.NetProceeds.Equal(d("564000.00")))
	assert.True(t, impact.BalanceAtSale.Equal(sched.BalanceAfter(120)))
	assert.True(t, impact.NetEquity.Equal(impact.NetProceeds.Sub(impact.BalanceAtSale)))
}

func TestResaleOutcome_DerivedFromAppreciation(t *testing.T) {
	// GIVEN: No explicit resale value, 3% annual appreciation, sale at
	//        month 120 (exactly 10 years)
	// WHEN: Summarizing
	// THEN: Value is price * 1.03^10

	s := standardLoan()
	s.Resale = &mortgage.ResaleConfig{
		Month:            120,
		AppreciationRate: d("0.03"),
	}

	sched, err := mortgage.Amortize(s)
	require.NoError(t, err)

	impact, err := mortgage.ResaleOutcome(s, sched)
	require.NoError(t, err)

	// 500,000 * 1.03^10 = 671,958.19
	assert.True(t, impact.ResaleValue.Equal(d("671958.19")),
		"value: got %s", impact.ResaleValue)
}

func TestResaleOutcome_NoConfiguration_SentinelError(t *testing.T) {
	s := standardLoan()
	sched, err := mortgage.Amortize(s)
	require.NoError(t, err)

	_, err = mortgage.ResaleOutcome(s, sched)
	assert.True(t, errors.Is(err, mortgage.ErrNoResale))
}

// =============================================================================
// FULL ANALYSIS TESTS
// =============================================================================

func TestAnalyze_CompleteScenario(t *testing.T) {
	// GIVEN: A scenario with resale and refinance configured
	// WHEN: Running the full analysis
	// THEN: Every output structure is populated

	s := rentBuyScenario()
	s.Resale = &mortgage.ResaleConfig{Month: 120, Value: d("600000"), SellingCostPct: d("0.06")}
	s.Refinance = &mortgage.RefinanceConfig{
		AnnualRate:     d("0.05"),
		TermMonths:     360,
		EffectiveMonth: 24,
		ClosingCosts:   d("3000"),
	}

	a, err := mortgage.Analyze(s)
	require.NoError(t, err)

	assert.Len(t, a.Schedule.Rows, 360)
	assert.Equal(t, 1, a.FirstMonth.Period)
	require.NotNil(t, a.RentBuy)
	assert.NotNil(t, a.RentBuy.ToResale)
	require.NotNil(t, a.Resale)
	require.NotNil(t, a.Refinance)
	assert.True(t, a.Refinance.BreakevenFound)
}

func TestAnalyze_MinimalScenario_OptionalPartsNil(t *testing.T) {
	a, err := mortgage.Analyze(standardLoan())
	require.NoError(t, err)

	assert.Nil(t, a.Resale)
	assert.Nil(t, a.Refinance)
	assert.Nil(t, a.RentBuy.ToResale)
}

func TestAnalyze_InvalidScenario_NothingComputed(t *testing.T) {
	s := standardLoan()
	s.TermMonths = 0

	a, err := mortgage.Analyze(s)
	assert.Nil(t, a)
	assert.True(t, mortgage.IsValidation(err))
}
