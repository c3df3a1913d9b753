/*
resale.go - Resale impact and equity at sale

PURPOSE:
  Computes what selling at the configured month realizes:

    net proceeds = resale value x (1 - selling cost pct)
    net equity   = net proceeds - outstanding balance at the sale month

  The resale value is the configured figure, or derived from an annual
  appreciation rate on the home price when none is given.

SEE ALSO:
  - rentbuy.go: nets these proceeds into the buy series
*/
package mortgage

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// ResaleOutcome summarizes the sale configured on the scenario. The
// schedule must be the scenario's full-term schedule.
func ResaleOutcome(s Scenario, sched *Schedule) (*ResaleImpact, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Resale == nil {
		return nil, ErrNoResale
	}

	value := projectedResaleValue(s)
	sellingCosts := finance.RoundCents(value.Mul(s.Resale.SellingCostPct))
	proceeds := value.Sub(sellingCosts)
	balance := sched.BalanceAfter(s.Resale.Month)

	return &ResaleImpact{
		SaleMonth:     s.Resale.Month,
		ResaleValue:   value,
		SellingCosts:  sellingCosts,
		NetProceeds:   proceeds,
		BalanceAtSale: balance,
		NetEquity:     finance.RoundCents(proceeds.Sub(balance)),
	}, nil
}

// netProceeds is the single-month adjustment the buy series applies.
func netProceeds(s Scenario, sched *Schedule) decimal.Decimal {
	value := projectedResaleValue(s)
	proceeds := value.Sub(finance.RoundCents(value.Mul(s.Resale.SellingCostPct)))
	return proceeds.Sub(sched.BalanceAfter(s.Resale.Month))
}

// projectedResaleValue returns the configured value, or grows the home
// price by the appreciation rate over the fractional years to the sale.
// Fractional-exponent compounding goes through float64; the result is
// rounded to cents like every other per-path amount.
func projectedResaleValue(s Scenario) decimal.Decimal {
	if s.Resale.Value.IsPositive() {
		return s.Resale.Value
	}

	rate, _ := s.Resale.AppreciationRate.Float64()
	price, _ := s.HomePrice.Float64()
	years := float64(s.Resale.Month) / 12.0
	return finance.RoundCents(decimal.NewFromFloat(price * math.Pow(1+rate, years)))
}
