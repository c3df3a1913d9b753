/*
pmi.go - Mortgage insurance policy

PURPOSE:
  Decides, per period, whether PMI is charged and how much. PMI is active
  while loan-to-value (beginning balance / original home value) exceeds the
  cancellation threshold. Cancellation is a one-way latch: once equity
  crosses the threshold PMI stays off for every later period.

INDUSTRY CONVENTIONS CAPTURED HERE:
  - PMI is assessed on the balance BEFORE the period's principal payment
  - Premium = annual rate x original loan amount / 12 (or a flat override)
  - Auto-waiver: a starting LTV at or below the threshold means PMI is
    never active, from period 1

SEE ALSO:
  - amortize.go: calls Assess with each period's beginning balance
*/
package mortgage

import (
	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
)

// PMIPolicy evaluates mortgage insurance across one schedule run. It is
// created per engine invocation; the cancellation latch is the only state
// and it never leaves the schedule being generated.
type PMIPolicy struct {
	homeValue decimal.Decimal
	threshold decimal.Decimal
	premium   decimal.Decimal
	active    bool
}

// NewPMIPolicy derives the monthly premium from the original loan amount
// and decides whether PMI starts active at all.
func NewPMIPolicy(loanAmount, homeValue decimal.Decimal, cfg PMIConfig) *PMIPolicy {
	p := &PMIPolicy{
		homeValue: homeValue,
		threshold: cfg.Threshold(),
	}

	switch {
	case cfg.Waived:
		// Explicit waiver: premium stays zero, latch stays closed.
	case cfg.FlatMonthly != nil:
		p.premium = finance.RoundCents(*cfg.FlatMonthly)
		p.active = p.premium.IsPositive()
	case cfg.AnnualRate.IsPositive():
		p.premium = finance.RoundCents(cfg.AnnualRate.Mul(loanAmount).Div(finance.Twelve))
		p.active = true
	}

	return p
}

// Assess returns this period's PMI amount given the balance before the
// period's principal payment. Crossing the threshold cancels permanently.
func (p *PMIPolicy) Assess(beginningBalance decimal.Decimal) decimal.Decimal {
	if !p.active {
		return decimal.Zero
	}
	if !p.ltvExceedsThreshold(beginningBalance) {
		p.active = false
		return decimal.Zero
	}
	return p.premium
}

func (p *PMIPolicy) ltvExceedsThreshold(balance decimal.Decimal) bool {
	if !p.homeValue.IsPositive() {
		return false
	}
	// balance / homeValue > threshold, compared without division to avoid
	// decimal quotient precision choices: balance > threshold * homeValue.
	return balance.GreaterThan(p.threshold.Mul(p.homeValue))
}
