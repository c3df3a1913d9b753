/*
Package factory provides JSON/YAML to Scenario conversion.

PURPOSE:
  Converts external scenario definitions (API request bodies, the YAML
  defaults file) into mortgage.Scenario values. This is where human-facing
  units live: percentages as 6.5 meaning 6.5%, annual figures, year-based
  terms. The engine itself only ever sees normalized fractions and monthly
  decimals.

NORMALIZATION RULES:
  - Down payment: amount and percent are kept in sync; the declared basis
    ("amount" or "percent") is authoritative, matching a UI where the last
    edited control wins. With no basis, a non-zero amount wins over percent.
  - Term: term_months wins over years when both are set.
  - Property tax: taxes_monthly, or property_tax_pct (annual % of price)/12.
  - Insurance: insurance_monthly, or insurance_annual/12.
  - Maintenance: monthly figure + annual buckets/12 + annual % of price/12,
    all additive.
  - Resale value: explicit value, or derived later from appreciation_pct.

USAGE:
  f := factory.NewScenarioFactory()
  scenario, err := f.Parse(jsonBytes)

SEE ALSO:
  - mortgage/scenario.go: invariant validation (runs at the end of Parse)
  - config/: embeds a ScenarioJSON as the server defaults
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/finance"
	"github.com/warp/mortgage-engine/mortgage"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ScenarioJSON is the external representation of a scenario. Percentages
// are human-style (6.5 means 6.5%), money is in dollars, dates are
// YYYY-MM-DD. Both JSON and YAML tags are carried so the same type serves
// API bodies and the defaults config.
type ScenarioJSON struct {
	Price       float64 `json:"price" yaml:"price"`
	DownPayment float64 `json:"down_payment,omitempty" yaml:"down_payment,omitempty"`
	DownPct     float64 `json:"down_pct,omitempty" yaml:"down_pct,omitempty"`
	DownBasis   string  `json:"down_basis,omitempty" yaml:"down_basis,omitempty"` // "amount" or "percent"

	Rate       float64 `json:"rate" yaml:"rate"` // annual %
	TermMonths int     `json:"term_months,omitempty" yaml:"term_months,omitempty"`
	Years      int     `json:"years,omitempty" yaml:"years,omitempty"`
	StartDate  string  `json:"start_date" yaml:"start_date"`

	PMIRate      float64  `json:"pmi_rate,omitempty" yaml:"pmi_rate,omitempty"` // annual % of loan
	PMIMonthly   *float64 `json:"pmi_monthly,omitempty" yaml:"pmi_monthly,omitempty"`
	PMIExempt    bool     `json:"pmi_exempt,omitempty" yaml:"pmi_exempt,omitempty"`
	PMICancelLTV float64  `json:"pmi_cancel_ltv,omitempty" yaml:"pmi_cancel_ltv,omitempty"` // %, default 80

	TaxesMonthly     float64            `json:"taxes_monthly,omitempty" yaml:"taxes_monthly,omitempty"`
	PropertyTaxPct   float64            `json:"property_tax_pct,omitempty" yaml:"property_tax_pct,omitempty"` // annual % of price
	InsuranceMonthly float64            `json:"insurance_monthly,omitempty" yaml:"insurance_monthly,omitempty"`
	InsuranceAnnual  float64            `json:"insurance_annual,omitempty" yaml:"insurance_annual,omitempty"`
	HOAMonthly       float64            `json:"hoa_monthly,omitempty" yaml:"hoa_monthly,omitempty"`
	MaintMonthly     float64            `json:"maint_monthly,omitempty" yaml:"maint_monthly,omitempty"`
	MaintPct         float64            `json:"maint_pct,omitempty" yaml:"maint_pct,omitempty"` // annual % of price
	Maintenance      map[string]float64 `json:"maintenance,omitempty" yaml:"maintenance,omitempty"` // annual buckets
	CostGrowth       float64            `json:"cost_growth,omitempty" yaml:"cost_growth,omitempty"` // annual %

	Rent       float64 `json:"rent" yaml:"rent"`
	RentGrowth float64 `json:"rent_growth,omitempty" yaml:"rent_growth,omitempty"` // annual %

	TaxDeduction bool    `json:"tax_deduction,omitempty" yaml:"tax_deduction,omitempty"`
	TaxRate      float64 `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty"` // marginal %

	Resale    *ResaleJSON    `json:"resale,omitempty" yaml:"resale,omitempty"`
	Refinance *RefinanceJSON `json:"refinance,omitempty" yaml:"refinance,omitempty"`
}

// ResaleJSON configures the optional sale.
type ResaleJSON struct {
	Month           int     `json:"month" yaml:"month"`
	Value           float64 `json:"value,omitempty" yaml:"value,omitempty"`
	AppreciationPct float64 `json:"appreciation_pct,omitempty" yaml:"appreciation_pct,omitempty"` // annual %
	SellingCostPct  float64 `json:"selling_cost_pct,omitempty" yaml:"selling_cost_pct,omitempty"` // %
}

// RefinanceJSON configures the optional refinance comparison.
type RefinanceJSON struct {
	Rate           float64 `json:"rate" yaml:"rate"` // annual %
	TermMonths     int     `json:"term_months,omitempty" yaml:"term_months,omitempty"`
	Years          int     `json:"years,omitempty" yaml:"years,omitempty"`
	EffectiveMonth int     `json:"effective_month" yaml:"effective_month"`
	ClosingCosts   float64 `json:"closing_costs,omitempty" yaml:"closing_costs,omitempty"`
}

// =============================================================================
// FACTORY
// =============================================================================

// ScenarioFactory converts external scenario definitions into engine input.
type ScenarioFactory struct{}

func NewScenarioFactory() *ScenarioFactory {
	return &ScenarioFactory{}
}

// Parse decodes a JSON scenario and normalizes it. The returned Scenario
// has passed validation.
func (f *ScenarioFactory) Parse(data []byte) (mortgage.Scenario, error) {
	var sj ScenarioJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return mortgage.Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return f.Build(sj)
}

// Build normalizes an already-decoded ScenarioJSON.
func (f *ScenarioFactory) Build(sj ScenarioJSON) (mortgage.Scenario, error) {
	start, err := time.Parse("2006-01-02", sj.StartDate)
	if err != nil {
		return mortgage.Scenario{}, fmt.Errorf("invalid start_date %q (use YYYY-MM-DD): %w", sj.StartDate, err)
	}

	price := finance.Dollars(sj.Price)
	down, downPct := resolveDownPayment(price, sj)

	term := sj.TermMonths
	if term == 0 {
		term = sj.Years * 12
	}

	s := mortgage.Scenario{
		HomePrice:      price,
		DownPayment:    down,
		DownPaymentPct: downPct,
		AnnualRate:     finance.Percent(sj.Rate),
		TermMonths:     term,
		StartDate:      start,

		PMI: mortgage.PMIConfig{
			AnnualRate: finance.Percent(sj.PMIRate),
			Waived:     sj.PMIExempt,
		},
		Costs: mortgage.RecurringCosts{
			PropertyTaxMonthly: monthlyPropertyTax(price, sj),
			InsuranceMonthly:   monthlyInsurance(sj),
			HOAMonthly:         finance.Dollars(sj.HOAMonthly),
			Maintenance:        buildMaintenance(price, sj),
			AnnualGrowth:       finance.Percent(sj.CostGrowth),
		},
		Rent: mortgage.RentTrack{
			Monthly:      finance.Dollars(sj.Rent),
			AnnualGrowth: finance.Percent(sj.RentGrowth),
		},
		TaxDeduction:    sj.TaxDeduction,
		MarginalTaxRate: finance.Percent(sj.TaxRate),
	}

	if sj.PMIMonthly != nil {
		flat := finance.Dollars(*sj.PMIMonthly)
		s.PMI.FlatMonthly = &flat
	}
	if sj.PMICancelLTV > 0 {
		s.PMI.CancelLTV = finance.Percent(sj.PMICancelLTV)
	}

	if sj.Resale != nil {
		s.Resale = &mortgage.ResaleConfig{
			Month:            sj.Resale.Month,
			Value:            finance.Dollars(sj.Resale.Value),
			AppreciationRate: finance.Percent(sj.Resale.AppreciationPct),
			SellingCostPct:   finance.Percent(sj.Resale.SellingCostPct),
		}
	}

	if sj.Refinance != nil {
		refiTerm := sj.Refinance.TermMonths
		if refiTerm == 0 {
			refiTerm = sj.Refinance.Years * 12
		}
		s.Refinance = &mortgage.RefinanceConfig{
			AnnualRate:     finance.Percent(sj.Refinance.Rate),
			TermMonths:     refiTerm,
			EffectiveMonth: sj.Refinance.EffectiveMonth,
			ClosingCosts:   finance.Dollars(sj.Refinance.ClosingCosts),
		}
	}

	if err := s.Validate(); err != nil {
		return mortgage.Scenario{}, err
	}
	return s, nil
}

// =============================================================================
// NORMALIZATION HELPERS
// =============================================================================

// resolveDownPayment keeps amount and percent in sync. The declared basis
// wins; otherwise a non-zero amount is authoritative and the percent is
// derived, matching the last-edited-control behavior of the dashboard.
func resolveDownPayment(price decimal.Decimal, sj ScenarioJSON) (amount, pct decimal.Decimal) {
	fromPct := func() (decimal.Decimal, decimal.Decimal) {
		p := finance.Percent(sj.DownPct)
		return finance.RoundCents(price.Mul(p)), p
	}
	fromAmount := func() (decimal.Decimal, decimal.Decimal) {
		a := finance.Dollars(sj.DownPayment)
		if price.IsZero() {
			return a, decimal.Zero
		}
		return a, a.Div(price)
	}

	switch sj.DownBasis {
	case "percent":
		return fromPct()
	case "amount":
		return fromAmount()
	}
	if sj.DownPayment > 0 {
		return fromAmount()
	}
	return fromPct()
}

func monthlyPropertyTax(price decimal.Decimal, sj ScenarioJSON) decimal.Decimal {
	if sj.TaxesMonthly > 0 {
		return finance.Dollars(sj.TaxesMonthly)
	}
	if sj.PropertyTaxPct > 0 {
		return finance.RoundCents(price.Mul(finance.Percent(sj.PropertyTaxPct)).Div(finance.Twelve))
	}
	return decimal.Zero
}

func monthlyInsurance(sj ScenarioJSON) decimal.Decimal {
	if sj.InsuranceMonthly > 0 {
		return finance.Dollars(sj.InsuranceMonthly)
	}
	if sj.InsuranceAnnual > 0 {
		return finance.RoundCents(finance.Dollars(sj.InsuranceAnnual).Div(finance.Twelve))
	}
	return decimal.Zero
}

// buildMaintenance folds the three maintenance inputs into one monthly
// figure: a direct monthly amount, annual buckets (roof, hvac, ...), and
// an annual percent of the home price. All are additive.
func buildMaintenance(price decimal.Decimal, sj ScenarioJSON) mortgage.MaintenanceConfig {
	monthly := finance.Dollars(sj.MaintMonthly)

	var buckets map[string]decimal.Decimal
	if len(sj.Maintenance) > 0 {
		buckets = make(map[string]decimal.Decimal, len(sj.Maintenance))
		annual := decimal.Zero
		for name, v := range sj.Maintenance {
			d := finance.Dollars(v)
			buckets[name] = d
			annual = annual.Add(d)
		}
		monthly = monthly.Add(annual.Div(finance.Twelve))
	}

	if sj.MaintPct > 0 {
		monthly = monthly.Add(price.Mul(finance.Percent(sj.MaintPct)).Div(finance.Twelve))
	}

	return mortgage.MaintenanceConfig{
		Monthly:       finance.RoundCents(monthly),
		AnnualBuckets: buckets,
	}
}
