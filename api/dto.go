/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-based domain model from the external contract:
  clients send a factory.ScenarioJSON and receive float JSON, while every
  computation stays in decimals internally.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Complex response wrappers

CHART CONTRACT:
  The analysis response carries exactly what the charts consume:
  (a) the six-amount first-month cost breakdown, (b) the rent/buy
  cumulative pair to the resale horizon, (c) the same pair over the full
  term, (d) the cumulative-interest sequence indexed by month.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/scenario.go: ScenarioJSON, the request schema
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/mortgage"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// CostBreakdownDTO is the six named amounts of one period's cost snapshot.
type CostBreakdownDTO struct {
	Period            int     `json:"period"`
	PrincipalInterest float64 `json:"principal_interest"`
	Taxes             float64 `json:"taxes"`
	Insurance         float64 `json:"insurance"`
	HOA               float64 `json:"hoa"`
	Maintenance       float64 `json:"maintenance"`
	PMI               float64 `json:"pmi"`
	Total             float64 `json:"total"`
}

// MetricsDTO carries the headline numbers.
type MetricsDTO struct {
	LoanAmount      float64 `json:"loan_amount"`
	MonthlyPI       float64 `json:"monthly_pi"`
	FirstMonthTotal float64 `json:"first_month_total"`
	TotalInterest   float64 `json:"total_interest"`
}

// SeriesPairDTO is one rent/buy cumulative-cost pair.
type SeriesPairDTO struct {
	Rent []float64 `json:"rent"`
	Buy  []float64 `json:"buy"`
}

// RentBuyDTO mirrors the dual-horizon chart contract.
type RentBuyDTO struct {
	Full     SeriesPairDTO  `json:"full"`
	ToResale *SeriesPairDTO `json:"to_resale,omitempty"`
}

// ResaleDTO summarizes equity at sale.
type ResaleDTO struct {
	SaleMonth     int     `json:"sale_month"`
	ResaleValue   float64 `json:"resale_value"`
	SellingCosts  float64 `json:"selling_costs"`
	NetProceeds   float64 `json:"net_proceeds"`
	BalanceAtSale float64 `json:"balance_at_sale"`
	NetEquity     float64 `json:"net_equity"`
}

// RefinanceDTO reports the comparison; a null breakeven_month is the
// explicit absence indicator.
type RefinanceDTO struct {
	EffectiveMonth    int     `json:"effective_month"`
	RemainingBalance  float64 `json:"remaining_balance"`
	ClosingCosts      float64 `json:"closing_costs"`
	BaselineInterest  float64 `json:"baseline_interest"`
	RefinanceInterest float64 `json:"refinance_interest"`
	Savings           float64 `json:"savings"`
	BreakevenMonth    *int    `json:"breakeven_month"`
}

// AmortizationRowDTO is one schedule period.
type AmortizationRowDTO struct {
	Period              int     `json:"period"`
	Date                string  `json:"date"`
	BeginningBalance    float64 `json:"beginning_balance"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	Principal           float64 `json:"principal"`
	PMI                 float64 `json:"pmi"`
	EndingBalance       float64 `json:"ending_balance"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// AnalysisDTO is the full analyze response.
type AnalysisDTO struct {
	Metrics            MetricsDTO       `json:"metrics"`
	FirstMonth         CostBreakdownDTO `json:"first_month"`
	RentBuy            RentBuyDTO       `json:"rent_buy"`
	CumulativeInterest []float64        `json:"cumulative_interest"`
	Resale             *ResaleDTO       `json:"resale,omitempty"`
	Refinance          *RefinanceDTO    `json:"refinance,omitempty"`
	TotalRows          int              `json:"total_rows"`
}

// ScheduleResponse is one page of the amortization table. The engine
// returns the complete sequence; paging happens here in the API layer.
type ScheduleResponse struct {
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
	TotalRows  int                  `json:"total_rows"`
	Rows       []AmortizationRowDTO `json:"rows"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func f(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func floatSeries(in []decimal.Decimal) []float64 {
	out := make([]float64, len(in))
	for i, d := range in {
		out[i] = f(d)
	}
	return out
}

func toSeriesPairDTO(s mortgage.RentBuySeries) SeriesPairDTO {
	return SeriesPairDTO{Rent: floatSeries(s.Rent), Buy: floatSeries(s.Buy)}
}

func toCostBreakdownDTO(m mortgage.MonthlyCostSummary) CostBreakdownDTO {
	return CostBreakdownDTO{
		Period:            m.Period,
		PrincipalInterest: f(m.PrincipalInterest),
		Taxes:             f(m.Taxes),
		Insurance:         f(m.Insurance),
		HOA:               f(m.HOA),
		Maintenance:       f(m.Maintenance),
		PMI:               f(m.PMI),
		Total:             f(m.Total()),
	}
}

func toRowDTO(row mortgage.AmortizationRow) AmortizationRowDTO {
	return AmortizationRowDTO{
		Period:              row.Period,
		Date:                row.Date.Format("2006-01-02"),
		BeginningBalance:    f(row.BeginningBalance),
		Payment:             f(row.Payment),
		Interest:            f(row.Interest),
		Principal:           f(row.Principal),
		PMI:                 f(row.PMI),
		EndingBalance:       f(row.EndingBalance),
		CumulativeInterest:  f(row.CumulativeInterest),
		CumulativePrincipal: f(row.CumulativePrincipal),
	}
}

func toAnalysisDTO(a *mortgage.Analysis) AnalysisDTO {
	dto := AnalysisDTO{
		Metrics: MetricsDTO{
			LoanAmount:      f(a.Scenario.LoanAmount()),
			MonthlyPI:       f(a.FirstMonth.PrincipalInterest),
			FirstMonthTotal: f(a.FirstMonth.Total()),
			TotalInterest:   f(a.Schedule.TotalInterest()),
		},
		FirstMonth:         toCostBreakdownDTO(a.FirstMonth),
		RentBuy:            RentBuyDTO{Full: toSeriesPairDTO(a.RentBuy.Full)},
		CumulativeInterest: floatSeries(a.Schedule.CumulativeInterestSeries()),
		TotalRows:          len(a.Schedule.Rows),
	}

	if a.RentBuy.ToResale != nil {
		pair := toSeriesPairDTO(*a.RentBuy.ToResale)
		dto.RentBuy.ToResale = &pair
	}

	if a.Resale != nil {
		dto.Resale = &ResaleDTO{
			SaleMonth:     a.Resale.SaleMonth,
			ResaleValue:   f(a.Resale.ResaleValue),
			SellingCosts:  f(a.Resale.SellingCosts),
			NetProceeds:   f(a.Resale.NetProceeds),
			BalanceAtSale: f(a.Resale.BalanceAtSale),
			NetEquity:     f(a.Resale.NetEquity),
		}
	}

	if a.Refinance != nil {
		refi := &RefinanceDTO{
			EffectiveMonth:    a.Refinance.EffectiveMonth,
			RemainingBalance:  f(a.Refinance.RemainingBalance),
			ClosingCosts:      f(a.Refinance.ClosingCosts),
			BaselineInterest:  f(a.Refinance.BaselineTotalInterest),
			RefinanceInterest: f(a.Refinance.RefinanceTotalInterest),
			Savings:           f(a.Refinance.Savings()),
		}
		if a.Refinance.BreakevenFound {
			m := a.Refinance.BreakevenMonth
			refi.BreakevenMonth = &m
		}
		dto.Refinance = refi
	}

	return dto
}
