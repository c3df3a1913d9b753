/*
Package report renders a mortgage analysis as a formal PDF document.

PURPOSE:
  Builds the exportable report: assumptions, maintenance breakdown, key
  metrics, refinance analysis, resale impact, and the FULL amortization
  schedule. The report is a pure consumer of the engine's output - it
  never recomputes or alters values.

SECTIONS:
  1. Title + generation date
  2. Assumptions (price, down payment, loan, rate, term, start,
     annualized recurring costs)
  3. Maintenance breakdown (annual buckets, when provided)
  4. Key metrics (monthly P&I, first-month total, life-of-loan interest)
  5. Refinance analysis (when configured)
  6. Resale impact (when configured)
  7. Amortization schedule, all periods

USAGE:
  data, err := report.Generate(analysis)
  // data is a complete PDF document

SEE ALSO:
  - mortgage/analyze.go: produces the Analysis consumed here
*/
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/warp/mortgage-engine/mortgage"
)

const (
	marginLeft   = 12.0
	marginTop    = 12.0
	marginRight  = 12.0
	marginBottom = 15.0
)

// builder wraps the PDF state for one report.
type builder struct {
	pdf      *fpdf.Fpdf
	analysis *mortgage.Analysis
	width    float64 // usable content width
}

// Generate renders the complete report for an analysis.
func Generate(a *mortgage.Analysis) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	pw, _ := pdf.GetPageSize()
	b := &builder{pdf: pdf, analysis: a, width: pw - marginLeft - marginRight}

	b.addTitle()
	b.addAssumptions()
	b.addMaintenance()
	b.addMetrics()
	b.addRefinance()
	b.addResale()
	b.addSchedule()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) addTitle() {
	b.pdf.AddPage()
	b.pdf.SetFont("Arial", "B", 20)
	b.pdf.SetTextColor(0, 51, 102)
	b.pdf.CellFormat(b.width, 12, "Mortgage Analysis Report", "", 1, "C", false, 0, "")

	b.pdf.SetFont("Arial", "I", 10)
	b.pdf.SetTextColor(80, 80, 80)
	b.pdf.CellFormat(b.width, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	b.pdf.Ln(4)
}

func (b *builder) addAssumptions() {
	s := b.analysis.Scenario
	b.heading("Assumptions")
	b.kvTable([][2]string{
		{"Home Price", money(s.HomePrice)},
		{"Down Payment", fmt.Sprintf("%s%% (%s)", s.DownPaymentPct.Mul(decimal.NewFromInt(100)).StringFixed(1), money(s.DownPayment))},
		{"Loan Amount", money(s.LoanAmount())},
		{"Rate", s.AnnualRate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"},
		{"Term", fmt.Sprintf("%d months", s.TermMonths)},
		{"Start Date", s.StartDate.Format("Jan 2006")},
		{"Property Taxes", money(s.Costs.PropertyTaxMonthly.Mul(decimal.NewFromInt(12))) + "/yr"},
		{"Insurance", money(s.Costs.InsuranceMonthly.Mul(decimal.NewFromInt(12))) + "/yr"},
		{"HOA", money(s.Costs.HOAMonthly.Mul(decimal.NewFromInt(12))) + "/yr"},
	})
}

func (b *builder) addMaintenance() {
	buckets := b.analysis.Scenario.Costs.Maintenance.AnnualBuckets
	if len(buckets) == 0 {
		return
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	b.heading("Maintenance (Annual)")
	rows := make([][2]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, [2]string{capitalize(name), money(buckets[name])})
	}
	b.kvTable(rows)
}

func (b *builder) addMetrics() {
	a := b.analysis
	b.heading("Key Metrics")
	b.kvTable([][2]string{
		{"Monthly P&I", money(a.FirstMonth.PrincipalInterest)},
		{"First Month Total", money(a.FirstMonth.Total())},
		{"Total Interest (life)", money(a.Schedule.TotalInterest())},
	})
}

func (b *builder) addRefinance() {
	refi := b.analysis.Refinance
	if refi == nil {
		return
	}

	breakeven := "Never within the horizon"
	if refi.BreakevenFound {
		breakeven = fmt.Sprintf("Month %d", refi.BreakevenMonth)
	}
	conclusion := "Refinance costs more"
	if refi.Savings().IsPositive() {
		conclusion = "Refinance saves money"
	}

	b.heading("Refinance Analysis")
	b.kvTable([][2]string{
		{"Effective Month", fmt.Sprintf("%d", refi.EffectiveMonth)},
		{"Balance Refinanced", money(refi.RemainingBalance)},
		{"Baseline Interest", money(refi.BaselineTotalInterest)},
		{"Refinance Interest + Costs", money(refi.RefinanceTotalInterest.Add(refi.ClosingCosts))},
		{"Savings", money(refi.Savings())},
		{"Breakeven", breakeven},
		{"Conclusion", conclusion},
	})
}

func (b *builder) addResale() {
	resale := b.analysis.Resale
	if resale == nil {
		return
	}

	b.heading("Resale Impact")
	b.kvTable([][2]string{
		{"Sale Month", fmt.Sprintf("%d", resale.SaleMonth)},
		{"Resale Price", money(resale.ResaleValue)},
		{"Selling Costs", money(resale.SellingCosts)},
		{"Net Proceeds", money(resale.NetProceeds)},
		{"Loan Balance at Sale", money(resale.BalanceAtSale)},
		{"Net Equity Realized", money(resale.NetEquity)},
	})
}

func (b *builder) addSchedule() {
	b.pdf.AddPage()
	b.heading("Amortization Schedule (Full)")

	headers := []string{"Month", "Date", "Payment", "Principal", "Interest", "PMI", "Cum. Interest", "Balance"}
	widths := []float64{18, 26, 32, 32, 32, 26, 38, 38}

	b.pdf.SetFont("Arial", "B", 8)
	b.pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		b.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(-1)

	b.pdf.SetFont("Arial", "", 8)
	for _, row := range b.analysis.Schedule.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.Period),
			row.Date.Format("Jan 2006"),
			money(row.Payment),
			money(row.Principal),
			money(row.Interest),
			money(row.PMI),
			money(row.CumulativeInterest),
			money(row.EndingBalance),
		}
		for i, c := range cells {
			b.pdf.CellFormat(widths[i], 5, c, "1", 0, "C", false, 0, "")
		}
		b.pdf.Ln(-1)
	}
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

func (b *builder) heading(text string) {
	b.pdf.SetFont("Arial", "B", 12)
	b.pdf.SetTextColor(0, 51, 102)
	b.pdf.CellFormat(b.width, 8, text, "", 1, "L", false, 0, "")
	b.pdf.SetTextColor(40, 40, 40)
}

func (b *builder) kvTable(rows [][2]string) {
	b.pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		b.pdf.CellFormat(70, 6, row[0], "1", 0, "L", false, 0, "")
		b.pdf.CellFormat(70, 6, row[1], "1", 1, "L", false, 0, "")
	}
	b.pdf.Ln(3)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// money formats a decimal as $1,234.56 (negatives as -$1,234.56).
func money(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	dot := strings.Index(fixed, ".")
	intPart, frac := fixed[:dot], fixed[dot:]

	var sb strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}

	out := "$" + sb.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
