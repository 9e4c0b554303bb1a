package renderer

import (
	"math"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/date"
	"github.com/etnz/cashflow/portfolio"
)

// Row is one annual entry of a cash flow report.
type Row struct {
	Date         date.Date `json:"date"`
	Amount       string    `json:"amount"`
	PresentValue string    `json:"presentValue"`
}

// CashFlowReport is the printable view of a CashFlow.
type CashFlowReport struct {
	Title     string    `json:"title"`
	Origin    date.Date `json:"origin"`
	Rate      string    `json:"rate"`
	Threshold string    `json:"threshold"`
	Rows      []Row     `json:"rows"`
	NPV       string    `json:"npv"`
}

// NewCashFlowReport computes the report of cf, amounts are displayed in currency.
//
// Each row's present value is the amount discounted once per position after the
// first, so that they sum up to the NPV.
func NewCashFlowReport(title string, cf *cashflow.CashFlow, currency string) *CashFlowReport {
	r := &CashFlowReport{
		Title:     title,
		Origin:    cf.Origin(),
		Rate:      FormatPercent(cf.Rate()),
		Threshold: FormatPercent(cf.Threshold()),
	}
	amounts := cf.Amounts()
	for i, day := range cf.Days() {
		amount := amounts[i]
		pv := amount / math.Pow(1+cf.Rate(), float64(i))
		r.Rows = append(r.Rows, Row{
			Date:         day,
			Amount:       FormatAmount(amount, currency),
			PresentValue: FormatAmount(pv, currency),
		})
	}
	npv, err := cf.NPV()
	if err != nil {
		r.NPV = "n/a (" + err.Error() + ")"
	} else {
		r.NPV = FormatAmount(npv, currency)
	}
	return r
}

// Check is the printable outcome of one comparison.
type Check struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// RatioRow is one position of a comparison.
type RatioRow struct {
	Date  date.Date `json:"date"`
	A     string    `json:"a"`
	B     string    `json:"b"`
	Ratio string    `json:"ratio"`
}

// ComparisonReport is the printable view of the comparison of two cash flows.
type ComparisonReport struct {
	A          string     `json:"a"`
	B          string     `json:"b"`
	Threshold  string     `json:"threshold"`
	Structural Check      `json:"structural"`
	Approx     Check      `json:"approx"`
	Scale      Check      `json:"scale"`
	Rows       []RatioRow `json:"rows"`
}

// NewComparisonReport compares a to b with a's threshold.
//
// Ratios are listed only when both cash flows match structurally.
func NewComparisonReport(nameA string, a *cashflow.CashFlow, nameB string, b *cashflow.CashFlow, currency string) *ComparisonReport {
	r := &ComparisonReport{A: nameA, B: nameB, Threshold: FormatPercent(a.Threshold())}

	structural := a.StructuralMatch(b)
	r.Structural = Check{OK: structural.OK, Detail: structural.String()}
	r.Approx = check(a.ApproxEqual(b))
	r.Scale = check(a.ScaleEquivalent(b))
	if !structural.OK {
		return r
	}

	ratios, err := a.Ratios(b)
	days, amountsA, amountsB := a.Days(), a.Amounts(), b.Amounts()
	for i, day := range days {
		row := RatioRow{
			Date: day,
			A:    FormatAmount(amountsA[i], currency),
			B:    FormatAmount(amountsB[i], currency),
		}
		if err == nil {
			row.Ratio = FormatRatio(ratios[i])
		} else {
			row.Ratio = "n/a"
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// check converts a comparison outcome.
func check(v cashflow.Verdict, err error) Check {
	if err != nil {
		return Check{Detail: err.Error()}
	}
	return Check{OK: v.OK, Detail: v.String()}
}

// HoldingRow is one holding of a blend report.
type HoldingRow struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
	NPV    string `json:"npv"`
}

// BlendReport is the printable view of a blended portfolio.
type BlendReport struct {
	Holdings    []HoldingRow    `json:"holdings"`
	TotalWeight string          `json:"totalWeight"`
	Blend       *CashFlowReport `json:"blend"`
}

// NewBlendReport describes p and its blended cash flow.
func NewBlendReport(p *portfolio.Portfolio, blended *cashflow.CashFlow, currency string) *BlendReport {
	r := &BlendReport{
		TotalWeight: FormatPercent(p.TotalWeight()),
		Blend:       NewCashFlowReport("Blended cash flow", blended, currency),
	}
	for _, h := range p.Holdings() {
		row := HoldingRow{Name: h.Name, Weight: FormatPercent(h.Weight)}
		if npv, err := h.CashFlow.NPV(); err == nil {
			row.NPV = FormatAmount(npv, currency)
		} else {
			row.NPV = "n/a"
		}
		r.Holdings = append(r.Holdings, row)
	}
	return r
}
