// Package instrument builds the raw schedules of simple instruments and turns them
// into cash flows.
//
// Amounts are per unit of principal, multiplied by a scale: a 2.5% coupon bond
// scaled by 2000 pays 50 per coupon period and 2050 at maturity.
package instrument

import (
	"fmt"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/date"
)

// DefaultYears is the number of annual dividends simulated when none is given.
const DefaultYears = 30

// maxYears is the horizon of a coupon schedule, in years before maturity.
const maxYears = 100

// Dividend describes a dividend-like instrument: a constant annual payment and the
// principal returned with the last one.
type Dividend struct {
	Rate  float64 `json:"rate"`
	Scale float64 `json:"scale"`
	Years int     `json:"years,omitempty"` // DefaultYears if zero.
}

// Schedule returns the raw dates and values of d.
//
// Dates are the year ends starting with the one of origin.
func (d Dividend) Schedule(origin date.Date) ([]date.Date, []float64) {
	n := d.Years
	if n <= 0 {
		n = DefaultYears
	}
	first := origin.EndOfYear()
	days := make([]date.Date, n)
	values := make([]float64, n)
	for i := range n {
		days[i] = date.New(first.Year()+i, 12, 31)
		values[i] = d.Rate * d.Scale
	}
	values[n-1] = (1 + d.Rate) * d.Scale
	return days, values
}

// CashFlow returns the cash flow of d.
func (d Dividend) CashFlow(opts ...cashflow.Option) (*cashflow.CashFlow, error) {
	days, values := d.Schedule(origin(opts))
	return cashflow.New(days, values, opts...)
}

// Coupon describes a coupon bond paying PerYear coupons a year until Maturity, where
// the principal is returned with the last coupon.
type Coupon struct {
	Rate     float64   `json:"rate"` // per coupon period.
	Maturity date.Date `json:"maturity"`
	PerYear  int       `json:"perYear,omitempty"` // 2 if zero.
	Scale    float64   `json:"scale"`
}

// Schedule returns the raw dates and values of c, in chronological order.
//
// Coupon dates step backward from maturity by 12/PerYear months, over a hundred years.
func (c Coupon) Schedule() ([]date.Date, []float64, error) {
	perYear := c.PerYear
	if perYear == 0 {
		perYear = 2
	}
	if perYear < 0 || 12%perYear != 0 {
		return nil, nil, fmt.Errorf("invalid coupon frequency %d per year: must divide 12", perYear)
	}
	step := 12 / perYear
	n := maxYears * perYear
	days := make([]date.Date, n)
	values := make([]float64, n)
	for i := range n {
		// i-th period back from maturity, stored at the mirrored position.
		days[n-1-i] = c.Maturity.AddMonths(-i * step)
		values[n-1-i] = c.Rate * c.Scale
	}
	values[n-1] = (1 + c.Rate) * c.Scale
	return days, values, nil
}

// CashFlow returns the cash flow of c. Coupons paid the same year are summed and
// coupons before the origin are dropped.
func (c Coupon) CashFlow(opts ...cashflow.Option) (*cashflow.CashFlow, error) {
	days, values, err := c.Schedule()
	if err != nil {
		return nil, err
	}
	return cashflow.New(days, values, opts...)
}

// NewDividend is a shortcut for Dividend{rate, scale, years}.CashFlow(opts...).
func NewDividend(rate, scale float64, years int, opts ...cashflow.Option) (*cashflow.CashFlow, error) {
	return Dividend{Rate: rate, Scale: scale, Years: years}.CashFlow(opts...)
}

// NewCoupon is a shortcut for Coupon{rate, maturity, perYear, scale}.CashFlow(opts...).
func NewCoupon(rate float64, maturity date.Date, perYear int, scale float64, opts ...cashflow.Option) (*cashflow.CashFlow, error) {
	return Coupon{Rate: rate, Maturity: maturity, PerYear: perYear, Scale: scale}.CashFlow(opts...)
}

// origin returns the origin resulting from opts.
func origin(opts []cashflow.Option) date.Date {
	cfg := cashflow.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Origin
}
