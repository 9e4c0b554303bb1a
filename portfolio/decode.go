package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/instrument"
)

// This file reads a portfolio from JSON:
//
//	{
//	  "holdings": {
//	    "Stock": {"weight": 0.4, "dividend": {"rate": 0.025, "scale": 1000}},
//	    "Bond":  {"weight": 0.6, "coupon": {"rate": 0.025, "maturity": "2024-03-14", "scale": 2000}},
//	    "Rent":  {"weight": 1, "flows": [{"date": "2015-06-30", "amount": 12}]}
//	  }
//	}
//
// Each holding has exactly one of "flows", "dividend" or "coupon".

// jholding is the JSON representation of a holding.
type jholding struct {
	Weight   *float64             `json:"weight"`
	Flows    json.RawMessage      `json:"flows"`
	Dividend *instrument.Dividend `json:"dividend"`
	Coupon   *instrument.Coupon   `json:"coupon"`
}

// Decode reads a portfolio from r. opts configure every holding's cash flow.
func Decode(r io.Reader, opts ...cashflow.Option) (*Portfolio, error) {
	var doc struct {
		Holdings map[string]jholding `json:"holdings"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}

	p := New()
	for name, jh := range doc.Holdings {
		cf, err := jh.cashFlow(opts)
		if err != nil {
			return nil, fmt.Errorf("invalid holding %q: %w", name, err)
		}
		if jh.Weight == nil {
			return nil, fmt.Errorf("invalid holding %q: missing weight", name)
		}
		if err := p.Add(name, cf, *jh.Weight); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// cashFlow builds the cash flow of the one source defined in jh.
func (jh jholding) cashFlow(opts []cashflow.Option) (*cashflow.CashFlow, error) {
	defined := 0
	for _, ok := range []bool{jh.Flows != nil, jh.Dividend != nil, jh.Coupon != nil} {
		if ok {
			defined++
		}
	}
	if defined != 1 {
		return nil, fmt.Errorf("want exactly one of \"flows\", \"dividend\" or \"coupon\", got %d", defined)
	}

	switch {
	case jh.Dividend != nil:
		return jh.Dividend.CashFlow(opts...)
	case jh.Coupon != nil:
		if jh.Coupon.Maturity.IsZero() {
			return nil, fmt.Errorf("coupon without maturity")
		}
		return jh.Coupon.CashFlow(opts...)
	default:
		days, values, err := cashflow.DecodeSchedule(bytes.NewReader(jh.Flows), "")
		if err != nil {
			return nil, err
		}
		return cashflow.New(days, values, opts...)
	}
}
