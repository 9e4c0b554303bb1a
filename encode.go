package cashflow

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cashflow/date"
	"github.com/shopspring/decimal"
)

// This file contains the JSON representation of schedules.
//
// A schedule is a list of flows:
//
//	[{"date": "2014-12-31", "amount": 25}, {"date": "2015-12-31", "amount": "1025.00"}]
//
// Amounts can be JSON numbers or strings, they are read exactly before being
// converted to float64, so that "0.1" is the closest float to 0.1.

// jflow is the JSON representation of one flow.
type jflow struct {
	Date   date.Date `json:"date"`
	Amount float64   `json:"amount"`
}

// DecodeSchedule reads raw dates and amounts from a JSON document.
//
// path is a JSONPath expression selecting the list of flows in the document, the
// document itself is the list when path is "" or "$".
func DecodeSchedule(r io.Reader, path string) ([]date.Date, []float64, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("invalid schedule: %w", err)
	}
	if path != "" && path != "$" {
		v, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, nil, fmt.Errorf("error selecting %q: %w", path, err)
		}
		doc = v
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("invalid schedule at %q: want a list of flows got %T", path, doc)
	}

	days := make([]date.Date, 0, len(items))
	amounts := make([]float64, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("invalid flow #%d: want an object got %T", i, item)
		}
		str, ok := obj["date"].(string)
		if !ok {
			return nil, nil, fmt.Errorf("invalid flow #%d: missing \"date\"", i)
		}
		day, err := date.Parse(str)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid flow #%d: %w", i, err)
		}
		amount, err := decodeAmount(obj["amount"])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid flow #%d on %v: %w", i, day, err)
		}
		days, amounts = append(days, day), append(amounts, amount.InexactFloat64())
	}
	return days, amounts, nil
}

// decodeAmount converts a decoded JSON value into a decimal.
func decodeAmount(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case json.Number:
		return decimal.NewFromString(a.String())
	case string:
		return decimal.NewFromString(a)
	case float64:
		return decimal.NewFromFloat(a), nil
	case nil:
		return decimal.Decimal{}, fmt.Errorf("missing \"amount\"")
	default:
		return decimal.Decimal{}, fmt.Errorf("invalid amount type %T", v)
	}
}

// MarshalJSON writes the configuration and the annual flows of c.
func (c *CashFlow) MarshalJSON() ([]byte, error) {
	flows := make([]jflow, 0, c.Len())
	for day, amount := range c.series().Values() {
		flows = append(flows, jflow{Date: day, Amount: amount})
	}
	var w jsonObjectWriter
	w.Append("origin", c.cfg.Origin)
	w.Append("rate", c.cfg.Rate)
	w.Append("threshold", c.cfg.Threshold)
	w.Append("flows", flows)
	return w.MarshalJSON()
}

// EncodeSchedule writes the flows of c as a schedule that DecodeSchedule can read.
func EncodeSchedule(w io.Writer, c *CashFlow) error {
	flows := make([]jflow, 0, c.Len())
	for day, amount := range c.series().Values() {
		flows = append(flows, jflow{Date: day, Amount: amount})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(flows)
}
