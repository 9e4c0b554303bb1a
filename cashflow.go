package cashflow

import (
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/cashflow/date"
	"gonum.org/v1/gonum/floats"
)

// CashFlow is a series of annual amounts, one per calendar year, dated on the
// 31st of December, together with the configuration used to value and compare it.
//
// A CashFlow owns its series: constructors copy their input and arithmetic
// returns new values. Only Negate, SetRate and SetThreshold modify a CashFlow.
type CashFlow struct {
	flows *date.Series
	cfg   Config
}

// build crops s to the configured origin and returns the CashFlow.
func build(s *date.Series, opts []Option) (*CashFlow, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = new(date.Series)
	}
	return &CashFlow{flows: s.CropToOrigin(cfg.Origin), cfg: cfg}, nil
}

// Clone returns a deep copy of other, cropped to the origin. A nil other gives an
// empty CashFlow.
//
// The copy gets the default configuration, modified by opts. It does not inherit
// other's configuration.
func Clone(other *CashFlow, opts ...Option) (*CashFlow, error) {
	return build(other.series(), opts)
}

// New returns a CashFlow from raw dates and values.
//
// Values are summed per calendar year, then entries before the origin are dropped.
func New(dates []date.Date, values []float64, opts ...Option) (*CashFlow, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("%w: %d dates for %d values", ErrShapeMismatch, len(dates), len(values))
	}
	return build(date.AggregateByYear(dates, values), opts)
}

// FromSeries is like New for a series already keyed by date.
func FromSeries(s *date.Series, opts ...Option) (*CashFlow, error) {
	if s == nil {
		return build(nil, opts)
	}
	return build(s.AggregateByYear(), opts)
}

// FromWeighted blends named cash flows into one.
//
// Every date present in at least one of the cash flows is present in the result, a cash
// flow missing a date counts as zero on that date. Each amount is multiplied by the weight
// of its name, then amounts are summed per date.
//
// Every name in named must have a weight; weights without a cash flow are ignored.
// Inputs are assumed cropped already, so the result is not cropped again.
func FromWeighted(named map[string]*CashFlow, weights map[string]float64, opts ...Option) (*CashFlow, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	names := slices.Sorted(maps.Keys(named))
	all := make([]*date.Series, 0, len(names))
	w := make([]float64, 0, len(names))
	for _, name := range names {
		weight, ok := weights[name]
		if !ok {
			return nil, fmt.Errorf("%w: no weight for %q", ErrShapeMismatch, name)
		}
		cf := named[name]
		if cf == nil {
			return nil, fmt.Errorf("%w: no cash flow for %q", ErrShapeMismatch, name)
		}
		all, w = append(all, cf.series()), append(w, weight)
	}

	blend := new(date.Series)
	aligned := make([]float64, len(all))
	for day := range date.Union(all...) {
		for i, s := range all {
			aligned[i], _ = s.Get(day) // missing counts as zero
		}
		blend.AppendAdd(day, floats.Dot(aligned, w))
	}
	return &CashFlow{flows: blend, cfg: cfg}, nil
}

// series returns the underlying series, never nil. A nil CashFlow is empty.
func (c *CashFlow) series() *date.Series {
	if c == nil || c.flows == nil {
		return new(date.Series)
	}
	return c.flows
}

// rebuild returns a CashFlow holding s with the default configuration, cropped to
// the default origin, like Clone without options.
func rebuild(s *date.Series) *CashFlow {
	cfg := DefaultConfig()
	return &CashFlow{flows: s.CropToOrigin(cfg.Origin), cfg: cfg}
}

// Len returns the number of annual entries.
func (c *CashFlow) Len() int { return c.series().Len() }

// Series returns a copy of the annual series.
func (c *CashFlow) Series() *date.Series { return c.series().Clone() }

// Days returns the dates of the entries in ascending order.
func (c *CashFlow) Days() []date.Date { return c.series().Days() }

// Amounts returns the amounts of the entries in date order.
func (c *CashFlow) Amounts() []float64 { return c.series().Amounts() }

// Config returns the configuration of c.
func (c *CashFlow) Config() Config { return c.cfg }

// Origin returns the time zero c was cropped to.
func (c *CashFlow) Origin() date.Date { return c.cfg.Origin }

// Rate returns the discount rate.
func (c *CashFlow) Rate() float64 { return c.cfg.Rate }

// Threshold returns the equality threshold.
func (c *CashFlow) Threshold() float64 { return c.cfg.Threshold }

// SetRate changes the discount rate used by NPV.
func (c *CashFlow) SetRate(rate float64) error {
	cfg := c.cfg
	cfg.Rate = rate
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// SetThreshold changes the equality threshold used by comparisons.
func (c *CashFlow) SetThreshold(threshold float64) error {
	cfg := c.cfg
	cfg.Threshold = threshold
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// String returns a one line description of c with its NPV and first date.
func (c *CashFlow) String() string {
	npv, err := c.NPV()
	if err != nil {
		return "CashFlow (empty)"
	}
	return fmt.Sprintf("CashFlow NPV = %v on %v", npv, c.series().First())
}
