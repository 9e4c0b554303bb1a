package cashflow

import (
	"fmt"

	"github.com/etnz/cashflow/date"
	"github.com/shopspring/decimal"
)

// operand is the right hand side of an arithmetic operation: either a scalar or a cash flow.
type operand struct {
	scalar float64
	flow   *CashFlow
}

// toOperand converts x into an operand.
//
// Accepted types are Go numeric types, decimal.Decimal, *CashFlow and CashFlow.
func toOperand(x any) (operand, error) {
	switch v := x.(type) {
	case *CashFlow:
		if v == nil {
			return operand{}, fmt.Errorf("%w: nil *CashFlow", ErrTypeMismatch)
		}
		return operand{flow: v}, nil
	case CashFlow:
		return operand{flow: &v}, nil
	case decimal.Decimal:
		return operand{scalar: v.InexactFloat64()}, nil
	case float64:
		return operand{scalar: v}, nil
	case float32:
		return operand{scalar: float64(v)}, nil
	case int:
		return operand{scalar: float64(v)}, nil
	case int8:
		return operand{scalar: float64(v)}, nil
	case int16:
		return operand{scalar: float64(v)}, nil
	case int32:
		return operand{scalar: float64(v)}, nil
	case int64:
		return operand{scalar: float64(v)}, nil
	case uint:
		return operand{scalar: float64(v)}, nil
	case uint8:
		return operand{scalar: float64(v)}, nil
	case uint16:
		return operand{scalar: float64(v)}, nil
	case uint32:
		return operand{scalar: float64(v)}, nil
	case uint64:
		return operand{scalar: float64(v)}, nil
	default:
		return operand{}, fmt.Errorf("%w: %T is neither a number nor a CashFlow", ErrTypeMismatch, x)
	}
}

// Add returns c + x.
//
// Like every arithmetic result, the sum is a new CashFlow with the default
// configuration, cropped to the default origin, whatever c's configuration is.
//
// A scalar x is added to every amount. A cash flow x is aligned on the union of
// both sets of dates, a date missing on one side counts as zero there.
func (c *CashFlow) Add(x any) (*CashFlow, error) {
	o, err := toOperand(x)
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	if o.flow == nil {
		return rebuild(c.series().Map(func(v float64) float64 { return v + o.scalar })), nil
	}

	a, b := c.series(), o.flow.series()
	sum := new(date.Series)
	for day := range date.Union(a, b) {
		x, _ := a.Get(day)
		y, _ := b.Get(day)
		sum.AppendAdd(day, x+y)
	}
	return rebuild(sum), nil
}

// Multiply returns c * x.
//
// A scalar x multiplies every amount. A cash flow x is multiplied entry by entry
// and must have exactly the same dates as c, otherwise ErrShapeMismatch is returned.
func (c *CashFlow) Multiply(x any) (*CashFlow, error) {
	o, err := toOperand(x)
	if err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	if o.flow == nil {
		return rebuild(c.series().Map(func(v float64) float64 { return v * o.scalar })), nil
	}
	r, err := c.pointwise(o.flow, func(x, y float64) (float64, error) { return x * y, nil })
	if err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	return r, nil
}

// Divide returns c / x.
//
// It follows the same rules as Multiply. Dividing by zero, or by a cash flow holding
// a zero amount, returns ErrDivisionByZero.
func (c *CashFlow) Divide(x any) (*CashFlow, error) {
	o, err := toOperand(x)
	if err != nil {
		return nil, fmt.Errorf("divide: %w", err)
	}
	if o.flow == nil {
		if o.scalar == 0 {
			return nil, fmt.Errorf("divide: %w", ErrDivisionByZero)
		}
		return rebuild(c.series().Map(func(v float64) float64 { return v / o.scalar })), nil
	}
	r, err := c.pointwise(o.flow, func(x, y float64) (float64, error) {
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	})
	if err != nil {
		return nil, fmt.Errorf("divide: %w", err)
	}
	return r, nil
}

// Negate flips the sign of every amount of c, in place.
func (c *CashFlow) Negate() {
	c.flows = c.series().Map(func(v float64) float64 { return -v })
}

// checkAligned returns ErrShapeMismatch unless c and o have the same dates.
func (c *CashFlow) checkAligned(o *CashFlow) error {
	a, b := c.series(), o.series()
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d entries against %d", ErrShapeMismatch, a.Len(), b.Len())
	}
	for i := range a.Len() {
		da, _ := a.At(i)
		db, _ := b.At(i)
		if da != db {
			return fmt.Errorf("%w: entry %d is on %v against %v", ErrShapeMismatch, i, da, db)
		}
	}
	return nil
}

// pointwise combines aligned entries of c and o with f.
func (c *CashFlow) pointwise(o *CashFlow, f func(x, y float64) (float64, error)) (*CashFlow, error) {
	if err := c.checkAligned(o); err != nil {
		return nil, err
	}
	a, b := c.series(), o.series()
	r := new(date.Series)
	for i := range a.Len() {
		day, x := a.At(i)
		_, y := b.At(i)
		v, err := f(x, y)
		if err != nil {
			return nil, fmt.Errorf("entry %d on %v: %w", i, day, err)
		}
		r.AppendAdd(day, v)
	}
	return rebuild(r), nil
}
