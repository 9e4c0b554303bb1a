package cashflow

import (
	"fmt"

	"github.com/etnz/cashflow/date"
	"gonum.org/v1/gonum/floats"
)

// Reason tells why a comparison failed, or Matched if it did not.
type Reason int

const (
	Matched Reason = iota
	LengthMismatch
	StartMismatch
	EndMismatch
	AboveBand
	BelowBand
	SpreadTooWide
)

func (r Reason) String() string {
	switch r {
	case Matched:
		return "matched"
	case LengthMismatch:
		return "lengths not equal"
	case StartMismatch:
		return "start of cash flow is not on same date"
	case EndMismatch:
		return "end of cash flow is not on same date"
	case AboveBand:
		return "found a ratio greater than threshold"
	case BelowBand:
		return "found a ratio less than threshold"
	case SpreadTooWide:
		return "ratios are not a single scale factor"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Verdict is the outcome of a comparison between two cash flows.
type Verdict struct {
	OK     bool
	Reason Reason

	// Index, Day and Ratio locate the first ratio out of the band, for AboveBand and BelowBand.
	Index int
	Day   date.Date
	Ratio float64

	// Spread is the relative spread of the ratios, for ScaleEquivalent.
	Spread float64
}

func (v Verdict) String() string {
	switch v.Reason {
	case AboveBand, BelowBand:
		return fmt.Sprintf("%v: %.4f on %v", v.Reason, v.Ratio, v.Day)
	case Matched, SpreadTooWide:
		if v.Spread != 0 {
			return fmt.Sprintf("%v (spread %.4f)", v.Reason, v.Spread)
		}
	}
	return v.Reason.String()
}

func failed(r Reason) Verdict { return Verdict{Reason: r} }

var matched = Verdict{OK: true, Reason: Matched}

// StructuralMatch reports whether c and o have the same length, first date and last date.
//
// Checks are made in that order and the first failing one is the Reason.
func (c *CashFlow) StructuralMatch(o *CashFlow) Verdict {
	a, b := c.series(), o.series()
	switch {
	case a.Len() != b.Len():
		return failed(LengthMismatch)
	case a.First() != b.First():
		return failed(StartMismatch)
	case a.Last() != b.Last():
		return failed(EndMismatch)
	}
	return matched
}

// Ratios returns c's amounts divided by o's, position by position.
//
// Dates are not reconciled: callers check StructuralMatch first. A zero amount in o
// returns ErrDivisionByZero.
func (c *CashFlow) Ratios(o *CashFlow) ([]float64, error) {
	a, b := c.series(), o.series()
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d entries against %d", ErrShapeMismatch, a.Len(), b.Len())
	}
	ratios := make([]float64, a.Len())
	for i := range ratios {
		_, x := a.At(i)
		day, y := b.At(i)
		if y == 0 {
			return nil, fmt.Errorf("ratio of entry %d on %v: %w", i, day, ErrDivisionByZero)
		}
		ratios[i] = x / y
	}
	return ratios, nil
}

// ApproxEqual reports whether every amount of c is within c's threshold of the amount
// of o at the same position, that is whether every ratio lies in [1-t, 1+t].
//
// The first ratio out of the band gives the Reason.
func (c *CashFlow) ApproxEqual(o *CashFlow) (Verdict, error) {
	if v := c.StructuralMatch(o); !v.OK {
		return v, nil
	}
	ratios, err := c.Ratios(o)
	if err != nil {
		return Verdict{}, err
	}
	t := c.cfg.Threshold
	for i, r := range ratios {
		var reason Reason
		switch {
		case r > 1+t:
			reason = AboveBand
		case r < 1-t:
			reason = BelowBand
		default:
			continue
		}
		day, _ := c.series().At(i)
		return Verdict{Reason: reason, Index: i, Day: day, Ratio: r}, nil
	}
	return matched, nil
}

// ScaleEquivalent reports whether c is approximately a constant multiple of o.
//
// With maxR and minR the extreme ratios and mid their average, c and o are scale
// equivalent if (maxR-minR)/mid < 2*threshold. Unlike ApproxEqual the scale factor
// itself does not matter: a series is scale equivalent to its double.
func (c *CashFlow) ScaleEquivalent(o *CashFlow) (Verdict, error) {
	if v := c.StructuralMatch(o); !v.OK {
		return v, nil
	}
	ratios, err := c.Ratios(o)
	if err != nil {
		return Verdict{}, err
	}
	if len(ratios) == 0 {
		return matched, nil
	}
	maxR, minR := floats.Max(ratios), floats.Min(ratios)
	mid := (maxR + minR) / 2
	spread := (maxR - minR) / mid
	if spread < 2*c.cfg.Threshold {
		return Verdict{OK: true, Reason: Matched, Spread: spread}, nil
	}
	return Verdict{Reason: SpreadTooWide, Spread: spread}, nil
}
