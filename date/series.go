package date

import (
	"iter"
	"slices"
)

// Series stores a chronological series of amounts, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
//
// The zero value is an empty series ready to use.
type Series struct {
	days    []Date
	amounts []float64
}

// NewSeries returns a Series from parallel slices of dates and amounts.
//
// Amounts on the same date are summed. Extra items in the longer slice are ignored.
func NewSeries(days []Date, amounts []float64) *Series {
	s := new(Series)
	for i := range min(len(days), len(amounts)) {
		s.AppendAdd(days[i], amounts[i])
	}
	return s
}

// Len returns the number of items in the series.
func (s *Series) Len() int { return len(s.days) }

// At returns the i-th date and amount.
func (s *Series) At(i int) (Date, float64) { return s.days[i], s.amounts[i] }

// Days returns a copy of the dates, in chronological order.
func (s *Series) Days() []Date { return slices.Clone(s.days) }

// Amounts returns a copy of the amounts, in chronological order.
func (s *Series) Amounts() []float64 { return slices.Clone(s.amounts) }

// First returns the earliest date of the series, or the zero Date if empty.
func (s *Series) First() Date {
	if len(s.days) == 0 {
		return Date{}
	}
	return s.days[0]
}

// Last returns the latest date of the series, or the zero Date if empty.
func (s *Series) Last() Date {
	if len(s.days) == 0 {
		return Date{}
	}
	return s.days[len(s.days)-1]
}

// Clone returns a deep copy of s.
func (s *Series) Clone() *Series {
	return &Series{days: slices.Clone(s.days), amounts: slices.Clone(s.amounts)}
}

// search returns the position of day, and whether it is present.
func (s *Series) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(s.days, day, Date.Compare)
}

// Get returns the amount at 'day' and true or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i, found := s.search(day); found {
		return s.amounts[i], true
	}
	return 0, false
}

// AppendAdd adds a point to the series.
//
// An existing amount on the same day is added to.
func (s *Series) AppendAdd(on Date, v float64) *Series {
	i, found := s.search(on)
	if found {
		s.amounts[i] += v
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.amounts = slices.Insert(s.amounts, i, v)
	return s
}

// Values returns an iterator over all date/amount pairs in the series, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.amounts[i]) {
				return
			}
		}
	}
}

// Map returns a new series with f applied to every amount. Dates are unchanged.
func (s *Series) Map(f func(float64) float64) *Series {
	r := s.Clone()
	for i, v := range r.amounts {
		r.amounts[i] = f(v)
	}
	return r
}

// AggregateByYear groups raw entries by calendar year.
//
// Amounts within the same year are summed, and the result has one entry per
// represented year, dated on the 31st of December. Input can be unsorted and
// contain duplicate dates. Years without any entry are not filled in.
func AggregateByYear(days []Date, amounts []float64) *Series {
	s := new(Series)
	for i := range min(len(days), len(amounts)) {
		s.AppendAdd(days[i].EndOfYear(), amounts[i])
	}
	return s
}

// AggregateByYear returns the series resampled by calendar year.
func (s *Series) AggregateByYear() *Series { return AggregateByYear(s.days, s.amounts) }

// CropToOrigin returns the entries dated on or after origin, in the same order.
//
// The result may be empty.
func (s *Series) CropToOrigin(origin Date) *Series {
	i, _ := s.search(origin)
	return &Series{days: slices.Clone(s.days[i:]), amounts: slices.Clone(s.amounts[i:])}
}
