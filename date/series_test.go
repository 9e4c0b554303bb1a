package date

import (
	"slices"
	"testing"
)

func TestAppendAdd(t *testing.T) {
	s := new(Series)
	d1, d2 := New(2025, 07, 01), New(2024, 07, 01)

	// Test is about appending values in reverse order and on the same day, and checking
	// that everything is as expected at every step of the way.

	if s.Len() != 0 {
		t.Errorf("Series.Len() = %v want 0", s.Len())
	}

	s.AppendAdd(d1, 1)
	s.AppendAdd(d2, 2)
	if s.Len() != 2 {
		t.Errorf("AppendAdd(d2, 2).Len() = %v want 2", s.Len())
	}
	if s.days[0] != d2 || s.days[1] != d1 {
		t.Errorf("series days = %v want [%v %v]", s.days, d2, d1)
	}

	s.AppendAdd(d1, 3)
	if s.Len() != 2 {
		t.Errorf("AppendAdd(d1, 3).Len() = %v want 2", s.Len())
	}
	if v, ok := s.Get(d1); !ok || v != 4 {
		t.Errorf("Get(d1) = %v, %v want 4, true", v, ok)
	}
	if _, ok := s.Get(New(2000, 1, 1)); ok {
		t.Errorf("Get(2000-01-01) found a value in %v", s.days)
	}
}

func TestAggregateByYear(t *testing.T) {
	// 2014-01-01:10, 2014-06-01:5, 2015-01-01:20 -> 2014-12-31:15, 2015-12-31:20
	got := AggregateByYear(
		[]Date{New(2015, 1, 1), New(2014, 6, 1), New(2014, 1, 1)},
		[]float64{20, 5, 10},
	)
	wantDays := []Date{New(2014, 12, 31), New(2015, 12, 31)}
	wantAmounts := []float64{15, 20}

	if !slices.Equal(got.Days(), wantDays) {
		t.Errorf("AggregateByYear().Days() = %v want %v", got.Days(), wantDays)
	}
	if !slices.Equal(got.Amounts(), wantAmounts) {
		t.Errorf("AggregateByYear().Amounts() = %v want %v", got.Amounts(), wantAmounts)
	}
}

func TestAggregateByYear_DuplicatesAndGaps(t *testing.T) {
	got := AggregateByYear(
		[]Date{New(2020, 3, 1), New(2020, 3, 1), New(2017, 12, 31)},
		[]float64{1, 2, 7},
	)
	wantDays := []Date{New(2017, 12, 31), New(2020, 12, 31)}
	if !slices.Equal(got.Days(), wantDays) {
		t.Errorf("AggregateByYear().Days() = %v want %v", got.Days(), wantDays)
	}
	if !slices.Equal(got.Amounts(), []float64{7, 3}) {
		t.Errorf("AggregateByYear().Amounts() = %v want [7 3]", got.Amounts())
	}
}

func TestAggregateByYear_Idempotent(t *testing.T) {
	annual := AggregateByYear(
		[]Date{New(2014, 12, 31), New(2015, 12, 31), New(2017, 12, 31)},
		[]float64{1.5, -2, 3},
	)
	again := annual.AggregateByYear()
	if !slices.Equal(again.Days(), annual.Days()) || !slices.Equal(again.Amounts(), annual.Amounts()) {
		t.Errorf("AggregateByYear() twice = %v %v want %v %v", again.Days(), again.Amounts(), annual.Days(), annual.Amounts())
	}
}

func TestCropToOrigin(t *testing.T) {
	s := NewSeries(
		[]Date{New(2012, 12, 31), New(2013, 12, 30), New(2013, 12, 31), New(2014, 12, 31)},
		[]float64{1, 2, 3, 4},
	)
	testCases := []struct {
		name        string
		origin      Date
		wantDays    []Date
		wantAmounts []float64
	}{
		{"before everything", New(2000, 1, 1), s.Days(), s.Amounts()},
		{"on a date", New(2013, 12, 30), []Date{New(2013, 12, 30), New(2013, 12, 31), New(2014, 12, 31)}, []float64{2, 3, 4}},
		{"between dates", New(2014, 1, 1), []Date{New(2014, 12, 31)}, []float64{4}},
		{"after everything", New(2015, 1, 1), nil, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.CropToOrigin(tc.origin)
			if got.Len() != len(tc.wantDays) {
				t.Fatalf("CropToOrigin(%v).Len() = %d want %d", tc.origin, got.Len(), len(tc.wantDays))
			}
			for i := range got.Len() {
				day, v := got.At(i)
				if day != tc.wantDays[i] || v != tc.wantAmounts[i] {
					t.Errorf("CropToOrigin(%v).At(%d) = %v, %v want %v, %v", tc.origin, i, day, v, tc.wantDays[i], tc.wantAmounts[i])
				}
			}
		})
	}
	if s.Len() != 4 {
		t.Errorf("CropToOrigin modified the receiver: Len() = %d want 4", s.Len())
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := NewSeries([]Date{New(2014, 12, 31)}, []float64{1})
	c := s.Clone()
	c.AppendAdd(New(2014, 12, 31), 10)
	if v, _ := s.Get(New(2014, 12, 31)); v != 1 {
		t.Errorf("original amount = %v want 1 after mutating the clone", v)
	}
}

func TestUnion(t *testing.T) {
	a := NewSeries([]Date{New(2014, 12, 31), New(2016, 12, 31)}, []float64{1, 1})
	b := NewSeries([]Date{New(2015, 12, 31), New(2016, 12, 31), New(2018, 12, 31)}, []float64{1, 1, 1})
	var got []Date
	for d := range Union(a, b, new(Series)) {
		got = append(got, d)
	}
	want := []Date{New(2014, 12, 31), New(2015, 12, 31), New(2016, 12, 31), New(2018, 12, 31)}
	if !slices.Equal(got, want) {
		t.Errorf("Union() = %v want %v", got, want)
	}
}
