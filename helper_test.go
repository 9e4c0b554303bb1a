package cashflow

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/cashflow/date"
)

// D is a helper for test to create dates from consts.
func D(y, m, d int) date.Date { return date.New(y, time.Month(m), d) }

// YE returns the 31st of December of year y.
func YE(y int) date.Date { return date.New(y, 12, 31) }

// mustNew creates a CashFlow or fails the test.
func mustNew(t *testing.T, days []date.Date, values []float64, opts ...Option) *CashFlow {
	t.Helper()
	cf, err := New(days, values, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return cf
}

// annual creates a CashFlow with one amount per year starting at the year end of 'from'.
func annual(t *testing.T, from int, amounts ...float64) *CashFlow {
	t.Helper()
	days := make([]date.Date, len(amounts))
	for i := range amounts {
		days[i] = YE(from + i)
	}
	return mustNew(t, days, amounts)
}

// near reports whether two floats are equal up to a small absolute tolerance.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// nearAll reports whether two slices are element wise near.
func nearAll(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}
