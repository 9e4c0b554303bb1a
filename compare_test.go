package cashflow

import (
	"errors"
	"testing"

	"github.com/etnz/cashflow/date"
)

func TestStructuralMatch(t *testing.T) {
	base := annual(t, 2014, 1, 2, 3)
	testCases := []struct {
		name  string
		other *CashFlow
		want  Reason
	}{
		{"same", annual(t, 2014, 5, 5, 5), Matched},
		{"length", annual(t, 2014, 1, 2), LengthMismatch},
		{"start", annual(t, 2015, 1, 2, 3), StartMismatch},
		{"end", mustNew(t, []date.Date{YE(2014), YE(2015), YE(2017)}, []float64{1, 2, 3}), EndMismatch},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := base.StructuralMatch(tc.other)
			if got.Reason != tc.want {
				t.Errorf("StructuralMatch().Reason = %v want %v", got.Reason, tc.want)
			}
			if got.OK != (tc.want == Matched) {
				t.Errorf("StructuralMatch().OK = %v want %v", got.OK, tc.want == Matched)
			}
		})
	}
}

func TestComparisonShortCircuitsOnLength(t *testing.T) {
	// a zero in the other series would be a division by zero if ratios were computed.
	a := annual(t, 2014, 1, 2, 3)
	b := annual(t, 2014, 0, 0)

	v, err := a.ApproxEqual(b)
	if err != nil {
		t.Fatalf("ApproxEqual() error = %v", err)
	}
	if v.OK || v.Reason != LengthMismatch {
		t.Errorf("ApproxEqual() = %v want %v", v, LengthMismatch)
	}

	v, err = a.ScaleEquivalent(b)
	if err != nil {
		t.Fatalf("ScaleEquivalent() error = %v", err)
	}
	if v.OK || v.Reason != LengthMismatch {
		t.Errorf("ScaleEquivalent() = %v want %v", v, LengthMismatch)
	}
}

func TestReflexivity(t *testing.T) {
	for _, cf := range []*CashFlow{
		annual(t, 2014, 100, 10, 10, 110),
		annual(t, 2014, -3, 0.5, 7),
		annual(t, 2014, 1),
	} {
		v, err := cf.ApproxEqual(cf)
		if err != nil || !v.OK {
			t.Errorf("ApproxEqual(self) = %v, %v want OK", v, err)
		}
		v, err = cf.ScaleEquivalent(cf)
		if err != nil || !v.OK {
			t.Errorf("ScaleEquivalent(self) = %v, %v want OK", v, err)
		}
		if v.Spread != 0 {
			t.Errorf("ScaleEquivalent(self).Spread = %v want 0", v.Spread)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	other := annual(t, 2014, 100, 100, 100)
	testCases := []struct {
		name      string
		cf        *CashFlow
		want      Reason
		wantIndex int
	}{
		{"within band", annual(t, 2014, 101, 96, 104), Matched, 0},
		{"above band", annual(t, 2014, 100, 106, 90), AboveBand, 1},
		{"below band", annual(t, 2014, 94, 100, 100), BelowBand, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.cf.ApproxEqual(other)
			if err != nil {
				t.Fatalf("ApproxEqual() error = %v", err)
			}
			if v.Reason != tc.want || v.OK != (tc.want == Matched) {
				t.Errorf("ApproxEqual() = %v want %v", v, tc.want)
			}
			if tc.want != Matched && v.Index != tc.wantIndex {
				t.Errorf("ApproxEqual().Index = %d want %d", v.Index, tc.wantIndex)
			}
		})
	}
}

func TestApproxEqual_BandIsInclusive(t *testing.T) {
	a := annual(t, 2014, 125, 75)
	b := annual(t, 2014, 100, 100)
	if err := a.SetThreshold(0.25); err != nil {
		t.Fatal(err)
	}
	v, err := a.ApproxEqual(b)
	if err != nil || !v.OK {
		t.Errorf("ApproxEqual() = %v, %v want OK", v, err)
	}
	// the same ratios are the widest possible spread for that band.
	v, err = a.ScaleEquivalent(b)
	if err != nil {
		t.Fatalf("ScaleEquivalent() error = %v", err)
	}
	if v.OK || v.Reason != SpreadTooWide {
		t.Errorf("ScaleEquivalent() = %v want %v", v, SpreadTooWide)
	}
}

func TestScaleEquivalent(t *testing.T) {
	b := annual(t, 2014, 10, 20, 30)
	testCases := []struct {
		name string
		cf   *CashFlow
		want bool
	}{
		{"double", annual(t, 2014, 20, 40, 60), true},
		{"half with noise", annual(t, 2014, 5.1, 10, 14.9), true},
		{"not proportional", annual(t, 2014, 10, 10, 10), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.cf.ScaleEquivalent(b)
			if err != nil {
				t.Fatalf("ScaleEquivalent() error = %v", err)
			}
			if v.OK != tc.want {
				t.Errorf("ScaleEquivalent() = %v want OK=%v", v, tc.want)
			}
		})
	}
}

// TestPredicatesAreIndependent checks that neither comparison implies the other.
func TestPredicatesAreIndependent(t *testing.T) {
	b := annual(t, 2014, 100, 100, 100, 100)

	// ratios 0.5 and 1.5: out of the band and not a single scale.
	a := annual(t, 2014, 50, 150, 50, 150)
	approx, err := a.ApproxEqual(b)
	if err != nil {
		t.Fatal(err)
	}
	scale, err := a.ScaleEquivalent(b)
	if err != nil {
		t.Fatal(err)
	}
	if approx.OK || approx.Reason != BelowBand {
		t.Errorf("ApproxEqual() = %v want %v", approx, BelowBand)
	}
	if scale.OK {
		t.Errorf("ScaleEquivalent() = %v want not OK", scale)
	}

	// ratio 2 everywhere: out of the band but a single scale.
	a = annual(t, 2014, 200, 200, 200, 200)
	approx, _ = a.ApproxEqual(b)
	scale, _ = a.ScaleEquivalent(b)
	if approx.OK || approx.Reason != AboveBand {
		t.Errorf("ApproxEqual() = %v want %v", approx, AboveBand)
	}
	if !scale.OK {
		t.Errorf("ScaleEquivalent() = %v want OK", scale)
	}
}

func TestComparisonDivisionByZero(t *testing.T) {
	a := annual(t, 2014, 1, 2)
	b := annual(t, 2014, 1, 0)
	if _, err := a.ApproxEqual(b); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("ApproxEqual() error = %v want %v", err, ErrDivisionByZero)
	}
	if _, err := a.ScaleEquivalent(b); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("ScaleEquivalent() error = %v want %v", err, ErrDivisionByZero)
	}
}

func TestReasonString(t *testing.T) {
	if got, want := LengthMismatch.String(), "lengths not equal"; got != want {
		t.Errorf("LengthMismatch.String() = %q want %q", got, want)
	}
	if got, want := Reason(42).String(), "reason(42)"; got != want {
		t.Errorf("Reason(42).String() = %q want %q", got, want)
	}
}

func TestComparisonWithNil(t *testing.T) {
	a := annual(t, 2014, 1, 2)
	if v := a.StructuralMatch(nil); v.OK || v.Reason != LengthMismatch {
		t.Errorf("StructuralMatch(nil) = %v want %v", v, LengthMismatch)
	}
	if v, err := a.ApproxEqual(nil); err != nil || v.Reason != LengthMismatch {
		t.Errorf("ApproxEqual(nil) = %v, %v want %v", v, err, LengthMismatch)
	}
	if v, err := a.ScaleEquivalent(nil); err != nil || v.Reason != LengthMismatch {
		t.Errorf("ScaleEquivalent(nil) = %v, %v want %v", v, err, LengthMismatch)
	}
	if _, err := a.Ratios(nil); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Ratios(nil) error = %v want %v", err, ErrShapeMismatch)
	}
}
