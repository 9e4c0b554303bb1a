package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, 2, 30), New(2024, 3, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v want %v", got, want)
	}
	if got, want := New(2025, 1, 0), New(2024, 12, 31); got != want {
		t.Errorf("New(2025, 1, 0) = %v want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2013-12-30", want: New(2013, time.December, 30)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025/07/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestEndOfYear(t *testing.T) {
	if got, want := New(2014, 6, 1).EndOfYear(), New(2014, 12, 31); got != want {
		t.Errorf("EndOfYear() = %v want %v", got, want)
	}
	if got, want := New(2014, 12, 31).EndOfYear(), New(2014, 12, 31); got != want {
		t.Errorf("EndOfYear() = %v want %v", got, want)
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		in   Date
		n    int
		want Date
	}{
		{New(2024, 3, 14), -6, New(2023, 9, 14)},
		{New(2024, 3, 14), -12, New(2023, 3, 14)},
		{New(2024, 8, 31), -6, New(2024, 2, 29)},
		{New(2023, 8, 31), -6, New(2023, 2, 28)},
		{New(2024, 1, 31), 1, New(2024, 2, 29)},
		{New(2024, 11, 30), 3, New(2025, 2, 28)},
	}
	for _, tc := range testCases {
		if got := tc.in.AddMonths(tc.n); got != tc.want {
			t.Errorf("%v.AddMonths(%d) = %v want %v", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2014, 12, 31)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(b), `"2014-12-31"`; got != want {
		t.Errorf("json.Marshal() = %s want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("json.Unmarshal() = %v want %v", back, d)
	}
}
