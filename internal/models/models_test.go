package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrInvalidDate, "invalid date, expected YYYY-MM-DD"},
		{ErrInvalidBound, "year bound must be an integer between -9999 and 9999"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("error message = %q, want %q", tt.err.Error(), tt.expectedMessage)
		}
	}
}

// ============================================================================
// Year Sequence Tests
// ============================================================================

func TestComputeYears(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"default range", DefaultMinYear, DefaultMaxYear},
		{"single year", 2024, 2024},
		{"small range", 2000, 2010},
		{"around zero", -5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years := ComputeYears(tt.min, tt.max)
			if len(years) != tt.max-tt.min+1 {
				t.Fatalf("len = %d, want %d", len(years), tt.max-tt.min+1)
			}
			if years[0].Year != tt.min {
				t.Errorf("first = %d, want %d", years[0].Year, tt.min)
			}
			if years[len(years)-1].Year != tt.max {
				t.Errorf("last = %d, want %d", years[len(years)-1].Year, tt.max)
			}
			for i := 1; i < len(years); i++ {
				if years[i].Year != years[i-1].Year+1 {
					t.Fatalf("years not contiguous at %d: %d after %d", i, years[i].Year, years[i-1].Year)
				}
			}
		})
	}
}

func TestComputeYears_Inverted(t *testing.T) {
	if got := ComputeYears(2010, 2000); len(got) != 0 {
		t.Errorf("inverted range produced %d years", len(got))
	}
}

func TestComputeYearsFrom(t *testing.T) {
	if _, ok := ComputeYearsFrom("abc", 2000); ok {
		t.Error("non-numeric min should skip generation")
	}
	if _, ok := ComputeYearsFrom(1990, nil); ok {
		t.Error("nil max should skip generation")
	}
	years, ok := ComputeYearsFrom(1990, 1999.0)
	if !ok || len(years) != 10 {
		t.Errorf("got %d years ok=%v, want 10 true", len(years), ok)
	}
}

func TestComputeYears_ExtremeBoundsClamped(t *testing.T) {
	years := ComputeYears(math.MinInt, 2000)
	if len(years) != 2000-MinYearLimit+1 {
		t.Fatalf("len = %d, want %d", len(years), 2000-MinYearLimit+1)
	}
	if years[0].Year != MinYearLimit {
		t.Errorf("first = %d, want %d", years[0].Year, MinYearLimit)
	}

	years = ComputeYears(9990, math.MaxInt)
	if len(years) != 10 || years[len(years)-1].Year != MaxYearLimit {
		t.Errorf("got %d years ending at %d, want 10 ending at %d", len(years), years[len(years)-1].Year, MaxYearLimit)
	}

	if got := ComputeYears(math.MaxInt, math.MinInt); len(got) != 0 {
		t.Errorf("inverted extreme range produced %d years", len(got))
	}
}

func TestComputeYearsFrom_OutOfSpanBound(t *testing.T) {
	if _, ok := ComputeYearsFrom(int64(math.MinInt64), 2000); ok {
		t.Error("min below the year span should skip generation")
	}
	if _, ok := ComputeYearsFrom(1900, "99999999999"); ok {
		t.Error("max above the year span should skip generation")
	}
}

// ============================================================================
// Bound Normalization Tests
// ============================================================================

func TestNormalizeBound(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 1950, 1950},
		{"int64", int64(1960), 1960},
		{"integral float", 1970.0, 1970},
		{"fractional float", 1970.5, DefaultMinYear},
		{"NaN", math.NaN(), DefaultMinYear},
		{"Inf", math.Inf(1), DefaultMinYear},
		{"numeric string", "1980", 1980},
		{"word", "abc", DefaultMinYear},
		{"empty string", "", DefaultMinYear},
		{"nil", nil, DefaultMinYear},
		{"bool", true, DefaultMinYear},
		{"json number", json.Number("1990"), 1990},
		{"zero is a real bound", 0, 0},
		{"upper limit", MaxYearLimit, MaxYearLimit},
		{"lower limit", MinYearLimit, MinYearLimit},
		{"int above limit", MaxYearLimit + 1, DefaultMinYear},
		{"int below limit", MinYearLimit - 1, DefaultMinYear},
		{"min int64", int64(math.MinInt64), DefaultMinYear},
		{"max uint", uint(math.MaxUint64), DefaultMinYear},
		{"max uint64", uint64(math.MaxUint64), DefaultMinYear},
		{"uint32 above limit", uint32(100000), DefaultMinYear},
		{"uint8", uint8(200), 200},
		{"huge float", 1e300, DefaultMinYear},
		{"huge negative float", -1e300, DefaultMinYear},
		{"negative Inf", math.Inf(-1), DefaultMinYear},
		{"huge string", "99999999999", DefaultMinYear},
		{"overflowing string", "9223372036854775808", DefaultMinYear},
		{"huge json number", json.Number("99999999999"), DefaultMinYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBound(tt.in, DefaultMinYear); got != tt.want {
				t.Errorf("NormalizeBound(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Range Tests
// ============================================================================

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 2000, Max: 2010}
	cases := map[int]bool{1999: false, 2000: true, 2005: true, 2010: true, 2011: false}
	for year, want := range cases {
		if got := r.Contains(year); got != want {
			t.Errorf("Contains(%d) = %v, want %v", year, got, want)
		}
	}

	// A zero bound is a real bound, not "unset".
	zero := Range{Min: 0, Max: 10}
	if zero.Contains(-1) {
		t.Error("year -1 should be outside [0, 10]")
	}
}

func TestRange_IndexAndLen(t *testing.T) {
	r := DefaultRange()
	if r.Index(1999) != 99 {
		t.Errorf("Index(1999) = %d, want 99", r.Index(1999))
	}
	if r.Len() != 201 {
		t.Errorf("Len() = %d, want 201", r.Len())
	}
	if (Range{Min: 5, Max: 1}).Len() != 0 {
		t.Error("inverted range should be empty")
	}
}

// ============================================================================
// Date Tests
// ============================================================================

func TestWithYear(t *testing.T) {
	d := time.Date(2023, time.May, 1, 12, 30, 0, 0, time.UTC)
	got := WithYear(d, 1999)
	if got.Year() != 1999 || got.Month() != time.May || got.Day() != 1 || got.Hour() != 12 {
		t.Errorf("WithYear = %v", got)
	}
	if d.Year() != 2023 {
		t.Error("WithYear must not modify its input")
	}

	leap := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	rolled := WithYear(leap, 2023)
	if rolled.Month() != time.March || rolled.Day() != 1 {
		t.Errorf("Feb 29 into a non-leap year = %v, want Mar 1", rolled)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-05-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2023 || d.Month() != time.May || d.Day() != 1 {
		t.Errorf("ParseDate = %v", d)
	}

	if _, err := ParseDate("05/01/2023"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
