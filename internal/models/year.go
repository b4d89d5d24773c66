package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// YearItem is a single row of the year list.
type YearItem struct {
	Year int
}

// Range is an inclusive span of selectable years.
// Min <= Max is expected but not enforced; an inverted range is simply empty.
type Range struct {
	Min int
	Max int
}

// DefaultRange returns the 1900..2100 range.
func DefaultRange() Range {
	return Range{Min: DefaultMinYear, Max: DefaultMaxYear}
}

// Contains reports whether year lies within the range, both ends inclusive.
func (r Range) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Index returns the row index of year, which is always year - Min.
func (r Range) Index(year int) int {
	return year - r.Min
}

// Len returns the number of years in the range, zero when inverted.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// ComputeYears returns every year in [min, max] in ascending order.
// Bounds beyond MinYearLimit..MaxYearLimit are clamped to that span.
func ComputeYears(min, max int) []YearItem {
	lo := clampYear(min)
	hi := clampYear(max)
	if hi < lo {
		return []YearItem{}
	}
	years := make([]YearItem, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		years = append(years, YearItem{Year: y})
	}
	return years
}

func clampYear(y int) int {
	if y < MinYearLimit {
		return MinYearLimit
	}
	if y > MaxYearLimit {
		return MaxYearLimit
	}
	return y
}

// ComputeYearsFrom is ComputeYears for untyped bounds, e.g. values decoded from YAML.
// It returns false and no years when either bound is not integer-like.
func ComputeYearsFrom(min, max any) ([]YearItem, bool) {
	lo, ok := AsYear(min)
	if !ok {
		return nil, false
	}
	hi, ok := AsYear(max)
	if !ok {
		return nil, false
	}
	return ComputeYears(lo, hi), true
}

// AsYear converts v to an int if it is an integer-like number within
// MinYearLimit..MaxYearLimit.
// Accepted: Go integer kinds, finite integral floats, json.Number and
// strings holding a base-10 integer.
func AsYear(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return signedYear(int64(n))
	case int8:
		return signedYear(int64(n))
	case int16:
		return signedYear(int64(n))
	case int32:
		return signedYear(int64(n))
	case int64:
		return signedYear(n)
	case uint:
		return unsignedYear(uint64(n))
	case uint8:
		return unsignedYear(uint64(n))
	case uint16:
		return unsignedYear(uint64(n))
	case uint32:
		return unsignedYear(uint64(n))
	case uint64:
		return unsignedYear(n)
	case float32:
		return floatYear(float64(n))
	case float64:
		return floatYear(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return signedYear(i)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return signedYear(i)
	default:
		return 0, false
	}
}

func signedYear(i int64) (int, bool) {
	if i < MinYearLimit || i > MaxYearLimit {
		return 0, false
	}
	return int(i), true
}

func unsignedYear(u uint64) (int, bool) {
	if u > MaxYearLimit {
		return 0, false
	}
	return int(u), true
}

func floatYear(f float64) (int, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) || f < MinYearLimit || f > MaxYearLimit {
		return 0, false
	}
	return int(f), true
}

// NormalizeBound returns v as a year, or def when v is not integer-like.
func NormalizeBound(v any, def int) int {
	if y, ok := AsYear(v); ok {
		return y
	}
	return def
}

// WithYear returns a copy of t with its year replaced.
// Days that do not exist in the target year roll over (Feb 29 becomes Mar 1).
func WithYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ParseDate parses a YYYY-MM-DD date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
