package models

// ============================================================================
// YEAR RANGE CONSTANTS
// ============================================================================

// Default bounds used when a bound is unset or not a number
const (
	DefaultMinYear = 1900
	DefaultMaxYear = 2100
)

// Span of years a bound may take. Anything outside is treated as not a year,
// which keeps the generated sequence to at most 19999 rows.
const (
	MinYearLimit = -9999
	MaxYearLimit = 9999
)

// ============================================================================
// DATE FORMAT CONSTANTS
// ============================================================================

// DateLayout is the layout used for dates on the command line and in output
const DateLayout = "2006-01-02"
