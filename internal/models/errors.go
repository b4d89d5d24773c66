package models

import "errors"

// Domain-specific errors for date input
var (
	// ErrInvalidDate indicates that a date string could not be parsed with DateLayout
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidBound indicates that a range bound is not an integer year within MinYearLimit..MaxYearLimit
	ErrInvalidBound = errors.New("year bound must be an integer between -9999 and 9999")
)
