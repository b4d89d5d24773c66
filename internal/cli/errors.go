package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/yearpick/internal/models"
)

// CodeError carries the process exit code for err.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// UsageError marks err as a command line mistake.
func UsageError(err error) error {
	return &CodeError{Code: ExitUsage, Err: err}
}

// DataError marks err as bad input data.
func DataError(err error) error {
	return &CodeError{Code: ExitDataErr, Err: err}
}

// ExitCode maps err to the code the process should exit with.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	if errors.Is(err, models.ErrInvalidDate) || errors.Is(err, models.ErrInvalidBound) {
		return ExitUsage
	}
	return ExitError
}

// ParseDate parses a --date value. An empty value means no date.
func ParseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return nil, UsageError(fmt.Errorf("--date %q: %w", s, err))
	}
	return &t, nil
}

// ParseBound parses a --min or --max value. An empty value means the bound
// was not given and nil is returned.
func ParseBound(flag, s string) (any, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	year, ok := models.AsYear(strings.TrimSpace(s))
	if !ok {
		return nil, UsageError(fmt.Errorf("--%s %q: %w", flag, s, models.ErrInvalidBound))
	}
	return year, nil
}
