package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thenoetrevino/yearpick/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to stdout and stderr
	Out    io.Writer
	ErrOut io.Writer
}

// DateResult is the outcome of an interactive pick.
type DateResult struct {
	Date string `json:"date"`
	Year int    `json:"year"`
}

// YearsResult is the outcome of the years command.
type YearsResult struct {
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Years []int `json:"years"`
}

// NewDateResult builds the result for a picked date.
func NewDateResult(t time.Time) DateResult {
	return DateResult{Date: t.Format(models.DateLayout), Year: t.Year()}
}

// NewYearsResult builds the result for a year sequence.
func NewYearsResult(items []models.YearItem) YearsResult {
	res := YearsResult{Years: make([]int, len(items))}
	for i, item := range items {
		res.Years[i] = item.Year
	}
	if len(items) > 0 {
		res.Min = items[0].Year
		res.Max = items[len(items)-1].Year
	}
	return res
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	switch v := data.(type) {
	case DateResult:
		_, err := fmt.Fprintln(f.out(), v.Date)
		return err
	case YearsResult:
		if f.Quiet {
			_, err := fmt.Fprintln(f.out(), len(v.Years))
			return err
		}
		for _, year := range v.Years {
			if _, err := fmt.Fprintln(f.out(), year); err != nil {
				return err
			}
		}
		return nil
	}

	if f.Quiet {
		return nil
	}
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// ErrorCode names the category of an exit code for JSON error output.
func ErrorCode(code int) string {
	switch code {
	case ExitUsage:
		return "USAGE"
	case ExitDataErr:
		return "DATA"
	default:
		return "ERROR"
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}
