package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/yearpick/internal/cli"
	"github.com/thenoetrevino/yearpick/internal/tui/core"
)

// isolate keeps config and log files inside the test's temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("YEARPICK_THEME_FILE", "")
}

// execute runs args with the picker driven by keys instead of a terminal.
func execute(t *testing.T, args []string, keys ...tea.KeyPressMsg) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	a := &app{runProgram: func(_ context.Context, model *core.App) error {
		model.Init()
		model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		for _, k := range keys {
			model.Update(k)
		}
		return nil
	}}
	defer a.close()

	code := a.run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var (
	enter = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	down  = tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	quit  = tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'})
)

// ============================================================================
// Picker
// ============================================================================

func TestRoot_PrintsPickedDate(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"--date", "2023-05-10"}, down, enter)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "2024-05-10\n", out)
}

func TestRoot_PickedDateJSON(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"--date", "2023-05-10", "--json"}, enter)
	require.Equal(t, cli.ExitSuccess, code)

	var result struct {
		Success bool           `json:"success"`
		Data    cli.DateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, cli.DateResult{Date: "2023-05-10", Year: 2023}, result.Data)
}

func TestRoot_QuitPrintsNothing(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"--date", "2023-05-10"}, quit)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, out)
}

func TestRoot_DateOutsideRangeCannotBeConfirmed(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"--min", "2000", "--max", "2010", "--date", "2023-05-10"}, enter)

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Empty(t, out)
}

func TestRoot_InvalidDateIsUsageError(t *testing.T) {
	isolate(t)

	code, out, errOut := execute(t, []string{"--date", "May 10"})

	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "--date")
}

func TestRoot_UnknownThemeIsUsageError(t *testing.T) {
	isolate(t)

	code, _, errOut := execute(t, []string{"--theme", "neon"})

	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut, "unknown theme")
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	isolate(t)

	code, _, _ := execute(t, []string{"--nope"})

	assert.Equal(t, cli.ExitUsage, code)
}

func TestRoot_ProgramErrorIsGeneralError(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	a := &app{runProgram: func(context.Context, *core.App) error {
		return errors.New("no tty")
	}}
	defer a.close()

	code := a.run(context.Background(), nil, &stdout, &stderr)
	assert.Equal(t, cli.ExitError, code)
	assert.Contains(t, stderr.String(), "no tty")
}

// ============================================================================
// Years
// ============================================================================

func TestYears_PrintsSequence(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"years", "--min", "2000", "--max", "2003"})

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "2000\n2001\n2002\n2003\n", out)
}

func TestYears_Quiet(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"years", "--quiet"})

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "201\n", out)
}

func TestYears_UsesConfigRange(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "years:\n  min: 1990\n  max: 1992\n")

	code, out, _ := execute(t, []string{"years", "--config", path})

	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "1990\n1991\n1992\n", out)
}

func TestYears_NonNumericConfigBoundIsDataError(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "years:\n  min: abc\n")

	code, out, errOut := execute(t, []string{"years", "--config", path})

	assert.Equal(t, cli.ExitDataErr, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "year bound must be an integer")
}

func TestYears_NonNumericFlagIsUsageError(t *testing.T) {
	isolate(t)

	code, _, _ := execute(t, []string{"years", "--max", "soon"})

	assert.Equal(t, cli.ExitUsage, code)
}

func TestYears_BoundOutsideYearSpanIsUsageError(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"years", "--min", "-9223372036854775808", "--max", "2000"},
		{"years", "--max", "99999999999"},
		{"years", "--min", "10000"},
	} {
		code, out, errOut := execute(t, args)

		assert.Equal(t, cli.ExitUsage, code, "args %v", args)
		assert.Empty(t, out, "args %v", args)
		assert.Contains(t, errOut, "year bound must be an integer", "args %v", args)
	}
}

func TestRoot_BoundOutsideYearSpanIsUsageError(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"--max", "99999999999"}, enter)

	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, out)
}

func TestYears_ErrorAsJSON(t *testing.T) {
	isolate(t)

	code, out, _ := execute(t, []string{"years", "--json", "--min", "x"})
	require.Equal(t, cli.ExitUsage, code)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "USAGE", result["error"].(map[string]any)["code"])
}

func TestYears_MalformedConfigIsDataError(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "years: [\n")

	code, _, _ := execute(t, []string{"years", "--config", path})

	assert.Equal(t, cli.ExitDataErr, code)
}
