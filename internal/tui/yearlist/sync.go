package yearlist

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
)

// ============================================================================
// Range
// ============================================================================

// SetMin sets the lower bound. Values that are not integer-like reset the
// bound to 1900.
func (m *Model) SetMin(v any) tea.Cmd {
	lo, ok := models.AsYear(v)
	if !ok {
		slog.Debug("year list: invalid min, using default", "value", v, "default", models.DefaultMinYear)
		lo = models.DefaultMinYear
	}
	if lo == m.rng.Min {
		return nil
	}
	m.rng.Min = lo
	return m.rangeChanged()
}

// SetMax sets the upper bound. Values that are not integer-like reset the
// bound to 2100.
func (m *Model) SetMax(v any) tea.Cmd {
	hi, ok := models.AsYear(v)
	if !ok {
		slog.Debug("year list: invalid max, using default", "value", v, "default", models.DefaultMaxYear)
		hi = models.DefaultMaxYear
	}
	if hi == m.rng.Max {
		return nil
	}
	m.rng.Max = hi
	return m.rangeChanged()
}

// rangeChanged regenerates the rows and re-applies the date to the new range.
func (m *Model) rangeChanged() tea.Cmd {
	m.years = models.ComputeYears(m.rng.Min, m.rng.Max)
	m.list.SetItems(m.years)

	if !m.hasDate {
		return nil
	}
	year := m.date.Year()
	if !m.rng.Contains(year) {
		return m.ClearSelected()
	}
	if m.hasSelected && m.selected == year {
		// Same year, new row index.
		m.list.SelectIndex(m.rng.Index(year))
		return nil
	}
	return m.SetSelected(year)
}

// ============================================================================
// Date and selection
// ============================================================================

// SetDate binds a date. A year inside the range becomes the selection,
// anything else clears it.
func (m *Model) SetDate(d time.Time) tea.Cmd {
	if m.hasDate && d.Equal(m.date) {
		return nil
	}
	m.date = d
	m.hasDate = true

	year := d.Year()
	if m.rng.Contains(year) {
		return m.SetSelected(year)
	}
	return m.ClearSelected()
}

// SetSelected selects year. The date follows when its year differs.
// Selecting the current year does nothing.
func (m *Model) SetSelected(year int) tea.Cmd {
	if m.hasSelected && m.selected == year {
		return nil
	}

	var cmds []tea.Cmd
	if !m.hasDate || m.date.Year() != year {
		m.date = m.baseDate(year)
		m.hasDate = true
		cmds = append(cmds, emit(DateChangedMsg{Date: m.date}))
	}

	if !m.rng.Contains(year) {
		// The date now lies outside the range, so there is no selection.
		cmds = append(cmds, m.ClearSelected())
		return tea.Batch(cmds...)
	}

	m.selected = year
	m.hasSelected = true
	m.list.SelectIndex(m.rng.Index(year))
	slog.Debug("year list: selected", "year", year)

	cmds = append(cmds, emit(SelectedChangedMsg{Year: year, Valid: true}))
	return tea.Batch(cmds...)
}

// ClearSelected removes the selection. The date is left untouched.
func (m *Model) ClearSelected() tea.Cmd {
	if !m.hasSelected {
		return nil
	}
	m.hasSelected = false
	m.selected = 0
	m.list.ClearSelection()
	slog.Debug("year list: selection cleared")
	return emit(SelectedChangedMsg{})
}

// baseDate returns the bound date moved to year, or January 1st of year
// when no date is bound yet.
func (m *Model) baseDate(year int) time.Time {
	if !m.hasDate {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	return models.WithYear(m.date, year)
}

// Tap handles a tap on row: a different year is selected in the list and
// becomes the selection. Every tap ripples.
func (m *Model) Tap(row models.YearItem) tea.Cmd {
	ripple := m.startRipple(m.rng.Index(row.Year))
	if m.hasSelected && m.selected == row.Year {
		return ripple
	}
	m.list.SelectItem(row)
	return tea.Batch(m.SetSelected(row.Year), ripple)
}
