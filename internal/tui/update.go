package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
	"github.com/thenoetrevino/yearpick/internal/tui/layers"
	"github.com/thenoetrevino/yearpick/internal/tui/yearlist"
)

// Init delivers the messages the picker produced while it was configured.
func (m *Model) Init() tea.Cmd {
	cmds := m.startup
	m.startup = nil
	return tea.Batch(cmds...)
}

// Update handles all messages and updates the model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if m.showHelp || !m.panel.Contains(mouse.X, mouse.Y) {
			return m, nil
		}

	case tea.MouseWheelMsg:
		mouse := msg.Mouse()
		if m.showHelp || !m.panel.Contains(mouse.X, mouse.Y) {
			return m, nil
		}

	case yearlist.DateChangedMsg:
		slog.Debug("date changed", "date", msg.Date.Format(models.DateLayout))
		return m, nil

	case yearlist.SelectedChangedMsg:
		slog.Debug("selection changed", "year", msg.Year, "valid", msg.Valid)
		return m, nil
	}

	// Mouse input inside the panel and the picker's deferred messages.
	_, cmd := m.picker.Update(msg)
	return m, cmd
}

// handleWindowSize lays the panel out again and hands its inner size to the
// picker. The first size also centers the initial selection.
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.panel = layers.CalculatePanelRect(msg.Width, msg.Height)
	m.help.SetWidth(msg.Width)

	w, h := m.panel.Inner()
	m.picker.SetOrigin(m.panel.Y + 1)
	cmd := m.picker.Resize(w, h)

	if !m.sized {
		m.sized = true
		return tea.Batch(cmd, m.picker.CenterSelected())
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	}

	if m.showHelp {
		if msg.String() == "esc" {
			m.showHelp = false
		}
		return nil
	}

	if key.Matches(msg, m.keys.Confirm) {
		return m.confirm()
	}

	_, cmd := m.picker.Update(msg)
	return cmd
}

// confirm ends the program with the bound date when a year is selected.
func (m *Model) confirm() tea.Cmd {
	if _, ok := m.picker.Selected(); !ok {
		return nil
	}
	date, _ := m.picker.Date()
	m.result = date
	m.confirmed = true
	slog.Info("year picked", "date", date.Format(models.DateLayout))
	return tea.Quit
}
