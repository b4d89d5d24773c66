// Package tui hosts the year picker in a full screen Bubble Tea program:
// a status bar, the bordered year panel, a key hint footer and a help overlay.
package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/config"
	"github.com/thenoetrevino/yearpick/internal/tui/layers"
	"github.com/thenoetrevino/yearpick/internal/tui/yearlist"
)

// Options override the configured picker state for one run.
// Nil bounds fall back to the config file.
type Options struct {
	Min  any
	Max  any
	Date *time.Time
}

// Model represents the application state for the TUI
type Model struct {
	cfg    *config.Config
	picker *yearlist.Model
	keys   KeyMap
	help   help.Model

	width  int
	height int
	panel  layers.PanelRect
	sized  bool

	showHelp bool

	// result is the picked date, valid once confirmed is set
	result    time.Time
	confirmed bool

	// startup holds the picker's messages from construction until Init
	startup []tea.Cmd
}

// InitialModel creates the host model and the year picker inside it.
func InitialModel(cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	keys := NewKeyMap(cfg.KeyMappings)

	m := &Model{
		cfg:    cfg,
		picker: yearlist.New(yearlist.WithKeyMap(keys.Picker)),
		keys:   keys,
		help:   help.New(),
	}

	var lo, hi any = cfg.Years.MinYear(), cfg.Years.MaxYear()
	if opts.Min != nil {
		lo = opts.Min
	}
	if opts.Max != nil {
		hi = opts.Max
	}
	m.startup = append(m.startup, m.picker.SetMin(lo), m.picker.SetMax(hi))
	if opts.Date != nil {
		m.startup = append(m.startup, m.picker.SetDate(*opts.Date))
	}
	return m
}

// Picker returns the year picker.
func (m *Model) Picker() *yearlist.Model {
	return m.picker
}

// Result returns the confirmed date. ok is false when the user quit
// without picking.
func (m *Model) Result() (time.Time, bool) {
	return m.result, m.confirmed
}

// Panel returns where the year panel is drawn.
func (m *Model) Panel() layers.PanelRect {
	return m.panel
}

// HelpVisible reports whether the help overlay is open.
func (m *Model) HelpVisible() bool {
	return m.showHelp
}
