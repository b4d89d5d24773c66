package core

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/config"
	"github.com/thenoetrevino/yearpick/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(cfg *config.Config, opts tui.Options) *App {
	return &App{model: tui.InitialModel(cfg, opts)}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.model.Update(msg)
	a.model = model
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
