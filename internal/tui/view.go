package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
	"github.com/thenoetrevino/yearpick/internal/tui/components"
	"github.com/thenoetrevino/yearpick/internal/tui/layers"
	"github.com/thenoetrevino/yearpick/internal/tui/theme"
)

// View renders the status bar, the year panel, the footer and, when open,
// the help overlay.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 || m.height == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderStatusBar()),
		lipgloss.NewLayer(m.renderPanel()).X(m.panel.X).Y(m.panel.Y),
		lipgloss.NewLayer(m.renderFooter()).Y(max(m.height-layers.FooterHeight, 0)),
	}
	if m.showHelp {
		if overlay := m.renderHelpLayer(); overlay != nil {
			stack = append(stack, overlay)
		}
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

func (m *Model) renderStatusBar() string {
	props := components.StatusBarProps{
		Width: m.width,
		Left:  fmt.Sprintf("yearpick %d-%d", m.picker.Min(), m.picker.Max()),
	}

	date, hasDate := m.picker.Date()
	_, selected := m.picker.Selected()
	switch {
	case selected:
		props.Right = date.Format(models.DateLayout)
	case hasDate:
		props.Right = date.Format(models.DateLayout) + " out of range"
		props.Warn = true
	default:
		props.Right = "no year selected"
		props.Warn = true
	}
	return components.RenderStatusBar(props)
}

func (m *Model) renderPanel() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Render(m.picker.View())
}

func (m *Model) renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(m.help.View(m.keys))
}

func (m *Model) renderHelpLayer() *lipgloss.Layer {
	width := layers.CalculateHelpWidth(m.width)
	content := components.RenderHelp(components.HelpProps{
		Markdown: helpMarkdown(m.cfg.KeyMappings),
		Width:    width,
	})

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1).
		Render(content)

	layer := layers.CreateCenteredLayer(box, m.width, m.height)
	if layer == nil {
		return nil
	}
	return layer.Z(1)
}
