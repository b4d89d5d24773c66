package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/yearpick/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	// Left is the title shown on the left
	Left string
	// Right is the current date, or a hint when no year is selected
	Right string
	// Warn renders Right in the error color
	Warn bool
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	rightStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if props.Warn {
		rightStyle = rightStyle.Foreground(lipgloss.Color(theme.ErrorFg))
	}

	leftRendered := leftStyle.Render(props.Left)
	rightRendered := rightStyle.Render(props.Right)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
