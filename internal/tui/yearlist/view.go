package yearlist

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
	"github.com/thenoetrevino/yearpick/internal/tui/theme"
)

// View renders the visible rows.
func (m *Model) View() string {
	if !m.list.Visible() {
		return ""
	}
	return m.list.Render()
}

// renderRow draws one year. The selected year is bold, in the accent colour
// and padded to three lines; the tapped row briefly gets the ripple background.
func (m *Model) renderRow(item models.YearItem, index int, selected bool) string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(theme.Normal))

	if selected {
		style = style.
			Bold(true).
			Padding(1, 0).
			Foreground(lipgloss.Color(theme.Highlight))
	}
	if index == m.rippleIndex {
		style = style.Background(lipgloss.Color(theme.Ripple))
	}

	return style.Render(strconv.Itoa(item.Year))
}
