// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// PanelRect is where the year panel sits on screen, border included.
type PanelRect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the size available to the year list inside the border.
func (r PanelRect) Inner() (int, int) {
	return max(r.Width-PanelBorderSize, 0), max(r.Height-PanelBorderSize, 0)
}

// Contains reports whether the screen cell (x, y) lies inside the border.
func (r PanelRect) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.Width-1 && y > r.Y && y < r.Y+r.Height-1
}

// CalculatePanelRect centers the year panel horizontally between the status
// bar and the footer.
func CalculatePanelRect(screenWidth int, screenHeight int) PanelRect {
	width := min(max(screenWidth/PanelWidthDivisor, PanelMinWidth), PanelMaxWidth)
	width = min(width, screenWidth)
	height := max(screenHeight-StatusBarHeight-FooterHeight, 0)

	return PanelRect{
		X:      max((screenWidth-width)/2, 0),
		Y:      StatusBarHeight,
		Width:  width,
		Height: height,
	}
}

// CalculateHelpWidth returns the width of the help overlay content.
func CalculateHelpWidth(screenWidth int) int {
	width := screenWidth * HelpWidthNumerator / HelpWidthDivisor
	width = min(max(width, HelpMinWidth), HelpMaxWidth)
	return max(min(width, screenWidth)-HelpBorderPaddingWidth, 1)
}
