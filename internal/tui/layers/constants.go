package layers

const (
	// Year panel sizing
	PanelWidthDivisor = 3
	PanelMinWidth     = 16
	PanelMaxWidth     = 30

	// PanelBorderSize is the space a rounded border takes on each axis
	PanelBorderSize = 2

	// Rows reserved above and below the year panel
	StatusBarHeight = 1
	FooterHeight    = 1

	// Help overlay sizing (fraction of the screen)
	HelpWidthNumerator     = 3
	HelpWidthDivisor       = 4
	HelpMinWidth           = 30
	HelpMaxWidth           = 70
	HelpBorderPaddingWidth = 4 // border + horizontal padding
)
