package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: palette.oniViolet,

		Background: palette.sumiInk1,
		Ripple:     palette.waveBlue2,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		Border:  palette.sumiInk4,
		ErrorFg: palette.samuraiRed,
	}
}
