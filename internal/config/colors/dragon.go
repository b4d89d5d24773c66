package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: palette.dragonViolet,

		Background: palette.dragonBlack1,
		Ripple:     palette.waveBlue1,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		Border:  palette.dragonBlack4,
		ErrorFg: palette.dragonRed,
	}
}
