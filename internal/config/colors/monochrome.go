package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		Background: "#121212",
		Ripple:     "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Border:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
