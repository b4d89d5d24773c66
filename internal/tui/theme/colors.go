package theme

import "github.com/thenoetrevino/yearpick/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Subtle     string
	Normal     string
	Title      string
	Background string
	Ripple     string
	Border     string
	ErrorFg    string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Background = colors.Background
	Ripple = colors.Ripple
	Border = colors.Border
	ErrorFg = colors.ErrorFg
}
