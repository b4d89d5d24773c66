package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the selected year and titles)
	Accent string `yaml:"accent"`

	Background string `yaml:"background"`

	// Ripple is the background flashed on a tapped row
	Ripple string `yaml:"ripple"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text, help footer
	Normal string `yaml:"normal"`

	// Border around the help panel
	Border string `yaml:"border"`

	// Foreground for "out of range" and error hints
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	default:
		return Default()
	}
}

// PresetNames lists the presets accepted by GetPreset
func PresetNames() []string {
	return []string{"default", "monochrome", "wave", "dragon"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeFrom(*preset)
}

// MergeFrom copies every color of other that is still empty in c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if c.Accent == "" {
		c.Accent = other.Accent
	}
	if c.Background == "" {
		c.Background = other.Background
	}
	if c.Ripple == "" {
		c.Ripple = other.Ripple
	}
	if c.Title == "" {
		c.Title = other.Title
	}
	if c.Subtle == "" {
		c.Subtle = other.Subtle
	}
	if c.Normal == "" {
		c.Normal = other.Normal
	}
	if c.Border == "" {
		c.Border = other.Border
	}
	if c.ErrorFg == "" {
		c.ErrorFg = other.ErrorFg
	}
}

// Override replaces every color of c that is set in other
func (c *ColorScheme) Override(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.Ripple != "" {
		c.Ripple = other.Ripple
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.Border != "" {
		c.Border = other.Border
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
}
