package config

// KeyMappings defines all configurable key bindings.
// The arrow, page and home/end keys always work in addition to these.
type KeyMappings struct {
	// Navigation
	PrevYear  string `yaml:"prev_year"`
	NextYear  string `yaml:"next_year"`
	PageUp    string `yaml:"page_up"`
	PageDown  string `yaml:"page_down"`
	FirstYear string `yaml:"first_year"`
	LastYear  string `yaml:"last_year"`
	Center    string `yaml:"center"`

	// Other
	Confirm  string `yaml:"confirm"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		PrevYear:  "k",
		NextYear:  "j",
		PageUp:    "ctrl+u",
		PageDown:  "ctrl+d",
		FirstYear: "g",
		LastYear:  "G",
		Center:    "c",

		// Other
		Confirm:  "enter",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevYear == "" {
		k.PrevYear = defaults.PrevYear
	}
	if k.NextYear == "" {
		k.NextYear = defaults.NextYear
	}
	if k.PageUp == "" {
		k.PageUp = defaults.PageUp
	}
	if k.PageDown == "" {
		k.PageDown = defaults.PageDown
	}
	if k.FirstYear == "" {
		k.FirstYear = defaults.FirstYear
	}
	if k.LastYear == "" {
		k.LastYear = defaults.LastYear
	}
	if k.Center == "" {
		k.Center = defaults.Center
	}
	if k.Confirm == "" {
		k.Confirm = defaults.Confirm
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
