package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/yearpick/internal/config"
	"github.com/thenoetrevino/yearpick/internal/tui/yearlist"
)

// KeyMap holds the host bindings plus the picker's own.
type KeyMap struct {
	Picker yearlist.KeyMap

	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the bindings from the configured mappings. Arrow, page
// and home/end keys are always bound next to the configured keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Picker: yearlist.KeyMap{
			Up: key.NewBinding(
				key.WithKeys(withFixed("up", km.PrevYear)...),
				key.WithHelp("↑/"+km.PrevYear, "previous year"),
			),
			Down: key.NewBinding(
				key.WithKeys(withFixed("down", km.NextYear)...),
				key.WithHelp("↓/"+km.NextYear, "next year"),
			),
			PageUp: key.NewBinding(
				key.WithKeys(withFixed("pgup", km.PageUp)...),
				key.WithHelp(km.PageUp, "page up"),
			),
			PageDown: key.NewBinding(
				key.WithKeys(withFixed("pgdown", km.PageDown)...),
				key.WithHelp(km.PageDown, "page down"),
			),
			Home: key.NewBinding(
				key.WithKeys(withFixed("home", km.FirstYear)...),
				key.WithHelp(km.FirstYear, "first year"),
			),
			End: key.NewBinding(
				key.WithKeys(withFixed("end", km.LastYear)...),
				key.WithHelp(km.LastYear, "last year"),
			),
			Center: key.NewBinding(
				key.WithKeys(km.Center),
				key.WithHelp(km.Center, "center"),
			),
		},
		Confirm: key.NewBinding(
			key.WithKeys(km.Confirm),
			key.WithHelp(km.Confirm, "pick"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(withFixed("ctrl+c", km.Quit)...),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// withFixed returns fixed followed by configured, unless they are the same key.
func withFixed(fixed, configured string) []string {
	if configured == "" || configured == fixed {
		return []string{fixed}
	}
	return []string{fixed, configured}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Picker.Up, k.Picker.Down, k.Confirm, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Picker.FullHelp(), []key.Binding{k.Confirm, k.Help, k.Quit})
}
