package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/yearpick/internal/config"
)

// helpMarkdown lists the bindings in effect.
func helpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# yearpick\n\n")
	b.WriteString("Pick a year with the keyboard or the mouse.\n\n")

	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := []struct{ key, action string }{
		{"↑ / " + km.PrevYear, "previous year"},
		{"↓ / " + km.NextYear, "next year"},
		{"pgup / " + km.PageUp, "page up"},
		{"pgdn / " + km.PageDown, "page down"},
		{"home / " + km.FirstYear, "first year"},
		{"end / " + km.LastYear, "last year"},
		{km.Center, "center the selection"},
		{km.Confirm, "pick the selected date"},
		{km.ShowHelp, "toggle this help"},
		{km.Quit, "quit without picking"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r.key, r.action)
	}

	b.WriteString("\nClick a year to select it, scroll with the wheel.\n")
	return b.String()
}
