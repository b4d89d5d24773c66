package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type HelpProps struct {
	Markdown string
	Width    int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderHelp renders the help markdown, falling back to the raw text if
// glamour fails
func RenderHelp(props HelpProps) string {
	renderer, err := getRenderer(props.Width)
	if err == nil {
		rendered, err := renderer.Render(props.Markdown)
		if err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return props.Markdown
}
