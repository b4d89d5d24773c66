package yearlist

import (
	"math"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
)

// wheelStep is the number of lines one mouse wheel notch scrolls.
const wheelStep = 3

// Update handles keys, mouse input and the picker's own deferred messages.
// Size changes come through Resize, since only the host knows the layout.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case centerMsg:
		m.handleCenter(msg)
	case resizeMsg:
		m.handleResize(msg)
	case rippleMsg:
		m.handleRipple(msg)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		return m, m.handleClick(msg)
	case tea.MouseWheelMsg:
		m.handleWheel(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.step(-1)
	case key.Matches(msg, m.keys.Down):
		return m.step(1)
	case key.Matches(msg, m.keys.PageUp):
		return m.step(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		return m.step(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		return m.choose(m.rng.Min)
	case key.Matches(msg, m.keys.End):
		return m.choose(m.rng.Max)
	case key.Matches(msg, m.keys.Center):
		return m.CenterSelected()
	}
	return nil
}

func (m *Model) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	index, ok := m.list.IndexAt(mouse.Y - m.originY)
	if !ok || index >= len(m.years) {
		return nil
	}
	return m.Tap(m.years[index])
}

func (m *Model) handleWheel(msg tea.MouseWheelMsg) {
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		m.list.ScrollBy(-wheelStep)
	case tea.MouseWheelDown:
		m.list.ScrollBy(wheelStep)
	}
}

// step moves the selection by delta years, clamped to the range. Without a
// selection it starts from the bound date's year, or from min.
func (m *Model) step(delta int) tea.Cmd {
	if m.rng.Len() == 0 {
		return nil
	}
	base := m.rng.Min
	switch {
	case m.hasSelected:
		base = m.selected
	case m.hasDate:
		base = m.date.Year()
	}
	return m.choose(base + delta)
}

// choose selects year the way a tap does, without the ripple, and keeps it
// centered.
func (m *Model) choose(year int) tea.Cmd {
	if m.rng.Len() == 0 {
		return nil
	}
	year = max(m.rng.Min, min(year, m.rng.Max))

	var cmd tea.Cmd
	if !m.hasSelected || m.selected != year {
		m.list.SelectItem(models.YearItem{Year: year})
		cmd = m.SetSelected(year)
	}
	return tea.Batch(cmd, m.CenterSelected())
}

// pageSize is the number of rows that fit in the viewport.
func (m *Model) pageSize() int {
	avg := m.list.AverageRowHeight()
	if avg <= 0 {
		return 1
	}
	return max(1, int(math.Floor(float64(m.list.VisibleHeight())/avg)))
}
