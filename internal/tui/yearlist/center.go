package yearlist

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
)

const (
	// resizeDebounce is how long the picker waits for resize events to settle.
	resizeDebounce = 50 * time.Millisecond

	// rippleDuration is how long a tapped row stays highlighted.
	rippleDuration = 150 * time.Millisecond
)

// centerMsg carries the post-layout step of a CenterSelected request.
type centerMsg struct {
	gen   uint64
	index int
}

// resizeMsg fires once resize events have been quiet for resizeDebounce.
type resizeMsg struct {
	gen uint64
}

// rippleMsg ends the ripple started with the same generation.
type rippleMsg struct {
	gen uint64
}

// ============================================================================
// Centering
// ============================================================================

// CenterSelected scrolls the selected year into the middle of the viewport.
//
// The list only knows its real row heights after it has drawn them, so the
// scroll happens in two steps: a best-effort jump now, and a correction in
// the returned command, which Bubble Tea delivers after the view has been
// rendered. Only the correction of the latest request runs, and only once.
func (m *Model) CenterSelected() tea.Cmd {
	if !m.hasSelected {
		return nil
	}
	index := m.rng.Index(m.selected)
	m.list.ScrollToIndex(index)

	m.centerGen++
	gen := m.centerGen
	return emit(centerMsg{gen: gen, index: index})
}

func (m *Model) handleCenter(msg centerMsg) {
	if msg.gen != m.centerGen || msg.gen == m.centerApplied {
		return
	}
	m.centerApplied = msg.gen

	// OffsetOf is index*avg until rows above are measured; bias is 0 lines.
	target := m.list.OffsetOf(msg.index)
	if target != m.list.ScrollTop() {
		m.list.Refresh()
		m.list.SetScrollTop(m.list.OffsetOf(msg.index))
	}

	if m.list.ScrollHeight()-m.list.VisibleHeight() != m.list.ScrollTop() {
		avg := m.list.AverageRowHeight()
		nudge := (avg - float64(m.list.VisibleHeight())) / 2
		m.list.SetScrollTop(m.list.ScrollTop() + int(math.Round(nudge)))
	}
}

// ============================================================================
// Resize
// ============================================================================

// Resize records a new viewport size. The first size is applied at once;
// later ones are debounced and applied without losing the scroll position.
func (m *Model) Resize(width, height int) tea.Cmd {
	m.pendingWidth, m.pendingHeight = width, height
	m.resizeGen++

	if !m.list.Visible() {
		m.applyResize()
		return nil
	}

	gen := m.resizeGen
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeMsg{gen: gen}
	})
}

func (m *Model) handleResize(msg resizeMsg) {
	if msg.gen != m.resizeGen {
		return
	}
	m.applyResize()
}

func (m *Model) applyResize() {
	m.width, m.height = m.pendingWidth, m.pendingHeight
	m.list.SetSize(m.width, m.height)
	if m.list.Measured() && m.list.Visible() {
		m.list.ResetAverage()
		m.list.Refresh()
		m.list.UpdateViewportBoundaries()
	}
}

// Width returns the applied viewport width.
func (m *Model) Width() int {
	return m.width
}

// Height returns the applied viewport height.
func (m *Model) Height() int {
	return m.height
}

// ============================================================================
// Ripple
// ============================================================================

func (m *Model) startRipple(index int) tea.Cmd {
	m.rippleGen++
	m.rippleIndex = index
	gen := m.rippleGen
	return tea.Tick(rippleDuration, func(time.Time) tea.Msg {
		return rippleMsg{gen: gen}
	})
}

func (m *Model) handleRipple(msg rippleMsg) {
	if msg.gen == m.rippleGen {
		m.rippleIndex = -1
	}
}

// Rippling returns the row index currently rippling, if any.
func (m *Model) Rippling() (int, bool) {
	return m.rippleIndex, m.rippleIndex >= 0
}
