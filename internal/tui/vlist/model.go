package vlist

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

// defaultRowHeight is the row height assumed before any row has been measured.
const defaultRowHeight = 1

// RenderFunc renders the item at index.
// The selected parameter indicates whether this item is the selected row.
type RenderFunc[T any] func(item T, index int, selected bool) string

// span records which viewport lines a rendered row occupies.
type span struct {
	index int
	from  int // first viewport line (inclusive)
	to    int // last viewport line (exclusive)
}

// Model is a virtualized, selectable list.
type Model[T comparable] struct {
	// items contains all list items
	items []T

	// render renders a single item
	render RenderFunc[T]

	// selected is the selected item index, -1 when nothing is selected
	selected int

	// anchor is the first row in the viewport and anchorOffset the number
	// of its lines scrolled out above the top edge
	anchor       int
	anchorOffset int

	width  int
	height int

	// heights holds measured row heights by index
	heights       map[int]int
	measuredTotal int

	// last is the last row intersecting the viewport
	last int

	// spans is the line layout of the last render, used for hit testing
	spans []span
}

// New creates a list over items rendered by render.
func New[T comparable](items []T, render RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:    items,
		render:   render,
		selected: -1,
		heights:  make(map[int]int),
	}
	m.UpdateViewportBoundaries()
	return m
}

// SetItems replaces all items. The selection, the measurements and any
// scroll position beyond the new content are discarded.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.ResetAverage()
	m.selected = -1
	m.clampScroll()
	m.UpdateViewportBoundaries()
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// SetSize sets the viewport size.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
	m.UpdateViewportBoundaries()
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// VisibleHeight returns the viewport height.
func (m *Model[T]) VisibleHeight() int {
	return m.height
}

// Visible reports whether the viewport has a non-zero area.
func (m *Model[T]) Visible() bool {
	return m.width > 0 && m.height > 0
}

// ============================================================================
// Selection
// ============================================================================

// SelectIndex selects the row at index. Out of range indices are ignored.
func (m *Model[T]) SelectIndex(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.selected = index
}

// SelectItem selects the first row equal to item.
func (m *Model[T]) SelectItem(item T) {
	for i, it := range m.items {
		if it == item {
			m.selected = i
			return
		}
	}
}

// ClearSelection removes the selection.
func (m *Model[T]) ClearSelection() {
	m.selected = -1
}

// SelectedIndex returns the selected row index, if any.
func (m *Model[T]) SelectedIndex() (int, bool) {
	if m.selected < 0 {
		return 0, false
	}
	return m.selected, true
}

// ============================================================================
// Measurement
// ============================================================================

// Measured reports whether at least one row has been rendered and measured.
func (m *Model[T]) Measured() bool {
	return len(m.heights) > 0
}

// AverageRowHeight returns the mean height of measured rows, or the default
// row height when nothing has been measured yet.
func (m *Model[T]) AverageRowHeight() float64 {
	if len(m.heights) == 0 {
		return defaultRowHeight
	}
	return float64(m.measuredTotal) / float64(len(m.heights))
}

// ResetAverage discards all measurements.
func (m *Model[T]) ResetAverage() {
	m.heights = make(map[int]int)
	m.measuredTotal = 0
}

// Refresh re-measures the rows in the current viewport without producing output.
func (m *Model[T]) Refresh() {
	m.clampScroll()
	m.UpdateViewportBoundaries()
	for i := m.anchor; i <= m.last && i < len(m.items); i++ {
		m.measure(i, m.render(m.items[i], i, i == m.selected))
	}
}

func (m *Model[T]) measure(index int, row string) {
	h := lipgloss.Height(row)
	if old, ok := m.heights[index]; ok {
		m.measuredTotal -= old
	}
	m.heights[index] = h
	m.measuredTotal += h
}

// ============================================================================
// Scrolling
// ============================================================================

// heightOf returns the measured height of the row at index, or the average
// when it has not been measured.
func (m *Model[T]) heightOf(index int) float64 {
	if h, ok := m.heights[index]; ok {
		return float64(h)
	}
	return m.AverageRowHeight()
}

// OffsetOf returns the estimated first line of the row at index: measured
// rows above it count with their real height, the rest with the average.
func (m *Model[T]) OffsetOf(index int) int {
	var sum float64
	for i := 0; i < index && i < len(m.items); i++ {
		sum += m.heightOf(i)
	}
	return int(math.Round(sum))
}

// ScrollTop returns the first visible line.
func (m *Model[T]) ScrollTop() int {
	return m.OffsetOf(m.anchor) + m.anchorOffset
}

// SetScrollTop moves the viewport, clamped to the scrollable range.
func (m *Model[T]) SetScrollTop(top int) {
	top = max(0, min(top, m.maxScroll()))
	m.anchor, m.anchorOffset = 0, 0
	var sum float64
	for i := range m.items {
		h := m.heightOf(i)
		start := int(math.Round(sum))
		if top < int(math.Round(sum+h)) || i == len(m.items)-1 {
			m.anchor = i
			m.anchorOffset = max(0, top-start)
			break
		}
		sum += h
	}
	m.UpdateViewportBoundaries()
}

// ScrollBy moves the viewport by delta lines.
func (m *Model[T]) ScrollBy(delta int) {
	m.SetScrollTop(m.ScrollTop() + delta)
}

// ScrollHeight returns the estimated height of the whole content.
func (m *Model[T]) ScrollHeight() int {
	return m.OffsetOf(len(m.items))
}

// ScrollToIndex scrolls so the row at index is at the top of the viewport,
// as far as the scrollable range allows.
func (m *Model[T]) ScrollToIndex(index int) {
	if len(m.items) == 0 {
		return
	}
	index = max(0, min(index, len(m.items)-1))
	m.SetScrollTop(m.OffsetOf(index))
}

func (m *Model[T]) maxScroll() int {
	return max(0, m.ScrollHeight()-m.height)
}

func (m *Model[T]) clampScroll() {
	if len(m.items) == 0 {
		m.anchor, m.anchorOffset = 0, 0
		return
	}
	if m.anchor >= len(m.items) || m.ScrollTop() > m.maxScroll() {
		m.SetScrollTop(m.maxScroll())
	}
}

// UpdateViewportBoundaries recomputes the last row intersecting the viewport.
// The first visible row is kept, so the viewport never jumps back to it.
func (m *Model[T]) UpdateViewportBoundaries() {
	if len(m.items) == 0 {
		m.last = -1
		return
	}
	covered := m.heightOf(m.anchor) - float64(m.anchorOffset)
	last := m.anchor
	for covered < float64(m.height) && last+1 < len(m.items) {
		last++
		covered += m.heightOf(last)
	}
	m.last = last
}

// FirstVisible returns the first row index intersecting the viewport.
func (m *Model[T]) FirstVisible() int {
	return m.anchor
}

// LastVisible returns the last row index intersecting the viewport.
func (m *Model[T]) LastVisible() int {
	return m.last
}

// ============================================================================
// Rendering
// ============================================================================

// Render draws the viewport, measuring every row it renders.
// The result always has VisibleHeight lines.
func (m *Model[T]) Render() string {
	m.spans = m.spans[:0]
	if m.height <= 0 {
		return ""
	}
	lines := make([]string, 0, m.height)

	if len(m.items) > 0 {
		m.clampScroll()
		first := m.anchor
		skip := m.anchorOffset

		last := first
		for i := first; i < len(m.items) && len(lines) < m.height; i++ {
			row := m.render(m.items[i], i, i == m.selected)
			m.measure(i, row)

			rowLines := strings.Split(row, "\n")
			if i == first && skip > 0 {
				skip = min(skip, len(rowLines)-1)
				rowLines = rowLines[skip:]
			}

			from := len(lines)
			for _, l := range rowLines {
				if len(lines) == m.height {
					break
				}
				lines = append(lines, l)
			}
			m.spans = append(m.spans, span{index: i, from: from, to: len(lines)})
			last = i
		}
		m.last = last
	}

	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// IndexAt returns the row drawn at viewport line y by the last Render.
func (m *Model[T]) IndexAt(y int) (int, bool) {
	for _, s := range m.spans {
		if y >= s.from && y < s.to {
			return s.index, true
		}
	}
	return 0, false
}

// LineOf returns the first viewport line of the row at index in the last
// Render, if it was drawn.
func (m *Model[T]) LineOf(index int) (int, bool) {
	for _, s := range m.spans {
		if s.index == index {
			return s.from, true
		}
	}
	return 0, false
}
