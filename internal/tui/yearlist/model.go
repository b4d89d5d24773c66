// Package yearlist implements a year picker: a scrollable list of the years
// in a configurable range whose selection is kept in sync with a date.
package yearlist

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/yearpick/internal/models"
	"github.com/thenoetrevino/yearpick/internal/tui/vlist"
)

// List is the virtualized list the year picker draws its rows with.
// *vlist.Model[models.YearItem] satisfies it.
type List interface {
	SetItems(items []models.YearItem)
	SetSize(width, height int)
	Visible() bool
	VisibleHeight() int

	ScrollToIndex(index int)
	SelectIndex(index int)
	SelectItem(item models.YearItem)
	ClearSelection()
	SelectedIndex() (int, bool)

	Measured() bool
	AverageRowHeight() float64
	ResetAverage()
	Refresh()
	UpdateViewportBoundaries()

	OffsetOf(index int) int
	ScrollTop() int
	SetScrollTop(top int)
	ScrollBy(delta int)
	ScrollHeight() int

	Render() string
	IndexAt(y int) (int, bool)
}

// DateChangedMsg is emitted when the picker writes a new date.
type DateChangedMsg struct {
	Date time.Time
}

// SelectedChangedMsg is emitted when the selected year changes.
// Valid is false when the selection was cleared.
type SelectedChangedMsg struct {
	Year  int
	Valid bool
}

// Model is the year picker.
type Model struct {
	list List
	keys KeyMap

	// date is the bound date; only its year is used
	date    time.Time
	hasDate bool

	rng   models.Range
	years []models.YearItem

	// selected is meaningful only when hasSelected is set
	selected    int
	hasSelected bool

	width  int
	height int
	// originY is the screen line of the first row, used for mouse hit testing
	originY int

	centerGen     uint64
	centerApplied uint64

	resizeGen     uint64
	pendingWidth  int
	pendingHeight int

	rippleGen   uint64
	rippleIndex int
}

// Option configures a Model built by New.
type Option func(*Model)

// WithList replaces the default virtualized list.
func WithList(l List) Option {
	return func(m *Model) {
		m.list = l
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// New creates a year picker over the default 1900..2100 range with no date.
func New(opts ...Option) *Model {
	m := &Model{
		keys:        DefaultKeyMap(),
		rng:         models.DefaultRange(),
		rippleIndex: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.list == nil {
		m.list = vlist.New[models.YearItem](nil, m.renderRow)
	}
	m.rangeChanged()
	return m
}

// Init implements the Bubble Tea component contract.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Date returns the bound date and whether one has been set.
func (m *Model) Date() (time.Time, bool) {
	return m.date, m.hasDate
}

// Selected returns the selected year, if any.
func (m *Model) Selected() (int, bool) {
	return m.selected, m.hasSelected
}

// Min returns the lower bound (inclusive).
func (m *Model) Min() int {
	return m.rng.Min
}

// Max returns the upper bound (inclusive).
func (m *Model) Max() int {
	return m.rng.Max
}

// Years returns the rows currently offered.
func (m *Model) Years() []models.YearItem {
	return m.years
}

// SetOrigin tells the picker on which screen line its first row is drawn.
func (m *Model) SetOrigin(y int) {
	m.originY = y
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
