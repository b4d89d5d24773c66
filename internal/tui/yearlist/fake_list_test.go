package yearlist

import "github.com/thenoetrevino/yearpick/internal/models"

// fakeList records the calls the picker makes on its list.
type fakeList struct {
	items    []models.YearItem
	selected int

	selectIndexCalls int
	selectItemCalls  int
	clearCalls       int
	scrollToCalls    int
	lastScrollIndex  int

	width, height int
	top           int
}

func newFakeList() *fakeList {
	return &fakeList{selected: -1}
}

func (f *fakeList) SetItems(items []models.YearItem) {
	f.items = items
	f.selected = -1
}

func (f *fakeList) SetSize(width, height int) { f.width, f.height = width, height }
func (f *fakeList) Visible() bool             { return f.width > 0 && f.height > 0 }
func (f *fakeList) VisibleHeight() int        { return f.height }

func (f *fakeList) ScrollToIndex(index int) {
	f.scrollToCalls++
	f.lastScrollIndex = index
	f.top = index
}

func (f *fakeList) SelectIndex(index int) {
	f.selectIndexCalls++
	if index >= 0 && index < len(f.items) {
		f.selected = index
	}
}

func (f *fakeList) SelectItem(item models.YearItem) {
	f.selectItemCalls++
	for i, it := range f.items {
		if it == item {
			f.selected = i
		}
	}
}

func (f *fakeList) ClearSelection() {
	f.clearCalls++
	f.selected = -1
}

func (f *fakeList) SelectedIndex() (int, bool) { return f.selected, f.selected >= 0 }

func (f *fakeList) Measured() bool            { return true }
func (f *fakeList) AverageRowHeight() float64 { return 1 }
func (f *fakeList) ResetAverage()             {}
func (f *fakeList) Refresh()                  {}
func (f *fakeList) UpdateViewportBoundaries() {}

func (f *fakeList) OffsetOf(index int) int    { return index }
func (f *fakeList) ScrollTop() int            { return f.top }
func (f *fakeList) SetScrollTop(top int)      { f.top = max(0, min(top, f.ScrollHeight()-f.height)) }
func (f *fakeList) ScrollBy(delta int)        { f.SetScrollTop(f.top + delta) }
func (f *fakeList) ScrollHeight() int         { return len(f.items) }
func (f *fakeList) Render() string            { return "" }
func (f *fakeList) IndexAt(y int) (int, bool) { return f.top + y, f.top+y < len(f.items) }
