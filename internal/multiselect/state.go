package multiselect

import "slices"

// DefaultVisibleCount is the viewport size used when none is configured.
const DefaultVisibleCount = 5

// State is the aggregate the machine replaces on every transition. Values are
// never mutated once returned; every transition that changes a slice copies it.
type State struct {
	index            *Index
	visibleCount     int
	focusedValue     string
	hasFocus         bool
	windowStart      int
	windowEnd        int
	selected         []string
	previousSelected []string
}

// NewState builds the default state for an option list. A visibleCount of
// zero or less means unconfigured and shows every option. defaultSelected is
// copied verbatim without checking it against options.
func NewState(options []Option, visibleCount int, defaultSelected []string) State {
	count := len(options)
	if visibleCount > 0 && visibleCount < count {
		count = visibleCount
	}
	idx := BuildIndex(options)
	first, ok := idx.First()
	selected := cloneValues(defaultSelected)
	return State{
		index:            idx,
		visibleCount:     count,
		focusedValue:     first,
		hasFocus:         ok,
		windowStart:      0,
		windowEnd:        count,
		selected:         selected,
		previousSelected: selected,
	}
}

// FocusedValue returns the focused option value; false only for empty lists.
func (s State) FocusedValue() (string, bool) {
	return s.focusedValue, s.hasFocus
}

// Window returns the half-open visible range [start, end).
func (s State) Window() (int, int) {
	return s.windowStart, s.windowEnd
}

// VisibleCount is the effective viewport size.
func (s State) VisibleCount() int {
	return s.visibleCount
}

// Len reports the total number of options.
func (s State) Len() int {
	return s.index.Len()
}

// Options returns a copy of the backing option list.
func (s State) Options() []Option {
	return s.index.Options()
}

// Selected returns a copy of the selected values in insertion order.
func (s State) Selected() []string {
	return cloneValues(s.selected)
}

// PreviousSelected returns the selection snapshot taken before the most
// recent selection mutation.
func (s State) PreviousSelected() []string {
	return cloneValues(s.previousSelected)
}

// IsSelected reports whether value is part of the selection.
func (s State) IsSelected(value string) bool {
	return slices.Contains(s.selected, value)
}

// Command is one of the closed set of transitions understood by Apply.
type Command interface {
	command()
}

// FocusNext moves focus to the successor, scrolling one row when it leaves
// the window.
type FocusNext struct{}

// FocusPrevious moves focus to the predecessor, scrolling one row when it
// reaches the window's leading edge.
type FocusPrevious struct{}

// ToggleFocused adds or removes the focused value from the selection.
type ToggleFocused struct{}

// Submit exposes the current selection to the submit callback.
type Submit struct{}

// Reset discards the state and rebuilds it for a new option list.
type Reset struct {
	Options         []Option
	VisibleCount    int
	DefaultSelected []string
}

func (FocusNext) command()     {}
func (FocusPrevious) command() {}
func (ToggleFocused) command() {}
func (Submit) command()        {}
func (Reset) command()         {}

// Apply returns the state produced by running cmd against s. It never fails:
// boundary and empty-list commands return s unchanged.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case FocusNext:
		return focusNext(s)
	case FocusPrevious:
		return focusPrevious(s)
	case ToggleFocused:
		return toggleFocused(s)
	case Reset:
		return NewState(c.Options, c.VisibleCount, c.DefaultSelected)
	default:
		// Submit is a pure read.
		return s
	}
}

func focusNext(s State) State {
	if !s.hasFocus {
		return s
	}
	next, ok := s.index.Next(s.focusedValue)
	if !ok {
		return s
	}
	s.focusedValue = next.Option.Value
	if next.Position >= s.windowEnd {
		s.windowEnd = min(s.index.Len(), s.windowEnd+1)
		s.windowStart = s.windowEnd - s.visibleCount
	}
	return s
}

func focusPrevious(s State) State {
	if !s.hasFocus {
		return s
	}
	prev, ok := s.index.Previous(s.focusedValue)
	if !ok {
		return s
	}
	s.focusedValue = prev.Option.Value
	if prev.Position <= s.windowStart {
		s.windowStart = max(0, s.windowStart-1)
		s.windowEnd = s.windowStart + s.visibleCount
	}
	return s
}

func toggleFocused(s State) State {
	if !s.hasFocus {
		return s
	}
	s.previousSelected = s.selected
	if i := slices.Index(s.selected, s.focusedValue); i >= 0 {
		s.selected = slices.Delete(cloneValues(s.selected), i, i+1)
		return s
	}
	s.selected = append(cloneValues(s.selected), s.focusedValue)
	return s
}

// cloneValues never returns nil so sequence comparisons treat "no selection"
// and "empty selection" alike.
func cloneValues(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
