package multiselect

import (
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Config seeds a Machine.
type Config struct {
	Options         []Option
	VisibleCount    int
	DefaultSelected []string

	// OnChange fires once per transition that changes the selection.
	OnChange func(selected []string)
	// OnSubmit fires for every Submit command.
	OnSubmit func(selected []string)
}

// Machine owns the current State and runs the change notifier after each
// transition. Dispatch calls are serialised; callbacks run outside the lock
// so they may read the machine.
type Machine struct {
	mu           sync.RWMutex
	state        State
	lastOptions  []Option
	visibleCount int
	onChange     func([]string)
	onSubmit     func([]string)
}

// NewMachine builds a machine in its default state.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		state:        NewState(cfg.Options, cfg.VisibleCount, cfg.DefaultSelected),
		lastOptions:  slices.Clone(cfg.Options),
		visibleCount: cfg.VisibleCount,
		onChange:     cfg.OnChange,
		onSubmit:     cfg.OnSubmit,
	}
}

// Dispatch applies cmd and notifies the callbacks. It returns the new state.
func (m *Machine) Dispatch(cmd Command) State {
	m.mu.Lock()
	next := m.applyLocked(cmd)
	onChange, onSubmit := m.onChange, m.onSubmit
	m.mu.Unlock()

	notify(cmd, next, onChange, onSubmit)
	return next
}

// SetOptions resets the machine when options is not structurally equal to
// the last observed list. It reports whether a reset happened. The
// comparison and the reset happen under one lock, so concurrent callers
// with the same list reset once.
func (m *Machine) SetOptions(options []Option, visibleCount int, defaultSelected []string) bool {
	m.mu.Lock()
	if OptionsEqual(m.lastOptions, options) && visibleCount == m.visibleCount {
		m.mu.Unlock()
		return false
	}
	cmd := Reset{Options: options, VisibleCount: visibleCount, DefaultSelected: defaultSelected}
	next := m.applyLocked(cmd)
	onChange, onSubmit := m.onChange, m.onSubmit
	m.mu.Unlock()

	notify(cmd, next, onChange, onSubmit)
	return true
}

// applyLocked runs cmd against the current state. m.mu must be held.
func (m *Machine) applyLocked(cmd Command) State {
	next := Apply(m.state, cmd)
	m.state = next
	if r, ok := resetOf(cmd); ok {
		m.lastOptions = slices.Clone(r.Options)
		m.visibleCount = r.VisibleCount
	}
	return next
}

func notify(cmd Command, next State, onChange, onSubmit func([]string)) {
	if _, ok := cmd.(Submit); ok {
		if onSubmit != nil {
			onSubmit(next.Selected())
		}
		return
	}
	if onChange != nil && SelectionChanged(next.previousSelected, next.selected) && selectionMutated(cmd) {
		onChange(next.Selected())
	}
}

// State returns the current state snapshot.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// FocusedValue returns the focused option value.
func (m *Machine) FocusedValue() (string, bool) {
	return m.State().FocusedValue()
}

// VisibleSlice returns the options inside the current window.
func (m *Machine) VisibleSlice() []VisibleOption {
	return VisibleSlice(m.State())
}

// IsSelected reports whether value is selected.
func (m *Machine) IsSelected(value string) bool {
	return m.State().IsSelected(value)
}

// Selected returns the selected values in insertion order.
func (m *Machine) Selected() []string {
	return m.State().Selected()
}

// VisibleCount returns the configured (unclamped) viewport size.
func (m *Machine) VisibleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visibleCount
}

// SelectionChanged compares two selections as ordered sequences.
func SelectionChanged(prev, next []string) bool {
	return !slices.Equal(prev, next)
}

// OptionsEqual reports structural equality of two option lists, treating nil
// and empty alike.
func OptionsEqual(a, b []Option) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// selectionMutated limits notifications to commands that can alter the
// selection. Reset seeds previousSelected from the new defaults, so it never
// fires on its own.
func selectionMutated(cmd Command) bool {
	_, ok := cmd.(ToggleFocused)
	return ok
}

func resetOf(cmd Command) (Reset, bool) {
	r, ok := cmd.(Reset)
	return r, ok
}
