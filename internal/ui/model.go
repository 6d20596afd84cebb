package ui

import (
	"reflect"
	"runtime"

	"github.com/atomicstack/tmux-popup-multiselect/internal/backend"
	"github.com/atomicstack/tmux-popup-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/atomicstack/tmux-popup-multiselect/internal/theme"
	"github.com/atomicstack/tmux-popup-multiselect/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-multiselect/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Config describes how the picker is presented and what it starts with.
type Config struct {
	Options         []multiselect.Option
	VisibleCount    int
	DefaultSelected []string
	Disabled        bool
	Highlight       string
	Title           string
	ShowFooter      bool
	Width           int
	Height          int
	Symbols         theme.Symbols
	Plain           bool
	Watcher         *backend.Watcher
	OnChange        func(selected []string)
}

// Model implements the Bubble Tea model for the multi-select popup.
type Model struct {
	machine      *multiselect.Machine
	bus          *command.Bus
	options      []multiselect.Option
	visibleCount int
	query        uistate.Query

	disabled   bool
	highlight  string
	title      string
	showFooter bool
	symbols    theme.Symbols
	styles     *theme.Styles

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	backend    *backend.Watcher
	backendErr string

	submitted bool
	result    []string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker model around a fresh selection machine.
func NewModel(cfg Config) *Model {
	m := &Model{
		options:      uistate.CloneOptions(cfg.Options),
		visibleCount: cfg.VisibleCount,
		disabled:     cfg.Disabled,
		highlight:    cfg.Highlight,
		title:        cfg.Title,
		showFooter:   cfg.ShowFooter,
		symbols:      cfg.Symbols,
		styles:       theme.Default(),
		backend:      cfg.Watcher,
	}
	if cfg.Plain {
		m.styles = theme.Plain()
	}
	if m.symbols.Pointer == "" || m.symbols.Tick == "" {
		m.symbols = theme.SymbolsFor(nil, runtime.GOOS)
	}
	onChange := cfg.OnChange
	m.machine = multiselect.NewMachine(multiselect.Config{
		Options:         cfg.Options,
		VisibleCount:    cfg.VisibleCount,
		DefaultSelected: cfg.DefaultSelected,
		OnChange: func(selected []string) {
			events.Select.Change(selected)
			if onChange != nil {
				onChange(selected)
			}
		},
		OnSubmit: func(selected []string) {
			events.Select.Submit(selected)
			m.submitted = true
			m.result = selected
		},
	})
	m.bus = command.New(m.machine)
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if m.styles.Cursor != nil {
		c.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		c.TextStyle = m.styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Submitted reports whether the user confirmed the selection.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Result returns the selection delivered on submit.
func (m *Model) Result() []string {
	if m.result == nil {
		return nil
	}
	out := make([]string, len(m.result))
	copy(out, m.result)
	return out
}

// Options returns the full, unfiltered option list currently loaded.
func (m *Model) Options() []multiselect.Option {
	return uistate.CloneOptions(m.options)
}

// Machine exposes the selection machine driving the picker.
func (m *Model) Machine() *multiselect.Machine {
	return m.machine
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.SubmittedMsg{}): m.handleSubmittedMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSubmittedMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(command.SubmittedMsg); !ok {
		return nil
	}
	return tea.Quit
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// applyFilter narrows the loaded options by the current query and resets the
// machine when the narrowed list differs from what it last saw. The current
// selection is carried over as the new defaults.
func (m *Model) applyFilter(reason string) bool {
	filtered := uistate.FilterOptions(m.options, m.query.Text)
	if !m.machine.SetOptions(filtered, m.visibleCount, m.machine.Selected()) {
		return false
	}
	events.Select.Reset(reason, len(filtered), m.machine.VisibleCount())
	return true
}
