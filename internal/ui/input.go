package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-popup-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	}
	if m.disabled {
		events.Select.Ignored(key)
		return nil
	}
	switch key {
	case "down", "ctrl+n":
		m.moveFocus(multiselect.FocusNext{})
		return nil
	case "up", "ctrl+p":
		m.moveFocus(multiselect.FocusPrevious{})
		return nil
	case " ", "tab":
		m.toggleFocused()
		return nil
	case "enter":
		return m.bus.Submit()
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.query.Text == "" || m.disabled {
		return tea.Quit
	}
	before := m.query.CursorPos()
	m.query.Clear()
	m.noteFilterCursorChange(before)
	events.Filter.Cleared()
	m.applyFilter("filter")
	return nil
}

func (m *Model) moveFocus(cmd multiselect.Command) {
	next := m.bus.Dispatch(cmd)
	if value, ok := next.FocusedValue(); ok {
		start, end := next.Window()
		events.Select.Focus(value, start, end)
	}
}

func (m *Model) toggleFocused() {
	next := m.bus.Dispatch(multiselect.ToggleFocused{})
	if value, ok := next.FocusedValue(); ok {
		events.Select.Toggle(value, next.IsSelected(value))
	}
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.query.CursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	before := m.query.CursorPos()
	switch msg.String() {
	case "ctrl+u":
		if !m.query.Clear() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.applyFilter("filter")
		return true, nil
	case "ctrl+w":
		if !m.query.DeleteWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.WordBackspace(m.query.Text)
		m.applyFilter("filter")
		return true, nil
	case "ctrl+a", "home":
		return m.moveFilterCursor(before, m.query.MoveStart), nil
	case "ctrl+e", "end":
		return m.moveFilterCursor(before, m.query.MoveEnd), nil
	case "alt+b":
		return m.moveFilterCursor(before, m.query.MoveWordBackward), nil
	case "alt+f":
		return m.moveFilterCursor(before, m.query.MoveWordForward), nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	case tea.KeyLeft:
		return m.moveFilterCursor(before, m.query.MoveRuneBackward), nil
	case tea.KeyRight:
		return m.moveFilterCursor(before, m.query.MoveRuneForward), nil
	}
	return false, nil
}

func (m *Model) moveFilterCursor(before int, move func() bool) bool {
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Cursor(m.query.CursorPos())
	return true
}

func (m *Model) appendToFilter(text string) bool {
	before := m.query.CursorPos()
	if !m.query.Insert(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Append(m.query.Text)
	m.applyFilter("filter")
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.query.CursorPos()
	if !m.query.DeleteRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Backspace(m.query.Text)
	m.applyFilter("filter")
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if m.styles.Cursor != nil {
		m.filterCursor.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		m.filterCursor.TextStyle = m.styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	if m.disabled {
		return prompt + render(m.styles.FilterPlaceholder, "(disabled)")
	}
	runes := []rune(m.query.Text)
	if len(runes) == 0 {
		placeholder := []rune("(type to filter)")
		if m.styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = m.styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(m.styles.FilterPlaceholder, string(placeholder[1:]))
	}
	pos := m.query.CursorPos()
	before := render(m.styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(m.styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if m.styles.Cursor != nil {
		cursorStyle := m.styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
