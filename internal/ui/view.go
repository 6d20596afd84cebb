package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	uistate "github.com/atomicstack/tmux-popup-multiselect/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const footerHints = "↑/↓ move  space toggle  enter submit  esc clear/quit  ctrl+c abort"

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.machine.VisibleCount()+6)
	if title := strings.TrimSpace(m.title); title != "" {
		lines = append(lines, render(m.styles.Header, title))
	}
	lines = append(lines, m.optionLines()...)
	if hint := m.scrollHint(); hint != "" {
		lines = append(lines, render(m.styles.ScrollHint, hint))
	}
	if m.showFooter {
		lines = append(lines, "")
		lines = append(lines, render(m.styles.Footer, footerHints))
	}
	// Reserve two rows for the status line and filter prompt.
	lines = limitHeight(lines, m.height-2)

	status := ""
	if m.backendErr != "" {
		status = render(m.styles.Error, "Error: "+m.backendErr)
	}
	lines = append(lines, status, m.filterPrompt())
	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) optionLines() []string {
	visible := m.machine.VisibleSlice()
	if len(visible) == 0 {
		msg := "(no options)"
		if m.query.Text != "" {
			msg = fmt.Sprintf("No matches for %q", m.query.Text)
		}
		return []string{render(m.styles.Info, msg)}
	}
	focused, hasFocus := m.machine.FocusedValue()
	lines := make([]string, 0, len(visible))
	for _, item := range visible {
		isFocused := hasFocus && item.Value == focused
		lines = append(lines, m.buildOptionLine(item, isFocused, m.machine.IsSelected(item.Value)))
	}
	return lines
}

// buildOptionLine renders one row: focus pointer, label, and a tick when the
// option is selected. The pointer column is kept blank for unfocused rows so
// labels stay aligned.
func (m *Model) buildOptionLine(item multiselect.VisibleOption, focused, selected bool) string {
	pointer := strings.Repeat(" ", ansi.StringWidth(m.symbols.Pointer))
	if focused && !m.disabled {
		pointer = render(m.styles.FocusIndicator, m.symbols.Pointer)
	}
	base := m.styles.LabelStyle(focused && !m.disabled, selected, m.disabled)
	line := pointer + " " + m.renderLabel(item.Label, base)
	if selected {
		line += " " + render(m.styles.SelectedIndicator, m.symbols.Tick)
	}
	return line
}

// renderLabel bolds the first occurrence of the highlight text inside label.
// An explicit highlight wins over the live filter query.
func (m *Model) renderLabel(label string, base *lipgloss.Style) string {
	start, end, ok := m.highlightSpan(label)
	if !ok {
		return render(base, label)
	}
	hl := m.styles.Highlight
	if hl != nil && base != nil {
		inherited := hl.Copy().Inherit(*base)
		hl = &inherited
	}
	return render(base, label[:start]) + render(hl, label[start:end]) + render(base, label[end:])
}

func (m *Model) highlightSpan(label string) (int, int, bool) {
	needle := m.highlight
	if needle == "" {
		needle = m.query.Text
	}
	return uistate.HighlightSpan(label, needle)
}

func (m *Model) scrollHint() string {
	total := m.machine.State().Len()
	if total == 0 || total <= m.machine.VisibleCount() {
		return ""
	}
	start, end := m.machine.State().Window()
	return fmt.Sprintf("%d-%d of %d", start+1, end, total)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{"…"}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, "…")
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Truncate(line, width, "…")
	}
	return out
}
