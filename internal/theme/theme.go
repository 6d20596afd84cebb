package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the picker.
type Styles struct {
	Option            *lipgloss.Style
	FocusIndicator    *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	FocusedLabel      *lipgloss.Style
	SelectedLabel     *lipgloss.Style
	DisabledLabel     *lipgloss.Style
	Highlight         *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	ScrollHint        *lipgloss.Style
}

const (
	blue  = lipgloss.Color("4")
	green = lipgloss.Color("2")
)

var defaultStyles = Styles{
	Option: ptr(
		lipgloss.NewStyle(),
	),
	FocusIndicator: ptr(
		lipgloss.NewStyle().Foreground(blue),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(green),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(blue),
	),
	SelectedLabel: ptr(
		lipgloss.NewStyle().Foreground(green),
	),
	DisabledLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	ScrollHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with every entry unstyled, used for -plain and
// NO_COLOR output.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Option:            ptr(plain),
		FocusIndicator:    ptr(plain),
		SelectedIndicator: ptr(plain),
		FocusedLabel:      ptr(plain),
		SelectedLabel:     ptr(plain),
		DisabledLabel:     ptr(plain),
		Highlight:         ptr(plain),
		Error:             ptr(plain),
		Info:              ptr(plain),
		Header:            ptr(plain),
		Footer:            ptr(plain),
		Filter:            ptr(plain),
		FilterPrompt:      ptr(plain),
		FilterPlaceholder: ptr(plain),
		Cursor:            ptr(plain),
		ScrollHint:        ptr(plain),
	}
}

// LabelStyle picks the label style for a row. Focus wins over selection.
func (s *Styles) LabelStyle(focused, selected, disabled bool) *lipgloss.Style {
	switch {
	case disabled:
		return s.DisabledLabel
	case focused:
		return s.FocusedLabel
	case selected:
		return s.SelectedLabel
	default:
		return s.Option
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
