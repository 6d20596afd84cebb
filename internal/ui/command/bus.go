package command

import (
	"github.com/atomicstack/tmux-popup-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	tea "github.com/charmbracelet/bubbletea"
)

// SubmittedMsg is delivered once a Submit command has been dispatched.
type SubmittedMsg struct {
	Selected []string
}

// Bus routes commands into the selection machine while emitting trace logs.
type Bus struct {
	machine *multiselect.Machine
}

// New initialises a command bus bound to machine.
func New(machine *multiselect.Machine) *Bus {
	return &Bus{machine: machine}
}

// Dispatch applies cmd synchronously and returns the resulting state.
func (b *Bus) Dispatch(cmd multiselect.Command) multiselect.State {
	name := Name(cmd)
	events.Command.Dispatch(name)
	next := b.machine.Dispatch(cmd)
	focused, _ := next.FocusedValue()
	events.Command.Result(name, focused, len(next.Selected()))
	return next
}

// Submit dispatches Submit and yields a tea.Cmd reporting the selection.
func (b *Bus) Submit() tea.Cmd {
	selected := b.Dispatch(multiselect.Submit{}).Selected()
	return func() tea.Msg {
		return SubmittedMsg{Selected: selected}
	}
}

// Name returns a stable label for cmd used in trace output.
func Name(cmd multiselect.Command) string {
	switch cmd.(type) {
	case multiselect.FocusNext:
		return "focus-next"
	case multiselect.FocusPrevious:
		return "focus-previous"
	case multiselect.ToggleFocused:
		return "toggle"
	case multiselect.Submit:
		return "submit"
	case multiselect.Reset:
		return "reset"
	default:
		return "unknown"
	}
}
