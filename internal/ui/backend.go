package ui

import (
	"github.com/atomicstack/tmux-popup-multiselect/internal/backend"
	"github.com/atomicstack/tmux-popup-multiselect/internal/logging"
	uistate "github.com/atomicstack/tmux-popup-multiselect/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a re-fetched option list. A failed poll keeps
// the previous options on screen and surfaces the error in the status line.
func (m *Model) applyBackendEvent(evt backend.Event) bool {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.backendErr = evt.Err.Error()
		return false
	}
	m.backendErr = ""
	m.options = uistate.CloneOptions(evt.Options)
	return m.applyFilter("source")
}
