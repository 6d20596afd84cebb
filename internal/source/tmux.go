package source

import (
	"context"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/atomicstack/tmux-popup-multiselect/internal/tmux"
)

var (
	listSessions = tmux.ListSessions
	listWindows  = tmux.ListWindows
)

// TmuxSessions offers the sessions of a tmux server, valued by name.
type TmuxSessions struct {
	Socket string
}

func (s *TmuxSessions) Kind() string { return KindTmuxSessions }

func (s *TmuxSessions) Load(ctx context.Context) ([]multiselect.Option, error) {
	sessions, err := listSessions(ctx, s.Socket)
	if err != nil {
		return nil, err
	}
	options := make([]multiselect.Option, 0, len(sessions))
	for _, session := range sessions {
		options = append(options, multiselect.Option{Value: session.Name, Label: session.Label})
	}
	return options, nil
}

// TmuxWindows offers every window of a tmux server, valued by session:index.
type TmuxWindows struct {
	Socket string
}

func (w *TmuxWindows) Kind() string { return KindTmuxWindows }

func (w *TmuxWindows) Load(ctx context.Context) ([]multiselect.Option, error) {
	windows, err := listWindows(ctx, w.Socket)
	if err != nil {
		return nil, err
	}
	options := make([]multiselect.Option, 0, len(windows))
	for _, window := range windows {
		options = append(options, multiselect.Option{Value: window.ID, Label: window.Label})
	}
	return options, nil
}
