package tmux

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session is a tmux session as offered to the picker.
type Session struct {
	Name     string
	Windows  int
	Attached bool
	Label    string
}

// Window is a tmux window addressed as session:index.
type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Active  bool
	Label   string
}

// ListSessions returns the sessions of the server behind socketPath in the
// order tmux reports them.
func ListSessions(ctx context.Context, socketPath string) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := clientFor(socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	sessions, err := client.ListSessions()
	if err != nil {
		dropClient(socketPath)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		out = append(out, Session{
			Name:     s.Name,
			Windows:  s.Windows,
			Attached: s.Attached > 0,
			Label:    sessionLabel(s),
		})
	}
	return out, nil
}

// ListWindows returns every window on the server sorted by session then
// index.
func ListWindows(ctx context.Context, socketPath string) ([]Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := clientFor(socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	windows, err := client.ListAllWindows()
	if err != nil {
		dropClient(socketPath)
		return nil, fmt.Errorf("list windows: %w", err)
	}
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w == nil {
			continue
		}
		session := firstSession(w)
		entry := Window{
			ID:      fmt.Sprintf("%s:%d", session, w.Index),
			Session: session,
			Index:   w.Index,
			Name:    w.Name,
			Active:  w.Active,
		}
		entry.Label = windowLabel(entry)
		out = append(out, entry)
	}
	slices.SortStableFunc(out, func(a, b Window) int {
		if c := cmp.Compare(a.Session, b.Session); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return out, nil
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return strings.TrimSpace(w.Session)
}

func sessionLabel(s *gotmux.Session) string {
	label := fmt.Sprintf("%s: %d window", s.Name, s.Windows)
	if s.Windows != 1 {
		label += "s"
	}
	if s.Attached > 0 {
		label += " (attached)"
	}
	return label
}

func windowLabel(w Window) string {
	label := fmt.Sprintf("%s %s", w.ID, w.Name)
	if w.Active {
		label += " (active)"
	}
	return label
}
