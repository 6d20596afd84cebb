package tmux

import (
	"context"
	"testing"

	"github.com/atomicstack/tmux-popup-multiselect/internal/testutil"
)

func TestListAgainstRealServer(t *testing.T) {
	srv := testutil.StartTmuxServer(t, "alpha")
	srv.NewSession(t, "beta")
	srv.NewWindow(t, "beta", "logs")
	t.Cleanup(Shutdown)

	ctx := context.Background()
	sessions, err := ListSessions(ctx, srv.Socket)
	if err != nil {
		t.Skipf("skipping: control-mode listing unavailable: %v", err)
	}
	names := map[string]bool{}
	for _, s := range sessions {
		names[s.Name] = true
	}
	if !names["alpha"] || !names["beta"] {
		t.Fatalf("expected alpha and beta sessions, got %#v", sessions)
	}

	windows, err := ListWindows(ctx, srv.Socket)
	if err != nil {
		t.Fatalf("ListWindows: %v", err)
	}
	found := false
	for _, w := range windows {
		if w.Session == "beta" && w.Name == "logs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected beta logs window, got %#v", windows)
	}
	srv.AssertNoServerCrash(t)
}
