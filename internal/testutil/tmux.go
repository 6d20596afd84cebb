// Package testutil starts throwaway tmux servers for integration tests.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Server is a temporary tmux server bound to its own socket.
type Server struct {
	Socket string
	LogDir string
}

// RequireTmux skips the calling test when tmux is not present on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartTmuxServer boots a temporary tmux server with one session named
// first. The server is killed and its files removed when the test ends.
func StartTmuxServer(t *testing.T, first string) *Server {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "tmux-popup-multiselect-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	srv := &Server{Socket: filepath.Join(baseDir, "tmux-test.sock"), LogDir: baseDir}
	if err := srv.Command("-f", "/dev/null", "new-session", "-d", "-s", first, "sleep", "600").Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := killServerControl(ctx, srv.Socket); err != nil {
			t.Logf("control-mode kill failed for socket %s: %v; falling back to tmux kill-server", srv.Socket, err)
			_ = srv.Command("kill-server").Run()
		}
	})
	return srv
}

// NewSession adds a detached session running a long sleep.
func (s *Server) NewSession(t *testing.T, name string) {
	t.Helper()
	if err := s.Command("new-session", "-d", "-s", name, "sleep", "600").Run(); err != nil {
		t.Fatalf("new-session %s: %v", name, err)
	}
}

// NewWindow adds a named window to session.
func (s *Server) NewWindow(t *testing.T, session, name string) {
	t.Helper()
	if err := s.Command("new-window", "-d", "-t", session, "-n", name, "sleep", "600").Run(); err != nil {
		t.Fatalf("new-window %s in %s: %v", name, session, err)
	}
}

// AssertNoServerCrash scans the tmux server logs for an unexpected exit.
func (s *Server) AssertNoServerCrash(t *testing.T) {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(s.LogDir, "tmux-server-*.log"))
	if err != nil {
		t.Fatalf("failed to glob tmux logs: %v", err)
	}
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read tmux server log %s: %v", path, err)
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			t.Fatalf("tmux server reported unexpected exit; see %s", path)
		}
	}
}

// Command builds a tmux invocation against the server with the caller's
// TMUX variable cleared.
func (s *Server) Command(extra ...string) *exec.Cmd {
	args := append([]string{"-S", s.Socket}, extra...)
	cmd := exec.Command("tmux", args...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+filepath.Dir(s.Socket))
	return cmd
}

func killServerControl(ctx context.Context, socket string) error {
	if strings.TrimSpace(socket) == "" {
		return errors.New("empty tmux socket path")
	}
	client, err := gotmux.NewTmuxWithOptions(socket, gotmux.WithContext(ctx))
	if err != nil {
		return err
	}
	defer client.Close()
	return client.KillServer()
}
