package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ResolveSocketPath picks the tmux server socket: an explicit value first,
// then the socket of the enclosing tmux session, then tmux's default
// location under TMUX_TMPDIR.
func ResolveSocketPath(flagValue string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		if socket, _, _ := strings.Cut(tmuxEnv, ","); socket != "" {
			return socket, nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve tmux socket: %w", err)
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
