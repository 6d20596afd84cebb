package tmux

import (
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListAllWindows() ([]*gotmux.Window, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// clients keeps one control-mode connection per socket so repeated polls do
// not reconnect every time.
var clients = struct {
	mu     sync.Mutex
	bySock map[string]tmuxClient
}{bySock: map[string]tmuxClient{}}

func clientFor(socketPath string) (tmuxClient, error) {
	clients.mu.Lock()
	defer clients.mu.Unlock()
	if c, ok := clients.bySock[socketPath]; ok {
		return c, nil
	}
	c, err := newTmux(socketPath)
	if err != nil {
		return nil, err
	}
	clients.bySock[socketPath] = c
	return c, nil
}

// dropClient closes and forgets the connection for socketPath, so the next
// call reconnects. Used after a failed query.
func dropClient(socketPath string) {
	clients.mu.Lock()
	c, ok := clients.bySock[socketPath]
	delete(clients.bySock, socketPath)
	clients.mu.Unlock()
	if ok && c != nil {
		_ = c.Close()
	}
}

// Shutdown closes every cached connection.
func Shutdown() {
	clients.mu.Lock()
	cached := clients.bySock
	clients.bySock = map[string]tmuxClient{}
	clients.mu.Unlock()
	for _, c := range cached {
		if c != nil {
			_ = c.Close()
		}
	}
}
