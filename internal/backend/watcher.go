package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
)

// minFetchGap bounds how often a source is re-read regardless of interval.
const minFetchGap = 250 * time.Millisecond

// Fetcher re-reads an option source.
type Fetcher func(context.Context) ([]multiselect.Option, error)

// Event conveys a re-fetched option list or the error from a poll.
type Event struct {
	Options []multiselect.Option
	Err     error
}

// Watcher polls a source at a fixed interval and publishes events.
type Watcher struct {
	fetch    Fetcher
	interval time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling fetch every interval until ctx is cancelled or
// Stop is called. The first poll happens immediately.
func NewWatcher(ctx context.Context, fetch Fetcher, interval time.Duration) *Watcher {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		throttle: newThrottle(minFetchGap),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once the poller
// exits.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func() bool {
		w.throttle.wait()
		if w.ctx.Err() != nil {
			return false
		}
		options, err := w.fetch(w.ctx)
		evt := Event{Options: options, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	interval := w.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
