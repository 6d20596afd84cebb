package backend

import (
	"sync"
	"time"
)

// throttle enforces a minimum gap between successive source reads.
type throttle struct {
	gap time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: max(gap, 0)}
}

// wait blocks until the next read slot opens and claims it.
func (t *throttle) wait() {
	if t == nil || t.gap == 0 {
		return
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.gap)
	t.mu.Unlock()

	if d := time.Until(slot); d > 0 {
		time.Sleep(d)
	}
}
