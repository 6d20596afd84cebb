package backend

import (
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %v", elapsed)
	}
}

func TestThrottleDisabled(t *testing.T) {
	var nilThrottle *throttle
	nilThrottle.wait()
	th := newThrottle(0)
	start := time.Now()
	for i := 0; i < 5; i++ {
		th.wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("expected disabled throttle to return immediately, took %v", elapsed)
	}
}
