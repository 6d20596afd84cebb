package testutil

import "testing"

func TestStartTmuxServerLifecycle(t *testing.T) {
	srv := StartTmuxServer(t, "lifecycle")
	srv.NewSession(t, "second")
	out, err := srv.Command("list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		t.Skipf("skipping: list-sessions failed: %v", err)
	}
	if string(out) != "lifecycle\nsecond\n" {
		t.Fatalf("unexpected sessions %q", string(out))
	}
	srv.AssertNoServerCrash(t)
}
