package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/atomicstack/tmux-popup-multiselect/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func stubProgram(t *testing.T, drive func(h *ui.Harness)) {
	t.Helper()
	prev := runProgram
	runProgram = func(_ context.Context, model *ui.Model) error {
		drive(ui.NewHarness(model))
		return nil
	}
	t.Cleanup(func() { runProgram = prev })
}

func TestRunReturnsSubmittedSelection(t *testing.T) {
	stubProgram(t, func(h *ui.Harness) {
		h.Press(tea.KeyDown)
		h.Press(tea.KeySpace)
		h.Press(tea.KeyEnter)
	})
	res, err := Run(context.Background(), Config{
		Source:   "lines",
		Inline:   []string{"red\tRed", "green\tGreen", "blue\tBlue"},
		Visible:  5,
		Selected: []string{"blue"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Submitted {
		t.Fatalf("expected submitted result")
	}
	want := []string{"blue", "green"}
	if len(res.Selected) != 2 || res.Selected[0] != want[0] || res.Selected[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, res.Selected)
	}
	if len(res.Options) != 3 {
		t.Fatalf("expected options in result, got %d", len(res.Options))
	}
}

func TestRunAbortLeavesNothingSubmitted(t *testing.T) {
	stubProgram(t, func(h *ui.Harness) {
		h.Press(tea.KeySpace)
		h.Press(tea.KeyCtrlC)
	})
	res, err := Run(context.Background(), Config{Inline: []string{"a", "b"}, Visible: 5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Submitted || len(res.Selected) != 0 {
		t.Fatalf("expected aborted run, got %#v", res)
	}
}

func TestRunUsesTOMLPreselection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.toml")
	body := "selected = [\"b\"]\n\n[[options]]\nvalue = \"a\"\n\n[[options]]\nvalue = \"b\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stubProgram(t, func(h *ui.Harness) { h.Press(tea.KeyEnter) })
	res, err := Run(context.Background(), Config{Source: "toml", File: path, Visible: 5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Selected) != 1 || res.Selected[0] != "b" {
		t.Fatalf("expected file preselection, got %v", res.Selected)
	}
}

func TestRunPropagatesLoadErrors(t *testing.T) {
	stubProgram(t, func(*ui.Harness) { t.Fatalf("program should not start") })
	_, err := Run(context.Background(), Config{Source: "lines", File: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatalf("expected load error")
	}
	_, err = Run(context.Background(), Config{Source: "nope"})
	if err == nil {
		t.Fatalf("expected unknown source error")
	}
}

func TestRunPropagatesProgramErrors(t *testing.T) {
	prev := runProgram
	runProgram = func(context.Context, *ui.Model) error { return errors.New("no tty") }
	t.Cleanup(func() { runProgram = prev })
	if _, err := Run(context.Background(), Config{Inline: []string{"a"}, Visible: 1}); err == nil {
		t.Fatalf("expected program error")
	}
}

func TestFormat(t *testing.T) {
	res := Result{
		Submitted: true,
		Selected:  []string{"magenta", "red", "ghost"},
		Options: []multiselect.Option{
			{Value: "red", Label: "Red"},
			{Value: "magenta", Label: "Magenta"},
		},
	}
	if got := Format(res, OutputValues, ""); got != "magenta\nred\nghost\n" {
		t.Fatalf("unexpected values output %q", got)
	}
	if got := Format(res, OutputValues, ","); got != "magenta,red,ghost" {
		t.Fatalf("unexpected separated output %q", got)
	}
	want := "magenta  Magenta\nred      Red\nghost    ghost\n"
	if got := Format(res, OutputTable, ""); got != want {
		t.Fatalf("unexpected table output %q", got)
	}
	if got := Format(Result{}, OutputTable, ""); got != "" {
		t.Fatalf("expected empty output for empty selection, got %q", got)
	}
}
