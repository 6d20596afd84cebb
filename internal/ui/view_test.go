package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-multiselect/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func viewLines(h *Harness) []string {
	return strings.Split(ansi.Strip(h.View()), "\n")
}

func TestViewShowsWindowOnly(t *testing.T) {
	h := newTestHarness(Config{})
	view := ansi.Strip(h.View())
	for _, label := range []string{"Red", "Green", "Yellow", "Blue", "Magenta"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %s in initial window:\n%s", label, view)
		}
	}
	if strings.Contains(view, "Cyan") || strings.Contains(view, "White") {
		t.Fatalf("expected Cyan and White outside initial window:\n%s", view)
	}
	if !strings.Contains(view, "1-5 of 7") {
		t.Fatalf("expected scroll hint, got:\n%s", view)
	}

	for i := 0; i < 6; i++ {
		h.Press(tea.KeyDown)
	}
	view = ansi.Strip(h.View())
	if strings.Contains(view, "Red") || strings.Contains(view, "Green") {
		t.Fatalf("expected Red and Green scrolled away:\n%s", view)
	}
	if !strings.Contains(view, "> White") {
		t.Fatalf("expected pointer on White:\n%s", view)
	}
	if !strings.Contains(view, "3-7 of 7") {
		t.Fatalf("expected scroll hint 3-7, got:\n%s", view)
	}
}

func TestViewMarksSelectedRows(t *testing.T) {
	h := newTestHarness(Config{DefaultSelected: []string{"green"}})
	lines := viewLines(h)
	if lines[0] != "> Red" {
		t.Fatalf("expected focused first row, got %q", lines[0])
	}
	if lines[1] != "  Green √" {
		t.Fatalf("expected tick on selected row, got %q", lines[1])
	}
}

func TestViewTitleFooterAndPrompt(t *testing.T) {
	h := newTestHarness(Config{Title: "Pick colours", ShowFooter: true})
	lines := viewLines(h)
	if lines[0] != "Pick colours" {
		t.Fatalf("expected title first, got %q", lines[0])
	}
	view := strings.Join(lines, "\n")
	if !strings.Contains(view, "space toggle") {
		t.Fatalf("expected footer hints:\n%s", view)
	}
	if !strings.Contains(lines[len(lines)-1], "type to filter") {
		t.Fatalf("expected placeholder prompt, got %q", lines[len(lines)-1])
	}
	h.Type("mag")
	lines = viewLines(h)
	if !strings.Contains(lines[len(lines)-1], "mag") {
		t.Fatalf("expected query in prompt, got %q", lines[len(lines)-1])
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	h := newTestHarness(Config{Width: 4})
	for _, line := range viewLines(h) {
		if w := ansi.StringWidth(line); w > 4 {
			t.Fatalf("expected lines truncated to 4 columns, %q is %d wide", line, w)
		}
	}
}

func TestViewLimitsHeight(t *testing.T) {
	h := newTestHarness(Config{Height: 4, Title: "title"})
	lines := viewLines(h)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[1] != "…" {
		t.Fatalf("expected ellipsis marker, got %q", lines[1])
	}
}

func TestRenderLabelHighlight(t *testing.T) {
	m := NewModel(Config{Options: colorOptions(), Highlight: "gen", Symbols: asciiSymbols})
	got := ansi.Strip(m.renderLabel("Magenta", m.styles.Option))
	if got != "Magenta" {
		t.Fatalf("expected highlight to keep label text, got %q", got)
	}
	if _, _, ok := m.highlightSpan("Magenta"); !ok {
		t.Fatalf("expected highlight span for configured text")
	}

	m = NewModel(Config{Options: colorOptions(), Symbols: asciiSymbols})
	if _, _, ok := m.highlightSpan("Magenta"); ok {
		t.Fatalf("expected no highlight without text or query")
	}
	m.query.Set("ent", 3)
	if start, end, ok := m.highlightSpan("Magenta"); !ok || start != 3 || end != 6 {
		t.Fatalf("expected query highlight at 3..6, got %d..%d (%v)", start, end, ok)
	}
}

func TestPlainConfigDropsStyling(t *testing.T) {
	m := NewModel(Config{Options: colorOptions(), Plain: true, Symbols: asciiSymbols})
	if m.styles == theme.Default() {
		t.Fatalf("expected plain styles, got the default set")
	}
	if got := m.styles.FocusedLabel.Render("Red"); got != "Red" {
		t.Fatalf("expected unstyled label, got %q", got)
	}
	if m = NewModel(Config{Options: colorOptions(), Symbols: asciiSymbols}); m.styles != theme.Default() {
		t.Fatalf("expected default styles without plain")
	}
}
