package theme

import "testing"

func TestLabelStylePrecedence(t *testing.T) {
	s := Default()
	if got := s.LabelStyle(true, true, true); got != s.DisabledLabel {
		t.Fatalf("expected disabled style to win")
	}
	if got := s.LabelStyle(true, true, false); got != s.FocusedLabel {
		t.Fatalf("expected focus to win over selection")
	}
	if got := s.LabelStyle(false, true, false); got != s.SelectedLabel {
		t.Fatalf("expected selected style")
	}
	if got := s.LabelStyle(false, false, false); got != s.Option {
		t.Fatalf("expected plain option style")
	}
}

func TestPlainRendersWithoutEscapes(t *testing.T) {
	p := Plain()
	if got := p.FocusedLabel.Render("Red"); got != "Red" {
		t.Fatalf("expected unstyled output, got %q", got)
	}
	if p.Cursor == Default().Cursor {
		t.Fatalf("plain styles must not share pointers with defaults")
	}
}
