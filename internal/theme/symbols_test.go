package theme

import "testing"

func TestUnicodeSupportedOutsideWindows(t *testing.T) {
	if !UnicodeSupported(map[string]string{"TERM": "xterm"}, "linux") {
		t.Fatalf("expected unicode for xterm on linux")
	}
	if UnicodeSupported(map[string]string{"TERM": "linux"}, "linux") {
		t.Fatalf("expected ascii for the linux console")
	}
	if !UnicodeSupported(map[string]string{}, "darwin") {
		t.Fatalf("expected unicode when TERM unset on darwin")
	}
}

func TestUnicodeSupportedOnWindows(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want bool
	}{
		{map[string]string{}, false},
		{map[string]string{"CI": "true"}, true},
		{map[string]string{"WT_SESSION": "abc"}, true},
		{map[string]string{"ConEmuTask": "{cmd::Cmder}"}, true},
		{map[string]string{"ConEmuTask": "other"}, false},
		{map[string]string{"TERM_PROGRAM": "vscode"}, true},
		{map[string]string{"TERM": "alacritty"}, true},
		{map[string]string{"TERM": "xterm"}, false},
		{map[string]string{"TERMINAL_EMULATOR": "JetBrains-JediTerm"}, true},
	}
	for _, tc := range cases {
		if got := UnicodeSupported(tc.env, "windows"); got != tc.want {
			t.Fatalf("env %v: expected %v, got %v", tc.env, tc.want, got)
		}
	}
}

func TestSymbolsFor(t *testing.T) {
	if got := SymbolsFor(map[string]string{"TERM": "linux"}, "linux"); got.Pointer != ">" || got.Tick != "√" {
		t.Fatalf("expected ascii symbols, got %#v", got)
	}
	if got := SymbolsFor(map[string]string{"TERM": "xterm-256color"}, "linux"); got.Pointer != "❯" || got.Tick != "✔" {
		t.Fatalf("expected unicode symbols, got %#v", got)
	}
}
