package theme

// Symbols holds the glyphs used for the focus pointer and selection tick.
type Symbols struct {
	Pointer string
	Tick    string
}

var (
	unicodeSymbols = Symbols{Pointer: "❯", Tick: "✔"}
	asciiSymbols   = Symbols{Pointer: ">", Tick: "√"}
)

// SymbolsFor picks glyphs for the supplied environment and GOOS.
func SymbolsFor(env map[string]string, goos string) Symbols {
	if UnicodeSupported(env, goos) {
		return unicodeSymbols
	}
	return asciiSymbols
}

// UnicodeSupported reports whether the terminal is expected to draw the
// Unicode glyphs. Outside Windows only the Linux kernel console is excluded;
// on Windows only known terminals qualify.
func UnicodeSupported(env map[string]string, goos string) bool {
	if goos != "windows" {
		return env["TERM"] != "linux"
	}
	return env["CI"] != "" ||
		env["WT_SESSION"] != "" ||
		env["TERMINUS_SUBLIME"] != "" ||
		env["ConEmuTask"] == "{cmd::Cmder}" ||
		env["TERM_PROGRAM"] == "Terminus-Sublime" ||
		env["TERM_PROGRAM"] == "vscode" ||
		env["TERM"] == "xterm-256color" ||
		env["TERM"] == "alacritty" ||
		env["TERMINAL_EMULATOR"] == "JetBrains-JediTerm"
}
