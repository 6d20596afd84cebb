// Package source loads picker options from files, stdin or a tmux server.
package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-popup-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
)

// Kinds accepted by New.
const (
	KindLines        = "lines"
	KindTOML         = "toml"
	KindTmuxSessions = "tmux-sessions"
	KindTmuxWindows  = "tmux-windows"
)

// Kinds lists every supported source kind.
var Kinds = []string{KindLines, KindTOML, KindTmuxSessions, KindTmuxWindows}

// Source fetches the option list. Implementations are safe to call
// repeatedly so a watcher can poll them.
type Source interface {
	Kind() string
	Load(ctx context.Context) ([]multiselect.Option, error)
}

// Preselector is implemented by sources that carry their own default
// selection alongside the options.
type Preselector interface {
	Preselected() []string
}

// Settings carries what the individual sources need.
type Settings struct {
	Path   string
	Socket string
	Stdin  io.Reader
}

// New builds the source for kind.
func New(kind string, settings Settings) (Source, error) {
	switch kind {
	case KindLines:
		stdin := settings.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Lines{Path: settings.Path, Stdin: stdin}, nil
	case KindTOML:
		if settings.Path == "" || settings.Path == "-" {
			return nil, fmt.Errorf("toml source needs a file path")
		}
		return &TOML{Path: settings.Path}, nil
	case KindTmuxSessions:
		return &TmuxSessions{Socket: settings.Socket}, nil
	case KindTmuxWindows:
		return &TmuxWindows{Socket: settings.Socket}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", kind)
	}
}

// Pollable reports whether src can be re-read, which stdin cannot.
func Pollable(src Source) bool {
	if lines, ok := src.(*Lines); ok {
		return !lines.fromStdin()
	}
	return true
}

// Load calls src.Load and traces the outcome, including duplicate values.
func Load(ctx context.Context, src Source) ([]multiselect.Option, error) {
	options, err := src.Load(ctx)
	if err != nil {
		events.Source.Failed(src.Kind(), err)
		return nil, err
	}
	events.Source.Loaded(src.Kind(), len(options))
	for _, value := range Duplicates(options) {
		events.Source.Duplicate(src.Kind(), value)
	}
	return options, nil
}

// Duplicates returns each value that appears more than once, in order of
// its second appearance.
func Duplicates(options []multiselect.Option) []string {
	seen := make(map[string]int, len(options))
	var dups []string
	for _, opt := range options {
		seen[opt.Value]++
		if seen[opt.Value] == 2 {
			dups = append(dups, opt.Value)
		}
	}
	return dups
}
