package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-multiselect/internal/backend"
	"github.com/atomicstack/tmux-popup-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/atomicstack/tmux-popup-multiselect/internal/source"
	"github.com/atomicstack/tmux-popup-multiselect/internal/theme"
	"github.com/atomicstack/tmux-popup-multiselect/internal/tmux"
	"github.com/atomicstack/tmux-popup-multiselect/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Source     string
	File       string
	SocketPath string
	Inline     []string
	Visible    int
	Selected   []string
	Disabled   bool
	Highlight  string
	Title      string
	ShowFooter bool
	Watch      bool
	Interval   time.Duration
	Output     string
	Separator  string
	Width      int
	Height     int
	Plain      bool
	Symbols    theme.Symbols
}

// Result is what the picker produced.
type Result struct {
	Submitted bool
	Selected  []string
	Options   []multiselect.Option
}

var runProgram = func(ctx context.Context, model *ui.Model) error {
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	_, err := program.Run()
	return err
}

// Run loads the options, runs the Bubble Tea program and reports the
// selection.
func Run(ctx context.Context, cfg Config) (Result, error) {
	src, err := buildSource(cfg)
	if err != nil {
		return Result{}, err
	}
	options, err := source.Load(ctx, src)
	if err != nil {
		return Result{}, fmt.Errorf("load %s options: %w", src.Kind(), err)
	}
	defaults := cfg.Selected
	if len(defaults) == 0 {
		if pre, ok := src.(source.Preselector); ok {
			defaults = pre.Preselected()
		}
	}

	var watcher *backend.Watcher
	if cfg.Watch && source.Pollable(src) {
		watcher = backend.NewWatcher(ctx, func(ctx context.Context) ([]multiselect.Option, error) {
			return source.Load(ctx, src)
		}, cfg.Interval)
		defer watcher.Stop()
	}
	defer tmux.Shutdown()

	model := ui.NewModel(ui.Config{
		Options:         options,
		VisibleCount:    cfg.Visible,
		DefaultSelected: defaults,
		Disabled:        cfg.Disabled,
		Highlight:       cfg.Highlight,
		Title:           cfg.Title,
		ShowFooter:      cfg.ShowFooter,
		Width:           cfg.Width,
		Height:          cfg.Height,
		Symbols:         cfg.Symbols,
		Plain:           cfg.Plain,
		Watcher:         watcher,
	})
	err = runProgram(ctx, model)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return Result{}, err
	}
	res := Result{
		Submitted: model.Submitted(),
		Selected:  model.Result(),
		Options:   model.Options(),
	}
	events.App.Exit(res.Submitted, len(res.Selected))
	return res, nil
}

func buildSource(cfg Config) (source.Source, error) {
	settings := source.Settings{Path: cfg.File}
	switch cfg.Source {
	case source.KindTmuxSessions, source.KindTmuxWindows:
		socket, err := tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
		settings.Socket = socket
	case source.KindLines, "":
		if len(cfg.Inline) > 0 && cfg.File == "" {
			settings.Path = "-"
			settings.Stdin = strings.NewReader(strings.Join(cfg.Inline, "\n"))
		}
	}
	kind := cfg.Source
	if kind == "" {
		kind = source.KindLines
	}
	return source.New(kind, settings)
}
