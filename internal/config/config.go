package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-multiselect/internal/app"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/atomicstack/tmux-popup-multiselect/internal/source"
	"github.com/atomicstack/tmux-popup-multiselect/internal/theme"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigPath string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig    = "TMUX_POPUP_MULTISELECT_CONFIG"
	envSource    = "TMUX_POPUP_MULTISELECT_SOURCE"
	envFile      = "TMUX_POPUP_MULTISELECT_FILE"
	envSocket    = "TMUX_POPUP_MULTISELECT_SOCKET"
	envVisible   = "TMUX_POPUP_MULTISELECT_VISIBLE"
	envSelected  = "TMUX_POPUP_MULTISELECT_SELECTED"
	envDisabled  = "TMUX_POPUP_MULTISELECT_DISABLED"
	envHighlight = "TMUX_POPUP_MULTISELECT_HIGHLIGHT"
	envTitle     = "TMUX_POPUP_MULTISELECT_TITLE"
	envFooter    = "TMUX_POPUP_MULTISELECT_FOOTER"
	envWatch     = "TMUX_POPUP_MULTISELECT_WATCH"
	envInterval  = "TMUX_POPUP_MULTISELECT_INTERVAL"
	envOutput    = "TMUX_POPUP_MULTISELECT_OUTPUT"
	envSeparator = "TMUX_POPUP_MULTISELECT_SEPARATOR"
	envWidth     = "TMUX_POPUP_MULTISELECT_WIDTH"
	envHeight    = "TMUX_POPUP_MULTISELECT_HEIGHT"
	envTrace     = "TMUX_POPUP_MULTISELECT_TRACE"
	envLogFile   = "TMUX_POPUP_MULTISELECT_LOG_FILE"
	envPlain     = "TMUX_POPUP_MULTISELECT_PLAIN"
	envNoColor   = "NO_COLOR"
)

const (
	defaultConfigPath = "~/.config/tmux-popup-multiselect/config.toml"
	defaultInterval   = 2 * time.Second
)

// fileSettings mirrors the flags in the optional TOML config file. Unset
// keys leave the built-in defaults alone.
type fileSettings struct {
	Source    string   `toml:"source"`
	File      string   `toml:"file"`
	Socket    string   `toml:"socket"`
	Visible   *int     `toml:"visible"`
	Selected  []string `toml:"selected"`
	Disabled  *bool    `toml:"disabled"`
	Highlight string   `toml:"highlight"`
	Title     string   `toml:"title"`
	Footer    *bool    `toml:"footer"`
	Watch     *bool    `toml:"watch"`
	Interval  string   `toml:"interval"`
	Output    string   `toml:"output"`
	Separator string   `toml:"separator"`
	Width     *int     `toml:"width"`
	Height    *int     `toml:"height"`
	Trace     *bool    `toml:"trace"`
	LogFile   string   `toml:"log_file"`
	Plain     *bool    `toml:"plain"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the config file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath, explicit := configPathFrom(args, env)
	file, err := loadFile(configPath, explicit)
	if err != nil {
		return Config{}, err
	}
	d := defaultsFrom(file)

	fs := flag.NewFlagSet("tmux-popup-multiselect", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a TOML config file")
	src := fs.String("source", envOrDefault(env, envSource, d.source), "option source: "+strings.Join(source.Kinds, ", "))
	path := fs.String("file", envOrDefault(env, envFile, d.file), "options file for the lines and toml sources (- reads stdin)")
	socket := fs.String("socket", envOrDefault(env, envSocket, d.socket), "path to the tmux socket (overrides environment detection)")
	visible := fs.Int("visible", envOrInt(env, envVisible, d.visible), "number of options visible at once")
	selected := fs.String("selected", envOrDefault(env, envSelected, strings.Join(d.selected, ",")), "comma-separated values selected at start")
	disabled := fs.Bool("disabled", envOrBool(env, envDisabled, d.disabled), "show the options without accepting input")
	highlight := fs.String("highlight", envOrDefault(env, envHighlight, d.highlight), "text to highlight inside option labels")
	title := fs.String("title", envOrDefault(env, envTitle, d.title), "header line shown above the options")
	footer := fs.Bool("footer", envOrBool(env, envFooter, d.footer), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, d.watch), "re-read the source periodically and refresh the options")
	interval := fs.Duration("interval", envOrDuration(env, envInterval, d.interval), "poll interval used with -watch")
	output := fs.String("output", envOrDefault(env, envOutput, d.output), "output format: "+strings.Join(app.Outputs, ", "))
	separator := fs.String("separator", envOrDefault(env, envSeparator, d.separator), "join selected values with this string instead of newlines")
	width := fs.Int("width", envOrInt(env, envWidth, d.width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, d.height), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, d.trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, d.logFile), "path to the log file")
	plain := fs.Bool("plain", envOrBool(env, envPlain, d.plain || env[envNoColor] != ""), "render without colours (also enabled by NO_COLOR)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Source:     strings.TrimSpace(*src),
			File:       *path,
			SocketPath: *socket,
			Inline:     fs.Args(),
			Visible:    *visible,
			Selected:   splitList(*selected),
			Disabled:   *disabled,
			Highlight:  *highlight,
			Title:      *title,
			ShowFooter: *footer,
			Watch:      *watch,
			Interval:   *interval,
			Output:     strings.TrimSpace(*output),
			Separator:  *separator,
			Width:      *width,
			Height:     *height,
			Plain:      *plain,
			Symbols:    theme.SymbolsFor(env, runtime.GOOS),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ConfigPath: configPath,
		Flags: map[string]string{
			"source":    *src,
			"file":      *path,
			"socket":    *socket,
			"visible":   strconv.Itoa(*visible),
			"selected":  *selected,
			"disabled":  strconv.FormatBool(*disabled),
			"highlight": *highlight,
			"title":     *title,
			"footer":    strconv.FormatBool(*footer),
			"watch":     strconv.FormatBool(*watch),
			"interval":  interval.String(),
			"output":    *output,
			"separator": *separator,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
			"plain":     strconv.FormatBool(*plain),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

type defaults struct {
	source, file, socket           string
	visible, width, height         int
	selected                       []string
	disabled, footer, watch, trace bool
	plain                          bool
	highlight, title               string
	interval                       time.Duration
	output, separator, logFile     string
}

func defaultsFrom(file fileSettings) defaults {
	d := defaults{
		source:   source.KindLines,
		visible:  multiselect.DefaultVisibleCount,
		interval: defaultInterval,
		output:   app.OutputValues,
	}
	setString(&d.source, file.Source)
	setString(&d.file, file.File)
	setString(&d.socket, file.Socket)
	setString(&d.highlight, file.Highlight)
	setString(&d.title, file.Title)
	setString(&d.output, file.Output)
	setString(&d.separator, file.Separator)
	setString(&d.logFile, file.LogFile)
	if file.Visible != nil {
		d.visible = *file.Visible
	}
	if file.Width != nil {
		d.width = *file.Width
	}
	if file.Height != nil {
		d.height = *file.Height
	}
	if file.Disabled != nil {
		d.disabled = *file.Disabled
	}
	if file.Footer != nil {
		d.footer = *file.Footer
	}
	if file.Watch != nil {
		d.watch = *file.Watch
	}
	if file.Trace != nil {
		d.trace = *file.Trace
	}
	if file.Plain != nil {
		d.plain = *file.Plain
	}
	if parsed, err := time.ParseDuration(strings.TrimSpace(file.Interval)); err == nil {
		d.interval = parsed
	}
	d.selected = file.Selected
	return d
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// configPathFrom finds the config file path before the full flag set is
// parsed, since the file supplies the flag defaults.
func configPathFrom(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value, true
		}
		if i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	return defaultConfigPath, false
}

// loadFile reads the TOML config. A missing file is only an error when the
// path was given explicitly.
func loadFile(path string, explicit bool) (fileSettings, error) {
	resolved, err := expandPath(path)
	if err != nil {
		if explicit {
			return fileSettings{}, err
		}
		return fileSettings{}, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fileSettings{}, nil
		}
		return fileSettings{}, fmt.Errorf("read config: %w", err)
	}
	var settings fileSettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fileSettings{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return settings, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("config path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return trimmed, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the picker cannot run with.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Visible < 1 {
		return fmt.Errorf("visible must be >= 1 (got %d)", a.Visible)
	}
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if !slices.Contains(source.Kinds, a.Source) {
		return fmt.Errorf("unknown source %q (want one of %s)", a.Source, strings.Join(source.Kinds, ", "))
	}
	if !slices.Contains(app.Outputs, a.Output) {
		return fmt.Errorf("unknown output %q (want one of %s)", a.Output, strings.Join(app.Outputs, ", "))
	}
	if a.Source == source.KindTOML && (a.File == "" || a.File == "-") {
		return fmt.Errorf("the toml source needs -file")
	}
	if a.Watch {
		if a.Interval <= 0 {
			return fmt.Errorf("interval must be positive with -watch (got %s)", a.Interval)
		}
		if a.Source == source.KindLines && (a.File == "" || a.File == "-") {
			return fmt.Errorf("-watch needs a source that can be re-read, not stdin")
		}
	}
	return nil
}
