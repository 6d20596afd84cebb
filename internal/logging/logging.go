package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "tmux-popup-multiselect.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	// sink overrides the log file when set (tests).
	sink io.Writer
)

type entry struct {
	Time    time.Time   `json:"time"`
	Level   string      `json:"level"`
	Event   string      `json:"event,omitempty"`
	Message string      `json:"message,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error appends an error entry to the shared log.
func Error(err error) {
	if err == nil {
		return
	}
	write(entry{Level: "error", Message: err.Error()})
}

// Errorf formats and logs an error entry.
func Errorf(format string, args ...interface{}) {
	write(entry{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	write(entry{Level: "trace", Event: event, Payload: payload})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects all entries to w; nil restores file output.
func SetOutput(w io.Writer) {
	mu.Lock()
	sink = w
	mu.Unlock()
}

func write(e entry) {
	e.Time = time.Now().UTC()
	mu.Lock()
	defer mu.Unlock()

	if sink != nil {
		encode(sink, e)
		return
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	encode(f, e)
}

func encode(w io.Writer, e entry) {
	if err := json.NewEncoder(w).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}
