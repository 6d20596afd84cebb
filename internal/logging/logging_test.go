package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, raw string) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestTraceRespectsEnabledFlag(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	defer SetTraceEnabled(false)

	SetTraceEnabled(false)
	Trace("select.focus", map[string]interface{}{"value": "red"})
	if buf.Len() != 0 {
		t.Fatalf("expected no output when tracing disabled, got %q", buf.String())
	}

	SetTraceEnabled(true)
	Trace("select.focus", map[string]interface{}{"value": "red"})
	lines := decodeLines(t, buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected one entry, got %d", len(lines))
	}
	if lines[0]["event"] != "select.focus" || lines[0]["level"] != "trace" {
		t.Fatalf("unexpected entry %#v", lines[0])
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Error(nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to be skipped")
	}
	Error(errors.New("boom"))
	Errorf("load %s: %v", "file", "missing")
	lines := decodeLines(t, buf.String())
	if len(lines) != 2 {
		t.Fatalf("expected two entries, got %d", len(lines))
	}
	if lines[0]["message"] != "boom" || lines[1]["message"] != "load file: missing" {
		t.Fatalf("unexpected messages %#v", lines)
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "multiselect.log")
	Configure(path)
	defer Configure("")

	Error(errors.New("written"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Fatalf("expected log file to contain entry, got %q", string(data))
	}
}
