package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-popup-multiselect/internal/app"
	"github.com/atomicstack/tmux-popup-multiselect/internal/config"
	"github.com/atomicstack/tmux-popup-multiselect/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Source:     "tmux-sessions",
			SocketPath: "socket-path",
			Visible:    5,
			Selected:   []string{"dev"},
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"source":  "tmux-sessions",
			"socket":  "socket-path",
			"visible": "5",
			"width":   "80",
			"footer":  "true",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["source"] != "tmux-sessions" {
		t.Fatalf("expected source flag, got %v", flagsValue["source"])
	}
	if flagsValue["visible"] != "5" {
		t.Fatalf("expected visible 5, got %v", flagsValue["visible"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if !reflect.DeepEqual(cfgValue.App, cfg.App) {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestFinishPrintsSelection(t *testing.T) {
	var stdout, stderr bytes.Buffer
	res := app.Result{Submitted: true, Selected: []string{"red", "blue"}}
	code := finish(&stdout, &stderr, app.Config{Output: app.OutputValues}, res, nil)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout.String() != "red\nblue\n" {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected empty stderr, got %q", stderr.String())
	}
}

func TestFinishAbortAndError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := finish(&stdout, &stderr, app.Config{}, app.Result{}, nil); code != exitAborted {
		t.Fatalf("expected abort exit code, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing printed on abort, got %q", stdout.String())
	}

	var logBuf bytes.Buffer
	logging.SetOutput(&logBuf)
	defer logging.SetOutput(nil)
	code := finish(&stdout, &stderr, app.Config{}, app.Result{}, errors.New("no tmux server"))
	if code != exitError {
		t.Fatalf("expected error exit code, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Error: no tmux server") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
	if !strings.Contains(logBuf.String(), "no tmux server") {
		t.Fatalf("expected error logged, got %q", logBuf.String())
	}
}
