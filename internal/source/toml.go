package source

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
	"github.com/pelletier/go-toml/v2"
)

// File is the TOML option file layout:
//
//	selected = ["green"]
//
//	[[options]]
//	value = "green"
//	label = "Green"
type File struct {
	Selected []string             `toml:"selected"`
	Options  []multiselect.Option `toml:"options"`
}

// TOML reads options from a TOML file.
type TOML struct {
	Path string

	mu       sync.Mutex
	selected []string
}

func (t *TOML) Kind() string { return KindTOML }

func (t *TOML) Load(ctx context.Context) ([]multiselect.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := ReadFile(t.Path)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.selected = file.Selected
	t.mu.Unlock()
	return file.Options, nil
}

// Preselected returns the selection listed by the last loaded file.
func (t *TOML) Preselected() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.selected == nil {
		return nil
	}
	out := make([]string, len(t.selected))
	copy(out, t.selected)
	return out
}

// ReadFile decodes a TOML option file. Options with an empty label take
// their value as label.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read options file: %w", err)
	}
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parse options file %s: %w", path, err)
	}
	for i := range file.Options {
		if file.Options[i].Label == "" {
			file.Options[i].Label = file.Options[i].Value
		}
	}
	return file, nil
}
