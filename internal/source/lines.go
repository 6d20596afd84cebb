package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
)

// Lines reads one option per line. A line is either value<TAB>label or a
// bare value used as its own label. Blank lines are skipped.
type Lines struct {
	Path  string
	Stdin io.Reader
}

func (l *Lines) Kind() string { return KindLines }

func (l *Lines) fromStdin() bool {
	return l.Path == "" || l.Path == "-"
}

func (l *Lines) Load(ctx context.Context) ([]multiselect.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.fromStdin() {
		if l.Stdin == nil {
			return nil, fmt.Errorf("read options: no input")
		}
		return ParseLines(l.Stdin)
	}
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()
	return ParseLines(f)
}

// ParseLines parses the line format from r.
func ParseLines(r io.Reader) ([]multiselect.Option, error) {
	var options []multiselect.Option
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, label, ok := strings.Cut(line, "\t")
		if !ok || label == "" {
			label = value
		}
		options = append(options, multiselect.Option{Value: value, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	return options, nil
}
