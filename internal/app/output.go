package app

import (
	"strings"

	"github.com/atomicstack/tmux-popup-multiselect/internal/format/table"
	"github.com/atomicstack/tmux-popup-multiselect/internal/multiselect"
)

// Output formats accepted by Format.
const (
	OutputValues = "values"
	OutputTable  = "table"
)

// Outputs lists the supported output formats.
var Outputs = []string{OutputValues, OutputTable}

// Format renders the submitted selection in selection order. Values are
// newline separated unless separator is set; the table form pairs each
// value with its label.
func Format(res Result, output, separator string) string {
	if len(res.Selected) == 0 {
		return ""
	}
	if output == OutputTable {
		index := multiselect.BuildIndex(res.Options)
		rows := make([][]string, 0, len(res.Selected))
		for _, value := range res.Selected {
			label := value
			if entry, ok := index.Lookup(value); ok {
				label = entry.Option.Label
			}
			rows = append(rows, []string{value, label})
		}
		return strings.Join(table.Format(rows, nil), "\n") + "\n"
	}
	if separator == "" {
		separator = "\n"
	}
	out := strings.Join(res.Selected, separator)
	if separator == "\n" {
		out += "\n"
	}
	return out
}
