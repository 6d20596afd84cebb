// Package table aligns plain-text rows into columns.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads rows so every column is as wide as its widest cell. Rows may
// have different lengths; the final cell of a left-aligned row carries no
// trailing padding. Widths are measured in terminal cells.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], ansi.StringWidth(cell))
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if alignmentAt(alignments, c) == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = b.String()
	}
	return out
}

func alignmentAt(alignments []Alignment, col int) Alignment {
	if col < len(alignments) {
		return alignments[col]
	}
	return AlignLeft
}
