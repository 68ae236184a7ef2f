// Package table lays out rows of text in aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gap = "  "

// Column controls how one column is laid out. Max caps the column width in
// cells; longer cells are cut with an ellipsis. Zero means no cap.
type Column struct {
	Align Alignment
	Max   int
}

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells. Trailing padding on the last
// column is dropped.
func Format(rows [][]string, cols []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for i, row := range rows {
		cells[i] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = fit(row[c], column(cols, c).Max)
			}
			cells[i][c] = cell
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - lipgloss.Width(cell)
			if column(cols, c).Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < colCount-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = b.String()
	}
	return out
}

func column(cols []Column, c int) Column {
	if c < len(cols) {
		return cols[c]
	}
	return Column{}
}

func fit(cell string, max int) string {
	if max <= 0 || lipgloss.Width(cell) <= max {
		return cell
	}
	if max == 1 {
		return "…"
	}
	return truncate.StringWithTail(cell, uint(max), "…")
}
