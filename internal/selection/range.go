package selection

import "strings"

// Position addresses a rune within the lyric lines.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

// Range is a drag selection. Anchor and Head are inclusive cells, so a drag
// that ends on the last letter of a word includes that letter.
type Range struct {
	Anchor Position
	Head   Position
	Active bool
}

// Begin starts a selection at p.
func Begin(p Position) Range {
	return Range{Anchor: p, Head: p, Active: true}
}

// Extend moves the head of an active selection.
func (r *Range) Extend(p Position) bool {
	if !r.Active || r.Head == p {
		return false
	}
	r.Head = p
	return true
}

// Clear deactivates the selection.
func (r *Range) Clear() {
	*r = Range{}
}

// Empty reports whether nothing is selected.
func (r Range) Empty() bool {
	return !r.Active
}

// Bounds returns the half-open span [start, end) covered by the range.
func (r Range) Bounds() (Position, Position) {
	start, end := r.Anchor, r.Head
	if end.Before(start) {
		start, end = end, start
	}
	end.Col++
	return start, end
}

// Contains reports whether p is inside the selection.
func (r Range) Contains(p Position) bool {
	if !r.Active {
		return false
	}
	start, end := r.Bounds()
	return !p.Before(start) && p.Before(end)
}

// Text extracts the selected characters from lines. Rows are joined with
// a newline.
func (r Range) Text(lines []string) string {
	if !r.Active || len(lines) == 0 {
		return ""
	}
	start, end := r.Bounds()
	if start.Line < 0 {
		start = Position{}
	}
	if end.Line >= len(lines) {
		end = Position{Line: len(lines) - 1, Col: len([]rune(lines[len(lines)-1]))}
	}
	parts := make([]string, 0, end.Line-start.Line+1)
	for i := start.Line; i <= end.Line; i++ {
		runes := []rune(lines[i])
		from, to := 0, len(runes)
		if i == start.Line {
			from = clamp(start.Col, 0, len(runes))
		}
		if i == end.Line {
			to = clamp(end.Col, 0, len(runes))
		}
		if to < from {
			to = from
		}
		parts = append(parts, string(runes[from:to]))
	}
	return strings.Join(parts, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
