package state

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/lyriclang/lyriclang/internal/lyrics"
	"github.com/lyriclang/lyriclang/internal/selection"
)

// WordRef addresses a segment by line and segment index.
type WordRef struct {
	Line int
	Seg  int
}

// Cell is a segment, or a piece of one, placed on a screen row.
type Cell struct {
	Ref  WordRef
	Text string
	Kind lyrics.Kind
	// Col is the rune offset of Text within its lyric line.
	Col int
	// X is the screen column the cell starts at.
	X int
}

// Width is the number of screen columns the cell occupies. Wide runes take
// two.
func (c Cell) Width() int {
	return ansi.StringWidth(c.Text)
}

// runeAt returns the rune index within the cell drawn at screen column x.
// Columns past the end give the last rune.
func (c Cell) runeAt(x int) int {
	col, i := c.X, 0
	for _, r := range c.Text {
		col += runeWidth(r)
		if x < col {
			return i
		}
		i++
	}
	return max(i-1, 0)
}

func runeWidth(r rune) int {
	return ansi.StringWidth(string(r))
}

// Row is one screen row of wrapped lyrics.
type Row struct {
	Line  int
	Cells []Cell
}

// Layout wraps tokenized lyric lines to a width and tracks a word cursor and
// a scroll offset over the resulting rows.
type Layout struct {
	Lines    []string
	Segments [][]lyrics.Segment
	Rows     []Row
	Width    int
	Offset   int

	words  []WordRef
	cursor int
}

// NewLayout tokenizes lines and wraps them to width columns. A width of zero
// or less disables wrapping.
func NewLayout(lines []string, width int) *Layout {
	l := &Layout{
		Lines:    append([]string(nil), lines...),
		Segments: make([][]lyrics.Segment, len(lines)),
	}
	for i, line := range lines {
		l.Segments[i] = lyrics.Segments(line)
		for j, seg := range l.Segments[i] {
			if seg.Clickable() {
				l.words = append(l.words, WordRef{Line: i, Seg: j})
			}
		}
	}
	l.Reflow(width)
	return l
}

// Reflow rewraps to width, keeping the cursor on the same word.
func (l *Layout) Reflow(width int) {
	l.Width = width
	l.Rows = l.Rows[:0]
	for i, segs := range l.Segments {
		l.wrapLine(i, segs)
	}
	if l.Offset > len(l.Rows)-1 {
		l.Offset = clampInt(len(l.Rows)-1, 0, len(l.Rows))
	}
}

func (l *Layout) wrapLine(line int, segs []lyrics.Segment) {
	row := Row{Line: line}
	x, col := 0, 0
	emitted := false
	flush := func() {
		l.Rows = append(l.Rows, row)
		row = Row{Line: line}
		x = 0
		emitted = true
	}
	for j, seg := range segs {
		ref := WordRef{Line: line, Seg: j}
		runes := []rune(seg.Text)
		n := len(runes)
		if l.Width > 0 && x > 0 && x+ansi.StringWidth(seg.Text) > l.Width {
			if seg.Kind == lyrics.Whitespace {
				// whitespace at a wrap point is swallowed
				col += n
				flush()
				continue
			}
			flush()
		}
		start := 0
		for start < n {
			end, w := start, 0
			for end < n {
				rw := runeWidth(runes[end])
				// a rune wider than the whole row still goes on an empty row
				if l.Width > 0 && x+w+rw > l.Width && (end > start || x > 0) {
					break
				}
				w += rw
				end++
			}
			if end == start {
				flush()
				continue
			}
			row.Cells = append(row.Cells, Cell{
				Ref:  ref,
				Text: string(runes[start:end]),
				Kind: seg.Kind,
				Col:  col + start,
				X:    x,
			})
			x += w
			start = end
			if start < n {
				flush()
			}
		}
		col += n
	}
	if len(row.Cells) > 0 || !emitted {
		l.Rows = append(l.Rows, row)
	}
}

// Segment returns the segment ref points at.
func (l *Layout) Segment(ref WordRef) (lyrics.Segment, bool) {
	if ref.Line < 0 || ref.Line >= len(l.Segments) {
		return lyrics.Segment{}, false
	}
	segs := l.Segments[ref.Line]
	if ref.Seg < 0 || ref.Seg >= len(segs) {
		return lyrics.Segment{}, false
	}
	return segs[ref.Seg], true
}

// PositionAt maps a row index and column to a character position. Columns
// past the end of a row snap to its last character.
func (l *Layout) PositionAt(row, x int) (selection.Position, bool) {
	if row < 0 || row >= len(l.Rows) {
		return selection.Position{}, false
	}
	r := l.Rows[row]
	if len(r.Cells) == 0 {
		return selection.Position{Line: r.Line}, true
	}
	if x < 0 {
		x = 0
	}
	for _, c := range r.Cells {
		if x < c.X+c.Width() {
			return selection.Position{Line: r.Line, Col: c.Col + c.runeAt(x)}, true
		}
	}
	last := r.Cells[len(r.Cells)-1]
	return selection.Position{Line: r.Line, Col: last.Col + utf8.RuneCountInString(last.Text) - 1}, true
}

// WordAt returns the clickable word drawn at row and column x.
func (l *Layout) WordAt(row, x int) (WordRef, bool) {
	if row < 0 || row >= len(l.Rows) {
		return WordRef{}, false
	}
	for _, c := range l.Rows[row].Cells {
		if x >= c.X && x < c.X+c.Width() {
			if c.Kind != lyrics.Word {
				return WordRef{}, false
			}
			return c.Ref, true
		}
	}
	return WordRef{}, false
}

// WordSpan returns the first and last character positions of ref.
func (l *Layout) WordSpan(ref WordRef) (selection.Position, selection.Position, bool) {
	if _, ok := l.Segment(ref); !ok {
		return selection.Position{}, selection.Position{}, false
	}
	col := 0
	for j, seg := range l.Segments[ref.Line] {
		n := utf8.RuneCountInString(seg.Text)
		if j == ref.Seg {
			return selection.Position{Line: ref.Line, Col: col}, selection.Position{Line: ref.Line, Col: col + n - 1}, true
		}
		col += n
	}
	return selection.Position{}, selection.Position{}, false
}

// RowOf returns the first row that draws ref.
func (l *Layout) RowOf(ref WordRef) int {
	for i, r := range l.Rows {
		for _, c := range r.Cells {
			if c.Ref == ref {
				return i
			}
		}
	}
	return -1
}

func (l *Layout) cellOf(ref WordRef) (int, Cell) {
	for i, r := range l.Rows {
		for _, c := range r.Cells {
			if c.Ref == ref {
				return i, c
			}
		}
	}
	return -1, Cell{}
}

// Words lists every clickable word in reading order.
func (l *Layout) Words() []WordRef {
	return append([]WordRef(nil), l.words...)
}

// Cursor returns the word under the keyboard cursor.
func (l *Layout) Cursor() (WordRef, bool) {
	if len(l.words) == 0 {
		return WordRef{}, false
	}
	return l.words[l.cursor], true
}

// SetCursor places the cursor on ref when it is a word.
func (l *Layout) SetCursor(ref WordRef) bool {
	for i, w := range l.words {
		if w == ref {
			l.cursor = i
			return true
		}
	}
	return false
}

// MoveCursor steps the cursor through words in reading order.
func (l *Layout) MoveCursor(delta int) bool {
	if len(l.words) == 0 {
		return false
	}
	old := l.cursor
	l.cursor = clampInt(l.cursor+delta, 0, len(l.words)-1)
	return old != l.cursor
}

// MoveCursorRows moves the cursor to the word nearest the same column on the
// next row, in direction delta, that has any word.
func (l *Layout) MoveCursorRows(delta int) bool {
	ref, ok := l.Cursor()
	if !ok || delta == 0 {
		return false
	}
	row, cell := l.cellOf(ref)
	step := 1
	if delta < 0 {
		step = -1
	}
	for r := row + step; r >= 0 && r < len(l.Rows); r += step {
		best, bestDist := WordRef{}, -1
		for _, c := range l.Rows[r].Cells {
			if c.Kind != lyrics.Word {
				continue
			}
			dist := c.X - cell.X
			if dist < 0 {
				dist = -dist
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = c.Ref, dist
			}
		}
		if bestDist >= 0 {
			return l.SetCursor(best)
		}
	}
	return false
}

// Scroll moves the viewport by delta rows within a window of visible rows.
func (l *Layout) Scroll(delta, visible int) bool {
	old := l.Offset
	maxOffset := len(l.Rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.Offset = clampInt(l.Offset+delta, 0, maxOffset)
	return old != l.Offset
}

// EnsureCursorVisible scrolls so the cursor word is inside the window.
func (l *Layout) EnsureCursorVisible(visible int) {
	ref, ok := l.Cursor()
	if !ok || visible <= 0 {
		return
	}
	row := l.RowOf(ref)
	if row < 0 {
		return
	}
	l.Offset = scrollToShow(l.Offset, row, visible, len(l.Rows))
}
