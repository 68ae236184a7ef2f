package state

import (
	"testing"

	"github.com/lyriclang/lyriclang/internal/selection"
)

func rowText(r Row) string {
	out := ""
	for _, c := range r.Cells {
		out += c.Text
	}
	return out
}

func TestLayoutWrapsAtSegmentBoundaries(t *testing.T) {
	l := NewLayout([]string{"Shining through the city"}, 12)
	want := []string{"Shining ", "through the ", "city"}
	if len(l.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(l.Rows))
	}
	for i, w := range want {
		if got := rowText(l.Rows[i]); got != w {
			t.Fatalf("row %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestLayoutHardSplitsLongSegments(t *testing.T) {
	l := NewLayout([]string{"abcdefghij"}, 4)
	if len(l.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(l.Rows))
	}
	if got := rowText(l.Rows[2]); got != "ij" {
		t.Fatalf("expected tail row ij, got %q", got)
	}
	if l.Rows[2].Cells[0].Col != 8 {
		t.Fatalf("expected tail col 8, got %d", l.Rows[2].Cells[0].Col)
	}
}

func TestLayoutBlankLineKeepsRow(t *testing.T) {
	l := NewLayout([]string{"one", "", "two"}, 0)
	if len(l.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(l.Rows))
	}
	if len(l.Rows[1].Cells) != 0 || l.Rows[1].Line != 1 {
		t.Fatalf("expected empty row for line 1, got %+v", l.Rows[1])
	}
}

func TestLayoutWordAt(t *testing.T) {
	l := NewLayout([]string{"Bring the fire, baby"}, 0)
	ref, ok := l.WordAt(0, 11)
	if !ok {
		t.Fatalf("expected word under column 11")
	}
	seg, _ := l.Segment(ref)
	if seg.Text != "fire" {
		t.Fatalf("expected fire, got %q", seg.Text)
	}
	if _, ok := l.WordAt(0, 14); ok {
		t.Fatalf("expected comma not to be clickable")
	}
	if _, ok := l.WordAt(0, 5); ok {
		t.Fatalf("expected whitespace not to be clickable")
	}
}

func TestLayoutPositionAtSnapsToRowEnd(t *testing.T) {
	l := NewLayout([]string{"light it up"}, 0)
	pos, ok := l.PositionAt(0, 40)
	if !ok {
		t.Fatalf("expected position")
	}
	if pos != (selection.Position{Line: 0, Col: 10}) {
		t.Fatalf("expected last column, got %+v", pos)
	}
	pos, _ = l.PositionAt(0, 6)
	if pos.Col != 6 {
		t.Fatalf("expected col 6, got %d", pos.Col)
	}
}

func TestLayoutWordSpan(t *testing.T) {
	l := NewLayout([]string{"Light it up like dynamite"}, 0)
	ref, _ := l.WordAt(0, 20)
	start, end, ok := l.WordSpan(ref)
	if !ok || start.Col != 17 || end.Col != 24 {
		t.Fatalf("expected span 17..24, got %+v..%+v", start, end)
	}
}

func TestLayoutCursorMovement(t *testing.T) {
	l := NewLayout([]string{"Cos ah ah", "I'm in the stars tonight"}, 0)
	ref, ok := l.Cursor()
	if !ok || ref != (WordRef{Line: 0, Seg: 0}) {
		t.Fatalf("expected cursor on first word, got %+v", ref)
	}
	if !l.MoveCursor(3) {
		t.Fatalf("expected cursor to move")
	}
	ref, _ = l.Cursor()
	seg, _ := l.Segment(ref)
	if seg.Text != "I'm" {
		t.Fatalf("expected I'm, got %q", seg.Text)
	}
	if !l.MoveCursorRows(-1) {
		t.Fatalf("expected cursor to move up")
	}
	ref, _ = l.Cursor()
	if ref.Line != 0 {
		t.Fatalf("expected first line, got %+v", ref)
	}
	if l.MoveCursorRows(-1) {
		t.Fatalf("expected no row above the first")
	}
}

func TestLayoutReflowKeepsCursor(t *testing.T) {
	l := NewLayout([]string{"So I'mma light it up like dynamite"}, 0)
	l.MoveCursor(4)
	before, _ := l.Cursor()
	l.Reflow(10)
	after, _ := l.Cursor()
	if before != after {
		t.Fatalf("expected cursor kept across reflow, got %+v vs %+v", before, after)
	}
	if len(l.Rows) < 3 {
		t.Fatalf("expected wrapped rows, got %d", len(l.Rows))
	}
}

func TestLayoutScrollAndEnsureVisible(t *testing.T) {
	l := NewLayout([]string{"a", "b", "c", "d", "e"}, 0)
	if l.Scroll(-1, 2) {
		t.Fatalf("expected no scroll above top")
	}
	if !l.Scroll(10, 2) || l.Offset != 3 {
		t.Fatalf("expected offset clamped to 3, got %d", l.Offset)
	}
	l.SetCursor(WordRef{Line: 0, Seg: 0})
	l.EnsureCursorVisible(2)
	if l.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", l.Offset)
	}
}

func TestLayoutWideRunesHitByScreenColumn(t *testing.T) {
	l := NewLayout([]string{"사랑 love"}, 100)
	ref, ok := l.WordAt(0, 8)
	if !ok {
		t.Fatalf("expected column 8 to hit love")
	}
	if seg, _ := l.Segment(ref); seg.Text != "love" {
		t.Fatalf("expected love, got %q", seg.Text)
	}
	for _, x := range []int{0, 1, 2, 3} {
		if _, ok := l.WordAt(0, x); ok {
			t.Fatalf("column %d is inside 사랑 and should not hit a word", x)
		}
	}
	if pos, _ := l.PositionAt(0, 3); pos.Col != 1 {
		t.Fatalf("expected column 3 to map to rune 1, got %d", pos.Col)
	}
	if pos, _ := l.PositionAt(0, 8); pos.Col != 6 {
		t.Fatalf("expected column 8 to map to rune 6, got %d", pos.Col)
	}
}

func TestLayoutWrapsWideRunesOnDisplayWidth(t *testing.T) {
	l := NewLayout([]string{"사랑사랑사랑사랑사랑"}, 10)
	if len(l.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(l.Rows))
	}
	for i, r := range l.Rows {
		w := 0
		for _, c := range r.Cells {
			w += c.Width()
		}
		if w > 10 {
			t.Fatalf("row %d is %d columns wide, layout width is 10", i, w)
		}
	}
	if l.Rows[1].Cells[0].Col != 5 {
		t.Fatalf("expected second row to start at rune 5, got %d", l.Rows[1].Cells[0].Col)
	}

	narrow := NewLayout([]string{"사랑"}, 1)
	if len(narrow.Rows) != 2 {
		t.Fatalf("expected one wide rune per row, got %d rows", len(narrow.Rows))
	}
}
