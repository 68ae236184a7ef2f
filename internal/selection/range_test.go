package selection

import "testing"

var lines = []string{
	"'Cause I, I, I'm in the stars tonight",
	"So watch me bring the fire and set the night alight",
}

func TestRangeForwardDrag(t *testing.T) {
	r := Begin(Position{Line: 1, Col: 3})
	r.Extend(Position{Line: 1, Col: 25})
	if got := r.Text(lines); got != "watch me bring the fire" {
		t.Fatalf("expected %q, got %q", "watch me bring the fire", got)
	}
}

func TestRangeBackwardDrag(t *testing.T) {
	r := Begin(Position{Line: 1, Col: 25})
	r.Extend(Position{Line: 1, Col: 3})
	if got := r.Text(lines); got != "watch me bring the fire" {
		t.Fatalf("expected %q, got %q", "watch me bring the fire", got)
	}
}

func TestRangeAcrossLines(t *testing.T) {
	r := Begin(Position{Line: 0, Col: 30})
	r.Extend(Position{Line: 1, Col: 7})
	want := "tonight\nSo watch"
	if got := r.Text(lines); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRangePastLineEnd(t *testing.T) {
	r := Begin(Position{Line: 0, Col: 30})
	r.Extend(Position{Line: 0, Col: 80})
	if got := r.Text(lines); got != "tonight" {
		t.Fatalf("expected clamp to line end, got %q", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Begin(Position{Line: 1, Col: 3})
	r.Extend(Position{Line: 1, Col: 7})
	if !r.Contains(Position{Line: 1, Col: 7}) {
		t.Fatalf("expected head cell to be included")
	}
	if r.Contains(Position{Line: 1, Col: 8}) || r.Contains(Position{Line: 0, Col: 5}) {
		t.Fatalf("expected positions outside the range to be excluded")
	}
	r.Clear()
	if !r.Empty() || r.Contains(Position{Line: 1, Col: 4}) {
		t.Fatalf("expected cleared range to be empty")
	}
}

func TestRangeExtendInactive(t *testing.T) {
	var r Range
	if r.Extend(Position{Line: 1}) {
		t.Fatalf("expected extend on inactive range to be ignored")
	}
	if r.Text(lines) != "" {
		t.Fatalf("expected empty text for inactive range")
	}
}
