package selection

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
)

func TestNormalizeRejectsShortSelections(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "  abc \n"} {
		if _, _, err := Normalize(raw); !errors.Is(err, lookup.ErrValidationSkip) {
			t.Fatalf("expected %q to be skipped, got %v", raw, err)
		}
	}
}

func TestNormalizeAcceptsFourCharacters(t *testing.T) {
	got, truncated, err := Normalize(" fire ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fire" || truncated {
		t.Fatalf("expected untruncated %q, got %q (truncated=%v)", "fire", got, truncated)
	}
}

func TestNormalizeTruncatesLongSelections(t *testing.T) {
	raw := strings.Repeat("abcde", 11)
	if len(raw) != 55 {
		t.Fatalf("fixture should be 55 characters, got %d", len(raw))
	}
	got, truncated, err := Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := raw[:50] + "..."
	if got != want || !truncated {
		t.Fatalf("expected %q, got %q (truncated=%v)", want, got, truncated)
	}
}

func TestNormalizeKeepsFiftyCharacters(t *testing.T) {
	raw := strings.Repeat("x", 50)
	got, truncated, err := Normalize(raw)
	if err != nil || truncated || got != raw {
		t.Fatalf("expected 50 characters untouched, got %q truncated=%v err=%v", got, truncated, err)
	}
}

func TestNormalizeCountsRunes(t *testing.T) {
	raw := strings.Repeat("é", 52)
	got, truncated, err := Normalize(raw)
	if err != nil || !truncated {
		t.Fatalf("expected truncation, got truncated=%v err=%v", truncated, err)
	}
	if got != strings.Repeat("é", 50)+Ellipsis {
		t.Fatalf("expected rune-based cut, got %q", got)
	}
}

func TestCapture(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ev, err := Capture("  watch me bring the fire\n", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Text != "watch me bring the fire" || ev.Full != ev.Text {
		t.Fatalf("unexpected event text %q / %q", ev.Text, ev.Full)
	}
	if !ev.CapturedAt.Equal(now) {
		t.Fatalf("expected capture time %v, got %v", now, ev.CapturedAt)
	}
	other, _ := Capture("watch me bring the fire", now)
	if other.ID == ev.ID {
		t.Fatalf("expected distinct event ids")
	}
	if _, err := Capture("hey", now); err == nil {
		t.Fatalf("expected short capture to fail")
	}
}
