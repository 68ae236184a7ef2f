// Package selection turns free-form text drags over lyrics into normalized
// phrase events.
package selection

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lyriclang/lyriclang/internal/lookup"
)

const (
	// MinLength is the exclusive lower bound on trimmed phrase length.
	MinLength = 3
	// MaxLength caps the phrase before Ellipsis is appended.
	MaxLength = 50
	// Ellipsis marks a phrase that was cut at MaxLength.
	Ellipsis = "..."
)

// Normalize trims raw and enforces the length rules. Selections of MinLength
// characters or fewer are rejected with lookup.ErrValidationSkip. Longer
// than MaxLength characters are cut and suffixed with Ellipsis; the cut text
// is the phrase used for lookups.
func Normalize(raw string) (phrase string, truncated bool, err error) {
	text := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(text)
	if n <= MinLength {
		return "", false, fmt.Errorf("selection of %d characters: %w", n, lookup.ErrValidationSkip)
	}
	if n > MaxLength {
		runes := []rune(text)
		return string(runes[:MaxLength]) + Ellipsis, true, nil
	}
	return text, false, nil
}

// Event is a settled phrase selection.
type Event struct {
	ID         uuid.UUID
	Text       string
	Full       string
	Truncated  bool
	CapturedAt time.Time
}

// Capture normalizes raw into an Event stamped with now.
func Capture(raw string, now time.Time) (Event, error) {
	text, truncated, err := Normalize(raw)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.New(),
		Text:       text,
		Full:       strings.TrimSpace(raw),
		Truncated:  truncated,
		CapturedAt: now,
	}, nil
}
