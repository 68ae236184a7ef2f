package lookup

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared by the catalog, dictionary and video providers.
var (
	ErrNotFound       = errors.New("not found")
	ErrTransport      = errors.New("lookup unavailable")
	ErrValidationSkip = errors.New("input skipped")
	ErrEmptyQuery     = fmt.Errorf("%w: empty query", ErrValidationSkip)
)

// Class buckets lookup failures by how the UI and API surface them.
type Class int

const (
	ClassNone Class = iota
	ClassNotFound
	ClassTransport
	ClassValidationSkip
	ClassCanceled
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassNotFound:
		return "not-found"
	case ClassTransport:
		return "transport"
	case ClassValidationSkip:
		return "validation-skip"
	case ClassCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Classify maps an error onto its Class. Unknown errors are treated as
// transport failures so they remain retryable.
func Classify(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, context.Canceled):
		return ClassCanceled
	case errors.Is(err, ErrNotFound):
		return ClassNotFound
	case errors.Is(err, ErrValidationSkip):
		return ClassValidationSkip
	default:
		return ClassTransport
	}
}

// Retryable reports whether re-issuing the same request may succeed.
func Retryable(err error) bool {
	return Classify(err) == ClassTransport
}
