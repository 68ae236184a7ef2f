package selection

import "time"

// Token identifies one arming of a Debouncer.
type Token uint64

// Debouncer is a cancellable timer without its own clock: callers schedule
// the wake-up however they like and ask Fire whether the wake-up still
// counts. Each Reset supersedes every earlier token, so the last writer wins.
// It is owned by a single event loop and is not safe for concurrent use.
type Debouncer struct {
	delay   time.Duration
	current Token
	armed   bool
}

// NewDebouncer returns a Debouncer that reports delay to its callers.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay is how long callers should wait before calling Fire.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Reset arms the debouncer and returns the token for the new wake-up.
func (d *Debouncer) Reset() Token {
	d.current++
	d.armed = true
	return d.current
}

// Fire consumes the pending wake-up if t is the latest token.
func (d *Debouncer) Fire(t Token) bool {
	if !d.armed || t != d.current {
		return false
	}
	d.armed = false
	return true
}

// Cancel disarms any pending wake-up.
func (d *Debouncer) Cancel() {
	d.current++
	d.armed = false
}

// Pending reports whether a wake-up is outstanding.
func (d *Debouncer) Pending() bool {
	return d.armed
}
