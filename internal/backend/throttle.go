package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces lookups of one kind at least interval apart. Each caller
// reserves the next free slot up front, so a burst of clicks queues in
// order instead of racing for the same slot.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time // most recently reserved slot
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0), now: time.Now}
}

func (t *throttle) reserve() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	slot := now
	if !t.last.IsZero() {
		if next := t.last.Add(t.interval); next.After(now) {
			slot = next
		}
	}
	t.last = slot
	return slot.Sub(now)
}

// wait blocks until the caller's slot arrives or ctx is done. A cancelled
// caller keeps its slot; the gap it leaves is at most one interval.
func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}
	delay := t.reserve()
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ctx.Err()
	}
}
