package backend

import (
	"context"
	"sync"
	"time"

	"github.com/lyriclang/lyriclang/internal/logging/events"
)

// Kind identifies a lookup slot. At most one lookup per kind is current.
type Kind int

const (
	KindWord Kind = iota
	KindVideos
	KindSearch
	KindSong
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindVideos:
		return "videos"
	case KindSearch:
		return "search"
	case KindSong:
		return "song"
	default:
		return "unknown"
	}
}

// Ticket identifies one issued lookup.
type Ticket struct {
	Kind Kind
	Key  string
	Seq  uint64
	ctx  context.Context
}

// Context is cancelled when the lookup is superseded or cancelled.
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// Event carries the outcome of a lookup back to the event loop.
type Event struct {
	Kind Kind
	Key  string
	Seq  uint64
	Data interface{}
	Err  error
}

type flight struct {
	key    string
	seq    uint64
	cancel context.CancelFunc
}

// Runner hands out tickets and cancels superseded lookups.
type Runner struct {
	mu        sync.Mutex
	seq       uint64
	inflight  map[Kind]flight
	throttles map[Kind]*throttle
	interval  time.Duration
}

// NewRunner returns a Runner that spaces lookups of the same kind at least
// minInterval apart.
func NewRunner(minInterval time.Duration) *Runner {
	return &Runner{
		inflight:  make(map[Kind]flight),
		throttles: make(map[Kind]*throttle),
		interval:  minInterval,
	}
}

// Start issues a ticket for key, cancelling any lookup of the same kind that
// is still running.
func (r *Runner) Start(kind Kind, key string) Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.inflight[kind]; ok {
		prev.cancel()
		events.Lookup.Superseded(kind.String(), prev.key, prev.seq)
	}
	r.seq++
	ctx, cancel := context.WithCancel(context.Background())
	r.inflight[kind] = flight{key: key, seq: r.seq, cancel: cancel}
	events.Lookup.Start(kind.String(), key, r.seq)
	return Ticket{Kind: kind, Key: key, Seq: r.seq, ctx: ctx}
}

// Cancel aborts the current lookup of kind, if any.
func (r *Runner) Cancel(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.inflight[kind]
	if !ok {
		return false
	}
	prev.cancel()
	delete(r.inflight, kind)
	events.Lookup.Cancel(kind.String(), prev.key, prev.seq)
	return true
}

// Stop cancels every running lookup.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for kind, f := range r.inflight {
		f.cancel()
		delete(r.inflight, kind)
	}
}

// Current reports the key and sequence of the running lookup of kind.
func (r *Runner) Current(kind Kind) (string, uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.inflight[kind]
	return f.key, f.seq, ok
}

// Run executes fn under the ticket's context and packages the outcome. It
// waits for the kind's throttle slot first.
func (r *Runner) Run(t Ticket, fn func(ctx context.Context) (interface{}, error)) Event {
	ctx := t.Context()
	evt := Event{Kind: t.Kind, Key: t.Key, Seq: t.Seq}
	if err := r.throttleFor(t.Kind).wait(ctx); err != nil {
		evt.Err = err
	} else {
		evt.Data, evt.Err = fn(ctx)
	}
	r.finish(t)
	events.Lookup.Result(t.Kind.String(), t.Key, t.Seq, evt.Err)
	return evt
}

func (r *Runner) finish(t Ticket) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.inflight[t.Kind]; ok && f.seq == t.Seq {
		f.cancel()
		delete(r.inflight, t.Kind)
	}
}

func (r *Runner) throttleFor(kind Kind) *throttle {
	r.mu.Lock()
	defer r.mu.Unlock()
	th, ok := r.throttles[kind]
	if !ok {
		th = newThrottle(r.interval)
		r.throttles[kind] = th
	}
	return th
}
