package state

import (
	"context"
	"errors"
)

// Status describes where a lookup slot is in its lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// slot tracks the key and sequence of the lookup a store is waiting for.
// Results carrying any other key or sequence are stale.
type slot struct {
	key    string
	seq    uint64
	status Status
	err    error
}

func (s *slot) request(key string, seq uint64) {
	s.key = key
	s.seq = seq
	s.status = StatusLoading
	s.err = nil
}

func (s *slot) accepts(key string, seq uint64) bool {
	return s.status == StatusLoading && s.key == key && s.seq == seq
}

// settle records the outcome. A cancellation returns the slot to idle.
func (s *slot) settle(err error) {
	switch {
	case err == nil:
		s.status = StatusReady
		s.err = nil
	case errors.Is(err, context.Canceled):
		s.status = StatusIdle
		s.err = nil
	default:
		s.status = StatusFailed
		s.err = err
	}
}

func (s *slot) reset() {
	*s = slot{}
}
