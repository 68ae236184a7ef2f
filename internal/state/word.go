package state

import "github.com/lyriclang/lyriclang/internal/lexicon"

type WordStore interface {
	Key() string
	Status() Status
	Err() error
	Result() (lexicon.Result, bool)
	Request(key string, seq uint64)
	Apply(key string, seq uint64, res lexicon.Result, err error) bool
	Clear()
}

type wordStore struct {
	slot
	result lexicon.Result
}

func NewWordStore() WordStore {
	return &wordStore{}
}

func (w *wordStore) Key() string {
	return w.key
}

func (w *wordStore) Status() Status {
	return w.status
}

func (w *wordStore) Err() error {
	return w.err
}

func (w *wordStore) Result() (lexicon.Result, bool) {
	return w.result, w.status == StatusReady
}

func (w *wordStore) Request(key string, seq uint64) {
	w.request(key, seq)
	w.result = lexicon.Result{}
}

// Apply stores res when it answers the outstanding request. It reports false
// for stale results, which are dropped.
func (w *wordStore) Apply(key string, seq uint64, res lexicon.Result, err error) bool {
	if !w.accepts(key, seq) {
		return false
	}
	w.settle(err)
	if err == nil {
		w.result = res
	}
	return true
}

func (w *wordStore) Clear() {
	w.reset()
	w.result = lexicon.Result{}
}
