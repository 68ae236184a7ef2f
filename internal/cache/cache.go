// Package cache memoizes lookup responses for a limited time.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/videos"
	gocache "github.com/patrickmn/go-cache"
)

// Store is a TTL cache shared by the lookup decorators.
type Store struct {
	c *gocache.Cache
}

// New creates a store whose entries expire after ttl. Expired entries are
// purged every 2*ttl. A non-positive ttl keeps entries forever.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		return &Store{c: gocache.New(gocache.NoExpiration, 0)}
	}
	return &Store{c: gocache.New(ttl, 2*ttl)}
}

// Len is the number of live entries.
func (s *Store) Len() int {
	return s.c.ItemCount()
}

// Flush drops every entry.
func (s *Store) Flush() {
	s.c.Flush()
}

func memo[T any](s *Store, key string, fn func() (T, error)) (T, error) {
	if v, ok := s.c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	s.c.Set(key, v, gocache.DefaultExpiration)
	return v, nil
}

// WordLookup is satisfied by *lexicon.Dictionary.
type WordLookup interface {
	LookupWord(ctx context.Context, word string) (lexicon.Result, error)
}

// VideoLookup is satisfied by *videos.Source.
type VideoLookup interface {
	Suggest(ctx context.Context, phrase string) ([]videos.Video, error)
}

// Dictionary caches successful word lookups.
type Dictionary struct {
	store *Store
	next  WordLookup
}

// NewDictionary wraps next with store.
func NewDictionary(store *Store, next WordLookup) *Dictionary {
	return &Dictionary{store: store, next: next}
}

// LookupWord serves from the cache or asks the wrapped dictionary. The
// cache keeps its own copy and every caller gets a fresh one.
func (d *Dictionary) LookupWord(ctx context.Context, word string) (lexicon.Result, error) {
	key := "word:" + strings.ToLower(strings.TrimSpace(word))
	res, err := memo(d.store, key, func() (lexicon.Result, error) {
		res, err := d.next.LookupWord(ctx, word)
		return res.Clone(), err
	})
	if err != nil {
		return lexicon.Result{}, err
	}
	return res.Clone(), nil
}

// Videos caches successful suggestion lookups.
type Videos struct {
	store *Store
	next  VideoLookup
}

// NewVideos wraps next with store.
func NewVideos(store *Store, next VideoLookup) *Videos {
	return &Videos{store: store, next: next}
}

// Suggest serves from the cache or asks the wrapped source.
func (v *Videos) Suggest(ctx context.Context, phrase string) ([]videos.Video, error) {
	key := "videos:" + strings.TrimSpace(phrase)
	list, err := memo(v.store, key, func() ([]videos.Video, error) {
		return v.next.Suggest(ctx, phrase)
	})
	if err != nil {
		return nil, err
	}
	return append([]videos.Video(nil), list...), nil
}
