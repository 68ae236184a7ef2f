package lexicon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
)

// Dictionary resolves words against an in-memory entry table.
type Dictionary struct {
	entries map[string]Entry
	images  ImageTable
	latency time.Duration
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLatency delays each lookup to mimic a remote dictionary.
func WithLatency(d time.Duration) Option {
	return func(dict *Dictionary) {
		dict.latency = d
	}
}

// WithImages replaces the illustration table.
func WithImages(t ImageTable) Option {
	return func(dict *Dictionary) {
		dict.images = t
	}
}

// New builds a dictionary from entries keyed by their lowercase word.
func New(entries []Entry, opts ...Option) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]Entry, len(entries)),
		images:  DefaultImages(),
	}
	for _, e := range entries {
		d.entries[strings.ToLower(e.Word)] = cloneEntry(e)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default returns the built-in dictionary.
func Default(opts ...Option) *Dictionary {
	return New(seedEntries, opts...)
}

// Len is the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// LookupWord resolves word by case-insensitive exact match. A miss is not an
// error: it yields a placeholder entry with Found=false. Only cancellation
// fails the lookup.
func (d *Dictionary) LookupWord(ctx context.Context, word string) (Result, error) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return Result{}, fmt.Errorf("empty word: %w", lookup.ErrValidationSkip)
	}
	if err := wait(ctx, d.latency); err != nil {
		return Result{}, err
	}
	res := Result{Word: key, ImageURL: d.images.Lookup(key)}
	if e, ok := d.entries[key]; ok {
		res.Entry = cloneEntry(e)
		res.Found = true
		return res, nil
	}
	res.Entry = Placeholder(key)
	return res, nil
}

// Placeholder is the entry shown for words missing from the dictionary.
func Placeholder(word string) Entry {
	return Entry{
		Word:          word,
		Pronunciation: "/" + word + "/",
		Phonetic:      word,
		Meanings: []Meaning{{
			PartOfSpeech: "unknown",
			Definitions: []Definition{{
				Text:    "Definition not found in dictionary",
				Example: fmt.Sprintf("Sorry, we couldn't find the definition for %q", word),
			}},
		}},
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
