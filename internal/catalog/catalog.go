package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
)

// DefaultPopularLimit is used when GetPopularSongs receives a non-positive
// limit.
const DefaultPopularLimit = 6

// Filters narrows a search. Query is required; the other fields are
// optional refinements.
type Filters struct {
	Query    string `json:"query"`
	Artist   string `json:"artist,omitempty"`
	Genre    string `json:"genre,omitempty"`
	Language string `json:"language,omitempty"`
}

// Catalog is a read-only, in-memory song collection. Results are
// deterministic for a given set of songs.
type Catalog struct {
	songs []Song
	byID  map[string]int

	searchLatency time.Duration
	lookupLatency time.Duration
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLatency simulates a remote service by delaying searches and id
// lookups. Delays honour context cancellation.
func WithLatency(search, byID time.Duration) Option {
	return func(c *Catalog) {
		c.searchLatency = search
		c.lookupLatency = byID
	}
}

// New builds a catalog from songs. Ids must be unique and non-empty.
func New(songs []Song, opts ...Option) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(songs))}
	for _, s := range songs {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("song %q: missing id", s.Title)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("song %q: duplicate id", s.ID)
		}
		c.byID[s.ID] = len(c.songs)
		c.songs = append(c.songs, cloneSong(s))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default(opts ...Option) *Catalog {
	c, err := New(seedSongs, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Seed returns a copy of the built-in songs.
func Seed() []Song {
	return cloneSongs(seedSongs)
}

// Len is the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// GetSongByID resolves a song or fails with lookup.ErrNotFound.
func (c *Catalog) GetSongByID(ctx context.Context, id string) (Song, error) {
	if err := wait(ctx, c.lookupLatency); err != nil {
		return Song{}, err
	}
	idx, ok := c.byID[id]
	if !ok {
		return Song{}, fmt.Errorf("song %q: %w", id, lookup.ErrNotFound)
	}
	return cloneSong(c.songs[idx]), nil
}

// SearchSongs matches the query case-insensitively against title, artist and
// lyrics, applies the optional filters and orders by popularity, most
// popular first. A blank query fails with lookup.ErrEmptyQuery.
func (c *Catalog) SearchSongs(ctx context.Context, f Filters) ([]Song, error) {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return nil, lookup.ErrEmptyQuery
	}
	if err := wait(ctx, c.searchLatency); err != nil {
		return nil, err
	}
	artist := strings.ToLower(strings.TrimSpace(f.Artist))
	genre := strings.ToLower(strings.TrimSpace(f.Genre))
	language := strings.TrimSpace(f.Language)

	results := make([]Song, 0, len(c.songs))
	for _, s := range c.songs {
		if !matchesQuery(s, query) {
			continue
		}
		if artist != "" && !strings.Contains(strings.ToLower(s.Artist), artist) {
			continue
		}
		if genre != "" && !hasGenre(s, genre) {
			continue
		}
		if language != "" && !strings.EqualFold(s.Language, language) {
			continue
		}
		results = append(results, cloneSong(s))
	}
	byPopularity(results)
	return results, nil
}

// GetPopularSongs returns the top limit songs by popularity.
func (c *Catalog) GetPopularSongs(ctx context.Context, limit int) ([]Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	all := cloneSongs(c.songs)
	byPopularity(all)
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Genres lists every genre tag once, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	for _, s := range c.songs {
		for _, g := range s.Genre {
			seen[g] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Artists lists every artist once, sorted.
func (c *Catalog) Artists() []string {
	seen := make(map[string]struct{})
	for _, s := range c.songs {
		seen[s.Artist] = struct{}{}
	}
	return sortedKeys(seen)
}

func matchesQuery(s Song, query string) bool {
	return strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Artist), query) ||
		strings.Contains(strings.ToLower(s.Lyrics), query)
}

func hasGenre(s Song, genre string) bool {
	for _, g := range s.Genre {
		if strings.Contains(strings.ToLower(g), genre) {
			return true
		}
	}
	return false
}

func byPopularity(songs []Song) {
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].Popularity > songs[j].Popularity
	})
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
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
