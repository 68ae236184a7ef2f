package state

import "github.com/lyriclang/lyriclang/internal/catalog"

// SongStore holds the song on screen plus the latest search results.
type SongStore interface {
	Current() catalog.Song
	HasCurrent() bool
	SetCurrent(catalog.Song)
	SongStatus() Status
	SongErr() error
	RequestSong(id string, seq uint64)
	ApplySong(id string, seq uint64, song catalog.Song, err error) bool

	Query() string
	Results() []catalog.Song
	SearchStatus() Status
	SearchErr() error
	RequestSearch(query string, seq uint64)
	ApplySearch(query string, seq uint64, songs []catalog.Song, err error) bool
	SetResults([]catalog.Song)
}

type songStore struct {
	current    catalog.Song
	hasCurrent bool
	song       slot
	search     slot
	results    []catalog.Song
}

func NewSongStore() SongStore {
	return &songStore{}
}

func (s *songStore) Current() catalog.Song {
	return s.current
}

func (s *songStore) HasCurrent() bool {
	return s.hasCurrent
}

func (s *songStore) SetCurrent(song catalog.Song) {
	s.current = song
	s.hasCurrent = true
}

func (s *songStore) SongStatus() Status {
	return s.song.status
}

func (s *songStore) SongErr() error {
	return s.song.err
}

func (s *songStore) RequestSong(id string, seq uint64) {
	s.song.request(id, seq)
}

func (s *songStore) ApplySong(id string, seq uint64, song catalog.Song, err error) bool {
	if !s.song.accepts(id, seq) {
		return false
	}
	s.song.settle(err)
	if err == nil {
		s.SetCurrent(song)
	}
	return true
}

func (s *songStore) Query() string {
	return s.search.key
}

func (s *songStore) Results() []catalog.Song {
	return cloneSongs(s.results)
}

func (s *songStore) SearchStatus() Status {
	return s.search.status
}

func (s *songStore) SearchErr() error {
	return s.search.err
}

func (s *songStore) RequestSearch(query string, seq uint64) {
	s.search.request(query, seq)
}

func (s *songStore) ApplySearch(query string, seq uint64, songs []catalog.Song, err error) bool {
	if !s.search.accepts(query, seq) {
		return false
	}
	s.search.settle(err)
	if err == nil {
		s.results = cloneSongs(songs)
	}
	return true
}

// SetResults replaces the list without a search, e.g. with popular songs.
func (s *songStore) SetResults(songs []catalog.Song) {
	s.results = cloneSongs(songs)
}

func cloneSongs(songs []catalog.Song) []catalog.Song {
	if len(songs) == 0 {
		return nil
	}
	dup := make([]catalog.Song, len(songs))
	copy(dup, songs)
	return dup
}
