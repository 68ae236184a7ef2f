package dispatcher

import (
	"github.com/lyriclang/lyriclang/internal/backend"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/state"
	"github.com/lyriclang/lyriclang/internal/videos"
)

type Result struct {
	WordUpdated   bool
	VideosUpdated bool
	SearchUpdated bool
	SongChanged   bool
	Stale         bool
}

// Dispatcher routes finished lookups into the stores, dropping any result
// that no longer matches what the store is waiting for.
type Dispatcher struct {
	words  state.WordStore
	videos state.VideoStore
	songs  state.SongStore
}

func New(w state.WordStore, v state.VideoStore, s state.SongStore) *Dispatcher {
	return &Dispatcher{words: w, videos: v, songs: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	var applied bool
	switch evt.Kind {
	case backend.KindWord:
		data, _ := evt.Data.(lexicon.Result)
		applied = d.words.Apply(evt.Key, evt.Seq, data, evt.Err)
		res.WordUpdated = applied
	case backend.KindVideos:
		data, _ := evt.Data.([]videos.Video)
		applied = d.videos.Apply(evt.Key, evt.Seq, data, evt.Err)
		res.VideosUpdated = applied
	case backend.KindSearch:
		data, _ := evt.Data.([]catalog.Song)
		applied = d.songs.ApplySearch(evt.Key, evt.Seq, data, evt.Err)
		res.SearchUpdated = applied
	case backend.KindSong:
		data, _ := evt.Data.(catalog.Song)
		applied = d.songs.ApplySong(evt.Key, evt.Seq, data, evt.Err)
		res.SongChanged = applied && evt.Err == nil
	default:
		return res
	}
	if !applied {
		res.Stale = true
		events.Lookup.Stale(evt.Kind.String(), evt.Key, evt.Seq)
	}
	return res
}
