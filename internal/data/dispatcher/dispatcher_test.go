package dispatcher

import (
	"errors"
	"testing"

	"github.com/lyriclang/lyriclang/internal/backend"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/state"
	"github.com/lyriclang/lyriclang/internal/videos"
)

func newDispatcher() (*Dispatcher, state.WordStore, state.VideoStore, state.SongStore) {
	w := state.NewWordStore()
	v := state.NewVideoStore()
	s := state.NewSongStore()
	return New(w, v, s), w, v, s
}

func TestHandleWord(t *testing.T) {
	d, words, _, _ := newDispatcher()
	words.Request("fire", 1)
	res := d.Handle(backend.Event{Kind: backend.KindWord, Key: "fire", Seq: 1, Data: lexicon.Result{Word: "fire", Found: true}})
	if !res.WordUpdated || res.Stale {
		t.Fatalf("expected word update, got %+v", res)
	}
	got, ok := words.Result()
	if !ok || got.Word != "fire" {
		t.Fatalf("expected fire in store, got %+v", got)
	}
}

func TestHandleStaleWord(t *testing.T) {
	d, words, _, _ := newDispatcher()
	words.Request("fire", 1)
	words.Request("stars", 2)
	res := d.Handle(backend.Event{Kind: backend.KindWord, Key: "fire", Seq: 1, Data: lexicon.Result{Word: "fire"}})
	if res.WordUpdated || !res.Stale {
		t.Fatalf("expected stale result, got %+v", res)
	}
	if words.Key() != "stars" || words.Status() != state.StatusLoading {
		t.Fatalf("expected stars still loading, got %q %s", words.Key(), words.Status())
	}
}

func TestHandleVideos(t *testing.T) {
	d, _, vids, _ := newDispatcher()
	vids.Request("bring the fire", 5)
	res := d.Handle(backend.Event{Kind: backend.KindVideos, Key: "bring the fire", Seq: 5, Data: []videos.Video{{ID: "x"}}})
	if !res.VideosUpdated {
		t.Fatalf("expected videos update, got %+v", res)
	}
	if vids.Carousel().Len() != 1 {
		t.Fatalf("expected one video")
	}
}

func TestHandleSongError(t *testing.T) {
	d, _, _, songs := newDispatcher()
	songs.RequestSong("missing", 2)
	res := d.Handle(backend.Event{Kind: backend.KindSong, Key: "missing", Seq: 2, Err: errors.New("nope")})
	if res.SongChanged || res.Stale {
		t.Fatalf("expected failed song without change, got %+v", res)
	}
	if songs.SongStatus() != state.StatusFailed {
		t.Fatalf("expected failed status, got %s", songs.SongStatus())
	}
}

func TestHandleSearch(t *testing.T) {
	d, _, _, songs := newDispatcher()
	songs.RequestSearch("love", 7)
	res := d.Handle(backend.Event{Kind: backend.KindSearch, Key: "love", Seq: 7, Data: []catalog.Song{{ID: "a"}}})
	if !res.SearchUpdated {
		t.Fatalf("expected search update, got %+v", res)
	}
	if len(songs.Results()) != 1 {
		t.Fatalf("expected one result")
	}
}
