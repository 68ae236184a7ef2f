package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/backend"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/logging"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/panel"
	"github.com/lyriclang/lyriclang/internal/ui/command"
)

// lookupResultMsg carries a finished lookup back into Update.
type lookupResultMsg struct {
	event backend.Event
}

type lookupFunc func(ctx context.Context) (interface{}, error)

func (m *Model) lookupCmd(t backend.Ticket, fn lookupFunc) tea.Cmd {
	runner := m.runner
	return m.bus.Execute(command.Request{
		ID:    fmt.Sprintf("%s#%d", t.Kind, t.Seq),
		Label: t.Key,
		Ctx:   t.Context(),
		Run: func() tea.Msg {
			return lookupResultMsg{event: runner.Run(t, fn)}
		},
	})
}

// applyEffects runs the cancellations and fetches a router transition asks
// for.
func (m *Model) applyEffects(event string, from panel.Kind, eff panel.Effects) tea.Cmd {
	st := m.router.State()
	events.Panel.Transition(event, from.String(), st.Kind.String(), st.Phrase, st.Word)
	if st.Kind != from || !eff.None() {
		m.panelOffset = 0
	}
	if eff.CancelWord {
		m.runner.Cancel(backend.KindWord)
		m.words.Clear()
		if !st.HasWord() {
			m.activeWord = nil
		}
	}
	if eff.CancelVideos {
		m.runner.Cancel(backend.KindVideos)
		m.videos.Clear()
	}
	var cmds []tea.Cmd
	if eff.FetchWord != "" {
		cmds = append(cmds, m.fetchWord(eff.FetchWord))
	}
	if eff.FetchVideos != "" {
		cmds = append(cmds, m.fetchVideos(eff.FetchVideos))
	}
	if len(cmds) == 0 {
		return nil
	}
	if m.animate {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetchWord(key string) tea.Cmd {
	t := m.runner.Start(backend.KindWord, key)
	m.words.Request(key, t.Seq)
	dict := m.dictionary
	return m.lookupCmd(t, func(ctx context.Context) (interface{}, error) {
		return dict.LookupWord(ctx, key)
	})
}

func (m *Model) fetchVideos(phrase string) tea.Cmd {
	t := m.runner.Start(backend.KindVideos, phrase)
	m.videos.Request(phrase, t.Seq)
	src := m.videoSource
	return m.lookupCmd(t, func(ctx context.Context) (interface{}, error) {
		return src.Suggest(ctx, phrase)
	})
}

// loadSongCmd fetches a song by id. At startup an unknown id falls back to
// the most popular song.
func (m *Model) loadSongCmd(id string, fallback bool) tea.Cmd {
	t := m.runner.Start(backend.KindSong, id)
	m.songs.RequestSong(id, t.Seq)
	cat := m.catalog
	return m.lookupCmd(t, func(ctx context.Context) (interface{}, error) {
		song, err := cat.GetSongByID(ctx, id)
		if err == nil || !fallback || !errors.Is(err, lookup.ErrNotFound) {
			return song, err
		}
		logging.Error(err)
		popular, perr := cat.GetPopularSongs(ctx, 1)
		if perr != nil {
			return catalog.Song{}, perr
		}
		if len(popular) == 0 {
			return catalog.Song{}, err
		}
		return popular[0], nil
	})
}

// searchCmd runs a catalog search. An empty query loads the popular list.
func (m *Model) searchCmd(query string) tea.Cmd {
	t := m.runner.Start(backend.KindSearch, query)
	m.songs.RequestSearch(query, t.Seq)
	cat := m.catalog
	return m.lookupCmd(t, func(ctx context.Context) (interface{}, error) {
		if query == "" {
			return cat.GetPopularSongs(ctx, popularPickerLimit)
		}
		return cat.SearchSongs(ctx, catalog.Filters{Query: query})
	})
}

func (m *Model) handleLookupResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(lookupResultMsg)
	if !ok {
		return nil
	}
	evt := result.event
	res := m.dispatcher.Handle(evt)
	if res.Stale {
		return nil
	}
	if evt.Err != nil && lookup.Classify(evt.Err) == lookup.ClassTransport {
		logging.Error(evt.Err)
	}
	if m.verbose && evt.Err == nil && evt.Kind != backend.KindSearch {
		m.setInfo(fmt.Sprintf("Loaded %s %q", evt.Kind, evt.Key))
	}
	switch {
	case res.SongChanged:
		return m.applySong(m.songs.Current())
	case evt.Kind == backend.KindSong && evt.Err != nil:
		m.errMsg = songErrorText(evt.Key, evt.Err)
	case res.SearchUpdated:
		m.refreshSearch()
	}
	return nil
}

// retry re-issues the failed lookup behind the visible panel side.
func (m *Model) retry() tea.Cmd {
	st := m.router.State()
	if st.Kind == panel.Closed {
		return nil
	}
	if st.Visible() == panel.TabWord {
		if lookup.Retryable(m.words.Err()) {
			return m.fetchWord(m.words.Key())
		}
		return nil
	}
	if lookup.Retryable(m.videos.Err()) {
		return m.fetchVideos(m.videos.Key())
	}
	return nil
}

func songErrorText(id string, err error) string {
	if lookup.Classify(err) == lookup.ClassNotFound {
		return fmt.Sprintf("Song %q is not in the catalog", id)
	}
	return fmt.Sprintf("Could not load song: %v", err)
}
