package events

import "github.com/lyriclang/lyriclang/internal/logging"

type LyricsTracer struct{}

type PanelTracer struct{}

type LookupTracer struct{}

type CatalogTracer struct{}

var (
	Lyrics  = LyricsTracer{}
	Panel   = PanelTracer{}
	Lookup  = LookupTracer{}
	Catalog = CatalogTracer{}
)

func (LyricsTracer) WordClicked(word string, line int) {
	logging.Trace("lyrics.word-click", map[string]interface{}{"word": word, "line": line})
}

func (LyricsTracer) WordHovered(word string, line int) {
	logging.Trace("lyrics.word-hover", map[string]interface{}{"word": word, "line": line})
}

func (LyricsTracer) SelectionStarted(line, col int) {
	logging.Trace("lyrics.selection-start", map[string]interface{}{"line": line, "col": col})
}

func (LyricsTracer) SelectionCaptured(id, phrase string, truncated bool) {
	logging.Trace("lyrics.selection-capture", map[string]interface{}{
		"id":        id,
		"phrase":    phrase,
		"truncated": truncated,
	})
}

func (LyricsTracer) SelectionSkipped(reason string) {
	logging.Trace("lyrics.selection-skip", map[string]interface{}{"reason": reason})
}

func (PanelTracer) Transition(event, from, to, phrase, word string) {
	logging.Trace("panel.transition", map[string]interface{}{
		"event":  event,
		"from":   from,
		"to":     to,
		"phrase": phrase,
		"word":   word,
	})
}

func (PanelTracer) Tab(tab string) {
	logging.Trace("panel.tab", map[string]interface{}{"tab": tab})
}

func (LookupTracer) Start(kind, key string, seq uint64) {
	logging.Trace("lookup.start", map[string]interface{}{"kind": kind, "key": key, "seq": seq})
}

func (LookupTracer) Superseded(kind, key string, seq uint64) {
	logging.Trace("lookup.superseded", map[string]interface{}{"kind": kind, "key": key, "seq": seq})
}

func (LookupTracer) Cancel(kind, key string, seq uint64) {
	logging.Trace("lookup.cancel", map[string]interface{}{"kind": kind, "key": key, "seq": seq})
}

func (LookupTracer) Result(kind, key string, seq uint64, err error) {
	payload := map[string]interface{}{"kind": kind, "key": key, "seq": seq}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("lookup.result", payload)
}

func (LookupTracer) Stale(kind, key string, seq uint64) {
	logging.Trace("lookup.stale", map[string]interface{}{"kind": kind, "key": key, "seq": seq})
}

func (CatalogTracer) Search(query string, results int) {
	logging.Trace("catalog.search", map[string]interface{}{"query": query, "results": results})
}

func (CatalogTracer) SongChanged(id string) {
	logging.Trace("catalog.song", map[string]interface{}{"id": id})
}
