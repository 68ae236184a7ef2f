// Package panel owns the side-panel routing state machine.
package panel

import "strings"

// Kind is the panel layout currently shown.
type Kind int

const (
	Closed Kind = iota
	VideoOnly
	WordOnly
	Both
)

func (k Kind) String() string {
	switch k {
	case VideoOnly:
		return "video"
	case WordOnly:
		return "word"
	case Both:
		return "both"
	default:
		return "closed"
	}
}

// Tab selects the visible side while both panels are open.
type Tab int

const (
	TabVideo Tab = iota
	TabWord
)

func (t Tab) String() string {
	if t == TabWord {
		return "word"
	}
	return "video"
}

// State is a snapshot of the router.
type State struct {
	Kind      Kind
	Phrase    string
	Word      string
	ActiveTab Tab
}

// HasVideo reports whether the video side is open.
func (s State) HasVideo() bool {
	return s.Kind == VideoOnly || s.Kind == Both
}

// HasWord reports whether the word side is open.
func (s State) HasWord() bool {
	return s.Kind == WordOnly || s.Kind == Both
}

// Visible returns the side drawn in the panel body.
func (s State) Visible() Tab {
	switch s.Kind {
	case WordOnly:
		return TabWord
	case Both:
		return s.ActiveTab
	default:
		return TabVideo
	}
}

// Effects lists the lookups a transition requires. Empty fetch keys mean
// nothing to fetch.
type Effects struct {
	FetchWord    string
	FetchVideos  string
	CancelWord   bool
	CancelVideos bool
}

// None reports whether the effects are empty.
func (e Effects) None() bool {
	return e == Effects{}
}

// Router is the panel state machine. It starts Closed and has no terminal
// state. The zero value is ready to use.
type Router struct {
	state State
}

// State returns the current snapshot.
func (r *Router) State() State {
	return r.state
}

// WordClicked opens the word side for w and makes it the active tab when the
// video side is already open.
func (r *Router) WordClicked(w string) Effects {
	if w == "" {
		return Effects{}
	}
	prev := r.state
	if prev.HasVideo() {
		r.state = State{Kind: Both, Phrase: prev.Phrase, Word: w, ActiveTab: TabWord}
	} else {
		r.state = State{Kind: WordOnly, Word: w}
	}
	return Effects{FetchWord: WordKey(w)}
}

// PhraseSelected opens the video side for p and makes it the active tab when
// the word side is already open.
func (r *Router) PhraseSelected(p string) Effects {
	if p == "" {
		return Effects{}
	}
	prev := r.state
	if prev.HasWord() {
		r.state = State{Kind: Both, Phrase: p, Word: prev.Word, ActiveTab: TabVideo}
	} else {
		r.state = State{Kind: VideoOnly, Phrase: p}
	}
	return Effects{FetchVideos: p}
}

// CloseVideo drops the video side.
func (r *Router) CloseVideo() Effects {
	switch r.state.Kind {
	case Both:
		r.state = State{Kind: WordOnly, Word: r.state.Word}
	case VideoOnly:
		r.state = State{}
	default:
		return Effects{}
	}
	return Effects{CancelVideos: true}
}

// CloseWord drops the word side.
func (r *Router) CloseWord() Effects {
	switch r.state.Kind {
	case Both:
		r.state = State{Kind: VideoOnly, Phrase: r.state.Phrase}
	case WordOnly:
		r.state = State{}
	default:
		return Effects{}
	}
	return Effects{CancelWord: true}
}

// CloseActive drops whichever side is visible.
func (r *Router) CloseActive() Effects {
	switch r.state.Kind {
	case Closed:
		return Effects{}
	case WordOnly:
		return r.CloseWord()
	case VideoOnly:
		return r.CloseVideo()
	}
	if r.state.ActiveTab == TabWord {
		return r.CloseWord()
	}
	return r.CloseVideo()
}

// SetTab switches the active tab. It only has an effect in Both.
func (r *Router) SetTab(t Tab) bool {
	if r.state.Kind != Both || r.state.ActiveTab == t {
		return false
	}
	r.state.ActiveTab = t
	return true
}

// ToggleTab flips the active tab while both sides are open.
func (r *Router) ToggleTab() bool {
	if r.state.ActiveTab == TabVideo {
		return r.SetTab(TabWord)
	}
	return r.SetTab(TabVideo)
}

// Reset closes everything, cancelling whatever was open.
func (r *Router) Reset() Effects {
	prev := r.state
	r.state = State{}
	return Effects{CancelWord: prev.HasWord(), CancelVideos: prev.HasVideo()}
}

// WordKey is the lookup key for a clicked word.
func WordKey(w string) string {
	return strings.ToLower(w)
}
