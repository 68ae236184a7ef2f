package panel

import "testing"

func TestRouterScenario(t *testing.T) {
	var r Router
	if r.State().Kind != Closed {
		t.Fatalf("expected initial state Closed, got %v", r.State().Kind)
	}

	fx := r.WordClicked("light")
	if got := r.State(); got != (State{Kind: WordOnly, Word: "light"}) {
		t.Fatalf("expected WordOnly(light), got %+v", got)
	}
	if fx.FetchWord != "light" || fx.FetchVideos != "" {
		t.Fatalf("expected word fetch only, got %+v", fx)
	}

	fx = r.PhraseSelected("bring the fire")
	want := State{Kind: Both, Phrase: "bring the fire", Word: "light", ActiveTab: TabVideo}
	if got := r.State(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if fx.FetchVideos != "bring the fire" || fx.FetchWord != "" {
		t.Fatalf("expected video fetch only, got %+v", fx)
	}

	fx = r.CloseWord()
	if got := r.State(); got != (State{Kind: VideoOnly, Phrase: "bring the fire"}) {
		t.Fatalf("expected VideoOnly(bring the fire), got %+v", got)
	}
	if !fx.CancelWord || fx.CancelVideos {
		t.Fatalf("expected word cancellation, got %+v", fx)
	}

	fx = r.CloseVideo()
	if got := r.State(); got != (State{}) {
		t.Fatalf("expected Closed, got %+v", got)
	}
	if !fx.CancelVideos {
		t.Fatalf("expected video cancellation, got %+v", fx)
	}
}

func TestRouterWordClickedWithVideoOpen(t *testing.T) {
	var r Router
	r.PhraseSelected("watch me bring the fire")
	fx := r.WordClicked("Fire")
	want := State{Kind: Both, Phrase: "watch me bring the fire", Word: "Fire", ActiveTab: TabWord}
	if got := r.State(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if fx.FetchWord != "fire" {
		t.Fatalf("expected lowercased fetch key, got %q", fx.FetchWord)
	}
}

func TestRouterReplacesSameSide(t *testing.T) {
	var r Router
	r.WordClicked("fire")
	r.WordClicked("stars")
	if got := r.State(); got != (State{Kind: WordOnly, Word: "stars"}) {
		t.Fatalf("expected WordOnly(stars), got %+v", got)
	}
	r.PhraseSelected("first phrase")
	r.PhraseSelected("second phrase")
	if got := r.State(); got.Phrase != "second phrase" || got.Word != "stars" || got.ActiveTab != TabVideo {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestRouterCloseNoOps(t *testing.T) {
	var r Router
	if fx := r.CloseVideo(); !fx.None() {
		t.Fatalf("expected no effects closing video from Closed, got %+v", fx)
	}
	r.WordClicked("light")
	if fx := r.CloseVideo(); !fx.None() {
		t.Fatalf("expected no effects closing video from WordOnly, got %+v", fx)
	}
	if r.State().Kind != WordOnly {
		t.Fatalf("expected WordOnly to survive closeVideo, got %v", r.State().Kind)
	}
	var v Router
	v.PhraseSelected("some phrase")
	if fx := v.CloseWord(); !fx.None() || v.State().Kind != VideoOnly {
		t.Fatalf("expected closeWord to be a no-op in VideoOnly, got %+v / %+v", fx, v.State())
	}
}

func TestRouterTabs(t *testing.T) {
	var r Router
	r.WordClicked("light")
	if r.SetTab(TabVideo) {
		t.Fatalf("expected tab switch outside Both to be ignored")
	}
	r.PhraseSelected("bring the fire")
	if !r.SetTab(TabWord) || r.State().ActiveTab != TabWord {
		t.Fatalf("expected tab switch in Both")
	}
	if r.SetTab(TabWord) {
		t.Fatalf("expected no change when tab already active")
	}
	if !r.ToggleTab() || r.State().Visible() != TabVideo {
		t.Fatalf("expected toggle back to video")
	}
	if r.State().Phrase != "bring the fire" || r.State().Word != "light" {
		t.Fatalf("expected tab switches to leave contents alone, got %+v", r.State())
	}
}

func TestRouterCloseActive(t *testing.T) {
	var r Router
	r.WordClicked("light")
	r.PhraseSelected("bring the fire")
	fx := r.CloseActive()
	if !fx.CancelVideos || r.State().Kind != WordOnly {
		t.Fatalf("expected active video side to close, got %+v / %+v", fx, r.State())
	}
	r.CloseActive()
	if r.State().Kind != Closed {
		t.Fatalf("expected Closed, got %v", r.State().Kind)
	}
}

func TestRouterReset(t *testing.T) {
	var r Router
	r.WordClicked("light")
	r.PhraseSelected("bring the fire")
	fx := r.Reset()
	if !fx.CancelWord || !fx.CancelVideos || r.State().Kind != Closed {
		t.Fatalf("expected full reset, got %+v / %+v", fx, r.State())
	}
	if fx := r.Reset(); !fx.None() {
		t.Fatalf("expected reset of Closed to have no effects, got %+v", fx)
	}
}

func TestRouterIgnoresEmptyInput(t *testing.T) {
	var r Router
	if fx := r.WordClicked(""); !fx.None() || r.State().Kind != Closed {
		t.Fatalf("expected empty word to be ignored")
	}
	if fx := r.PhraseSelected(""); !fx.None() || r.State().Kind != Closed {
		t.Fatalf("expected empty phrase to be ignored")
	}
}
