package lyrics

import (
	"reflect"
	"testing"
)

var dynamite = []string{
	"'Cause I, I, I'm in the stars tonight",
	"So watch me bring the fire and set the night alight",
	"Shoes on, get up in the morn'",
	"Ding-dong, call me on my phone",
	"Ice tea and a game of ping pong",
	"",
	"This is getting heavy, can you hear the bass boom? I'm ready",
	"Life is sweet as honey, yeah, this beat cha-ching like money",
	"÷ (Divide) 1989 — ünïcode\tand  tabs",
}

func TestTokenizeRoundTrip(t *testing.T) {
	for _, line := range dynamite {
		if got := Join(Segments(line)); got != line {
			t.Fatalf("round trip mismatch: expected %q, got %q", line, got)
		}
	}
}

func TestTokenizeApostropheWord(t *testing.T) {
	segs := Segments("don't")
	want := []Segment{{Text: "don't", Kind: Word}}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("expected %#v, got %#v", want, segs)
	}
}

func TestTokenizeClassification(t *testing.T) {
	segs := Segments("Hey, so let's go")
	want := []Segment{
		{Text: "Hey", Kind: Word},
		{Text: ",", Kind: Punctuation},
		{Text: " ", Kind: Whitespace},
		{Text: "so", Kind: Word},
		{Text: " ", Kind: Whitespace},
		{Text: "let's", Kind: Word},
		{Text: " ", Kind: Whitespace},
		{Text: "go", Kind: Word},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("expected %#v, got %#v", want, segs)
	}
}

func TestTokenizePunctuationIsSingleRune(t *testing.T) {
	segs := Segments("boom?!")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d (%#v)", len(segs), segs)
	}
	if segs[1].Text != "?" || segs[2].Text != "!" {
		t.Fatalf("expected separate punctuation segments, got %#v", segs[1:])
	}
}

func TestTokenizeOtherRuns(t *testing.T) {
	segs := Segments("Ding-dong 1989")
	want := []Segment{
		{Text: "Ding", Kind: Word},
		{Text: "-", Kind: Other},
		{Text: "dong", Kind: Word},
		{Text: " ", Kind: Whitespace},
		{Text: "1989", Kind: Other},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("expected %#v, got %#v", want, segs)
	}
	for _, seg := range segs {
		if seg.Kind == Other && seg.Clickable() {
			t.Fatalf("expected %q to be unclickable", seg.Text)
		}
	}
}

func TestTokenizeRestartable(t *testing.T) {
	seq := Tokenize("watch me bring the fire")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != second || first != 9 {
		t.Fatalf("expected 9 segments on both passes, got %d and %d", first, second)
	}
}

func TestTokenizeEarlyStop(t *testing.T) {
	count := 0
	for seg := range Tokenize("a b c d") {
		count++
		if seg.Text == "b" {
			break
		}
	}
	if count != 3 {
		t.Fatalf("expected to stop after 3 segments, got %d", count)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if segs := Segments(""); len(segs) != 0 {
		t.Fatalf("expected no segments, got %#v", segs)
	}
}

func TestWords(t *testing.T) {
	var got []string
	for w := range Words("So watch me, bring the fire!") {
		got = append(got, w.Text)
	}
	want := []string{"So", "watch", "me", "bring", "the", "fire"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("one\r\ntwo\n\nthree")
	want := []string{"one", "two", "", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if Lines("") != nil {
		t.Fatalf("expected nil for empty lyrics")
	}
}
