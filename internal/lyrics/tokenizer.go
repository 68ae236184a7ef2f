// Package lyrics splits lyric text into classified segments.
package lyrics

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a Segment.
type Kind int

const (
	// Other is text that is neither word, punctuation nor whitespace. It is
	// rendered as plain text and never wired to the click handler.
	Other Kind = iota
	Word
	Punctuation
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Punctuation:
		return "punctuation"
	case Whitespace:
		return "whitespace"
	default:
		return "other"
	}
}

// MarshalText renders the kind by name in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a classified substring of a lyric line.
type Segment struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Clickable reports whether the segment should respond to a word click.
func (s Segment) Clickable() bool {
	return s.Kind == Word
}

func isPunctuation(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '\'' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func classify(r rune) Kind {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case isPunctuation(r):
		return Punctuation
	case isWordRune(r):
		return Word
	default:
		return Other
	}
}

// Tokenize returns the segments of line as a lazy sequence. The sequence can
// be ranged over any number of times; concatenating the yielded segments
// reproduces line exactly.
func Tokenize(line string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		start := 0
		for start < len(line) {
			r, size := utf8.DecodeRuneInString(line[start:])
			kind := classify(r)
			end := start + size
			if kind != Punctuation {
				for end < len(line) {
					next, n := utf8.DecodeRuneInString(line[end:])
					if classify(next) != kind {
						break
					}
					end += n
				}
			}
			if !yield(Segment{Text: line[start:end], Kind: kind}) {
				return
			}
			start = end
		}
	}
}

// Segments collects the tokenized segments of line.
func Segments(line string) []Segment {
	var out []Segment
	for seg := range Tokenize(line) {
		out = append(out, seg)
	}
	return out
}

// Words yields only the Word segments of line.
func Words(line string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for seg := range Tokenize(line) {
			if seg.Kind != Word {
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Lines splits a lyrics block into display rows. Windows line endings are
// normalised; blank rows are preserved as empty strings.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// Join concatenates segments back into text.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}
