// Package lexicon is the dictionary behind word lookups.
package lexicon

import "strings"

// Definition is a single sense of a word.
type Definition struct {
	Text     string   `json:"definition"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// Meaning groups definitions by part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Entry is a dictionary record.
type Entry struct {
	Word          string    `json:"word"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	Phonetic      string    `json:"phonetic,omitempty"`
	Meanings      []Meaning `json:"meanings"`
	Etymology     string    `json:"etymology,omitempty"`
}

// Result is what LookupWord returns: the entry, an illustration and whether
// the word was actually in the dictionary.
type Result struct {
	Word     string `json:"word"`
	Entry    Entry  `json:"entry"`
	ImageURL string `json:"imageUrl"`
	Found    bool   `json:"found"`
}

func cloneEntry(e Entry) Entry {
	if e.Meanings == nil {
		return e
	}
	meanings := make([]Meaning, len(e.Meanings))
	for i, m := range e.Meanings {
		defs := make([]Definition, len(m.Definitions))
		for j, d := range m.Definitions {
			if d.Synonyms != nil {
				d.Synonyms = append([]string(nil), d.Synonyms...)
			}
			defs[j] = d
		}
		m.Definitions = defs
		meanings[i] = m
	}
	e.Meanings = meanings
	return e
}

// Clone returns a deep copy. Strings are cloned too, so a result built from
// a borrowed buffer can be kept after the buffer is reused.
func (r Result) Clone() Result {
	r.Word = strings.Clone(r.Word)
	r.ImageURL = strings.Clone(r.ImageURL)
	r.Entry = cloneEntry(r.Entry)
	r.Entry.Word = strings.Clone(r.Entry.Word)
	return r
}
