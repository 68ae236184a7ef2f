package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is one row of the song picker. Terms holds extra text the filter
// matches against (genres) without showing it in the label.
type Entry struct {
	ID    string
	Label string
	Terms string
}

func (e Entry) haystack() string {
	if e.Terms == "" {
		return e.Label
	}
	return e.Label + " " + e.Terms
}

// Picker is the filterable song list behind the search overlay. Filtering
// is local and fuzzy; it never goes back to the catalog.
type Picker struct {
	all    []Entry
	shown  []Entry
	query  string
	cursor int
	offset int
	pinned string // id under the cursor before a filter was typed
}

func NewPicker(entries []Entry) *Picker {
	p := &Picker{}
	p.Replace(entries, "")
	return p
}

// Replace swaps the backing entries, clears the filter and puts the cursor
// on the best match for focus (or the first row).
func (p *Picker) Replace(entries []Entry, focus string) {
	p.all = append([]Entry(nil), entries...)
	p.query = ""
	p.pinned = ""
	p.shown = p.all
	p.offset = 0
	p.cursor = BestMatch(p.shown, focus)
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *Picker) Entries() []Entry { return p.shown }
func (p *Picker) Len() int { return len(p.shown) }
func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int { return p.cursor }

func (p *Picker) Current() (Entry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.shown) {
		return Entry{}, false
	}
	return p.shown[p.cursor], true
}

// Move shifts the cursor by delta rows, clamped to the list.
func (p *Picker) Move(delta int) bool {
	if len(p.shown) == 0 {
		p.cursor = 0
		return false
	}
	old := p.cursor
	p.cursor = clampInt(p.cursor+delta, 0, len(p.shown)-1)
	return old != p.cursor
}

// Page moves by whole pages of the given size; pages < 0 goes up.
func (p *Picker) Page(pages, size int) bool {
	if size <= 0 || size > len(p.shown) {
		size = len(p.shown)
	}
	return p.Move(pages * size)
}

// Window returns the [start, end) slice of rows to draw so the cursor
// stays on screen.
func (p *Picker) Window(visible int) (int, int) {
	if visible <= 0 || len(p.shown) == 0 {
		p.offset = 0
		return 0, len(p.shown)
	}
	p.offset = scrollToShow(p.offset, p.cursor, visible, len(p.shown))
	end := p.offset + visible
	if end > len(p.shown) {
		end = len(p.shown)
	}
	return p.offset, end
}

// SetQuery narrows the list. Matches are ordered best first. Clearing the
// query brings back the full list with the cursor where it was before.
func (p *Picker) SetQuery(query string) {
	trimmed := strings.TrimSpace(query)
	wasFiltered := strings.TrimSpace(p.query) != ""
	if trimmed != "" && !wasFiltered {
		if cur, ok := p.Current(); ok {
			p.pinned = cur.ID
		}
	}
	p.query = query
	p.offset = 0
	if trimmed == "" {
		p.shown = p.all
		p.cursor = 0
		for i, e := range p.shown {
			if e.ID == p.pinned {
				p.cursor = i
				break
			}
		}
		p.pinned = ""
		return
	}
	p.shown = Filter(p.all, trimmed)
	p.cursor = 0
}

// Filter returns the entries matching query. Fuzzy hits are ranked by
// distance; when nothing matches fuzzily a plain substring match on label,
// id or terms is used.
func Filter(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Entry(nil), entries...)
	}
	hay := make([]string, len(entries))
	for i, e := range entries {
		hay[i] = e.haystack()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, hay)
	if len(ranks) > 0 {
		sort.SliceStable(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		out := make([]Entry, len(ranks))
		for i, r := range ranks {
			out[i] = entries[r.OriginalIndex]
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.haystack()), lower) || strings.Contains(strings.ToLower(e.ID), lower) {
			out = append(out, e)
		}
	}
	return out
}

// BestMatch picks the row a query most likely means: an exact title or id,
// then a label prefix, then a substring. -1 when entries is empty.
func BestMatch(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	prefix, contains := -1, -1
	for i, e := range entries {
		label := strings.ToLower(e.Label)
		switch {
		case label == q || strings.ToLower(e.ID) == q:
			return i
		case prefix < 0 && strings.HasPrefix(label, q):
			prefix = i
		case contains < 0 && strings.Contains(label, q):
			contains = i
		}
	}
	if prefix >= 0 {
		return prefix
	}
	if contains >= 0 {
		return contains
	}
	return 0
}

// scrollToShow returns the offset closest to offset that keeps index inside
// a window of size visible over total rows.
func scrollToShow(offset, index, visible, total int) int {
	maxOffset := max(total-visible, 0)
	offset = clampInt(offset, 0, maxOffset)
	if index < offset {
		offset = index
	}
	if index >= offset+visible {
		offset = index - visible + 1
	}
	return clampInt(offset, 0, maxOffset)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
