package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/format/table"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/state"
	uistate "github.com/lyriclang/lyriclang/internal/ui/state"
)

const (
	popularPickerLimit = 8
	suggestLimit       = 3
)

// searchState is the song picker overlay: a query prompt over a filterable
// list of songs.
type searchState struct {
	input     textinput.Model
	picker    *uistate.Picker
	songs     map[string]catalog.Song
	submitted string
	suggest   []catalog.Song
}

func (m *Model) openSearch() tea.Cmd {
	if m.search != nil {
		return nil
	}
	input := textinput.New()
	input.Placeholder = "search title, artist or lyrics"
	input.Prompt = "/ "
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	input.CharLimit = 80
	if !m.animate {
		// a blinking cursor keeps a timer command in flight after every key
		input.Cursor.SetMode(cursor.CursorStatic)
	}
	input.Focus()
	m.search = &searchState{
		input:  input,
		picker: uistate.NewPicker(nil),
		songs:  map[string]catalog.Song{},
	}
	events.UI.Search(true)
	if m.animate {
		return tea.Batch(textinput.Blink, m.searchCmd(""))
	}
	return m.searchCmd("")
}

func (m *Model) closeSearch() {
	if m.search == nil {
		return
	}
	m.search = nil
	events.UI.Search(false)
}

// refreshSearch loads the latest results into the picker.
func (m *Model) refreshSearch() {
	s := m.search
	if s == nil {
		return
	}
	results := m.songs.Results()
	s.songs = make(map[string]catalog.Song, len(results))
	entries := make([]uistate.Entry, len(results))
	for i, song := range results {
		s.songs[song.ID] = song
		entries[i] = uistate.Entry{
			ID:    song.ID,
			Label: song.Label(),
			Terms: strings.Join(song.Genre, " "),
		}
	}
	s.picker.Replace(entries, m.songs.Query())
	s.suggest = nil
	query := m.songs.Query()
	if len(results) == 0 && query != "" {
		s.suggest = m.catalog.Suggest(query, suggestLimit)
	}
	events.Catalog.Search(query, len(results))
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	s := m.search
	switch msg.String() {
	case "esc":
		m.closeSearch()
		return nil
	case "ctrl+c":
		return tea.Quit
	case "up", "ctrl+p":
		s.picker.Move(-1)
		return nil
	case "down", "ctrl+n":
		s.picker.Move(1)
		return nil
	case "pgup":
		s.picker.Page(-1, m.searchListHeight())
		return nil
	case "pgdown":
		s.picker.Page(1, m.searchListHeight())
		return nil
	case "enter":
		return m.submitSearch()
	}
	var cmd tea.Cmd
	before := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.picker.SetQuery(s.input.Value())
	}
	return cmd
}

// submitSearch sends a changed query to the catalog, or picks the highlighted
// song when the query has already been searched. A blank query restores the
// popular list; it is never submitted as a search.
func (m *Model) submitSearch() tea.Cmd {
	s := m.search
	query := strings.TrimSpace(s.input.Value())
	if query != s.submitted {
		s.submitted = query
		return m.searchCmd(query)
	}
	item, ok := s.picker.Current()
	if !ok {
		return nil
	}
	song, ok := s.songs[item.ID]
	if !ok {
		return nil
	}
	m.closeSearch()
	return m.applySong(song)
}

func (m *Model) searchListHeight() int {
	h := m.bodyHeight() - 2
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) searchLines(width int) []styledLine {
	s := m.search
	lines := []styledLine{{text: s.input.View(), raw: true}}
	switch m.songs.SearchStatus() {
	case state.StatusLoading:
		label := "Searching…"
		if m.songs.Query() == "" {
			label = "Loading popular songs…"
		}
		lines = append(lines, styledLine{text: m.loadingText(label), raw: true})
		return lines
	case state.StatusFailed:
		lines = append(lines, styledLine{text: fmt.Sprintf("Search failed: %v", m.songs.SearchErr()), style: styles.Error})
		return lines
	}
	heading := "Popular songs"
	if q := m.songs.Query(); q != "" {
		heading = fmt.Sprintf("Results for %q", q)
	}
	lines = append(lines, styledLine{text: heading, style: styles.PanelTitle})
	if s.picker.Len() == 0 {
		msg := "(no songs)"
		if q := strings.TrimSpace(s.picker.Query()); q != "" {
			msg = fmt.Sprintf("No matches for %q", q)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
		if len(s.suggest) > 0 {
			titles := make([]string, len(s.suggest))
			for i, song := range s.suggest {
				titles[i] = song.Label()
			}
			lines = append(lines, styledLine{text: "Did you mean: " + strings.Join(titles, ", ") + "?", style: styles.Info})
		}
		return lines
	}
	start, end := s.picker.Window(m.searchListHeight())
	rows := songRows(s.picker.Entries(), s.songs)
	for i := start; i < end; i++ {
		lines = append(lines, buildItemLine(rows[i], i == s.picker.Cursor(), width))
	}
	return lines
}

// songRows formats picker entries as aligned columns.
func songRows(items []uistate.Entry, songs map[string]catalog.Song) []string {
	rows := make([][]string, len(items))
	for i, item := range items {
		song, ok := songs[item.ID]
		if !ok {
			rows[i] = []string{item.Label, "", "", "", ""}
			continue
		}
		rows[i] = []string{
			song.Title,
			song.Artist,
			strconv.Itoa(song.Year),
			strings.Join(song.Genre, ", "),
			strconv.Itoa(song.Popularity),
		}
	}
	return table.Format(rows, []table.Column{
		{Max: 28},
		{Max: 20},
		{Align: table.AlignRight},
		{Max: 18},
		{Align: table.AlignRight},
	})
}
