package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/panel"
	"github.com/lyriclang/lyriclang/internal/state"
	"github.com/lyriclang/lyriclang/internal/videos"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const exampleIndent = 3

// visibleCarousel returns the carousel when the video side is on screen and
// loaded.
func (m *Model) visibleCarousel() *videos.Carousel {
	st := m.router.State()
	if !st.HasVideo() || st.Visible() != panel.TabVideo {
		return nil
	}
	if m.videos.Status() != state.StatusReady {
		return nil
	}
	return m.videos.Carousel()
}

func (m *Model) overPanel(x int) bool {
	pw := m.panelWidth()
	return pw > 0 && x >= m.lyricsWidth()+len(panelGap)
}

func (m *Model) scrollPanel(delta int) {
	if !m.panelOpen() {
		return
	}
	m.panelOffset += delta
	if m.panelOffset < 0 {
		m.panelOffset = 0
	}
}

func (m *Model) panelTitle() string {
	st := m.router.State()
	if st.Visible() == panel.TabWord {
		return "Word: " + st.Word
	}
	return fmt.Sprintf("Videos: %q", st.Phrase)
}

// panelContent returns the styled body rows for the visible panel side.
func (m *Model) panelContent(width int) []string {
	st := m.router.State()
	var lines []string
	if st.Kind == panel.Both {
		lines = append(lines, tabBar(st.ActiveTab), "")
	}
	if st.Visible() == panel.TabWord {
		return append(lines, m.wordLines(width)...)
	}
	return append(lines, m.videoLines(width)...)
}

func tabBar(active panel.Tab) string {
	render := func(tab panel.Tab, label string) string {
		if tab == active {
			return styles.ActiveTab.Render(label)
		}
		return styles.Tab.Render(label)
	}
	return render(panel.TabVideo, "1 Videos") + " " + render(panel.TabWord, "2 Word")
}

func (m *Model) wordLines(width int) []string {
	switch m.words.Status() {
	case state.StatusIdle:
		return nil
	case state.StatusLoading:
		return []string{m.loadingText(fmt.Sprintf("Looking up %q…", m.words.Key()))}
	case state.StatusFailed:
		return failureLines(m.words.Err(), m.words.Key(), width)
	}
	res, ok := m.words.Result()
	if !ok {
		return nil
	}
	e := res.Entry
	head := styles.PanelTitle.Render(e.Word)
	if e.Pronunciation != "" {
		head += " " + styles.PanelMuted.Render(e.Pronunciation)
	}
	lines := []string{head}
	accents := make([]string, 0, 3)
	for _, v := range lexicon.Variants(e.Word) {
		accents = append(accents, strings.ToUpper(v.Code)+" "+v.IPA)
	}
	lines = append(lines, wrapStyled(strings.Join(accents, "  "), width, styles.PanelMuted)...)
	if !res.Found {
		lines = append(lines, "")
		lines = append(lines, wrapStyled("Not in the dictionary yet; showing a placeholder.", width, styles.PanelMuted)...)
	}
	for _, meaning := range e.Meanings {
		lines = append(lines, "", styles.Info.Render(meaning.PartOfSpeech))
		for i, def := range meaning.Definitions {
			lines = append(lines, wrapStyled(fmt.Sprintf("%d. %s", i+1, def.Text), width, styles.PanelBody)...)
			if def.Example != "" {
				lines = append(lines, indentStyled(fmt.Sprintf("%q", def.Example), width, styles.PanelMuted)...)
			}
			if len(def.Synonyms) > 0 {
				lines = append(lines, indentStyled("Synonyms: "+strings.Join(def.Synonyms, ", "), width, styles.PanelMuted)...)
			}
		}
	}
	if e.Etymology != "" {
		lines = append(lines, "")
		lines = append(lines, wrapStyled("Origin: "+e.Etymology, width, styles.PanelMuted)...)
	}
	if res.ImageURL != "" {
		lines = append(lines, "", styles.PanelMuted.Render("Image: ")+res.ImageURL)
	}
	return lines
}

func (m *Model) videoLines(width int) []string {
	switch m.videos.Status() {
	case state.StatusIdle:
		return nil
	case state.StatusLoading:
		return []string{m.loadingText(fmt.Sprintf("Finding videos for %q…", m.videos.Key()))}
	case state.StatusFailed:
		return failureLines(m.videos.Err(), m.videos.Key(), width)
	}
	c := m.videos.Carousel()
	v, ok := c.Current()
	if !ok {
		return wrapStyled(fmt.Sprintf("No videos found for %q", m.videos.Key()), width, styles.PanelMuted)
	}
	lines := []string{styles.PanelMuted.Render(fmt.Sprintf("Video %d/%d  [ ] browse", c.Index()+1, c.Len())), ""}
	lines = append(lines, wrapStyled(v.Title, width, styles.PanelTitle)...)
	lines = append(lines, styles.PanelMuted.Render(v.Channel+" · at "+v.TimestampLabel()))
	lines = append(lines, "")
	lines = append(lines, wrapStyled(v.Description, width, styles.PanelBody)...)
	lines = append(lines, "", v.WatchURL())
	return lines
}

func failureLines(err error, key string, width int) []string {
	var msg string
	switch {
	case errors.Is(err, lookup.ErrNotFound):
		msg = fmt.Sprintf("Nothing found for %q", key)
	default:
		msg = fmt.Sprintf("Lookup failed: %v", err)
	}
	lines := wrapStyled(msg, width, styles.Error)
	if lookup.Retryable(err) {
		lines = append(lines, styles.PanelMuted.Render("press r to retry"))
	}
	return lines
}

// wrapStyled word-wraps text to width, hard-wrapping words that still do
// not fit, and styles each resulting row.
func wrapStyled(text string, width int, style *lipgloss.Style) []string {
	if width > 0 {
		text = wrap.String(wordwrap.String(text, width), width)
	}
	rows := strings.Split(text, "\n")
	if style == nil {
		return rows
	}
	for i, row := range rows {
		rows[i] = style.Render(row)
	}
	return rows
}

func indentStyled(text string, width int, style *lipgloss.Style) []string {
	inner := width - exampleIndent
	if width > 0 && inner < 1 {
		inner = 1
	}
	rows := wrapStyled(text, inner, style)
	return strings.Split(indent.String(strings.Join(rows, "\n"), exampleIndent), "\n")
}

// renderPanel builds the bordered side panel as exactly height rows of
// totalWidth columns. height 0 sizes the panel to its content.
func (m *Model) renderPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	if innerW < 1 {
		innerW = 1
	}
	content := m.panelContent(innerW)
	if height <= 0 {
		height = len(content) + 2
	}
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}

	maxOffset := len(content) - innerH
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.panelOffset > maxOffset {
		m.panelOffset = maxOffset
	}
	end := m.panelOffset + innerH
	if end > len(content) {
		end = len(content)
	}
	visible := content[m.panelOffset:end]
	scrollInfo := ""
	if len(content) > innerH {
		scrollInfo = fmt.Sprintf(" %d/%d ", end, len(content))
	}

	titleSeg := " " + m.panelTitle() + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg) - len([]rune(scrollInfo))
	if dashes < 0 {
		scrollInfo = ""
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(totalWidth-5), "… ")
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := panelBorderStyle.Render(tlc+hz) +
		styles.PanelTitle.Render(titleSeg) +
		panelBorderStyle.Render(strings.Repeat(hz, dashes)) +
		panelScrollStyle.Render(scrollInfo) +
		panelBorderStyle.Render(hz+trc)
	bottomLine := panelBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var row string
		if i < len(visible) {
			row = visible[i]
		}
		w := lipgloss.Width(row)
		if w > innerW {
			row = truncate.StringWithTail(row, uint(innerW-1), "…")
			w = lipgloss.Width(row)
		}
		if w < innerW {
			row += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, panelBorderStyle.Render(vt)+row+panelBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}
