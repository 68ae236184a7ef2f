package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lyriclang/lyriclang/internal/lyrics"
	"github.com/lyriclang/lyriclang/internal/panel"
	"github.com/lyriclang/lyriclang/internal/player"
	"github.com/lyriclang/lyriclang/internal/selection"
	uistate "github.com/lyriclang/lyriclang/internal/ui/state"
	"github.com/muesli/reflow/truncate"
)

const (
	headerRows         = 3
	panelMinWidth      = 30  // below this the panel is drawn under the lyrics
	panelFraction      = 0.4 // fraction of total width given to the side panel
	lyricsMinWidth     = 20
	progressBarWidth   = 24
	footerHint         = "click: define  drag/v: videos  esc close  tab switch  [ ] browse  / songs  space play  q quit"
	panelGap           = " "
	verticalPanelLimit = 12
)

var (
	panelBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling; use ANSI-aware truncation
}

func (m *Model) panelOpen() bool {
	return m.search == nil && m.router.State().Kind != panel.Closed
}

// panelWidth returns the width of the side panel, or 0 when the panel is
// closed or the terminal is too narrow to split.
func (m *Model) panelWidth() int {
	if !m.panelOpen() || m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * panelFraction)
	if w < panelMinWidth {
		w = panelMinWidth
	}
	if m.width-w-len(panelGap) < lyricsMinWidth {
		return 0
	}
	return w
}

// lyricsWidth is the column width for the lyrics; 0 disables wrapping.
func (m *Model) lyricsWidth() int {
	if m.width <= 0 {
		return 0
	}
	if pw := m.panelWidth(); pw > 0 {
		return m.width - pw - len(panelGap)
	}
	return m.width
}

func (m *Model) lyricsTop() int {
	return headerRows
}

func (m *Model) bottomRows() int {
	rows := 2 // player bar + status
	if m.showFooter {
		rows++
	}
	return rows
}

// bodyHeight is the number of rows between header and bottom bar; 0 means
// unbounded.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - headerRows - m.bottomRows()
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) lyricsHeight() int {
	return m.bodyHeight()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(renderLines(applyWidth(m.headerLines(), m.width)))
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(renderLines(applyWidth(m.bottomLines(), m.width)))
	return b.String()
}

func (m *Model) headerLines() []styledLine {
	song, ok := m.CurrentSong()
	if !ok {
		return []styledLine{
			{text: m.loadingText("Loading song…"), raw: true},
			{},
			{},
		}
	}
	title := "♪ " + styles.Title.Render(song.Title) + styles.Subtitle.Render(" · "+song.Artist)
	lines := []styledLine{
		{text: title, raw: true},
		{text: song.Subtitle(), style: styles.Subtitle},
	}
	switch {
	case m.banner != "":
		lines = append(lines, styledLine{text: fmt.Sprintf("Selected: %q", m.banner), style: styles.Banner})
	case m.visual:
		lines = append(lines, styledLine{text: "-- VISUAL -- move to extend, enter to capture, esc to cancel", style: styles.Info})
	default:
		lines = append(lines, styledLine{})
	}
	return lines
}

func (m *Model) bodyView() string {
	height := m.bodyHeight()
	if m.search != nil {
		lines := m.searchLines(m.width)
		return renderLines(padLines(applyWidth(lines, m.width), height))
	}
	pw := m.panelWidth()
	if pw == 0 {
		return m.viewVertical(height)
	}
	left := m.lyricsRows(m.lyricsWidth(), height)
	panelH := len(left)
	if height == 0 && len(m.panelContent(pw-2))+2 > panelH {
		panelH = 0
	}
	right := m.renderPanel(pw, panelH)
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), panelGap, right)
}

// viewVertical draws the lyrics full width with the panel, if open, below.
func (m *Model) viewVertical(height int) string {
	var panelLines []string
	if m.panelOpen() {
		panelLines = append([]string{""}, m.panelContent(m.width)...)
		if len(panelLines) > verticalPanelLimit {
			panelLines = panelLines[:verticalPanelLimit]
		}
	}
	lyricsH := height
	if height > 0 {
		lyricsH = height - len(panelLines)
		if lyricsH < 1 {
			lyricsH = 1
		}
	}
	rows := m.lyricsRows(m.lyricsWidth(), lyricsH)
	rows = append(rows, panelLines...)
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// lyricsRows renders the visible window of wrapped lyrics, padded to width
// and height when they are set.
func (m *Model) lyricsRows(width, height int) []string {
	if !m.songs.HasCurrent() {
		return padRows(nil, width, height)
	}
	rows := m.layout.Rows
	start := m.layout.Offset
	if start > len(rows) {
		start = len(rows)
	}
	end := len(rows)
	if height > 0 && start+height < end {
		end = start + height
	}
	out := make([]string, 0, end-start)
	for _, row := range rows[start:end] {
		out = append(out, m.renderLyricRow(row))
	}
	return padRows(out, width, height)
}

func (m *Model) renderLyricRow(row uistate.Row) string {
	cursor, hasCursor := m.layout.Cursor()
	active := m.activeWord != nil && m.router.State().HasWord()
	var b strings.Builder
	for _, cell := range row.Cells {
		base := cellStyle(cell.Kind)
		if m.hoverWord != nil && cell.Ref == *m.hoverWord && cell.Kind == lyrics.Word {
			base = styles.HoverWord
		}
		if active && cell.Ref == *m.activeWord {
			base = styles.ActiveWord
		}
		if m.cursorVisible && hasCursor && cell.Ref == cursor && cell.Kind == lyrics.Word {
			base = styles.WordCursor
		}
		b.WriteString(m.renderCell(row.Line, cell, base))
	}
	return b.String()
}

// renderCell styles a cell, splitting it where the selection starts or
// stops.
func (m *Model) renderCell(line int, cell uistate.Cell, base *lipgloss.Style) string {
	runes := []rune(cell.Text)
	var b strings.Builder
	start := 0
	inSel := m.selection.Contains(selection.Position{Line: line, Col: cell.Col})
	flush := func(end int, selected bool) {
		if end <= start {
			return
		}
		chunk := string(runes[start:end])
		style := base
		if selected {
			style = styles.Selection
		}
		if style != nil {
			chunk = style.Render(chunk)
		}
		b.WriteString(chunk)
		start = end
	}
	for k := 1; k < len(runes); k++ {
		sel := m.selection.Contains(selection.Position{Line: line, Col: cell.Col + k})
		if sel != inSel {
			flush(k, inSel)
			inSel = sel
		}
	}
	flush(len(runes), inSel)
	return b.String()
}

func cellStyle(kind lyrics.Kind) *lipgloss.Style {
	switch kind {
	case lyrics.Word:
		return styles.Word
	case lyrics.Punctuation, lyrics.Other:
		return styles.Punctuation
	default:
		return nil
	}
}

func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{{text: m.playerBar(), raw: true}}
	switch {
	case m.errMsg != "":
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	case m.currentInfo() != "":
		lines = append(lines, styledLine{text: m.currentInfo(), style: styles.Info})
	default:
		lines = append(lines, styledLine{})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	return lines
}

func (m *Model) playerBar() string {
	p := m.player
	icon := "▶"
	if p.Playing {
		icon = "❚❚"
	}
	filled := int(p.Progress() * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := styles.Progress.Render(strings.Repeat("━", filled)) +
		styles.ProgressTrack.Render(strings.Repeat("─", progressBarWidth-filled))
	volume := fmt.Sprintf("vol %d", p.EffectiveVolume())
	if p.Muted {
		volume = "muted"
	}
	parts := []string{
		icon,
		player.FormatTime(p.Position),
		bar,
		player.FormatTime(p.Duration),
		volume,
	}
	if p.Repeat {
		parts = append(parts, "repeat")
	}
	if p.Shuffle {
		parts = append(parts, "shuffle")
	}
	return styles.PlayerBar.Render(strings.Join(parts[:2], " ")) + " " + strings.Join(parts[2:], " ")
}

func (m *Model) loadingText(label string) string {
	if m.animate {
		return m.spinner.View() + " " + label
	}
	return label
}

// buildItemLine constructs a picker row with a leading indicator
// bar. width pads the text so the cursor background spans the row.
func buildItemLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	var indicatorStyle *lipgloss.Style
	if selected {
		indicatorStyle = styles.ItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func padRows(rows []string, width, height int) []string {
	for height > 0 && len(rows) < height {
		rows = append(rows, "")
	}
	if width <= 0 {
		return rows
	}
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > width {
			rows[i] = truncate.StringWithTail(row, uint(width-1), "…")
		} else if w < width {
			rows[i] = row + strings.Repeat(" ", width-w)
		}
	}
	return rows
}

func padLines(lines []styledLine, height int) []styledLine {
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	return lines
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
