package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/player"
	"github.com/lyriclang/lyriclang/internal/selection"
	uistate "github.com/lyriclang/lyriclang/internal/ui/state"
)

type selectionSettleMsg struct {
	token selection.Token
}

type highlightClearMsg struct {
	token selection.Token
}

const wheelStep = 3

// syncLayout rewraps the lyrics whenever the column width changes.
func (m *Model) syncLayout() {
	if m.layout == nil {
		return
	}
	width := m.lyricsWidth()
	if width != m.layoutWidth {
		m.layoutWidth = width
		m.layout.Reflow(width)
	}
	if visible := m.lyricsHeight(); visible > 0 {
		m.layout.Scroll(0, visible)
	}
}

func (m *Model) applySong(song catalog.Song) tea.Cmd {
	m.songs.SetCurrent(song)
	m.layout = uistate.NewLayout(song.Lines(), m.lyricsWidth())
	m.layoutWidth = m.lyricsWidth()
	m.activeWord = nil
	m.hoverWord = nil
	m.cursorVisible = false
	m.resetSelection()
	m.banner = ""
	m.errMsg = ""
	m.player = player.New(m.songDuration)
	m.playerGen++
	events.Catalog.SongChanged(song.ID)
	from := m.router.State().Kind
	return m.applyEffects("song-change", from, m.router.Reset())
}

func (m *Model) resetSelection() {
	m.selection.Clear()
	m.pressed = false
	m.dragged = false
	m.pressWord = nil
	m.visual = false
	m.settle.Cancel()
	m.clear.Cancel()
}

// lyricsHit maps screen coordinates to an absolute layout row. Points left
// or right of the column clamp to it; rows outside the viewport do not hit.
func (m *Model) lyricsHit(x, y int) (row, col int, ok bool) {
	top := m.lyricsTop()
	visible := m.lyricsHeight()
	rel := y - top
	if rel < 0 {
		return 0, 0, false
	}
	if visible > 0 && rel >= visible {
		return 0, 0, false
	}
	row = m.layout.Offset + rel
	if row >= len(m.layout.Rows) {
		return 0, 0, false
	}
	return row, x, true
}

func (m *Model) insideLyrics(x, y int) bool {
	if m.search != nil {
		return false
	}
	if w := m.lyricsWidth(); w > 0 && x >= w {
		return false
	}
	_, _, ok := m.lyricsHit(x, y)
	return ok
}

// clampedLyricsRow keeps a drag tracking when the pointer leaves the
// viewport vertically.
func (m *Model) clampedLyricsRow(y int) int {
	rel := y - m.lyricsTop()
	visible := m.lyricsHeight()
	if rel < 0 {
		rel = 0
	}
	if visible > 0 && rel >= visible {
		rel = visible - 1
	}
	row := m.layout.Offset + rel
	if row >= len(m.layout.Rows) {
		row = len(m.layout.Rows) - 1
	}
	return row
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.search != nil {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp && m.overPanel(ev.X):
		m.scrollPanel(-wheelStep)
		return nil
	case ev.Button == tea.MouseButtonWheelDown && m.overPanel(ev.X):
		m.scrollPanel(wheelStep)
		return nil
	case ev.Button == tea.MouseButtonWheelUp:
		m.layout.Scroll(-wheelStep, m.lyricsHeight())
		events.UI.Scroll(m.layout.Offset)
		return nil
	case ev.Button == tea.MouseButtonWheelDown:
		m.layout.Scroll(wheelStep, m.lyricsHeight())
		events.UI.Scroll(m.layout.Offset)
		return nil
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || !m.insideLyrics(ev.X, ev.Y) {
			return nil
		}
		return m.pointerDown(ev.X, ev.Y)
	case tea.MouseActionMotion:
		if !m.pressed {
			m.hoverAt(ev.X, ev.Y)
			return nil
		}
		return m.pointerMove(ev.X, ev.Y)
	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		return m.pointerUp(ev.X, ev.Y)
	}
	return nil
}

// hoverAt tracks the word under a pointer that moves with no button held.
func (m *Model) hoverAt(x, y int) {
	var hover *uistate.WordRef
	if m.insideLyrics(x, y) {
		row, col, _ := m.lyricsHit(x, y)
		if ref, ok := m.layout.WordAt(row, col); ok {
			hover = &ref
		}
	}
	if hover == nil && m.hoverWord == nil {
		return
	}
	if hover != nil && m.hoverWord != nil && *hover == *m.hoverWord {
		return
	}
	m.hoverWord = hover
	if hover != nil {
		if seg, ok := m.layout.Segment(*hover); ok {
			events.Lyrics.WordHovered(seg.Text, hover.Line)
		}
	}
}

func (m *Model) pointerDown(x, y int) tea.Cmd {
	row, col, _ := m.lyricsHit(x, y)
	pos, ok := m.layout.PositionAt(row, col)
	if !ok {
		return nil
	}
	m.banner = ""
	m.visual = false
	m.settle.Cancel()
	m.clear.Cancel()
	m.selection = selection.Begin(pos)
	m.pressed = true
	m.dragged = false
	m.pressWord = nil
	if ref, ok := m.layout.WordAt(row, col); ok {
		m.pressWord = &ref
	}
	events.Lyrics.SelectionStarted(pos.Line, pos.Col)
	return nil
}

func (m *Model) pointerMove(x, y int) tea.Cmd {
	if !m.extendTo(x, y) {
		return nil
	}
	return m.armSettle()
}

func (m *Model) extendTo(x, y int) bool {
	row := m.clampedLyricsRow(y)
	if x < 0 {
		x = 0
	}
	pos, ok := m.layout.PositionAt(row, x)
	if !ok || !m.selection.Extend(pos) {
		return false
	}
	m.dragged = true
	return true
}

func (m *Model) pointerUp(x, y int) tea.Cmd {
	m.pressed = false
	if !m.dragged {
		ref := m.pressWord
		m.selection.Clear()
		m.pressWord = nil
		if ref == nil {
			return nil
		}
		if row, col, ok := m.lyricsHit(x, y); ok {
			if up, ok := m.layout.WordAt(row, col); !ok || up != *ref {
				return nil
			}
		}
		return m.clickWord(*ref)
	}
	m.extendTo(x, y)
	return m.armSettle()
}

func (m *Model) armSettle() tea.Cmd {
	token := m.settle.Reset()
	return tea.Tick(m.settle.Delay(), func(time.Time) tea.Msg {
		return selectionSettleMsg{token: token}
	})
}

func (m *Model) handleSelectionSettleMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(selectionSettleMsg)
	if !ok || !m.settle.Fire(settled.token) {
		return nil
	}
	if m.pressed {
		// still dragging; the release re-arms
		return nil
	}
	raw := m.selection.Text(m.layout.Lines)
	ev, err := selection.Capture(raw, time.Now())
	if err != nil {
		if errors.Is(err, lookup.ErrValidationSkip) {
			events.Lyrics.SelectionSkipped(err.Error())
		}
		m.selection.Clear()
		return nil
	}
	m.banner = ev.Text
	events.Lyrics.SelectionCaptured(ev.ID.String(), ev.Text, ev.Truncated)
	from := m.router.State().Kind
	cmds := []tea.Cmd{m.applyEffects("phrase-selected", from, m.router.PhraseSelected(ev.Text))}
	token := m.clear.Reset()
	cmds = append(cmds, tea.Tick(m.clear.Delay(), func(time.Time) tea.Msg {
		return highlightClearMsg{token: token}
	}))
	return tea.Batch(cmds...)
}

func (m *Model) handleHighlightClearMsg(msg tea.Msg) tea.Cmd {
	cleared, ok := msg.(highlightClearMsg)
	if !ok || !m.clear.Fire(cleared.token) {
		return nil
	}
	m.selection.Clear()
	return nil
}

func (m *Model) clickWord(ref uistate.WordRef) tea.Cmd {
	seg, ok := m.layout.Segment(ref)
	if !ok || !seg.Clickable() {
		return nil
	}
	m.activeWord = &ref
	m.layout.SetCursor(ref)
	events.Lyrics.WordClicked(seg.Text, ref.Line)
	from := m.router.State().Kind
	return m.applyEffects("word-clicked", from, m.router.WordClicked(seg.Text))
}

// startVisual anchors a keyboard selection on the cursor word.
func (m *Model) startVisual() {
	ref, ok := m.layout.Cursor()
	if !ok {
		return
	}
	m.banner = ""
	m.settle.Cancel()
	m.clear.Cancel()
	m.visual = true
	m.cursorVisible = true
	m.visualAnchor = ref
	m.extendVisual()
}

// extendVisual spans the selection from the anchor word to the cursor word,
// covering both words whole.
func (m *Model) extendVisual() {
	ref, ok := m.layout.Cursor()
	if !ok {
		return
	}
	aStart, aEnd, _ := m.layout.WordSpan(m.visualAnchor)
	cStart, cEnd, _ := m.layout.WordSpan(ref)
	if cStart.Before(aStart) {
		m.selection = selection.Range{Anchor: aEnd, Head: cStart, Active: true}
		return
	}
	m.selection = selection.Range{Anchor: aStart, Head: cEnd, Active: true}
}

func (m *Model) commitVisual() tea.Cmd {
	m.visual = false
	m.pressed = false
	return m.armSettle()
}

func (m *Model) cancelVisual() {
	m.visual = false
	m.selection.Clear()
	m.settle.Cancel()
}
