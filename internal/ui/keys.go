package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/panel"
)

type playerTickMsg struct {
	gen int
}

const volumeStep = 10

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.search != nil {
		return m.handleSearchKey(key)
	}
	switch key.String() {
	case "ctrl+c", "q":
		m.runner.Stop()
		return tea.Quit
	case "left", "h":
		return m.moveCursor(func() bool { return m.layout.MoveCursor(-1) })
	case "right", "l":
		return m.moveCursor(func() bool { return m.layout.MoveCursor(1) })
	case "up", "k":
		return m.moveCursor(func() bool { return m.layout.MoveCursorRows(-1) })
	case "down", "j":
		return m.moveCursor(func() bool { return m.layout.MoveCursorRows(1) })
	case "pgup":
		m.layout.Scroll(-m.lyricsHeight(), m.lyricsHeight())
	case "pgdown":
		m.layout.Scroll(m.lyricsHeight(), m.lyricsHeight())
	case "enter":
		if m.visual {
			return m.commitVisual()
		}
		ref, ok := m.layout.Cursor()
		if !ok {
			return nil
		}
		m.cursorVisible = true
		return m.clickWord(ref)
	case "v":
		if m.visual {
			m.cancelVisual()
			return nil
		}
		m.startVisual()
	case "esc":
		if m.visual {
			m.cancelVisual()
			return nil
		}
		from := m.router.State().Kind
		return m.applyEffects("close", from, m.router.CloseActive())
	case "tab":
		if m.router.ToggleTab() {
			m.panelOffset = 0
			events.Panel.Tab(m.router.State().ActiveTab.String())
		}
	case "1":
		m.setTab(panel.TabVideo)
	case "2":
		m.setTab(panel.TabWord)
	case "[":
		if c := m.visibleCarousel(); c != nil {
			c.Prev()
			m.panelOffset = 0
		}
	case "]":
		if c := m.visibleCarousel(); c != nil {
			c.Next()
			m.panelOffset = 0
		}
	case "J":
		m.scrollPanel(1)
	case "K":
		m.scrollPanel(-1)
	case "r":
		return m.retry()
	case "/":
		return m.openSearch()
	case " ":
		return m.togglePlay()
	case ",":
		m.player.SkipBackward()
		events.Player.Action("skip-back", m.player.Position, m.player.Playing)
	case ".":
		m.player.SkipForward()
		events.Player.Action("skip-forward", m.player.Position, m.player.Playing)
	case "+", "=":
		m.player.SetVolume(m.player.Volume + volumeStep)
	case "-":
		m.player.SetVolume(m.player.Volume - volumeStep)
	case "m":
		m.player.ToggleMute()
	case "R":
		m.player.Repeat = !m.player.Repeat
		m.setInfo(onOff("Repeat", m.player.Repeat))
	case "s":
		m.player.Shuffle = !m.player.Shuffle
		m.setInfo(onOff("Shuffle", m.player.Shuffle))
	}
	return nil
}

func (m *Model) setTab(tab panel.Tab) {
	if m.router.SetTab(tab) {
		m.panelOffset = 0
		events.Panel.Tab(tab.String())
	}
}

func onOff(label string, on bool) string {
	if on {
		return label + " on"
	}
	return label + " off"
}

func (m *Model) moveCursor(move func() bool) tea.Cmd {
	m.cursorVisible = true
	if !move() {
		return nil
	}
	m.layout.EnsureCursorVisible(m.lyricsHeight())
	if ref, ok := m.layout.Cursor(); ok {
		events.UI.Cursor(ref.Line, ref.Seg)
	}
	if m.visual {
		m.extendVisual()
	}
	return nil
}

func (m *Model) togglePlay() tea.Cmd {
	m.player.Toggle()
	events.Player.Action("toggle", m.player.Position, m.player.Playing)
	if !m.player.Playing {
		return nil
	}
	m.playerGen++
	return m.playerTickCmd()
}

func (m *Model) playerTickCmd() tea.Cmd {
	gen := m.playerGen
	return tea.Tick(m.playerTick, func(time.Time) tea.Msg {
		return playerTickMsg{gen: gen}
	})
}

// handlePlayerTickMsg advances playback. Ticks from an earlier play or song
// are dropped so only one ticker runs.
func (m *Model) handlePlayerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(playerTickMsg)
	if !ok || tick.gen != m.playerGen || !m.player.Playing {
		return nil
	}
	if !m.player.Tick() {
		return nil
	}
	return m.playerTickCmd()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
