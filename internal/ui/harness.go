package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHarnessSteps bounds a single Send so a command that keeps re-arming
// itself cannot hang a test.
const maxHarnessSteps = 500

// Harness drives the UI model programmatically for integration tests.
// Commands run synchronously, so timers such as the selection debounce block
// for their full delay.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Init runs the model's startup commands.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	h.Run(h.model.Init())
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.drain([]tea.Msg{msg})
}

// Run executes cmd and feeds everything it produces back into the model.
func (h *Harness) Run(cmd tea.Cmd) {
	if h.model == nil || cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		h.drain([]tea.Msg{msg})
	}
}

func (h *Harness) drain(queue []tea.Msg) {
	for steps := 0; len(queue) > 0 && steps < maxHarnessSteps; steps++ {
		msg := queue[0]
		queue = queue[1:]
		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, cmd := range msg {
				if cmd == nil {
					continue
				}
				if next := cmd(); next != nil {
					queue = append(queue, next)
				}
			}
			continue
		case tea.QuitMsg:
			h.quit = true
			return
		case spinner.TickMsg:
			continue
		}
		mdl, cmd := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd == nil {
			continue
		}
		if next := cmd(); next != nil {
			queue = append(queue, next)
		}
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
