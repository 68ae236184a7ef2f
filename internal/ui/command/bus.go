// Package command runs lookups and loads off the update loop as Bubble Tea
// commands, tracing each one.
package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/logging/events"
)

// Request is one unit of background work. When Ctx is already done by the
// time the command runs, Run is never called and the command yields nil.
type Request struct {
	ID    string
	Label string
	Ctx   context.Context
	Run   func() tea.Msg
}

// Bus turns requests into Bubble Tea commands.
type Bus struct {
	now func() time.Time
}

func New() *Bus {
	return &Bus{now: time.Now}
}

// Execute returns nil for a request with no Run func so callers can batch
// the result unconditionally.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label, "empty")
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Ctx != nil && req.Ctx.Err() != nil {
			events.Command.Skip(req.ID, req.Label, "cancelled")
			return nil
		}
		start := b.now()
		msg := req.Run()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg), b.now().Sub(start))
		return msg
	}
}
