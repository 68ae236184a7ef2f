package events

import (
	"time"

	"github.com/lyriclang/lyriclang/internal/logging"
)

type UITracer struct{}

type CommandTracer struct{}

type PlayerTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
	Player  = PlayerTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Scroll(offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"offset": offset})
}

func (UITracer) Search(open bool) {
	logging.Trace("ui.search", map[string]interface{}{"open": open})
}

func (UITracer) Cursor(line, seg int) {
	logging.Trace("ui.cursor", map[string]interface{}{"line": line, "segment": seg})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label, reason string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label, "reason": reason})
}

func (CommandTracer) Result(id, label, msgType string, elapsed time.Duration) {
	logging.Trace("command.result", map[string]interface{}{
		"id":      id,
		"label":   label,
		"msg":     msgType,
		"elapsed": elapsed.String(),
	})
}

func (PlayerTracer) Action(action string, position int, playing bool) {
	logging.Trace("player."+action, map[string]interface{}{"position": position, "playing": playing})
}
