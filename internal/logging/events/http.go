package events

import (
	"time"

	"github.com/lyriclang/lyriclang/internal/logging"
)

type HTTPTracer struct{}

var HTTP = HTTPTracer{}

func (HTTPTracer) Request(method, path string, status int, elapsed time.Duration) {
	logging.Trace("http.request", map[string]interface{}{
		"method":  method,
		"path":    path,
		"status":  status,
		"elapsed": elapsed.String(),
	})
}
