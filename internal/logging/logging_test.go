package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestTraceWritesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("ignored.event", nil)
	SetTraceEnabled(true)
	Trace("panel.transition", map[string]interface{}{"to": "word"})
	Error(errors.New("lookup failed"))
	Close()

	entries := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
	if entries[0]["event"] != "panel.transition" {
		t.Fatalf("expected trace event, got %v", entries[0])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok || payload["to"] != "word" {
		t.Fatalf("expected payload to round trip, got %v", entries[0]["payload"])
	}
	if entries[1]["error"] != "lookup failed" {
		t.Fatalf("expected error entry, got %v", entries[1])
	}
}

func TestConfigureFallsBackToDefault(t *testing.T) {
	Configure("   ")
	if got := Path(); got != defaultPath() {
		t.Fatalf("expected default log path, got %q", got)
	}
}
