package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lyriclang/lyriclang/internal/app"
	"github.com/lyriclang/lyriclang/internal/config"
	"github.com/lyriclang/lyriclang/internal/logging"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	tty := probeTerminal()
	events.App.Start(startupTracePayload(cfg, tty))
	if tty.Detected == nil {
		events.App.Stop(errNoTerminal)
		logging.Close()
		fmt.Fprintln(os.Stderr, "lyriclang needs an interactive terminal; use lyricsd to serve the HTTP API instead")
		os.Exit(1)
	}

	err := app.Run(cfg.App)
	events.App.Stop(err)
	if err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errNoTerminal = errors.New("no terminal on stdin, stdout or stderr")

func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"song":     cfg.App.DefaultSong,
		"catalog":  catalogSource(cfg.App),
		"settings": cfg.Settings,
		"tty":      tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

func catalogSource(cfg app.Config) string {
	if cfg.CatalogDB == "" {
		return "builtin"
	}
	return cfg.CatalogDB
}

type ttyDetails struct {
	Detected *ttySize         `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the standard descriptors in order and records the
// size of the first one that is a terminal.
func probeTerminal() ttyDetails {
	var out ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		fd := int(f.Fd())
		probe := ttyProbeResult{Name: f.Name(), IsTerminal: term.IsTerminal(fd)}
		if probe.IsTerminal && out.Detected == nil {
			if w, h, err := term.GetSize(fd); err != nil {
				probe.Error = err.Error()
			} else {
				out.Detected = &ttySize{Source: probe.Name, Width: w, Height: h}
			}
		}
		out.Probes = append(out.Probes, probe)
	}
	return out
}
