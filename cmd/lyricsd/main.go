// Command lyricsd serves the lyriclang lookups over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lyriclang/lyriclang/internal/api"
	"github.com/lyriclang/lyriclang/internal/app"
	"github.com/lyriclang/lyriclang/internal/config"
	"github.com/lyriclang/lyriclang/internal/logging"
	"github.com/lyriclang/lyriclang/internal/logging/events"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	events.App.Start(map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"settings": cfg.Settings,
	})
	err := run(cfg)
	events.App.Stop(err)
	if err != nil {
		logging.Error(err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := app.BuildProviders(ctx, cfg.App)
	if err != nil {
		return err
	}
	srv := api.New(api.Deps{
		Catalog:    providers.Catalog,
		Dictionary: providers.Dictionary,
		Videos:     providers.Videos,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Settings.HTTP.Addr)
	}()
	fmt.Fprintf(os.Stderr, "lyricsd listening on %s\n", cfg.Settings.HTTP.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	if err := srv.Shutdown(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
