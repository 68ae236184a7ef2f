package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lyriclang/lyriclang/internal/cache"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/logging"
	"github.com/lyriclang/lyriclang/internal/ui"
	"github.com/lyriclang/lyriclang/internal/videos"
)

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	DefaultSong string
	CatalogDB   string
	InitDB      bool
	Timings     Timings
}

// Timings are the debounce, throttle and simulated latency knobs.
type Timings struct {
	Debounce      time.Duration
	ClearDelay    time.Duration
	Throttle      time.Duration
	CacheTTL      time.Duration
	SearchLatency time.Duration
	SongLatency   time.Duration
	WordLatency   time.Duration
	VideoLatency  time.Duration
}

// Providers are the lookup services shared by the TUI and the HTTP API.
type Providers struct {
	Catalog    *catalog.Catalog
	Dictionary *cache.Dictionary
	Videos     *cache.Videos
	Cache      *cache.Store
}

// BuildProviders constructs the catalog, dictionary and video source. The
// catalog comes from CatalogDB when set, otherwise from the built-in songs.
func BuildProviders(ctx context.Context, cfg Config) (Providers, error) {
	t := cfg.Timings
	latency := catalog.WithLatency(t.SearchLatency, t.SongLatency)
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogDB != "" {
		if cfg.InitDB {
			if err := seedDatabase(ctx, cfg.CatalogDB); err != nil {
				return Providers{}, err
			}
		}
		cat, err = catalog.LoadSQLite(ctx, cfg.CatalogDB, latency)
		if err != nil {
			return Providers{}, fmt.Errorf("load catalog: %w", err)
		}
	} else {
		cat = catalog.Default(latency)
	}
	store := cache.New(t.CacheTTL)
	return Providers{
		Catalog:    cat,
		Dictionary: cache.NewDictionary(store, lexicon.Default(lexicon.WithLatency(t.WordLatency))),
		Videos:     cache.NewVideos(store, videos.NewSource(t.VideoLatency)),
		Cache:      store,
	}, nil
}

func seedDatabase(ctx context.Context, path string) error {
	db, err := catalog.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := catalog.SaveSQL(ctx, db, catalog.Seed()); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	return nil
}

// Options maps the configuration onto the UI model options.
func Options(cfg Config, p Providers) ui.Options {
	return ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		Catalog:     p.Catalog,
		Dictionary:  p.Dictionary,
		Videos:      p.Videos,
		DefaultSong: cfg.DefaultSong,
		Debounce:    cfg.Timings.Debounce,
		ClearDelay:  cfg.Timings.ClearDelay,
		Throttle:    cfg.Timings.Throttle,
		Animate:     true,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	providers, err := BuildProviders(context.Background(), cfg)
	if err != nil {
		return err
	}
	model := ui.NewModel(Options(cfg, providers))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		logging.Error(err)
	}
	return err
}
