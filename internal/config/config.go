package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/lyriclang/lyriclang/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Settings Settings
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	InitDB  bool
}

// Settings holds the tunable timings. They come from the YAML file named by
// --config, with LYRICLANG_* variables taking precedence.
type Settings struct {
	Debounce      time.Duration `yaml:"debounce" env:"LYRICLANG_DEBOUNCE" env-default:"100ms"`
	ClearDelay    time.Duration `yaml:"clear_delay" env:"LYRICLANG_CLEAR_DELAY" env-default:"100ms"`
	Throttle      time.Duration `yaml:"throttle" env:"LYRICLANG_THROTTLE" env-default:"50ms"`
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"LYRICLANG_CACHE_TTL" env-default:"10m"`
	SearchLatency time.Duration `yaml:"search_latency" env:"LYRICLANG_SEARCH_LATENCY" env-default:"300ms"`
	SongLatency   time.Duration `yaml:"song_latency" env:"LYRICLANG_SONG_LATENCY" env-default:"100ms"`
	WordLatency   time.Duration `yaml:"word_latency" env:"LYRICLANG_WORD_LATENCY" env-default:"300ms"`
	VideoLatency  time.Duration `yaml:"video_latency" env:"LYRICLANG_VIDEO_LATENCY" env-default:"500ms"`
	HTTP          HTTP          `yaml:"http"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"LYRICLANG_HTTP_ADDR" env-default:":8080"`
}

const (
	envWidth      = "LYRICLANG_WIDTH"
	envHeight     = "LYRICLANG_HEIGHT"
	envShowFooter = "LYRICLANG_FOOTER"
	envVerbose    = "LYRICLANG_VERBOSE"
	envTrace      = "LYRICLANG_TRACE"
	envLogFile    = "LYRICLANG_LOG_FILE"
	envSong       = "LYRICLANG_SONG"
	envCatalogDB  = "LYRICLANG_CATALOG_DB"
	envConfigFile = "LYRICLANG_CONFIG"
	envEnvFile    = "LYRICLANG_ENV_FILE"
)

// Load reads a .env file, then parses configuration from CLI arguments and
// environment variables.
func Load() (Config, error) {
	if err := loadDotEnv(os.Getenv(envEnvFile)); err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], os.Environ())
}

// loadDotEnv merges path (default ".env") into the process environment
// without overriding variables that are already set. A missing default file
// is not an error.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lyriclang", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "report lookups in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	song := fs.String("song", envOrDefault(env, envSong, ""), "id of the song shown at startup")
	catalogDB := fs.String("catalog-db", envOrDefault(env, envCatalogDB, ""), "SQLite file to read the song catalog from")
	initDB := fs.Bool("init-db", false, "write the built-in songs into --catalog-db first")
	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "YAML settings file")
	addr := fs.String("addr", "", "HTTP listen address (overrides settings)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	settings, err := readSettings(*configFile)
	if err != nil {
		return Config{}, err
	}
	if *addr != "" {
		settings.HTTP.Addr = *addr
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			DefaultSong: *song,
			CatalogDB:   *catalogDB,
			InitDB:      *initDB,
			Timings:     settings.Timings(),
		},
		Settings: settings,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
			InitDB:  *initDB,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"song":      *song,
			"catalogDB": *catalogDB,
			"initDB":    strconv.FormatBool(*initDB),
			"config":    *configFile,
			"addr":      settings.HTTP.Addr,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readSettings(path string) (Settings, error) {
	var s Settings
	if path != "" {
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
		return s, nil
	}
	if err := cleanenv.ReadEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("read settings from environment: %w", err)
	}
	return s, nil
}

// Timings converts the settings into the app's timing block.
func (s Settings) Timings() app.Timings {
	return app.Timings{
		Debounce:      s.Debounce,
		ClearDelay:    s.ClearDelay,
		Throttle:      s.Throttle,
		CacheTTL:      s.CacheTTL,
		SearchLatency: s.SearchLatency,
		SongLatency:   s.SongLatency,
		WordLatency:   s.WordLatency,
		VideoLatency:  s.VideoLatency,
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the program cannot run with.
func Validate(cfg Config) error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"debounce", cfg.Settings.Debounce},
		{"clear_delay", cfg.Settings.ClearDelay},
		{"throttle", cfg.Settings.Throttle},
		{"cache_ttl", cfg.Settings.CacheTTL},
		{"search_latency", cfg.Settings.SearchLatency},
		{"song_latency", cfg.Settings.SongLatency},
		{"word_latency", cfg.Settings.WordLatency},
		{"video_latency", cfg.Settings.VideoLatency},
	}
	for _, d := range durations {
		if d.value < 0 {
			return fmt.Errorf("%s must be >= 0 (got %s)", d.name, d.value)
		}
	}
	if cfg.Features.InitDB && cfg.App.CatalogDB == "" {
		return errors.New("--init-db needs --catalog-db")
	}
	if strings.TrimSpace(cfg.Settings.HTTP.Addr) == "" {
		return errors.New("http address must not be empty")
	}
	return nil
}
