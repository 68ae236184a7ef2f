package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.Settings.Debounce != 100*time.Millisecond {
		t.Fatalf("expected 100ms debounce, got %s", cfg.Settings.Debounce)
	}
	if cfg.Settings.VideoLatency != 500*time.Millisecond {
		t.Fatalf("expected 500ms video latency, got %s", cfg.Settings.VideoLatency)
	}
	if cfg.Settings.HTTP.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Settings.HTTP.Addr)
	}
	if cfg.App.Timings.WordLatency != 300*time.Millisecond {
		t.Fatalf("expected timings copied into app config, got %+v", cfg.App.Timings)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envWidth + "=90",
		envSong + "=dua-lipa-levitating",
		envTrace + "=true",
	}
	cfg, err := LoadArgs([]string{"--width", "120", "--catalog-db", "songs.db", "--addr", ":9000"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag width 120, got %d", cfg.App.Width)
	}
	if cfg.App.DefaultSong != "dua-lipa-levitating" {
		t.Fatalf("expected song from env, got %q", cfg.App.DefaultSong)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.App.CatalogDB != "songs.db" {
		t.Fatalf("expected catalog db flag, got %q", cfg.App.CatalogDB)
	}
	if cfg.Settings.HTTP.Addr != ":9000" || cfg.Flags["addr"] != ":9000" {
		t.Fatalf("expected addr override, got %q", cfg.Settings.HTTP.Addr)
	}
}

func TestLoadArgsRejectsNegativeWidth(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestSettingsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyriclang.yml")
	body := "debounce: 250ms\nword_latency: 1s\nhttp:\n  addr: \":7070\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.Debounce != 250*time.Millisecond {
		t.Fatalf("expected 250ms debounce, got %s", cfg.Settings.Debounce)
	}
	if cfg.Settings.WordLatency != time.Second {
		t.Fatalf("expected 1s word latency, got %s", cfg.Settings.WordLatency)
	}
	if cfg.Settings.ClearDelay != 100*time.Millisecond {
		t.Fatalf("expected default clear delay, got %s", cfg.Settings.ClearDelay)
	}
	if cfg.Settings.HTTP.Addr != ":7070" {
		t.Fatalf("expected :7070, got %q", cfg.Settings.HTTP.Addr)
	}
}

func TestSettingsEnvironmentOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyriclang.yml")
	if err := os.WriteFile(path, []byte("debounce: 250ms\n"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("LYRICLANG_DEBOUNCE", "40ms")
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Settings.Debounce != 40*time.Millisecond {
		t.Fatalf("expected env debounce 40ms, got %s", cfg.Settings.Debounce)
	}
}

func TestMissingSettingsFileFails(t *testing.T) {
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, nil); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("LYRICLANG_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("LYRICLANG_TEST_DOTENV", "")
	os.Unsetenv("LYRICLANG_TEST_DOTENV")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("LYRICLANG_TEST_DOTENV"); got != "loaded" {
		t.Fatalf("expected value from env file, got %q", got)
	}
	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	bad := cfg
	bad.Settings.Throttle = -time.Second
	if err := Validate(bad); err == nil {
		t.Fatalf("expected negative throttle to fail")
	}

	initOnly, err := LoadArgs([]string{"--init-db"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(initOnly); err == nil {
		t.Fatalf("expected --init-db without --catalog-db to fail")
	}
}
