package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("VED_CONFIG_HOME", "/tmp/ved-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/ved-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/ved-config")
	}

	t.Setenv("VED_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/ved" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/ved")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("VED_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.LeaderKey != "space" {
		t.Fatalf("LeaderKey = %q, want %q", cfg.Editor.LeaderKey, "space")
	}
	if cfg.Editor.PaletteLimit != 50 {
		t.Fatalf("PaletteLimit = %d, want 50", cfg.Editor.PaletteLimit)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VED_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
leader-key = ","
palette-limit = 10

[theme]
foreground = "#111111"
statusline-background = "#222222"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.LeaderKey != "," {
		t.Fatalf("LeaderKey = %q, want %q", cfg.Editor.LeaderKey, ",")
	}
	if cfg.Editor.PaletteLimit != 10 {
		t.Fatalf("PaletteLimit = %d, want 10", cfg.Editor.PaletteLimit)
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.StatuslineBackground != "#222222" {
		t.Fatalf("StatuslineBackground = %q, want %q", cfg.Theme.StatuslineBackground, "#222222")
	}
	// Untouched fields keep their defaults.
	if cfg.Theme.Background != Default().Theme.Background {
		t.Fatalf("Background = %q, want default %q", cfg.Theme.Background, Default().Theme.Background)
	}
}
