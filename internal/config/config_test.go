package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Player.Binary != "mpv" {
		t.Errorf("Player.Binary = %q, want %q", cfg.Player.Binary, "mpv")
	}
	if cfg.Defaults.Volume != 100 {
		t.Errorf("Defaults.Volume = %d, want 100", cfg.Defaults.Volume)
	}
	if cfg.Defaults.Repeat != "off" {
		t.Errorf("Defaults.Repeat = %q, want %q", cfg.Defaults.Repeat, "off")
	}
	if cfg.TUI.RefreshInterval != 500 {
		t.Errorf("TUI.RefreshInterval = %d, want 500", cfg.TUI.RefreshInterval)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Defaults: DefaultsConfig{Volume: 30, Repeat: "all"},
		TUI:      TUIConfig{RefreshInterval: 250},
	}
	cfg.ApplyDefaults()

	if cfg.Defaults.Volume != 30 {
		t.Errorf("Defaults.Volume = %d, want 30", cfg.Defaults.Volume)
	}
	if cfg.Defaults.Repeat != "all" {
		t.Errorf("Defaults.Repeat = %q, want %q", cfg.Defaults.Repeat, "all")
	}
	if cfg.TUI.RefreshInterval != 250 {
		t.Errorf("TUI.RefreshInterval = %d, want 250", cfg.TUI.RefreshInterval)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[catalog]
base_url = "https://catalog.example.com"

[defaults]
repeat = "one"
shuffle = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Catalog.BaseURL != "https://catalog.example.com" {
		t.Errorf("Catalog.BaseURL = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Defaults.Repeat != "one" {
		t.Errorf("Defaults.Repeat = %q, want %q", cfg.Defaults.Repeat, "one")
	}
	if !cfg.Defaults.Shuffle {
		t.Error("Defaults.Shuffle = false, want true")
	}
	// Unset sections still get defaults.
	if cfg.Player.Binary != "mpv" {
		t.Errorf("Player.Binary = %q, want %q", cfg.Player.Binary, "mpv")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CROON_PLAYER_BINARY", "/opt/mpv/bin/mpv")
	t.Setenv("CROON_TUI_REFRESH_INTERVAL", "750")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Player.Binary != "/opt/mpv/bin/mpv" {
		t.Errorf("Player.Binary = %q", cfg.Player.Binary)
	}
	if cfg.TUI.RefreshInterval != 750 {
		t.Errorf("TUI.RefreshInterval = %d, want 750", cfg.TUI.RefreshInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad repeat mode", func(c *Config) { c.Defaults.Repeat = "shuffle" }, true},
		{"volume out of range", func(c *Config) { c.Defaults.Volume = 150 }, true},
		{"bad theme", func(c *Config) { c.TUI.Theme = "solarized" }, true},
		{"bad base url scheme", func(c *Config) { c.Catalog.BaseURL = "ftp://example.com" }, true},
		{"negative tail interval", func(c *Config) { c.Tail.Interval = -1 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
