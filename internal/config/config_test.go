package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  default_size: 7\n  max_size: 60\ntimer:\n  refresh_ms: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.DefaultSize != 7 || cfg.Game.MaxSize != 60 {
		t.Errorf("game config = %+v", cfg.Game)
	}
	if cfg.Timer.Refresh() != 50*time.Millisecond {
		t.Errorf("Refresh() = %v, want 50ms", cfg.Timer.Refresh())
	}
	// Keys absent from the file keep their defaults.
	if cfg.Game.MinSize != 2 || cfg.Storage.Path != "~/.tileflip/records.db" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("game:\n  max_size: 1\n"), 0o600)
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min below 2", func(c *Config) { c.Game.MinSize = 1 }},
		{"max above 100", func(c *Config) { c.Game.MaxSize = 101 }},
		{"max below min", func(c *Config) { c.Game.MaxSize = 1 }},
		{"default outside", func(c *Config) { c.Game.DefaultSize = 200 }},
		{"preset outside", func(c *Config) { c.Game.Sizes = []int{3, 500} }},
		{"seed max", func(c *Config) { c.Game.SeedMax = 1 }},
		{"refresh", func(c *Config) { c.Timer.RefreshMS = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNextPreset(t *testing.T) {
	g := Default().Game
	tests := []struct {
		size, step, want int
	}{
		{5, 1, 6},
		{5, -1, 4},
		{50, 1, 3},  // wraps to first
		{3, -1, 50}, // wraps to last
		{8, 1, 9},   // custom size moves to next preset
		{8, -1, 7},
		{100, 1, 3},
	}
	for _, tc := range tests {
		if got := g.NextPreset(tc.size, tc.step); got != tc.want {
			t.Errorf("NextPreset(%d, %d) = %d, want %d", tc.size, tc.step, got, tc.want)
		}
	}
}

func TestGameLimits(t *testing.T) {
	g := Default().Game
	if g.Allows(1) || !g.Allows(2) || !g.Allows(100) || g.Allows(101) {
		t.Error("Allows() does not match [2, 100]")
	}
	if g.IsLarge(75) || !g.IsLarge(76) {
		t.Error("IsLarge() threshold should be above 75")
	}
}
