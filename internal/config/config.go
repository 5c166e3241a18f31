// Package config provides YAML-based configuration loading for TileFlip.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all TileFlip configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Timer   TimerConfig   `yaml:"timer"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig defines grid size presets and limits.
type GameConfig struct {
	DefaultSize      int   `yaml:"default_size"`
	Sizes            []int `yaml:"sizes"`              // Presets offered by [ and ]
	MinSize          int   `yaml:"min_size"`           // Smallest custom size
	MaxSize          int   `yaml:"max_size"`           // Largest custom size
	LargeSizeWarning int   `yaml:"large_size_warning"` // Sizes above this ask for confirmation
	SeedMax          int32 `yaml:"seed_max"`           // Fresh seeds are drawn from [1, seed_max)
}

// TimerConfig defines stopwatch display parameters.
type TimerConfig struct {
	RefreshMS int `yaml:"refresh_ms"` // Redraw interval while a game is running
}

// StorageConfig defines where records are persisted.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Refresh returns the stopwatch redraw interval.
func (c TimerConfig) Refresh() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that limits are consistent with each other.
func (c Config) Validate() error {
	g := c.Game
	if g.MinSize < 2 {
		return fmt.Errorf("%w: min_size %d is below 2", ErrInvalidConfig, g.MinSize)
	}
	if g.MaxSize < g.MinSize || g.MaxSize > 100 {
		return fmt.Errorf("%w: max_size %d must be between min_size %d and 100", ErrInvalidConfig, g.MaxSize, g.MinSize)
	}
	if !g.Allows(g.DefaultSize) {
		return fmt.Errorf("%w: default_size %d outside [%d, %d]", ErrInvalidConfig, g.DefaultSize, g.MinSize, g.MaxSize)
	}
	for _, size := range g.Sizes {
		if !g.Allows(size) {
			return fmt.Errorf("%w: preset size %d outside [%d, %d]", ErrInvalidConfig, size, g.MinSize, g.MaxSize)
		}
	}
	if g.SeedMax < 2 {
		return fmt.Errorf("%w: seed_max %d must be at least 2", ErrInvalidConfig, g.SeedMax)
	}
	if c.Timer.RefreshMS <= 0 {
		return fmt.Errorf("%w: refresh_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// Allows returns true if size is within the configured limits.
func (g GameConfig) Allows(size int) bool {
	return size >= g.MinSize && size <= g.MaxSize
}

// IsLarge returns true if size should be confirmed before use.
func (g GameConfig) IsLarge(size int) bool {
	return g.LargeSizeWarning > 0 && size > g.LargeSizeWarning
}

// NextPreset returns the preset after (step > 0) or before (step < 0) the
// given size, wrapping around. Sizes that are not presets move to the
// nearest preset in that direction.
func (g GameConfig) NextPreset(size, step int) int {
	if len(g.Sizes) == 0 {
		return size
	}
	if step > 0 {
		for _, s := range g.Sizes {
			if s > size {
				return s
			}
		}
		return g.Sizes[0]
	}
	for i := len(g.Sizes) - 1; i >= 0; i-- {
		if g.Sizes[i] < size {
			return g.Sizes[i]
		}
	}
	return g.Sizes[len(g.Sizes)-1]
}
