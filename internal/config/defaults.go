package config

import (
	_ "embed"
)

//go:embed defaults/tileflip.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			DefaultSize:      5,
			Sizes:            []int{3, 4, 5, 6, 7, 9, 11, 13, 15, 20, 50},
			MinSize:          2,
			MaxSize:          100,
			LargeSizeWarning: 75,
			SeedMax:          1_000_000,
		},
		Timer: TimerConfig{
			RefreshMS: 10,
		},
		Storage: StorageConfig{
			Path: "~/.tileflip/records.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
