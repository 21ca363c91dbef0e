package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last fallback when no config file is readable.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:      4,
			WinTarget: 2048,
		},
		Database: DatabaseConfig{
			Path: "~/.twenty48/twenty48.db",
		},
	}
}
