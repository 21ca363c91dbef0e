// Package config provides YAML-based configuration loading for the
// twenty48 platform.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Database DatabaseConfig `yaml:"database"`
}

// BoardConfig defines board parameters.
type BoardConfig struct {
	Size      int `yaml:"size"`       // Board dimension, minimum 2
	WinTarget int `yaml:"win_target"` // Tile value that triggers the win banner
}

// DatabaseConfig defines score/save persistence parameters.
type DatabaseConfig struct {
	Path string `yaml:"path"` // SQLite database path; ~ expands to home
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board size %d is below the minimum of 2", c.Board.Size)
	}
	if c.Board.WinTarget < 2 || c.Board.WinTarget&(c.Board.WinTarget-1) != 0 {
		return fmt.Errorf("config: win target %d is not a power of two", c.Board.WinTarget)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: database path is empty")
	}
	return nil
}
