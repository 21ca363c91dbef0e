package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cfg.yaml")

	yamlData := `
board:
  size: 5
  win_target: 1024
database:
  path: /tmp/test.db
`
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, expected 5", cfg.Board.Size)
	}
	if cfg.Board.WinTarget != 1024 {
		t.Errorf("Board.WinTarget = %d, expected 1024", cfg.Board.WinTarget)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, expected /tmp/test.db", cfg.Database.Path)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and no user/local config in a test environment
	// without those files present falls back to the embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"size too small", func(c *Config) { c.Board.Size = 1 }, true},
		{"target not power of two", func(c *Config) { c.Board.WinTarget = 100 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, true},
		{"bigger board", func(c *Config) { c.Board.Size = 6 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}
