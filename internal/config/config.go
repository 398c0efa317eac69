// Package config loads folio pipeline configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where folio looks for configuration when no --config flag is
// given.
const DefaultPath = "folio.yaml"

// FolderDef declares one asset folder to discover and load.
type FolderDef struct {
	// Name labels the folder in output and history (e.g. "spells").
	Name string `yaml:"name"`
	// Path is the directory to enumerate, non-recursively.
	Path string `yaml:"path"`
	// Suffix is the full filename tail to match, including the leading dot
	// (e.g. ".spell.yaml").
	Suffix string `yaml:"suffix"`
}

// HistoryConfig configures the load-cycle report store.
type HistoryConfig struct {
	// Enabled records a report row after every load cycle.
	Enabled bool `yaml:"enabled"`
	// DBPath is the SQLite database path (":memory:" for ephemeral).
	DBPath string `yaml:"db_path"`
}

// Config represents folio configuration options.
type Config struct {
	// LogLevel sets logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Parallelism bounds concurrent asset file reads (0 = loader default).
	Parallelism int `yaml:"parallelism"`
	// History configures the report store.
	History HistoryConfig `yaml:"history"`
	// Folders lists the asset folders to load.
	Folders []FolderDef `yaml:"folders"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Parallelism: 0,
		History: HistoryConfig{
			Enabled: true,
			DBPath:  ".folio/history.db",
		},
	}
}

// Load reads configuration from path. A missing file yields defaults without
// error; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks folder definitions for the mistakes that would otherwise
// surface as silently empty load cycles.
func (c *Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be >= 0, got %d", c.Parallelism)
	}
	seen := make(map[string]bool)
	for i, f := range c.Folders {
		if f.Path == "" {
			return fmt.Errorf("folder %d (%q): path is required", i, f.Name)
		}
		if f.Suffix == "" {
			return fmt.Errorf("folder %d (%q): suffix is required", i, f.Name)
		}
		if !strings.HasPrefix(f.Suffix, ".") {
			return fmt.Errorf("folder %d (%q): suffix must start with a dot, got %q", i, f.Name, f.Suffix)
		}
		if f.Name != "" && seen[f.Name] {
			return fmt.Errorf("duplicate folder name %q", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
