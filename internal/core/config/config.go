// Package config handles configuration loading and validation for starters.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/starters/internal/core/starters"
)

// Supported store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Starters StartersConfig `yaml:"starters"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Locale   string         `yaml:"locale"`
	TUI      TUIConfig      `yaml:"tui"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// StartersConfig holds the limits applied to conversation starter lists.
type StartersConfig struct {
	MaxCount  int `yaml:"max_count"`
	MaxLength int `yaml:"max_length"`
}

// StoreConfig selects where agents are persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"` // json or sqlite
}

// DatabaseConfig holds sqlite connection settings. Only used by the sqlite
// backend.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Starters: StartersConfig{
			MaxCount:  starters.DefaultMaxStarters,
			MaxLength: starters.DefaultMaxLength,
		},
		Store: StoreConfig{
			Backend: BackendJSON,
		},
		Database: DatabaseConfig{
			MaxOpenConns: 4,
			MaxIdleConns: 2,
			BusyTimeout:  5000,
		},
		Locale: "en-US",
		TUI: TUIConfig{
			Theme: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Starters.MaxCount == 0 {
		c.Starters.MaxCount = defaults.Starters.MaxCount
	}
	if c.Starters.MaxLength == 0 {
		c.Starters.MaxLength = defaults.Starters.MaxLength
	}
	if c.Store.Backend == "" {
		c.Store.Backend = defaults.Store.Backend
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Limits returns the starter list limits.
func (c *Config) Limits() starters.Limits {
	return starters.Limits{
		MaxStarters: c.Starters.MaxCount,
		MaxLength:   c.Starters.MaxLength,
	}
}

// AgentsFile returns the path of the JSON agent store.
func (c *Config) AgentsFile() string {
	return filepath.Join(c.DataDir, "agents.json")
}

// DatabaseFile returns the path of the sqlite agent store.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "starters.db")
}
