// Package config loads the scanner's YAML configuration.
//
// Config file locations (priority order):
//  1. $SUBTEXT_CONFIG
//  2. ./subtext.yaml
//  3. $XDG_CONFIG_HOME/subtext/config.yaml
//  4. ~/.config/subtext/config.yaml
//
// A missing file is not an error: every field has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config search entirely.
	EnvConfigPath = "SUBTEXT_CONFIG"

	configFileName = "subtext.yaml"
	configDirName  = "subtext"
)

// Config is the full runtime configuration.
type Config struct {
	// CollectivePath is where the collective snapshot lives. Empty disables
	// collective persistence (in-memory only).
	CollectivePath string `yaml:"collective_path"`

	// TrailPath is where crumb trail snapshots are written.
	TrailPath string `yaml:"trail_path"`

	// ArchivePath is the SQLite contribution archive. Empty disables it.
	ArchivePath string `yaml:"archive_path"`

	// SignalsPath optionally replaces the embedded signal tables with a
	// YAML file of the same shape.
	SignalsPath string `yaml:"signals_path"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.CollectivePath == "" {
		c.CollectivePath = "./collective.json"
	}
	if c.TrailPath == "" {
		c.TrailPath = "./trail.json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// FindConfigPath returns the first existing config file per the documented
// search order, or "" when none exists.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(configFileName) {
		if abs, err := filepath.Abs(configFileName); err == nil {
			return abs
		}
		return configFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, configDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", configDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
