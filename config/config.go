// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the helpers toolbelt.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. Locations, in order of precedence:
//   - an explicit path passed to LoadFromPath
//   - ~/.helpers/config.toml
//   - built-in defaults
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/dylarcher/helper-utils-sub001/host"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config holds the toolbelt's tunable settings.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Fetch   FetchConfig   `toml:"fetch"`
	Watch   WatchConfig   `toml:"watch"`
}

// StorageConfig configures the persistent key-value store.
type StorageConfig struct {
	// Path is the SQLite database file (default: ~/.helpers/storage.db)
	Path string `toml:"path"`
}

// FetchConfig configures the JSON fetch client.
type FetchConfig struct {
	// TimeoutSecs is the request timeout in seconds (default: 30)
	TimeoutSecs int `toml:"timeout_secs"`
	// UserAgent sent with every request (default: "helpers-fetch")
	UserAgent string `toml:"user_agent"`
}

// WatchConfig configures the filesystem watcher.
type WatchConfig struct {
	// DebounceMs is the settle window in milliseconds (default: 500)
	DebounceMs int `toml:"debounce_ms"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// fillDefaults replaces zero values with the built-in defaults.
func (c *Config) fillDefaults() {
	if c.Storage.Path == "" {
		if dir, err := ConfigDir(); err == nil {
			c.Storage.Path = filepath.Join(dir, "storage.db")
		} else {
			c.Storage.Path = filepath.Join(".", ".helpers", "storage.db")
		}
	}
	if c.Fetch.TimeoutSecs == 0 {
		c.Fetch.TimeoutSecs = 30
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "helpers-fetch"
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 500
	}
}

// ConfigDir returns the configuration directory (~/.helpers).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".helpers"), nil
}

// ConfigPath returns the default configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default location, falling back
// to defaults when no file exists, then applies environment overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path. A missing
// file is not an error; a malformed file is.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// ApplyEnvOverrides applies HELPERS_* environment variables over the
// loaded values. Unparseable numeric values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v, ok := os.LookupEnv("HELPERS_STORAGE_PATH"); ok && v != "" {
		c.Storage.Path = v
	}
	if v, ok := os.LookupEnv("HELPERS_FETCH_TIMEOUT_SECS"); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Fetch.TimeoutSecs = secs
		}
	}
	if v, ok := os.LookupEnv("HELPERS_FETCH_USER_AGENT"); ok && v != "" {
		c.Fetch.UserAgent = v
	}
	if v, ok := os.LookupEnv("HELPERS_WATCH_DEBOUNCE_MS"); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.Watch.DebounceMs = ms
		}
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default location atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration to an explicit path atomically.
func SaveToPath(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := host.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
