// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - TOML configuration with defaults, env overrides, validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete accessmap configuration.
type Config struct {
	// Version is the config schema version.
	Version string `toml:"version"`

	// Export configuration
	Export ExportConfig `toml:"export"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Data configuration
	Data DataConfig `toml:"data"`
}

// UIConfig contains terminal-output preferences.
type UIConfig struct {
	// Color enables colored output. NO_COLOR and non-TTY detection still
	// disable colors regardless of this setting.
	Color bool `toml:"color"`
}

// ExportConfig contains export defaults.
type ExportConfig struct {
	// Dir is the default directory for generated export files.
	Dir string `toml:"dir"`
	// Format is the default export format: "csv", "json", or "markdown".
	Format string `toml:"format"`
	// IncludeMetadata includes a metadata header in formats that support one.
	IncludeMetadata bool `toml:"include_metadata"`
}

// DataConfig controls where the initial roster comes from.
type DataConfig struct {
	// RosterFile is a TOML roster of users to seed the session with.
	// Empty means the built-in demo roster.
	RosterFile string `toml:"roster_file"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Export: ExportConfig{
			Dir:             ".",
			Format:          "csv",
			IncludeMetadata: true,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the accessmap config directory (~/.accessmap).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".accessmap"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, applies environment overrides, and validates.
// A missing config file is not an error; defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadFile(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes a TOML config file over cfg.
func LoadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save writes the configuration to the default TOML path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile writes the configuration to a TOML file.
func SaveFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# accessmap configuration file")
	fmt.Fprintln(file, "# Generated by accessmap - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// OVERRIDES / VALIDATION
// =============================================================================

// ApplyEnvOverrides applies ACCESSMAP_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("ACCESSMAP_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if format := os.Getenv("ACCESSMAP_EXPORT_FORMAT"); format != "" {
		c.Export.Format = format
	}
	if roster := os.Getenv("ACCESSMAP_ROSTER"); roster != "" {
		c.Data.RosterFile = roster
	}
}

// SetDefaults fills any zero-valued fields with defaults.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	if c.Export.Format == "" {
		c.Export.Format = "csv"
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	switch c.Export.Format {
	case "csv", "json", "markdown", "md":
		return nil
	default:
		return fmt.Errorf("export.format %q is not one of csv, json, markdown", c.Export.Format)
	}
}
