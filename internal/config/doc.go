// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for accessmap.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.accessmap/config.toml
//   - Built-in defaults
//
// Environment overrides:
//   - ACCESSMAP_EXPORT_DIR: overrides export.dir
//   - ACCESSMAP_EXPORT_FORMAT: overrides export.format
//   - ACCESSMAP_ROSTER: overrides data.roster_file
//   - NO_COLOR / FORCE_COLOR: handled by the terminal layer, not here
package config
