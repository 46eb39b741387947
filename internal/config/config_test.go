// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// DEFAULTS TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.Format != "csv" {
		t.Errorf("default export format = %q, want csv", cfg.Export.Format)
	}
	if cfg.Export.Dir != "." {
		t.Errorf("default export dir = %q, want .", cfg.Export.Dir)
	}
	if !cfg.Export.IncludeMetadata {
		t.Error("metadata should be included by default")
	}
	if !cfg.UI.Color {
		t.Error("color should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.Version != "1" || cfg.Export.Dir != "." || cfg.Export.Format != "csv" {
		t.Errorf("SetDefaults left zero values: %+v", cfg)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	for _, format := range []string{"csv", "json", "markdown", "md"} {
		cfg := Default()
		cfg.Export.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q should validate: %v", format, err)
		}
	}

	cfg := Default()
	cfg.Export.Format = "xlsx"
	if err := cfg.Validate(); err == nil {
		t.Error("format xlsx should not validate")
	}
}

// =============================================================================
// SAVE / LOAD TESTS
// =============================================================================

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Export.Dir = "/tmp/exports"
	cfg.Export.Format = "markdown"
	cfg.UI.Color = false
	cfg.Data.RosterFile = "/etc/roster.toml"
	require.NoError(t, SaveFile(cfg, path))

	loaded := Default()
	require.NoError(t, LoadFile(loaded, path))
	require.Equal(t, cfg.Export, loaded.Export)
	require.Equal(t, cfg.UI, loaded.UI)
	require.Equal(t, cfg.Data, loaded.Data)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := Default()
	err := LoadFile(cfg, filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

// =============================================================================
// ENV OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ACCESSMAP_EXPORT_DIR", "/srv/out")
	t.Setenv("ACCESSMAP_EXPORT_FORMAT", "json")
	t.Setenv("ACCESSMAP_ROSTER", "/srv/roster.toml")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	require.Equal(t, "/srv/out", cfg.Export.Dir)
	require.Equal(t, "json", cfg.Export.Format)
	require.Equal(t, "/srv/roster.toml", cfg.Data.RosterFile)
}

// =============================================================================
// ROSTER TESTS
// =============================================================================

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	content := `
[[user]]
name = "Alice Smith"
dept = "Engineering"
role = "Developer"
clearance = "High"

[[user]]
name = "Frank Liu"
dept = "Finance"
role = "Analyst"
clearance = "Low"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	inputs, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	require.Equal(t, "Alice Smith", inputs[0].Name)
	// Raw fields are preserved; the session normalizes later.
	require.Equal(t, "Engineering", inputs[0].Dept)
	require.Equal(t, "Low", inputs[1].Clearance)
}

func TestLoadRoster_Missing(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
