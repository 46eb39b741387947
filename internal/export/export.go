// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export.go - Exporter interface and file-writing entry point.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for group-snapshot exporters.
type Exporter interface {
	// Export converts a snapshot to the target format and returns the content.
	Export(snap *Snapshot) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".csv").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where generated files are saved.
	// Default: current working directory.
	OutputDir string

	// OutputPath, when set, overrides OutputDir and the generated filename
	// with an exact destination path.
	OutputPath string

	// IncludeMetadata includes a metadata header (session ID, timestamp,
	// counts) in formats that support one. The CSV contract format ignores
	// this and always writes exactly the header row plus data rows.
	IncludeMetadata bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ToFile exports a snapshot to a file using the given exporter. Returns the
// output file path. All failures wrap the underlying error; the snapshot and
// the session it came from are unaffected either way.
func ToFile(snap *Snapshot, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(snap)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename := fmt.Sprintf("groups_%s%s", timestamp, exporter.FileExtension())
		outputPath = filepath.Join(opts.OutputDir, filename)
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return outputPath, nil
}

// ForFormat returns the exporter matching a format name.
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv", "":
		return NewCSVExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want csv, json, or markdown)", format)
	}
}
