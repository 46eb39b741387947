// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export serializes access-group snapshots to flat tabular and
// document formats.
//
// CSV is the contract format: one header row, one data row per group
// membership, ordered by group first-seen order then member insertion order,
// with RFC 4180 quoting. JSON and Markdown exporters are provided for
// machine-readable and human-readable output respectively.
//
// # Key Types
//
//   - Snapshot: Exportable view of a session's grouping (see FromSession)
//   - Exporter: Format interface (Export, FileExtension, MimeType)
//   - Options: Export configuration (output directory, metadata header)
//
// # Usage
//
// Export a session's groups to CSV:
//
//	snap := export.FromSession(sess)
//	path, err := export.ToFile(snap, export.NewCSVExporter(nil), nil)
//
// Exports never touch session state; a failed export leaves everything
// in memory intact.
package export
