// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// csvHeader is the fixed column set of the flat tabular contract format.
var csvHeader = []string{"group_dept", "group_role", "group_clearance", "user_id", "user_name"}

// CSVExporter exports snapshots to the flat tabular contract format: one
// header row, then one row per group membership, ordered by group first-seen
// order and member insertion order. encoding/csv applies RFC 4180 quoting for
// fields containing delimiters, record separators, or quotes.
type CSVExporter struct {
	// Options are accepted for consistency with other exporters. The CSV
	// format is fixed and ignores the metadata toggle so that output always
	// round-trips to exactly the (key, user_id, user_name) tuples.
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CSVExporter{options: opts}
}

// Export converts a snapshot to CSV.
func (e *CSVExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, g := range snap.Groups {
		for _, m := range g.Members {
			row := []string{g.Dept, g.Role, g.Clearance, strconv.Itoa(m.ID), m.Name}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write row for user %d: %w", m.ID, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
