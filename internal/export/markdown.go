// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports snapshots to Markdown format, one section per
// access group with a member table.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a snapshot to Markdown.
func (e *MarkdownExporter) Export(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	var sb strings.Builder

	sb.WriteString("# Access Groups\n\n")

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("- **Session**: %s\n", snap.SessionID))
		sb.WriteString(fmt.Sprintf("- **Exported**: %s\n", snap.TakenAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("- **Users**: %d\n", snap.UserCount))
		sb.WriteString(fmt.Sprintf("- **Groups**: %d\n\n", len(snap.Groups)))
		sb.WriteString("---\n\n")
	}

	for i, g := range snap.Groups {
		tier := g.Tier
		if tier == "" {
			tier = "Level ? (not assigned)"
		}
		sb.WriteString(fmt.Sprintf("## Group %d: %s, %s, %s\n\n", i+1, g.Dept, g.Role, g.Clearance))
		sb.WriteString(fmt.Sprintf("**Permission**: %s\n\n", tier))

		sb.WriteString("| ID | Name |\n")
		sb.WriteString("|----|------|\n")
		for _, m := range g.Members {
			sb.WriteString(fmt.Sprintf("| %d | %s |\n", m.ID, escapeMarkdown(m.Name)))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// escapeMarkdown escapes characters that would break table cells.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
