// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - CLI command for exporting access groups to a file.
//
// Command: export
// Short:   Export groups to CSV, JSON, or Markdown
// Aliases: save
//
// Flags:
//   --format FORMAT        csv, json, or markdown (default from config)
//   --output PATH          exact destination file (default: generated name)
//   --preview              render a Markdown preview to the terminal
//   --no-meta              omit the metadata header (json/markdown)
//
// Examples:
//   accessmap export                           CSV to ./groups_<ts>.csv
//   accessmap export --format markdown         Markdown with metadata
//   accessmap export --output groups_output.csv
//   accessmap export --format markdown --preview
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/accessmap/internal/export"
)

// HandleExport serializes the current grouping to the requested format.
func HandleExport(args Args) error {
	cfg, sess := mustLoad()

	// Tiers are part of the exported rows; refresh them first.
	sess.Recompute()
	snap := export.FromSession(sess)

	format := args.Format
	if format == "" {
		format = cfg.Export.Format
	}

	opts := export.DefaultOptions()
	opts.OutputDir = cfg.Export.Dir
	opts.OutputPath = args.Output
	opts.IncludeMetadata = cfg.Export.IncludeMetadata && !args.NoMeta

	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return err
	}

	if args.Preview {
		if err := previewMarkdown(snap, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s preview failed: %v\n", WarningStyle.Render("[Warning]"), err)
		}
	}

	path, err := export.ToFile(snap, exporter, opts)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("%s %s\n", SuccessStyle.Render("Saved groups to"), ValueStyle.Render(path))
	if !args.Quiet {
		fmt.Println(DimStyle.Render(fmt.Sprintf("%d groups, %d users, %s",
			len(snap.Groups), snap.UserCount, exporter.MimeType())))
	}
	return nil
}

// =============================================================================
// MARKDOWN PREVIEW
// =============================================================================

// previewMarkdown renders the Markdown form of the snapshot to the terminal.
func previewMarkdown(snap *export.Snapshot, opts *export.Options) error {
	content, err := export.NewMarkdownExporter(opts).Export(snap)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		// Fall back to plain markdown if the renderer is unavailable.
		fmt.Println(string(content))
		return nil
	}

	rendered, err := renderer.Render(string(content))
	if err != nil {
		fmt.Println(string(content))
		return nil
	}
	fmt.Print(rendered)
	return nil
}
