// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for accessmap.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdUsers
	CmdIDs
	CmdGroups
	CmdAdd
	CmdCheck
	CmdRecompute
	CmdExport
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet bool

	// Add command
	Name      string
	Dept      string
	Role      string
	Clearance string

	// Export command
	Format   string
	Output   string
	Preview  bool
	NoMeta   bool

	// Raw remaining arguments
	Raw []string
}

// Parse parses os.Args and returns the command with its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs parses raw arguments. Split out from Parse for testing.
func parseArgs(raw []string) (Command, Args) {
	var args Args

	// Global flags can appear anywhere before the command.
	remaining := make([]string, 0, len(raw))
	for _, arg := range raw {
		switch arg {
		case "--quiet", "-q":
			args.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}

	// No command defaults to the interactive TUI.
	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	parser := NewArgParser(remaining)

	switch cmd {
	case "tui", "menu":
		return CmdTUI, args

	case "users", "list":
		return CmdUsers, args

	case "ids":
		return CmdIDs, args

	case "groups", "show":
		return CmdGroups, args

	case "add":
		args.Name = parser.Flag("name")
		args.Dept = parser.Flag("dept")
		args.Role = parser.Flag("role")
		args.Clearance = parser.Flag("clearance")
		return CmdAdd, args

	case "check", "relations":
		return CmdCheck, args

	case "recompute":
		return CmdRecompute, args

	case "export", "save":
		args.Format = parser.Flag("format")
		args.Output = parser.Flag("output")
		args.Preview = parser.BoolFlag("preview")
		args.NoMeta = parser.BoolFlag("no-meta")
		return CmdExport, args

	case "version", "--version", "-v":
		return CmdVersion, args

	case "help", "--help", "-h":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// =============================================================================
// VERSION / HELP
// =============================================================================

// HandleVersion prints version information.
func HandleVersion(args Args) {
	fmt.Printf("accessmap %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage information.
func HandleHelp(args Args) {
	help := `accessmap - access-group classification for user records

Usage:
  accessmap [command] [flags]

Running with no command opens the interactive menu.

Commands:
  users            List users (alias: list)
  ids              List user IDs and names
  groups           Show access groups with permission tiers (alias: show)
  add              Add a user (flags or interactive prompts)
  check            Check equivalence-relation properties
  recompute        Rebuild groups and permission tiers
  export           Export groups to a file
  version          Show version information
  help             Show this help

Add flags:
  --name NAME
  --dept DEPT            (default: unknown)
  --role ROLE            (default: staff)
  --clearance LEVEL      low/medium/high (default: low)

Export flags:
  --format FORMAT        csv, json, or markdown (default from config)
  --output PATH          exact destination file
  --preview              render a Markdown preview to the terminal
  --no-meta              omit the metadata header (json/markdown)

Global flags:
  --quiet, -q            suppress non-essential output

Examples:
  accessmap                           Open the interactive menu
  accessmap groups                    Show groups and tiers
  accessmap add --name "New Guy"      Add with defaults for other fields
  accessmap add                       Prompted add (TTY only)
  accessmap export --format csv --output groups_output.csv
`
	fmt.Print(help)
}
