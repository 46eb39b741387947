// accessmap - Classify users into access groups by shared attributes.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessmap/internal/cli"
	"github.com/jeranaias/accessmap/internal/config"
	"github.com/jeranaias/accessmap/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runMenu(args)
	case cli.CmdUsers:
		cli.HandleUsers(args)
	case cli.CmdIDs:
		cli.HandleIDs(args)
	case cli.CmdGroups:
		cli.HandleGroups(args)
	case cli.CmdAdd:
		if err := cli.HandleAdd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdCheck:
		cli.HandleCheck(args)
	case cli.CmdRecompute:
		cli.HandleRecompute(args)
	case cli.CmdExport:
		if err := cli.HandleExport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	default:
		cli.HandleHelp(args)
	}
}

// runMenu launches the interactive bubbletea menu.
func runMenu(args cli.Args) {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal (try 'accessmap help')")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cli.ApplyColorPreference(cfg)

	sess, err := cli.LoadSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewModel(sess, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
