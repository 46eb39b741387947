// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// add_cmd.go - CLI command for adding a user to the session.
//
// Command: add
// Short:   Add a user and show its group placement
//
// With flags, the command is non-interactive. Without flags on a TTY, the
// missing fields are prompted for (readline-style input via liner).
//
// The session is in-memory: the add demonstrates group placement for this
// invocation. Use the interactive menu for a running session.
//
// Flags:
//   --name NAME            Display name (required; prompted if absent)
//   --dept DEPT            Department (default: unknown)
//   --role ROLE            Role (default: staff)
//   --clearance LEVEL      Clearance low/medium/high (default: low)
//
// Examples:
//   accessmap add --name "New Guy" --dept Eng --role Dev --clearance High
//   accessmap add                  Prompt for all fields (TTY only)
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/accessmap/internal/session"
)

// HandleAdd adds a user to a freshly seeded session and reports placement.
func HandleAdd(args Args) error {
	_, sess := mustLoad()

	name, dept, role, clearance := args.Name, args.Dept, args.Role, args.Clearance

	// Prompt for anything missing when we can.
	if strings.TrimSpace(name) == "" {
		if !CanPrompt() {
			return errors.New("add requires --name when stdin is not a terminal")
		}
		var err error
		name, dept, role, clearance, err = promptUserFields()
		if err != nil {
			return err
		}
	}

	u, created, err := sess.AddUser(name, dept, role, clearance)
	if err != nil {
		if errors.Is(err, session.ErrEmptyName) {
			return errors.New("name cannot be empty")
		}
		return err
	}

	if created {
		fmt.Printf("%s %s\n",
			SuccessStyle.Render("Created new group"),
			ValueStyle.Render(u.Key().String()))
	} else {
		fmt.Printf("%s %s\n",
			SuccessStyle.Render("Added to existing group"),
			ValueStyle.Render(u.Key().String()))
	}
	fmt.Printf("%s %s\n", LabelStyle.Render("User:"), ValueStyle.Render(u.String()))

	if !args.Quiet {
		fmt.Println(DimStyle.Render("Tiers are refreshed on the next recompute."))
	}
	return nil
}

// =============================================================================
// INTERACTIVE PROMPTS
// =============================================================================

// promptUserFields reads the four user fields interactively. Empty attribute
// answers fall back to session defaults; an aborted prompt (Ctrl+C) is an
// error and nothing is added.
func promptUserFields() (name, dept, role, clearance string, err error) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	prompt := func(label string) (string, error) {
		input, err := line.Prompt(label)
		if err != nil {
			if err == liner.ErrPromptAborted {
				return "", errors.New("aborted")
			}
			return "", err
		}
		return input, nil
	}

	if name, err = prompt("Name: "); err != nil {
		return "", "", "", "", err
	}
	if strings.TrimSpace(name) == "" {
		// Match AddUser's validation up front so the remaining prompts
		// are not wasted on a doomed add.
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Name cannot be empty."))
		return "", "", "", "", session.ErrEmptyName
	}
	if dept, err = prompt("Department: "); err != nil {
		return "", "", "", "", err
	}
	if role, err = prompt("Role: "); err != nil {
		return "", "", "", "", err
	}
	if clearance, err = prompt("Clearance (low/medium/high): "); err != nil {
		return "", "", "", "", err
	}
	return name, dept, role, clearance, nil
}
