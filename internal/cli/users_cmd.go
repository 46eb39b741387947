// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// users_cmd.go - CLI commands for listing users.
//
// Command: users
// Short:   List users in insertion order
// Aliases: list
//
// Command: ids
// Short:   List user IDs and names only
//
// Examples:
//   accessmap users               List users with attributes
//   accessmap ids                 Show ID -> name pairs
package cli

import (
	"fmt"
)

// HandleUsers lists all users in insertion order.
func HandleUsers(args Args) {
	_, sess := mustLoad()

	fmt.Println(TitleStyle.Render("Users"))

	nameWidth := nameColumnWidth(sess)
	for u := range sess.Users() {
		fmt.Println(renderUserLine(u, nameWidth))
	}

	if !args.Quiet {
		fmt.Println()
		fmt.Println(DimStyle.Render(fmt.Sprintf("%d users", sess.UserCount())))
	}
}

// HandleIDs lists user IDs mapped to display names.
func HandleIDs(args Args) {
	_, sess := mustLoad()

	fmt.Println(TitleStyle.Render("User IDs"))
	for u := range sess.Users() {
		fmt.Printf("  %s -> %s\n",
			DimStyle.Render(fmt.Sprintf("%3d", u.ID)),
			ValueStyle.Render(u.Name))
	}
}
