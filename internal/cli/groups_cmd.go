// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// groups_cmd.go - CLI commands for showing and recomputing access groups.
//
// Command: groups
// Short:   Show access groups with permission tiers
// Aliases: show
//
// Command: recompute
// Short:   Rebuild groups and permission tiers from the user list
//
// Examples:
//   accessmap groups              Show groups, members, and tiers
//   accessmap recompute           Rebuild and report group/tier counts
package cli

import (
	"fmt"

	"github.com/jeranaias/accessmap/internal/session"
)

// HandleGroups shows the current grouping with permission tiers. Tiers are
// refreshed before display, matching the interactive menu behavior.
func HandleGroups(args Args) {
	_, sess := mustLoad()
	printGroups(sess, args.Quiet)
}

// printGroups recomputes tiers and renders the grouping. Shared with the
// recompute handler.
func printGroups(sess *session.Session, quiet bool) {
	sess.Recompute()

	fmt.Println(TitleStyle.Render("Access Groups"))

	nameWidth := nameColumnWidth(sess)
	for i, g := range sess.Groups() {
		tier, ok := sess.Permission(g.Key)
		if !ok {
			tier = "Level ? (not assigned)"
		}
		fmt.Printf("%s -> %s\n", renderGroupHeading(i+1, g.Key), tierStyle(tier))
		for _, u := range g.Members {
			fmt.Println(renderUserLine(u, nameWidth))
		}
		fmt.Println()
	}

	if !quiet {
		fmt.Println(DimStyle.Render(fmt.Sprintf("%d groups, %d users",
			sess.GroupCount(), sess.UserCount())))
	}
}

// HandleRecompute rebuilds the grouping and permission map and reports.
func HandleRecompute(args Args) {
	_, sess := mustLoad()

	sess.Recompute()

	fmt.Println(SuccessStyle.Render("Recomputed groups and permissions."))
	fmt.Printf("%s %s\n", LabelStyle.Render("Groups:"),
		ValueStyle.Render(fmt.Sprintf("%d", sess.GroupCount())))
	fmt.Printf("%s %s\n", LabelStyle.Render("Users:"),
		ValueStyle.Render(fmt.Sprintf("%d", sess.UserCount())))
}
