// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// views.go - Read-only content renderers for the interactive menu.
package ui

import (
	"fmt"
	"strings"

	"github.com/jeranaias/accessmap/internal/classify"
	"github.com/jeranaias/accessmap/internal/model"
	"github.com/jeranaias/accessmap/internal/session"
	"github.com/jeranaias/accessmap/internal/util"
)

// tierStyled renders a permission tier label in its color.
func tierStyled(tier string) string {
	switch tier {
	case classify.TierLevel3:
		return tierL3Style.Render(tier)
	case classify.TierLevel2:
		return tierL2Style.Render(tier)
	case classify.TierLevel1:
		return tierL1Style.Render(tier)
	default:
		return dimStyle.Render(tier)
	}
}

// userLine renders one user row with a padded name column.
func userLine(u model.User, nameWidth int) string {
	return fmt.Sprintf("  %s  %s  %s",
		dimStyle.Render(fmt.Sprintf("%3d", u.ID)),
		normalStyle.Render(util.PadRight(util.TruncateWidth(u.Name, nameWidth), nameWidth)),
		dimStyle.Render(fmt.Sprintf("%s / %s / %s",
			util.TitleCase(u.Dept()), util.TitleCase(u.Role()), util.TitleCase(u.Clearance()))))
}

// nameWidth picks the name column width from the longest name.
func nameWidth(sess *session.Session) int {
	width := 12
	for u := range sess.Users() {
		if w := util.Width(u.Name); w > width {
			width = w
		}
	}
	if width > 40 {
		width = 40
	}
	return width
}

// renderUsers renders the full user list.
func renderUsers(sess *session.Session) string {
	var sb strings.Builder
	w := nameWidth(sess)
	for u := range sess.Users() {
		sb.WriteString(userLine(u, w))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("\n%d users", sess.UserCount())))
	return sb.String()
}

// renderGroups renders the grouping with permission tiers.
func renderGroups(sess *session.Session) string {
	var sb strings.Builder
	w := nameWidth(sess)
	for i, g := range sess.Groups() {
		tier, ok := sess.Permission(g.Key)
		if !ok {
			tier = "Level ? (not assigned)"
		}
		heading := fmt.Sprintf("Group %d: %s, %s, %s", i+1,
			util.TitleCase(g.Key.Dept), util.TitleCase(g.Key.Role), util.TitleCase(g.Key.Clearance))
		sb.WriteString(fmt.Sprintf("%s -> %s\n", sectionStyle.Render(heading), tierStyled(tier)))
		for _, u := range g.Members {
			sb.WriteString(userLine(u, w))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%d groups, %d users",
		sess.GroupCount(), sess.UserCount())))
	return sb.String()
}

// renderChecks renders the relation property report.
func renderChecks(sess *session.Session) string {
	property := func(name string, holds bool) string {
		status := successStyle.Render("true")
		if !holds {
			status = errorStyle.Render("false")
		}
		return fmt.Sprintf("  %-12s %s\n", name+":", status)
	}

	var sb strings.Builder
	sb.WriteString(property("Reflexive", sess.CheckReflexive()))
	sb.WriteString(property("Symmetric", classify.SymmetricHolds))
	sb.WriteString(property("Transitive", classify.TransitiveHolds))
	sb.WriteString(dimStyle.Render("\nEquality-based grouping is an equivalence relation by construction."))
	return sb.String()
}

// renderIDs renders the ID -> name listing.
func renderIDs(sess *session.Session) string {
	var sb strings.Builder
	for u := range sess.Users() {
		sb.WriteString(fmt.Sprintf("  %s -> %s\n",
			dimStyle.Render(fmt.Sprintf("%3d", u.ID)),
			normalStyle.Render(u.Name)))
	}
	return sb.String()
}
