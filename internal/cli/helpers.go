// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared helpers for accessmap CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/accessmap/internal/classify"
	"github.com/jeranaias/accessmap/internal/config"
	"github.com/jeranaias/accessmap/internal/model"
	"github.com/jeranaias/accessmap/internal/session"
	"github.com/jeranaias/accessmap/internal/util"
)

// LoadSession builds a session from the configured roster, falling back to
// the built-in demo roster when none is configured.
func LoadSession(cfg *config.Config) (*session.Session, error) {
	if cfg.Data.RosterFile != "" {
		inputs, err := config.LoadRoster(cfg.Data.RosterFile)
		if err != nil {
			return nil, fmt.Errorf("load roster: %w", err)
		}
		return session.New(inputs), nil
	}
	return session.New(session.DemoInputs()), nil
}

// mustLoad loads config and session, exiting with a styled error on failure.
func mustLoad() (*config.Config, *session.Session) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}
	ApplyColorPreference(cfg)
	sess, err := LoadSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}
	return cfg, sess
}

// =============================================================================
// RENDERING HELPERS
// =============================================================================

// tierStyle returns the style for a permission tier label.
func tierStyle(tier string) string {
	switch tier {
	case classify.TierLevel3:
		return tierLevel3Style.Render(tier)
	case classify.TierLevel2:
		return tierLevel2Style.Render(tier)
	case classify.TierLevel1:
		return tierLevel1Style.Render(tier)
	default:
		return DimStyle.Render(tier)
	}
}

// renderUserLine renders one user as a padded table row.
func renderUserLine(u model.User, nameWidth int) string {
	return fmt.Sprintf("  %s  %s  %s",
		DimStyle.Render(fmt.Sprintf("%3d", u.ID)),
		ValueStyle.Render(util.PadRight(util.TruncateWidth(u.Name, nameWidth), nameWidth)),
		DimStyle.Render(fmt.Sprintf("%s / %s / %s",
			util.TitleCase(u.Dept()), util.TitleCase(u.Role()), util.TitleCase(u.Clearance()))))
}

// renderGroupHeading renders a group's display heading, title-cased.
func renderGroupHeading(n int, key model.AttrKey) string {
	return SectionStyle.Render(fmt.Sprintf("Group %d: %s, %s, %s",
		n, util.TitleCase(key.Dept), util.TitleCase(key.Role), util.TitleCase(key.Clearance)))
}

// nameColumnWidth picks a name column width from the longest name, capped so
// rows fit a narrow terminal.
func nameColumnWidth(sess *session.Session) int {
	width := 12
	for u := range sess.Users() {
		if w := util.Width(u.Name); w > width {
			width = w
		}
	}
	max := GetTerminalWidth() / 2
	if width > max {
		width = max
	}
	return width
}
