// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// string.go - Display-string helpers for tabular terminal output.
package util

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase renders a normalized (lowercased) attribute field for display,
// e.g. "engineering" -> "Engineering", "human resources" -> "Human Resources".
// Empty fields render as "-" so empty-key groups stay visible in listings.
func TitleCase(s string) string {
	if s == "" {
		return "-"
	}
	// cases.Caser carries internal state; create one per call.
	return cases.Title(language.English).String(s)
}

// PadRight pads s with spaces to the given display width. Accounts for
// double-width characters, so columns line up for CJK names too.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when it was shortened.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// Width returns the display width of a string.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
