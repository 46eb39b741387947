// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the one-shot command
// handlers for accessmap.
//
// Each command maps directly to one session operation: users, ids, groups,
// add, check, recompute, export. Commands run against a session seeded from
// the configured roster (or the built-in demo roster) and print styled
// terminal output. Colors follow TTY detection, NO_COLOR, and FORCE_COLOR.
package cli
