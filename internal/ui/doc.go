// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive terminal menu for accessmap.
//
// The menu drives the same Session operations as the one-shot CLI commands:
// list users, show groups, add a user, check relation properties, export,
// recompute, and show IDs. Built on bubbletea with bubbles text inputs for
// the add-user form and lipgloss styling throughout.
package ui
