// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string display helpers shared by the CLI and TUI
// surfaces: title-casing of normalized attribute fields and width-aware
// padding/truncation for tabular terminal output.
package util
