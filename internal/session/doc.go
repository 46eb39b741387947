// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the mutable user list and the derived grouping and
// permission state for one interactive run.
//
// The grouping is derived state: AddUser updates group membership
// incrementally but deliberately does NOT refresh permission tiers, and
// nothing re-syncs automatically. Callers that need fresh tiers must call
// Recompute. This lazy behavior is intentional and surfaces distinguish
// "added to existing group" from "created new group" accordingly.
//
// A Session is not safe for concurrent use; all operations are synchronous
// and run to completion. There is exactly one session per process run and it
// is owned explicitly by the caller — no package-level state.
package session
