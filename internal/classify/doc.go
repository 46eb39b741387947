// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify implements equivalence-class grouping of users and
// permission-tier assignment.
//
// Users are partitioned by exact equality of their normalized
// (department, role, clearance) attribute key. Because the underlying
// relation is string equality, the partition is a true equivalence relation
// by construction.
//
// # Key Types
//
//   - Grouping: Ordered partition of users, keyed by model.AttrKey
//   - Group: One equivalence class (key plus insertion-ordered members)
//
// # Usage
//
// Build and annotate a grouping:
//
//	grouping := classify.BuildGroups(users)
//	perms := classify.AssignPermissions(grouping)
//	for _, g := range grouping.Groups() {
//	    fmt.Println(g.Key, perms[g.Key], len(g.Members))
//	}
package classify
