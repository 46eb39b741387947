// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users and their
// classification attributes.
//
// This package defines the core domain types used throughout the application
// for representing user records and the normalized attribute key that drives
// access-group classification.
//
// # Key Types
//
//   - User: A user record with a unique ID, display name, and attribute key
//   - AttrKey: Normalized (department, role, clearance) triple with
//     structural equality, usable directly as a map key
//   - Input: Raw, unnormalized construction fields for a User
//
// # Usage
//
// Create a user (fields are normalized at construction):
//
//	u := model.NewUser(1, "Alice Smith", "Engineering ", " Developer", "HIGH")
//	u.Key() // AttrKey{Dept: "engineering", Role: "developer", Clearance: "high"}
package model
