// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// user.go - User records and the normalized attribute key.
package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// ATTRIBUTE KEY
// =============================================================================

// AttrKey is the normalized (department, role, clearance) triple used as the
// equality key for access-group classification. Two users belong to the same
// group iff their AttrKeys are equal. All fields hold trimmed, lowercased
// values; AttrKey is a plain value type so it compares structurally and can
// be used directly as a map key.
type AttrKey struct {
	Dept      string
	Role      string
	Clearance string
}

// NewAttrKey builds an AttrKey from raw fields, normalizing each one.
func NewAttrKey(dept, role, clearance string) AttrKey {
	return AttrKey{
		Dept:      Normalize(dept),
		Role:      Normalize(role),
		Clearance: Normalize(clearance),
	}
}

// String renders the key in the "(dept, role, clearance)" form used in
// group messages.
func (k AttrKey) String() string {
	return fmt.Sprintf("(%s, %s, %s)", k.Dept, k.Role, k.Clearance)
}

// Normalize trims surrounding whitespace and lowercases an attribute field.
// Applied once at construction; keys never hold raw input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// =============================================================================
// USER RECORD
// =============================================================================

// User is a single user record. The attribute key is derived from the raw
// department/role/clearance fields at construction time and is immutable
// afterwards, which is why it is unexported and only reachable via Key.
type User struct {
	ID   int
	Name string

	key AttrKey
}

// NewUser constructs a User with the given ID and display name. The three
// attribute fields are normalized into the user's AttrKey.
func NewUser(id int, name, dept, role, clearance string) User {
	return User{
		ID:   id,
		Name: name,
		key:  NewAttrKey(dept, role, clearance),
	}
}

// Key returns the user's normalized attribute key.
func (u User) Key() AttrKey {
	return u.key
}

// Dept returns the normalized department.
func (u User) Dept() string { return u.key.Dept }

// Role returns the normalized role.
func (u User) Role() string { return u.key.Role }

// Clearance returns the normalized clearance.
func (u User) Clearance() string { return u.key.Clearance }

// String renders the user as "ID: Name (dept, role, clearance)".
func (u User) String() string {
	return fmt.Sprintf("%d: %s (%s, %s, %s)",
		u.ID, u.Name, u.key.Dept, u.key.Role, u.key.Clearance)
}

// =============================================================================
// CONSTRUCTION INPUT
// =============================================================================

// Input holds raw, unnormalized fields for constructing a User. IDs are
// assigned by the session, not supplied by the caller.
type Input struct {
	Name      string `toml:"name"`
	Dept      string `toml:"dept"`
	Role      string `toml:"role"`
	Clearance string `toml:"clearance"`
}
