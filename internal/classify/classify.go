// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// classify.go - Equivalence-class grouping of users by attribute key.
package classify

import (
	"github.com/jeranaias/accessmap/internal/model"
)

// =============================================================================
// GROUPING
// =============================================================================

// Group is one equivalence class: an attribute key plus the insertion-ordered
// users sharing it. Members is never empty in a Grouping produced by this
// package.
type Group struct {
	Key     model.AttrKey
	Members []model.User
}

// Grouping is an ordered partition of users by attribute key. Keys are kept
// in first-occurrence order across the input sequence; membership within a
// group preserves insertion order.
type Grouping struct {
	keys    []model.AttrKey
	members map[model.AttrKey][]model.User
}

// BuildGroups partitions users by exact equality of their attribute keys.
// Pure: the same input sequence always yields the same partition. Any
// normalized triple is a valid key, including empty-string components.
func BuildGroups(users []model.User) *Grouping {
	g := NewGrouping()
	for _, u := range users {
		g.Add(u)
	}
	return g
}

// NewGrouping returns an empty grouping.
func NewGrouping() *Grouping {
	return &Grouping{
		members: make(map[model.AttrKey][]model.User),
	}
}

// Add appends a user to the group matching its key, creating a new singleton
// group when no group with that key exists yet. Returns true if a new group
// was created.
func (g *Grouping) Add(u model.User) bool {
	key := u.Key()
	if _, ok := g.members[key]; ok {
		g.members[key] = append(g.members[key], u)
		return false
	}
	g.keys = append(g.keys, key)
	g.members[key] = []model.User{u}
	return true
}

// Keys returns the attribute keys in first-occurrence order.
func (g *Grouping) Keys() []model.AttrKey {
	out := make([]model.AttrKey, len(g.keys))
	copy(out, g.keys)
	return out
}

// Members returns the users in the group for key, in insertion order.
// Returns nil when no group has that key.
func (g *Grouping) Members(key model.AttrKey) []model.User {
	members, ok := g.members[key]
	if !ok {
		return nil
	}
	out := make([]model.User, len(members))
	copy(out, members)
	return out
}

// Contains reports whether a group with the given key exists.
func (g *Grouping) Contains(key model.AttrKey) bool {
	_, ok := g.members[key]
	return ok
}

// Groups returns the full partition in first-occurrence key order.
func (g *Grouping) Groups() []Group {
	out := make([]Group, 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, Group{Key: key, Members: g.Members(key)})
	}
	return out
}

// Len returns the number of groups.
func (g *Grouping) Len() int {
	return len(g.keys)
}

// MemberCount returns the total number of users across all groups.
func (g *Grouping) MemberCount() int {
	n := 0
	for _, members := range g.members {
		n += len(members)
	}
	return n
}
