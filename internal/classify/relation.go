// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// relation.go - Equivalence-relation property checks.
//
// The grouping relation is "has an equal attribute key", i.e. plain string
// equality on the normalized triple. Equality is trivially symmetric and
// transitive, so those two properties are exposed as documented constants
// rather than dressed up as per-pair algorithms. Reflexivity is the only
// property worth computing, and then only as a consistency check against a
// grouping that may have been mutated outside this package.
package classify

import (
	"github.com/jeranaias/accessmap/internal/model"
)

// Symmetric and transitive hold for any equality-based relation.
const (
	SymmetricHolds  = true
	TransitiveHolds = true
)

// Reflexive reports whether every user appears in the group matching its own
// key. Always true for a grouping produced by BuildGroups; false indicates an
// externally inconsistent grouping.
func Reflexive(users []model.User, g *Grouping) bool {
	for _, u := range users {
		found := false
		for _, member := range g.members[u.Key()] {
			if member.ID == u.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
