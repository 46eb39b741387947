// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// permissions.go - Permission-tier assignment per access group.
package classify

import (
	"github.com/jeranaias/accessmap/internal/model"
)

// =============================================================================
// PERMISSION TIERS
// =============================================================================

// Permission tier labels, highest first. A tier is derived solely from the
// clearance component of a group's key and is never stored as group state.
const (
	TierLevel3 = "Level 3 Access"
	TierLevel2 = "Level 2 Access"
	TierLevel1 = "Level 1 Access"
)

// TierForClearance maps a normalized clearance value to a permission tier.
// Total over any string: unrecognized values, "low", and the empty string all
// land on the Level 1 fallback.
func TierForClearance(clearance string) string {
	switch clearance {
	case "high", "top", "3", "level3":
		return TierLevel3
	case "medium", "2", "level2":
		return TierLevel2
	default:
		return TierLevel1
	}
}

// AssignPermissions maps each group's key to its permission tier. Holds no
// state of its own; callers must re-invoke it whenever the grouping changes.
func AssignPermissions(g *Grouping) map[model.AttrKey]string {
	perms := make(map[model.AttrKey]string, g.Len())
	for _, key := range g.keys {
		perms[key] = TierForClearance(key.Clearance)
	}
	return perms
}
