// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/accessmap/internal/model"
)

// =============================================================================
// TIER MAPPING TESTS
// =============================================================================

func TestTierForClearance(t *testing.T) {
	tests := []struct {
		clearance string
		want      string
	}{
		// Level 3 aliases
		{"high", TierLevel3},
		{"top", TierLevel3},
		{"3", TierLevel3},
		{"level3", TierLevel3},

		// Level 2 aliases
		{"medium", TierLevel2},
		{"2", TierLevel2},
		{"level2", TierLevel2},

		// Fallback
		{"low", TierLevel1},
		{"", TierLevel1},
		{"unknown", TierLevel1},
		{"1", TierLevel1},
		{"level1", TierLevel1},
		{"secret", TierLevel1},

		// Inputs are expected pre-normalized; raw casing falls through.
		{"HIGH", TierLevel1},
	}

	for _, tt := range tests {
		if got := TierForClearance(tt.clearance); got != tt.want {
			t.Errorf("TierForClearance(%q) = %q, want %q", tt.clearance, got, tt.want)
		}
	}
}

func TestAssignPermissions(t *testing.T) {
	users := []model.User{
		model.NewUser(1, "Alice", "eng", "dev", "high"),
		model.NewUser(2, "Bob", "eng", "tester", "medium"),
		model.NewUser(3, "Carol", "finance", "analyst", "low"),
		model.NewUser(4, "Dave", "ops", "oncall", "wat"),
	}
	g := BuildGroups(users)
	perms := AssignPermissions(g)

	require.Len(t, perms, 4)
	require.Equal(t, TierLevel3, perms[model.NewAttrKey("eng", "dev", "high")])
	require.Equal(t, TierLevel2, perms[model.NewAttrKey("eng", "tester", "medium")])
	require.Equal(t, TierLevel1, perms[model.NewAttrKey("finance", "analyst", "low")])
	require.Equal(t, TierLevel1, perms[model.NewAttrKey("ops", "oncall", "wat")])
}

func TestAssignPermissions_TotalOverGrouping(t *testing.T) {
	g := BuildGroups(testUsers())
	perms := AssignPermissions(g)

	// Exactly one tier per group, no group skipped.
	require.Len(t, perms, g.Len())
	for _, key := range g.Keys() {
		tier, ok := perms[key]
		require.True(t, ok, "group %v has no tier", key)
		require.Contains(t, []string{TierLevel1, TierLevel2, TierLevel3}, tier)
	}
}

func TestAssignPermissions_NormalizationScenario(t *testing.T) {
	// Two raw spellings of the same triple collapse to one Level 3 group.
	users := []model.User{
		model.NewUser(1, "Alice", "Engineering", "Developer", "High"),
		model.NewUser(2, "Grace", "engineering ", " developer", "HIGH"),
	}
	g := BuildGroups(users)
	perms := AssignPermissions(g)

	key := model.NewAttrKey("engineering", "developer", "high")
	require.Equal(t, 1, g.Len())
	require.Equal(t, TierLevel3, perms[key])
}
