// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/accessmap/internal/classify"
	"github.com/jeranaias/accessmap/internal/model"
)

// =============================================================================
// CREATION TESTS
// =============================================================================

func TestNew(t *testing.T) {
	s := New(DemoInputs())

	if !strings.HasPrefix(s.ID(), "sess_") {
		t.Errorf("session ID should start with 'sess_', got %q", s.ID())
	}
	if s.StartTime().IsZero() {
		t.Error("StartTime should not be zero")
	}
	if s.UserCount() != 8 {
		t.Errorf("UserCount = %d, want 8", s.UserCount())
	}
	if s.NextID() != 9 {
		t.Errorf("NextID = %d, want 9", s.NextID())
	}
	// Demo roster: 4 distinct attribute triples.
	if s.GroupCount() != 4 {
		t.Errorf("GroupCount = %d, want 4", s.GroupCount())
	}
}

func TestNew_SequentialIDsFromOne(t *testing.T) {
	s := New(DemoInputs())

	want := 1
	for u := range s.Users() {
		if u.ID != want {
			t.Errorf("user ID = %d, want %d", u.ID, want)
		}
		want++
	}
}

func TestNew_Empty(t *testing.T) {
	s := New(nil)

	if s.UserCount() != 0 || s.GroupCount() != 0 {
		t.Errorf("empty session: %d users, %d groups", s.UserCount(), s.GroupCount())
	}
	if s.NextID() != 1 {
		t.Errorf("NextID = %d, want 1", s.NextID())
	}
}

func TestNew_UniqueSessionIDs(t *testing.T) {
	a, b := New(nil), New(nil)
	if a.ID() == b.ID() {
		t.Error("two sessions should not share an ID")
	}
}

// =============================================================================
// ADD USER TESTS
// =============================================================================

func TestAddUser_EmptyNameRejected(t *testing.T) {
	s := New(DemoInputs())
	usersBefore := s.UserCount()
	groupsBefore := s.GroupCount()
	nextBefore := s.NextID()

	for _, name := range []string{"", "   ", "\t"} {
		_, _, err := s.AddUser(name, "Eng", "Dev", "Low")
		require.ErrorIs(t, err, ErrEmptyName)
	}

	// No partial mutation: list, grouping, and ID counter all unchanged.
	require.Equal(t, usersBefore, s.UserCount())
	require.Equal(t, groupsBefore, s.GroupCount())
	require.Equal(t, nextBefore, s.NextID())
}

func TestAddUser_DefaultsForMissingFields(t *testing.T) {
	s := New(nil)

	u, created, err := s.AddUser("New Guy", "", "", "")
	require.NoError(t, err)
	require.True(t, created, "first user should create a singleton group")

	require.Equal(t, 1, u.ID)
	require.Equal(t, DefaultDept, u.Dept())
	require.Equal(t, DefaultRole, u.Role())
	require.Equal(t, DefaultClearance, u.Clearance())
	require.True(t, s.GroupCount() == 1)
}

func TestAddUser_JoinsExistingGroup(t *testing.T) {
	s := New(DemoInputs())
	groupsBefore := s.GroupCount()

	u, created, err := s.AddUser("Ivy Q", "engineering", "developer", "high")
	require.NoError(t, err)
	require.False(t, created, "key matches the existing engineering/developer/high group")
	require.Equal(t, 9, u.ID)
	require.Equal(t, groupsBefore, s.GroupCount())

	// The new user is the last member of its group.
	for _, g := range s.Groups() {
		if g.Key == u.Key() {
			last := g.Members[len(g.Members)-1]
			require.Equal(t, u.ID, last.ID)
		}
	}
}

func TestAddUser_CreatesSingletonGroup(t *testing.T) {
	s := New(DemoInputs())
	groupsBefore := s.GroupCount()

	u, created, err := s.AddUser("Jack B", "Legal", "Counsel", "Top")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, groupsBefore+1, s.GroupCount())

	// Lazy by design: the new group has no tier until Recompute.
	_, ok := s.Permission(u.Key())
	require.False(t, ok, "AddUser must not eagerly assign a tier")

	s.Recompute()
	tier, ok := s.Permission(u.Key())
	require.True(t, ok)
	require.Equal(t, classify.TierLevel3, tier)
}

func TestAddUser_NormalizesFields(t *testing.T) {
	s := New(nil)

	u, _, err := s.AddUser("  Kate L  ", " HR ", "Manager", " MEDIUM ")
	require.NoError(t, err)
	require.Equal(t, "Kate L", u.Name, "name is trimmed")
	require.Equal(t, model.NewAttrKey("hr", "manager", "medium"), u.Key())
}

// =============================================================================
// RECOMPUTE TESTS
// =============================================================================

func TestRecompute_Idempotent(t *testing.T) {
	s := New(DemoInputs())
	_, _, err := s.AddUser("Jack B", "Legal", "Counsel", "Top")
	require.NoError(t, err)

	s.Recompute()
	first := s.Groups()
	firstPerms := snapshotPerms(s)

	s.Recompute()
	second := s.Groups()
	secondPerms := snapshotPerms(s)

	require.Equal(t, first, second)
	require.Equal(t, firstPerms, secondPerms)
}

func TestRecompute_RefreshesPermissions(t *testing.T) {
	s := New(nil)
	u, _, err := s.AddUser("Solo", "ops", "oncall", "medium")
	require.NoError(t, err)

	_, ok := s.Permission(u.Key())
	require.False(t, ok)

	s.Recompute()
	tier, ok := s.Permission(u.Key())
	require.True(t, ok)
	require.Equal(t, classify.TierLevel2, tier)
}

func snapshotPerms(s *Session) map[model.AttrKey]string {
	out := make(map[model.AttrKey]string)
	for _, g := range s.Groups() {
		if tier, ok := s.Permission(g.Key); ok {
			out[g.Key] = tier
		}
	}
	return out
}

// =============================================================================
// ITERATION TESTS
// =============================================================================

func TestUsers_Restartable(t *testing.T) {
	s := New(DemoInputs())

	count := func() int {
		n := 0
		for range s.Users() {
			n++
		}
		return n
	}

	if count() != 8 || count() != 8 {
		t.Error("Users sequence should be restartable")
	}
}

func TestUsers_EarlyBreak(t *testing.T) {
	s := New(DemoInputs())

	n := 0
	for range s.Users() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("stopped after %d users, want 3", n)
	}
	if s.UserCount() != 8 {
		t.Error("iteration must not mutate the session")
	}
}

// =============================================================================
// RELATION CHECK TESTS
// =============================================================================

func TestCheckReflexive(t *testing.T) {
	s := New(DemoInputs())
	if !s.CheckReflexive() {
		t.Error("reflexivity must hold for a freshly built session")
	}

	// Still holds after an incremental add without recompute.
	_, _, err := s.AddUser("Jack B", "Legal", "Counsel", "Top")
	require.NoError(t, err)
	if !s.CheckReflexive() {
		t.Error("reflexivity must hold after incremental AddUser")
	}
}
