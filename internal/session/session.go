// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Session lifecycle: user list, grouping, permission state.
package session

import (
	"errors"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/accessmap/internal/classify"
	"github.com/jeranaias/accessmap/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrEmptyName is returned by AddUser when the supplied name is empty after
// trimming. The session is left untouched: no user and no group entry is
// created.
var ErrEmptyName = errors.New("name cannot be empty")

// =============================================================================
// DEFAULTS
// =============================================================================

// Defaults substituted for attribute fields that are empty after trimming.
const (
	DefaultDept      = "unknown"
	DefaultRole      = "staff"
	DefaultClearance = "low"
)

// =============================================================================
// SESSION
// =============================================================================

// Session holds the full user list (insertion-ordered, append-only) and the
// current grouping with its permission map. The grouping may be stale
// relative to permissions after AddUser; see the package comment.
type Session struct {
	id        string
	startTime time.Time

	users  []model.User
	nextID int

	groups *classify.Grouping
	perms  map[model.AttrKey]string
}

// New creates a session from raw construction inputs. IDs are assigned
// sequentially starting at 1, in input order. The initial grouping and
// permission map are built eagerly.
func New(inputs []model.Input) *Session {
	s := &Session{
		id:        "sess_" + uuid.NewString(),
		startTime: time.Now(),
		nextID:    1,
	}
	for _, in := range inputs {
		u := model.NewUser(s.nextID, in.Name, in.Dept, in.Role, in.Clearance)
		s.users = append(s.users, u)
		s.nextID++
	}
	s.Recompute()
	return s
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// StartTime returns when the session was created.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// UserCount returns the number of users in the session.
func (s *Session) UserCount() int {
	return len(s.users)
}

// NextID returns the ID the next added user will receive.
func (s *Session) NextID() int {
	return s.nextID
}

// =============================================================================
// OPERATIONS
// =============================================================================

// AddUser validates and appends a new user. Attribute fields that are empty
// after trimming fall back to the package defaults. The grouping is updated
// incrementally: the user joins an existing group with a matching key or a
// new singleton group is created (created reports which). Permission tiers
// are NOT refreshed here — call Recompute for fresh tiers.
func (s *Session) AddUser(name, dept, role, clearance string) (u model.User, created bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, false, ErrEmptyName
	}

	if strings.TrimSpace(dept) == "" {
		dept = DefaultDept
	}
	if strings.TrimSpace(role) == "" {
		role = DefaultRole
	}
	if strings.TrimSpace(clearance) == "" {
		clearance = DefaultClearance
	}

	u = model.NewUser(s.nextID, name, dept, role, clearance)
	s.nextID++
	s.users = append(s.users, u)
	created = s.groups.Add(u)
	return u, created, nil
}

// Recompute rebuilds the grouping from the full user list and regenerates the
// permission map. Idempotent: calling twice with no intervening mutation
// yields identical results.
func (s *Session) Recompute() {
	s.groups = classify.BuildGroups(s.users)
	s.perms = classify.AssignPermissions(s.groups)
}

// Users returns a lazy, restartable sequence of user snapshots in insertion
// order. Iteration never mutates the session.
func (s *Session) Users() iter.Seq[model.User] {
	return func(yield func(model.User) bool) {
		for _, u := range s.users {
			if !yield(u) {
				return
			}
		}
	}
}

// Groups returns the current grouping in first-seen key order. The result
// reflects whatever the last Recompute or AddUser produced.
func (s *Session) Groups() []classify.Group {
	return s.groups.Groups()
}

// GroupCount returns the number of groups in the current grouping.
func (s *Session) GroupCount() int {
	return s.groups.Len()
}

// Permission returns the tier for a group key from the last recompute.
// ok is false for keys whose tier has not been assigned yet (e.g. a group
// created by AddUser before the next Recompute).
func (s *Session) Permission(key model.AttrKey) (tier string, ok bool) {
	tier, ok = s.perms[key]
	return tier, ok
}

// =============================================================================
// RELATION CHECKS
// =============================================================================

// CheckReflexive verifies every user appears in the group matching its own
// key. Always true unless the grouping was corrupted externally.
func (s *Session) CheckReflexive() bool {
	return classify.Reflexive(s.users, s.groups)
}
