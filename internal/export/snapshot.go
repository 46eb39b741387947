// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// snapshot.go - Conversion from live session state to an exportable snapshot.
package export

import (
	"time"

	"github.com/jeranaias/accessmap/internal/session"
)

// =============================================================================
// SNAPSHOT TYPES
// =============================================================================

// Snapshot is a detached, exportable view of a session's grouping. Exporters
// only ever see snapshots, so a failed export cannot affect session state.
type Snapshot struct {
	SessionID string        `json:"session_id"`
	TakenAt   time.Time     `json:"taken_at"`
	UserCount int           `json:"user_count"`
	Groups    []GroupRecord `json:"groups"`
}

// GroupRecord is one access group with its tier and members. Dept, Role, and
// Clearance hold the normalized (trimmed, lowercased) forms.
type GroupRecord struct {
	Dept      string         `json:"dept"`
	Role      string         `json:"role"`
	Clearance string         `json:"clearance"`
	Tier      string         `json:"tier,omitempty"`
	Members   []MemberRecord `json:"members"`
}

// MemberRecord is one user-membership row.
type MemberRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// =============================================================================
// CONVERSION
// =============================================================================

// FromSession captures the session's current grouping, in first-seen group
// order with insertion-ordered members. Tier is empty for groups whose
// permissions have not been recomputed yet.
func FromSession(s *session.Session) *Snapshot {
	snap := &Snapshot{
		SessionID: s.ID(),
		TakenAt:   time.Now(),
		UserCount: s.UserCount(),
	}

	for _, g := range s.Groups() {
		rec := GroupRecord{
			Dept:      g.Key.Dept,
			Role:      g.Key.Role,
			Clearance: g.Key.Clearance,
		}
		if tier, ok := s.Permission(g.Key); ok {
			rec.Tier = tier
		}
		for _, u := range g.Members {
			rec.Members = append(rec.Members, MemberRecord{ID: u.ID, Name: u.Name})
		}
		snap.Groups = append(snap.Groups, rec)
	}

	return snap
}
