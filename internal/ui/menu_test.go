// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/accessmap/internal/config"
	"github.com/jeranaias/accessmap/internal/model"
	"github.com/jeranaias/accessmap/internal/session"
)

// =============================================================================
// HELPERS
// =============================================================================

func testModel(t *testing.T) Model {
	t.Helper()
	sess := session.New([]model.Input{
		{Name: "Alice", Dept: "Engineering", Role: "Developer", Clearance: "High"},
		{Name: "Bob", Dept: "engineering", Role: "developer", Clearance: "high"},
		{Name: "Carol", Dept: "Sales", Role: "Rep", Clearance: "low"},
	})
	return NewModel(sess, config.Default())
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

// typeText feeds each rune of s to the model as a key press.
func typeText(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

// =============================================================================
// MENU NAVIGATION
// =============================================================================

func TestMenuNavigation(t *testing.T) {
	m := testModel(t)
	require.Equal(t, stateMenu, m.state)
	require.Equal(t, 0, m.cursor)

	m = press(m, "down", "down")
	require.Equal(t, 2, m.cursor)

	m = press(m, "up")
	require.Equal(t, 1, m.cursor)

	// Cursor clamps at the edges.
	m = press(m, "up", "up", "up")
	require.Equal(t, 0, m.cursor)
}

func TestMenuNumberShortcut(t *testing.T) {
	m := testModel(t)

	// "1" jumps straight to the users list.
	m = press(m, "1")
	require.Equal(t, stateContent, m.state)
	require.Equal(t, "Users", m.contentTitle)
	require.Contains(t, m.content, "Alice")

	// esc returns to the menu.
	m = press(m, "esc")
	require.Equal(t, stateMenu, m.state)
}

func TestMenuQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
}

func TestShowGroupsContent(t *testing.T) {
	m := testModel(t)
	m = press(m, "2")

	require.Equal(t, stateContent, m.state)
	// Alice and Bob collapse into one group; tiers are shown.
	require.Contains(t, m.content, "Engineering")
	require.Contains(t, m.content, "Level 3 Access")
	require.Contains(t, m.content, "Level 1 Access")
}

func TestCheckRelationsContent(t *testing.T) {
	m := testModel(t)
	m = press(m, "4")

	require.Equal(t, stateContent, m.state)
	require.Contains(t, m.content, "Reflexive")
	require.Contains(t, m.content, "Symmetric")
	require.Contains(t, m.content, "Transitive")
}

func TestRecomputeStatus(t *testing.T) {
	m := testModel(t)
	m = press(m, "6")

	require.Equal(t, stateMenu, m.state)
	require.Contains(t, m.status, "2 groups")
	require.Contains(t, m.status, "3 users")
}

// =============================================================================
// ADD-USER FORM
// =============================================================================

func TestAddFormSubmit(t *testing.T) {
	m := testModel(t)
	m = press(m, "3")
	require.Equal(t, stateAddForm, m.state)

	m = typeText(m, "Dave")
	m = press(m, "tab")
	m = typeText(m, "Sales")
	m = press(m, "tab")
	m = typeText(m, "Rep")
	m = press(m, "tab")
	m = typeText(m, "low")
	m = press(m, "enter")

	require.Equal(t, stateMenu, m.state)
	require.Contains(t, m.status, "existing group")
	require.Equal(t, 4, m.sess.UserCount())
}

func TestAddFormDefaults(t *testing.T) {
	m := testModel(t)
	m = press(m, "3")

	// Only a name; the rest fall back to defaults and form a new group.
	m = typeText(m, "Eve")
	m = press(m, "enter", "enter", "enter", "enter")

	require.Equal(t, stateMenu, m.state)
	require.Contains(t, m.status, "Created new group")
	require.Contains(t, m.status, "(unknown, staff, low)")
}

func TestAddFormEmptyName(t *testing.T) {
	m := testModel(t)
	m = press(m, "3")

	m = typeText(m, "   ")
	m = press(m, "enter", "enter", "enter", "enter")

	// Still on the form, session untouched.
	require.Equal(t, stateAddForm, m.state)
	require.NotEmpty(t, m.form.errMsg)
	require.Equal(t, 3, m.sess.UserCount())
}

func TestAddFormCancel(t *testing.T) {
	m := testModel(t)
	m = press(m, "3")
	m = typeText(m, "Frank")
	m = press(m, "esc")

	require.Equal(t, stateMenu, m.state)
	require.Equal(t, 3, m.sess.UserCount())
}

// =============================================================================
// VIEW
// =============================================================================

func TestViewMenuListsEntries(t *testing.T) {
	m := testModel(t)
	out := m.View()

	for i, entry := range menuEntries {
		require.Contains(t, out, entry.label, "entry %d missing", i)
	}
	require.True(t, strings.Contains(out, "3 users in 2 groups"))
}
