// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// menu.go - Interactive menu model for accessmap.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessmap/internal/config"
	"github.com/jeranaias/accessmap/internal/export"
	"github.com/jeranaias/accessmap/internal/session"
)

// =============================================================================
// MENU ITEMS
// =============================================================================

// menuAction identifies one menu entry.
type menuAction int

const (
	actionListUsers menuAction = iota
	actionShowGroups
	actionAddUser
	actionCheckRelations
	actionExport
	actionRecompute
	actionShowIDs
	actionExit
)

// menuEntry pairs an action with its label.
type menuEntry struct {
	action menuAction
	label  string
}

var menuEntries = []menuEntry{
	{actionListUsers, "List users"},
	{actionShowGroups, "Show groups"},
	{actionAddUser, "Add user"},
	{actionCheckRelations, "Check relation properties"},
	{actionExport, "Save groups to file"},
	{actionRecompute, "Recompute groups/permissions"},
	{actionShowIDs, "Show user IDs"},
	{actionExit, "Exit"},
}

// viewState is the active screen.
type viewState int

const (
	stateMenu viewState = iota
	stateContent
	stateAddForm
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the interactive menu.
type Model struct {
	sess *session.Session
	cfg  *config.Config

	state  viewState
	cursor int

	// Content screen
	contentTitle string
	content      string

	// Add-user form
	form addForm

	// Status line shown under the menu
	status string

	width  int
	height int
}

// NewModel creates the menu model over an existing session.
func NewModel(sess *session.Session, cfg *config.Config) Model {
	return Model{
		sess:   sess,
		cfg:    cfg,
		state:  stateMenu,
		form:   newAddForm(),
		status: fmt.Sprintf("%d users in %d groups", sess.UserCount(), sess.GroupCount()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateContent:
			return m.updateContent(msg)
		case stateAddForm:
			return m.updateAddForm(msg)
		}
	}
	return m, nil
}

// updateMenu handles keys on the main menu.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case "enter":
		return m.runAction(menuEntries[m.cursor].action)

	// Number shortcuts matching the menu labels.
	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(msg.String()[0] - '1')
		if idx < len(menuEntries) {
			m.cursor = idx
			return m.runAction(menuEntries[idx].action)
		}
	}
	return m, nil
}

// updateContent handles keys on a content screen.
func (m Model) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "enter":
		m.state = stateMenu
	}
	return m, nil
}

// runAction executes a menu action.
func (m Model) runAction(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionListUsers:
		m.contentTitle = "Users"
		m.content = renderUsers(m.sess)
		m.state = stateContent

	case actionShowGroups:
		// Refresh tiers before display, like the one-shot groups command.
		m.sess.Recompute()
		m.contentTitle = "Access Groups"
		m.content = renderGroups(m.sess)
		m.state = stateContent

	case actionAddUser:
		m.form = newAddForm()
		m.state = stateAddForm

	case actionCheckRelations:
		m.contentTitle = "Relation Checks"
		m.content = renderChecks(m.sess)
		m.state = stateContent

	case actionExport:
		m.status = m.exportGroups()

	case actionRecompute:
		m.sess.Recompute()
		m.status = fmt.Sprintf("Recomputed: %d groups, %d users",
			m.sess.GroupCount(), m.sess.UserCount())

	case actionShowIDs:
		m.contentTitle = "User IDs"
		m.content = renderIDs(m.sess)
		m.state = stateContent

	case actionExit:
		return m, tea.Quit
	}
	return m, nil
}

// exportGroups writes the current grouping using the configured format and
// returns a status message.
func (m Model) exportGroups() string {
	m.sess.Recompute()
	snap := export.FromSession(m.sess)

	opts := export.DefaultOptions()
	opts.OutputDir = m.cfg.Export.Dir
	opts.IncludeMetadata = m.cfg.Export.IncludeMetadata

	exporter, err := export.ForFormat(m.cfg.Export.Format, opts)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Export failed: %v", err))
	}
	path, err := export.ToFile(snap, exporter, opts)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Export failed: %v", err))
	}
	return successStyle.Render("Saved groups to " + path)
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	switch m.state {
	case stateContent:
		return m.viewContent()
	case stateAddForm:
		return m.viewAddForm()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	s := titleStyle.Render("accessmap - Access Group Classification") + "\n\n"

	for i, entry := range menuEntries {
		cursor := "  "
		line := fmt.Sprintf("%d. %s", i+1, entry.label)
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		} else {
			line = normalStyle.Render(line)
		}
		s += cursor + line + "\n"
	}

	if m.status != "" {
		s += "\n" + m.status + "\n"
	}
	s += helpStyle.Render("up/down or 1-8 to choose, enter to run, q to quit")
	return s
}

func (m Model) viewContent() string {
	s := titleStyle.Render(m.contentTitle) + "\n\n"
	s += m.content
	s += helpStyle.Render("\nesc/q/enter to return")
	return s
}
