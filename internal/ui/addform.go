// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// addform.go - Add-user form for the interactive menu.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessmap/internal/session"
)

// =============================================================================
// ADD-USER FORM
// =============================================================================

// Form field indexes.
const (
	fieldName = iota
	fieldDept
	fieldRole
	fieldClearance
	fieldCount
)

// addForm holds the four text inputs of the add-user form.
type addForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	errMsg  string
}

// newAddForm creates a fresh, empty form with the name field focused.
func newAddForm() addForm {
	var f addForm

	labels := [fieldCount]struct {
		placeholder string
		limit       int
	}{
		{"Name (required)", 64},
		{"Department (default: unknown)", 32},
		{"Role (default: staff)", 32},
		{"Clearance low/medium/high (default: low)", 16},
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i].placeholder
		ti.CharLimit = labels[i].limit
		ti.Width = 44
		ti.Prompt = "> "
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

// updateAddForm handles keys while the form is active.
func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateMenu
		m.status = dimStyle.Render("Add cancelled.")
		return m, nil

	case "tab", "down":
		m.form.focusNext()
		return m, nil

	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil

	case "enter":
		// Enter on the last field submits; elsewhere it advances.
		if m.form.focused < fieldClearance {
			m.form.focusNext()
			return m, nil
		}
		return m.submitAddForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
	return m, cmd
}

// submitAddForm runs the add operation and reports placement.
func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	u, created, err := m.sess.AddUser(
		m.form.inputs[fieldName].Value(),
		m.form.inputs[fieldDept].Value(),
		m.form.inputs[fieldRole].Value(),
		m.form.inputs[fieldClearance].Value(),
	)
	if err != nil {
		// Session state is untouched on validation failure; stay on the
		// form so the name can be corrected.
		if errors.Is(err, session.ErrEmptyName) {
			m.form.errMsg = "Name cannot be empty."
		} else {
			m.form.errMsg = err.Error()
		}
		m.form.focused = fieldName
		m.form.syncFocus()
		return m, nil
	}

	m.state = stateMenu
	if created {
		m.status = successStyle.Render(fmt.Sprintf("Created new group %s for %s", u.Key(), u.Name))
	} else {
		m.status = successStyle.Render(fmt.Sprintf("Added %s to existing group %s", u.Name, u.Key()))
	}
	return m, nil
}

// focusNext moves focus to the next field.
func (f *addForm) focusNext() {
	f.focused = (f.focused + 1) % fieldCount
	f.syncFocus()
}

// focusPrev moves focus to the previous field.
func (f *addForm) focusPrev() {
	f.focused = (f.focused + fieldCount - 1) % fieldCount
	f.syncFocus()
}

// syncFocus applies the focused index to the inputs.
func (f *addForm) syncFocus() {
	for i := range f.inputs {
		if i == f.focused {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// viewAddForm renders the form.
func (m Model) viewAddForm() string {
	s := titleStyle.Render("Add User") + "\n\n"

	labels := [fieldCount]string{"Name", "Department", "Role", "Clearance"}
	for i, ti := range m.form.inputs {
		s += sectionStyle.Render(labels[i]) + "\n"
		s += ti.View() + "\n\n"
	}

	if m.form.errMsg != "" {
		s += errorStyle.Render(m.form.errMsg) + "\n"
	}
	s += helpStyle.Render("tab/enter to advance, enter on clearance to submit, esc to cancel")
	return s
}
