// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for the interactive menu.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MENU STYLES
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")) // White

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	tierL3Style = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	tierL2Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true) // Orange
	tierL1Style = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)  // Green

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			MarginTop(1)
)
