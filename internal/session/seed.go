// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// seed.go - Built-in demo roster used when no roster file is configured.
package session

import (
	"github.com/jeranaias/accessmap/internal/model"
)

// DemoInputs returns the built-in demo roster. Raw fields are deliberately
// mixed-case to exercise normalization.
func DemoInputs() []model.Input {
	return []model.Input{
		{Name: "Alice Smith", Dept: "Engineering", Role: "Developer", Clearance: "High"},
		{Name: "Bob Jones", Dept: "Engineering", Role: "Developer", Clearance: "High"},
		{Name: "Charlie Ray", Dept: "Engineering", Role: "Tester", Clearance: "Medium"},
		{Name: "Diana King", Dept: "HR", Role: "Manager", Clearance: "High"},
		{Name: "Eve Stone", Dept: "HR", Role: "Manager", Clearance: "High"},
		{Name: "Frank Liu", Dept: "Finance", Role: "Analyst", Clearance: "Low"},
		{Name: "Grace Y", Dept: "Engineering", Role: "Developer", Clearance: "High"},
		{Name: "Hector Z", Dept: "Finance", Role: "Analyst", Clearance: "Low"},
	}
}
