// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// check_cmd.go - CLI command for equivalence-relation property checks.
//
// Command: check
// Short:   Check relation properties of the grouping
// Aliases: relations
//
// Reflexivity is computed against the current grouping. Symmetry and
// transitivity hold unconditionally for an equality-based relation and are
// reported as such.
//
// Examples:
//   accessmap check               Report all three properties
package cli

import (
	"fmt"

	"github.com/jeranaias/accessmap/internal/classify"
)

// HandleCheck reports the equivalence-relation properties.
func HandleCheck(args Args) {
	_, sess := mustLoad()

	fmt.Println(TitleStyle.Render("Relation Checks"))

	printProperty := func(name string, holds bool) {
		status := SuccessStyle.Render("true")
		if !holds {
			status = ErrorStyle.Render("false")
		}
		fmt.Printf("%s %s\n", LabelStyle.Render(name+":"), status)
	}

	printProperty("Reflexive", sess.CheckReflexive())
	printProperty("Symmetric", classify.SymmetricHolds)
	printProperty("Transitive", classify.TransitiveHolds)

	if !args.Quiet {
		fmt.Println()
		fmt.Println(DimStyle.Render("Grouping by equal attribute keys is an equivalence relation by construction."))
	}
}
