// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// roster.go - Loading a seed roster of users from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/accessmap/internal/model"
)

// rosterFile is the on-disk shape of a roster: repeated [[user]] blocks.
//
//	[[user]]
//	name = "Alice Smith"
//	dept = "Engineering"
//	role = "Developer"
//	clearance = "High"
type rosterFile struct {
	Users []model.Input `toml:"user"`
}

// LoadRoster reads a TOML roster file into construction inputs. Fields stay
// raw here; normalization and defaults are applied by the session.
func LoadRoster(path string) ([]model.Input, error) {
	var roster rosterFile
	if _, err := toml.DecodeFile(path, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster file: %w", err)
	}
	return roster.Users, nil
}
