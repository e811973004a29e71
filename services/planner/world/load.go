// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package world

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of a scene: the object catalog plus
// the starting snapshot. YAML is the primary format, JSON is accepted
// for API payloads.
type Definition struct {
	Name    string            `json:"name" yaml:"name"`
	Objects map[string]Object `json:"objects" yaml:"objects"`
	Stacks  [][]string        `json:"stacks" yaml:"stacks"`
	Holding string            `json:"holding,omitempty" yaml:"holding,omitempty"`
	Arm     int               `json:"arm" yaml:"arm"`
}

// World builds the immutable catalog from the definition.
func (d *Definition) World() *World {
	objects := make(map[string]Object, len(d.Objects))
	for id, obj := range d.Objects {
		objects[id] = obj
	}
	return &World{Name: d.Name, Objects: objects}
}

// Snapshot builds the starting snapshot from the definition. Empty
// trailing columns declared in the file are preserved.
func (d *Definition) Snapshot() Snapshot {
	stacks := make([][]string, len(d.Stacks))
	for i, stack := range d.Stacks {
		col := make([]string, len(stack))
		copy(col, stack)
		stacks[i] = col
	}
	return Snapshot{Stacks: stacks, Holding: d.Holding, Arm: d.Arm}
}

// Load parses a scene definition from YAML or JSON bytes and
// validates its invariants.
func Load(data []byte) (*World, Snapshot, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		if jsonErr := json.Unmarshal(data, &def); jsonErr != nil {
			return nil, Snapshot{}, fmt.Errorf("parse world (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	w := def.World()
	snap := def.Snapshot()
	if err := snap.Validate(w); err != nil {
		return nil, Snapshot{}, fmt.Errorf("world %q: %w", def.Name, err)
	}
	return w, snap, nil
}

// LoadFile reads and parses a scene definition file.
func LoadFile(path string) (*World, Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("read world file: %w", err)
	}
	return Load(data)
}
