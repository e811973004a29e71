// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package goal

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// Kind discriminates the three command verbs.
type Kind int

const (
	// Take picks up the subject; the goal is holding it.
	Take Kind = iota
	// Put places the currently held object at the destination.
	Put
	// Move places the subject at the destination.
	Move
)

var kindNames = map[Kind]string{
	Take: "take",
	Put:  "put",
	Move: "move",
}

// String returns the verb.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown command kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown command kind %q", string(text))
}

// Quantifier determines how many matching objects an entity binds.
type Quantifier int

const (
	// The requires exactly one match.
	The Quantifier = iota
	// Any binds each match independently (a disjunction).
	Any
	// All binds every match at once (one conjunction).
	All
)

var quantifierNames = map[Quantifier]string{
	The: "the",
	Any: "any",
	All: "all",
}

// String returns the determiner.
func (q Quantifier) String() string {
	if name, ok := quantifierNames[q]; ok {
		return name
	}
	return fmt.Sprintf("Quantifier(%d)", int(q))
}

// MarshalText implements encoding.TextMarshaler.
func (q Quantifier) MarshalText() ([]byte, error) {
	name, ok := quantifierNames[q]
	if !ok {
		return nil, fmt.Errorf("unknown quantifier %d", int(q))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "a" and "an"
// are accepted as spellings of Any.
func (q *Quantifier) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "a" || s == "an" {
		*q = Any
		return nil
	}
	for quant, name := range quantifierNames {
		if name == s {
			*q = quant
			return nil
		}
	}
	return fmt.Errorf("unknown quantifier %q", s)
}

// AnyForm matches every form in a Spec pattern.
const AnyForm = "anyform"

// Spec is a descriptor pattern from an utterance: either a leaf
// pattern over form/size/color, or an inner Spec restricted by a
// location ("the ball that is ontop of the table").
//
// Leaf fields are free-text patterns, not world enums: an empty field
// (or AnyForm for Form) matches anything.
type Spec struct {
	Form  string `json:"form,omitempty" yaml:"form,omitempty"`
	Size  string `json:"size,omitempty" yaml:"size,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Object and Location are both set on a restricted spec, and both
	// nil on a leaf.
	Object   *Spec     `json:"object,omitempty" yaml:"object,omitempty"`
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// leaf reports whether the spec is a plain pattern.
func (s *Spec) leaf() bool { return s.Location == nil }

// describe renders the pattern roughly the way it was said, for error
// messages.
func (s *Spec) describe() string {
	if !s.leaf() {
		return s.Object.describe()
	}
	out := ""
	if s.Size != "" {
		out += s.Size + " "
	}
	if s.Color != "" {
		out += s.Color + " "
	}
	form := s.Form
	if form == "" || form == AnyForm {
		form = "object"
	}
	return out + form
}

// Entity is a quantified referring expression.
type Entity struct {
	Quantifier Quantifier `json:"quantifier" yaml:"quantifier"`
	Object     Spec       `json:"object" yaml:"object"`
}

// Location is a spatial target: a relation to a quantified entity.
type Location struct {
	Relation world.Relation `json:"relation" yaml:"relation"`
	Entity   Entity         `json:"entity" yaml:"entity"`
}

// Command is one parsed utterance.
//
//   - take: Entity set, Location nil
//   - put: Entity nil (subject is the held object), Location set
//   - move: both set
type Command struct {
	Kind     Kind      `json:"command" yaml:"command"`
	Entity   *Entity   `json:"entity,omitempty" yaml:"entity,omitempty"`
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// ParseCommand decodes a single command from JSON.
func ParseCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("parse command: %w", err)
	}
	return cmd, nil
}

// ParseCommands decodes either one command object or an array of
// candidate parses from JSON. A single object becomes a one-element
// slice.
func ParseCommands(data []byte) ([]Command, error) {
	var cmds []Command
	if err := json.Unmarshal(data, &cmds); err == nil {
		return cmds, nil
	}
	cmd, err := ParseCommand(data)
	if err != nil {
		return nil, err
	}
	return []Command{cmd}, nil
}
