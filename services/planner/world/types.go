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
)

// FloorID is the sentinel identifier for the floor. The floor is not
// an object: it has no descriptor, it appears in no stack, and it can
// support anything.
const FloorID = "floor"

// Form enumerates the shapes an object can take.
type Form int

const (
	FormBrick Form = iota
	FormPlank
	FormBall
	FormBox
	FormTable
	FormPyramid
	// FormFloor only appears in referring expressions ("the floor");
	// no catalog object carries it.
	FormFloor
)

var formNames = map[Form]string{
	FormBrick:   "brick",
	FormPlank:   "plank",
	FormBall:    "ball",
	FormBox:     "box",
	FormTable:   "table",
	FormPyramid: "pyramid",
	FormFloor:   "floor",
}

// String returns the lowercase name of the form.
func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

// ParseForm parses a form name. Returns an error for unknown names.
func ParseForm(name string) (Form, error) {
	for form, n := range formNames {
		if n == name {
			return form, nil
		}
	}
	return 0, fmt.Errorf("%w: form %q", ErrUnknownName, name)
}

// MarshalText implements encoding.TextMarshaler so forms serialize as
// their names in JSON and YAML.
func (f Form) MarshalText() ([]byte, error) {
	name, ok := formNames[f]
	if !ok {
		return nil, fmt.Errorf("%w: form %d", ErrUnknownName, int(f))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Form) UnmarshalText(text []byte) error {
	form, err := ParseForm(string(text))
	if err != nil {
		return err
	}
	*f = form
	return nil
}

// Size enumerates object sizes.
type Size int

const (
	SizeSmall Size = iota
	SizeLarge
)

var sizeNames = map[Size]string{
	SizeSmall: "small",
	SizeLarge: "large",
}

// String returns the lowercase name of the size.
func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// ParseSize parses a size name.
func ParseSize(name string) (Size, error) {
	for size, n := range sizeNames {
		if n == name {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: size %q", ErrUnknownName, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	name, ok := sizeNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: size %d", ErrUnknownName, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	size, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// Relation is the closed enumeration of spatial relations. The goal
// evaluator, the heuristic, and the physics validator all switch over
// this type; keeping it closed means the compiler flags a missing case
// wherever a new relation is added.
type Relation int

const (
	Holding Relation = iota
	Ontop
	Inside
	Above
	Under
	Leftof
	Rightof
	Beside
)

var relationNames = map[Relation]string{
	Holding: "holding",
	Ontop:   "ontop",
	Inside:  "inside",
	Above:   "above",
	Under:   "under",
	Leftof:  "leftof",
	Rightof: "rightof",
	Beside:  "beside",
}

// String returns the lowercase name of the relation.
func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// ParseRelation parses a relation name.
func ParseRelation(name string) (Relation, error) {
	for rel, n := range relationNames {
		if n == name {
			return rel, nil
		}
	}
	return 0, fmt.Errorf("%w: relation %q", ErrUnknownName, name)
}

// MarshalText implements encoding.TextMarshaler.
func (r Relation) MarshalText() ([]byte, error) {
	name, ok := relationNames[r]
	if !ok {
		return nil, fmt.Errorf("%w: relation %d", ErrUnknownName, int(r))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Relation) UnmarshalText(text []byte) error {
	rel, err := ParseRelation(string(text))
	if err != nil {
		return err
	}
	*r = rel
	return nil
}

// Object is an immutable descriptor of one physical object.
type Object struct {
	Form  Form   `json:"form" yaml:"form"`
	Size  Size   `json:"size" yaml:"size"`
	Color string `json:"color" yaml:"color"`
}

// String renders the descriptor the way a user would say it, e.g.
// "large white ball".
func (o Object) String() string {
	return fmt.Sprintf("%s %s %s", o.Size, o.Color, o.Form)
}

// World is the immutable object catalog for one scene.
//
// The catalog is read-only to the planner: descriptors are owned by
// the world configuration, and the floor sentinel never appears in it.
type World struct {
	// Name identifies the scene (e.g. "small", "medium").
	Name string

	// Objects maps stable identifiers to descriptors.
	Objects map[string]Object
}

// Object looks up a descriptor by identifier.
func (w *World) Object(id string) (Object, bool) {
	obj, ok := w.Objects[id]
	return obj, ok
}
