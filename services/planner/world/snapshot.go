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
	"strings"
)

// Action labels, the full output alphabet of the planner.
const (
	ActionLeft  = "l"
	ActionRight = "r"
	ActionPick  = "p"
	ActionDrop  = "d"
)

// Snapshot is the full state of the block world at one instant.
//
// Invariants (checked by Validate):
//   - every identifier appears in at most one stack position, or is
//     held, never both
//   - Arm is within [0, len(Stacks))
//
// Snapshots are treated as immutable: MoveArm, Pick, and Drop return
// derived snapshots and never touch the receiver. Derived snapshots
// share the column slices that did not change, so deriving an edge
// copies at most one column.
type Snapshot struct {
	// Stacks holds one column per position, each ordered bottom to top.
	Stacks [][]string `json:"stacks" yaml:"stacks"`

	// Holding is the identifier of the arm payload, or "" if empty.
	Holding string `json:"holding,omitempty" yaml:"holding,omitempty"`

	// Arm is the column index the arm is over.
	Arm int `json:"arm" yaml:"arm"`
}

// Position returns the column and height (0 = bottom) of an object.
// Held objects have no position.
func (s Snapshot) Position(id string) (col, height int, ok bool) {
	for c, stack := range s.Stacks {
		for h, other := range stack {
			if other == id {
				return c, h, true
			}
		}
	}
	return 0, 0, false
}

// TopID returns the identifier on top of the given column, or "" for
// an empty column.
func (s Snapshot) TopID(col int) string {
	stack := s.Stacks[col]
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// Key returns a canonical serialization of the snapshot. Two
// snapshots have equal keys iff they are the same state, which gives
// the search engine value-based node identity.
func (s Snapshot) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d;%s;", s.Arm, s.Holding)
	for i, stack := range s.Stacks {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strings.Join(stack, ","))
	}
	return b.String()
}

// Validate checks the snapshot invariants against a world catalog.
func (s Snapshot) Validate(w *World) error {
	if len(s.Stacks) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidSnapshot)
	}
	if s.Arm < 0 || s.Arm >= len(s.Stacks) {
		return fmt.Errorf("%w: arm %d outside [0,%d)", ErrInvalidSnapshot, s.Arm, len(s.Stacks))
	}
	seen := make(map[string]struct{})
	for col, stack := range s.Stacks {
		for _, id := range stack {
			if id == FloorID {
				return fmt.Errorf("%w: floor sentinel in column %d", ErrInvalidSnapshot, col)
			}
			if _, ok := w.Objects[id]; !ok {
				return fmt.Errorf("%w: %q in column %d", ErrUnknownObject, id, col)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %q stacked twice", ErrInvalidSnapshot, id)
			}
			seen[id] = struct{}{}
		}
	}
	if s.Holding != "" {
		if _, ok := w.Objects[s.Holding]; !ok {
			return fmt.Errorf("%w: held %q", ErrUnknownObject, s.Holding)
		}
		if _, stacked := seen[s.Holding]; stacked {
			return fmt.Errorf("%w: %q both held and stacked", ErrInvalidSnapshot, s.Holding)
		}
	}
	return nil
}

// MoveArm returns a snapshot with the arm over the given column. All
// columns are shared with the receiver.
func (s Snapshot) MoveArm(col int) (Snapshot, error) {
	if col < 0 || col >= len(s.Stacks) {
		return Snapshot{}, fmt.Errorf("%w: arm to %d outside [0,%d)", ErrIllegalAction, col, len(s.Stacks))
	}
	next := s
	next.Arm = col
	return next, nil
}

// Pick returns a snapshot in which the arm holds the top object of
// its current column. Only the touched column is copied.
func (s Snapshot) Pick() (Snapshot, error) {
	if s.Holding != "" {
		return Snapshot{}, fmt.Errorf("%w: pick while holding %q", ErrIllegalAction, s.Holding)
	}
	stack := s.Stacks[s.Arm]
	if len(stack) == 0 {
		return Snapshot{}, fmt.Errorf("%w: pick from empty column %d", ErrIllegalAction, s.Arm)
	}
	next := s
	next.Stacks = replaceColumn(s.Stacks, s.Arm, stack[:len(stack)-1:len(stack)-1])
	next.Holding = stack[len(stack)-1]
	return next, nil
}

// Drop returns a snapshot in which the held object sits on top of the
// arm's current column. Drop does not consult physics; the state-space
// model checks Allowed before offering a drop edge.
func (s Snapshot) Drop() (Snapshot, error) {
	if s.Holding == "" {
		return Snapshot{}, fmt.Errorf("%w: drop with empty arm", ErrIllegalAction)
	}
	stack := s.Stacks[s.Arm]
	grown := make([]string, len(stack), len(stack)+1)
	copy(grown, stack)
	grown = append(grown, s.Holding)
	next := s
	next.Stacks = replaceColumn(s.Stacks, s.Arm, grown)
	next.Holding = ""
	return next, nil
}

// Apply replays a single action label against the snapshot. It is
// used for plan playback and for verifying that a plan reaches its
// goal; the structural preconditions still apply.
func (s Snapshot) Apply(action string) (Snapshot, error) {
	switch action {
	case ActionLeft:
		return s.MoveArm(s.Arm - 1)
	case ActionRight:
		return s.MoveArm(s.Arm + 1)
	case ActionPick:
		return s.Pick()
	case ActionDrop:
		return s.Drop()
	default:
		return Snapshot{}, fmt.Errorf("%w: label %q", ErrIllegalAction, action)
	}
}

// ApplyAll replays a sequence of action labels.
func (s Snapshot) ApplyAll(actions []string) (Snapshot, error) {
	cur := s
	for i, action := range actions {
		next, err := cur.Apply(action)
		if err != nil {
			return Snapshot{}, fmt.Errorf("action %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// replaceColumn returns a new column vector with one column swapped
// out. The other columns are shared, not copied.
func replaceColumn(stacks [][]string, col int, stack []string) [][]string {
	next := make([][]string, len(stacks))
	copy(next, stacks)
	next[col] = stack
	return next
}
