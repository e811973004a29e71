// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package space

import (
	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// GoalTest builds the search goal predicate for a formula: the state
// satisfies the goal iff some conjunction's every literal holds.
func GoalTest(f goal.Formula) func(Node) bool {
	return func(n Node) bool {
		return f.Holds(n.Snapshot)
	}
}

// Heuristic builds the search heuristic for a formula: the minimum,
// across conjunctions, of the summed per-literal estimates.
//
// Each literal estimate is a lower bound counting arm moves plus one
// step per forced pick or drop. Summing them can overestimate when
// literals share work, so the guide is satisficing, not strictly
// admissible (see the package comment).
func Heuristic(f goal.Formula) func(Node) float64 {
	return func(n Node) float64 {
		best := -1.0
		for _, conj := range f {
			sum := 0.0
			for _, lit := range conj {
				sum += literalCost(n.Snapshot, lit)
			}
			if best < 0 || sum < best {
				best = sum
			}
		}
		if best < 0 {
			return 0
		}
		return best
	}
}

// literalCost estimates the remaining steps to make one literal hold.
func literalCost(s world.Snapshot, lit goal.Literal) float64 {
	if lit.Holds(s) {
		return 0
	}

	a := lit.Args[0]
	if lit.Relation == world.Holding {
		aCol, _, ok := s.Position(a)
		if !ok {
			// a is neither stacked nor held; nothing sensible to say.
			return 0
		}
		cost := abs(s.Arm-aCol) + 1 // travel plus pick
		if s.Holding != "" {
			cost++ // the payload must be parked first
		}
		return float64(cost)
	}

	b := lit.Args[1]

	if s.Holding == a {
		// Carry the payload toward the destination and drop it.
		return float64(carryMoves(s, lit.Relation, b) + 1)
	}

	if b != world.FloorID && s.Holding == b {
		// The reference object is in the arm: it must be parked
		// before the relation can hold.
		return float64(1 + parkedExtra(s, lit.Relation, a))
	}

	aCol, _, ok := s.Position(a)
	if !ok {
		return 0
	}
	// Travel to a, pick it, drop it at its destination.
	cost := abs(s.Arm-aCol) + 2
	if s.Holding != "" {
		cost++ // current payload needs a drop first
	}
	return float64(cost)
}

// carryMoves is the minimum arm travel to a column where dropping the
// payload could satisfy the relation against b.
func carryMoves(s world.Snapshot, rel world.Relation, b string) int {
	if b == world.FloorID {
		// Some column works; the nearest acceptable one is unknown,
		// so the bound is 0 moves.
		return 0
	}
	bCol, _, ok := s.Position(b)
	if !ok {
		return 0
	}
	switch rel {
	case world.Ontop, world.Inside, world.Above:
		return abs(s.Arm - bCol)
	case world.Under:
		// Dropping the payload cannot put it under b; it must be
		// parked and restacked.
		return 2
	case world.Leftof:
		return max(0, s.Arm-bCol+1)
	case world.Rightof:
		return max(0, bCol-s.Arm+1)
	case world.Beside:
		return abs(abs(s.Arm-bCol) - 1)
	}
	return 0
}

// parkedExtra is the extra work beyond the forced drop when the
// reference object b is currently held and a is on the stacks.
func parkedExtra(s world.Snapshot, rel world.Relation, a string) int {
	aCol, _, ok := s.Position(a)
	if !ok {
		return 0
	}
	switch rel {
	case world.Ontop, world.Inside, world.Above:
		// b must end up below a, so a has to be restacked: at least
		// a pick and a drop.
		return 2
	case world.Under:
		// Dropping b straight onto a's column suffices.
		return abs(s.Arm - aCol)
	default:
		// leftof/rightof/beside can come true from the drop alone.
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
