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

// Holds reports whether the relation currently holds between a and b
// in the snapshot.
//
// This is the one authoritative relation semantics table: the goal
// test, the heuristic, and referring-expression resolution all call
// it, so the three cannot drift apart.
//
// Semantics:
//
//   - holding: the arm payload is a (b is ignored).
//   - A held object has no column position, so every positional
//     relation about it is false.
//   - leftof/rightof: strict column comparison.
//   - beside: column distance exactly 1.
//   - above: same column, strictly greater height; against the floor
//     it is vacuously true for any positioned object.
//   - under: same column, strictly smaller height.
//   - ontop: same column, height exactly one above b; against the
//     floor, height exactly 0.
//   - inside: same geometry as ontop (the box is directly below),
//     but never against the floor.
func Holds(s Snapshot, rel Relation, a, b string) bool {
	if rel == Holding {
		return s.Holding == a
	}
	if s.Holding != "" && (s.Holding == a || s.Holding == b) {
		return false
	}

	aCol, aHeight, ok := s.Position(a)
	if !ok {
		return false
	}

	if b == FloorID {
		switch rel {
		case Ontop:
			return aHeight == 0
		case Above:
			return true
		default:
			return false
		}
	}

	bCol, bHeight, ok := s.Position(b)
	if !ok {
		return false
	}

	switch rel {
	case Leftof:
		return aCol < bCol
	case Rightof:
		return aCol > bCol
	case Beside:
		return aCol-bCol == 1 || bCol-aCol == 1
	case Above:
		return aCol == bCol && aHeight > bHeight
	case Under:
		return aCol == bCol && aHeight < bHeight
	case Ontop, Inside:
		return aCol == bCol && aHeight == bHeight+1
	}
	return false
}

// Supported reports whether a rests directly on b (or on the floor),
// accepting either support relation. Referring expressions use it for
// "ontop of" restrictions, which in everyday speech cover boxes too.
func Supported(s Snapshot, a, b string) bool {
	return Holds(s, Ontop, a, b) || Holds(s, Inside, a, b)
}
