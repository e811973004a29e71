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

// Allowed reports whether placing src in relation rel to dst is
// physically legal.
//
// The predicate is pure: same inputs, same answer, no side effects.
// It is called both while constructing goal formulas and while
// generating drop edges in the state-space model; keeping a single
// implementation guarantees the two call sites agree.
//
// When dstID is FloorID the dst descriptor is ignored (the floor has
// none). Rules, in priority order:
//
//  1. An object cannot relate to itself.
//  2. Nothing can be beside the floor (the floor is everywhere).
//  3. The floor supports anything: any other relation against the
//     floor is legal, unless the source is itself the floor.
//  4. Relation-specific constraints, see the switch below.
//
// Leftof, rightof, above, and holding carry no constraint beyond
// rules 1-3.
func Allowed(srcID string, src Object, rel Relation, dstID string, dst Object) bool {
	if srcID == dstID {
		return false
	}
	if rel == Beside && dstID == FloorID {
		return false
	}
	if dstID == FloorID {
		return srcID != FloorID
	}
	if srcID == FloorID {
		return false
	}

	switch rel {
	case Inside:
		// Only boxes have an inside.
		if dst.Form != FormBox {
			return false
		}
		if src.Size == SizeLarge && dst.Size == SizeSmall {
			return false
		}
		// Boxes, planks, and pyramids take up the full box, so they
		// only fit inside a strictly larger one.
		switch src.Form {
		case FormBox, FormPlank, FormPyramid:
			if src.Size == dst.Size {
				return false
			}
		}
		return true

	case Ontop:
		// Boxes only hold things "inside", never "ontop".
		if dst.Form == FormBox {
			return false
		}
		if src.Size == SizeLarge && dst.Size == SizeSmall {
			return false
		}
		// Balls roll: they rest only on the floor or inside a box,
		// and they support nothing.
		if src.Form == FormBall || dst.Form == FormBall {
			return false
		}
		if src.Form == FormBox && src.Size == SizeSmall &&
			dst.Size == SizeSmall && (dst.Form == FormPyramid || dst.Form == FormPlank) {
			return false
		}
		if src.Form == FormBox && src.Size == SizeLarge &&
			dst.Form == FormPyramid && dst.Size == SizeLarge {
			return false
		}
		return true

	case Under:
		// Mirror of ontop: src is the supporter.
		if src.Form == FormBall || dst.Form == FormBall {
			return false
		}
		if src.Size == SizeSmall && dst.Size == SizeLarge {
			return false
		}
		return true

	case Beside, Leftof, Rightof, Above, Holding:
		return true
	}
	return true
}

// SupportRelation returns the relation implied by resting on top of
// the object with the given descriptor: Inside for boxes, Ontop for
// everything else. Drop edges and support queries share it.
func SupportRelation(top Object) Relation {
	if top.Form == FormBox {
		return Inside
	}
	return Ontop
}
