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
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	largeBall    = Object{Form: FormBall, Size: SizeLarge, Color: "white"}
	smallBall    = Object{Form: FormBall, Size: SizeSmall, Color: "black"}
	largeBox     = Object{Form: FormBox, Size: SizeLarge, Color: "yellow"}
	smallBox     = Object{Form: FormBox, Size: SizeSmall, Color: "blue"}
	largeBrick   = Object{Form: FormBrick, Size: SizeLarge, Color: "green"}
	smallBrick   = Object{Form: FormBrick, Size: SizeSmall, Color: "white"}
	largeTable   = Object{Form: FormTable, Size: SizeLarge, Color: "blue"}
	largePlank   = Object{Form: FormPlank, Size: SizeLarge, Color: "red"}
	smallPlank   = Object{Form: FormPlank, Size: SizeSmall, Color: "green"}
	largePyramid = Object{Form: FormPyramid, Size: SizeLarge, Color: "yellow"}
	smallPyramid = Object{Form: FormPyramid, Size: SizeSmall, Color: "red"}
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name  string
		srcID string
		src   Object
		rel   Relation
		dstID string
		dst   Object
		want  bool
	}{
		{"self relation", "a", largeBrick, Ontop, "a", largeBrick, false},
		{"self relation beside", "a", largeBrick, Beside, "a", largeBrick, false},

		{"anything ontop floor", "e", largeBall, Ontop, FloorID, Object{}, true},
		{"above floor", "a", largeBrick, Above, FloorID, Object{}, true},
		{"beside floor", "a", largeBrick, Beside, FloorID, Object{}, false},
		{"floor ontop object", FloorID, Object{}, Ontop, "a", largeBrick, false},

		{"ball inside large box", "f", smallBall, Inside, "k", largeBox, true},
		{"inside a non-box", "f", smallBall, Inside, "g", largeTable, false},
		{"box inside ball", "m", smallBox, Inside, "e", largeBall, false},
		{"large inside small box", "e", largeBall, Inside, "m", smallBox, false},
		{"box inside same size box", "l", largeBox, Inside, "k", largeBox, false},
		{"small box inside large box", "m", smallBox, Inside, "k", largeBox, true},
		{"plank inside same size box", "c", largePlank, Inside, "k", largeBox, false},
		{"pyramid inside same size box", "j", smallPyramid, Inside, "m", smallBox, false},
		{"small plank inside large box", "d", smallPlank, Inside, "k", largeBox, true},
		{"brick inside same size box", "a", largeBrick, Inside, "k", largeBox, true},

		{"ontop a box", "a", largeBrick, Ontop, "k", largeBox, false},
		{"large ontop small", "a", largeBrick, Ontop, "b", smallBrick, false},
		{"small ontop large", "b", smallBrick, Ontop, "a", largeBrick, true},
		{"ball ontop table", "e", largeBall, Ontop, "g", largeTable, false},
		{"brick ontop ball", "b", smallBrick, Ontop, "f", smallBall, false},
		{"small box ontop small pyramid", "m", smallBox, Ontop, "j", smallPyramid, false},
		{"small box ontop small plank", "m", smallBox, Ontop, "d", smallPlank, false},
		{"small box ontop small brick", "m", smallBox, Ontop, "b", smallBrick, true},
		{"large box ontop large pyramid", "k", largeBox, Ontop, "i", largePyramid, false},
		{"large box ontop large table", "k", largeBox, Ontop, "g", largeTable, true},

		{"ball under brick", "f", smallBall, Under, "b", smallBrick, false},
		{"table under ball", "g", largeTable, Under, "e", largeBall, false},
		{"small under large", "b", smallBrick, Under, "a", largeBrick, false},
		{"large under small", "g", largeTable, Under, "b", smallBrick, true},

		{"leftof unconstrained", "e", largeBall, Leftof, "f", smallBall, true},
		{"rightof unconstrained", "f", smallBall, Rightof, "e", largeBall, true},
		{"above unconstrained", "e", largeBall, Above, "g", largeTable, true},
		{"beside unconstrained", "e", largeBall, Beside, "g", largeTable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allowed(tt.srcID, tt.src, tt.rel, tt.dstID, tt.dst)
			assert.Equal(t, tt.want, got)

			// Pure predicate: asking twice gives the same answer.
			assert.Equal(t, got, Allowed(tt.srcID, tt.src, tt.rel, tt.dstID, tt.dst))
		})
	}
}

func TestSupportRelation(t *testing.T) {
	assert.Equal(t, Inside, SupportRelation(largeBox))
	assert.Equal(t, Ontop, SupportRelation(largeTable))
	assert.Equal(t, Ontop, SupportRelation(smallBall))
}
