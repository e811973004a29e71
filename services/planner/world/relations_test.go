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

func TestHolds(t *testing.T) {
	// col0: a,b  col1: (empty)  col2: c  arm holds h
	s := Snapshot{
		Stacks:  [][]string{{"a", "b"}, {}, {"c"}},
		Holding: "h",
		Arm:     0,
	}

	tests := []struct {
		name string
		rel  Relation
		a, b string
		want bool
	}{
		{"holding payload", Holding, "h", "", true},
		{"holding other", Holding, "a", "", false},

		{"ontop stacked", Ontop, "b", "a", true},
		{"ontop reversed", Ontop, "a", "b", false},
		{"ontop floor at height 0", Ontop, "a", FloorID, true},
		{"ontop floor raised", Ontop, "b", FloorID, false},
		{"inside same geometry", Inside, "b", "a", true},
		{"inside floor never", Inside, "a", FloorID, false},

		{"above same column", Above, "b", "a", true},
		{"above floor vacuous", Above, "b", FloorID, true},
		{"above other column", Above, "c", "a", false},
		{"under same column", Under, "a", "b", true},
		{"under reversed", Under, "b", "a", false},

		{"leftof", Leftof, "a", "c", true},
		{"leftof same column", Leftof, "b", "a", false},
		{"rightof", Rightof, "c", "a", true},
		{"beside distance two", Beside, "a", "c", false},

		{"held has no position", Leftof, "h", "c", false},
		{"relative to held is false", Leftof, "a", "h", false},
		{"absent object", Ontop, "zz", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Holds(s, tt.rel, tt.a, tt.b))
		})
	}
}

func TestHoldsBeside(t *testing.T) {
	s := Snapshot{Stacks: [][]string{{"a"}, {"b"}, {"c"}}, Arm: 0}
	assert.True(t, Holds(s, Beside, "a", "b"))
	assert.True(t, Holds(s, Beside, "b", "a"))
	assert.True(t, Holds(s, Beside, "b", "c"))
	assert.False(t, Holds(s, Beside, "a", "c"))
}

func TestSupported(t *testing.T) {
	s := Snapshot{Stacks: [][]string{{"k", "f"}}, Arm: 0}
	assert.True(t, Supported(s, "f", "k"))
	assert.True(t, Supported(s, "k", FloorID))
	assert.False(t, Supported(s, "f", FloorID))
}
