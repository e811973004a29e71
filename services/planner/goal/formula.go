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
	"strings"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// Literal is a single relational assertion about one or two objects.
type Literal struct {
	// Polarity true asserts the relation holds; false that it must
	// not. The interpreter only ever emits true, but evaluation
	// honors both.
	Polarity bool `json:"polarity"`

	// Relation names the asserted relation.
	Relation world.Relation `json:"relation"`

	// Args holds one identifier for holding, two for everything
	// else; the second may be the floor sentinel.
	Args []string `json:"args"`
}

// Lit builds a positive literal.
func Lit(rel world.Relation, args ...string) Literal {
	return Literal{Polarity: true, Relation: rel, Args: args}
}

// String renders the literal as e.g. "ontop(a,floor)"; a negated
// literal gets a leading minus.
func (l Literal) String() string {
	var b strings.Builder
	if !l.Polarity {
		b.WriteByte('-')
	}
	b.WriteString(l.Relation.String())
	b.WriteByte('(')
	b.WriteString(strings.Join(l.Args, ","))
	b.WriteByte(')')
	return b.String()
}

// Holds evaluates the literal against a snapshot.
func (l Literal) Holds(s world.Snapshot) bool {
	var b string
	if len(l.Args) > 1 {
		b = l.Args[1]
	}
	got := world.Holds(s, l.Relation, l.Args[0], b)
	return got == l.Polarity
}

// Conjunction is a set of literals that must all hold.
type Conjunction []Literal

// Holds evaluates the conjunction against a snapshot.
func (c Conjunction) Holds(s world.Snapshot) bool {
	for _, lit := range c {
		if !lit.Holds(s) {
			return false
		}
	}
	return true
}

// String renders the conjunction as "a & b & c".
func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, lit := range c {
		parts[i] = lit.String()
	}
	return strings.Join(parts, " & ")
}

// Formula is a goal in disjunctive normal form: it holds iff at least
// one conjunction's every literal holds. Ordering is semantically
// irrelevant but deterministic, so interpreting the same command
// twice yields identical output.
type Formula []Conjunction

// Holds evaluates the formula against a snapshot.
func (f Formula) Holds(s world.Snapshot) bool {
	for _, conj := range f {
		if conj.Holds(s) {
			return true
		}
	}
	return false
}

// String renders the formula as "a & b | c".
func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, conj := range f {
		parts[i] = conj.String()
	}
	return strings.Join(parts, " | ")
}
