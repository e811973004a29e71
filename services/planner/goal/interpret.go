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
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// Interpret turns a parsed command into a goal formula over the given
// snapshot.
//
// The pipeline is: static semantic checks (relation vs. destination
// form, quantifier combinations) first, so nonsense fails before any
// object resolution; then referring-expression resolution under
// quantifier semantics; then combination of subject and destination
// groups into conjunctions, filtered by the physics validator.
//
// All failures are *Error values with a stable Code.
func Interpret(cmd Command, w *world.World, snap world.Snapshot) (Formula, error) {
	switch cmd.Kind {
	case Take:
		return interpretTake(cmd, w, snap)
	case Put:
		return interpretPut(cmd, w, snap)
	case Move:
		return interpretMove(cmd, w, snap)
	default:
		return nil, newError(CodeSemanticallyInvalid, "unknown command kind %d", int(cmd.Kind))
	}
}

func interpretTake(cmd Command, w *world.World, snap world.Snapshot) (Formula, error) {
	if cmd.Entity == nil {
		return nil, newError(CodeSemanticallyInvalid, "take needs something to take")
	}
	if cmd.Entity.Quantifier == All {
		return nil, newError(CodeSemanticallyInvalid, "the arm holds one object: cannot take all")
	}
	if leafForm(&cmd.Entity.Object) == "floor" {
		return nil, newError(CodeSemanticallyInvalid, "cannot take the floor")
	}

	groups, err := resolveEntity(*cmd.Entity, w, snap)
	if err != nil {
		return nil, err
	}

	var formula Formula
	for _, group := range groups {
		// "all" is rejected above, so every group is a singleton.
		formula = append(formula, Conjunction{Lit(world.Holding, group[0])})
	}
	return formula, nil
}

func interpretPut(cmd Command, w *world.World, snap world.Snapshot) (Formula, error) {
	if snap.Holding == "" {
		return nil, newError(CodeSemanticallyInvalid, "the arm is not holding anything")
	}
	if cmd.Location == nil {
		return nil, newError(CodeSemanticallyInvalid, "put needs a destination")
	}
	if err := checkStatic(nil, cmd.Location); err != nil {
		return nil, err
	}

	destGroups, err := resolveEntity(cmd.Location.Entity, w, snap)
	if err != nil {
		return nil, err
	}
	return combine([][]string{{snap.Holding}}, cmd.Location.Relation, destGroups, w)
}

func interpretMove(cmd Command, w *world.World, snap world.Snapshot) (Formula, error) {
	if cmd.Entity == nil || cmd.Location == nil {
		return nil, newError(CodeSemanticallyInvalid, "move needs a subject and a destination")
	}
	if leafForm(&cmd.Entity.Object) == "floor" {
		return nil, newError(CodeSemanticallyInvalid, "cannot move the floor")
	}
	if err := checkStatic(cmd.Entity, cmd.Location); err != nil {
		return nil, err
	}

	subjectGroups, err := resolveEntity(*cmd.Entity, w, snap)
	if err != nil {
		return nil, err
	}
	destGroups, err := resolveEntity(cmd.Location.Entity, w, snap)
	if err != nil {
		return nil, err
	}
	return combine(subjectGroups, cmd.Location.Relation, destGroups, w)
}

// checkStatic cross-validates the relation against the destination
// pattern and the quantifier combination. These are static semantic
// checks on the utterance, independent of the physics validator, so a
// nonsensical command fails before any resolution or search.
func checkStatic(subject *Entity, loc *Location) error {
	rel := loc.Relation
	destForm := leafForm(&loc.Entity.Object)

	switch rel {
	case world.Inside:
		if destForm != "" && destForm != AnyForm && destForm != "box" {
			return newError(CodeSemanticallyInvalid, "things go inside boxes, not inside a %s", destForm)
		}
	case world.Ontop:
		if destForm == "ball" {
			return newError(CodeSemanticallyInvalid, "a ball cannot support anything")
		}
	case world.Beside, world.Leftof, world.Rightof:
		if destForm == "floor" {
			return newError(CodeSemanticallyInvalid, "the floor is everywhere: nothing can be %s it", rel)
		}
	case world.Under:
		if destForm == "floor" {
			return newError(CodeSemanticallyInvalid, "nothing fits under the floor")
		}
	}

	// An object rests directly on exactly one support, so the
	// exclusive relations reject set-valued destinations.
	if rel == world.Ontop || rel == world.Inside {
		if loc.Entity.Quantifier == All {
			return newError(CodeSemanticallyInvalid, "nothing can be %s all of several objects", rel)
		}
		if subject != nil && subject.Quantifier == All &&
			loc.Entity.Quantifier == The && destForm != "floor" {
			return newError(CodeSemanticallyInvalid, "only one object fits %s a single support", rel)
		}
	}
	return nil
}

// resolveEntity resolves a referring expression to candidate object
// groupings according to its quantifier:
//
//   - the: exactly one match, or the reference is ambiguous
//   - any: one singleton group per match (disjunction)
//   - all: a single group containing every match
func resolveEntity(ent Entity, w *world.World, snap world.Snapshot) ([][]string, error) {
	candidates, err := resolveSpec(&ent.Object, w, snap)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, newError(CodeUnsatisfiable, "there is no %s here", ent.Object.describe())
	}

	switch ent.Quantifier {
	case The:
		if len(candidates) > 1 {
			return nil, newError(CodeReferenceAmbiguous,
				"\"the %s\" matches %d objects", ent.Object.describe(), len(candidates))
		}
		return [][]string{{candidates[0]}}, nil
	case Any:
		groups := make([][]string, len(candidates))
		for i, id := range candidates {
			groups[i] = []string{id}
		}
		return groups, nil
	case All:
		return [][]string{candidates}, nil
	default:
		return nil, newError(CodeReferenceUnsupported, "unknown quantifier %d", int(ent.Quantifier))
	}
}

// resolveSpec finds the identifiers matching a descriptor pattern,
// applying the location restriction when present. Order follows the
// snapshot: left to right, bottom to top, held object last.
func resolveSpec(spec *Spec, w *world.World, snap world.Snapshot) ([]string, error) {
	if spec.leaf() {
		return resolveLeaf(spec, w, snap)
	}

	candidates, err := resolveSpec(spec.Object, w, snap)
	if err != nil {
		return nil, err
	}
	restrictors, err := resolveSpec(&spec.Location.Entity.Object, w, snap)
	if err != nil {
		return nil, err
	}

	rel := spec.Location.Relation
	if rel != world.Holding {
		for _, id := range restrictors {
			if id == snap.Holding && id != "" {
				return nil, newError(CodeRelationUnsupported,
					"%q is in the arm, nothing is %s it", id, rel)
			}
		}
	}

	requireAll := spec.Location.Entity.Quantifier == All
	var matched []string
	for _, id := range candidates {
		if satisfiesRestriction(snap, id, rel, restrictors, requireAll) {
			matched = append(matched, id)
		}
	}
	return matched, nil
}

// satisfiesRestriction applies the positional test of a relative
// clause. "ontop" and "inside" are interchangeable here: in everyday
// speech "the ball ontop of the box" means the supported ball.
func satisfiesRestriction(snap world.Snapshot, id string, rel world.Relation, restrictors []string, requireAll bool) bool {
	test := func(other string) bool {
		if rel == world.Ontop || rel == world.Inside {
			return world.Supported(snap, id, other)
		}
		return world.Holds(snap, rel, id, other)
	}

	if requireAll {
		for _, other := range restrictors {
			if !test(other) {
				return false
			}
		}
		return true
	}
	for _, other := range restrictors {
		if test(other) {
			return true
		}
	}
	return false
}

// resolveLeaf matches a plain pattern against the objects present in
// the snapshot.
func resolveLeaf(spec *Spec, w *world.World, snap world.Snapshot) ([]string, error) {
	if spec.Form == "floor" {
		if spec.Size != "" || spec.Color != "" {
			return nil, newError(CodeReferenceUnsupported, "the floor has no size or color")
		}
		return []string{world.FloorID}, nil
	}

	var matched []string
	for _, id := range presentIDs(snap) {
		obj, ok := w.Object(id)
		if !ok {
			continue
		}
		if matchesLeaf(spec, obj) {
			matched = append(matched, id)
		}
	}
	return matched, nil
}

func matchesLeaf(spec *Spec, obj world.Object) bool {
	if spec.Form != "" && spec.Form != AnyForm && spec.Form != obj.Form.String() {
		return false
	}
	if spec.Size != "" && spec.Size != obj.Size.String() {
		return false
	}
	if spec.Color != "" && spec.Color != obj.Color {
		return false
	}
	return true
}

// presentIDs enumerates every object in the snapshot in deterministic
// order: stacks left to right, bottom to top, then the held object.
func presentIDs(snap world.Snapshot) []string {
	var ids []string
	for _, stack := range snap.Stacks {
		ids = append(ids, stack...)
	}
	if snap.Holding != "" {
		ids = append(ids, snap.Holding)
	}
	return ids
}

// leafForm descends to the innermost described pattern and returns
// its form.
func leafForm(spec *Spec) string {
	for !spec.leaf() {
		spec = spec.Object
	}
	return spec.Form
}

// combine crosses subject groups with destination groups into a DNF
// formula: one conjunction per (subject group, destination group)
// pair, one literal per member pair. A conjunction containing a
// physically illegal literal is dropped whole; its other literals
// cannot rescue it, since all of them must hold together.
func combine(subjectGroups [][]string, rel world.Relation, destGroups [][]string, w *world.World) (Formula, error) {
	var formula Formula
	for _, sg := range subjectGroups {
		for _, dg := range destGroups {
			conj := make(Conjunction, 0, len(sg)*len(dg))
			legal := true
			for _, s := range sg {
				for _, d := range dg {
					if !physicallyLegal(s, rel, d, w) {
						legal = false
						break
					}
					conj = append(conj, Lit(rel, s, d))
				}
				if !legal {
					break
				}
			}
			if legal {
				formula = append(formula, conj)
			}
		}
	}
	if len(formula) == 0 {
		return nil, newError(CodeUnsatisfiable, "no physically possible way to do that")
	}
	return formula, nil
}

func physicallyLegal(src string, rel world.Relation, dst string, w *world.World) bool {
	srcObj, _ := w.Object(src)
	dstObj, _ := w.Object(dst)
	return world.Allowed(src, srcObj, rel, dst, dstObj)
}
