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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/search"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

func boxBallWorld() *world.World {
	return &world.World{
		Name: "box-ball",
		Objects: map[string]world.Object{
			"a": {Form: world.FormBox, Size: world.SizeLarge, Color: "yellow"},
			"b": {Form: world.FormBall, Size: world.SizeSmall, Color: "red"},
			"t": {Form: world.FormTable, Size: world.SizeLarge, Color: "blue"},
		},
	}
}

func actionSet(edges []search.Edge[Node]) map[string]Node {
	out := make(map[string]Node, len(edges))
	for _, e := range edges {
		out[e.To.Action] = e.To
	}
	return out
}

func TestOutgoingEdgesArmBoundaries(t *testing.T) {
	m := NewModel(boxBallWorld())

	t.Run("leftmost column offers no left move", func(t *testing.T) {
		n := Start(world.Snapshot{Stacks: [][]string{{}, {}}, Arm: 0})
		edges := actionSet(m.OutgoingEdges(n))
		assert.NotContains(t, edges, world.ActionLeft)
		assert.Contains(t, edges, world.ActionRight)
	})

	t.Run("rightmost column offers no right move", func(t *testing.T) {
		n := Start(world.Snapshot{Stacks: [][]string{{}, {}}, Arm: 1})
		edges := actionSet(m.OutgoingEdges(n))
		assert.Contains(t, edges, world.ActionLeft)
		assert.NotContains(t, edges, world.ActionRight)
	})

	t.Run("single column offers no arm moves", func(t *testing.T) {
		n := Start(world.Snapshot{Stacks: [][]string{{"b"}}, Arm: 0})
		edges := actionSet(m.OutgoingEdges(n))
		assert.NotContains(t, edges, world.ActionLeft)
		assert.NotContains(t, edges, world.ActionRight)
	})
}

func TestOutgoingEdgesPickAndDrop(t *testing.T) {
	m := NewModel(boxBallWorld())

	t.Run("pick requires empty arm and non-empty column", func(t *testing.T) {
		empty := Start(world.Snapshot{Stacks: [][]string{{}, {"b"}}, Arm: 0})
		assert.NotContains(t, actionSet(m.OutgoingEdges(empty)), world.ActionPick)

		holding := Start(world.Snapshot{Stacks: [][]string{{"b"}, {}}, Holding: "t", Arm: 0})
		assert.NotContains(t, actionSet(m.OutgoingEdges(holding)), world.ActionPick)

		ready := Start(world.Snapshot{Stacks: [][]string{{"b"}, {}}, Arm: 0})
		edges := actionSet(m.OutgoingEdges(ready))
		require.Contains(t, edges, world.ActionPick)
		assert.Equal(t, "b", edges[world.ActionPick].Snapshot.Holding)
	})

	t.Run("drop onto empty column is the floor", func(t *testing.T) {
		n := Start(world.Snapshot{Stacks: [][]string{{}, {}}, Holding: "b", Arm: 0})
		edges := actionSet(m.OutgoingEdges(n))
		require.Contains(t, edges, world.ActionDrop)
		assert.Equal(t, []string{"b"}, edges[world.ActionDrop].Snapshot.Stacks[0])
	})

	t.Run("drop consults physics", func(t *testing.T) {
		// Ball into box: inside, legal.
		intoBox := Start(world.Snapshot{Stacks: [][]string{{"a"}}, Holding: "b", Arm: 0})
		assert.Contains(t, actionSet(m.OutgoingEdges(intoBox)), world.ActionDrop)

		// Box onto ball: rejected.
		ontoBall := Start(world.Snapshot{Stacks: [][]string{{"b"}}, Holding: "a", Arm: 0})
		assert.NotContains(t, actionSet(m.OutgoingEdges(ontoBall)), world.ActionDrop)

		// Ball onto table: balls roll off.
		ontoTable := Start(world.Snapshot{Stacks: [][]string{{"t"}}, Holding: "b", Arm: 0})
		assert.NotContains(t, actionSet(m.OutgoingEdges(ontoTable)), world.ActionDrop)
	})

	t.Run("height cap blocks full columns", func(t *testing.T) {
		capped := &Model{World: boxBallWorld(), MaxHeight: 1}
		n := Start(world.Snapshot{Stacks: [][]string{{"a"}}, Holding: "b", Arm: 0})
		assert.NotContains(t, actionSet(capped.OutgoingEdges(n)), world.ActionDrop)
	})
}

func TestOutgoingEdgesPreserveInvariants(t *testing.T) {
	w := boxBallWorld()
	m := NewModel(w)

	start := world.Snapshot{Stacks: [][]string{{"a"}, {"b"}, {}}, Arm: 1}
	require.NoError(t, start.Validate(w))

	// Walk two levels of the state space, validating every derived
	// snapshot and checking the parent is never mutated.
	frontier := []Node{Start(start)}
	for depth := 0; depth < 2; depth++ {
		var next []Node
		for _, n := range frontier {
			before := n.Snapshot.Key()
			for _, e := range m.OutgoingEdges(n) {
				assert.NoError(t, e.To.Snapshot.Validate(w))
				assert.Equal(t, 1.0, e.Cost)
				next = append(next, e.To)
			}
			assert.Equal(t, before, n.Snapshot.Key())
		}
		frontier = next
	}
}

func TestPlanTakeTheBall(t *testing.T) {
	// One column ["a"], a = small red ball, arm at 0: "take the
	// ball" plans a single pick.
	w := &world.World{
		Name: "tiny",
		Objects: map[string]world.Object{
			"a": {Form: world.FormBall, Size: world.SizeSmall, Color: "red"},
		},
	}
	snap := world.Snapshot{Stacks: [][]string{{"a"}}, Arm: 0}

	formula, err := goal.Interpret(goal.Command{
		Kind:   goal.Take,
		Entity: &goal.Entity{Quantifier: goal.The, Object: goal.Spec{Form: "ball"}},
	}, w, snap)
	require.NoError(t, err)
	require.Equal(t, "holding(a)", formula.String())

	m := NewModel(w)
	res, err := search.Search[Node](m, Start(snap), GoalTest(formula), Heuristic(formula), search.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p"}, Actions(res.Path))
	assert.Equal(t, 1.0, res.Cost)
}

func TestPlanBallIntoBox(t *testing.T) {
	// Columns [["a"],["b"]], a = box, b = ball: moving the ball
	// inside the box is fetch-and-carry.
	w := boxBallWorld()
	snap := world.Snapshot{Stacks: [][]string{{"a"}, {"b"}}, Arm: 0}

	formula, err := goal.Interpret(goal.Command{
		Kind:   goal.Move,
		Entity: &goal.Entity{Quantifier: goal.The, Object: goal.Spec{Form: "ball"}},
		Location: &goal.Location{
			Relation: world.Inside,
			Entity:   goal.Entity{Quantifier: goal.The, Object: goal.Spec{Form: "box"}},
		},
	}, w, snap)
	require.NoError(t, err)

	m := NewModel(w)
	res, err := search.Search[Node](m, Start(snap), GoalTest(formula), Heuristic(formula), search.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "p", "l", "d"}, Actions(res.Path))

	end, err := snap.ApplyAll(Actions(res.Path))
	require.NoError(t, err)
	assert.True(t, formula.Holds(end))
}

func TestPlanGoalAlreadySatisfied(t *testing.T) {
	w := boxBallWorld()
	snap := world.Snapshot{Stacks: [][]string{{"a", "b"}}, Arm: 0}

	formula := goal.Formula{{goal.Lit(world.Inside, "b", "a")}}
	require.True(t, formula.Holds(snap))

	m := NewModel(w)
	res, err := search.Search[Node](m, Start(snap), GoalTest(formula), Heuristic(formula), search.Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0.0, res.Cost)
}

func TestPlanUnreachableGoal(t *testing.T) {
	// A single ball and a table: the ball can never sit on the
	// table, and the formula asserts it does.
	w := boxBallWorld()
	snap := world.Snapshot{Stacks: [][]string{{"t"}, {"b"}}, Arm: 0}

	formula := goal.Formula{{goal.Lit(world.Ontop, "b", "t")}}
	m := NewModel(w)
	_, err := search.Search[Node](m, Start(snap), GoalTest(formula), Heuristic(formula), search.Options{})
	assert.ErrorIs(t, err, search.ErrNoPath)
}
