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
	"github.com/Hagesjo/shrdlite-course-project/services/planner/search"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// Node is one planning state: a snapshot plus the label of the action
// that produced it from its predecessor. Nodes are never mutated once
// created.
type Node struct {
	Snapshot world.Snapshot

	// Action is "l", "r", "p" or "d"; empty only for the start node.
	Action string
}

// Key gives value-based identity over the full state. The producing
// action is deliberately excluded: two routes into the same snapshot
// are the same search state.
func (n Node) Key() string {
	return n.Snapshot.Key()
}

// Model is the state-space graph for one world. It implements
// search.Graph.
type Model struct {
	// World supplies the descriptors the physics checks need.
	World *world.World

	// MaxHeight caps column height when positive; 0 leaves columns
	// unbounded.
	MaxHeight int
}

// NewModel builds a model over a world with unbounded columns.
func NewModel(w *world.World) *Model {
	return &Model{World: w}
}

// Start wraps a snapshot as the initial planning node.
func Start(s world.Snapshot) Node {
	return Node{Snapshot: s}
}

// OutgoingEdges generates the legal single-step transitions from a
// state, in the fixed order left, right, pick, drop, each with unit
// cost. The originating node is not modified.
func (m *Model) OutgoingEdges(n Node) []search.Edge[Node] {
	s := n.Snapshot
	edges := make([]search.Edge[Node], 0, 4)

	if s.Arm > 0 {
		next, _ := s.MoveArm(s.Arm - 1)
		edges = append(edges, m.edge(n, next, world.ActionLeft))
	}
	if s.Arm < len(s.Stacks)-1 {
		next, _ := s.MoveArm(s.Arm + 1)
		edges = append(edges, m.edge(n, next, world.ActionRight))
	}
	if s.Holding == "" && len(s.Stacks[s.Arm]) > 0 {
		next, _ := s.Pick()
		edges = append(edges, m.edge(n, next, world.ActionPick))
	}
	if s.Holding != "" && m.dropAllowed(s) {
		next, _ := s.Drop()
		edges = append(edges, m.edge(n, next, world.ActionDrop))
	}

	return edges
}

// dropAllowed checks the drop preconditions beyond holding something:
// the column has room, and physics approves resting the payload on
// the current top. An empty column is the floor, which supports
// anything.
func (m *Model) dropAllowed(s world.Snapshot) bool {
	if m.MaxHeight > 0 && len(s.Stacks[s.Arm]) >= m.MaxHeight {
		return false
	}
	topID := s.TopID(s.Arm)
	if topID == "" {
		return true
	}
	held, _ := m.World.Object(s.Holding)
	top, _ := m.World.Object(topID)
	return world.Allowed(s.Holding, held, world.SupportRelation(top), topID, top)
}

func (m *Model) edge(from Node, to world.Snapshot, action string) search.Edge[Node] {
	return search.Edge[Node]{
		From: from,
		To:   Node{Snapshot: to, Action: action},
		Cost: 1,
	}
}

// Actions extracts the action labels along a search path.
func Actions(path []Node) []string {
	actions := make([]string, len(path))
	for i, n := range path {
		actions[i] = n.Action
	}
	return actions
}
