// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"container/heap"
	"time"
)

// Node is the minimal contract the engine needs from a search state:
// a stable key giving value-based identity. Two nodes with equal keys
// are the same state.
type Node interface {
	Key() string
}

// Edge is one weighted directed transition.
type Edge[N Node] struct {
	From N
	To   N
	Cost float64
}

// Graph exposes the outgoing edges of a node. Implementations must
// not mutate the node they are asked about.
type Graph[N Node] interface {
	OutgoingEdges(n N) []Edge[N]
}

// Options bounds a single Search call. The zero value means no
// budget: the search runs until the frontier is exhausted.
type Options struct {
	// TimeLimit is the cooperative wall-clock budget, checked once
	// per dequeue. 0 disables the check.
	TimeLimit time.Duration

	// MaxExpansions caps the number of dequeued nodes. 0 disables
	// the cap.
	MaxExpansions int
}

// Result is a successful search outcome.
type Result[N Node] struct {
	// Path runs from the start (exclusive) to the goal (inclusive).
	// A start state that already satisfies the goal yields an empty
	// path with cost 0, which is not an error.
	Path []N

	// Cost is the accumulated edge cost along Path.
	Cost float64

	// Expanded counts dequeued nodes, for diagnostics.
	Expanded int

	// Duration is the wall-clock time the search took.
	Duration time.Duration
}

// step records how a node was first cheaply reached, for path
// reconstruction.
type step[N Node] struct {
	node    N
	prevKey string
}

// Search runs A* from start until isGoal holds for a dequeued node.
//
// heuristic estimates remaining cost; passing a function that always
// returns 0 degrades gracefully to Dijkstra. The search is exact with
// respect to the supplied heuristic: with an admissible heuristic the
// returned path is cheapest, otherwise it is merely a valid path.
//
// Returns ErrNoPath when the frontier empties, ErrTimeLimit or
// ErrExpansionLimit when a budget runs out first. There is never a
// partial result: on error the Result carries only diagnostics.
func Search[N Node](g Graph[N], start N, isGoal func(N) bool, heuristic func(N) float64, opts Options) (Result[N], error) {
	began := time.Now()

	startKey := start.Key()
	dist := map[string]float64{startKey: 0}
	cameFrom := map[string]step[N]{startKey: {node: start}}

	front := &frontier[N]{}
	heap.Init(front)
	heap.Push(front, &frontierItem[N]{
		node:     start,
		key:      startKey,
		gCost:    0,
		priority: heuristic(start),
	})

	expanded := 0
	for front.Len() > 0 {
		if opts.TimeLimit > 0 && time.Since(began) > opts.TimeLimit {
			return Result[N]{Expanded: expanded, Duration: time.Since(began)}, ErrTimeLimit
		}
		if opts.MaxExpansions > 0 && expanded >= opts.MaxExpansions {
			return Result[N]{Expanded: expanded, Duration: time.Since(began)}, ErrExpansionLimit
		}

		item := heap.Pop(front).(*frontierItem[N])

		// Stale entry from a lazy re-insert: a cheaper route to this
		// state has been recorded since it was enqueued.
		if item.gCost > dist[item.key] {
			continue
		}
		expanded++

		if isGoal(item.node) {
			return Result[N]{
				Path:     reconstruct(cameFrom, startKey, item.key),
				Cost:     item.gCost,
				Expanded: expanded,
				Duration: time.Since(began),
			}, nil
		}

		for _, edge := range g.OutgoingEdges(item.node) {
			tentative := item.gCost + edge.Cost
			toKey := edge.To.Key()
			if best, seen := dist[toKey]; seen && tentative >= best {
				continue
			}
			dist[toKey] = tentative
			cameFrom[toKey] = step[N]{node: edge.To, prevKey: item.key}
			heap.Push(front, &frontierItem[N]{
				node:     edge.To,
				key:      toKey,
				gCost:    tentative,
				priority: tentative + heuristic(edge.To),
			})
		}
	}

	return Result[N]{Expanded: expanded, Duration: time.Since(began)}, ErrNoPath
}

// reconstruct walks the predecessor map from the goal back to the
// start and reverses, yielding a start-exclusive, goal-inclusive path.
func reconstruct[N Node](cameFrom map[string]step[N], startKey, goalKey string) []N {
	var reversed []N
	for key := goalKey; key != startKey; {
		s := cameFrom[key]
		reversed = append(reversed, s.node)
		key = s.prevKey
	}
	path := make([]N, len(reversed))
	for i, n := range reversed {
		path[len(path)-1-i] = n
	}
	return path
}
