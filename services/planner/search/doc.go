// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements best-first graph search (A*) over an
// abstract weighted directed graph.
//
// The engine knows nothing about the blocks world. Callers supply a
// Graph that enumerates outgoing edges, a goal predicate, and a
// heuristic; the engine returns the discovered path and its cost.
//
// # Identity
//
// Node identity is value-based: two nodes with equal Key() strings are
// the same search state, regardless of how they were reached. This is
// what makes cost relaxation meaningful.
//
// # Frontier
//
// The frontier is a binary heap ordered by estimated total cost
// (gCost + heuristic), ties broken by insertion sequence so runs are
// reproducible. Re-inserting a node with a better cost is permitted;
// stale entries are skipped on dequeue by comparing against the best
// known cost (lazy deletion rather than decrease-key).
//
// # Budgets
//
// The time budget is cooperative: the engine checks the elapsed time
// once per dequeue and gives up with ErrTimeLimit when exceeded. There
// is no other cancellation signal.
package search
