// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package space is the state-space model of the blocks world: it
// defines planning nodes (a snapshot plus the action that produced
// it) and the legal single-step transitions between them, and
// supplies the goal test and heuristic that drive the search.
//
// # Actions
//
// Four actions, each with cost 1:
//
//   - l: move the arm one column left (arm > 0)
//   - r: move the arm one column right (arm < last column)
//   - p: pick the top object of the current column (arm empty,
//     column non-empty)
//   - d: drop the payload on the current column (arm full, and the
//     physics validator approves the placement when the column is
//     non-empty)
//
// Edge generation never mutates the originating state; every edge's
// destination is a freshly derived snapshot sharing the untouched
// columns.
//
// # Heuristic
//
// The heuristic estimates, per literal, the minimum arm moves to
// reposition plus a unit step for each forced pick or drop, sums the
// estimates within a conjunction, and takes the minimum across
// conjunctions. Each per-literal estimate is a lower bound, but the
// sum can overestimate when literals share work, so plans are
// satisficing rather than certified shortest.
package space
