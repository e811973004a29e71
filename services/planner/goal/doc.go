// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package goal turns parsed commands into goal formulas.
//
// A Command is the already-parsed form of an utterance like "put the
// white ball inside the yellow box". How it was parsed is someone
// else's problem; commands enter this package as structured values
// (typically decoded from JSON).
//
// Interpret resolves the command's referring expressions against a
// world snapshot, applies quantifier semantics ("the" exactly one,
// "any" one disjunct per match, "all" every match in one conjunct)
// and the physical laws, and produces a Formula in disjunctive normal
// form over relational literals. The formula is what the planner
// actually searches for; the command text never reaches the search.
//
// Interpretation is deterministic: the same command against the same
// snapshot yields a literal-for-literal identical formula, ordering
// included. Candidate objects are enumerated left-to-right,
// bottom-to-top, held object last.
//
// # Errors
//
// All interpretation failures carry a stable machine-readable Code
// (reference ambiguity, unsupported references, static semantic
// mismatches, physical unsatisfiability) so callers can fail fast
// before running a potentially expensive search.
package goal
