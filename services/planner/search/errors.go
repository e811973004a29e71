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

import "errors"

// Sentinel errors for the search package.
var (
	// ErrNoPath indicates the frontier was exhausted without reaching
	// a goal state. There is no partial result.
	ErrNoPath = errors.New("no path to a goal state")

	// ErrTimeLimit indicates the cooperative time budget ran out
	// before a goal state was reached. Callers that don't care about
	// the distinction should treat it like ErrNoPath.
	ErrTimeLimit = errors.New("search time limit exceeded")

	// ErrExpansionLimit indicates the node expansion budget ran out.
	ErrExpansionLimit = errors.New("search expansion limit exceeded")
)
