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

import "errors"

// Sentinel errors for the world package.
var (
	// ErrUnknownName indicates an unrecognized form, size, or relation name.
	ErrUnknownName = errors.New("unknown name")

	// ErrUnknownObject indicates an identifier with no catalog entry.
	ErrUnknownObject = errors.New("unknown object")

	// ErrInvalidSnapshot indicates a snapshot violating a state invariant.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrIllegalAction indicates an action whose precondition does not hold.
	ErrIllegalAction = errors.New("illegal action")
)
