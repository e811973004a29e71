// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package planner provides the blocks-world planning service.
//
// The service ties the subpackages together: commands are interpreted
// against a world (goal), the resulting formulas are planned over the
// state space (space) with best-first search (search), and the answer
// is an ordered list of arm actions.
//
// The package exposes the pipeline two ways:
//   - Service, a plain Go API for embedding (the CLI uses this).
//   - HTTP handlers on Gin under /v1/planner, plus a WebSocket
//     session endpoint for interactive clients.
//
// Worlds come from an on-disk library (hot reloaded via fsnotify)
// with the embedded examples as fallback.
package planner
