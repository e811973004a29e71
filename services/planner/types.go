// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package planner

import (
	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// PlanRequest asks the service to plan one or more candidate
// commands against a world.
type PlanRequest struct {
	// World names a world in the store. Required unless a full
	// inline definition is given.
	World string `json:"world,omitempty"`

	// Definition is an optional inline world, used instead of the
	// store when present.
	Definition *world.Definition `json:"definition,omitempty"`

	// Snapshot overrides the world's initial snapshot.
	Snapshot *world.Snapshot `json:"snapshot,omitempty"`

	// Commands are the candidate interpretations, tried in order.
	Commands []goal.Command `json:"commands"`
}

// PlanResponse is the answer for the first command that planned.
type PlanResponse struct {
	// Plan is the action sequence, entries from {"l","r","p","d"}.
	// Empty when the goal already held; Message says so.
	Plan []string `json:"plan"`

	// Message is a human-readable notice, set when no actions are
	// needed.
	Message string `json:"message,omitempty"`

	// Goal is the planned formula in display form.
	Goal string `json:"goal"`

	// Command is the index of the winning command in the request.
	Command int `json:"command"`

	Cost       float64 `json:"cost"`
	Expanded   int     `json:"expanded"`
	DurationMS float64 `json:"duration_ms"`
}

// InterpretRequest asks for the goal formulas of candidate commands
// without planning them.
type InterpretRequest struct {
	World      string            `json:"world,omitempty"`
	Definition *world.Definition `json:"definition,omitempty"`
	Snapshot   *world.Snapshot   `json:"snapshot,omitempty"`
	Commands   []goal.Command    `json:"commands"`
}

// Interpretation is one command's outcome: a formula or an error.
type Interpretation struct {
	Command int    `json:"command"`
	Goal    string `json:"goal,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// InterpretResponse carries one entry per request command.
type InterpretResponse struct {
	Interpretations []Interpretation `json:"interpretations"`
}

// WorldInfo describes one stored world.
type WorldInfo struct {
	Name     string         `json:"name"`
	Objects  int            `json:"objects"`
	Columns  int            `json:"columns"`
	Snapshot world.Snapshot `json:"snapshot"`
}

// WorldsResponse lists the store contents.
type WorldsResponse struct {
	Worlds []WorldInfo `json:"worlds"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the stable error code (optional).
	Code string `json:"code,omitempty"`

	// Details provides additional error context (optional).
	Details string `json:"details,omitempty"`
}
