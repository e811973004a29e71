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
	"errors"
	"net/http"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/search"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

var (
	// ErrGoalUnreachable means the search exhausted its frontier or
	// its budget without reaching a satisfying state. Callers cannot
	// tell the two apart; the distinction is deliberately folded.
	ErrGoalUnreachable = errors.New("goal unreachable")

	// ErrUnknownWorld means the requested world name is not in the
	// store.
	ErrUnknownWorld = errors.New("unknown world")

	// ErrNoCommands means a plan request carried an empty command
	// list.
	ErrNoCommands = errors.New("no commands given")
)

// CodeGoalUnreachable joins the interpreter's code space for wire
// responses.
const CodeGoalUnreachable goal.Code = "GOAL_UNREACHABLE"

// errorCode maps any pipeline error to its stable wire code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrGoalUnreachable),
		errors.Is(err, search.ErrNoPath),
		errors.Is(err, search.ErrTimeLimit),
		errors.Is(err, search.ErrExpansionLimit):
		return string(CodeGoalUnreachable)
	case errors.Is(err, ErrUnknownWorld):
		return "UNKNOWN_WORLD"
	case errors.Is(err, ErrNoCommands):
		return "NO_COMMANDS"
	case errors.Is(err, world.ErrInvalidSnapshot):
		return "INVALID_SNAPSHOT"
	case errors.Is(err, world.ErrIllegalAction):
		return "ILLEGAL_ACTION"
	}
	if code := goal.CodeOf(err); code != "" {
		return string(code)
	}
	return "INTERNAL"
}

// httpStatus picks the response status for a pipeline error.
// Interpretation errors are the client's fault; an unreachable goal
// is a valid answer about the world, reported as 422.
func httpStatus(err error) int {
	switch errorCode(err) {
	case string(CodeGoalUnreachable):
		return http.StatusUnprocessableEntity
	case "UNKNOWN_WORLD":
		return http.StatusNotFound
	case "INTERNAL":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
