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
	"context"
	"fmt"
	"time"

	"github.com/Hagesjo/shrdlite-course-project/pkg/logging"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/search"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/space"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// SatisfiedNotice is the message returned when the start state
// already satisfies the goal. Interactive surfaces show it as the
// whole plan.
const SatisfiedNotice = "The goal is already satisfied."

// Service runs the interpret-then-plan pipeline.
//
// Thread Safety: Service is safe for concurrent use. Each Plan call
// owns its search bookkeeping; worlds and snapshots are read-only.
type Service struct {
	config Config
	store  *WorldStore
	logger *logging.Logger
}

// NewService creates the planning service.
//
// Description:
//
//	Wires the service to a world store and a search budget. The
//	store may be nil for callers that always pass inline
//	definitions.
//
// Inputs:
//
//	config - Service configuration
//	store - World library, may be nil
//	logger - Destination for pipeline logs, nil uses the default
//
// Outputs:
//
//	*Service - The configured service
func NewService(config Config, store *WorldStore, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		config: config,
		store:  store,
		logger: logger.With("component", "planner"),
	}
}

// Store returns the service's world library.
func (s *Service) Store() *WorldStore { return s.store }

// Resolve picks the world and start snapshot for a request. An
// inline definition wins over a store lookup; a snapshot override is
// validated against the chosen catalog.
func (s *Service) Resolve(worldName string, def *world.Definition, override *world.Snapshot) (*world.World, world.Snapshot, error) {
	var (
		w    *world.World
		snap world.Snapshot
	)
	switch {
	case def != nil:
		w = def.World()
		snap = def.Snapshot()
		if err := snap.Validate(w); err != nil {
			return nil, world.Snapshot{}, err
		}
	case worldName != "":
		if s.store == nil {
			return nil, world.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownWorld, worldName)
		}
		var err error
		w, snap, err = s.store.Get(worldName)
		if err != nil {
			return nil, world.Snapshot{}, err
		}
	default:
		return nil, world.Snapshot{}, fmt.Errorf("%w: no world or definition given", ErrUnknownWorld)
	}

	if override != nil {
		if err := override.Validate(w); err != nil {
			return nil, world.Snapshot{}, err
		}
		snap = *override
	}
	return w, snap, nil
}

// Interpret runs the goal interpreter over each command and reports
// every outcome, formula or error, without planning anything.
func (s *Service) Interpret(w *world.World, snap world.Snapshot, cmds []goal.Command) []Interpretation {
	out := make([]Interpretation, 0, len(cmds))
	for i, cmd := range cmds {
		formula, err := goal.Interpret(cmd, w, snap)
		if err != nil {
			interpretErrors.WithLabelValues(errorCode(err)).Inc()
			out = append(out, Interpretation{
				Command: i,
				Error:   err.Error(),
				Code:    errorCode(err),
			})
			continue
		}
		out = append(out, Interpretation{Command: i, Goal: formula.String()})
	}
	return out
}

// Plan interprets the candidate commands in order and plans the
// first one that yields a reachable goal.
//
// Description:
//
//	Commands are isolated from each other: an interpretation or
//	search failure in one candidate moves on to the next. Semantic
//	errors never trigger a search. The call fails only when every
//	candidate failed, and then it carries the first failure in
//	input order. A start state that already satisfies a goal wins
//	immediately with an empty plan and SatisfiedNotice.
//
// Inputs:
//
//	ctx - Bounds the whole call alongside the configured budget
//	w - Object catalog
//	snap - Start snapshot, must be valid for w
//	cmds - Candidate commands, tried in order
//
// Outputs:
//
//	PlanResponse - Plan for the winning candidate
//	error - Non-nil when every candidate failed
func (s *Service) Plan(ctx context.Context, w *world.World, snap world.Snapshot, cmds []goal.Command) (PlanResponse, error) {
	started := time.Now()
	defer func() {
		planDuration.Observe(time.Since(started).Seconds())
	}()

	if len(cmds) == 0 {
		planTotal.WithLabelValues("failed").Inc()
		return PlanResponse{}, ErrNoCommands
	}
	if err := snap.Validate(w); err != nil {
		planTotal.WithLabelValues("failed").Inc()
		return PlanResponse{}, err
	}

	model := &space.Model{World: w, MaxHeight: s.config.Search.MaxHeight}
	opts := search.Options{
		TimeLimit:     s.config.Search.TimeLimit.Std(),
		MaxExpansions: s.config.Search.MaxExpansions,
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remain := time.Until(deadline); opts.TimeLimit == 0 || remain < opts.TimeLimit {
			opts.TimeLimit = remain
		}
	}

	var firstErr error
	for i, cmd := range cmds {
		formula, err := goal.Interpret(cmd, w, snap)
		if err != nil {
			interpretErrors.WithLabelValues(errorCode(err)).Inc()
			s.logger.Debug("interpretation failed", "command", i, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if formula.Holds(snap) {
			planTotal.WithLabelValues("satisfied").Inc()
			s.logger.Info("goal already satisfied", "command", i, "goal", formula.String())
			return PlanResponse{
				Plan:       []string{},
				Message:    SatisfiedNotice,
				Goal:       formula.String(),
				Command:    i,
				DurationMS: float64(time.Since(started).Microseconds()) / 1000,
			}, nil
		}

		res, err := search.Search(model, space.Start(snap), space.GoalTest(formula), space.Heuristic(formula), opts)
		if err != nil {
			s.logger.Debug("search failed", "command", i, "goal", formula.String(), "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s", ErrGoalUnreachable, formula)
			}
			continue
		}

		actions := space.Actions(res.Path)
		planTotal.WithLabelValues("planned").Inc()
		planExpansions.Observe(float64(res.Expanded))
		planLength.Observe(float64(len(actions)))
		s.logger.Info("plan found",
			"command", i,
			"goal", formula.String(),
			"actions", len(actions),
			"expanded", res.Expanded,
			"duration", res.Duration)
		return PlanResponse{
			Plan:       actions,
			Goal:       formula.String(),
			Command:    i,
			Cost:       res.Cost,
			Expanded:   res.Expanded,
			DurationMS: float64(time.Since(started).Microseconds()) / 1000,
		}, nil
	}

	planTotal.WithLabelValues("failed").Inc()
	return PlanResponse{}, firstErr
}
