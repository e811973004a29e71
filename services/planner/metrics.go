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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// planTotal counts plan calls by outcome
	planTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_plan_total",
		Help: "Total plan calls by outcome",
	}, []string{"outcome"}) // "planned", "satisfied", "failed"

	// planDuration tracks end-to-end plan latency
	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_plan_duration_seconds",
		Help:    "Plan call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~16s
	})

	// planExpansions tracks search effort per successful plan
	planExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_plan_expansions",
		Help:    "Nodes expanded per successful plan",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
	})

	// planLength tracks plan sizes
	planLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_plan_length",
		Help:    "Actions per successful plan",
		Buckets: prometheus.LinearBuckets(0, 5, 13), // 0 to 60
	})

	// interpretErrors counts interpretation failures by code
	interpretErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_interpret_errors_total",
		Help: "Total interpretation failures by error code",
	}, []string{"code"})

	// worldReloads counts world library reloads
	worldReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_world_reloads_total",
		Help: "Total world library reloads by result",
	}, []string{"result"}) // "ok" or "error"
)
