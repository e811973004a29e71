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
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all planner routes with the router.
//
// Description:
//
//	Registers all /v1/planner/* endpoints with the given Gin router
//	group. The router group should already have any required
//	middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	POST /v1/planner/plan - Interpret and plan candidate commands
//	POST /v1/planner/interpret - Interpret commands without planning
//	GET  /v1/planner/worlds - List stored worlds
//	GET  /v1/planner/worlds/:name - Get one world with its snapshot
//	GET  /v1/planner/session - WebSocket session for interactive use
//	GET  /v1/planner/health - Health check
//	GET  /v1/planner/ready - Readiness check
//
// Example:
//
//	svc := planner.NewService(cfg, store, logger)
//	handlers := planner.NewHandlers(svc)
//
//	v1 := router.Group("/v1")
//	planner.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	p := rg.Group("/planner")
	{
		// Planning pipeline
		p.POST("/plan", handlers.HandlePlan)
		p.POST("/interpret", handlers.HandleInterpret)

		// World library
		p.GET("/worlds", handlers.HandleWorlds)
		p.GET("/worlds/:name", handlers.HandleWorld)

		// Interactive session
		p.GET("/session", handlers.HandleSession)

		// Health checks
		p.GET("/health", handlers.HandleHealth)
		p.GET("/ready", handlers.HandleReady)
	}
}

// NewRouter builds the full service router: the /v1 planner routes
// plus the Prometheus scrape endpoint.
func NewRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	RegisterRoutes(v1, handlers)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}
