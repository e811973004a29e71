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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Hagesjo/shrdlite-course-project/pkg/validation"
)

// Handlers contains the HTTP handlers for the planner service.
//
// Thread Safety: Handlers is safe for concurrent use.
type Handlers struct {
	svc *Service
}

// NewHandlers creates handlers wrapping the service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// HandlePlan handles POST /v1/planner/plan.
//
// Description:
//
//	Resolves the request's world, interprets the candidate commands
//	and returns the plan for the first candidate that works.
//
// Request Body:
//
//	PlanRequest
//
// Response:
//
//	200 OK: PlanResponse
//	400 Bad Request: Interpretation or validation error
//	404 Not Found: Unknown world
//	422 Unprocessable Entity: Goal unreachable
//	500 Internal Server Error: Processing error
func (h *Handlers) HandlePlan(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.svc.logger.With("request_id", requestID, "handler", "HandlePlan")

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if len(req.Commands) == 0 {
		logger.Warn("Empty command list")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "At least one command is required",
			Code:  errorCode(ErrNoCommands),
		})
		return
	}

	w, snap, err := h.svc.Resolve(req.World, req.Definition, req.Snapshot)
	if err != nil {
		logger.Warn("World resolution failed", "world", req.World, "error", err)
		c.JSON(httpStatus(err), ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		return
	}

	resp, err := h.svc.Plan(c.Request.Context(), w, snap, req.Commands)
	if err != nil {
		logger.Info("Plan failed", "error", err)
		c.JSON(httpStatus(err), ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleInterpret handles POST /v1/planner/interpret.
//
// Description:
//
//	Runs only the goal interpreter and reports each command's
//	formula or error. Nothing is planned.
//
// Request Body:
//
//	InterpretRequest
//
// Response:
//
//	200 OK: InterpretResponse
//	400 Bad Request: Validation error
//	404 Not Found: Unknown world
func (h *Handlers) HandleInterpret(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.svc.logger.With("request_id", requestID, "handler", "HandleInterpret")

	var req InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	w, snap, err := h.svc.Resolve(req.World, req.Definition, req.Snapshot)
	if err != nil {
		logger.Warn("World resolution failed", "world", req.World, "error", err)
		c.JSON(httpStatus(err), ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		return
	}

	c.JSON(http.StatusOK, InterpretResponse{
		Interpretations: h.svc.Interpret(w, snap, req.Commands),
	})
}

// HandleWorlds handles GET /v1/planner/worlds.
func (h *Handlers) HandleWorlds(c *gin.Context) {
	store := h.svc.Store()
	if store == nil {
		c.JSON(http.StatusOK, WorldsResponse{Worlds: []WorldInfo{}})
		return
	}

	names := store.Names()
	infos := make([]WorldInfo, 0, len(names))
	for _, name := range names {
		w, snap, err := store.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, WorldInfo{
			Name:     name,
			Objects:  len(w.Objects),
			Columns:  len(snap.Stacks),
			Snapshot: snap,
		})
	}
	c.JSON(http.StatusOK, WorldsResponse{Worlds: infos})
}

// HandleWorld handles GET /v1/planner/worlds/:name.
func (h *Handlers) HandleWorld(c *gin.Context) {
	name := c.Param("name")
	if err := validation.ValidateWorldName(name); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_WORLD_NAME",
		})
		return
	}
	store := h.svc.Store()
	if store == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "No world store configured",
			Code:  errorCode(ErrUnknownWorld),
		})
		return
	}
	w, snap, err := store.Get(name)
	if err != nil {
		c.JSON(httpStatus(err), ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"objects": w.Objects,
		"stacks":  snap.Stacks,
		"holding": snap.Holding,
		"arm":     snap.Arm,
	})
}

// HandleHealth handles GET /v1/planner/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleReady handles GET /v1/planner/ready.
func (h *Handlers) HandleReady(c *gin.Context) {
	worlds := 0
	if store := h.svc.Store(); store != nil {
		worlds = len(store.Names())
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "worlds": worlds})
}
