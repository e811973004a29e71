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
	"github.com/gorilla/websocket"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// WSRequest is one client message on a planner session.
type WSRequest struct {
	// Action is one of "load", "plan", "interpret", "apply",
	// "state".
	Action string `json:"action"`

	// World names a stored world, for "load".
	World string `json:"world,omitempty"`

	// Commands are the candidates for "plan" and "interpret".
	Commands []goal.Command `json:"commands,omitempty"`

	// Plan is an action sequence for "apply".
	Plan []string `json:"plan,omitempty"`
}

// WSResponse is one server message on a planner session.
type WSResponse struct {
	Action   string          `json:"action"`
	Plan     *PlanResponse   `json:"plan,omitempty"`
	Goals    []Interpretation `json:"goals,omitempty"`
	Snapshot *world.Snapshot `json:"snapshot,omitempty"`
	World    string          `json:"world,omitempty"`
	Error    string          `json:"error,omitempty"`
	Code     string          `json:"code,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  64 * 1024,
	WriteBufferSize: 64 * 1024,
}

// HandleSession handles GET /v1/planner/session.
//
// Description:
//
//	Upgrades to a WebSocket and runs an interactive planning
//	session. The session owns one world and a current snapshot;
//	"plan" answers against the current snapshot but does not move
//	anything, "apply" advances the snapshot by a plan. The world
//	catalog never changes mid-session.
//
// Thread Safety: each session runs on its connection's goroutine;
// sessions share nothing mutable.
func (h *Handlers) HandleSession(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.svc.logger.Error("failed to upgrade the websocket", "error", err)
		return
	}
	defer ws.Close()

	sessionID := uuid.New().String()
	logger := h.svc.logger.With("session_id", sessionID)
	logger.Info("planner session started")

	if err := ws.WriteJSON(gin.H{
		"action":    "session_created",
		"sessionId": sessionID,
		"worlds":    h.worldNames(),
	}); err != nil {
		return
	}

	var (
		w    *world.World
		snap world.Snapshot
		name string
	)

	for {
		var req WSRequest
		if err := ws.ReadJSON(&req); err != nil {
			logger.Info("planner session closed", "error", err.Error())
			return
		}

		if req.Action != "load" && w == nil {
			h.sendWSError(ws, req.Action, ErrUnknownWorld, "no world loaded")
			continue
		}

		switch req.Action {
		case "load":
			loaded, start, err := h.svc.Resolve(req.World, nil, nil)
			if err != nil {
				h.sendWSError(ws, req.Action, err, "")
				continue
			}
			w, snap, name = loaded, start, req.World
			logger.Info("session world loaded", "world", name)
			h.sendWS(ws, WSResponse{Action: "loaded", World: name, Snapshot: &snap})

		case "state":
			h.sendWS(ws, WSResponse{Action: "state", World: name, Snapshot: &snap})

		case "interpret":
			h.sendWS(ws, WSResponse{
				Action: "interpreted",
				Goals:  h.svc.Interpret(w, snap, req.Commands),
			})

		case "plan":
			resp, err := h.svc.Plan(c.Request.Context(), w, snap, req.Commands)
			if err != nil {
				h.sendWSError(ws, req.Action, err, "")
				continue
			}
			h.sendWS(ws, WSResponse{Action: "planned", Plan: &resp, Snapshot: &snap})

		case "apply":
			next, err := snap.ApplyAll(req.Plan)
			if err != nil {
				h.sendWSError(ws, req.Action, err, "")
				continue
			}
			if err := next.Validate(w); err != nil {
				h.sendWSError(ws, req.Action, err, "")
				continue
			}
			snap = next
			h.sendWS(ws, WSResponse{Action: "applied", Snapshot: &snap})

		default:
			h.sendWS(ws, WSResponse{
				Action: "error",
				Error:  "unknown action " + req.Action,
				Code:   "INVALID_REQUEST",
			})
		}
	}
}

func (h *Handlers) worldNames() []string {
	if store := h.svc.Store(); store != nil {
		return store.Names()
	}
	return nil
}

func (h *Handlers) sendWS(ws *websocket.Conn, v WSResponse) {
	if err := ws.WriteJSON(v); err != nil {
		h.svc.logger.Warn("Failed to write WebSocket JSON", "error", err)
	}
}

func (h *Handlers) sendWSError(ws *websocket.Conn, action string, err error, detail string) {
	msg := err.Error()
	if detail != "" {
		msg = detail
	}
	h.sendWS(ws, WSResponse{
		Action: action + "_failed",
		Error:  msg,
		Code:   errorCode(err),
	})
}
