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
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandlers(testService(t)))
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlePlan(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("plans against a stored world", func(t *testing.T) {
		body := `{
			"world": "small",
			"commands": [{"command": "take", "entity": {
				"quantifier": "the",
				"object": {"form": "ball", "size": "large", "color": "white"}
			}}]
		}`
		w := postJSON(router, "/v1/planner/plan", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp PlanResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "holding(e)", resp.Goal)
		assert.Equal(t, []string{"p"}, resp.Plan)
	})

	t.Run("inline definition", func(t *testing.T) {
		body := `{
			"definition": {
				"name": "mini",
				"objects": {"b": {"form": "ball", "size": "small", "color": "red"}},
				"stacks": [["b"]]
			},
			"commands": [{"command": "take", "entity": {
				"quantifier": "the", "object": {"form": "ball"}
			}}]
		}`
		w := postJSON(router, "/v1/planner/plan", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp PlanResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"p"}, resp.Plan)
	})

	t.Run("unknown world is 404", func(t *testing.T) {
		body := `{"world": "nope", "commands": [{"command": "take", "entity": {
			"quantifier": "the", "object": {"form": "ball"}
		}}]}`
		w := postJSON(router, "/v1/planner/plan", body)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "UNKNOWN_WORLD", resp.Code)
	})

	t.Run("ambiguous reference is 400", func(t *testing.T) {
		// The small world has two balls.
		body := `{"world": "small", "commands": [{"command": "take", "entity": {
			"quantifier": "the", "object": {"form": "ball"}
		}}]}`
		w := postJSON(router, "/v1/planner/plan", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "REFERENCE_AMBIGUOUS", resp.Code)
	})

	t.Run("empty command list is 400", func(t *testing.T) {
		w := postJSON(router, "/v1/planner/plan", `{"world": "small", "commands": []}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NO_COMMANDS", resp.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := postJSON(router, "/v1/planner/plan", `{"world": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleInterpret(t *testing.T) {
	router := setupTestRouter(t)

	body := `{"world": "small", "commands": [
		{"command": "take", "entity": {"quantifier": "any", "object": {"form": "ball"}}},
		{"command": "take", "entity": {"quantifier": "the", "object": {"form": "ball"}}}
	]}`
	w := postJSON(router, "/v1/planner/interpret", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp InterpretResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Interpretations, 2)

	assert.Equal(t, "holding(e) | holding(f)", resp.Interpretations[0].Goal)
	assert.Equal(t, "REFERENCE_AMBIGUOUS", resp.Interpretations[1].Code)
}

func TestHandleWorlds(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/v1/planner/worlds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp WorldsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	names := make([]string, 0, len(resp.Worlds))
	for _, info := range resp.Worlds {
		names = append(names, info.Name)
	}
	assert.Contains(t, names, "small")
	assert.Contains(t, names, "medium")
}

func TestHandleWorldByName(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/v1/planner/worlds/small", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/v1/planner/worlds/nope", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req, _ = http.NewRequest("GET", "/v1/planner/worlds/..", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealthAndReady(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/v1/planner/health", "/v1/planner/ready"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t)

	w := postJSON(router, "/v1/planner/plan", `{"world": "small", "commands": []}`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req, _ := http.NewRequest("POST", "/v1/planner/plan", bytes.NewBufferString(`{"world": "small", "commands": []}`))
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}
