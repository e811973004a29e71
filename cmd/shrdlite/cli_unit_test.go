// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
)

func TestReadCommandsFromArg(t *testing.T) {
	cmds, err := readCommands([]string{
		`{"command":"take","entity":{"quantifier":"the","object":{"form":"ball"}}}`,
	})
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, goal.Take, cmds[0].Kind)
}

func TestReadCommandsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmd.json")
	data := `[
		{"command":"take","entity":{"quantifier":"any","object":{"form":"ball"}}},
		{"command":"take","entity":{"quantifier":"any","object":{"form":"box"}}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	inputFile = path
	defer func() { inputFile = "" }()

	cmds, err := readCommands(nil)
	require.NoError(t, err)
	assert.Len(t, cmds, 2)
}

func TestReadCommandsRejectsGarbage(t *testing.T) {
	_, err := readCommands([]string{`not json`})
	assert.Error(t, err)
}

func TestCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"plan", "interpret", "worlds", "render", "tui", "serve"} {
		assert.True(t, names[want], want)
	}
}
