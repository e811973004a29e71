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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyWorldYAML = `
name: tiny
arm: 0
stacks:
  - [b]
objects:
  b: { form: ball, size: small, color: red }
`

func TestWorldStoreEmbeddedOnly(t *testing.T) {
	store, err := NewWorldStore("", nil)
	require.NoError(t, err)
	defer store.Stop()

	names := store.Names()
	assert.Contains(t, names, "small")
	assert.Contains(t, names, "medium")
	assert.Contains(t, names, "impossible")

	w, snap, err := store.Get("small")
	require.NoError(t, err)
	assert.Equal(t, "small", w.Name)
	assert.Len(t, snap.Stacks, 5)

	_, _, err = store.Get("absent")
	assert.ErrorIs(t, err, ErrUnknownWorld)
}

func TestWorldStoreDirectoryOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(tinyWorldYAML), 0o644))

	store, err := NewWorldStore(dir, nil)
	require.NoError(t, err)
	defer store.Stop()

	assert.Contains(t, store.Names(), "tiny")
	assert.Contains(t, store.Names(), "small")

	w, snap, err := store.Get("tiny")
	require.NoError(t, err)
	assert.Equal(t, "tiny", w.Name)
	assert.Equal(t, [][]string{{"b"}}, snap.Stacks)
}

func TestWorldStoreShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	shadow := `
name: small
arm: 1
stacks:
  - []
  - [b]
objects:
  b: { form: ball, size: small, color: red }
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.yaml"), []byte(shadow), 0o644))

	store, err := NewWorldStore(dir, nil)
	require.NoError(t, err)
	defer store.Stop()

	w, snap, err := store.Get("small")
	require.NoError(t, err)
	assert.Len(t, w.Objects, 1)
	assert.Equal(t, 1, snap.Arm)
}

func TestWorldStoreSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(tinyWorldYAML), 0o644))
	// Held object also sitting in a stack.
	broken := `
name: broken
holding: b
stacks:
  - [b]
objects:
  b: { form: ball, size: small, color: red }
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(broken), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	store, err := NewWorldStore(dir, nil)
	require.NoError(t, err)
	defer store.Stop()

	names := store.Names()
	assert.Contains(t, names, "tiny")
	assert.NotContains(t, names, "broken")
	assert.NotContains(t, names, "notes")
}

func TestWorldStoreReloadPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewWorldStore(dir, nil)
	require.NoError(t, err)
	defer store.Stop()
	assert.NotContains(t, store.Names(), "tiny")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(tinyWorldYAML), 0o644))
	require.NoError(t, store.Reload())
	assert.Contains(t, store.Names(), "tiny")
}
