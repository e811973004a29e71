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
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Hagesjo/shrdlite-course-project/pkg/logging"
	"github.com/Hagesjo/shrdlite-course-project/pkg/validation"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// storedWorld pairs a catalog with its starting snapshot.
type storedWorld struct {
	world *world.World
	snap  world.Snapshot
}

// WorldStore is the world library: the embedded examples overlaid
// with *.yaml files from an optional directory. A directory world
// with the same name as an example shadows it.
//
// Thread Safety: safe for concurrent use. Reload swaps the whole map
// under the write lock.
type WorldStore struct {
	dir    string
	logger *logging.Logger

	mu     sync.RWMutex
	worlds map[string]storedWorld

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewWorldStore builds a store from the embedded examples plus the
// given directory (empty string skips the directory).
func NewWorldStore(dir string, logger *logging.Logger) (*WorldStore, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &WorldStore{
		dir:    dir,
		logger: logger.With("component", "world_store"),
		done:   make(chan struct{}),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Names returns the stored world names, sorted.
func (s *WorldStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.worlds))
	for name := range s.worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a world and its starting snapshot by name.
func (s *WorldStore) Get(name string) (*world.World, world.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sw, ok := s.worlds[name]
	if !ok {
		return nil, world.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownWorld, name)
	}
	return sw.world, sw.snap, nil
}

// Reload rebuilds the library from the embedded examples and the
// directory. A broken file is logged and skipped; the rest of the
// library still loads.
func (s *WorldStore) Reload() error {
	worlds := make(map[string]storedWorld)

	for _, name := range world.Examples() {
		w, snap, err := world.Example(name)
		if err != nil {
			return fmt.Errorf("embedded world %q: %w", name, err)
		}
		worlds[name] = storedWorld{world: w, snap: snap}
	}

	if s.dir != "" {
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			worldReloads.WithLabelValues("error").Inc()
			return fmt.Errorf("read worlds dir: %w", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !isWorldFile(name) {
				continue
			}
			path := filepath.Join(s.dir, name)
			w, snap, err := world.LoadFile(path)
			if err != nil {
				s.logger.Warn("skipping broken world file", "path", path, "error", err)
				continue
			}
			key := w.Name
			if key == "" {
				key = strings.TrimSuffix(name, filepath.Ext(name))
			}
			key, err = validation.SanitizeWorldName(key)
			if err != nil {
				s.logger.Warn("skipping world with invalid name", "path", path, "error", err)
				continue
			}
			worlds[key] = storedWorld{world: w, snap: snap}
		}
	}

	s.mu.Lock()
	s.worlds = worlds
	s.mu.Unlock()

	worldReloads.WithLabelValues("ok").Inc()
	s.logger.Debug("world library loaded", "worlds", len(worlds))
	return nil
}

func isWorldFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Watch reloads the library when the directory changes on disk.
// Events are debounced so an editor save burst triggers one reload.
// Returns immediately when the store has no directory.
func (s *WorldStore) Watch(ctx context.Context) error {
	if s.dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.watcher = watcher

	go s.watchLoop(ctx)
	return nil
}

// Stop stops the directory watcher.
func (s *WorldStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.watcher != nil {
			s.watcher.Close()
		}
	})
}

func (s *WorldStore) watchLoop(ctx context.Context) {
	const debounce = 200 * time.Millisecond

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !isWorldFile(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watcher error", "error", err)
		case <-fire:
			timer = nil
			fire = nil
			if err := s.Reload(); err != nil {
				s.logger.Error("world reload failed", "error", err)
			} else {
				s.logger.Info("world library reloaded", "dir", s.dir)
			}
		}
	}
}
