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
	"fmt"
	"os"

	"github.com/Hagesjo/shrdlite-course-project/pkg/logging"
	"github.com/Hagesjo/shrdlite-course-project/pkg/ux"
	"github.com/Hagesjo/shrdlite-course-project/services/planner"
)

var (
	config Config
	logger *logging.Logger
)

// Config is the CLI-wide state resolved before any command runs.
type Config struct {
	planner planner.Config
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newStore() (*planner.WorldStore, error) {
	return planner.NewWorldStore(config.planner.Worlds.Dir, logger)
}

func newService(store *planner.WorldStore) *planner.Service {
	return planner.NewService(config.planner, store, logger)
}

func fail(err error) error {
	ux.Error(err.Error())
	return err
}
