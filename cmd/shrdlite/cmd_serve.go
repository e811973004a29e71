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
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Hagesjo/shrdlite-course-project/pkg/ux"
	"github.com/Hagesjo/shrdlite-course-project/services/planner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planner HTTP service",
	Long: `Serves the planning API on the configured address:
/v1/planner endpoints, a WebSocket session endpoint and /metrics.
The world library is hot reloaded while serving.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()

	if config.planner.Worlds.Watch {
		if err := store.Watch(ctx); err != nil {
			return fail(err)
		}
	}

	svc := newService(store)
	gin.SetMode(gin.ReleaseMode)
	router := planner.NewRouter(planner.NewHandlers(svc))

	srv := &http.Server{
		Addr:              config.planner.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("planner service listening",
		"addr", srv.Addr,
		"worlds", len(store.Names()))
	ux.Success("listening on " + srv.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fail(err)
	}
	logger.Info("planner service stopped")
	return nil
}
