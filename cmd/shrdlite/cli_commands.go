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
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Hagesjo/shrdlite-course-project/pkg/logging"
	"github.com/Hagesjo/shrdlite-course-project/pkg/ux"
	"github.com/Hagesjo/shrdlite-course-project/services/planner"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
)

var (
	configPath string
	logLevel   string
	machine    bool

	worldName string
	inputFile string

	rootCmd = &cobra.Command{
		Use:   "shrdlite",
		Short: "A planner for a robot arm in a blocks world",
		Long: `Shrdlite interprets structured commands about a blocks world
and plans the arm actions that make them true.`,
	}

	planCmd = &cobra.Command{
		Use:   "plan [command-json]",
		Short: "Interpret candidate commands and print the plan",
		Long: `Plans the given commands against a world. Commands are JSON,
either a single command object or an array of candidates; they
are read from the argument, from --file, or from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlan,
	}

	interpretCmd = &cobra.Command{
		Use:   "interpret [command-json]",
		Short: "Print the goal formula of each command without planning",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInterpret,
	}

	worldsCmd = &cobra.Command{
		Use:   "worlds",
		Short: "List the worlds in the library",
		RunE:  runWorlds,
	}

	renderCmd = &cobra.Command{
		Use:   "render [world]",
		Short: "Draw a world's starting snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}

	tuiCmd = &cobra.Command{
		Use:   "tui [world]",
		Short: "Interactive planning session in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&machine, "machine", false, "plain machine-readable output")

	for _, cmd := range []*cobra.Command{planCmd, interpretCmd} {
		cmd.Flags().StringVarP(&worldName, "world", "w", "small", "world to plan against")
		cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read command JSON from a file")
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := planner.LoadConfig(configPath)
		if err != nil {
			return err
		}
		config.planner = cfg

		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(logging.Config{
			Level:   level,
			Service: "shrdlite",
			Quiet:   machine,
		})

		if machine {
			ux.Machine = true
		}
		return nil
	}

	rootCmd.AddCommand(planCmd, interpretCmd, worldsCmd, renderCmd, tuiCmd, serveCmd)
}

// readCommands pulls the command JSON from the arg, --file or stdin.
func readCommands(args []string) ([]goal.Command, error) {
	var data []byte
	switch {
	case len(args) == 1:
		data = []byte(args[0])
	case inputFile != "":
		var err error
		data, err = os.ReadFile(inputFile)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
	}
	return goal.ParseCommands(data)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cmds, err := readCommands(args)
	if err != nil {
		return fail(err)
	}

	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()
	svc := newService(store)

	w, snap, err := svc.Resolve(worldName, nil, nil)
	if err != nil {
		return fail(err)
	}

	resp, err := svc.Plan(cmd.Context(), w, snap, cmds)
	if err != nil {
		return fail(err)
	}

	if machine {
		out, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	ux.Title("plan · " + worldName)
	ux.Info("goal " + resp.Goal)
	if resp.Message != "" {
		ux.Success(resp.Message)
		return nil
	}
	steps := make([]string, len(resp.Plan))
	for i, action := range resp.Plan {
		steps[i] = ux.ActionName(action)
	}
	ux.Success(strings.Join(steps, ", "))
	ux.Muted(fmt.Sprintf("%d actions, %d nodes expanded, %.1f ms",
		len(resp.Plan), resp.Expanded, resp.DurationMS))

	end, err := snap.ApplyAll(resp.Plan)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(ux.RenderSnapshot(w, end))
	return nil
}

func runInterpret(cmd *cobra.Command, args []string) error {
	cmds, err := readCommands(args)
	if err != nil {
		return fail(err)
	}

	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()
	svc := newService(store)

	w, snap, err := svc.Resolve(worldName, nil, nil)
	if err != nil {
		return fail(err)
	}

	out := svc.Interpret(w, snap, cmds)
	if machine {
		encoded, err := json.Marshal(planner.InterpretResponse{Interpretations: out})
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	for _, in := range out {
		if in.Error != "" {
			ux.Error(fmt.Sprintf("command %d: %s (%s)", in.Command, in.Error, in.Code))
			continue
		}
		ux.Success(fmt.Sprintf("command %d: %s", in.Command, in.Goal))
	}
	return nil
}

func runWorlds(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()

	for _, name := range store.Names() {
		if machine {
			fmt.Println(name)
			continue
		}
		w, snap, err := store.Get(name)
		if err != nil {
			continue
		}
		ux.Info(fmt.Sprintf("%-12s %d objects, %d columns", name, len(w.Objects), len(snap.Stacks)))
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()

	w, snap, err := store.Get(args[0])
	if err != nil {
		return fail(err)
	}

	ux.Title(args[0])
	fmt.Print(ux.RenderSnapshot(w, snap))
	fmt.Println()
	fmt.Print(ux.RenderLegend(w))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	name := "small"
	if len(args) == 1 {
		name = args[0]
	}

	store, err := newStore()
	if err != nil {
		return fail(err)
	}
	defer store.Stop()

	return ux.RunTUI(newService(store), name)
}
