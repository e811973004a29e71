// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hagesjo/shrdlite-course-project/services/planner"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/goal"
	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// stepMsg advances plan playback by one action.
type stepMsg struct{}

// planMsg carries a finished plan call back into the event loop.
type planMsg struct {
	resp planner.PlanResponse
	err  error
}

// stepDelay is the playback speed.
const stepDelay = 400 * time.Millisecond

// PlannerModel is the bubbletea model for the interactive planner.
//
// The session owns one world and a current snapshot. Commands are
// entered as JSON on the input line; a found plan is played back one
// action at a time against the displayed snapshot.
//
// Thread Safety: single-threaded within the bubbletea event loop.
type PlannerModel struct {
	svc  *planner.Service
	name string

	world *world.World
	start world.Snapshot
	snap  world.Snapshot

	input textinput.Model

	plan    []string
	stepped int
	playing bool

	status     string
	statusErr  bool
	showLegend bool
	quitting   bool
}

// NewPlannerModel creates the interactive session over one world.
func NewPlannerModel(svc *planner.Service, name string) (PlannerModel, error) {
	w, snap, err := svc.Resolve(name, nil, nil)
	if err != nil {
		return PlannerModel{}, err
	}

	ti := textinput.New()
	ti.Placeholder = `{"command":"take","entity":{"quantifier":"the","object":{"form":"ball"}}}`
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return PlannerModel{
		svc:    svc,
		name:   name,
		world:  w,
		start:  snap,
		snap:   snap,
		input:  ti,
		status: "enter a command, ? toggles the legend",
	}, nil
}

// Init implements tea.Model.
func (m PlannerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.playing {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			if line == "?" {
				m.showLegend = !m.showLegend
				m.input.SetValue("")
				return m, nil
			}
			if line == "reset" {
				m.snap = m.start
				m.plan = nil
				m.stepped = 0
				m.status = "world reset"
				m.statusErr = false
				m.input.SetValue("")
				return m, nil
			}
			m.input.SetValue("")
			m.status = "planning..."
			m.statusErr = false
			return m, m.runPlan(line)
		}

	case planMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		if msg.resp.Message != "" {
			m.status = msg.resp.Message
			return m, nil
		}
		m.plan = msg.resp.Plan
		m.stepped = 0
		m.playing = true
		m.status = fmt.Sprintf("goal %s, %d actions", msg.resp.Goal, len(msg.resp.Plan))
		return m, tea.Tick(stepDelay, func(time.Time) tea.Msg { return stepMsg{} })

	case stepMsg:
		if !m.playing {
			return m, nil
		}
		next, err := m.snap.Apply(m.plan[m.stepped])
		if err != nil {
			m.playing = false
			m.status = err.Error()
			m.statusErr = true
			return m, nil
		}
		m.snap = next
		m.stepped++
		if m.stepped >= len(m.plan) {
			m.playing = false
			m.status = "done"
			return m, nil
		}
		return m, tea.Tick(stepDelay, func(time.Time) tea.Msg { return stepMsg{} })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PlannerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("shrdlite · " + m.name))
	b.WriteString("\n\n")
	b.WriteString(RenderSnapshot(m.world, m.snap))
	b.WriteString("\n")

	if m.showLegend {
		b.WriteString(RenderLegend(m.world))
		b.WriteString("\n")
	}

	if len(m.plan) > 0 {
		b.WriteString(m.renderPlanProgress())
		b.WriteString("\n")
	}

	if m.statusErr {
		b.WriteString(Styles.Error.Render(m.status))
	} else {
		b.WriteString(Styles.Subtitle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render("enter plans · reset restores the world · esc quits"))
	b.WriteString("\n")
	return b.String()
}

func (m PlannerModel) renderPlanProgress() string {
	parts := make([]string, len(m.plan))
	for i, action := range m.plan {
		label := ActionName(action)
		if i < m.stepped {
			parts[i] = Styles.Success.Render(label)
		} else if i == m.stepped && m.playing {
			parts[i] = Styles.Highlight.Render(label)
		} else {
			parts[i] = Styles.Muted.Render(label)
		}
	}
	return strings.Join(parts, Styles.Muted.Render(" · "))
}

func (m PlannerModel) runPlan(line string) tea.Cmd {
	svc, w, snap := m.svc, m.world, m.snap
	return func() tea.Msg {
		cmds, err := goal.ParseCommands([]byte(line))
		if err != nil {
			return planMsg{err: err}
		}
		resp, err := svc.Plan(context.Background(), w, snap, cmds)
		return planMsg{resp: resp, err: err}
	}
}

// RunTUI starts the interactive planner over the named world.
func RunTUI(svc *planner.Service, name string) error {
	model, err := NewPlannerModel(svc, name)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
