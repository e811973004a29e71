// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hagesjo/shrdlite-course-project/services/planner/world"
)

// objectColors maps catalog color names to terminal colors.
var objectColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#E74C3C"),
	"green":  lipgloss.Color("#2ECC71"),
	"blue":   lipgloss.Color("#3498DB"),
	"yellow": lipgloss.Color("#F4D03F"),
	"white":  lipgloss.Color("#ECF0F1"),
	"black":  lipgloss.Color("#7F8C8D"),
}

func objectStyle(obj world.Object, ok bool) lipgloss.Style {
	if !ok {
		return Styles.Muted
	}
	color, found := objectColors[obj.Color]
	if !found {
		return Styles.Bold
	}
	return lipgloss.NewStyle().Foreground(color)
}

// RenderSnapshot draws a snapshot as a column diagram: the arm row on
// top, stacks bottom-up, a floor line, and column indices. Objects
// are tinted with their catalog color.
func RenderSnapshot(w *world.World, snap world.Snapshot) string {
	cols := len(snap.Stacks)
	if cols == 0 {
		return Styles.Muted.Render("(empty world)")
	}

	cellWidth := 3
	for _, stack := range snap.Stacks {
		for _, id := range stack {
			if len(id)+2 > cellWidth {
				cellWidth = len(id) + 2
			}
		}
	}
	if snap.Holding != "" && len(snap.Holding)+2 > cellWidth {
		cellWidth = len(snap.Holding) + 2
	}

	height := 1
	for _, stack := range snap.Stacks {
		if len(stack) > height {
			height = len(stack)
		}
	}

	var b strings.Builder

	// Arm row: the claw over its column, with the payload if any.
	for col := 0; col < cols; col++ {
		if col == snap.Arm {
			claw := center("▼", cellWidth)
			if snap.Holding != "" {
				obj, ok := w.Object(snap.Holding)
				claw = objectStyle(obj, ok).Render(center("["+snap.Holding+"]", cellWidth))
			} else {
				claw = Styles.Highlight.Render(claw)
			}
			b.WriteString(claw)
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Stacks, top row first.
	for row := height - 1; row >= 0; row-- {
		for col := 0; col < cols; col++ {
			stack := snap.Stacks[col]
			if row < len(stack) {
				id := stack[row]
				obj, ok := w.Object(id)
				b.WriteString(objectStyle(obj, ok).Render(center("["+id+"]", cellWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// Floor and column indices.
	b.WriteString(Styles.Muted.Render(strings.Repeat("─", cols*(cellWidth+1))))
	b.WriteString("\n")
	for col := 0; col < cols; col++ {
		b.WriteString(Styles.Muted.Render(center(fmt.Sprintf("%d", col), cellWidth)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	return b.String()
}

// RenderLegend lists the catalog: one line per object, sorted by
// identifier.
func RenderLegend(w *world.World) string {
	ids := make([]string, 0, len(w.Objects))
	for id := range w.Objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		obj := w.Objects[id]
		label := fmt.Sprintf("%-4s %s %s %s", id, obj.Size, obj.Color, obj.Form)
		b.WriteString(objectStyle(obj, true).Render(label))
		b.WriteString("\n")
	}
	return b.String()
}

// ActionName expands a wire action letter for display.
func ActionName(action string) string {
	switch action {
	case world.ActionLeft:
		return "move left"
	case world.ActionRight:
		return "move right"
	case world.ActionPick:
		return "pick"
	case world.ActionDrop:
		return "drop"
	}
	return action
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
