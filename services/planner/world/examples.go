// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package world

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed worlds/*.yaml
var exampleFS embed.FS

// Examples lists the names of the bundled example worlds, sorted.
func Examples() []string {
	entries, err := fs.ReadDir(exampleFS, "worlds")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Example loads a bundled example world by name.
func Example(name string) (*World, Snapshot, error) {
	data, err := exampleFS.ReadFile("worlds/" + name + ".yaml")
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("no example world %q (have %s)", name, strings.Join(Examples(), ", "))
	}
	return Load(data)
}
