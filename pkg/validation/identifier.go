// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for user-provided
// names that reach the filesystem or API responses.
//
// World names arrive as URL parameters and are matched against files
// in the world library directory; object identifiers arrive inside
// command payloads. Validating both keeps path traversal and control
// characters out of the pipeline.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches world names and object identifiers.
// Allows: letters, digits, underscores, hyphens. Max 64 characters.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_\-]{0,63}$`)

// ValidateWorldName validates a world library name.
//
// Valid names:
//   - 1-64 characters
//   - Letters, digits, underscores, hyphens
//   - No path separators, dots or whitespace
//
// Example:
//
//	if err := validation.ValidateWorldName(name); err != nil {
//	    return nil, fmt.Errorf("invalid world: %w", err)
//	}
//	// Safe to match against library files
func ValidateWorldName(name string) error {
	if name == "" {
		return fmt.Errorf("world name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid world name: %q (must be 1-64 alphanumeric chars, underscores, or hyphens)", name)
	}
	return nil
}

// ValidateObjectID validates a single object identifier from a
// command payload.
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("object identifier cannot be empty")
	}
	if !namePattern.MatchString(id) {
		return fmt.Errorf("invalid object identifier: %q", id)
	}
	return nil
}

// SanitizeWorldName normalizes and validates a world name. Returns
// the trimmed lowercase name if valid.
func SanitizeWorldName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if err := ValidateWorldName(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
