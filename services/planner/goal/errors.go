// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package goal

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable interpretation failure kind.
// Codes end up in API responses; do not rename existing values.
type Code string

const (
	// CodeReferenceAmbiguous: a "the"-quantified entity resolved to
	// more than one object.
	CodeReferenceAmbiguous Code = "REFERENCE_AMBIGUOUS"

	// CodeReferenceUnsupported: the floor was given a size or color,
	// or a quantifier is unrecognized.
	CodeReferenceUnsupported Code = "REFERENCE_UNSUPPORTED"

	// CodeRelationUnsupported: a positional relation was requested
	// with respect to a held (position-less) object.
	CodeRelationUnsupported Code = "RELATION_UNSUPPORTED"

	// CodeSemanticallyInvalid: a static mismatch between relation and
	// destination form or quantifier combination.
	CodeSemanticallyInvalid Code = "SEMANTICALLY_INVALID"

	// CodeUnsatisfiable: every candidate literal combination is
	// physically illegal, or a referenced object set is empty.
	CodeUnsatisfiable Code = "UNSATISFIABLE"
)

// Error is an interpretation failure with a stable code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an interpretation error with a formatted message.
func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the interpretation error code, or "" when err is
// not an interpretation error.
func CodeOf(err error) Code {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
