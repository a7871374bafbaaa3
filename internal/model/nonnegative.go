// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/sdvars/internal/structure"
)

// NonNegative is the three-state non-negativity declaration.
type NonNegative uint8

const (
	// NonNegativeUnset means no marker: no constraint declared.
	NonNegativeUnset NonNegative = iota
	// NonNegativeDefault is an empty marker, which the format reads as true.
	NonNegativeDefault
	// NonNegativeTrue is a marker with explicit "true".
	NonNegativeTrue
	// NonNegativeFalse is a marker with explicit "false".
	NonNegativeFalse
)

// ParseNonNegative reads the body of a present marker. Surrounding
// whitespace is ignored.
func ParseNonNegative(text string) (NonNegative, error) {
	switch strings.TrimSpace(text) {
	case "":
		return NonNegativeDefault, nil
	case "true":
		return NonNegativeTrue, nil
	case "false":
		return NonNegativeFalse, nil
	default:
		return NonNegativeUnset, &structure.LiteralFormatError{Field: "non_negative", Text: text, Want: `empty, "true" or "false"`}
	}
}

// Declared reports whether the marker is present.
func (n NonNegative) Declared() bool { return n != NonNegativeUnset }

// Effective is the constraint in force: true for Default and True.
func (n NonNegative) Effective() bool {
	return n == NonNegativeDefault || n == NonNegativeTrue
}

// Body is the marker text to write; ok is false when no marker is written.
func (n NonNegative) Body() (text string, ok bool) {
	switch n {
	case NonNegativeDefault:
		return "", true
	case NonNegativeTrue:
		return "true", true
	case NonNegativeFalse:
		return "false", true
	default:
		return "", false
	}
}

func (n NonNegative) String() string {
	switch n {
	case NonNegativeUnset:
		return "unset"
	case NonNegativeDefault:
		return "declared"
	case NonNegativeTrue:
		return "true"
	case NonNegativeFalse:
		return "false"
	default:
		return fmt.Sprintf("NonNegative(%d)", uint8(n))
	}
}
