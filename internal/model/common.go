// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/sdvars/internal/events"
	"github.com/specialistvlad/sdvars/internal/structure"
)

// Access marks a variable as a module input or output.
type Access string

const (
	AccessNone   Access = ""
	AccessInput  Access = "input"
	AccessOutput Access = "output"
)

// ParseAccess reads the literal form of an access mode.
func ParseAccess(text string) (Access, error) {
	switch a := Access(text); a {
	case AccessInput, AccessOutput:
		return a, nil
	default:
		return AccessNone, &structure.LiteralFormatError{Field: "access", Text: text, Want: `"input" or "output"`}
	}
}

// Documentation is the free-form text of a <doc> element, kept verbatim.
type Documentation string

// Summary returns the first non-blank line, trimmed.
func (d Documentation) Summary() string {
	for _, line := range strings.Split(string(d), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// Common holds the fields stocks and flows share.
type Common struct {
	Name       string
	Access     Access
	AutoExport bool
	Units      string
	Doc        Documentation
	Dimensions []string

	// Display is the opaque <display> subtree, passed through untouched.
	Display *structure.Node

	EventPoster *events.Poster
}

// Label identifies a definition in messages, e.g. `stock "population"`.
func Label(kind, name string) string {
	if name == "" {
		return kind
	}
	return fmt.Sprintf("%s %q", kind, name)
}
