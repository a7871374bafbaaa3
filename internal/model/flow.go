// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sdvars/internal/diag"
	"github.com/specialistvlad/sdvars/internal/graphical"
)

// Flow is a rate variable.
type Flow struct {
	Common

	// Equation is nil for queue overflows, which never carry one.
	Equation   *string
	Multiplier *string

	// Function is an optional graphical function applied to the equation.
	Function *graphical.Table

	Variant FlowVariant
}

// FlowVariant is the closed set of flow payloads: BasicFlow, QueueOverflow,
// ConveyorLeakage.
type FlowVariant interface {
	flowVariant()
}

// BasicFlow is a plain rate.
type BasicFlow struct {
	NonNegative NonNegative
}

// QueueOverflow drains what a full queue cannot accept.
type QueueOverflow struct{}

// ConveyorLeakage leaks material out of a conveyor while in transit.
type ConveyorLeakage struct {
	// Fraction is the leak fraction expression.
	Fraction *string
	// Integers restricts leakage to whole units.
	Integers bool
	// Start and End bound the leak zone as fractions of the conveyor length.
	Start *float64
	End   *float64
}

func (BasicFlow) flowVariant()       {}
func (QueueOverflow) flowVariant()   {}
func (ConveyorLeakage) flowVariant() {}

// Validate reports semantic problems in the flow, its graphical function and
// its event poster.
func (f Flow) Validate() hcl.Diagnostics {
	var diags hcl.Diagnostics
	switch v := f.Variant.(type) {
	case nil:
		diags = append(diags, diag.Errorf("Missing variant", "a flow needs a basic, overflow or leak payload"))
	case QueueOverflow:
		if f.Equation != nil {
			diags = append(diags, diag.Errorf("Equation on queue overflow", "a queue overflow takes its rate from the queue and cannot carry an equation"))
		}
	case ConveyorLeakage:
		diags = append(diags, v.validate()...)
	}
	if f.Name == "" {
		diags = append(diags, diag.Errorf("Missing name", "a flow needs a name"))
	}
	if f.Function != nil {
		diags = append(diags, diag.Within("gf", f.Function.Validate())...)
	}
	if f.EventPoster != nil {
		diags = append(diags, diag.Within("event_poster", f.EventPoster.Validate())...)
	}
	return diags
}

func (l ConveyorLeakage) validate() hcl.Diagnostics {
	var diags hcl.Diagnostics
	inUnit := func(v *float64) bool { return v == nil || (*v >= 0 && *v <= 1) }
	if !inUnit(l.Start) || !inUnit(l.End) {
		diags = append(diags, diag.Errorf("Leak zone out of range", "leak_start and leak_end are fractions of the conveyor length in [0, 1]"))
	}
	if l.Start != nil && l.End != nil && *l.Start > *l.End {
		diags = append(diags, diag.Errorf("Inverted leak zone", "leak_start %g is beyond leak_end %g", *l.Start, *l.End))
	}
	return diags
}
