// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sdvars/internal/diag"
)

// Stock is an accumulation variable.
type Stock struct {
	Common

	// Initial is the initial-value expression (<eqn>).
	Initial  string
	Inflows  []string
	Outflows []string

	Variant StockVariant
}

// StockVariant is the closed set of stock payloads: BasicStock, Conveyor, Queue.
type StockVariant interface {
	stockVariant()
}

// BasicStock is a plain accumulation.
type BasicStock struct {
	NonNegative NonNegative
}

// Conveyor is a fixed-length transit pipeline. Length is mandatory; nil
// optional fields mean "not specified".
type Conveyor struct {
	Length      string
	Capacity    *string
	InflowLimit *string
	Sample      *string
	Arrest      *string

	Discrete        *bool
	BatchIntegrity  *bool
	OneAtATime      *bool
	ExponentialLeak *bool
}

// Queue discharges in FIFO order. It has no parameters of its own.
type Queue struct{}

func (BasicStock) stockVariant() {}
func (Conveyor) stockVariant()   {}
func (Queue) stockVariant()      {}

// Validate reports semantic problems in the stock and its event poster.
func (s Stock) Validate() hcl.Diagnostics {
	var diags hcl.Diagnostics
	switch v := s.Variant.(type) {
	case nil:
		diags = append(diags, diag.Errorf("Missing variant", "a stock needs a basic, conveyor or queue payload"))
	case Conveyor:
		if v.Length == "" {
			diags = append(diags, diag.Errorf("Empty conveyor length", "a conveyor needs a transit length expression"))
		}
	}
	if s.Name == "" {
		diags = append(diags, diag.Errorf("Missing name", "a stock needs a name"))
	}
	if s.EventPoster != nil {
		diags = append(diags, diag.Within("event_poster", s.EventPoster.Validate())...)
	}
	return diags
}
