package events

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sdvars/internal/diag"
)

// Validate checks one threshold. Every problem is reported.
func (t Threshold) Validate() hcl.Diagnostics {
	var diags hcl.Diagnostics

	if t.Direction != nil && *t.Direction != Increasing && *t.Direction != Decreasing {
		diags = append(diags, diag.Errorf("Invalid direction",
			"direction %q is not one of %q, %q", *t.Direction, Increasing, Decreasing))
	}

	// The repeat enumeration is closed for now; new modes get their own
	// event-count rule when they are added.
	if t.Repeat != nil && *t.Repeat != RepeatEach {
		diags = append(diags, diag.Errorf("Invalid repeat mode", "repeat %q is not %q", *t.Repeat, RepeatEach))
	}

	switch {
	case len(t.Events) == 0:
		diags = append(diags, diag.Errorf("Threshold without events", "a threshold needs at least one event"))
	case t.EffectiveRepeat() == RepeatEach && len(t.Events) != 1:
		diags = append(diags, diag.Errorf("Wrong event count",
			"repeat mode %q requires exactly one event, found %d", RepeatEach, len(t.Events)))
	}

	for i, e := range t.Events {
		if e.Action == nil {
			continue
		}
		switch *e.Action {
		case Pause, Stop, Message:
		default:
			diags = append(diags, diag.Errorf("Invalid simulation action",
				"event %d: action %q is not one of %q, %q, %q", i, *e.Action, Pause, Stop, Message))
		}
	}

	return diags
}

// Validate checks the poster's bounds, every threshold, and that no two
// thresholds share an effective (value, direction) pair. Thresholds outside
// the display bounds are reported as warnings.
func (p Poster) Validate() hcl.Diagnostics {
	var diags hcl.Diagnostics

	if p.Min > p.Max {
		diags = append(diags, diag.Errorf("Invalid event poster range", "min %g is above max %g", p.Min, p.Max))
	}

	type key struct {
		value     float64
		direction Direction
	}
	seen := make(map[key]int, len(p.Thresholds))

	for i, t := range p.Thresholds {
		diags = append(diags, diag.Within(fmt.Sprintf("threshold %d", i), t.Validate())...)

		k := key{value: t.Value, direction: t.EffectiveDirection()}
		if first, dup := seen[k]; dup {
			diags = append(diags, diag.Errorf("Duplicate threshold",
				"threshold %d repeats value %g, direction %s of threshold %d", i, t.Value, k.direction, first))
		} else {
			seen[k] = i
		}

		if p.Min <= p.Max && (t.Value < p.Min || t.Value > p.Max) {
			diags = append(diags, diag.Warnf("Threshold outside poster range",
				"threshold %d value %g is outside [%g, %g]", i, t.Value, p.Min, p.Max))
		}
	}

	return diags
}
