package graphical

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sdvars/internal/diag"
)

// Validate reports every structural problem with the table. Samples outside
// the y-scale are only warnings: the y-scale is a display hint.
func (t *Table) Validate() hcl.Diagnostics {
	var diags hcl.Diagnostics

	if len(t.Y) == 0 {
		diags = append(diags, diag.Errorf("Empty graphical function", "at least one y value is required"))
	}

	switch t.Shape() {
	case ExplicitPairs:
		if len(t.X) != len(t.Y) {
			diags = append(diags, diag.Errorf("Sample count mismatch",
				"%d x values but %d y values", len(t.X), len(t.Y)))
		}
		for i := 1; i < len(t.X); i++ {
			if t.X[i] < t.X[i-1] {
				diags = append(diags, diag.Errorf("Non-ascending x values",
					"x[%d] = %g is below x[%d] = %g", i, t.X[i], i-1, t.X[i-1]))
			}
		}
	case UniformScale:
		if t.XScale == nil {
			diags = append(diags, diag.Errorf("Missing x-scale",
				"a graphical function without x values needs an xscale to place its samples"))
		}
	}

	if t.XScale != nil && t.XScale.Min > t.XScale.Max {
		diags = append(diags, diag.Errorf("Invalid x-scale", "min %g is above max %g", t.XScale.Min, t.XScale.Max))
	}

	if t.YScale != nil {
		if t.YScale.Min > t.YScale.Max {
			diags = append(diags, diag.Errorf("Invalid y-scale", "min %g is above max %g", t.YScale.Min, t.YScale.Max))
		} else {
			for i, y := range t.Y {
				if y < t.YScale.Min || y > t.YScale.Max {
					diags = append(diags, diag.Warnf("Sample outside y-scale",
						"y[%d] = %g is outside [%g, %g]", i, y, t.YScale.Min, t.YScale.Max))
				}
			}
		}
	}

	return diags
}
