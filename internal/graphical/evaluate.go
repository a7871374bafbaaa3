package graphical

import (
	"math"
	"sort"
)

// Evaluate returns the table's value at x under its policy. A table with no
// samples or no domain evaluates to NaN; explicit tables with mismatched
// lengths use their common prefix.
func (t *Table) Evaluate(x float64) float64 {
	n := t.Len()
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return t.Y[0]
	}

	first, last := t.Position(0), t.Position(n-1)
	switch {
	case x < first:
		if t.Policy == Extrapolate {
			return t.extend(0, x)
		}
		return t.Y[0]
	case x >= last:
		if t.Policy == Extrapolate && x > last {
			return t.extend(n-2, x)
		}
		return t.Y[n-1]
	}

	i := t.bracket(x, n)
	if t.Policy == Discrete {
		return t.Y[i]
	}
	return t.interpolate(i, x)
}

// Lookup is Evaluate for callers that want a reason instead of NaN.
func (t *Table) Lookup(x float64) (float64, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return t.Evaluate(x), nil
}

// bracket finds the largest i in [0, n-2] with Position(i) <= x, for x in
// [Position(0), Position(n-1)).
func (t *Table) bracket(x float64, n int) int {
	var i int
	if t.Shape() == ExplicitPairs {
		i = sort.Search(n, func(k int) bool { return t.X[k] > x }) - 1
	} else {
		step := (t.XScale.Max - t.XScale.Min) / float64(n-1)
		if step > 0 {
			i = int(math.Floor((x - t.XScale.Min) / step))
		}
		// Rounding in the division can land one slot off.
		for i < n-2 && t.Position(i+1) <= x {
			i++
		}
		for i > 0 && t.Position(i) > x {
			i--
		}
	}
	return max(0, min(i, n-2))
}

// interpolate is the straight line through samples i and i+1, evaluated at
// x. A zero-width segment yields y_i.
func (t *Table) interpolate(i int, x float64) float64 {
	x0, x1 := t.Position(i), t.Position(i+1)
	if x1 == x0 {
		return t.Y[i]
	}
	frac := (x - x0) / (x1 - x0)
	return t.Y[i] + frac*(t.Y[i+1]-t.Y[i])
}

// extend continues segment i (samples i and i+1) past the end of the table.
func (t *Table) extend(i int, x float64) float64 {
	x0, x1 := t.Position(i), t.Position(i+1)
	if x1 == x0 {
		if x < x0 {
			return t.Y[i]
		}
		return t.Y[i+1]
	}
	return t.interpolate(i, x)
}
