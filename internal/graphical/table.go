package graphical

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a table has no samples.
	ErrEmptyTable = errors.New("graphical function has no samples")
	// ErrNoDomain is returned when a uniform table has no x-scale.
	ErrNoDomain = errors.New("uniform graphical function has no x-scale")
	// ErrLengthMismatch is returned when explicit x and y lists differ in length.
	ErrLengthMismatch = errors.New("x and y sample counts differ")
)

// Policy selects how a table is evaluated.
type Policy int

const (
	Continuous Policy = iota
	Extrapolate
	Discrete
)

func (p Policy) String() string {
	switch p {
	case Continuous:
		return "continuous"
	case Extrapolate:
		return "extrapolate"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy reads the literal form of a policy. The empty string is the
// format's default, Continuous.
func ParsePolicy(text string) (Policy, error) {
	switch text {
	case "", "continuous":
		return Continuous, nil
	case "extrapolate":
		return Extrapolate, nil
	case "discrete":
		return Discrete, nil
	default:
		return Continuous, fmt.Errorf("unknown graphical function type %q", text)
	}
}

// Shape distinguishes the two sample layouts.
type Shape int

const (
	UniformScale Shape = iota
	ExplicitPairs
)

// Scale is a closed [Min, Max] interval.
type Scale struct {
	Min float64
	Max float64
}

// Table is a sampled function. A nil X means UniformScale; XScale is then the
// domain. For ExplicitPairs, XScale and YScale are display bounds only.
type Table struct {
	Name   string
	Policy Policy
	XScale *Scale
	YScale *Scale
	X      []float64
	Y      []float64

	// XSep and YSep keep non-default list separators for re-encoding.
	XSep string
	YSep string
}

// NewUniform builds a UniformScale table.
func NewUniform(policy Policy, min, max float64, y ...float64) *Table {
	return &Table{Policy: policy, XScale: &Scale{Min: min, Max: max}, Y: y}
}

// NewExplicit builds an ExplicitPairs table.
func NewExplicit(policy Policy, x, y []float64) *Table {
	return &Table{Policy: policy, X: x, Y: y}
}

// Shape reports the sample layout.
func (t *Table) Shape() Shape {
	if t.X != nil {
		return ExplicitPairs
	}
	return UniformScale
}

// Len is the number of usable sample points.
func (t *Table) Len() int {
	if t.Shape() == ExplicitPairs {
		return min(len(t.X), len(t.Y))
	}
	if t.XScale == nil {
		return 0
	}
	return len(t.Y)
}

// Position returns the x position of sample i.
func (t *Table) Position(i int) float64 {
	if t.Shape() == ExplicitPairs {
		return t.X[i]
	}
	n := len(t.Y)
	switch {
	case n == 1 || i == 0:
		return t.XScale.Min
	case i == n-1:
		return t.XScale.Max
	default:
		return t.XScale.Min + float64(i)*(t.XScale.Max-t.XScale.Min)/float64(n-1)
	}
}

// check reports why a table cannot be evaluated.
func (t *Table) check() error {
	if len(t.Y) == 0 {
		return ErrEmptyTable
	}
	if t.Shape() == ExplicitPairs && len(t.X) != len(t.Y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(t.X), len(t.Y))
	}
	if t.Shape() == UniformScale && t.XScale == nil {
		return ErrNoDomain
	}
	return nil
}

// Mean is the average of the y samples; false for an empty table.
func (t *Table) Mean() (float64, bool) {
	if len(t.Y) == 0 {
		return 0, false
	}
	var sum float64
	for _, y := range t.Y {
		sum += y
	}
	return sum / float64(len(t.Y)), true
}

// Min is the smallest y sample; false for an empty table.
func (t *Table) Min() (float64, bool) {
	if len(t.Y) == 0 {
		return 0, false
	}
	m := t.Y[0]
	for _, y := range t.Y[1:] {
		m = min(m, y)
	}
	return m, true
}

// Max is the largest y sample; false for an empty table.
func (t *Table) Max() (float64, bool) {
	if len(t.Y) == 0 {
		return 0, false
	}
	m := t.Y[0]
	for _, y := range t.Y[1:] {
		m = max(m, y)
	}
	return m, true
}
