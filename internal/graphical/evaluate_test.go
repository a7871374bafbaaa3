package graphical

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Policies(t *testing.T) {
	t.Parallel()

	pairs := func(p Policy) *Table { return NewExplicit(p, []float64{0, 10}, []float64{0, 100}) }

	testCases := []struct {
		name     string
		table    *Table
		x        float64
		expected float64
	}{
		{name: "continuous inside", table: pairs(Continuous), x: 5, expected: 50},
		{name: "continuous below clamps", table: pairs(Continuous), x: -5, expected: 0},
		{name: "continuous above clamps", table: pairs(Continuous), x: 15, expected: 100},
		{name: "continuous at last", table: pairs(Continuous), x: 10, expected: 100},
		{name: "extrapolate inside", table: pairs(Extrapolate), x: 5, expected: 50},
		{name: "extrapolate below", table: pairs(Extrapolate), x: -5, expected: -50},
		{name: "extrapolate above", table: pairs(Extrapolate), x: 15, expected: 150},
		{name: "discrete inside", table: pairs(Discrete), x: 5, expected: 0},
		{name: "discrete just below step", table: pairs(Discrete), x: 9.999, expected: 0},
		{name: "discrete on step", table: pairs(Discrete), x: 10, expected: 100},
		{name: "discrete below clamps", table: pairs(Discrete), x: -1, expected: 0},
		{name: "discrete above clamps", table: pairs(Discrete), x: 11, expected: 100},
		{name: "uniform three points", table: NewUniform(Continuous, 0, 10, 0, 50, 100), x: 2.5, expected: 25},
		{name: "uniform second segment", table: NewUniform(Continuous, 0, 10, 0, 50, 100), x: 7.5, expected: 75},
		{name: "uniform discrete", table: NewUniform(Discrete, 0, 10, 0, 50, 100), x: 7.5, expected: 50},
		{name: "uniform extrapolate", table: NewUniform(Extrapolate, 0, 10, 0, 50, 60), x: 15, expected: 70},
		{name: "single sample", table: NewUniform(Extrapolate, 0, 10, 42), x: -100, expected: 42},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.table.Evaluate(tc.x), 1e-9)
		})
	}
}

func TestEvaluate_StepDiscontinuity(t *testing.T) {
	t.Parallel()

	// Duplicate x at 5 jumps from 10 to 20; evaluation is right-continuous.
	x := []float64{0, 5, 5, 10}
	y := []float64{0, 10, 20, 30}

	for _, p := range []Policy{Continuous, Extrapolate} {
		table := NewExplicit(p, x, y)
		assert.InDelta(t, 5.0, table.Evaluate(2.5), 1e-9, p.String())
		assert.InDelta(t, 20.0, table.Evaluate(5), 1e-9, p.String())
		assert.InDelta(t, 25.0, table.Evaluate(7.5), 1e-9, p.String())
	}

	discrete := NewExplicit(Discrete, x, y)
	assert.Equal(t, 0.0, discrete.Evaluate(4.999))
	assert.Equal(t, 20.0, discrete.Evaluate(5))
	assert.Equal(t, 20.0, discrete.Evaluate(9.9))
}

func TestEvaluate_DegenerateEndSegments(t *testing.T) {
	t.Parallel()

	table := NewExplicit(Extrapolate, []float64{0, 0, 10, 10}, []float64{1, 2, 3, 4})

	assert.Equal(t, 1.0, table.Evaluate(-5), "zero-width first segment has no slope")
	assert.Equal(t, 4.0, table.Evaluate(15), "zero-width last segment has no slope")
	assert.False(t, math.IsNaN(table.Evaluate(0)))
}

func TestEvaluate_ZeroWidthUniformDomain(t *testing.T) {
	t.Parallel()

	table := NewUniform(Continuous, 3, 3, 1, 2)
	assert.Equal(t, 1.0, table.Evaluate(2))
	assert.Equal(t, 2.0, table.Evaluate(3))
	assert.Equal(t, 2.0, table.Evaluate(4))
}

func TestEvaluate_UniformMatchesExplicit(t *testing.T) {
	t.Parallel()

	y := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	uniform := NewUniform(Continuous, -1, 2.5, y...)
	x := make([]float64, len(y))
	for i := range x {
		x[i] = uniform.Position(i)
	}
	explicit := NewExplicit(Continuous, x, y)

	for at := -2.0; at <= 3.5; at += 0.0625 {
		assert.InDelta(t, explicit.Evaluate(at), uniform.Evaluate(at), 1e-9, "x=%g", at)
	}
}

func TestLookup_Errors(t *testing.T) {
	t.Parallel()

	_, err := (&Table{}).Lookup(1)
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = (&Table{Y: []float64{1}}).Lookup(1)
	require.ErrorIs(t, err, ErrNoDomain)

	_, err = NewExplicit(Continuous, []float64{0, 1}, []float64{1}).Lookup(1)
	require.ErrorIs(t, err, ErrLengthMismatch)

	assert.True(t, math.IsNaN((&Table{}).Evaluate(1)))

	v, err := NewUniform(Continuous, 0, 1, 0, 1).Lookup(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestEvaluate_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	table := NewUniform(Continuous, 0, 10, 0, 50, 100)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.InDelta(t, 25.0, table.Evaluate(2.5), 1e-9)
		}()
	}
	wg.Wait()
}
