package graphical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregates(t *testing.T) {
	t.Parallel()

	table := NewExplicit(Continuous, []float64{0, 1, 2, 3}, []float64{4, -2, 10, 0})

	mean, ok := table.Mean()
	require.True(t, ok)
	assert.Equal(t, 3.0, mean)

	lo, ok := table.Min()
	require.True(t, ok)
	assert.Equal(t, -2.0, lo)

	hi, ok := table.Max()
	require.True(t, ok)
	assert.Equal(t, 10.0, hi)
}

func TestAggregates_EmptyTableHasNoValue(t *testing.T) {
	t.Parallel()

	empty := &Table{}

	_, ok := empty.Mean()
	assert.False(t, ok)
	_, ok = empty.Min()
	assert.False(t, ok)
	_, ok = empty.Max()
	assert.False(t, ok)
}

func TestShapeAndPosition(t *testing.T) {
	t.Parallel()

	uniform := NewUniform(Continuous, 0, 10, 0, 50, 100)
	assert.Equal(t, UniformScale, uniform.Shape())
	assert.Equal(t, 3, uniform.Len())
	assert.Equal(t, []float64{0, 5, 10}, []float64{uniform.Position(0), uniform.Position(1), uniform.Position(2)})

	explicit := NewExplicit(Discrete, []float64{1, 2}, []float64{3, 4})
	assert.Equal(t, ExplicitPairs, explicit.Shape())
	assert.Equal(t, 2.0, explicit.Position(1))

	assert.Equal(t, 0, (&Table{Y: []float64{1}}).Len(), "uniform without domain has no usable points")
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{Continuous, Extrapolate, Discrete} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, Continuous, got)

	_, err = ParsePolicy("Discrete")
	assert.Error(t, err, "policy literals are case-sensitive")
}
