package structure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse[float64]("len", " 4.5 ")
	require.NoError(t, err)
	assert.Equal(t, 4.5, f)

	f, err = Parse[float64]("len", "1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f)

	b, err := Parse[bool]("discrete", "true")
	require.NoError(t, err)
	assert.True(t, b)

	s, err := Parse[string]("units", "  people ")
	require.NoError(t, err)
	assert.Equal(t, "  people ", s, "strings are returned verbatim")

	_, err = Parse[float64]("len", "four")
	var lit *LiteralFormatError
	require.True(t, errors.As(err, &lit))
	assert.Equal(t, "len", lit.Field)
	assert.Equal(t, "four", lit.Text)
	assert.Equal(t, "number", lit.Want)

	_, err = Parse[bool]("discrete", "yes")
	require.ErrorAs(t, err, &lit)

	_, err = Parse[int]("count", "1.5")
	require.ErrorAs(t, err, &lit)
}

func TestParse_BoolIsStrict(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"1", "0", "True", "yes", ""} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			_, err := Parse[bool]("discrete", text)
			var lit *LiteralFormatError
			require.ErrorAs(t, err, &lit)
			assert.Equal(t, `"true" or "false"`, lit.Want)
			assert.Equal(t, text, lit.Text)
		})
	}

	b, err := Parse[bool]("discrete", " false ")
	require.NoError(t, err)
	assert.False(t, b)
}

func TestAttrAccessors(t *testing.T) {
	t.Parallel()

	n := &Node{Tag: "event_poster", Attrs: []Attribute{{"min", "0"}, {"max", "ten"}}}

	min, err := Attr(n, "min", 5.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, min)

	def, err := Attr(n, "absent", 5.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, def)

	_, err = Attr(n, "max", 0.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"max"`)

	ptr, err := AttrPtr[float64](n, "absent")
	require.NoError(t, err)
	assert.Nil(t, ptr)

	ptr, err = AttrPtr[float64](n, "min")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	assert.Equal(t, 0.0, *ptr)
}

func TestChildValue(t *testing.T) {
	t.Parallel()

	n := &Node{Tag: "flow", Nodes: []*Node{{Tag: "leak_start", Content: "0.25"}, {Tag: "leak_end", Content: "x"}}}

	v, err := ChildValue[float64](n, "leak_start")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 0.25, *v)

	v, err = ChildValue[float64](n, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ChildValue[float64](n, "leak_end")
	require.Error(t, err)
}

func TestParseNumbers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		text      string
		sep       string
		expected  []float64
		expectErr bool
	}{
		{name: "default separator", text: "0, 50,100", expected: []float64{0, 50, 100}},
		{name: "custom separator", text: "1;2.5;-3", sep: ";", expected: []float64{1, 2.5, -3}},
		{name: "blank", text: "  ", expected: nil},
		{name: "bad literal", text: "1,,3", expectErr: true},
		{name: "wrong separator", text: "1;2", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNumbers("ypts", tc.text, tc.sep)
			if tc.expectErr {
				var lit *LiteralFormatError
				require.ErrorAs(t, err, &lit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatNumbers_ParsesBack(t *testing.T) {
	t.Parallel()

	values := []float64{0, 0.1, 1e6, -2.5, 1.0 / 3}
	text := FormatNumbers(values, ";")
	got, err := ParseNumbers("xpts", text, ";")
	require.NoError(t, err)
	assert.Equal(t, values, got)
}
