package variable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/sdvars/internal/hclnode"
	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
	"github.com/specialistvlad/sdvars/internal/xmlnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseXML(t *testing.T, src string) *structure.Node {
	t.Helper()
	n, err := xmlnode.Parse("test.xml", []byte(src))
	require.NoError(t, err)
	return n
}

func TestDecodeStock_XML(t *testing.T) {
	t.Parallel()

	el := parseXML(t, `
<stock name="backlog" access="input">
	<eqn>25</eqn>
	<inflow>orders</inflow>
	<outflow>fulfilment</outflow>
	<conveyor discrete="true">
		<len>4</len>
		<capacity>100</capacity>
	</conveyor>
	<units>orders</units>
	<dimensions><dim name="region"/></dimensions>
</stock>`)

	got, err := DecodeStock(el)
	require.NoError(t, err)

	want := model.Stock{
		Common: model.Common{
			Name:       "backlog",
			Access:     model.AccessInput,
			Units:      "orders",
			Dimensions: []string{"region"},
		},
		Initial:  "25",
		Inflows:  []string{"orders"},
		Outflows: []string{"fulfilment"},
		Variant: model.Conveyor{
			Length:   "4",
			Capacity: ptr("100"),
			Discrete: ptr(true),
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DecodeStock() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeStock_ConflictingMarkers(t *testing.T) {
	t.Parallel()

	el := parseXML(t, `<stock name="s"><conveyor><len>2</len></conveyor><queue/></stock>`)

	_, err := DecodeStock(el)
	require.Error(t, err)

	var conflict *TypeConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, `stock "s"`, conflict.Definition)
	assert.Equal(t, []string{"<conveyor> and <queue> are mutually exclusive"}, conflict.Conflicts)
	assert.Equal(t, "stock \"s\": conflicting variant markers:\n  - <conveyor> and <queue> are mutually exclusive", err.Error())
}

func TestDecodeFlow_AllConflictsInOneError(t *testing.T) {
	t.Parallel()

	el := parseXML(t, `<flow name="f"><leak/><overflow/><non_negative/></flow>`)

	_, err := DecodeFlow(el)
	var conflict *TypeConflictError
	require.True(t, errors.As(err, &conflict))
	require.Len(t, conflict.Conflicts, 3)
}

func TestDecodeStock_ConveyorWithoutLength(t *testing.T) {
	t.Parallel()

	el := parseXML(t, `<stock name="belt"><conveyor><capacity>3</capacity></conveyor></stock>`)

	_, err := DecodeStock(el)
	var missing *structure.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "length", missing.Field)
}

func TestDecodeStock_NonNegativeStates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
		want model.NonNegative
	}{
		{name: "absent", body: ``, want: model.NonNegativeUnset},
		{name: "empty marker", body: `<non_negative/>`, want: model.NonNegativeDefault},
		{name: "explicit true", body: `<non_negative>true</non_negative>`, want: model.NonNegativeTrue},
		{name: "explicit false", body: `<non_negative>false</non_negative>`, want: model.NonNegativeFalse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := DecodeStock(parseXML(t, `<stock name="s">`+tc.body+`</stock>`))
			require.NoError(t, err)
			require.Equal(t, model.BasicStock{NonNegative: tc.want}, s.Variant)

			b := structure.NewBuilder()
			MarshalStock(b, s)
			node, err := b.Result()
			require.NoError(t, err)

			again, err := DecodeStock(node)
			require.NoError(t, err)
			require.Equal(t, s, again)
		})
	}
}

func TestDecode_LiteralErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		src   string
		field string
	}{
		{name: "non_negative body", src: `<stock name="s"><non_negative>maybe</non_negative></stock>`, field: "non_negative"},
		{name: "access", src: `<stock name="s" access="private"/>`, field: "access"},
		{name: "autoexport", src: `<stock name="s" autoexport="sometimes"/>`, field: "autoexport"},
		{name: "conveyor flag", src: `<stock name="s"><conveyor discrete="yes"><len>1</len></conveyor></stock>`, field: "discrete"},
		{name: "numeric conveyor flag", src: `<stock name="s"><conveyor one_at_a_time="1"><len>1</len></conveyor></stock>`, field: "one_at_a_time"},
		{name: "leak start", src: `<flow name="s"><leak/><leak_start>half</leak_start></flow>`, field: "leak_start"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			el := parseXML(t, tc.src)
			var err error
			if el.Name() == StockElement {
				_, err = DecodeStock(el)
			} else {
				_, err = DecodeFlow(el)
			}
			require.Error(t, err)

			var lit *structure.LiteralFormatError
			require.True(t, errors.As(err, &lit), "got %T: %v", err, err)
			assert.Equal(t, tc.field, lit.Field)
			assert.Contains(t, err.Error(), `"s"`)
		})
	}
}

func TestDecodeFlow_OverflowIgnoresEquation(t *testing.T) {
	t.Parallel()

	f, err := DecodeFlow(parseXML(t, `<flow name="spill"><eqn>42</eqn><overflow/></flow>`))
	require.NoError(t, err)
	assert.Nil(t, f.Equation)
	assert.Equal(t, model.QueueOverflow{}, f.Variant)
}

func TestDecodeStock_UnknownChildrenIgnored(t *testing.T) {
	t.Parallel()

	s, err := DecodeStock(parseXML(t, `<stock name="s"><scope>local</scope><eqn>1</eqn></stock>`))
	require.NoError(t, err)
	assert.Equal(t, "1", s.Initial)
	assert.Equal(t, model.BasicStock{}, s.Variant)
}

func TestStock_StructuralRoundTrip(t *testing.T) {
	t.Parallel()

	for name, want := range sampleStocks() {
		t.Run(name, func(t *testing.T) {
			b := structure.NewBuilder()
			MarshalStock(b, want)
			tree, err := b.Result()
			require.NoError(t, err)

			t.Run("xml", func(t *testing.T) {
				t.Parallel()
				data, err := xmlnode.Render(tree)
				require.NoError(t, err)
				got, err := DecodeStock(parseXML(t, string(data)))
				require.NoError(t, err)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("xml round trip mismatch (-want +got):\n%s", diff)
				}
			})

			t.Run("hcl", func(t *testing.T) {
				t.Parallel()
				data, err := hclnode.Render(tree)
				require.NoError(t, err)
				node, err := hclnode.Parse("test.hcl", data)
				require.NoError(t, err)
				got, err := DecodeStock(node)
				require.NoError(t, err)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("hcl round trip mismatch (-want +got):\n%s", diff)
				}
			})
		})
	}
}

func TestFlow_StructuralRoundTrip(t *testing.T) {
	t.Parallel()

	for name, want := range sampleFlows() {
		t.Run(name, func(t *testing.T) {
			b := structure.NewBuilder()
			MarshalFlow(b, want)
			tree, err := b.Result()
			require.NoError(t, err)

			t.Run("xml", func(t *testing.T) {
				t.Parallel()
				data, err := xmlnode.Render(tree)
				require.NoError(t, err)
				got, err := DecodeFlow(parseXML(t, string(data)))
				require.NoError(t, err)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("xml round trip mismatch (-want +got):\n%s", diff)
				}
			})

			t.Run("hcl", func(t *testing.T) {
				t.Parallel()
				data, err := hclnode.Render(tree)
				require.NoError(t, err)
				node, err := hclnode.Parse("test.hcl", data)
				require.NoError(t, err)
				got, err := DecodeFlow(node)
				require.NoError(t, err)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("hcl round trip mismatch (-want +got):\n%s", diff)
				}
			})
		})
	}
}
