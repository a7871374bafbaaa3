package variable

import (
	"testing"

	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStock(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  RawStock
		want StockKind
	}{
		{name: "no markers", raw: RawStock{}, want: StockBasic},
		{name: "non_negative only", raw: RawStock{NonNegative: model.NonNegativeDefault}, want: StockNonNegative},
		{name: "explicit false still declares", raw: RawStock{NonNegative: model.NonNegativeFalse}, want: StockNonNegative},
		{name: "queue only", raw: RawStock{HasQueue: true}, want: StockQueue},
		{name: "conveyor only", raw: RawStock{HasConveyor: true}, want: StockConveyor},
		{name: "conveyor beats queue", raw: RawStock{HasConveyor: true, HasQueue: true}, want: StockConveyor},
		{name: "queue beats non_negative", raw: RawStock{HasQueue: true, NonNegative: model.NonNegativeTrue}, want: StockQueue},
		{name: "all markers", raw: RawStock{HasConveyor: true, HasQueue: true, NonNegative: model.NonNegativeTrue}, want: StockConveyor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyStock(tc.raw))
		})
	}
}

func TestClassifyFlow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  RawFlow
		want FlowKind
	}{
		{name: "no markers", raw: RawFlow{}, want: FlowBasic},
		{name: "non_negative only", raw: RawFlow{NonNegative: model.NonNegativeDefault}, want: FlowNonNegative},
		{name: "overflow only", raw: RawFlow{HasOverflow: true}, want: FlowQueueOverflow},
		{name: "leak only", raw: RawFlow{HasLeak: true}, want: FlowConveyorLeakage},
		{name: "leak beats overflow", raw: RawFlow{HasLeak: true, HasOverflow: true}, want: FlowConveyorLeakage},
		{name: "overflow beats non_negative", raw: RawFlow{HasOverflow: true, NonNegative: model.NonNegativeDefault}, want: FlowQueueOverflow},
		{name: "leak fields without marker", raw: RawFlow{LeakIntegers: true}, want: FlowBasic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyFlow(tc.raw))
		})
	}
}

func TestValidateStockMarkers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  RawStock
		want []string
	}{
		{name: "no markers", raw: RawStock{}},
		{name: "single marker", raw: RawStock{HasQueue: true}},
		{
			name: "conveyor and queue",
			raw:  RawStock{HasConveyor: true, HasQueue: true},
			want: []string{"<conveyor> and <queue> are mutually exclusive"},
		},
		{
			name: "queue and non_negative",
			raw:  RawStock{HasQueue: true, NonNegative: model.NonNegativeDefault},
			want: []string{"<queue> and <non_negative> are mutually exclusive"},
		},
		{
			name: "all three report every pair",
			raw:  RawStock{HasConveyor: true, HasQueue: true, NonNegative: model.NonNegativeFalse},
			want: []string{
				"<conveyor> and <queue> are mutually exclusive",
				"<conveyor> and <non_negative> are mutually exclusive",
				"<queue> and <non_negative> are mutually exclusive",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ValidateStockMarkers(tc.raw))
		})
	}
}

func TestValidateFlowMarkers(t *testing.T) {
	t.Parallel()

	got := ValidateFlowMarkers(RawFlow{HasLeak: true, HasOverflow: true, NonNegative: model.NonNegativeTrue})
	require.Equal(t, []string{
		"<leak> and <overflow> are mutually exclusive",
		"<leak> and <non_negative> are mutually exclusive",
		"<overflow> and <non_negative> are mutually exclusive",
	}, got)

	require.Empty(t, ValidateFlowMarkers(RawFlow{HasOverflow: true}))
}

// Classification stays total even when the validator rejects the record.
func TestClassify_IndependentOfValidation(t *testing.T) {
	t.Parallel()

	raw := RawStock{HasConveyor: true, HasQueue: true}
	require.NotEmpty(t, ValidateStockMarkers(raw))
	require.Equal(t, StockConveyor, ClassifyStock(raw))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "conveyor", StockConveyor.String())
	assert.Equal(t, "StockKind(9)", StockKind(9).String())
	assert.Equal(t, "queue overflow", FlowQueueOverflow.String())
	assert.Equal(t, "FlowKind(-1)", FlowKind(-1).String())
}
