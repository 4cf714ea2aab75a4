package pointstream_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/inkml/diag"
	"github.com/willabides/inkml/internal/model"
	"github.com/willabides/inkml/internal/pointstream"
)

func xyFormat() *model.TraceFormat {
	return &model.TraceFormat{
		RegularChannels: []*model.Channel{
			{Name: "X", Type: model.ChannelTypeDecimal},
			{Name: "Y", Type: model.ChannelTypeDecimal},
		},
	}
}

func TestDecodeTraceExplicit(t *testing.T) {
	regular, _, ok := pointstream.DecodeTrace("10 20, 11 22, 12 24", xyFormat(), diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{10, 11, 12}, regular["X"])
	require.Equal(t, []float64{20, 22, 24}, regular["Y"])
}

func TestDecodeTraceFirstDifference(t *testing.T) {
	regular, _, ok := pointstream.DecodeTrace("10 20, '1 '2, '1 '2", xyFormat(), diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{10, 11, 12}, regular["X"])
	require.Equal(t, []float64{20, 22, 24}, regular["Y"])
}

func TestDecodeTraceSecondDifference(t *testing.T) {
	regular, _, ok := pointstream.DecodeTrace(`10 20, '1 '2, "0 "0`, xyFormat(), diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{10, 11, 12}, regular["X"])
	require.Equal(t, []float64{20, 22, 24}, regular["Y"])
}

func TestDecodeTraceWildcardAndHex(t *testing.T) {
	regular, _, ok := pointstream.DecodeTrace("#A 0, * #1F, * *", xyFormat(), diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{10, 10, 10}, regular["X"])
	require.Equal(t, []float64{0, 31, 31}, regular["Y"])
}

func TestDecodeTraceIntermittentWithPlaceholder(t *testing.T) {
	format := xyFormat()
	format.IntermittentChannels = []*model.Channel{{Name: "F", Type: model.ChannelTypeDecimal}}

	regular, intermittent, ok := pointstream.DecodeTrace("0 0 1.0, 1 1 ?, 2 2 3.0", format, diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{0, 1, 2}, regular["X"])
	require.Equal(t, []float64{0, 1, 2}, regular["Y"])
	require.Equal(t, []model.IndexValue{{Index: 0, Value: 1.0}, {Index: 2, Value: 3.0}}, intermittent["F"])
}

func TestDecodeTraceRoundTripFirstDifference(t *testing.T) {
	explicit, _, ok := pointstream.DecodeTrace("10 20, 11 22, 12 24", xyFormat(), diag.NopSink{})
	require.True(t, ok)
	delta, _, ok := pointstream.DecodeTrace("10 20, '1 '2, '1 '2", xyFormat(), diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, explicit["X"], delta["X"])
	require.Equal(t, explicit["Y"], delta["Y"])
}

func TestDecodeTraceIntegerRounding(t *testing.T) {
	format := &model.TraceFormat{
		RegularChannels: []*model.Channel{{Name: "P", Type: model.ChannelTypeInteger}},
	}
	regular, _, ok := pointstream.DecodeTrace("0.5, '0.5, '0.5", format, diag.NopSink{})
	require.True(t, ok)
	// 0.5 rounds to 1 (half away from zero); 1.5 rounds to 2; 2.5 rounds to 3.
	require.Equal(t, []float64{1, 2, 3}, regular["P"])
}

func TestDecodeTraceBooleanChannel(t *testing.T) {
	format := &model.TraceFormat{
		RegularChannels: []*model.Channel{{Name: "B", Type: model.ChannelTypeBoolean}},
	}
	regular, _, ok := pointstream.DecodeTrace("T, F, T", format, diag.NopSink{})
	require.True(t, ok)
	require.Equal(t, []float64{1, 0, 1}, regular["B"])
}

func TestDecodeTraceCardinalityFailure(t *testing.T) {
	_, _, ok := pointstream.DecodeTrace("10 20 30, 11 22 33", xyFormat(), diag.NopSink{})
	require.False(t, ok)
}

func TestDecodeTraceWildcardWithoutPriorFails(t *testing.T) {
	_, _, ok := pointstream.DecodeTrace("* *, 1 2", xyFormat(), diag.NopSink{})
	require.False(t, ok)
}

func TestDecodeTraceFirstDifferenceWithoutPriorFails(t *testing.T) {
	_, _, ok := pointstream.DecodeTrace("'1 '2", xyFormat(), diag.NopSink{})
	require.False(t, ok)
}
