// Package sensitivity_test contains unit tests for the two breakpoint
// detection strategies. The synthetic-series tests pin the exact indexing
// conventions; treat them as regression contracts.
package sensitivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodmix/sensitivity"
)

// seriesFromDeltas builds a series starting at (start, base) whose
// consecutive profit deltas are exactly the given values, with parameter
// values start, start+1, start+2, ...
func seriesFromDeltas(start, base float64, deltas []float64) sensitivity.Series {
	series := sensitivity.Series{{Value: start, Profit: base}}
	for i, d := range deltas {
		prev := series[i]
		series = append(series, sensitivity.Point{
			Value:  start + float64(i+1),
			Profit: prev.Profit + d,
		})
	}
	return series
}

// repeat returns n copies of v.
func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ------------------------------------------------------------------------
// FindBreakpoint — constant-marginal-region-scan
// ------------------------------------------------------------------------

// TestFindBreakpoint_SyntheticDeltaPattern pins the off-by-one indexing
// contract: constant delta 5 for 10 steps, then delta 3 thereafter. The
// first deviating delta has index 10, so the reported breakpoint must be
// the series' own x-value at index 10 — not index 11.
func TestFindBreakpoint_SyntheticDeltaPattern(t *testing.T) {
	deltas := append(repeat(5, 10), repeat(3, 5)...)
	series := seriesFromDeltas(100, 1000, deltas)

	res := sensitivity.FindBreakpoint(series)
	require.True(t, res.Found)
	require.Equal(t, 5.0, res.FirstMarginal)
	require.Equal(t, series[10].Value, res.Breakpoint)
	require.Equal(t, 110.0, res.Breakpoint)
}

// TestFindBreakpoint_DeviationAtFirstComparableIndex checks the earliest
// detectable deviation: delta[1] already differs from delta[0], so the
// breakpoint is the x-value at index 1.
func TestFindBreakpoint_DeviationAtFirstComparableIndex(t *testing.T) {
	series := seriesFromDeltas(0, 0, []float64{10, 4, 4})

	res := sensitivity.FindBreakpoint(series)
	require.True(t, res.Found)
	require.Equal(t, 10.0, res.FirstMarginal)
	require.Equal(t, 1.0, res.Breakpoint)
}

// TestFindBreakpoint_FlatMarginal verifies that a constant-delta series
// reports the last tested value with Found=false — “no breakpoint within
// the tested range”, not a proven unbounded region.
func TestFindBreakpoint_FlatMarginal(t *testing.T) {
	series := seriesFromDeltas(200, 66100, repeat(200, 20))

	res := sensitivity.FindBreakpoint(series)
	require.False(t, res.Found)
	require.Equal(t, 200.0, res.FirstMarginal)
	require.Equal(t, 220.0, res.Breakpoint)
	require.Equal(t, series[len(series)-1].Profit, res.MaxProfit)
	require.Equal(t, 220.0, res.MaxAt)
}

// TestFindBreakpoint_ShortSeries covers the no-delta cases.
func TestFindBreakpoint_ShortSeries(t *testing.T) {
	// Empty series: zero-value result.
	res := sensitivity.FindBreakpoint(nil)
	require.False(t, res.Found)
	require.Equal(t, 0.0, res.Breakpoint)
	require.Equal(t, 0.0, res.FirstMarginal)

	// Single point: breakpoint is the only tested value, marginal 0.
	res = sensitivity.FindBreakpoint(sensitivity.Series{{Value: 42, Profit: 7}})
	require.False(t, res.Found)
	require.Equal(t, 42.0, res.Breakpoint)
	require.Equal(t, 0.0, res.FirstMarginal)
	require.Equal(t, 7.0, res.MaxProfit)
	require.Equal(t, 42.0, res.MaxAt)
}

// TestFindBreakpoint_MaxTieKeepsFirst verifies the first-occurrence
// tie-break for the best profit.
func TestFindBreakpoint_MaxTieKeepsFirst(t *testing.T) {
	series := sensitivity.Series{
		{Value: 1, Profit: 10},
		{Value: 2, Profit: 30},
		{Value: 3, Profit: 30},
		{Value: 4, Profit: 30},
	}

	res := sensitivity.FindBreakpoint(series)
	require.Equal(t, 30.0, res.MaxProfit)
	require.Equal(t, 2.0, res.MaxAt)
}

// TestFindBreakpoint_ToleranceOption checks that deviations inside the
// tolerance band are ignored.
func TestFindBreakpoint_ToleranceOption(t *testing.T) {
	series := seriesFromDeltas(0, 0, []float64{5, 4.5, 4.5})

	// Default 1e-6 tolerance: 4.5 deviates from 5 immediately.
	res := sensitivity.FindBreakpoint(series)
	require.True(t, res.Found)
	require.Equal(t, 1.0, res.Breakpoint)

	// A 1.0 tolerance swallows the 0.5 deviation.
	res = sensitivity.FindBreakpoint(series, sensitivity.WithTolerance(1.0))
	require.False(t, res.Found)
	require.Equal(t, 3.0, res.Breakpoint)
}

// ------------------------------------------------------------------------
// FirstChange — first-change-scan
// ------------------------------------------------------------------------

// TestFirstChange_NoChange verifies the non-binding outcome: a perfectly
// flat series reports no change and the last tested value.
func TestFirstChange_NoChange(t *testing.T) {
	series := seriesFromDeltas(2881, 66100, repeat(0, 49))

	res := sensitivity.FirstChange(series)
	require.False(t, res.Found)
	require.Equal(t, 2930.0, res.Breakpoint)
	require.Equal(t, 0.0, res.FirstMarginal)
}

// TestFirstChange_ReportsValueAfterChange pins FirstChange's indexing
// convention: the reported value is series[i+1].Value — the first value
// at which profit has already moved — one index later than
// FindBreakpoint's convention on the same shape.
func TestFirstChange_ReportsValueAfterChange(t *testing.T) {
	series := seriesFromDeltas(100, 500, []float64{0, 0, 2.5, 2.5})

	res := sensitivity.FirstChange(series)
	require.True(t, res.Found)
	require.Equal(t, 2.5, res.FirstMarginal)
	require.Equal(t, 103.0, res.Breakpoint)
}

// TestStrategies_DisagreeOutsideFlatRegion demonstrates why the two scans
// must stay distinct: on a series whose very first delta already differs
// from the later ones, they report different x-values.
func TestStrategies_DisagreeOutsideFlatRegion(t *testing.T) {
	series := seriesFromDeltas(0, 0, []float64{8, 8, 3, 3})

	marginal := sensitivity.FindBreakpoint(series)
	change := sensitivity.FirstChange(series)

	// Constant-marginal scan: deviation at delta index 2 -> x-value 2.
	require.True(t, marginal.Found)
	require.Equal(t, 2.0, marginal.Breakpoint)

	// First-change scan: profit moves immediately -> x-value 1.
	require.True(t, change.Found)
	require.Equal(t, 1.0, change.Breakpoint)
}

// TestFirstChange_EmptySeries covers the degenerate input.
func TestFirstChange_EmptySeries(t *testing.T) {
	res := sensitivity.FirstChange(nil)
	require.False(t, res.Found)
	require.Equal(t, 0.0, res.Breakpoint)
}

// ------------------------------------------------------------------------
// Option validation
// ------------------------------------------------------------------------

// TestOptions_PanicOnInvalidValues verifies that option constructors
// reject invalid values eagerly.
func TestOptions_PanicOnInvalidValues(t *testing.T) {
	require.PanicsWithValue(t, sensitivity.ErrBadTolerance.Error(), func() {
		sensitivity.FindBreakpoint(nil, sensitivity.WithTolerance(0))
	})
	require.PanicsWithValue(t, sensitivity.ErrNilSolver.Error(), func() {
		sensitivity.WithSolver(nil)(&sensitivity.Options{})
	})
}
