package sensitivity

import "math"

// FindBreakpoint is the constant-marginal-region-scan: it derives the
// marginal value of the swept resource from the first consecutive profit
// delta and locates where that marginal value first changes.
//
// Algorithm:
//  1. delta[i] = series[i+1].Profit − series[i].Profit.
//  2. A series with ≤ 1 point has no deltas: flat result, no breakpoint.
//  3. first = delta[0], the marginal value in the initial binding region.
//  4. Scan i = 1 onward; the first i with |delta[i] − first| > tolerance
//     reports Breakpoint = series[i].Value — the series' own x-value at
//     that delta index, i.e. the last parameter of the constant-marginal
//     region. This indexing is a compatibility contract; see the
//     regression tests before changing anything here.
//  5. No deviation: Breakpoint = last tested value, Found = false.
//
// MaxProfit/MaxAt report the best profit in the range, first occurrence
// winning ties. The scan is a pure function of the series; it never calls
// the solver.
func FindBreakpoint(series Series, opts ...Option) Result {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	res := Result{}
	if len(series) == 0 {
		return res
	}

	res.MaxProfit, res.MaxAt = maxProfit(series)
	res.Breakpoint = series[len(series)-1].Value
	if len(series) < 2 {
		// No deltas to compare: flat series, no breakpoint.
		return res
	}

	first := series[1].Profit - series[0].Profit
	res.FirstMarginal = first

	var d float64
	for i := 1; i+1 < len(series); i++ {
		d = series[i+1].Profit - series[i].Profit
		if math.Abs(d-first) > cfg.Tolerance {
			// Last constant-marginal parameter is series[i].Value.
			res.Breakpoint = series[i].Value
			res.Found = true
			break
		}
	}

	return res
}

// FirstChange is the first-change-scan: it reports the first parameter
// value at which profit changes at all, stopping immediately. Unlike
// FindBreakpoint it establishes no reference marginal region — it is the
// right question for a resource expected to be non-binding over the whole
// tested range (tubing in the reference scenario).
//
// When a change is found, FirstMarginal carries the delta observed at the
// change point and Breakpoint = series[i+1].Value — the first value at
// which profit already moved (one index later than FindBreakpoint's
// convention; the asymmetry is intentional and pinned by tests). With no
// change, Breakpoint holds the last tested value and Found is false.
func FirstChange(series Series, opts ...Option) Result {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	res := Result{}
	if len(series) == 0 {
		return res
	}

	res.MaxProfit, res.MaxAt = maxProfit(series)
	res.Breakpoint = series[len(series)-1].Value

	var d float64
	for i := 0; i+1 < len(series); i++ {
		d = series[i+1].Profit - series[i].Profit
		if math.Abs(d) > cfg.Tolerance {
			res.FirstMarginal = d
			res.Breakpoint = series[i+1].Value
			res.Found = true
			break
		}
	}

	return res
}

// maxProfit returns the highest profit in the series and the parameter
// value achieving it, keeping the first occurrence on ties.
// Precondition: series is non-empty.
func maxProfit(series Series) (profit, at float64) {
	profit, at = series[0].Profit, series[0].Value
	var p Point
	for _, p = range series[1:] {
		if p.Profit > profit {
			profit, at = p.Profit, p.Value
		}
	}

	return profit, at
}
