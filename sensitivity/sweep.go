package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/prodmix/productmix"
)

// Sweep re-solves the product-mix LP for every integer value v of
// dimension dim in the inclusive range [start, stop], holding the other
// two resource limits at base, and returns the ordered (value, profit)
// series.
//
// To reproduce the reference scenarios, start at the baseline quantity for
// the swept dimension (pumps: 200, labor: 1566); Sweep itself does not
// enforce that alignment.
//
// The sweep is sequential and order-preserving. The first solver failure
// aborts the sweep and is returned wrapped with the offending dimension
// and parameter value; no partial series is returned.
//
// Complexity: O(stop − start + 1) solver calls, each on the fixed
// three-by-five model.
func Sweep(dim Dimension, start, stop int, base productmix.Envelope, opts ...Option) (Series, error) {
	// 1) Apply options over defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Solver == nil {
		cfg.Solver = productmix.NewSimplexSolver()
	}

	// 2) Validate the sweep request.
	if dim < Pumps || dim > Tubing {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDimension, int(dim))
	}
	if start > stop {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, start, stop)
	}

	// 3) Solve once per integer step, in ascending order.
	series := make(Series, 0, stop-start+1)
	for v := start; v <= stop; v++ {
		plan, err := cfg.Solver.Solve(dim.with(base, float64(v)))
		if err != nil {
			// Abort the whole sweep: solves are deterministic, so this
			// failure would recur on retry.
			return nil, fmt.Errorf("sensitivity: sweep %s=%d: %w", dim, v, err)
		}
		series = append(series, Point{Value: float64(v), Profit: plan.Profit})
	}

	return series, nil
}
