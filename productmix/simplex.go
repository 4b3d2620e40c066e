package productmix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexSolver solves the product-mix LP with gonum’s dense simplex
// method. The zero value is ready to use and safe for concurrent solves.
//
// The model is assembled in standard form over the variable vector
// [x1 x2 s1 s2 s3]: each constraint row carries an explicit slack column,
// so the equality system reads consumption + slack = limit and all
// variables stay non-negative. Maximization is expressed by negating the
// profit coefficients in the cost vector.
type SimplexSolver struct {
	// Tol is forwarded to lp.Simplex as the pivot tolerance.
	// Zero selects gonum’s default.
	Tol float64
}

// NewSimplexSolver returns a SimplexSolver with default tolerances.
func NewSimplexSolver() *SimplexSolver { return &SimplexSolver{} }

// compile-time check that SimplexSolver satisfies the Solver boundary.
var _ Solver = (*SimplexSolver)(nil)

// Solve validates the envelope, runs the simplex method, and assembles the
// resulting Plan.
//
// Steps:
//  1. Validate the envelope (ErrInvalidEnvelope on negative or non-finite
//     quantities).
//  2. Build the standard-form cost vector, constraint matrix and
//     right-hand side.
//  3. Run lp.Simplex; map backend failures onto ErrInfeasible /
//     ErrSolverFailure.
//  4. Clamp missing or slightly negative variable values to 0, then derive
//     profit, consumption and slack from the clamped quantities.
func (s *SimplexSolver) Solve(env Envelope) (Plan, error) {
	// 1) Reject malformed envelopes up front. Silently solving them would
	//    return a degenerate zero plan and mask caller bugs.
	if err := env.Validate(); err != nil {
		return Plan{}, err
	}

	// 2) Standard form: minimize c·x subject to A·x = b, x ≥ 0.
	//    Columns: x1 (Aqua-Spa), x2 (Hydro-Lux), then one slack per row.
	c := []float64{-ProfitAquaSpa, -ProfitHydroLux, 0, 0, 0}
	a := mat.NewDense(3, 5, []float64{
		PumpsPerAquaSpa, PumpsPerHydroLux, 1, 0, 0,
		LaborPerAquaSpa, LaborPerHydroLux, 0, 1, 0,
		TubingPerAquaSpa, TubingPerHydroLux, 0, 0, 1,
	})
	b := []float64{env.Pumps, env.LaborHours, env.TubingFeet}

	// 3) Delegate to the backend.
	_, x, err := lp.Simplex(c, a, b, s.Tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		// Structurally impossible for a valid envelope (x = 0 is feasible);
		// treat as an unexpected internal solver condition.
		return Plan{}, fmt.Errorf("%w: envelope %+v", ErrInfeasible, env)
	case err != nil:
		return Plan{}, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	// 4) Clamp and derive. A degenerate optimum may come back with a
	//    missing or epsilon-negative coordinate; treat both as 0.
	xa := clampQuantity(x, 0)
	xh := clampQuantity(x, 1)

	return newPlan(env, xa, xh), nil
}

// clampQuantity extracts x[i], mapping out-of-range indices, NaN and
// negative noise to 0.
func clampQuantity(x []float64, i int) float64 {
	if i >= len(x) {
		return 0
	}
	v := x[i]
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// newPlan computes profit, consumption and slack for the given quantities.
// Slack is derived as limit − used, so the accounting identity
// used + slack = limit holds by construction.
func newPlan(env Envelope, xa, xh float64) Plan {
	used := map[Resource]float64{
		ResourcePumps:  PumpsPerAquaSpa*xa + PumpsPerHydroLux*xh,
		ResourceLabor:  LaborPerAquaSpa*xa + LaborPerHydroLux*xh,
		ResourceTubing: TubingPerAquaSpa*xa + TubingPerHydroLux*xh,
	}
	slack := make(map[Resource]float64, len(used))
	var r Resource
	for _, r = range Resources() {
		slack[r] = env.Limit(r) - used[r]
	}

	return Plan{
		AquaSpas:   xa,
		HydroLuxes: xh,
		Profit:     ProfitAquaSpa*xa + ProfitHydroLux*xh,
		Used:       used,
		Slack:      slack,
	}
}
