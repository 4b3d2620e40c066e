// Package productmix formulates and solves the Blue Ridge Hot Tubs
// product-mix linear program: how many Aqua-Spa and Hydro-Lux hot tubs to
// build from a limited stock of pumps, labor hours and tubing so that
// total profit is maximal.
//
// Overview:
//
//   - Two continuous, non-negative decision variables: x1 units of
//     Aqua-Spa and x2 units of Hydro-Lux.
//   - Objective: maximize 350·x1 + 300·x2.
//   - Constraints: x1 + x2 ≤ pumps, 9·x1 + 6·x2 ≤ labor hours,
//     12·x1 + 16·x2 ≤ tubing feet.
//   - The five consumption coefficients and two profit coefficients are
//     fixed problem parameters, not configuration: this package models one
//     specific, pedagogically standard problem shape.
//
// The actual optimization is delegated to gonum’s dense simplex
// implementation (gonum.org/v1/gonum/optimize/convex/lp). SimplexSolver
// assembles the standard-form tableau with explicit slack columns, so the
// model stays exactly the three-row, five-column system written above.
//
// Key types:
//
//   - Envelope — immutable value holding the three resource limits.
//   - Plan     — one solve’s outcome: quantities, profit, per-resource
//     consumption and slack.
//   - Solver   — the boundary interface for the LP backend; SimplexSolver
//     is the default implementation, and tests may substitute their own.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidEnvelope:
//     Returned when any resource quantity is negative, NaN or infinite.
//     The zero envelope is valid and yields the degenerate all-zero plan.
//   - ErrInfeasible:
//     Returned if the backend reports an infeasible model. The origin is
//     always feasible for valid envelopes, so this signals an internal
//     solver problem rather than a bad input.
//   - ErrSolverFailure:
//     Returned for any other backend failure (unbounded, singular basis,
//     numeric breakdown).
//
// Invariants guaranteed by Solve for valid envelopes:
//
//   - Feasibility: every constraint holds within 1e-6.
//   - Accounting: used[r] + slack[r] equals the envelope limit for every
//     resource r, within 1e-6.
//   - Profit equals 350·x1 + 300·x2 for the returned quantities.
//
// Thread safety:
//
//   - Envelope and Plan are plain values; SimplexSolver holds no mutable
//     state between calls and may be shared across goroutines.
package productmix
