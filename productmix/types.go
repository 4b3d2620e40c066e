// Package productmix defines the value types, fixed model coefficients and
// solver contract for the product-mix linear program.
package productmix

import (
	"errors"
	"fmt"
	"math"
)

// Resource identifies one of the three limited inputs of the model.
type Resource string

const (
	// ResourcePumps is the pump stock; each hot tub of either model needs one pump.
	ResourcePumps Resource = "pumps"
	// ResourceLabor is the pool of available labor hours.
	ResourceLabor Resource = "labor"
	// ResourceTubing is the stock of tubing, in feet.
	ResourceTubing Resource = "tubing"
)

// Resources returns the three resource identifiers in model-row order
// (pumps, labor, tubing). The order is stable and matches the constraint
// rows assembled by SimplexSolver.
func Resources() []Resource {
	return []Resource{ResourcePumps, ResourceLabor, ResourceTubing}
}

// Fixed per-unit profit and consumption coefficients of the model.
// These are problem parameters, not tunables; a generalized library would
// accept a coefficient matrix instead.
const (
	// ProfitAquaSpa is the profit per Aqua-Spa unit, in dollars.
	ProfitAquaSpa = 350.0
	// ProfitHydroLux is the profit per Hydro-Lux unit, in dollars.
	ProfitHydroLux = 300.0

	// PumpsPerAquaSpa and PumpsPerHydroLux: one pump per tub, either model.
	PumpsPerAquaSpa  = 1.0
	PumpsPerHydroLux = 1.0

	// LaborPerAquaSpa and LaborPerHydroLux: labor hours per unit.
	LaborPerAquaSpa  = 9.0
	LaborPerHydroLux = 6.0

	// TubingPerAquaSpa and TubingPerHydroLux: feet of tubing per unit.
	TubingPerAquaSpa  = 12.0
	TubingPerHydroLux = 16.0
)

// Default baseline availability of each resource, taken from the reference
// scenario: 200 pumps, 1566 labor hours, 2880 feet of tubing.
const (
	DefaultPumps      = 200.0
	DefaultLaborHours = 1566.0
	DefaultTubingFeet = 2880.0
)

// ErrInvalidEnvelope indicates a negative, NaN or infinite resource quantity.
var ErrInvalidEnvelope = errors.New("productmix: invalid resource envelope")

// ErrInfeasible indicates the backend reported an infeasible model.
// The zero plan is always feasible for a valid envelope, so this should
// never occur in practice; it is surfaced rather than silently zeroed.
var ErrInfeasible = errors.New("productmix: model reported infeasible")

// ErrSolverFailure indicates any other backend failure (unbounded model,
// singular basis, numeric breakdown).
var ErrSolverFailure = errors.New("productmix: solver failure")

// Envelope is the immutable tuple of resource limits defining one LP
// instance. Construct it once per solve; never mutate it afterwards.
type Envelope struct {
	// Pumps is the number of pumps available.
	Pumps float64
	// LaborHours is the number of labor hours available.
	LaborHours float64
	// TubingFeet is the feet of tubing available.
	TubingFeet float64
}

// DefaultEnvelope returns the reference baseline envelope
// (200 pumps, 1566 labor hours, 2880 feet of tubing).
func DefaultEnvelope() Envelope {
	return Envelope{
		Pumps:      DefaultPumps,
		LaborHours: DefaultLaborHours,
		TubingFeet: DefaultTubingFeet,
	}
}

// Limit returns the envelope quantity for resource r.
// Unknown resources report 0.
func (e Envelope) Limit(r Resource) float64 {
	switch r {
	case ResourcePumps:
		return e.Pumps
	case ResourceLabor:
		return e.LaborHours
	case ResourceTubing:
		return e.TubingFeet
	default:
		return 0
	}
}

// Validate reports ErrInvalidEnvelope if any quantity is negative or not
// finite. Zero quantities are valid: the all-zero envelope produces the
// degenerate all-zero plan, not an error.
func (e Envelope) Validate() error {
	var (
		r Resource
		v float64
	)
	for _, r = range Resources() {
		v = e.Limit(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s quantity is not finite", ErrInvalidEnvelope, r)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s = %g is negative", ErrInvalidEnvelope, r, v)
		}
	}
	return nil
}

// Plan is the outcome of one solve: the optimal production quantities,
// the profit they earn, and the per-resource consumption and slack.
type Plan struct {
	// AquaSpas is the optimal number of Aqua-Spa units (continuous).
	AquaSpas float64
	// HydroLuxes is the optimal number of Hydro-Lux units (continuous).
	HydroLuxes float64
	// Profit is the objective value: 350·AquaSpas + 300·HydroLuxes.
	Profit float64
	// Used maps each resource to the amount the plan consumes.
	Used map[Resource]float64
	// Slack maps each resource to the unused remainder
	// (envelope limit minus Used).
	Slack map[Resource]float64
}

// Solver is the boundary interface to the LP backend. Implementations must
// be safe to invoke repeatedly and independently: no state may leak from
// one Solve call into the next.
type Solver interface {
	// Solve returns the optimal plan for the given envelope, or one of the
	// package sentinel errors (ErrInvalidEnvelope, ErrInfeasible,
	// ErrSolverFailure).
	Solve(env Envelope) (Plan, error)
}
