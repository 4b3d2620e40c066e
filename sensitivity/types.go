// Package sensitivity defines the series and result types, dimension
// selectors and configuration options for the sensitivity engine.
package sensitivity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prodmix/productmix"
)

// DefaultTolerance is the absolute tolerance used when comparing profit
// deltas. The problem's profit magnitudes are bounded in the tens of
// thousands, so an absolute tolerance is adequate; a generalization to
// larger-scale problems should scale it to max(|first delta|, 1).
const DefaultTolerance = 1e-6

// ErrEmptyRange is returned by Sweep when start > stop.
var ErrEmptyRange = errors.New("sensitivity: empty sweep range")

// ErrUnknownDimension is returned by Sweep for a Dimension value outside
// Pumps, Labor and Tubing.
var ErrUnknownDimension = errors.New("sensitivity: unknown dimension")

// ErrNilSolver is the panic message for WithSolver(nil).
var ErrNilSolver = errors.New("sensitivity: nil solver")

// ErrBadTolerance is the panic message for WithTolerance(v ≤ 0).
var ErrBadTolerance = errors.New("sensitivity: tolerance must be positive")

// Dimension selects which envelope resource a sweep varies.
type Dimension int

const (
	// Pumps varies Envelope.Pumps.
	Pumps Dimension = iota
	// Labor varies Envelope.LaborHours.
	Labor
	// Tubing varies Envelope.TubingFeet.
	Tubing
)

// String returns the lowercase dimension name.
func (d Dimension) String() string {
	switch d {
	case Pumps:
		return "pumps"
	case Labor:
		return "labor"
	case Tubing:
		return "tubing"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Resource returns the productmix resource identifier this dimension
// varies.
func (d Dimension) Resource() productmix.Resource {
	switch d {
	case Pumps:
		return productmix.ResourcePumps
	case Labor:
		return productmix.ResourceLabor
	case Tubing:
		return productmix.ResourceTubing
	default:
		return productmix.Resource(d.String())
	}
}

// ParseDimension maps a dimension name ("pumps", "labor", "tubing") to its
// Dimension value. Used by the CLI layer.
func ParseDimension(name string) (Dimension, error) {
	switch name {
	case Pumps.String():
		return Pumps, nil
	case Labor.String():
		return Labor, nil
	case Tubing.String():
		return Tubing, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
	}
}

// with returns env with dimension d set to v; the other two limits are
// copied unchanged. Envelope is a value type, so the caller's copy is
// never mutated.
func (d Dimension) with(env productmix.Envelope, v float64) productmix.Envelope {
	switch d {
	case Pumps:
		env.Pumps = v
	case Labor:
		env.LaborHours = v
	case Tubing:
		env.TubingFeet = v
	}
	return env
}

// Point is one step of a sweep: the varied parameter value and the optimal
// profit at that value.
type Point struct {
	// Value is the swept resource quantity.
	Value float64
	// Profit is the optimal profit for the envelope with that quantity.
	Profit float64
}

// Series is an ordered sequence of sweep points, ascending in Value.
// It is constructed and owned by one analysis call; breakpoint scans read
// it without mutation.
type Series []Point

// Result describes what a breakpoint scan found in a series.
//
// For FindBreakpoint, FirstMarginal is delta[0] — the marginal profit per
// unit in the initial, presumed-binding region — and Breakpoint is the
// last parameter value of that constant-marginal region. For FirstChange,
// FirstMarginal is the delta observed at the change point and Breakpoint
// is the first parameter value at which profit moved.
type Result struct {
	// FirstMarginal is the reference profit delta per unit increment.
	FirstMarginal float64
	// Breakpoint is the reported parameter value; when Found is false it
	// holds the last tested value, meaning “no breakpoint observed within
	// the tested range”, not “the region is unbounded”.
	Breakpoint float64
	// Found reports whether a deviation (or any change, for FirstChange)
	// was actually observed.
	Found bool
	// MaxProfit is the highest profit in the tested range.
	MaxProfit float64
	// MaxAt is the parameter value achieving MaxProfit
	// (first occurrence on ties).
	MaxAt float64
}

// Options configures sweeps and breakpoint scans.
//
// Fields:
//   - Tolerance — absolute tolerance for delta comparisons (default 1e-6).
//   - Solver    — LP backend used by Sweep; nil selects a fresh
//     productmix.SimplexSolver. Breakpoint scans never touch it.
type Options struct {
	Tolerance float64
	Solver    productmix.Solver
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithTolerance overrides the absolute delta-comparison tolerance.
// Must be positive; zero or negative values panic with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithSolver substitutes the LP backend used by Sweep, e.g. a stub in
// tests. A nil solver panics with ErrNilSolver.
func WithSolver(s productmix.Solver) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrNilSolver.Error())
		}
		o.Solver = s
	}
}

// DefaultOptions returns the default configuration: DefaultTolerance and
// no explicit solver (Sweep lazily falls back to a SimplexSolver).
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}
