// Package sensitivity explores how the optimal product-mix profit responds
// to incremental changes in one resource limit: it re-solves the LP along
// an integer range of a single dimension, derives the marginal value
// (shadow price) of that resource, and detects the breakpoint where the
// marginal value stops being constant.
//
// Overview:
//
//   - Sweep varies exactly one Dimension (Pumps, Labor or Tubing) over an
//     inclusive integer range [start, stop], holding the other two limits
//     at the supplied base envelope, and records one (value, profit) Point
//     per step.
//   - FindBreakpoint — the constant-marginal-region-scan — computes the
//     consecutive profit deltas, takes the first delta as the marginal
//     value of the initial binding region, and reports the parameter value
//     at which a later delta first deviates from it by more than the
//     tolerance.
//   - FirstChange — the first-change-scan — reports the first parameter
//     value at which profit changes at all. It is used for resources that
//     are expected to be non-binding over the whole tested range (tubing
//     in the reference scenario).
//
// The two scans are deliberately distinct strategies, not one algorithm
// with a flag: they agree on a series whose profit never changes, but they
// answer different questions everywhere else. FindBreakpoint locates the
// end of a constant-marginal region; FirstChange locates the start of any
// profit movement. Do not unify them.
//
// Indexing convention (load-bearing):
//
//	FindBreakpoint reports series[i].Value for the first delta index i ≥ 1
//	with |delta[i] − delta[0]| > tolerance — the last parameter value of
//	the constant-marginal region, not the value after it. FirstChange
//	reports series[i+1].Value — the first value at which profit already
//	moved. Both conventions are pinned by regression tests.
//
// When no deviation is found, the breakpoint field carries the last tested
// parameter value and Found is false: “no breakpoint observed within the
// tested range”, which is not a proof that the region extends further.
//
// Failure semantics:
//
//   - Any solver failure inside Sweep aborts the whole sweep; no partial
//     series is returned and no retries are attempted. Solves are
//     deterministic, so a failure indicates a structural problem with the
//     envelope rather than a transient condition.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyRange       — start > stop.
//   - ErrUnknownDimension — Dimension outside Pumps/Labor/Tubing.
//   - ErrNilSolver        — WithSolver(nil) (panics, invalid option value).
//   - ErrBadTolerance     — WithTolerance(v ≤ 0) (panics, invalid option value).
//
// Concurrency:
//
//   - Sweeps are strictly sequential and order-preserving. The individual
//     solves share no state and could run in parallel, but breakpoint
//     detection is order-sensitive, so any parallel driver must re-sort
//     results by parameter value before scanning. This package keeps the
//     simple sequential behavior.
package sensitivity
