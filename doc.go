// Package prodmix is a compact toolkit for product-mix linear optimization
// and resource sensitivity analysis — solving “how many of each product
// should we build?” and “what is one more unit of a scarce resource worth?”.
//
// 🚀 What is prodmix?
//
//	A small, focused library built around the classic Blue Ridge Hot Tubs
//	product-mix problem:
//		• LP solve: optimal plan, profit, resource usage and slack
//		• Sensitivity sweeps: re-solve along one resource dimension
//		• Shadow prices: first marginal profit per extra resource unit
//		• Breakpoints: where the marginal value stops being constant
//		• Charts & reports: profit curves with the breakpoint marked
//
// ✨ Why choose prodmix?
//
//   - Minimal API, clear, intuitive naming
//   - Deterministic algorithms with documented tie-break conventions
//   - Pure Go — the LP backend is gonum’s simplex, no cgo solvers
//   - Functional options for tolerances and custom solver backends
//
// Everything is organized under a handful of packages:
//
//	productmix/  — the LP model: Envelope, Plan, Solver, SimplexSolver
//	sensitivity/ — sweeps, Series, breakpoint detection strategies
//	chart/       — profit-vs-resource line charts (PNG)
//	report/      — plain-text analysis summaries
//	config/      — YAML scenario files for the CLI
//	cmd/prodmix/ — the `prodmix` command: baseline, sweep, analyze
//
// Quick sketch of one analysis:
//
//	envelope ──▶ Solve ──▶ Plan(profit)
//	    │ vary one resource over [start, stop]
//	    ▼
//	Series ──▶ FindBreakpoint ──▶ marginal value + breakpoint
//
// Dive into README-style examples in each package’s example_test.go.
//
//	go get github.com/katalvlaran/prodmix
package prodmix
