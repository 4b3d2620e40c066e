// Package chart renders sensitivity series as profit-vs-resource line
// charts, with the detected breakpoint marked by a dashed vertical line,
// saved as PNG. It is a pure consumer of the engine's computed numbers:
// it never invokes the solver and performs no analysis of its own.
package chart
