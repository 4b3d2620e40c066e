// Package sensitivity_test provides runnable examples for the sensitivity
// engine. Each example runs via “go test -run Example”, showing both code
// and expected output.
package sensitivity_test

import (
	"fmt"

	"github.com/katalvlaran/prodmix/productmix"
	"github.com/katalvlaran/prodmix/sensitivity"
)

// ExampleFindBreakpoint demonstrates the constant-marginal-region-scan on
// a hand-built series: profit climbs by 5 per step for ten steps, then by
// 3. The marginal value is 5 and the constant region ends at x = 110.
func ExampleFindBreakpoint() {
	// 1) Build a synthetic series over x = 100..115.
	series := sensitivity.Series{}
	profit := 1000.0
	for i := 0; i <= 15; i++ {
		series = append(series, sensitivity.Point{Value: 100 + float64(i), Profit: profit})
		if i < 10 {
			profit += 5
		} else {
			profit += 3
		}
	}

	// 2) Scan for the breakpoint.
	res := sensitivity.FindBreakpoint(series)

	// 3) Report the marginal value and where it changes.
	fmt.Printf("marginal = %.1f\n", res.FirstMarginal)
	fmt.Printf("breakpoint at x = %.0f\n", res.Breakpoint)
	// Output:
	// marginal = 5.0
	// breakpoint at x = 110
}

// ExampleSweep runs the reference pump scenario end to end: sweep pumps
// 200→220 at the baseline and locate the breakpoint where the pump
// constraint stops being binding.
func ExampleSweep() {
	series, err := sensitivity.Sweep(sensitivity.Pumps, 200, 220, productmix.DefaultEnvelope())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := sensitivity.FindBreakpoint(series)
	fmt.Printf("marginal profit per pump = $%.2f\n", res.FirstMarginal)
	fmt.Printf("breakpoint near %.0f pumps\n", res.Breakpoint)
	// Output:
	// marginal profit per pump = $200.00
	// breakpoint near 207 pumps
}
