package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodmix/chart"
	"github.com/katalvlaran/prodmix/productmix"
	"github.com/katalvlaran/prodmix/report"
	"github.com/katalvlaran/prodmix/sensitivity"
)

var (
	sweepDimension string
	sweepStart     int
	sweepStop      int
	sweepChartPath string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one resource dimension and locate its breakpoint",
	Long: `Sweep re-solves the LP for every integer value of one resource in
[start, stop], holding the other two at the baseline, then scans the
profit series for the breakpoint. Pumps and labor use the constant-
marginal-region scan; tubing uses the first-change scan.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVarP(&sweepDimension, "dimension", "d", "pumps",
		"resource to vary: pumps, labor or tubing")
	sweepCmd.Flags().IntVar(&sweepStart, "start", 200, "first swept value (inclusive)")
	sweepCmd.Flags().IntVar(&sweepStop, "stop", 220, "last swept value (inclusive)")
	sweepCmd.Flags().StringVar(&sweepChartPath, "chart", "",
		"optional PNG path for the profit curve")
}

// unitNames maps each dimension to its prose units.
func unitNames(dim sensitivity.Dimension) (singular, plural string) {
	switch dim {
	case sensitivity.Pumps:
		return "pump", "pumps"
	case sensitivity.Labor:
		return "hour", "hours"
	default:
		return "foot", "feet"
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	dim, err := sensitivity.ParseDimension(sweepDimension)
	if err != nil {
		return err
	}

	base := productmix.DefaultEnvelope()
	solver := productmix.NewSimplexSolver()

	baseline, err := solver.Solve(base)
	if err != nil {
		return err
	}

	slog.Debug("sweeping", "dimension", dim.String(),
		"start", sweepStart, "stop", sweepStop)
	series, err := sensitivity.Sweep(dim, sweepStart, sweepStop, base,
		sensitivity.WithSolver(solver))
	if err != nil {
		return err
	}

	// Tubing uses the first-change scan; pumps and labor the
	// constant-marginal-region scan. The two are not interchangeable.
	var (
		result   sensitivity.Result
		strategy report.Strategy
	)
	if dim == sensitivity.Tubing {
		result = sensitivity.FirstChange(series)
		strategy = report.FirstChangeScan
	} else {
		result = sensitivity.FindBreakpoint(series)
		strategy = report.ConstantMarginalScan
	}

	unit, units := unitNames(dim)
	if err = report.Write(os.Stdout, baseline, []report.Analysis{{
		Dimension: dim,
		Unit:      unit,
		Units:     units,
		Strategy:  strategy,
		Result:    result,
	}}); err != nil {
		return err
	}

	if sweepChartPath == "" {
		return nil
	}
	err = chart.Render(series, result, chart.Config{
		Title:   fmt.Sprintf("Profit vs %s (Breakpoint marked)", dim),
		XLabel:  fmt.Sprintf("%s available (%s)", dim, units),
		OutPath: sweepChartPath,
	})
	if err != nil {
		return err
	}
	slog.Info("chart written", "path", sweepChartPath)

	return nil
}
