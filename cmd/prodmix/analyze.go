package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodmix/chart"
	"github.com/katalvlaran/prodmix/config"
	"github.com/katalvlaran/prodmix/productmix"
	"github.com/katalvlaran/prodmix/report"
	"github.com/katalvlaran/prodmix/sensitivity"
)

var analyzeConfigPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full reference analysis: baseline, pump and labor sweeps, tubing check",
	Long: `Analyze reproduces the reference report end to end. It solves the
baseline plan, sweeps pumps and labor to find their marginal values and
breakpoints, checks whether extra tubing changes profit at all, prints
the combined text report and renders the profit curves.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"YAML scenario file (defaults to the reference scenario)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	scen := config.Default()
	if analyzeConfigPath != "" {
		var err error
		if scen, err = config.Load(analyzeConfigPath); err != nil {
			return err
		}
		slog.Debug("scenario loaded", "path", analyzeConfigPath)
	}

	base := scen.Envelope()
	solver := productmix.NewSimplexSolver()

	baseline, err := solver.Solve(base)
	if err != nil {
		return err
	}
	slog.Debug("baseline solved", "profit", baseline.Profit)

	// Q1: pumps — constant-marginal-region scan over the configured range.
	pumpSeries, err := sensitivity.Sweep(
		sensitivity.Pumps, scen.Pumps.Start, scen.Pumps.Stop, base,
		sensitivity.WithSolver(solver))
	if err != nil {
		return err
	}
	pumpResult := sensitivity.FindBreakpoint(pumpSeries)

	// Q2: labor — same scan over the labor range.
	laborSeries, err := sensitivity.Sweep(
		sensitivity.Labor, scen.Labor.Start, scen.Labor.Stop, base,
		sensitivity.WithSolver(solver))
	if err != nil {
		return err
	}
	laborResult := sensitivity.FindBreakpoint(laborSeries)

	// Q3: tubing — first-change scan. The series starts at the baseline
	// quantity so the first comparison is against the baseline profit.
	tubingStart := int(base.TubingFeet)
	tubingSeries, err := sensitivity.Sweep(
		sensitivity.Tubing, tubingStart, tubingStart+scen.TubingIncrement, base,
		sensitivity.WithSolver(solver))
	if err != nil {
		return err
	}
	tubingResult := sensitivity.FirstChange(tubingSeries)

	err = report.Write(os.Stdout, baseline, []report.Analysis{
		{
			Dimension: sensitivity.Pumps,
			Unit:      "pump", Units: "pumps",
			Strategy: report.ConstantMarginalScan,
			Result:   pumpResult,
		},
		{
			Dimension: sensitivity.Labor,
			Unit:      "hour", Units: "hours",
			Strategy: report.ConstantMarginalScan,
			Result:   laborResult,
		},
		{
			Dimension: sensitivity.Tubing,
			Unit:      "foot", Units: "feet",
			Strategy: report.FirstChangeScan,
			Result:   tubingResult,
		},
	})
	if err != nil {
		return err
	}

	// Profit curves for the two marginal-value sweeps, as in the
	// reference report.
	charts := []struct {
		path   string
		series sensitivity.Series
		result sensitivity.Result
		title  string
		xlabel string
	}{
		{scen.Charts.Pumps, pumpSeries, pumpResult,
			"Profit vs Pumps (Breakpoint marked)", "Pumps Available"},
		{scen.Charts.Labor, laborSeries, laborResult,
			"Profit vs Labor (Breakpoint marked)", "Labor Hours Available"},
	}
	for _, c := range charts {
		if c.path == "" {
			continue
		}
		if err = chart.Render(c.series, c.result, chart.Config{
			Title:   c.title,
			XLabel:  c.xlabel,
			OutPath: c.path,
		}); err != nil {
			return err
		}
		slog.Info("chart written", "path", c.path)
	}

	return nil
}
