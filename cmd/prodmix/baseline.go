package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodmix/productmix"
	"github.com/katalvlaran/prodmix/report"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Solve the baseline product-mix LP and print the optimal plan",
	RunE:  runBaseline,
}

func runBaseline(cmd *cobra.Command, args []string) error {
	env := productmix.DefaultEnvelope()
	slog.Debug("solving baseline", "pumps", env.Pumps,
		"labor_hours", env.LaborHours, "tubing_feet", env.TubingFeet)

	plan, err := productmix.NewSimplexSolver().Solve(env)
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, plan, nil)
}
