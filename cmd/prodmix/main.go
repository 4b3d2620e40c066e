// Command prodmix solves the Blue Ridge Hot Tubs product-mix LP and runs
// the resource sensitivity analysis from the reference report: baseline
// plan, pump and labor marginal-value sweeps with breakpoint detection,
// and the tubing binding check.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool

	logger *slog.Logger
)

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "prodmix",
	Short: "Product-mix LP solver and resource sensitivity analysis",
	Long: `prodmix solves the classic two-product, three-resource product-mix
linear program (Aqua-Spa / Hydro-Lux hot tubs limited by pumps, labor
hours and tubing) and explores how the optimal profit responds to extra
resources: marginal values, breakpoints, and binding checks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.AddCommand(baselineCmd, sweepCmd, analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "prodmix:", err)
		os.Exit(1)
	}
}
