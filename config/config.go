// Package config loads YAML scenario files for the prodmix CLI: the
// baseline resource envelope, the sweep bounds for each sensitivity
// question, and the chart output paths. Library packages never read
// configuration; only the command layer does.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prodmix/productmix"
)

// ErrBadScenario indicates an invalid scenario file (bad sweep bounds,
// negative resources, non-positive tubing increment).
var ErrBadScenario = errors.New("config: invalid scenario")

// SweepRange bounds one constant-marginal sweep, inclusive on both ends.
type SweepRange struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
}

// Baseline is the fixed resource envelope the sweeps vary around.
type Baseline struct {
	Pumps      float64 `yaml:"pumps"`
	LaborHours float64 `yaml:"labor_hours"`
	TubingFeet float64 `yaml:"tubing_feet"`
}

// Charts names the output files for the rendered profit curves. Empty
// paths skip the corresponding chart.
type Charts struct {
	Pumps string `yaml:"pumps"`
	Labor string `yaml:"labor"`
}

// Scenario is one full analysis request: baseline plus the three
// sensitivity questions of the reference report.
type Scenario struct {
	Baseline Baseline   `yaml:"baseline"`
	Pumps    SweepRange `yaml:"pumps"`
	Labor    SweepRange `yaml:"labor"`
	// TubingIncrement is how many extra feet beyond the baseline the
	// first-change scan tests.
	TubingIncrement int    `yaml:"tubing_increment"`
	Charts          Charts `yaml:"charts"`
}

// Default returns the reference scenario: baseline 200/1566/2880, pump
// sweep 200→220, labor sweep 1566→1820, tubing tested 50 feet beyond the
// baseline, charts next to the working directory.
func Default() Scenario {
	return Scenario{
		Baseline: Baseline{
			Pumps:      productmix.DefaultPumps,
			LaborHours: productmix.DefaultLaborHours,
			TubingFeet: productmix.DefaultTubingFeet,
		},
		Pumps:           SweepRange{Start: 200, Stop: 220},
		Labor:           SweepRange{Start: 1566, Stop: 1820},
		TubingIncrement: 50,
		Charts: Charts{
			Pumps: "profit_vs_pumps.png",
			Labor: "profit_vs_labor.png",
		},
	}
}

// Load reads a scenario file, layering it over Default() so omitted keys
// keep the reference values, and validates the result.
func Load(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	s := Default()
	if err = yaml.Unmarshal(b, &s); err != nil {
		return Scenario{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Envelope converts the baseline into a solver envelope.
func (s Scenario) Envelope() productmix.Envelope {
	return productmix.Envelope{
		Pumps:      s.Baseline.Pumps,
		LaborHours: s.Baseline.LaborHours,
		TubingFeet: s.Baseline.TubingFeet,
	}
}

// Validate checks sweep bounds, baseline sanity and the tubing increment.
func (s Scenario) Validate() error {
	if err := s.Envelope().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if s.Pumps.Start > s.Pumps.Stop {
		return fmt.Errorf("%w: pumps sweep [%d, %d]", ErrBadScenario, s.Pumps.Start, s.Pumps.Stop)
	}
	if s.Labor.Start > s.Labor.Stop {
		return fmt.Errorf("%w: labor sweep [%d, %d]", ErrBadScenario, s.Labor.Start, s.Labor.Stop)
	}
	if s.TubingIncrement <= 0 {
		return fmt.Errorf("%w: tubing increment %d", ErrBadScenario, s.TubingIncrement)
	}
	return nil
}
