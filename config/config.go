// Package config loads solver defaults from an optional HCL file, so a
// user can pin iteration counts, bet sizing ladders and convergence
// thresholds without passing a dozen flags on every invocation.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SolverDefaults holds the solver parameters a defaults file can pin.
// Every field is optional; zero values mean "use the built-in default"
// and Load fills them in from Defaults().
type SolverDefaults struct {
	Solver SolverSettings `hcl:"solver,block"`
}

// SolverSettings is the single settings block a defaults file declares.
type SolverSettings struct {
	Iterations            int       `hcl:"iterations,optional"`
	SamplesPerIteration   int       `hcl:"samples_per_iteration,optional"`
	ConvergenceThreshold  float64   `hcl:"convergence_threshold,optional"`
	ConvergenceCheckEvery int       `hcl:"convergence_check_every,optional"`
	BetSizing             []float64 `hcl:"bet_sizing,optional"`
	Seed                  int64     `hcl:"seed,optional"`
}

// Defaults returns the built-in solver defaults (spec's out-of-the-box
// values), used when no defaults file is present and to backfill any
// field a loaded file leaves unset.
func Defaults() SolverSettings {
	return SolverSettings{
		Iterations:            10000,
		SamplesPerIteration:   100,
		ConvergenceThreshold:  0.001,
		ConvergenceCheckEvery: 250,
		BetSizing:             []float64{0.33, 0.5, 0.75, 1.0},
	}
}

// Load reads solver defaults from an HCL file. If filename is empty or
// the file does not exist, it returns the built-in defaults.
func Load(filename string) (SolverSettings, error) {
	defaults := Defaults()
	if filename == "" {
		return defaults, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return defaults, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return SolverSettings{}, fmt.Errorf("parsing HCL file %s: %s", filename, diags.Error())
	}

	var cfg SolverDefaults
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return SolverSettings{}, fmt.Errorf("decoding HCL file %s: %s", filename, diags.Error())
	}

	merged := cfg.Solver
	if merged.Iterations == 0 {
		merged.Iterations = defaults.Iterations
	}
	if merged.SamplesPerIteration == 0 {
		merged.SamplesPerIteration = defaults.SamplesPerIteration
	}
	if merged.ConvergenceThreshold == 0 {
		merged.ConvergenceThreshold = defaults.ConvergenceThreshold
	}
	if merged.ConvergenceCheckEvery == 0 {
		merged.ConvergenceCheckEvery = defaults.ConvergenceCheckEvery
	}
	if len(merged.BetSizing) == 0 {
		merged.BetSizing = defaults.BetSizing
	}

	return merged, nil
}

// Validate checks that the settings are usable by the solver.
func (s SolverSettings) Validate() error {
	if s.Iterations <= 0 {
		return fmt.Errorf("iterations must be > 0")
	}
	if s.SamplesPerIteration <= 0 {
		return fmt.Errorf("samples_per_iteration must be > 0")
	}
	if s.ConvergenceThreshold <= 0 {
		return fmt.Errorf("convergence_threshold must be > 0")
	}
	if s.ConvergenceCheckEvery <= 0 {
		return fmt.Errorf("convergence_check_every must be > 0")
	}
	last := 0.0
	for i, f := range s.BetSizing {
		if f <= 0 {
			return fmt.Errorf("bet_sizing[%d] must be > 0", i)
		}
		if f <= last {
			return fmt.Errorf("bet_sizing[%d] must be strictly increasing", i)
		}
		last = f
	}
	return nil
}
