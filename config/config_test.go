package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)

	s, err = Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.hcl")
	contents := `
solver {
  iterations             = 5000
  samples_per_iteration  = 50
  convergence_threshold  = 0.01
  bet_sizing             = [0.5, 1.0]
}
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5000, s.Iterations)
	require.Equal(t, 50, s.SamplesPerIteration)
	require.InDelta(t, 0.01, s.ConvergenceThreshold, 1e-9)
	require.Equal(t, []float64{0.5, 1.0}, s.BetSizing)
	require.Equal(t, Defaults().ConvergenceCheckEvery, s.ConvergenceCheckEvery)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	valid := Defaults()
	require.NoError(t, valid.Validate())

	bad := Defaults()
	bad.Iterations = 0
	require.Error(t, bad.Validate())

	bad2 := Defaults()
	bad2.BetSizing = []float64{0.5, 0.5}
	require.Error(t, bad2.Validate())
}
