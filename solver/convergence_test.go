package solver

import (
	"testing"

	"github.com/lox/nlhe-solver/action"
	"github.com/stretchr/testify/require"
)

func TestConvergenceFirstCallIsOne(t *testing.T) {
	t.Parallel()
	table := NewRegretTable()
	_, err := table.Get(testKey(), 2)
	require.NoError(t, err)

	tracker := NewConvergenceTracker()
	require.Equal(t, 1.0, tracker.Check(table))
}

func TestConvergenceDetectsChange(t *testing.T) {
	t.Parallel()
	table := NewRegretTable()
	entry, err := table.Get(testKey(), 2)
	require.NoError(t, err)

	tracker := NewConvergenceTracker()
	tracker.Check(table)

	require.NoError(t, entry.Update([]float64{10, -10}, []float64{1, 0}, 1.0))
	delta := tracker.Check(table)
	require.Greater(t, delta, 0.0)
}

func TestConvergenceStabilizes(t *testing.T) {
	t.Parallel()
	table := NewRegretTable()
	entry, err := table.Get(testKey(), 2)
	require.NoError(t, err)
	require.NoError(t, entry.Update([]float64{10, -10}, []float64{1, 0}, 1.0))

	tracker := NewConvergenceTracker()
	tracker.Check(table)
	delta := tracker.Check(table)
	require.Equal(t, 0.0, delta)
}

func TestConvergenceNewKeyCountsAsChange(t *testing.T) {
	t.Parallel()
	table := NewRegretTable()
	tracker := NewConvergenceTracker()
	tracker.Check(table)

	otherKey := InfoSetKey{HeroHandCanonical: "72o", SPRBucket: Short, Position: action.SmallBlind}
	_, err := table.Get(otherKey, 2)
	require.NoError(t, err)

	require.Equal(t, 1.0, tracker.Check(table))
}

func TestConvergenceReset(t *testing.T) {
	t.Parallel()
	table := NewRegretTable()
	_, err := table.Get(testKey(), 2)
	require.NoError(t, err)

	tracker := NewConvergenceTracker()
	tracker.Check(table)
	tracker.Reset()
	require.Equal(t, 1.0, tracker.Check(table))
}
