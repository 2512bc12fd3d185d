package api

import (
	"testing"

	"github.com/lox/nlhe-solver/action"
	"github.com/stretchr/testify/require"
)

func TestSolveRequestToGameState(t *testing.T) {
	t.Parallel()
	req := SolveRequest{
		HeroCards:      []string{"As", "Ks"},
		Board:          []string{"Ah", "7c", "2d"},
		VillainRange:   "AA,KK",
		Pot:            100,
		EffectiveStack: 400,
		ToCall:         50,
		Position:       "BTN",
		BetSizing:      []float64{0.5, 1.0},
	}

	gs, err := req.toGameState()
	require.NoError(t, err)
	require.Equal(t, 2, gs.HeroHand.CountCards())
	require.Equal(t, 3, gs.Board.CountCards())
	require.Equal(t, action.Button, gs.Position)
	require.Equal(t, 12, gs.VillainRange.Size())
}

func TestSolveRequestToGameStateInvalidCard(t *testing.T) {
	t.Parallel()
	req := SolveRequest{HeroCards: []string{"Zz", "Ks"}, VillainRange: "AA"}
	_, err := req.toGameState()
	require.Error(t, err)
}

func TestSolveRequestToGameStateInvalidRange(t *testing.T) {
	t.Parallel()
	req := SolveRequest{HeroCards: []string{"As", "Ks"}, VillainRange: "XX"}
	_, err := req.toGameState()
	require.Error(t, err)
}

func TestSolveRequestToConfig(t *testing.T) {
	t.Parallel()
	seed := uint64(5)
	req := SolveRequest{
		Iterations:            1000,
		SamplesPerIteration:   50,
		ConvergenceThreshold:  0.01,
		ConvergenceCheckEvery: 100,
		Seed:                  &seed,
	}
	cfg := req.toConfig()
	require.Equal(t, uint32(1000), cfg.Iterations)
	require.Equal(t, &seed, cfg.Seed)
}
