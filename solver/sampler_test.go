package solver

import (
	"testing"

	"github.com/lox/nlhe-solver/handrange"
	"github.com/lox/nlhe-solver/poker"
	"github.com/stretchr/testify/require"
)

func TestSampleVillainHandsFiltersBlockers(t *testing.T) {
	t.Parallel()
	r, err := handrange.Parse("AA")
	require.NoError(t, err)

	aceHearts, _ := poker.ParseCard("Ah")
	aceSpades, _ := poker.ParseCard("As")
	dead := poker.NewHand(aceHearts, aceSpades)

	sampler := NewSampler(NewRNG(1))
	hands, err := sampler.SampleVillainHands(r, dead, 20)
	require.NoError(t, err)
	require.Len(t, hands, 20)
	for _, h := range hands {
		require.False(t, h.Overlaps(dead))
	}
}

func TestSampleVillainHandsEmptyRange(t *testing.T) {
	t.Parallel()
	r, err := handrange.Parse("AA")
	require.NoError(t, err)

	aceHearts, _ := poker.ParseCard("Ah")
	aceSpades, _ := poker.ParseCard("As")
	aceDiamonds, _ := poker.ParseCard("Ad")
	aceClubs, _ := poker.ParseCard("Ac")
	dead := poker.NewHand(aceHearts, aceSpades, aceDiamonds, aceClubs)

	sampler := NewSampler(NewRNG(1))
	_, err = sampler.SampleVillainHands(r, dead, 10)
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestSampleActionDegenerateStrategy(t *testing.T) {
	t.Parallel()
	sampler := NewSampler(NewRNG(2))
	idx := sampler.SampleAction([]float64{0, 0, 0})
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, 3)
}

func TestSampleActionDeterministicPick(t *testing.T) {
	t.Parallel()
	sampler := NewSampler(NewRNG(2))
	idx := sampler.SampleAction([]float64{1, 0, 0})
	require.Equal(t, 0, idx)
}

func TestNewRNGDeterministic(t *testing.T) {
	t.Parallel()
	a := NewRNG(42)
	b := NewRNG(42)
	require.Equal(t, a.Int63(), b.Int63())
}
