package action

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalActionsFacingBet(t *testing.T) {
	t.Parallel()
	d := Decision{
		Pot:            100,
		EffectiveStack: 500,
		ToCall:         50,
		BetSizing:      []float64{0.33, 0.5, 1.0},
	}
	opts := LegalActions(d)

	var kinds []Kind
	for _, o := range opts {
		kinds = append(kinds, o.Kind)
	}
	require.Contains(t, kinds, Fold)
	require.Contains(t, kinds, Call)
	require.Contains(t, kinds, Bet)
	require.Contains(t, kinds, AllIn)
	require.NotContains(t, kinds, Check)
}

func TestLegalActionsNoBet(t *testing.T) {
	t.Parallel()
	d := Decision{
		Pot:            100,
		EffectiveStack: 500,
		ToCall:         0,
		BetSizing:      []float64{0.5, 1.0},
	}
	opts := LegalActions(d)

	var kinds []Kind
	for _, o := range opts {
		kinds = append(kinds, o.Kind)
	}
	require.Contains(t, kinds, Check)
	require.NotContains(t, kinds, Fold)
	require.NotContains(t, kinds, Call)
}

func TestLegalActionsCallCappedAtStack(t *testing.T) {
	t.Parallel()
	d := Decision{
		Pot:            100,
		EffectiveStack: 30,
		ToCall:         50,
		BetSizing:      nil,
	}
	opts := LegalActions(d)
	for _, o := range opts {
		if o.Kind == Call {
			require.Equal(t, 30.0, o.Amount)
		}
	}
}

func TestLegalActionsNoChipsBehind(t *testing.T) {
	t.Parallel()
	d := Decision{Pot: 100, EffectiveStack: 0, ToCall: 50, BetSizing: []float64{0.5}}
	opts := LegalActions(d)
	for _, o := range opts {
		require.NotEqual(t, Bet, o.Kind)
		require.NotEqual(t, AllIn, o.Kind)
	}
}

func TestLegalActionsDedupAndCap(t *testing.T) {
	t.Parallel()
	d := Decision{
		Pot:            100,
		EffectiveStack: 1000,
		ToCall:         0,
		BetSizing:      []float64{0.5, 0.5, 0.75, 1.0, 1.5},
		MaxBetOptions:  2,
	}
	opts := LegalActions(d)
	betCount := 0
	for _, o := range opts {
		if o.Kind == Bet {
			betCount++
		}
	}
	require.Equal(t, 2, betCount)
}

func TestPositionFromStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, p := range []Position{SmallBlind, BigBlind, UnderTheGun, MiddlePosition, Cutoff, Button} {
		require.Equal(t, p, PositionFromString(p.String()))
	}
}
