package handrange

import (
	"testing"

	"github.com/lox/nlhe-solver/poker"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		wantSize int
		wantErr  bool
	}{
		{name: "pocket aces", notation: "AA", wantSize: 6},
		{name: "ace king suited", notation: "AKs", wantSize: 4},
		{name: "ace king offsuit", notation: "AKo", wantSize: 12},
		{name: "ace king any", notation: "AK", wantSize: 16},
		{name: "multiple hands", notation: "AA,KK,AKs", wantSize: 16},
		{name: "pocket pairs range", notation: "TT+", wantSize: 30},
		{name: "suited range plus", notation: "ATs+", wantSize: 16},
		{name: "offsuit range plus", notation: "KJo+", wantSize: 24},
		{name: "dash range pairs", notation: "22-55", wantSize: 24},
		{name: "dash range suited", notation: "A5s-A2s", wantSize: 16},
		{name: "complex range", notation: "TT+,AJs+,KQs", wantSize: 46},
		{name: "invalid notation", notation: "XX", wantErr: true},
		{name: "invalid modifier", notation: "AKx", wantErr: true},
		{name: "pocket pair with modifier", notation: "AAs", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := Parse(tc.notation)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantSize, r.Size())
		})
	}
}

func TestRangeContains(t *testing.T) {
	t.Parallel()
	r, err := Parse("AA,KK,AKs")
	require.NoError(t, err)

	tests := []struct {
		card1, card2 string
		want         bool
	}{
		{"Ah", "As", true},
		{"Kh", "Kd", true},
		{"Ah", "Kh", true},
		{"Ah", "Kd", false},
		{"Qh", "Qd", false},
	}

	for _, tc := range tests {
		c1, err1 := poker.ParseCard(tc.card1)
		c2, err2 := poker.ParseCard(tc.card2)
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, tc.want, r.Contains(c1, c2))
	}
}

func TestRangeWeight(t *testing.T) {
	t.Parallel()
	r, err := Parse("AA")
	require.NoError(t, err)
	aceHearts, _ := poker.ParseCard("Ah")
	aceSpades, _ := poker.ParseCard("As")
	hand := poker.NewHand(aceHearts, aceSpades)
	require.Equal(t, 1.0, r.Weight(hand))

	kingHearts, _ := poker.ParseCard("Kh")
	kingSpades, _ := poker.ParseCard("Ks")
	require.Zero(t, r.Weight(poker.NewHand(kingHearts, kingSpades)))
}

func TestRangeWithoutBlockers(t *testing.T) {
	t.Parallel()
	r, err := Parse("AA,KK")
	require.NoError(t, err)
	require.Equal(t, 12, r.Size())

	aceHearts, _ := poker.ParseCard("Ah")
	dead := poker.NewHand(aceHearts)

	filtered := r.WithoutBlockers(dead)
	require.Equal(t, 9, filtered.Size())
	for _, hand := range filtered.Hands() {
		require.False(t, hand.Overlaps(dead))
	}
}

func TestRangeTotalWeight(t *testing.T) {
	t.Parallel()
	r, err := Parse("AA")
	require.NoError(t, err)
	require.Equal(t, 6.0, r.TotalWeight())
}

func TestRangeHandsSorted(t *testing.T) {
	t.Parallel()
	r, err := Parse("AA,KK")
	require.NoError(t, err)
	hands := r.Hands()
	require.Len(t, hands, 12)
	for i := 1; i < len(hands); i++ {
		require.LessOrEqual(t, hands[i-1], hands[i])
	}
}
