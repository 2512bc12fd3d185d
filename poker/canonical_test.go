package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalHoleCardsPair(t *testing.T) {
	t.Parallel()
	a, _ := ParseCard("Ah")
	b, _ := ParseCard("Ac")
	require.Equal(t, "AA", CanonicalHoleCards(a, b))
}

func TestCanonicalHoleCardsSuited(t *testing.T) {
	t.Parallel()
	a, _ := ParseCard("Ah")
	b, _ := ParseCard("Kh")
	require.Equal(t, "AKs", CanonicalHoleCards(a, b))
	require.Equal(t, "AKs", CanonicalHoleCards(b, a))
}

func TestCanonicalHoleCardsOffsuit(t *testing.T) {
	t.Parallel()
	a, _ := ParseCard("7d")
	b, _ := ParseCard("2c")
	require.Equal(t, "72o", CanonicalHoleCards(a, b))
}

func TestCanonicalLabelsCountAndUniqueness(t *testing.T) {
	t.Parallel()
	labels := CanonicalLabels()
	require.Len(t, labels, 169)
	seen := make(map[string]bool, 169)
	for _, l := range labels {
		require.False(t, seen[l], "duplicate label %s", l)
		seen[l] = true
	}
}

func TestCanonicalIndexRoundTrip(t *testing.T) {
	t.Parallel()
	for _, label := range CanonicalLabels() {
		idx, ok := CanonicalIndex(label)
		require.True(t, ok, "label %s", label)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 169)
	}
}

func TestCanonicalIndexUnknownLabel(t *testing.T) {
	t.Parallel()
	_, ok := CanonicalIndex("ZZ")
	require.False(t, ok)
}

func TestCanonicalIndexDistinctPerLabel(t *testing.T) {
	t.Parallel()
	seen := make(map[int]string, 169)
	for _, label := range CanonicalLabels() {
		idx, ok := CanonicalIndex(label)
		require.True(t, ok)
		if other, exists := seen[idx]; exists {
			t.Fatalf("labels %s and %s collide on index %d", label, other, idx)
		}
		seen[idx] = label
	}
}
