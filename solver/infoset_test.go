package solver

import (
	"testing"

	"github.com/lox/nlhe-solver/action"
	"github.com/stretchr/testify/require"
)

func TestBucketFromSPR(t *testing.T) {
	t.Parallel()
	tests := []struct {
		spr  float64
		want SPRBucket
	}{
		{0, Short},
		{1.99, Short},
		{2, Medium},
		{4.99, Medium},
		{5, Deep},
		{9.99, Deep},
		{10, VeryDeep},
		{1000, VeryDeep},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, BucketFromSPR(tc.spr), "spr=%v", tc.spr)
	}
}

func TestInfoSetKeyStringDistinct(t *testing.T) {
	t.Parallel()
	a := InfoSetKey{HeroHandCanonical: "AKs", SPRBucket: Short, Position: action.Button}
	b := InfoSetKey{HeroHandCanonical: "AKs", SPRBucket: Medium, Position: action.Button}
	require.NotEqual(t, a.String(), b.String())
}
