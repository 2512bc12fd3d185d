package solver

import (
	"fmt"

	"github.com/lox/nlhe-solver/action"
	"github.com/lox/nlhe-solver/poker"
)

// SPRBucket buckets the stack-to-pot ratio at the decision point into a
// coarse class, since exact SPR values would blow up the info-set space
// for negligible strategic difference.
type SPRBucket uint8

const (
	Short SPRBucket = iota
	Medium
	Deep
	VeryDeep
)

func (b SPRBucket) String() string {
	switch b {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Deep:
		return "deep"
	case VeryDeep:
		return "verydeep"
	default:
		return "unknown"
	}
}

// BucketFromSPR maps a stack-to-pot ratio to its bucket:
// Short < 2, Medium [2,5), Deep [5,10), VeryDeep >= 10.
func BucketFromSPR(spr float64) SPRBucket {
	switch {
	case spr < 2:
		return Short
	case spr < 5:
		return Medium
	case spr < 10:
		return Deep
	default:
		return VeryDeep
	}
}

// InfoSetKey uniquely identifies the decision the solver is reasoning
// about. Unlike a full-game solver's key, it carries no street or
// action-history component: this solver analyzes exactly one decision
// point in isolation, so hero's canonical hole cards, the SPR bucket
// and hero's position are sufficient to determine the strategy.
type InfoSetKey struct {
	HeroHandCanonical string
	SPRBucket         SPRBucket
	Position          action.Position
}

// String renders the key as the map key used by RegretTable and
// ConvergenceTracker. Hero's canonical label is resolved through the
// 169-label perfect hash built in poker.init() into its dense index,
// and the key string carries that index in place of the label. A
// label the hash doesn't recognise (only
// possible from a malformed canonical label) falls back to the raw
// string so the key stays well-defined.
func (k InfoSetKey) String() string {
	if idx, ok := poker.CanonicalIndex(k.HeroHandCanonical); ok {
		return fmt.Sprintf("%d/%s/%s", idx, k.SPRBucket, k.Position)
	}
	return fmt.Sprintf("%s/%s/%s", k.HeroHandCanonical, k.SPRBucket, k.Position)
}
