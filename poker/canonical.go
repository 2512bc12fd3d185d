package poker

import (
	"fmt"

	chd "github.com/opencoff/go-chd"
)

// CanonicalHoleCards folds suit symmetry out of a two-card hole-card hand,
// producing one of the 169 standard preflop labels: a pocket pair
// ("AA"), a suited combo ("AKs") or an offsuit combo ("AKo"). This is the
// hero_hand_canonical value used by the solver's info-set key.
func CanonicalHoleCards(c1, c2 Card) string {
	r1, r2 := c1.Rank(), c2.Rank()
	hi, lo := r1, r2
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi == lo {
		return string([]byte{rankChars[hi], rankChars[lo]})
	}
	suited := c1.Suit() == c2.Suit()
	mod := byte('o')
	if suited {
		mod = 's'
	}
	return string([]byte{rankChars[hi], rankChars[lo], mod})
}

// canonicalLabels lists all 169 preflop labels in a fixed, deterministic
// order: pairs from AA down to 22, then for each descending high rank
// and each descending low rank below it, the suited combo followed by
// the offsuit combo (AKs, AKo, AQs, AQo, ...).
var canonicalLabels = buildCanonicalLabels()

func buildCanonicalLabels() []string {
	labels := make([]string, 0, 169)
	for hi := 12; hi >= 0; hi-- {
		labels = append(labels, string([]byte{rankChars[hi], rankChars[hi]}))
	}
	for hi := 12; hi >= 1; hi-- {
		for lo := hi - 1; lo >= 0; lo-- {
			labels = append(labels, string([]byte{rankChars[hi], rankChars[lo], 's'}))
			labels = append(labels, string([]byte{rankChars[hi], rankChars[lo], 'o'}))
		}
	}
	return labels
}

// canonicalHash is a minimal perfect hash over the 169 canonical
// preflop labels, built once at package initialisation. It lets the
// info-set key canonicalisation step turn a label into a dense
// [0,169) index in O(1) without a general-purpose map lookup.
var canonicalHash *chd.CHD

func init() {
	keys := make([][]byte, len(canonicalLabels))
	for i, l := range canonicalLabels {
		keys[i] = []byte(l)
	}

	b, err := chd.NewBuilder(keys)
	if err != nil {
		panic(fmt.Sprintf("poker: building canonical-label perfect hash: %v", err))
	}
	h, err := b.Freeze()
	if err != nil {
		panic(fmt.Sprintf("poker: freezing canonical-label perfect hash: %v", err))
	}
	canonicalHash = h
}

// CanonicalIndex returns the dense [0,169) index for a canonical
// preflop label as produced by CanonicalHoleCards, and whether the label
// was recognised.
func CanonicalIndex(label string) (int, bool) {
	if canonicalHash == nil {
		return 0, false
	}
	idx := int(canonicalHash.Find([]byte(label)))
	if idx < 0 || idx >= len(canonicalLabels) || canonicalLabels[idx] != label {
		return 0, false
	}
	return idx, true
}

// CanonicalLabels returns all 169 canonical preflop labels in the fixed
// order used to build the perfect hash.
func CanonicalLabels() []string {
	out := make([]string, len(canonicalLabels))
	copy(out, canonicalLabels)
	return out
}
