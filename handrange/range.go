// Package handrange implements villain range notation: weighted sets of
// two-card starting hands expressed the way players write them down
// ("AA", "AKs", "TT+", "A5s-A2s", "22-66").
package handrange

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/nlhe-solver/poker"
)

// Range is a collection of hole-card combinations with associated
// weights in [0,1]. A weight below 1 means the villain only plays that
// combo some fraction of the time (a mixed-strategy range).
type Range struct {
	hands map[poker.Hand]float64
}

// New creates an empty range.
func New() *Range {
	return &Range{hands: make(map[poker.Hand]float64)}
}

// Parse builds a range from comma-separated standard notation, e.g.
// "AA,KK,AKs,AKo", "TT+", "A5s-A2s", "22-66".
func Parse(notation string) (*Range, error) {
	r := New()
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}
	return r, nil
}

func (r *Range) addRangePart(part string) error {
	if strings.Contains(part, "+") {
		return r.addPlusRange(part)
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}
	return r.addSingleHand(part)
}

func (r *Range) addSingleHand(notation string) error {
	if len(notation) < 2 || len(notation) > 3 {
		return fmt.Errorf("invalid notation length: %s", notation)
	}

	rank1 := parseRank(notation[0])
	rank2 := parseRank(notation[1])
	if rank1 < 0 || rank2 < 0 {
		return fmt.Errorf("invalid rank in: %s", notation)
	}

	if rank1 == rank2 {
		if len(notation) == 3 {
			return fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		r.addPocketPair(rank1)
		return nil
	}

	if len(notation) == 2 {
		r.addSuitedCombos(rank1, rank2)
		r.addOffsuitCombos(rank1, rank2)
		return nil
	}

	switch notation[2] {
	case 's':
		r.addSuitedCombos(rank1, rank2)
	case 'o':
		r.addOffsuitCombos(rank1, rank2)
	default:
		return fmt.Errorf("invalid modifier: %c", notation[2])
	}
	return nil
}

func (r *Range) addPlusRange(notation string) error {
	plusIdx := strings.Index(notation, "+")
	if plusIdx == -1 {
		return fmt.Errorf("no + found")
	}

	base := notation[:plusIdx]
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("invalid base notation: %s", base)
	}

	rank1 := parseRank(base[0])
	rank2 := parseRank(base[1])
	if rank1 < 0 || rank2 < 0 {
		return fmt.Errorf("invalid rank")
	}

	if rank1 == rank2 {
		for rank := rank1; rank <= 12; rank++ {
			r.addPocketPair(rank)
		}
		return nil
	}

	suited, offsuit := true, true
	switch {
	case len(base) == 2:
	case base[2] == 's':
		offsuit = false
	case base[2] == 'o':
		suited = false
	default:
		return fmt.Errorf("invalid modifier")
	}

	for rank := rank2; rank < rank1; rank++ {
		if suited {
			r.addSuitedCombos(rank1, rank)
		}
		if offsuit {
			r.addOffsuitCombos(rank1, rank)
		}
	}
	return nil
}

func (r *Range) addDashRange(notation string) error {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid dash range format")
	}

	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if len(start) < 2 || len(end) < 2 {
		return fmt.Errorf("invalid notation in range")
	}

	startR1, startR2 := parseRank(start[0]), parseRank(start[1])
	endR1, endR2 := parseRank(end[0]), parseRank(end[1])
	if startR1 < 0 || startR2 < 0 || endR1 < 0 || endR2 < 0 {
		return fmt.Errorf("invalid ranks in range")
	}

	if startR1 == startR2 && endR1 == endR2 {
		lower, upper := minInt(startR1, endR1), maxInt(startR1, endR1)
		for rank := lower; rank <= upper; rank++ {
			r.addPocketPair(rank)
		}
		return nil
	}

	if startR1 == endR1 {
		suited := len(start) == 3 && start[2] == 's'
		offsuit := len(start) == 3 && start[2] == 'o'
		if len(start) == 2 {
			suited, offsuit = true, true
		}

		lower, upper := minInt(startR2, endR2), maxInt(startR2, endR2)
		for rank := lower; rank <= upper; rank++ {
			if suited {
				r.addSuitedCombos(startR1, rank)
			}
			if offsuit {
				r.addOffsuitCombos(startR1, rank)
			}
		}
		return nil
	}

	return fmt.Errorf("unsupported range format: %s", notation)
}

func (r *Range) addPocketPair(rank int) {
	pRank := uint8(rank)
	for suit1 := range uint8(4) {
		for suit2 := suit1 + 1; suit2 < 4; suit2++ {
			hand := poker.NewHand(poker.NewCard(pRank, suit1), poker.NewCard(pRank, suit2))
			r.hands[hand] = 1.0
		}
	}
}

func (r *Range) addSuitedCombos(rank1, rank2 int) {
	pRank1, pRank2 := uint8(rank1), uint8(rank2)
	for suit := range uint8(4) {
		hand := poker.NewHand(poker.NewCard(pRank1, suit), poker.NewCard(pRank2, suit))
		r.hands[hand] = 1.0
	}
}

func (r *Range) addOffsuitCombos(rank1, rank2 int) {
	pRank1, pRank2 := uint8(rank1), uint8(rank2)
	for suit1 := range uint8(4) {
		for suit2 := range uint8(4) {
			if suit1 == suit2 {
				continue
			}
			hand := poker.NewHand(poker.NewCard(pRank1, suit1), poker.NewCard(pRank2, suit2))
			r.hands[hand] = 1.0
		}
	}
}

// Contains reports whether the exact hole-card combination is in the
// range.
func (r *Range) Contains(c1, c2 poker.Card) bool {
	_, ok := r.hands[poker.NewHand(c1, c2)]
	return ok
}

// Size returns the number of hand combinations in the range.
func (r *Range) Size() int {
	return len(r.hands)
}

// Hands returns all hand combinations in the range, sorted for
// deterministic iteration order.
func (r *Range) Hands() []poker.Hand {
	hands := make([]poker.Hand, 0, len(r.hands))
	for hand := range r.hands {
		hands = append(hands, hand)
	}
	slices.Sort(hands)
	return hands
}

// Weight returns the weight of a specific combination, 0 if absent.
func (r *Range) Weight(hand poker.Hand) float64 {
	return r.hands[hand]
}

// TotalWeight returns the sum of every combination's weight, the total
// probability mass of the range.
func (r *Range) TotalWeight() float64 {
	var total float64
	for _, w := range r.hands {
		total += w
	}
	return total
}

// WithoutBlockers returns a new range containing only combinations that
// don't overlap any card in dead (e.g. the hero's hole cards and the
// board).
func (r *Range) WithoutBlockers(dead poker.Hand) *Range {
	out := New()
	for hand, weight := range r.hands {
		if !hand.Overlaps(dead) {
			out.hands[hand] = weight
		}
	}
	return out
}

func parseRank(c byte) int {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '2')
	case 'T':
		return 8
	case 'J':
		return 9
	case 'Q':
		return 10
	case 'K':
		return 11
	case 'A':
		return 12
	default:
		return -1
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
