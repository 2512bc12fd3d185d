// Package equity implements the hand-strength oracle the solver treats
// as an opaque collaborator: given two hole-card hands and a (possibly
// incomplete) board, decide who wins.
package equity

import (
	"math/rand"

	"github.com/lox/nlhe-solver/poker"
)

// Outcome is the result of a single showdown comparison from hero's
// perspective.
type Outcome int

const (
	Lose Outcome = iota
	Tie
	Win
)

// Evaluate resolves a single showdown between hero and villain given a
// board of 0, 3, 4 or 5 known community cards. A complete 5-card board
// is resolved deterministically; an incomplete board is completed with
// cards drawn at random from a deck excluding every card already
// visible (hero's hole cards, villain's hole cards and the known
// board), so each call simulates one runout.
func Evaluate(hero, villain, board poker.Hand, rng *rand.Rand) Outcome {
	boardCount := board.CountCards()
	if boardCount > 5 {
		boardCount = 5
	}

	finalBoard := board
	if needed := 5 - boardCount; needed > 0 {
		dead := hero | villain | board
		deck := poker.NewDeckExcluding(rng, dead)
		for _, card := range deck.Deal(needed) {
			finalBoard.AddCard(card)
		}
	}

	heroRank := poker.Evaluate7Cards(hero | finalBoard)
	villainRank := poker.Evaluate7Cards(villain | finalBoard)

	switch poker.CompareHands(heroRank, villainRank) {
	case 1:
		return Win
	case -1:
		return Lose
	default:
		return Tie
	}
}

// Payoff converts an Outcome into a signed utility relative to the
// amount hero risks to see the given showdown, win = +atStake,
// loss = -atStake, tie = 0.
func Payoff(outcome Outcome, atStake float64) float64 {
	switch outcome {
	case Win:
		return atStake
	case Lose:
		return -atStake
	default:
		return 0
	}
}

// EquitySample runs n independent showdowns and returns hero's raw
// equity (wins count 1, ties count 0.5) against a single villain hand.
// The solver does not call it; its regret updates consume the Outcome
// of Evaluate directly.
func EquitySample(hero, villain, board poker.Hand, n int, rng *rand.Rand) float64 {
	if n <= 0 {
		return 0
	}
	var total float64
	for range n {
		switch Evaluate(hero, villain, board, rng) {
		case Win:
			total += 1.0
		case Tie:
			total += 0.5
		}
	}
	return total / float64(n)
}
