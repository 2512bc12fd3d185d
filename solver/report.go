package solver

import (
	"math"

	"github.com/lox/nlhe-solver/action"
	"github.com/lox/nlhe-solver/handrange"
	"github.com/lox/nlhe-solver/poker"
)

// GameState describes the single decision point to solve: hero's hole
// cards, the known board, the pot and stacks, and villain's assumed
// range.
type GameState struct {
	HeroHand       poker.Hand
	Board          poker.Hand // 0, 3, 4 or 5 cards
	Pot            float64
	EffectiveStack float64
	ToCall         float64
	Position       action.Position
	VillainRange   *handrange.Range
	BetSizing      []float64
	MaxBetOptions  int
}

func (g GameState) decision() action.Decision {
	return action.Decision{
		Pot:            g.Pot,
		EffectiveStack: g.EffectiveStack,
		ToCall:         g.ToCall,
		BetSizing:      g.BetSizing,
		MaxBetOptions:  g.MaxBetOptions,
	}
}

func (g GameState) spr() float64 {
	if g.Pot <= 0 {
		return math.MaxFloat64
	}
	return g.EffectiveStack / g.Pot
}

// ActionReport is the solved frequency and expected value for one
// legal action.
type ActionReport struct {
	Action    action.Option
	Frequency float64
	EV        float64
}

// StrategyReport is the result of a Solve call.
type StrategyReport struct {
	Actions            []ActionReport
	IterationsExecuted uint32
	Convergence        float64
}
