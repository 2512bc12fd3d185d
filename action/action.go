// Package action enumerates the legal actions available to hero at the
// single decision point the solver analyzes.
package action

import (
	"math"
	"sort"
)

// Kind identifies the category of action hero can take.
type Kind int

const (
	Fold Kind = iota
	Check
	Call
	Bet
	AllIn
)

func (k Kind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Position is hero's seat relative to the action, used only to select
// the SPR/position leg of the info-set key.
type Position int

const (
	UnknownPosition Position = iota
	SmallBlind
	BigBlind
	UnderTheGun
	MiddlePosition
	Cutoff
	Button
)

func (p Position) String() string {
	switch p {
	case SmallBlind:
		return "SB"
	case BigBlind:
		return "BB"
	case UnderTheGun:
		return "UTG"
	case MiddlePosition:
		return "MP"
	case Cutoff:
		return "CO"
	case Button:
		return "BTN"
	default:
		return "unknown"
	}
}

// PositionFromString converts a string to a Position, returning
// UnknownPosition for anything unrecognized.
func PositionFromString(s string) Position {
	switch s {
	case "SB", "Small Blind":
		return SmallBlind
	case "BB", "Big Blind":
		return BigBlind
	case "UTG", "Under the Gun":
		return UnderTheGun
	case "MP", "Middle Position":
		return MiddlePosition
	case "CO", "Cutoff":
		return Cutoff
	case "BTN", "Button", "Dealer":
		return Button
	default:
		return UnknownPosition
	}
}

// Option is one legal action and the chips hero puts in by taking it:
// the call amount for Call, the bet size for Bet, the effective stack
// for AllIn, and 0 for Fold and Check.
type Option struct {
	Kind   Kind
	Amount float64
}

func (o Option) String() string {
	if o.Kind == Bet || o.Kind == AllIn {
		return o.Kind.String()
	}
	return o.Kind.String()
}

// Decision describes the single decision point hero faces: the pot
// size before acting, hero's remaining stack, the amount hero must put
// in to call (0 if checking is legal), and the bet-sizing fractions of
// pot the solver should consider as distinct raise sizes.
type Decision struct {
	Pot            float64
	EffectiveStack float64
	ToCall         float64
	BetSizing      []float64 // fractions of pot, e.g. [0.33, 0.5, 0.75, 1.0]
	MaxBetOptions  int       // 0 means unlimited
}

// LegalActions enumerates the actions hero may take given a Decision.
// Fold is always legal unless ToCall is 0 (no bet to fold to, hero can
// only check). Call is legal when ToCall > 0. Bet/raise sizes are
// derived from BetSizing fractions of pot, deduplicated, sorted
// ascending, and capped to MaxBetOptions (smallest first) if set. A
// size that rounds to 0 or reaches the effective stack is dropped, not
// clamped; no minimum-raise check is applied. An all-in option is always offered separately
// from the sized bets when hero has chips behind.
func LegalActions(d Decision) []Option {
	opts := make([]Option, 0, len(d.BetSizing)+3)

	if d.ToCall > 0 {
		opts = append(opts, Option{Kind: Fold})
		call := d.ToCall
		if call > d.EffectiveStack {
			call = d.EffectiveStack
		}
		opts = append(opts, Option{Kind: Call, Amount: call})
	} else {
		opts = append(opts, Option{Kind: Check})
	}

	maxBet := d.EffectiveStack
	if maxBet <= 0 {
		return opts
	}

	sizes := betSizes(d.Pot, maxBet, d.BetSizing, d.MaxBetOptions)
	for _, amt := range sizes {
		opts = append(opts, Option{Kind: Bet, Amount: amt})
	}

	if maxBet > 0 && !containsAmount(sizes, maxBet) {
		opts = append(opts, Option{Kind: AllIn, Amount: maxBet})
	}

	return opts
}

func betSizes(pot, maxBet float64, fractions []float64, cap int) []float64 {
	seen := make(map[float64]struct{}, len(fractions))
	out := make([]float64, 0, len(fractions))
	for _, frac := range fractions {
		if frac <= 0 {
			continue
		}
		amt := math.Round(pot*frac*100) / 100
		if amt <= 0 || amt >= maxBet {
			continue
		}
		if _, ok := seen[amt]; ok {
			continue
		}
		seen[amt] = struct{}{}
		out = append(out, amt)
	}
	sort.Float64s(out)
	if cap > 0 && len(out) > cap {
		out = out[:cap]
	}
	return out
}

func containsAmount(amounts []float64, v float64) bool {
	for _, a := range amounts {
		if a == v {
			return true
		}
	}
	return false
}
