// Package solver implements external-sampling Monte Carlo counterfactual
// regret minimization over a single no-limit hold'em decision point:
// given hero's hole cards, the known board, the pot, the stacks and an
// assumed villain range, it converges on hero's equilibrium action
// frequencies and their expected values.
//
// Unlike a full game-tree solver, this package never recurses into
// villain's response or subsequent streets. Villain is treated as a
// range that always continues (calls) rather than a strategic agent in
// its own right, so every action's value comes directly from comparing
// hero's hand against sampled villain hands via the equity oracle. That
// keeps the info-set key — and the whole problem — scoped to one
// decision, matching what this solver is actually asked to answer.
package solver

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lox/nlhe-solver/action"
	"github.com/lox/nlhe-solver/equity"
	"github.com/lox/nlhe-solver/poker"
)

// Solve runs MCCFR over gs until either cfg.Iterations is exhausted or
// the convergence metric drops below cfg.ConvergenceThreshold at a
// check interval, then reports the converged (or best-effort) strategy
// with EV estimates from a larger final sample. Exhausting the
// iteration budget without reaching the threshold is a normal outcome:
// the returned StrategyReport.IterationsExecuted simply equals
// cfg.Iterations and Convergence reports however close the run got.
// Solve returns ErrInvalidGameState, ErrEmptyRange or ErrNoValidActions
// for malformed inputs, a *ConvergenceFailure only if an internal
// counterfactual value turns non-finite, or ctx.Err() if ctx is
// cancelled mid-solve.
func Solve(ctx context.Context, gs GameState, cfg Config) (StrategyReport, error) {
	if err := cfg.Validate(); err != nil {
		return StrategyReport{}, err
	}
	if err := validateGameState(gs); err != nil {
		return StrategyReport{}, err
	}

	heroCards := gs.HeroHand.Cards()
	canonical := poker.CanonicalHoleCards(heroCards[0], heroCards[1])
	key := InfoSetKey{
		HeroHandCanonical: canonical,
		SPRBucket:         BucketFromSPR(gs.spr()),
		Position:          gs.Position,
	}

	opts := action.LegalActions(gs.decision())
	if len(opts) == 0 {
		return StrategyReport{}, ErrNoValidActions
	}

	dead := gs.HeroHand | gs.Board
	filtered := gs.VillainRange.WithoutBlockers(dead)
	if filtered.Size() == 0 {
		return StrategyReport{}, ErrEmptyRange
	}
	reachWeight := filtered.TotalWeight()

	table := NewRegretTable()
	entry, err := table.Get(key, len(opts))
	if err != nil {
		return StrategyReport{}, err
	}

	seed, err := resolveSeed(cfg.Seed)
	if err != nil {
		return StrategyReport{}, err
	}
	rng := NewRNG(seed)
	sampler := NewSampler(rng)
	tracker := NewConvergenceTracker()

	var executed uint32
	var lastMetric float64
	var checked bool

	for iter := uint32(1); iter <= cfg.Iterations; iter++ {
		select {
		case <-ctx.Done():
			return StrategyReport{}, ctx.Err()
		default:
		}

		villainHands, err := sampler.SampleVillainHands(filtered, dead, int(cfg.SamplesPerIteration))
		if err != nil {
			return StrategyReport{}, err
		}

		strategy := entry.Strategy()
		cfvs, err := computeCFVs(gs, opts, villainHands, rng)
		if err != nil {
			return StrategyReport{}, err
		}

		nodeValue := 0.0
		for i, v := range cfvs {
			nodeValue += strategy[i] * v
		}

		regretDelta := make([]float64, len(opts))
		for i, v := range cfvs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return StrategyReport{}, &ConvergenceFailure{
					Iterations: iter - 1,
					Metric:     lastMetric,
					Threshold:  cfg.ConvergenceThreshold,
				}
			}
			regretDelta[i] = v - nodeValue
		}
		if err := entry.Update(regretDelta, strategy, reachWeight); err != nil {
			return StrategyReport{}, err
		}

		executed = iter
		if iter%cfg.ConvergenceCheckEvery == 0 {
			lastMetric = tracker.Check(table)
			checked = true
			if cfg.OnProgress != nil {
				cfg.OnProgress(iter, lastMetric)
			}
			if lastMetric < cfg.ConvergenceThreshold {
				break
			}
		}
	}

	if !checked {
		lastMetric = tracker.Check(table)
	}

	avgStrategy := entry.AverageStrategy()
	finalHands, err := sampler.SampleVillainHands(filtered, dead, int(cfg.finalSamples()))
	if err != nil {
		return StrategyReport{}, err
	}
	finalCFVs, err := computeCFVs(gs, opts, finalHands, rng)
	if err != nil {
		return StrategyReport{}, err
	}

	actions := make([]ActionReport, len(opts))
	for i, opt := range opts {
		actions[i] = ActionReport{
			Action:    opt,
			Frequency: avgStrategy[i],
			EV:        finalCFVs[i],
		}
	}

	return StrategyReport{
		Actions:            actions,
		IterationsExecuted: executed,
		Convergence:        lastMetric,
	}, nil
}

// computeCFVs computes each legal action's counterfactual value against
// a shared set of sampled villain hands. Fold needs no showdown
// comparison (its value is always 0 relative to this node, since hero
// forfeits the pot rather than risking further chips), so it skips the
// equity oracle entirely. Every other action's reduction over the
// villain samples runs on its own goroutine, since the actions are
// independent and the oracle call dominates the iteration's cost.
func computeCFVs(gs GameState, opts []action.Option, villainHands []poker.Hand, parentRNG *rand.Rand) ([]float64, error) {
	cfvs := make([]float64, len(opts))
	seeds := make([]uint64, len(opts))
	for i := range opts {
		seeds[i] = uint64(parentRNG.Int63())
	}

	g := new(errgroup.Group)
	for i, opt := range opts {
		i, opt := i, opt
		if opt.Kind == action.Fold {
			cfvs[i] = 0
			continue
		}
		g.Go(func() error {
			actionRNG := NewRNG(seeds[i])
			var sum float64
			for _, villain := range villainHands {
				outcome := equity.Evaluate(gs.HeroHand, villain, gs.Board, actionRNG)
				sum += actionUtility(outcome, gs.Pot, opt.Amount)
			}
			cfvs[i] = sum / float64(len(villainHands))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cfvs, nil
}

// actionUtility converts a showdown outcome into hero's net chip gain
// relative to this decision: amount is the additional chips hero
// commits for the action being evaluated (0 for check). Villain is
// assumed to match that commitment (see package doc).
func actionUtility(outcome equity.Outcome, pot, amount float64) float64 {
	switch outcome {
	case equity.Win:
		return pot + amount
	case equity.Lose:
		return -amount
	default:
		return (pot + amount) / 2
	}
}

func validateGameState(gs GameState) error {
	if gs.HeroHand.CountCards() != 2 {
		return fmt.Errorf("%w: hero hand must have exactly 2 cards, got %d", ErrInvalidGameState, gs.HeroHand.CountCards())
	}
	boardCount := gs.Board.CountCards()
	if boardCount != 0 && boardCount != 3 && boardCount != 4 && boardCount != 5 {
		return fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", ErrInvalidGameState, boardCount)
	}
	if gs.HeroHand.Overlaps(gs.Board) {
		return fmt.Errorf("%w: hero hand overlaps the board", ErrInvalidGameState)
	}
	if gs.Pot <= 0 {
		return fmt.Errorf("%w: pot must be > 0", ErrInvalidGameState)
	}
	if gs.EffectiveStack <= 0 {
		return fmt.Errorf("%w: effective stack must be > 0", ErrInvalidGameState)
	}
	if gs.ToCall < 0 {
		return fmt.Errorf("%w: to-call cannot be negative", ErrInvalidGameState)
	}
	if gs.ToCall > gs.EffectiveStack {
		return fmt.Errorf("%w: to-call cannot exceed effective stack", ErrInvalidGameState)
	}
	if gs.VillainRange == nil {
		return fmt.Errorf("%w: villain range is required", ErrInvalidGameState)
	}
	return nil
}

func resolveSeed(seed *uint64) (uint64, error) {
	if seed != nil {
		return *seed, nil
	}
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("solver: seeding RNG from entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
