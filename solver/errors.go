package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors the solver can return, checkable with errors.Is.
var (
	// ErrInvalidGameState is returned when the inputs describing the
	// decision point are inconsistent, e.g. a negative pot, an
	// effective stack smaller than the call amount, or a regret-table
	// lookup whose action count disagrees with a previously observed
	// count for the same info set.
	ErrInvalidGameState = errors.New("solver: invalid game state")

	// ErrEmptyRange is returned when a villain range contains no
	// combination left after removing hero's and the board's blockers.
	ErrEmptyRange = errors.New("solver: villain range is empty after blocker removal")

	// ErrNoValidActions is returned when a decision point yields no
	// legal actions at all (should not happen for a well-formed
	// GameState, guarded against defensively).
	ErrNoValidActions = errors.New("solver: no valid actions for this decision")
)

// ConvergenceFailure reports that a counterfactual value computed
// during the solve turned non-finite (NaN or infinite), which can only
// happen from a malformed equity oracle result or a degenerate regret
// update. Running out of iterations without reaching
// cfg.ConvergenceThreshold is not a failure — Solve still returns a
// normal StrategyReport in that case.
type ConvergenceFailure struct {
	Iterations uint32
	Metric     float64
	Threshold  float64
}

func (e *ConvergenceFailure) Error() string {
	return fmt.Sprintf("solver: non-finite counterfactual value after %d iterations (metric %.6f, threshold %.6f)",
		e.Iterations, e.Metric, e.Threshold)
}
