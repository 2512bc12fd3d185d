package solver

import (
	"fmt"
	"sync"
)

// RegretEntry accumulates cumulative regret and cumulative strategy for
// one info set, one slot per legal action.
type RegretEntry struct {
	mu          sync.Mutex
	regretSum   []float64
	strategySum []float64
	normalizing float64
}

func newRegretEntry(actionCount int) *RegretEntry {
	return &RegretEntry{
		regretSum:   make([]float64, actionCount),
		strategySum: make([]float64, actionCount),
	}
}

// Strategy returns the current regret-matching strategy: positive
// regrets normalized to sum to 1, or a uniform distribution when every
// regret is non-positive.
func (e *RegretEntry) Strategy() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return regretMatch(e.regretSum)
}

func regretMatch(regretSum []float64) []float64 {
	strat := make([]float64, len(regretSum))
	total := 0.0
	for i, r := range regretSum {
		if r > 0 {
			strat[i] = r
			total += r
		}
	}
	if total <= 0 {
		uniform := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = uniform
		}
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// Update folds one iteration's per-action regret (counterfactual value
// minus the node value, already weighted by the sampled villain
// reach/weight the caller used) and the strategy that produced it into
// the running sums. reachWeight scales how much this iteration's
// strategy contributes to the average strategy; Solve passes the same
// value on every iteration (the total weight of the blocker-filtered
// villain range).
func (e *RegretEntry) Update(regretDelta []float64, strategy []float64, reachWeight float64) error {
	if len(regretDelta) != len(e.regretSum) || len(strategy) != len(e.strategySum) {
		return fmt.Errorf("%w: action count mismatch in regret update (have %d, got %d)",
			ErrInvalidGameState, len(e.regretSum), len(regretDelta))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range regretDelta {
		e.regretSum[i] += regretDelta[i]
		e.strategySum[i] += reachWeight * strategy[i]
	}
	e.normalizing += reachWeight
	return nil
}

// AverageStrategy returns the normalized running average strategy,
// which is what a converged solve reports as the recommended play.
func (e *RegretEntry) AverageStrategy() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	strat := make([]float64, len(e.strategySum))
	if e.normalizing <= 0 {
		uniform := 1.0 / float64(len(strat))
		for i := range strat {
			strat[i] = uniform
		}
		return strat
	}
	for i := range strat {
		strat[i] = e.strategySum[i] / e.normalizing
	}
	return strat
}

// ActionCount returns the number of actions this entry was created
// with.
func (e *RegretEntry) ActionCount() int {
	return len(e.regretSum)
}

// RegretTable maps info sets to their regret entries. A solve owns one
// table exclusively, so a single mutex (rather than the sharded
// map a multi-table trainer needs for writer concurrency) is enough:
// the only concurrency within a solve is the per-sample reduction
// inside one iteration, which joins before any table write happens.
type RegretTable struct {
	mu      sync.RWMutex
	entries map[string]*RegretEntry
}

// NewRegretTable returns an empty regret table.
func NewRegretTable() *RegretTable {
	return &RegretTable{entries: make(map[string]*RegretEntry)}
}

// Get returns the entry for key, lazily creating it with actionCount
// zeroed slots on first observation. A later call for the same key with
// a different actionCount is a contradiction (the decision's legal
// action set should be a pure function of the info set) and returns
// ErrInvalidGameState.
func (t *RegretTable) Get(key InfoSetKey, actionCount int) (*RegretEntry, error) {
	k := key.String()

	t.mu.RLock()
	entry, ok := t.entries[k]
	t.mu.RUnlock()
	if ok {
		if entry.ActionCount() != actionCount {
			return nil, fmt.Errorf("%w: info set %s seen with %d actions, now %d",
				ErrInvalidGameState, k, entry.ActionCount(), actionCount)
		}
		return entry, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if entry, ok = t.entries[k]; ok {
		if entry.ActionCount() != actionCount {
			return nil, fmt.Errorf("%w: info set %s seen with %d actions, now %d",
				ErrInvalidGameState, k, entry.ActionCount(), actionCount)
		}
		return entry, nil
	}
	entry = newRegretEntry(actionCount)
	t.entries[k] = entry
	return entry, nil
}

// Size returns the number of info sets tracked.
func (t *RegretTable) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Snapshot returns a copy of every tracked info set's current
// instantaneous strategy, used by ConvergenceTracker to diff successive
// checks without holding the table lock across iterations.
func (t *RegretTable) Snapshot() map[string][]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string][]float64, len(t.entries))
	for k, e := range t.entries {
		out[k] = e.Strategy()
	}
	return out
}
