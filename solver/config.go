package solver

import "fmt"

// Config controls one Solve call's iteration budget and sampling.
type Config struct {
	// Iterations is the maximum number of MCCFR iterations to run.
	Iterations uint32
	// SamplesPerIteration is how many villain hands are sampled and
	// averaged per legal action, per iteration.
	SamplesPerIteration uint
	// FinalSamples, if > 0, overrides SamplesPerIteration for the
	// one-off EV recomputation done after the loop stops, trading more
	// variance reduction for a one-time cost. Defaults to
	// SamplesPerIteration*10 when zero.
	FinalSamples uint
	// ConvergenceThreshold ends the solve early once a convergence
	// check's maximum per-action strategy delta is strictly below it.
	ConvergenceThreshold float64
	// ConvergenceCheckEvery controls how often (in iterations) the
	// convergence metric is recomputed.
	ConvergenceCheckEvery uint32
	// Seed seeds the solve's RNG stream for reproducibility. Nil means
	// seed from the runtime's entropy source.
	Seed *uint64
	// OnProgress, if set, is called after every periodic convergence
	// check inside the iteration loop with the iteration count and the
	// metric just computed; the one extra check Solve makes after the
	// loop when no periodic check ran is not reported. It lets a
	// caller stream progress (e.g. over a websocket) without the
	// solver core depending on any transport.
	OnProgress func(iteration uint32, metric float64)
}

// DefaultConfig returns the solver's out-of-the-box configuration.
func DefaultConfig() Config {
	return Config{
		Iterations:            10000,
		SamplesPerIteration:   100,
		ConvergenceThreshold:  0.001,
		ConvergenceCheckEvery: 250,
	}
}

// Validate checks the configuration is usable, returning
// ErrInvalidGameState wrapped with the specific problem otherwise.
func (c Config) Validate() error {
	if c.Iterations == 0 {
		return fmt.Errorf("%w: iterations must be > 0", ErrInvalidGameState)
	}
	if c.SamplesPerIteration == 0 {
		return fmt.Errorf("%w: samples per iteration must be > 0", ErrInvalidGameState)
	}
	if c.ConvergenceThreshold <= 0 {
		return fmt.Errorf("%w: convergence threshold must be > 0", ErrInvalidGameState)
	}
	if c.ConvergenceCheckEvery == 0 {
		return fmt.Errorf("%w: convergence check interval must be > 0", ErrInvalidGameState)
	}
	return nil
}

func (c Config) finalSamples() uint {
	if c.FinalSamples > 0 {
		return c.FinalSamples
	}
	return c.SamplesPerIteration * 10
}
