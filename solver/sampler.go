package solver

import (
	"math/rand"
	randv2 "math/rand/v2"

	"github.com/lox/nlhe-solver/handrange"
	"github.com/lox/nlhe-solver/poker"
)

// v2Wrapper adapts rand/v2's PCG source to the math/rand.Rand
// interface, used because rand/v2's PCG is meaningfully faster than
// the legacy generator and this solver draws an RNG sample on every
// villain-hand and action sample, millions of times per solve.
type v2Wrapper struct {
	src *randv2.PCG
}

func (w *v2Wrapper) Int63() int64 {
	return int64(w.src.Uint64() >> 1)
}

func (w *v2Wrapper) Seed(seed int64) {
	*w.src = *randv2.NewPCG(uint64(seed), uint64(seed))
}

// NewRNG returns a math/rand.Rand backed by a PCG source seeded with
// seed, giving every solve a reproducible, independently-seeded stream.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(&v2Wrapper{src: randv2.NewPCG(seed, seed)})
}

// Sampler draws villain hands and actions for one solve. It is not
// safe for concurrent use by multiple goroutines — each parallel
// sample reduction branch should own its own Sampler seeded
// deterministically from the iteration and sample index.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps an existing RNG for sampling.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// SampleVillainHands draws n villain hole-card combinations from r,
// weighted by each combination's range weight, with replacement, after
// removing any combination that overlaps dead (hero's hole cards and
// the known board). Returns ErrEmptyRange if nothing survives blocker
// removal.
func (s *Sampler) SampleVillainHands(r *handrange.Range, dead poker.Hand, n int) ([]poker.Hand, error) {
	filtered := r.WithoutBlockers(dead)
	hands := filtered.Hands()
	if len(hands) == 0 {
		return nil, ErrEmptyRange
	}

	weights := make([]float64, len(hands))
	total := 0.0
	for i, h := range hands {
		weights[i] = filtered.Weight(h)
		total += weights[i]
	}
	if total <= 0 {
		return nil, ErrEmptyRange
	}

	out := make([]poker.Hand, n)
	for i := range n {
		out[i] = hands[s.weightedIndex(weights, total)]
	}
	return out, nil
}

func (s *Sampler) weightedIndex(weights []float64, total float64) int {
	r := s.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return i
		}
	}
	return len(weights) - 1
}

// SampleAction draws an action index from a categorical distribution
// p, falling back to a uniform draw when every probability is
// non-positive (degenerate strategy).
func (s *Sampler) SampleAction(p []float64) int {
	if len(p) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range p {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return s.rng.Intn(len(p))
	}
	r := s.rng.Float64() * total
	acc := 0.0
	for i, v := range p {
		if v <= 0 {
			continue
		}
		acc += v
		if r <= acc {
			return i
		}
	}
	return len(p) - 1
}
