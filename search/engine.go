package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/wayfarer/tour"
)

// Engine runs the shift-then-swap hill climb.
type Engine struct {
	cfg      Config
	rng      *rand.Rand
	observer Observer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand makes the engine draw from r instead of a generator seeded from
// Config.Seed. The caller must not use r concurrently with Run.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithObserver registers fn to be called on every accepted move.
func WithObserver(fn Observer) Option {
	return func(e *Engine) { e.observer = fn }
}

// New validates cfg and returns an Engine owning its random generator.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rngFromSeed(cfg.Seed)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run searches from initial for Config.Iterations iterations and returns the
// best tour found. The returned distance never exceeds initial.Distance().
//
// On cancellation Run returns the best tour so far and ctx.Err().
func (e *Engine) Run(ctx context.Context, initial tour.Tour) (Result, error) {
	start := time.Now()

	var (
		n            = initial.Len()
		best         = initial
		bestDistance = initial.Distance()
		res          = Result{InitialDistance: bestDistance}
	)

	if n <= 1 {
		res.Tour = best
		res.Distance = bestDistance
		res.Stopped = StopDegenerate
		res.Duration = time.Since(start)
		return res, nil
	}

	var (
		iter      int
		i, j      int
		candidate tour.Tour
		err       error
	)
	for iter = 0; iter < e.cfg.Iterations; iter++ {
		if err = ctx.Err(); err != nil {
			res.Tour = best
			res.Distance = bestDistance
			res.Iterations = iter
			res.Stopped = StopCanceled
			res.Duration = time.Since(start)
			return res, err
		}

		candidate = tour.Shift(best)
		i, j = distinctPair(e.rng, n)
		// i and j are distinct and in range, so Swap cannot fail.
		candidate, _ = tour.Swap(candidate, i, j)

		if candidate.Distance() < bestDistance {
			if e.observer != nil {
				e.observer(Improvement{
					Iteration: iter,
					I:         i,
					J:         j,
					Previous:  bestDistance,
					Distance:  candidate.Distance(),
				})
			}
			best = candidate
			bestDistance = candidate.Distance()
			res.Accepted++
		}
	}

	res.Tour = best
	res.Distance = bestDistance
	res.Iterations = iter
	res.Stopped = StopBudget
	res.Duration = time.Since(start)
	return res, nil
}
