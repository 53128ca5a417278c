package search

import (
	"time"

	"github.com/katalvlaran/wayfarer/tour"
)

// StopReason explains why Run returned.
type StopReason string

const (
	// StopBudget means the full iteration budget was spent.
	StopBudget StopReason = "budget"
	// StopDegenerate means the tour had fewer than two stops and no move exists.
	StopDegenerate StopReason = "degenerate"
	// StopCanceled means the context was done before the budget was spent.
	StopCanceled StopReason = "canceled"
)

// Result is the outcome of one Run.
type Result struct {
	// Tour is the best tour found; Distance is its total.
	Tour     tour.Tour
	Distance float64

	// InitialDistance is the total of the input tour.
	InitialDistance float64

	// Iterations counts completed iterations; Accepted counts improvements.
	Iterations int
	Accepted   int

	Duration time.Duration
	Stopped  StopReason
}

// Improvement returns InitialDistance - Distance (never negative).
func (r Result) Improvement() float64 {
	return r.InitialDistance - r.Distance
}

// ImprovementRatio returns Improvement as a fraction of InitialDistance,
// or 0 when the input had no length.
func (r Result) ImprovementRatio() float64 {
	if r.InitialDistance == 0 {
		return 0
	}
	return r.Improvement() / r.InitialDistance
}

// Improvement describes one accepted move, reported to an Observer.
type Improvement struct {
	Iteration int
	I, J      int
	Previous  float64
	Distance  float64
}

// Observer is called synchronously after every accepted move.
type Observer func(Improvement)
