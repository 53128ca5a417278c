package search

import (
	"errors"
	"fmt"
)

// DefaultIterations is the iteration budget used by DefaultConfig.
const DefaultIterations = 10000

// ErrNegativeIterations is returned when Config.Iterations < 0.
var ErrNegativeIterations = errors.New("search: iterations must be >= 0")

// Config holds the only tunables of the engine.
type Config struct {
	// Iterations is the fixed budget B. Zero runs no iterations.
	Iterations int

	// Seed seeds the engine-owned generator. Seed 0 selects a fixed default.
	// Ignored when a generator is supplied with WithRand.
	Seed int64
}

// DefaultConfig returns the reference budget (10000 iterations) and seed 0.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Seed:       0,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeIterations, c.Iterations)
	}
	return nil
}
