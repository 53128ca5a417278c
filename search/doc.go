// Package search is the local-search engine of wayfarer: a fixed-budget,
// strict-improvement hill climb over tour.Tour values.
//
// Each iteration:
//
//  1. candidate = tour.Shift(best)              (unconditional, even on rejection)
//  2. draw i ≠ j uniformly from [0, n)          (engine-owned *rand.Rand)
//  3. candidate = tour.Swap(candidate, i, j)
//  4. accept iff candidate.Distance() < best.Distance()
//
// Because the shift is applied to the retained best on every iteration, the
// rotational phase of the best tour keeps drifting while no swap improves it;
// this changes which swaps get tried over a run and is part of the contract.
//
// Determinism:
//
//	Randomness comes only from the engine's own *rand.Rand. Seed 0 maps to a
//	fixed default seed, so the same input tour and seed always produce the
//	same output tour and distance. A caller-owned generator can be injected
//	with WithRand.
//
// Degenerate inputs:
//
//	Tours with n ≤ 1 have no pair of distinct positions. Run returns them
//	immediately with distance 0, zero iterations and StopDegenerate.
//
// Cancellation:
//
//	ctx is checked once per iteration; a canceled run returns the best tour
//	found so far together with ctx.Err().
//
// Complexity: O(B·n) time for a budget of B iterations, O(n) extra space.
//
// Concurrency: an Engine is not safe for concurrent use; its *rand.Rand is
// not goroutine-safe.
package search
