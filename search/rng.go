package search

import "math/rand"

// defaultRNGSeed stands in for Config.Seed == 0, so a zero Config still
// yields a reproducible search.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the engine's private random stream. A zero seed is
// replaced by defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// distinctPair draws an ordered pair (i, j) with i ≠ j uniformly from [0, n).
// j is drawn from the n-1 remaining values and bumped past i, so the draw
// always terminates. Requires n ≥ 2.
//
// Complexity: O(1).
func distinctPair(r *rand.Rand, n int) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
