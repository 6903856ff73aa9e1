package runner

import "math/rand"

// RNG is the randomness the simulation needs: shape choice and dodge rolls.
// *rand.Rand satisfies it; tests inject scripted sources.
type RNG interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewRNG returns a seeded source for a run.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
