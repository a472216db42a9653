package core

import "math/rand"

// RNG wraps math/rand.Rand with a seed so games stay reproducible.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// IntRange returns a uniformly distributed integer in [min, max].
// If max <= min, min is returned.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// FloatRange returns a uniformly distributed float in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.src.Float64()*(max-min)
}
