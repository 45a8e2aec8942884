package rng

import "math/rand"

// Seeded is a deterministic generator
// Two generators created with the same seed produce the same sequence, which makes deals reproducible
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
