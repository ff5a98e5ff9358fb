package core

import "math/rand/v2"

// Intner is the random source consumed by board setup.
type Intner interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// RNG wraps a PCG generator seeded once per process.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Intn returns a uniform random int in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	return r.r.IntN(n)
}
