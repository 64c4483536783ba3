package core

import "math/rand/v2"

// Source is the randomness consumed by grid seeding and pattern siting.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillDensity sets every cell alive with probability density, drawing
// exactly one value per cell in row-major order.
func FillDensity(r Source, g *Grid, density float64) {
	for i := range g.data {
		g.data[i] = 0
		if r.Float64() < density {
			g.data[i] = 1
		}
	}
}
