package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds from the wall clock, for runs that need not repeat.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Centered returns a random value in [-span/2, span/2).
func (r *RNG) Centered(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}
