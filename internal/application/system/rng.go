package system

import "math/rand"

// Source is the only randomness the simulation consumes. *rand.Rand
// satisfies it; tests supply fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source for one run.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
