// Package mathrand provides the default ports.RandomSource, a seedable
// PCG-backed generator. A fixed seed yields a fully deterministic draw
// sequence, which pipelines rely on for reproducible generation.
package mathrand

import "math/rand/v2"

// Source implements ports.RandomSource over math/rand/v2.
// Not safe for concurrent use, matching the engine's single-threaded
// execution contract.
type Source struct {
	rng *rand.Rand
}

// New returns a source seeded with the given value.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}
