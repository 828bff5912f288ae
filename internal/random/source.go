package random

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n).
//
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed generator for seed. It is not safe for
// concurrent use; each batch owns its own.
func New(seed Seed) *rand.Rand {
	return rand.New(rand.NewPCG(seed.Hi, seed.Lo))
}
