// Package random provides the seeded random sources used by the simulator.
//
// Seed material comes from crypto/rand once per process; the sources
// themselves are fast, non-cryptographic PCG generators from math/rand/v2.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Seed is the 128 bits of state used to initialise a PCG generator.
type Seed struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether the seed carries no material.
func (s Seed) IsZero() bool {
	return s.Hi == 0 && s.Lo == 0
}

// String renders the seed so a run can be reproduced with -seed.
func (s Seed) String() string {
	return fmt.Sprintf("%016x%016x", s.Hi, s.Lo)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (Seed, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Seed{}, fmt.Errorf("read random seed: %w", err)
	}

	return Seed{
		Hi: binary.LittleEndian.Uint64(b[:8]),
		Lo: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// SeedFromUint64 expands a user supplied 64-bit seed into a full Seed.
func SeedFromUint64(v uint64) Seed {
	return Seed{Hi: splitmix64(v), Lo: splitmix64(v ^ 0xda942042e4dd58b5)}
}

// Stream derives the seed for batch i. Distinct batches get unrelated
// streams so they can run in parallel without sharing a generator.
func Stream(base Seed, i int) Seed {
	x := base.Lo + uint64(i)*0x9e3779b97f4a7c15
	return Seed{Hi: splitmix64(base.Hi ^ x), Lo: splitmix64(x)}
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
