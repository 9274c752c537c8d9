// Package randutil expands a derived 31-bit seed into a reproducible
// math/rand/v2 source.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from a 31-bit seed. The
// helper centralises how the two 64-bit seeds required by rand/v2 are
// expanded from the single seed so that all call sites get reproducible
// sequences.
func New(seed uint32) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
