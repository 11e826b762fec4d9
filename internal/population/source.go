package population

import "math/rand/v2"

// Source is the pseudorandom capability the generator draws from.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// NewSource returns a PCG-backed source. Equal seeds give equal sequences.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed draws a seed from the runtime's global generator.
func RandomSeed() uint64 {
	return rand.Uint64()
}
