// Package mac implements the arithmetic domain of a binary-weight
// multiply-accumulate unit: bounded-precision activation vectors, the
// exhaustive ±1 weight-pattern domain, and the exact integer dot product
// between the two.
package mac

import (
	"math/rand"
	"time"
)

// MaxPrecisionBits bounds activation precision so 2^bits fits an int on
// every platform.
const MaxPrecisionBits = 30

// Activations is a fixed activation vector: non-negative integers bounded
// by the precision it was generated with. Treated as immutable once built.
type Activations []int

// RandomActivations returns n independent uniform draws from [0, 2^bits).
// The same rng state always produces the same vector; a nil rng falls back
// to a time-seeded source.
// Panics if n <= 0 or bits is outside [1, MaxPrecisionBits].
func RandomActivations(n, bits int, rng *rand.Rand) Activations {
	if n <= 0 {
		panic("mac: n must be positive")
	}
	if bits <= 0 || bits > MaxPrecisionBits {
		panic("mac: bits must be in [1, MaxPrecisionBits]")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}
	hi := 1 << uint(bits)
	a := make(Activations, n)
	for i := range a {
		a[i] = rng.Intn(hi)
	}
	return a
}

// Sum returns the sum of all entries. The dot product of any ±1 weight
// pattern with a lies in [-Sum(), +Sum()] and has Sum()'s parity.
func (a Activations) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}
