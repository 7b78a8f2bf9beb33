package mac_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"macreuse/mac"
)

// ── Activations ───────────────────────────────────────────────────────────────

func TestRandomActivations_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := mac.RandomActivations(256, 4, rng)
	require.Len(t, a, 256)
	for i, v := range a {
		require.GreaterOrEqual(t, v, 0, "activation[%d]", i)
		require.Less(t, v, 16, "activation[%d]", i)
	}
}

func TestRandomActivations_SeedDeterminism(t *testing.T) {
	a := mac.RandomActivations(32, 8, rand.New(rand.NewSource(42)))
	b := mac.RandomActivations(32, 8, rand.New(rand.NewSource(42)))
	require.Equal(t, a, b)

	c := mac.RandomActivations(32, 8, rand.New(rand.NewSource(43)))
	require.NotEqual(t, a, c)
}

func TestRandomActivations_InvalidPanics(t *testing.T) {
	require.Panics(t, func() { mac.RandomActivations(0, 8, nil) })
	require.Panics(t, func() { mac.RandomActivations(4, 0, nil) })
	require.Panics(t, func() { mac.RandomActivations(4, mac.MaxPrecisionBits+1, nil) })
}

func TestActivations_Sum(t *testing.T) {
	require.Equal(t, 0, mac.Activations{}.Sum())
	require.Equal(t, 10, mac.Activations{1, 2, 3, 4}.Sum())
}

// ── Pattern domain ────────────────────────────────────────────────────────────

func TestNumPatterns(t *testing.T) {
	require.Equal(t, uint64(2), mac.NumPatterns(1))
	require.Equal(t, uint64(1024), mac.NumPatterns(10))
	require.Equal(t, uint64(1)<<30, mac.NumPatterns(mac.MaxElements))
	require.Panics(t, func() { mac.NumPatterns(0) })
	require.Panics(t, func() { mac.NumPatterns(mac.MaxElements + 1) })
}

func TestPatternAt_BitMapping(t *testing.T) {
	// Bit 0 of the index is position 0 of the pattern.
	require.Equal(t, mac.Pattern{-1, -1, -1}, mac.PatternAt(3, 0))
	require.Equal(t, mac.Pattern{1, -1, -1}, mac.PatternAt(3, 1))
	require.Equal(t, mac.Pattern{-1, 1, 1}, mac.PatternAt(3, 6))
	require.Equal(t, mac.Pattern{1, 1, 1}, mac.PatternAt(3, 7))
}

func TestPatternAt_IndexOutOfRange_Panics(t *testing.T) {
	require.Panics(t, func() { mac.PatternAt(3, 8) })
}

func TestPatternIterator_CompleteAndUnique(t *testing.T) {
	const n = 8
	it := mac.NewPatternIterator(n)
	seen := make(map[string]bool)

	var count uint64
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		require.Len(t, w, n)
		for _, wi := range w {
			require.True(t, wi == 1 || wi == -1, "weight entries must be ±1, got %d", wi)
		}
		key := fmt.Sprint(w)
		require.False(t, seen[key], "duplicate pattern %s", key)
		seen[key] = true
		count++
	}
	require.Equal(t, mac.NumPatterns(n), count)
}

func TestPatternIterator_AgreesWithPatternAt(t *testing.T) {
	const n = 6
	it := mac.NewPatternIterator(n)
	for i := uint64(0); i < mac.NumPatterns(n); i++ {
		require.Equal(t, i, it.Index())
		w, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, mac.PatternAt(n, i), w)
	}
	_, ok := it.Next()
	require.False(t, ok)
}

func TestPatternIterator_ResetAndRemaining(t *testing.T) {
	it := mac.NewPatternIterator(4)
	require.Equal(t, uint64(16), it.Remaining())

	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, uint64(15), it.Remaining())

	it.Reset()
	require.Equal(t, uint64(16), it.Remaining())
	again, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, first, again)
}

// ── Dot product ───────────────────────────────────────────────────────────────

func TestDot(t *testing.T) {
	a := mac.Activations{1, 2}
	require.Equal(t, -3, mac.Dot(mac.Pattern{-1, -1}, a))
	require.Equal(t, 1, mac.Dot(mac.Pattern{-1, 1}, a))
	require.Equal(t, -1, mac.Dot(mac.Pattern{1, -1}, a))
	require.Equal(t, 3, mac.Dot(mac.Pattern{1, 1}, a))
}

func TestDot_RangeBound(t *testing.T) {
	a := mac.RandomActivations(12, 6, rand.New(rand.NewSource(1)))
	sum := a.Sum()
	it := mac.NewPatternIterator(12)
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		d := mac.Dot(w, a)
		require.LessOrEqual(t, d, sum)
		require.GreaterOrEqual(t, d, -sum)
		// Parity of the dot product is fixed by the activation sum.
		require.Equal(t, mod2(sum), mod2(d))
	}
}

func TestDot_LengthMismatch_Panics(t *testing.T) {
	require.Panics(t, func() { mac.Dot(mac.Pattern{1}, mac.Activations{1, 2}) })
}

func mod2(v int) int {
	if v < 0 {
		v = -v
	}
	return v % 2
}

// ── Benchmarks ────────────────────────────────────────────────────────────────

func BenchmarkDot(b *testing.B) {
	a := mac.RandomActivations(16, 8, rand.New(rand.NewSource(1)))
	w := mac.PatternAt(16, 0xA5A5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mac.Dot(w, a)
	}
}

func BenchmarkPatternIterator(b *testing.B) {
	for i := 0; i < b.N; i++ {
		it := mac.NewPatternIterator(10)
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}
