package mac

// MaxElements caps the enumerable weight-pattern domain. At n=30 the sweep
// already covers about a billion dot products; past that exhaustive
// enumeration stops being an experiment and becomes resource exhaustion.
const MaxElements = 30

// Pattern is one assignment of -1/+1 weights, one entry per activation.
type Pattern []int8

// NumPatterns returns the size of the full ±1 weight domain for n elements:
// 2^n. Panics if n is outside [1, MaxElements].
func NumPatterns(n int) uint64 {
	checkElements(n)
	return uint64(1) << uint(n)
}

// PatternAt decodes pattern index idx into its weight assignment: position b
// is +1 if bit b of idx is set, else -1 (bit 0 = least significant). Every
// index in [0, 2^n) yields a distinct pattern, so the index is a compact
// stand-in for the pattern itself.
// Panics if n is out of range or idx >= 2^n.
func PatternAt(n int, idx uint64) Pattern {
	checkElements(n)
	if idx >= uint64(1)<<uint(n) {
		panic("mac: pattern index out of range")
	}
	p := make(Pattern, n)
	for b := 0; b < n; b++ {
		if idx>>uint(b)&1 == 1 {
			p[b] = 1
		} else {
			p[b] = -1
		}
	}
	return p
}

// PatternIterator lazily enumerates the full weight domain in index order.
// A fresh iterator (or Reset) restarts the sequence from index 0.
// It is not safe for concurrent use.
type PatternIterator struct {
	n     int
	next  uint64
	total uint64
}

// NewPatternIterator returns an iterator over all 2^n patterns of length n.
// Panics if n is outside [1, MaxElements].
func NewPatternIterator(n int) *PatternIterator {
	checkElements(n)
	return &PatternIterator{n: n, total: uint64(1) << uint(n)}
}

// Next returns the next pattern and true, or nil and false once the domain
// is exhausted. Returned patterns are freshly allocated and safe to retain.
func (it *PatternIterator) Next() (Pattern, bool) {
	if it.next >= it.total {
		return nil, false
	}
	p := PatternAt(it.n, it.next)
	it.next++
	return p, true
}

// Index returns the index of the pattern the next call to Next will produce.
func (it *PatternIterator) Index() uint64 { return it.next }

// Remaining returns how many patterns Next has yet to produce.
func (it *PatternIterator) Remaining() uint64 { return it.total - it.next }

// Reset rewinds the iterator to the start of the domain.
func (it *PatternIterator) Reset() { it.next = 0 }

func checkElements(n int) {
	if n <= 0 {
		panic("mac: n must be positive")
	}
	if n > MaxElements {
		panic("mac: n exceeds MaxElements")
	}
}
