package reuse

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"macreuse/mac"
)

// Distribution summarizes the shape of the MAC-value histogram. MeanReuse
// and StdDevReuse describe patterns-per-value; EntropyBits is the Shannon
// entropy of the value distribution (log2, so it reads as "bits of LUT
// address actually exercised"); RangeCoverage is the fraction of
// parity-reachable sums in [-Sum(A), Sum(A)] that at least one pattern hits.
type Distribution struct {
	MeanReuse     float64
	StdDevReuse   float64
	EntropyBits   float64
	RangeCoverage float64
}

func newDistribution(a mac.Activations, stats []ValueCount) Distribution {
	counts := make([]float64, len(stats))
	for i, vc := range stats {
		counts[i] = float64(vc.Count)
	}
	total := floats.Sum(counts)

	probs := make([]float64, len(counts))
	for i, c := range counts {
		probs[i] = c / total
	}

	// A ±1-weighted sum of non-negative integers totalling S only reaches
	// values of S's parity within [-S, S]: S+1 candidates.
	reachable := a.Sum() + 1

	return Distribution{
		MeanReuse:     stat.Mean(counts, nil),
		StdDevReuse:   stat.PopStdDev(counts, nil),
		EntropyBits:   stat.Entropy(probs) / math.Ln2,
		RangeCoverage: float64(len(stats)) / float64(reachable),
	}
}
