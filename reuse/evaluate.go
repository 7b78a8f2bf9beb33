// Package reuse measures how often distinct ±1 weight patterns collapse onto
// the same multiply-accumulate result — i.e. how much of a binary-weight MAC
// workload a lookup table could serve instead of recomputing.
package reuse

import (
	"sort"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"macreuse/mac"
)

var (
	// ErrInvalidParameter reports an activation vector or option the
	// evaluator cannot work with.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDomainTooLarge reports an activation vector whose 2^N weight
	// domain is beyond exhaustive enumeration.
	ErrDomainTooLarge = errors.New("weight domain too large")
)

// Options configures an Evaluator.
type Options struct {
	TopK     int                      // entries in the report's most-reused table (default 10)
	Progress func(done, total uint64) // optional; called around every 1% of the domain
}

// DefaultOptions returns the evaluator defaults.
func DefaultOptions() Options {
	return Options{TopK: 10}
}

// ValueCount is one row of the reuse statistics: a distinct MAC value and
// the number of weight patterns that produce it.
type ValueCount struct {
	Value int
	Count uint64
}

// Summary is the machine-consumable result of one evaluation.
type Summary struct {
	Activations   mac.Activations
	TotalPatterns uint64
	UniqueValues  int
	ReuseRatio    float64          // TotalPatterns / UniqueValues
	Stats         []ValueCount     // sorted by Count desc, ties by Value asc
	Groups        map[int][]uint64 // MAC value → indices of the patterns producing it
	Distribution  Distribution

	topK int
}

// Evaluator runs the exhaustive weight-domain sweep.
type Evaluator struct {
	opts Options
}

// New creates an Evaluator.
// Returns ErrInvalidParameter if TopK is not positive.
func New(opts Options) (*Evaluator, error) {
	if opts.TopK <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "Options.TopK must be positive, got %d", opts.TopK)
	}
	return &Evaluator{opts: opts}, nil
}

// Evaluate computes the MAC result of every ±1 weight pattern against a,
// groups patterns by identical result, and derives reuse statistics.
// The sweep is all-or-nothing: the only failure modes are input validation
// (ErrInvalidParameter, ErrDomainTooLarge); once enumeration starts it runs
// to completion. Repeated calls with the same vector produce identical
// summaries.
func (e *Evaluator) Evaluate(a mac.Activations) (*Summary, error) {
	if len(a) == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "empty activation vector")
	}
	if len(a) > mac.MaxElements {
		return nil, errors.Wrapf(ErrDomainTooLarge,
			"n=%d enumerates 2^%d patterns (max n=%d)", len(a), len(a), mac.MaxElements)
	}
	for i, v := range a {
		if v < 0 {
			return nil, errors.Wrapf(ErrInvalidParameter, "activation[%d] = %d is negative", i, v)
		}
	}

	n := len(a)
	total := mac.NumPatterns(n)
	klog.V(1).Infof("evaluating %d weight patterns against %v", total, a)

	step := total / 100
	if step == 0 {
		step = 1
	}

	groups := make(map[int][]uint64)
	it := mac.NewPatternIterator(n)
	for {
		idx := it.Index()
		w, ok := it.Next()
		if !ok {
			break
		}
		v := mac.Dot(w, a)
		groups[v] = append(groups[v], idx)
		if e.opts.Progress != nil && (idx+1)%step == 0 {
			e.opts.Progress(idx+1, total)
		}
	}
	if e.opts.Progress != nil {
		e.opts.Progress(total, total)
	}

	stats := make([]ValueCount, 0, len(groups))
	for v, idxs := range groups {
		stats = append(stats, ValueCount{Value: v, Count: uint64(len(idxs))})
	}
	// Most reused first; equal counts ordered by value so the full list is
	// deterministic.
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Value < stats[j].Value
	})

	s := &Summary{
		Activations:   a,
		TotalPatterns: total,
		UniqueValues:  len(groups),
		ReuseRatio:    float64(total) / float64(len(groups)),
		Stats:         stats,
		Groups:        groups,
		Distribution:  newDistribution(a, stats),
		topK:          e.opts.TopK,
	}
	klog.V(1).Infof("%d unique MAC values, reuse ratio %.2fx", s.UniqueValues, s.ReuseRatio)
	return s, nil
}
