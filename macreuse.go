// Package macreuse explores lookup-table reuse in binary-weight MAC
// (multiply-accumulate) inference: it enumerates every ±1 weight vector of
// length N against one bounded-precision activation vector and measures how
// many weight patterns collapse onto the same dot-product value.
//
// Basic usage:
//
//	summary, err := macreuse.Run(macreuse.WithElements(16), macreuse.WithSeed(42))
package macreuse

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"

	"macreuse/mac"
	"macreuse/reuse"
)

// Option configures a run.
type Option func(*runOptions)

type runOptions struct {
	elements int
	bits     int
	seed     int64
	seeded   bool
	topK     int
	progress func(done, total uint64)
	out      io.Writer
	silent   bool
}

func defaultOptions() runOptions {
	return runOptions{
		elements: 16,
		bits:     8,
		topK:     10,
		out:      os.Stdout,
	}
}

// WithElements sets the activation vector length N (default 16).
// The weight domain is 2^N patterns, so N drives the cost of the run.
func WithElements(n int) Option { return func(o *runOptions) { o.elements = n } }

// WithPrecisionBits sets the activation bit-width (default 8): entries are
// drawn uniformly from [0, 2^bits).
func WithPrecisionBits(b int) Option { return func(o *runOptions) { o.bits = b } }

// WithSeed fixes the activation RNG seed, making the run reproducible.
// Without it every run draws a fresh vector.
func WithSeed(s int64) Option { return func(o *runOptions) { o.seed = s; o.seeded = true } }

// WithTopK sets how many most-reused values the report lists (default 10).
func WithTopK(k int) Option { return func(o *runOptions) { o.topK = k } }

// WithProgress installs a callback invoked as the enumeration advances.
func WithProgress(fn func(done, total uint64)) Option {
	return func(o *runOptions) { o.progress = fn }
}

// WithOutput redirects the activation header and report (default os.Stdout).
// A nil writer suppresses them; the Summary is still returned.
func WithOutput(w io.Writer) Option {
	return func(o *runOptions) {
		o.out = w
		o.silent = w == nil
	}
}

// Run generates one activation vector, sweeps the full ±1 weight domain
// against it, writes the report and returns the machine-consumable summary.
// Returns reuse.ErrInvalidParameter or reuse.ErrDomainTooLarge for
// out-of-range options.
func Run(opts ...Option) (*reuse.Summary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.elements <= 0 {
		return nil, errors.Wrapf(reuse.ErrInvalidParameter, "elements must be positive, got %d", o.elements)
	}
	if o.elements > mac.MaxElements {
		return nil, errors.Wrapf(reuse.ErrDomainTooLarge, "elements = %d, max %d", o.elements, mac.MaxElements)
	}
	if o.bits <= 0 || o.bits > mac.MaxPrecisionBits {
		return nil, errors.Wrapf(reuse.ErrInvalidParameter,
			"precision bits must be in [1, %d], got %d", mac.MaxPrecisionBits, o.bits)
	}

	var rng *rand.Rand
	if o.seeded {
		rng = rand.New(rand.NewSource(o.seed)) //nolint:gosec
	}
	a := mac.RandomActivations(o.elements, o.bits, rng)
	if !o.silent {
		fmt.Fprintf(o.out, "Activation Vector (N=%d, %dbit):\n%v\n", o.elements, o.bits, a)
	}
	return Evaluate(a, opts...)
}

// Evaluate sweeps the weight domain against a caller-supplied activation
// vector, bypassing random generation; options controlling generation are
// ignored. Writes the report unless output is suppressed.
func Evaluate(a mac.Activations, opts ...Option) (*reuse.Summary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ev, err := reuse.New(reuse.Options{TopK: o.topK, Progress: o.progress})
	if err != nil {
		return nil, err
	}
	summary, err := ev.Evaluate(a)
	if err != nil {
		return nil, err
	}
	if !o.silent {
		if err := summary.WriteReport(o.out); err != nil {
			return nil, errors.Wrap(err, "writing report")
		}
	}
	return summary, nil
}
