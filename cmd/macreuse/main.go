// macreuse runs the binary-weight MAC reuse experiment: it draws one
// bounded-precision activation vector, sweeps all 2^n ±1 weight patterns
// against it and reports how many patterns share each dot-product value.
// Run without arguments it reproduces the reference experiment (n=16,
// 8-bit activations).
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"macreuse"
	"macreuse/reuse"
)

var (
	flagElements = flag.Int("n", 16, "Activation vector length; the sweep enumerates 2^n weight patterns.")
	flagBits     = flag.Int("bits", 8, "Activation precision in bits; entries are drawn from [0, 2^bits).")
	flagSeed     = flag.Int64("seed", 0, "Activation RNG seed. 0 draws a fresh vector every run.")
	flagTopK     = flag.Int("top", 10, "How many most-reused values the report lists.")
	flagProgress = flag.Bool("progress", false, "Show a progress bar while sweeping the weight domain.")
	flagSweep    = flag.String("sweep", "", "Run a range of vector lengths, \"lo:hi\", printing one summary line per n.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	err := exceptions.TryCatch[error](func() {
		if *flagSweep != "" {
			must.M(sweep(*flagSweep))
			return
		}
		must.M1(macreuse.Run(options()...))
	})
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

func options() []macreuse.Option {
	opts := []macreuse.Option{
		macreuse.WithElements(*flagElements),
		macreuse.WithPrecisionBits(*flagBits),
		macreuse.WithTopK(*flagTopK),
	}
	if *flagSeed != 0 {
		opts = append(opts, macreuse.WithSeed(*flagSeed))
	}
	if *flagProgress {
		bar := progressbar.Default(int64(uint64(1)<<uint(*flagElements)), "sweeping")
		opts = append(opts, macreuse.WithProgress(func(done, total uint64) {
			_ = bar.Set64(int64(done))
		}))
	}
	return opts
}

// sweep runs the experiment for every vector length in the "lo:hi" range and
// prints one summary line per length, so the growth of the reuse ratio with
// n can be read off directly.
func sweep(rangeArg string) error {
	loStr, hiStr, ok := strings.Cut(rangeArg, ":")
	if !ok {
		return errors.Wrapf(reuse.ErrInvalidParameter, "-sweep wants \"lo:hi\", got %q", rangeArg)
	}
	lo, err := strconv.Atoi(loStr)
	if err != nil {
		return errors.Wrapf(reuse.ErrInvalidParameter, "-sweep lower bound %q", loStr)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return errors.Wrapf(reuse.ErrInvalidParameter, "-sweep upper bound %q", hiStr)
	}
	if lo < 1 || hi < lo {
		return errors.Wrapf(reuse.ErrInvalidParameter, "-sweep range %d:%d", lo, hi)
	}

	for n := lo; n <= hi; n++ {
		opts := []macreuse.Option{
			macreuse.WithElements(n),
			macreuse.WithPrecisionBits(*flagBits),
			macreuse.WithOutput(nil),
		}
		if *flagSeed != 0 {
			opts = append(opts, macreuse.WithSeed(*flagSeed))
		}
		s, err := macreuse.Run(opts...)
		if err != nil {
			return err
		}
		fmt.Printf("N=%2d  patterns=%-11s unique=%-7s reuse=%8.2fx  entropy=%5.2f bits\n",
			n, humanize.Comma(int64(s.TotalPatterns)), humanize.Comma(int64(s.UniqueValues)),
			s.ReuseRatio, s.Distribution.EntropyBits)
	}
	return nil
}
