package reuse

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// WriteReport writes the human-readable experiment report to w: run header,
// pattern/value totals, reuse ratio, distribution metrics and the top-K most
// reused MAC values. Values are integers throughout the pipeline; the report
// formats them as fixed-point floats purely for display.
func (s *Summary) WriteReport(w io.Writer) error {
	topK := s.topK
	if topK <= 0 {
		topK = DefaultOptions().TopK
	}
	if topK > len(s.Stats) {
		topK = len(s.Stats)
	}

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("\n--- Running experiment: N=%d ---\n", len(s.Activations))
	p("Total weight patterns = %s\n", humanize.Comma(int64(s.TotalPatterns)))
	p("Unique output values = %s\n", humanize.Comma(int64(s.UniqueValues)))
	p("Reuse ratio = %.2fx  (Avg. #keys per value)\n", s.ReuseRatio)
	p("Reuse stddev = %.2f, entropy = %.2f bits, range coverage = %.1f%%\n",
		s.Distribution.StdDevReuse, s.Distribution.EntropyBits, 100*s.Distribution.RangeCoverage)

	p("\nTop %d most reused output values:\n", topK)
	for _, vc := range s.Stats[:topK] {
		p("Value = %7.3f    reused by %s weight patterns\n",
			float64(vc.Value), humanize.Comma(int64(vc.Count)))
	}
	return err
}
