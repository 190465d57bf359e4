// Package bench is the wall-clock timing harness behind somscan-bench.
//
// It measures total elapsed time for repeated finder invocations over a
// set of samples. Correctness is not checked here; that is the test
// suite's job. Results are accumulated into a package sink so the calls
// cannot be eliminated as dead code.
package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/somscan/marker"
)

// DefaultRounds is the number of invocations per sample: enough to smooth
// timer resolution noise and warm caches without drowning the signal.
const DefaultRounds = 3

// sink absorbs finder results so the compiler cannot discard the calls.
var sink int

// Result holds the measurement for one strategy.
type Result struct {
	// Name is the strategy name shown in the report.
	Name string
	// Rounds is the number of invocations per sample.
	Rounds int
	// Samples is the number of inputs measured.
	Samples int
	// Elapsed is the total wall-clock time across all invocations.
	Elapsed time.Duration
}

// Run measures find against every sample, rounds times each, and returns
// the total elapsed wall-clock time.
//
// Errors from the finder are deliberately ignored: samples without a
// marker still cost time, and that cost is what is being measured.
func Run(name string, find marker.Finder, samples [][]byte, rounds int) Result {
	start := time.Now()
	for _, sample := range samples {
		for range rounds {
			pos, _ := find(sample)
			sink += pos
		}
	}
	elapsed := time.Since(start)

	return Result{
		Name:    name,
		Rounds:  rounds,
		Samples: len(samples),
		Elapsed: elapsed,
	}
}

// Print writes the result in the report format: a blank line, a 100-column
// banner with the strategy name centered in asterisks, and the elapsed
// nanoseconds.
func (r Result) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner(r.Name, 100))
	fmt.Fprintf(w, "Elapsed time for %s: %d ns\n", r.Name, r.Elapsed.Nanoseconds())
}

// banner centers " name " within width columns of asterisks.
func banner(name string, width int) string {
	s := " " + name + " "
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2

	return strings.Repeat("*", left) + s + strings.Repeat("*", pad-left)
}
