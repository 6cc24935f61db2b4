package blockbench

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrInvalidIterations = errors.New("iterations must be at least 1")

// Work is one timed invocation. A non-nil error aborts the measurement.
type Work func() error

// Series holds one sample per iteration, in milliseconds.
type Series []float64

// Measure runs work iterations times and records how long each call took.
// It stops at the first failing call and returns its error.
func Measure(clock Clock, iterations int, work Work) (Series, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}

	elapsed := make(Series, 0, iterations)
	for i := 0; i < iterations; i++ {
		ts := clock.Now()
		err := work()
		t := clock.Now()
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i+1, err)
		}

		elapsed = append(elapsed, toMillis(t.Sub(ts)))
	}
	return elapsed, nil
}

func toMillis(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

type Summary struct {
	Label      string
	Iterations int
	Min        float64
	Average    float64
	Max        float64
	P50        float64
	P90        float64
	P99        float64
	StdDev     float64
}

// Summarize sorts s in place and computes its statistics. s must not be empty.
func Summarize(label string, s Series) Summary {
	sort.Float64s(s)

	res := Summary{
		Label:      label,
		Iterations: len(s),
		Min:        s[0],
		Max:        s[len(s)-1],
		P50:        stat.Quantile(0.5, stat.Empirical, s, nil),
		P90:        stat.Quantile(0.9, stat.Empirical, s, nil),
		P99:        stat.Quantile(0.99, stat.Empirical, s, nil),
	}

	// Rounding in the sum can push the mean of a near-constant series past its bounds
	res.Average = clamp(floats.Sum(s)/float64(len(s)), res.Min, res.Max)
	if len(s) > 1 {
		res.StdDev = stat.StdDev(s, nil)
	}
	return res
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Report writes the header and the min/average/max lines.
func (s Summary) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Parse %s (%d iterations):\nmin: %.3fms\naverage: %.3fms\nmax: %.3fms\n",
		s.Label, s.Iterations, s.Min, s.Average, s.Max)
	return err
}

func (s Summary) Fields() log.Fields {
	return log.Fields{
		"label":    s.Label,
		"iters":    s.Iterations,
		"minMs":    s.Min,
		"avgMs":    s.Average,
		"maxMs":    s.Max,
		"p50Ms":    s.P50,
		"p90Ms":    s.P90,
		"p99Ms":    s.P99,
		"stdDevMs": s.StdDev,
	}
}

// Runner measures work and prints a report per call.
type Runner struct {
	Clock Clock
	Out   io.Writer
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{
		Clock: SystemClock{},
		Out:   out,
	}
}

// Measure times work and writes the report to r.Out. Nothing is written
// when any iteration fails.
func (r *Runner) Measure(label string, iterations int, work Work) (Summary, error) {
	elapsed, err := Measure(r.Clock, iterations, work)
	if err != nil {
		return Summary{}, fmt.Errorf("parse %s: %w", label, err)
	}

	sum := Summarize(label, elapsed)
	if err := sum.Report(r.Out); err != nil {
		return Summary{}, fmt.Errorf("report %s: %w", label, err)
	}
	return sum, nil
}
