// SPDX-License-Identifier: MIT

package sentiment

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source of a Timer. clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

// TimedResult is a Result with the wall time of each inference phase.
type TimedResult struct {
	Result

	// Fuzzify covers input validation and term degree computation.
	Fuzzify time.Duration `json:"fuzzify_ns"`
	// Defuzzify covers rule evaluation, aggregation and centroid.
	Defuzzify time.Duration `json:"defuzzify_ns"`
	// Total is Fuzzify + Defuzzify.
	Total time.Duration `json:"total_ns"`
}

// Timer wraps a Classifier and measures each phase of every call. The
// classifier stays free of timers; callers opt in by going through a Timer.
type Timer struct {
	c     *Classifier
	clock Clock
}

// NewTimer returns a Timer over c. A nil clock means the real wall clock.
func NewTimer(c *Classifier, clock Clock) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Timer{c: c, clock: clock}
}

// Clock returns the time source of the timer.
func (t *Timer) Clock() Clock { return t.clock }

// Classifier returns the wrapped classifier.
func (t *Timer) Classifier() *Classifier { return t.c }

// Classify is Classifier.Classify with per-phase timings.
func (t *Timer) Classify(positive, negative float64) (TimedResult, error) {
	eng := t.c.engine

	start := t.clock.Now()
	f, err := eng.Fuzzify(positive, negative)
	if err != nil {
		return TimedResult{}, err
	}
	fuzzified := t.clock.Now()
	out, err := eng.Evaluate(f)
	if err != nil {
		return TimedResult{}, err
	}
	done := t.clock.Now()

	tr := TimedResult{
		Result:    t.c.finish(Scores{Positive: positive, Negative: negative}, out),
		Fuzzify:   fuzzified.Sub(start),
		Defuzzify: done.Sub(fuzzified),
	}
	tr.Total = tr.Fuzzify + tr.Defuzzify
	if t.c.metrics != nil {
		t.c.metrics.latency.Observe(tr.Total.Seconds())
	}

	return tr, nil
}
