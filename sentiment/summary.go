// SPDX-License-Identifier: MIT

package sentiment

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of results.
type Summary struct {
	Total     int           `json:"total"`
	Counts    map[Label]int `json:"counts"`
	Fallbacks int           `json:"fallbacks"`
	MeanValue float64       `json:"mean_value"`
}

// Summarize counts labels and no-fire fallbacks and averages the crisp values.
// Every label is present in Counts, possibly with 0.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Counts: make(map[Label]int, 3)}
	for _, l := range Labels() {
		s.Counts[l] = 0
	}
	if len(results) == 0 {
		return s
	}

	values := make([]float64, len(results))
	for i, r := range results {
		s.Counts[r.Label]++
		if !r.Fired {
			s.Fallbacks++
		}
		values[i] = r.Value
	}
	s.MeanValue = stat.Mean(values, nil)

	return s
}

// TimingSummary aggregates phase timings of a timed batch.
type TimingSummary struct {
	Fuzzify   time.Duration `json:"fuzzify_ns"`
	Defuzzify time.Duration `json:"defuzzify_ns"`
	Total     time.Duration `json:"total_ns"`
	Mean      time.Duration `json:"mean_ns"`
}

// SummarizeTimings sums the phases and averages the per-item total.
func SummarizeTimings(results []TimedResult) TimingSummary {
	var s TimingSummary
	for _, r := range results {
		s.Fuzzify += r.Fuzzify
		s.Defuzzify += r.Defuzzify
		s.Total += r.Total
	}
	if len(results) > 0 {
		s.Mean = s.Total / time.Duration(len(results))
	}

	return s
}

// Results strips timings from a timed batch.
func Results(timed []TimedResult) []Result {
	out := make([]Result, len(timed))
	for i, t := range timed {
		out[i] = t.Result
	}

	return out
}
