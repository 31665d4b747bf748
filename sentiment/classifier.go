// SPDX-License-Identifier: MIT

package sentiment

import (
	"log/slog"

	"github.com/katalvlaran/fuzzysent/fuzzy"
)

// Scores is the pair of lexicon intensities for one item, nominally in [0,1].
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

// Result is the classification of one Scores pair.
type Result struct {
	Scores

	// Value is the defuzzified sentiment in the output domain.
	Value float64 `json:"value"`
	// Label is derived from Value with LabelFor.
	Label Label `json:"label"`
	// Fired is false when no rule fired and Value is the engine fallback.
	Fired bool `json:"fired"`
	// Activations are the aggregated strengths per output term.
	Activations []fuzzy.Activation `json:"activations,omitempty"`
}

// Classifier turns positive/negative scores into a sentiment label through
// a fuzzy engine. It is immutable and safe for concurrent use.
type Classifier struct {
	engine  *fuzzy.Engine
	logger  *slog.Logger
	metrics *Metrics
}

// New builds a Classifier from cfg. Configuration problems are reported as
// ErrConfig wrapping the fuzzy sentinel.
func New(cfg Config, opts ...Option) (*Classifier, error) {
	o := newOptions(opts...)
	engOpts := append([]fuzzy.Option{fuzzy.WithLogger(o.logger)}, o.engine...)
	eng, err := cfg.Build(engOpts...)
	if err != nil {
		return nil, err
	}

	return &Classifier{engine: eng, logger: o.logger, metrics: o.metrics}, nil
}

// NewDefault builds a Classifier over DefaultConfig.
func NewDefault(opts ...Option) (*Classifier, error) {
	return New(DefaultConfig(), opts...)
}

// Engine exposes the underlying fuzzy engine for inspection.
func (c *Classifier) Engine() *fuzzy.Engine { return c.engine }

// Classify infers the sentiment of one score pair.
// Only non-finite scores fail (fuzzy.ErrInvalidInput); out-of-range scores saturate.
func (c *Classifier) Classify(positive, negative float64) (Result, error) {
	out, err := c.engine.Infer(positive, negative)
	if err != nil {
		return Result{}, err
	}

	return c.finish(Scores{Positive: positive, Negative: negative}, out), nil
}

// finish converts an engine output and records it.
func (c *Classifier) finish(s Scores, out fuzzy.Output) Result {
	r := Result{
		Scores:      s,
		Value:       out.Value,
		Label:       LabelFor(out.Value),
		Fired:       out.Fired,
		Activations: out.Activations(),
	}
	if c.metrics != nil {
		c.metrics.observe(r)
	}

	return r
}
