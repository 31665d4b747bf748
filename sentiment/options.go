// SPDX-License-Identifier: MIT

package sentiment

import (
	"log/slog"

	"github.com/katalvlaran/fuzzysent/fuzzy"
)

// Option customizes a Classifier.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	engine  []fuzzy.Option
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the classifier and engine logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sentiment: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records every classification in m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("sentiment: WithMetrics(nil)")
	}
	return func(o *options) {
		o.metrics = m
	}
}

// WithEngineOptions forwards options to fuzzy.New, after the configured method,
// so e.g. WithEngineOptions(fuzzy.WithMethod(fuzzy.CentroidArea)) overrides it.
func WithEngineOptions(opts ...fuzzy.Option) Option {
	return func(o *options) {
		o.engine = append(o.engine, opts...)
	}
}
