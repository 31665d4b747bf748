// SPDX-License-Identifier: MIT
// Package: fuzzysent/fuzzy
//
// options.go - functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values
//     (nil logger, unknown method, non-finite fallback). New itself never panics.
//   • No hidden globals: every setting lives in engineConfig, owned by one Engine.

package fuzzy

import (
	"log/slog"
	"math"
)

// Option customizes an Engine at construction time.
type Option func(*engineConfig)

// engineConfig is the resolved configuration of an Engine.
type engineConfig struct {
	logger      *slog.Logger
	method      Method
	fallback    float64
	hasFallback bool
}

// newEngineConfig applies opts over the defaults: slog.Default, Centroid,
// and no explicit fallback (resolved against the output domain in New).
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		logger: slog.Default(),
		method: Centroid,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes engine diagnostics (e.g. "no rule fired") to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fuzzy: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithMethod selects the defuzzification method. Panics on an unknown Method.
func WithMethod(m Method) Option {
	if !m.valid() {
		panic("fuzzy: WithMethod(unknown)")
	}
	return func(c *engineConfig) {
		c.method = m
	}
}

// WithFallback sets the crisp value reported when no rule fires.
// It must lie in the output domain (checked by New). Panics on NaN/±Inf.
func WithFallback(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("fuzzy: WithFallback(non-finite)")
	}
	return func(c *engineConfig) {
		c.fallback = v
		c.hasFallback = true
	}
}
