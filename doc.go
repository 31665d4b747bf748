// Package fuzzysent turns lexicon sentiment scores into labels with Mamdani
// fuzzy inference.
//
// 🚀 What is fuzzysent?
//
//	An upstream lexicon scorer produces two intensities per text snippet,
//	positivity and negativity, nominally in [0,1]. fuzzysent combines them
//	through triangular membership functions, a five-rule base, max-min
//	aggregation and centroid defuzzification into a crisp value in [-1,1]
//	and a positive / negative / neutral label.
//
// ✨ Packages:
//
//	fuzzy/            - generic engine: Triangle, Variable, Rule, Engine, defuzzifiers
//	sentiment/        - default configuration, YAML rule bases, labels, batch, metrics
//	internal/logging/ - slog logger construction for the CLI
//	cmd/fuzzysent/    - command line: infer, batch, rules, curve
//
// Quick example:
//
//	c, _ := sentiment.NewDefault()
//	r, _ := c.Classify(0.9, 0.0)
//	fmt.Println(r.Label) // positive
//
//	go install github.com/katalvlaran/fuzzysent/cmd/fuzzysent@latest
package fuzzysent
