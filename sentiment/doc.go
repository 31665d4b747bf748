// Package sentiment classifies text sentiment from two lexicon intensities,
// a positivity score and a negativity score, using the fuzzy engine.
//
// 🚀 Pipeline
//
//	lexicon scorer ──(pos, neg)──▶ Classifier ──(value, label)──▶ reporting
//
// The classifier is the fixed two-input controller:
//
//	positive / negative : low (0,0,0.5)  medium (0,0.5,1)  high (0.5,1,1)   on [0,1]
//	sentiment           : negative (-1,-1,0)  neutral (-0.5,0,0.5)  positive (0,1,1) on [-1,1]
//
//	high   ∧ low    → positive
//	medium ∧ low    → positive
//	low    ∧ high   → negative
//	medium ∧ medium → neutral
//	low    ∧ low    → neutral
//
// and labels the crisp value with strict thresholds: > 0.5 positive,
// < -0.5 negative, otherwise neutral.
//
// ✨ Around the core:
//   - Config / LoadConfig: the same setup as YAML, so a different rule base
//     can be swapped in without touching the algorithm.
//   - Timer: per-phase timings (fuzzify / defuzzify) with an injectable clock,
//     kept outside the classifier.
//   - ClassifyAll: bounded concurrent fan-out that preserves input order.
//   - Metrics: Prometheus counters for labels and no-fire fallbacks and a
//     latency histogram.
//
// ⚙️ Usage:
//
//	c, err := sentiment.NewDefault()
//	r, err := c.Classify(0.9, 0.0) // r.Label == sentiment.Positive
package sentiment
