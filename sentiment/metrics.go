// SPDX-License-Identifier: MIT

package sentiment

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a Classifier.
type Metrics struct {
	// classifications counts results by label.
	classifications *prometheus.CounterVec
	// fallbacks counts inferences in which no rule fired.
	fallbacks prometheus.Counter
	// latency observes Timer totals in seconds.
	latency prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful for tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fuzzysent_classifications_total",
				Help: "Total classifications by sentiment label",
			},
			[]string{"label"},
		),
		fallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fuzzysent_degenerate_total",
				Help: "Inferences in which no rule fired and the fallback value was used",
			},
		),
		latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fuzzysent_inference_duration_seconds",
				Help:    "Fuzzification plus defuzzification time in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
		),
	}
	// Pre-create every label series so dashboards see zeros.
	for _, l := range Labels() {
		m.classifications.WithLabelValues(string(l))
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.classifications, m.fallbacks, m.latency} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (m *Metrics) observe(r Result) {
	m.classifications.WithLabelValues(string(r.Label)).Inc()
	if !r.Fired {
		m.fallbacks.Inc()
	}
}
