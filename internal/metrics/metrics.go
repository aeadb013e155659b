// Package metrics holds the document generation Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Documents records generation counts and latency per category.
type Documents struct {
	generated *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewDocuments registers the collectors on reg.
func NewDocuments(reg prometheus.Registerer) (*Documents, error) {
	d := &Documents{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_generated_total",
				Help: "Documents generated, by category and outcome.",
			},
			[]string{"category", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "document_generation_duration_seconds",
				Help:    "Time to render, lay out and publish a document.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"category"},
		),
	}
	for _, c := range []prometheus.Collector{d.generated, d.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Observe records one generation attempt. A nil receiver is a no-op.
func (d *Documents) Observe(category string, elapsed time.Duration, err error) {
	if d == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	d.generated.WithLabelValues(category, outcome).Inc()
	d.duration.WithLabelValues(category).Observe(elapsed.Seconds())
}
