// Package metrics exposes Prometheus instrumentation for the briefing
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for fetch results.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the briefing pipeline's instruments.
type Metrics struct {
	fetchTotal     *prometheus.CounterVec
	briefingsTotal prometheus.Counter
	generationDur  prometheus.Histogram
}

// New registers the briefing metrics on reg. Pass
// prometheus.DefaultRegisterer outside tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		fetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "briefd_source_fetch_total",
			Help: "Source fetch attempts labeled by integration and outcome.",
		}, []string{"source", "outcome"}),
		briefingsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "briefd_briefings_generated_total",
			Help: "Daily briefings generated.",
		}),
		generationDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "briefd_briefing_generation_seconds",
			Help:    "Wall time to gather sources and assemble one briefing.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveFetch records one source fetch outcome.
func (m *Metrics) ObserveFetch(sourceName string, ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeError
	}
	m.fetchTotal.WithLabelValues(sourceName, outcome).Inc()
}

// ObserveBriefing records one completed briefing generation.
func (m *Metrics) ObserveBriefing(dur time.Duration) {
	if m == nil {
		return
	}
	m.briefingsTotal.Inc()
	m.generationDur.Observe(dur.Seconds())
}
