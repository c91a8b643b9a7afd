package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFetch("todoist", true)
	m.ObserveFetch("todoist", true)
	m.ObserveFetch("weather", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fetchTotal.WithLabelValues("todoist", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchTotal.WithLabelValues("weather", OutcomeError)))
}

func TestObserveBriefing(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBriefing(120 * time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.briefingsTotal))
}

func TestNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFetch("todoist", true)
		m.ObserveBriefing(time.Second)
	})
}
