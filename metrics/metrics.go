package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry so tests can
// build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	TotalRequests    *prometheus.CounterVec
	HttpDuration     *prometheus.HistogramVec
	EntriesSubmitted *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TotalRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petition_http_requests_total",
				Help: "Number of handled HTTP requests.",
			},
			[]string{"path", "code", "method"},
		),
		HttpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "petition_http_request_duration_seconds",
				Help: "HTTP request latency.",
				Buckets: []float64{
					0.01,
					0.05,
					0.1, // 100 ms
					0.25,
					0.5,
					1,
					2.5,
					5,
				},
			},
			[]string{"path", "code", "method"},
		),
		EntriesSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "petition_entries_submitted_total",
				Help: "Number of stored submissions by form type.",
			},
			[]string{"form_type"},
		),
	}

	m.registry.MustRegister(
		m.TotalRequests,
		m.HttpDuration,
		m.EntriesSubmitted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSubmission counts one stored entry. Unknown form types share a
// label so client input cannot grow the series count.
func (m *Metrics) ObserveSubmission(formType string) {
	switch formType {
	case "petition", "demand":
	default:
		formType = "other"
	}
	m.EntriesSubmitted.WithLabelValues(formType).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
