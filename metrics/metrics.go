// Package metrics holds the prometheus collectors of the gateway.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge
	ThrottledTotal  prometheus.Counter

	DocumentsGenerated *prometheus.CounterVec
	DocumentsFailed    *prometheus.CounterVec
	RenderDuration     *prometheus.HistogramVec
	DocumentPages      *prometheus.HistogramVec
	DocumentBytes      *prometheus.HistogramVec

	CacheLookups *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewCollector registers the collectors on reg. Tests pass a fresh
// prometheus.NewRegistry(); the binary passes the default registerer.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	c := &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		ThrottledTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "throttled_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),

		DocumentsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "generated_total",
			Help:      "Documents rendered, by document type.",
		}, []string{"type"}),

		DocumentsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "failed_total",
			Help:      "Document generations that failed, by document type and reason.",
		}, []string{"type", "reason"}),

		RenderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "render_duration_seconds",
			Help:      "Time spent laying out and writing one document.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"type"}),

		DocumentPages: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "pages",
			Help:      "Pages per rendered document.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}, []string{"type"}),

		DocumentBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "bytes",
			Help:      "Size of rendered documents.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		}, []string{"type"}),

		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Blob cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}
	return c
}

// ObserveRender records one successful generation.
func (c *Collector) ObserveRender(docType string, started time.Time, pages int, size int) {
	c.DocumentsGenerated.WithLabelValues(docType).Inc()
	c.RenderDuration.WithLabelValues(docType).Observe(time.Since(started).Seconds())
	c.DocumentPages.WithLabelValues(docType).Observe(float64(pages))
	c.DocumentBytes.WithLabelValues(docType).Observe(float64(size))
}

func (c *Collector) ObserveFailure(docType, reason string) {
	c.DocumentsFailed.WithLabelValues(docType, reason).Inc()
}

// Handler exposes the registry the collector was registered on, falling back
// to the default gatherer.
func (c *Collector) Handler() http.Handler {
	if c.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
