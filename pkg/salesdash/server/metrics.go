package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the collectors exported on /metrics.
type Metrics struct {
	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	SummaryCache *prometheus.CounterVec
	TableRows    prometheus.Gauge
}

// NewMetrics registers the server collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salesdash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salesdash",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		SummaryCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salesdash",
			Name:      "summary_cache_total",
			Help:      "Summary lookups by cache result.",
		}, []string{"result"}),
		TableRows: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "salesdash",
			Name:      "table_rows",
			Help:      "Rows in the loaded metric table.",
		}),
	}
}
