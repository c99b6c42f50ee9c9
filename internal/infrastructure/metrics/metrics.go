// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by route, method and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakenews",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes HTTP request latency by route and method
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fakenews",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// PredictionsTotal counts produced predictions by label and source
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakenews",
		Name:      "predictions_total",
		Help:      "Total number of predictions by label and source.",
	}, []string{"label", "source"})

	// ClassificationDuration observes classifier latency
	ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fakenews",
		Name:      "classification_duration_seconds",
		Help:      "Classifier latency in seconds.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	})

	// ClassificationErrorsTotal counts failed classifications
	ClassificationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fakenews",
		Name:      "classification_errors_total",
		Help:      "Total number of failed classifications.",
	})

	// CacheLookupsTotal counts prediction cache lookups by result (hit, miss, error)
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakenews",
		Name:      "cache_lookups_total",
		Help:      "Prediction cache lookups by result.",
	}, []string{"result"})
)

// Cache lookup results
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
