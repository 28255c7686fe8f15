// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ParseTotal counts parse requests by outcome label: "hit" (cache),
	// "parsed", "empty" (no extraction).
	ParseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freight_parser",
		Name:      "parse_total",
		Help:      "Parse requests by outcome.",
	}, []string{"outcome"})

	// ParseDuration observes end-to-end parse latency, cache included.
	ParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "freight_parser",
		Name:      "parse_duration_seconds",
		Help:      "End-to-end parse latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	// CacheHits counts cache lookups by tier result.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freight_parser",
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by result.",
	}, []string{"result"})

	// ReviewsQueued counts extractions pushed to the review queue.
	ReviewsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freight_parser",
		Name:      "reviews_queued_total",
		Help:      "Extractions queued for human review.",
	})

	// BatchJobs counts batch jobs by final status.
	BatchJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freight_parser",
		Name:      "batch_jobs_total",
		Help:      "Batch jobs by final status.",
	}, []string{"status"})
)
