// Package metrics defines Prometheus metrics for storefront-discovery.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "discovery"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded, 0 otherwise.",
	})
)

// Suggestion metrics.
var (
	SuggestLookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggest_lookups_total",
		Help:      "Total number of suggestion lookups issued after debounce.",
	})

	SuggestStaleTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggest_stale_total",
		Help:      "Total number of suggestion responses discarded because a newer lookup superseded them.",
	})

	SuggestFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggest_failures_total",
		Help:      "Total number of suggestion lookups that failed and were rendered inline.",
	})

	SuggestLookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "suggest_lookup_duration_seconds",
		Help:      "Duration of suggestion lookups in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Listing metrics.
var (
	ListingFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_fetches_total",
		Help:      "Total number of listing page fetches issued.",
	})

	ListingStaleTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_stale_total",
		Help:      "Total number of listing responses discarded because a newer fetch superseded them.",
	})

	ListingFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_failures_total",
		Help:      "Total number of listing fetches that failed.",
	})

	ListingFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "listing_fetch_duration_seconds",
		Help:      "Duration of listing page fetches in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ListingRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_refreshes_total",
		Help:      "Total number of scheduled listing refreshes.",
	})
)
