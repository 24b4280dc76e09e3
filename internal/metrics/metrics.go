// Scanogate - Scano Media Monitoring Dashboard Gateway
// Copyright 2026 Scano Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scano-io/scanogate

// Package metrics provides Prometheus instrumentation for the gateway:
// upstream fetch latency and outcomes, circuit breaker state, reference
// cache efficiency, and HTTP endpoint metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream fetch metrics
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scano_upstream_request_duration_seconds",
			Help:    "Duration of upstream Scano API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scano_upstream_requests_total",
			Help: "Total number of upstream Scano API requests",
		},
		[]string{"entity", "operation", "outcome"}, // outcome: success, error, rejected
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scano_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scano_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "scano_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive upstream failures",
		},
		[]string{"name"},
	)

	// Reference cache metrics
	RefCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scano_refcache_hits_total",
			Help: "Total number of reference cache hits",
		},
	)

	RefCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scano_refcache_misses_total",
			Help: "Total number of reference cache misses",
		},
	)

	RefCacheStaleReads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scano_refcache_stale_reads_total",
			Help: "Total number of reference cache reads past TTL",
		},
	)

	// Session metrics
	SessionProfileFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scano_session_profile_fetches_total",
			Help: "Current-user profile fetches by source",
		},
		[]string{"source"}, // cache, upstream, shared (singleflight dedup)
	)

	// HTTP endpoint metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanogate_http_requests_total",
			Help: "Total number of gateway HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scanogate_http_request_duration_seconds",
			Help:    "Duration of gateway HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scanogate_http_requests_in_flight",
			Help: "Number of gateway HTTP requests currently being served",
		},
	)
)

// ObserveUpstreamRequest records one upstream call's duration and outcome.
func ObserveUpstreamRequest(entity, operation string, start time.Time, err error) {
	UpstreamRequestDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(entity, operation, outcome).Inc()
}

// ObserveHTTPRequest records one gateway request.
func ObserveHTTPRequest(method, path string, status int, start time.Time) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}
