// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics instruments a transport.
type RequestMetrics struct {
	// RequestCounts counts requests by endpoint and status.
	RequestCounts *prometheus.CounterVec

	// RequestLatencies observes request latencies by endpoint.
	RequestLatencies *prometheus.HistogramVec
}

// NewRequestMetrics creates request metrics for transport (e.g. "http" or
// "grpc") and registers them with reg.
func NewRequestMetrics(reg prometheus.Registerer, transport string) *RequestMetrics {
	return &RequestMetrics{
		RequestCounts: registerOnce(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: transport,
				Name:      "requests_total",
				Help:      "How many requests were served, partitioned by endpoint and status.",
			},
			[]string{"endpoint", "status"},
		)),
		RequestLatencies: registerOnce(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: transport,
				Name:      "request_duration_seconds",
				Help:      "How long requests take to serve, partitioned by endpoint.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		)),
	}
}

// Observe records one served request.
func (m *RequestMetrics) Observe(endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestCounts.WithLabelValues(endpoint, status).Inc()
	m.RequestLatencies.WithLabelValues(endpoint).Observe(seconds)
}
