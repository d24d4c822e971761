package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tribunal_portal",
			Name:      "http_requests_total",
			Help:      "Portal requests by route, method and status.",
		},
		[]string{"route", "method", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tribunal_portal",
			Name:      "http_request_duration_seconds",
			Help:      "Portal request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
