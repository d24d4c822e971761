package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tribunal_client",
			Name:      "api_requests_total",
			Help:      "Remote API calls by operation and outcome.",
		},
		[]string{"op", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tribunal_client",
			Name:      "api_request_duration_seconds",
			Help:      "Remote API call latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)
