// Package metrics registers the service's Prometheus collectors with the
// default registry. They are exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopwise"

// AuthAttempts counts register/login/authenticate outcomes.
// Labels:
//   - op: "register", "login" or "authenticate"
//   - outcome: "success", "conflict", "invalid_credentials", "unauthenticated", "error"
var AuthAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Authentication attempts by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// ProductMutations counts successful product writes.
// Label:
//   - op: "create", "update" or "delete"
var ProductMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Successful product mutations by operation.",
	},
	[]string{"op"},
)

var AccessDenied = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Requests rejected by the access guard, by rule.",
	},
	[]string{"rule"},
)

var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
