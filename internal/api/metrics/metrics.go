// Package metrics defines and registers the gateway's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carrier_gateway"

// CarrierRequestsTotal counts carrier round trips.
// Labels:
//   - carrier: carrier code (e.g. "ups")
//   - outcome: "ok", "not_found", "malformed", "carrier_error", "transport_error"
var CarrierRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_requests_total",
		Help:      "Total number of carrier tracking requests, by outcome.",
	},
	[]string{"carrier", "outcome"},
)

// CarrierRequestDuration measures the carrier round trip end-to-end.
// Label:
//   - carrier: carrier code
var CarrierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carrier_request_duration_seconds",
		Help:      "Duration of carrier tracking round trips.",
		Buckets:   prometheus.DefBuckets, // .005 … 10
	},
	[]string{"carrier"},
)

// CacheTotal counts result-cache decisions.
// Label:
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_total",
		Help:      "Total number of result cache lookups, labelled hit/miss.",
	},
	[]string{"result"},
)

// RefreshJobsTotal counts background refresh jobs by outcome.
// Label:
//   - outcome: "ok" or "error"
var RefreshJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_jobs_total",
		Help:      "Total number of background refresh jobs processed.",
	},
	[]string{"outcome"},
)
