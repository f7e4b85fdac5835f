// Package metrics defines and registers the custom Prometheus metrics for
// the gestoría admin API. It is the single source of truth for metric names,
// labels, and help strings. Per-route HTTP metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gestoria"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts request-gate outcomes on page routes.
// Label:
//   - decision: "allow" or "redirect"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access-policy decisions made by the request gate.",
	},
	[]string{"decision"},
)

// CacheTotal counts listing-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
