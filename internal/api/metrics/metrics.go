// Package metrics defines and registers all custom Prometheus metrics for the
// restaurant API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// ── Menu ──────────────────────────────────────────────────────────────────────

// MenuCacheLookupsTotal counts menu listing reads.
// Label:
//   - result: "hit" (served from the snapshot) or "miss" (storage read)
var MenuCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_cache_lookups_total",
		Help:      "Total number of menu listing lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ObserveMenuCache is passed to the menu snapshot as its observer.
func ObserveMenuCache(hit bool) {
	if hit {
		MenuCacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	MenuCacheLookupsTotal.WithLabelValues("miss").Inc()
}

// ── Assistant ─────────────────────────────────────────────────────────────────

// ChatRepliesTotal counts assistant replies.
// Label:
//   - outcome: "greeting", "generated" or "fallback"
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of assistant replies, by outcome.",
	},
	[]string{"outcome"},
)

// GenerationFailuresTotal counts failed calls to the generation service.
// Label:
//   - kind: "remote", "malformed" or "transport"
var GenerationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_failures_total",
		Help:      "Total number of generation calls that failed, by failure kind.",
	},
	[]string{"kind"},
)

// LearnSignalsTotal counts learning signals.
// Label:
//   - result: "accepted" or "dropped" (dispatcher queue full)
var LearnSignalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "learn_signals_total",
		Help:      "Total number of learning signals received, by result.",
	},
	[]string{"result"},
)

// ── Orders & reservations ─────────────────────────────────────────────────────

// OrdersCreatedTotal counts checkout requests that returned an order id.
// Label:
//   - replayed: "true" when an Idempotency-Key matched an earlier order
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created or replayed.",
	},
	[]string{"replayed"},
)

var ReservationConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_conflicts_total",
		Help:      "Total number of reservation requests rejected because the table was taken.",
	},
)
