// Package metrics defines the custom Prometheus metrics of the itinerary
// timeline service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry through promauto
// when the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timeline"

// ── Projection metrics ────────────────────────────────────────────────────────

// CardsProjectedTotal counts cards produced by timeline projections.
// Label:
//   - mode: the map link mode of the card ("navigate" or "map")
var CardsProjectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cards_projected_total",
		Help:      "Total number of timeline cards projected, by map link mode.",
	},
	[]string{"mode"},
)

// BookingLinksTotal counts cards that received a train booking link.
var BookingLinksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_links_total",
		Help:      "Total number of train booking links attached to cards.",
	},
)

// ProjectionDuration measures how long projecting one itinerary takes.
var ProjectionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "projection_duration_seconds",
		Help:      "Duration of projecting an itinerary into cards.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
	},
)

// ── Render cache metrics ──────────────────────────────────────────────────────

// RenderCacheTotal counts render cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (rendered)
var RenderCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_cache_total",
		Help:      "Total number of render cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// WarmupQueueDepth tracks the number of itineraries waiting in each warm-up worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WarmupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "warmup_queue_depth",
		Help:      "Current number of itineraries pending in each warm-up worker channel.",
	},
	[]string{"worker_id"},
)

// WarmupErrorsTotal counts cache warm-ups that failed.
var WarmupErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "warmup_errors_total",
		Help:      "Total number of timeline cache warm-ups that failed.",
	},
)

// ── Itinerary metrics ─────────────────────────────────────────────────────────

// ItinerariesCreatedTotal counts newly created itineraries.
var ItinerariesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "itineraries_created_total",
		Help:      "Total number of itineraries created.",
	},
)
