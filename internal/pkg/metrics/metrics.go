package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Результаты поиска маршрута
const (
	OutcomeFound    = "found"
	OutcomeNoRoute  = "no_route"
	OutcomeSameStop = "same_stop"
	OutcomeError    = "error"
)

// Результаты перезагрузки каталога по событию
const (
	ReloadOK      = "ok"
	ReloadFailed  = "failed"
	ReloadSkipped = "skipped"
)

var (
	GraphBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "transport_catalogue",
		Name:      "graph_build_seconds",
		Help:      "Time spent building the transit graph",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	GraphEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "transport_catalogue",
		Name:      "graph_edges",
		Help:      "Number of edges in the active transit graph",
	})

	RouteQueryDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace:   "transport_catalogue",
		Name:        "route_query_seconds",
		Help:        "Summary for shortest-time route queries",
		ConstLabels: prometheus.Labels{"endpoint_type": "route"},
	})

	RouteQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transport_catalogue",
		Name:      "route_queries_total",
		Help:      "Route queries by outcome",
	}, []string{"outcome"})

	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transport_catalogue",
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by kind and result",
	}, []string{"kind", "result"})

	SnapshotSwaps = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "transport_catalogue",
		Name:      "snapshot_swaps_total",
		Help:      "Number of network snapshot swaps",
	})

	CatalogueReloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transport_catalogue",
		Name:      "catalogue_reloads_total",
		Help:      "Catalogue reloads triggered by update events, by snapshot source and result",
	}, []string{"source", "result"})
)

func init() {
	prometheus.MustRegister(
		GraphBuildDuration,
		GraphEdges,
		RouteQueryDuration,
		RouteQueries,
		CacheLookups,
		SnapshotSwaps,
		CatalogueReloads,
	)
}
