// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContentFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_failures_total",
			Help: "Total number of failed content collection fetches",
		},
		[]string{"collection"},
	)

	ContentRecordsNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_records_normalized_total",
			Help: "Total number of raw records normalized per collection",
		},
		[]string{"collection"},
	)

	NormalizeFieldFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalize_field_fallbacks_total",
			Help: "Total number of malformed fields replaced by their default",
		},
		[]string{"collection", "field"},
	)

	FavoritesMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_mutations_total",
			Help: "Total number of favorites store mutations",
		},
		[]string{"op"},
	)
)
