package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Settlements counts completed calculations by input source
	// ("defaults", "form", "json").
	Settlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_computed_total",
			Help: "Settlement calculations completed",
		},
		[]string{"source"},
	)

	// CalculationDuration observes how long one calculation takes.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "settlement_calculation_duration_seconds",
			Help:    "Duration of a single settlement calculation",
			Buckets: prometheus.DefBuckets,
		},
	)
)
