package reconciler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciler_refresh_outcomes_total",
			Help: "Outcomes of background order refreshes after assignment or invalidation",
		},
		[]string{"outcome"},
	)

	LoadedScopes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reconciler_loaded_scopes",
			Help: "Number of order working sets held in memory",
		},
	)
)
