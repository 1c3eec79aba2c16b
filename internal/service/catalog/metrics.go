package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PoolLoadFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_pool_load_failures_total",
		Help: "Total number of resource pool fetches replaced with an empty pool",
	},
	[]string{"pool"},
)
