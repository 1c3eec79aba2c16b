package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dashboard_rate_limit_exceeded_total",
		Help: "Total number of dashboard requests rejected due to rate limiting",
	},
	[]string{"method", "route"},
)
