package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "assignment_submissions_total",
		Help: "Total number of resource assignment submissions by outcome",
	},
	[]string{"outcome"},
)
