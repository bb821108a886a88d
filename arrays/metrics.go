package arrays

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindOrdered = "ordered"
	kindDynamic = "dynamic"
)

var (
	arraysCreated = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "arrays_created_total",
		Help: "The total number of array containers created",
	}, []string{"array", "kind"})

	arrayGrowths = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "array_growths_total",
		Help: "The total number of buffer growth reallocations",
	}, []string{"array"})

	arrayInserts = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "array_inserts_total",
		Help: "The total number of elements inserted",
	}, []string{"array"})

	arrayRemovals = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "array_removals_total",
		Help: "The total number of elements removed",
	}, []string{"array"})
)
