// Package filtermetrics exposes Prometheus counters for filter
// construction and intersection activity, so a scan engine embedding
// this library can observe how much pushdown filter churn a workload
// produces without instrumenting its own call sites.
package filtermetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FiltersConstructed counts filter objects instantiated, labeled
	// by kind. Incremented once per constructor call, including the
	// internal constructions mergeWith and the factory perform while
	// recompacting a result.
	FiltersConstructed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_constructed_total",
			Help: "Total number of scalar column filters constructed, by kind",
		},
		[]string{"kind"},
	)

	// MergesPerformed counts mergeWith invocations, labeled by the
	// pair of operand kinds in call order.
	MergesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filter_merge_total",
			Help: "Total number of mergeWith calls, by operand kind pair",
		},
		[]string{"kind_a", "kind_b"},
	)
)
