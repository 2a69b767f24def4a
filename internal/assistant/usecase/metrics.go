package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "assistant",
			Name:      "turns_total",
			Help:      "Answered turns by routed mode.",
		},
		[]string{"mode"},
	)

	// outcome: hit, miss, error.
	catalogLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "assistant",
			Name:      "catalog_lookups_total",
			Help:      "Catalog lookups by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
)

func lookupOutcome(lk lookup) string {
	switch {
	case lk.errDetail != "":
		return "error"
	case len(lk.records) == 0:
		return "miss"
	default:
		return "hit"
	}
}
