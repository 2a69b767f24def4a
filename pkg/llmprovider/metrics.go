package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level metrics, registered with the default registry.
var (
	// callsTotal counts provider attempts. status: success, empty, timeout, error.
	callsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Total number of LLM provider attempts.",
		},
		[]string{"provider", "status"},
	)

	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nutrition",
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Duration of LLM provider attempts in seconds.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	tokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Tokens reported by LLM providers.",
		},
		[]string{"provider", "direction"},
	)
)

// callStatus maps an attempt outcome to a low-cardinality label.
func callStatus(resp *Response, err error) string {
	switch {
	case err == nil && resp != nil && resp.Text != "":
		return "success"
	case err == nil:
		return "empty"
	case IsTimeout(err):
		return "timeout"
	default:
		return "error"
	}
}

func observeUsage(provider string, u *Usage) {
	if u == nil {
		return
	}
	tokensTotal.WithLabelValues(provider, "input").Add(float64(u.InputTokens))
	tokensTotal.WithLabelValues(provider, "output").Add(float64(u.OutputTokens))
}
