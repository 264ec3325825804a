package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors register on the default registry at init; the /metrics
// endpoint serves them through promhttp. Labels stay low-cardinality:
// step and method names are fixed sets, routes are gin templates.
var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairvalue_pipeline_runs_total",
			Help: "Total number of valuation pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	PipelineStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fairvalue_pipeline_step_duration_seconds",
			Help:    "Wall time of each pipeline step in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step", "status"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairvalue_model_calls_total",
			Help: "Total number of LLM calls by purpose and result",
		},
		[]string{"purpose", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fairvalue_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"route", "method", "status"},
	)
)
