package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// VectorsParsed counts vector strings successfully parsed, by group
	VectorsParsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vulnscale",
			Name:      "vectors_parsed_total",
			Help:      "Total number of vector strings successfully parsed",
		},
		[]string{"group"},
	)

	// ParseErrors counts rejected vector strings, by error kind
	ParseErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vulnscale",
			Name:      "vector_parse_errors_total",
			Help:      "Total number of vector strings rejected by the parser",
		},
		[]string{"reason"},
	)

	// ScoresComputed counts score computations, by group
	ScoresComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vulnscale",
			Name:      "scores_computed_total",
			Help:      "Total number of severity scores computed",
		},
		[]string{"group"},
	)

	// AssessmentsPersisted counts assessments written to storage
	AssessmentsPersisted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vulnscale",
			Name:      "assessments_persisted_total",
			Help:      "Total number of assessments written to storage",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(VectorsParsed)
		prometheus.DefaultRegisterer.Register(ParseErrors)
		prometheus.DefaultRegisterer.Register(ScoresComputed)
		prometheus.DefaultRegisterer.Register(AssessmentsPersisted)
	})
}
