package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RescoreTotal counts rescore operations by normalizer and status.
	RescoreTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rescore",
			Name:      "operations_total",
			Help:      "Total number of rescore operations",
		},
		[]string{"normalizer", "status"},
	)

	// RescoreDuration measures time spent normalizing a window.
	RescoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rescore",
			Name:      "duration_seconds",
			Help:      "Duration of rescore operations in seconds",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"normalizer"},
	)

	// WindowSize observes how many results were normalized per call.
	WindowSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rescore",
			Name:      "window_size",
			Help:      "Distribution of normalized window sizes",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"normalizer"},
	)

	// ErrorsTotal counts failed rescore operations by error type.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rescore",
			Name:      "errors_total",
			Help:      "Total number of rescore errors",
		},
		[]string{"normalizer", "error_type"},
	)
)

// RecordRescore records a successful rescore.
func RecordRescore(normalizer string, window int, duration float64) {
	RescoreTotal.WithLabelValues(normalizer, "ok").Inc()
	RescoreDuration.WithLabelValues(normalizer).Observe(duration)
	WindowSize.WithLabelValues(normalizer).Observe(float64(window))
}

// RecordError records a failed rescore.
func RecordError(normalizer, errorType string) {
	RescoreTotal.WithLabelValues(normalizer, "error").Inc()
	ErrorsTotal.WithLabelValues(normalizer, errorType).Inc()
}
