package metrics

import "github.com/prometheus/client_golang/prometheus"

// Directory and explore Prometheus metrics.
var (
	FilterResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "filter_results",
			Help:      "Number of entries left after applying filter criteria",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"screen"}, // "directory" / "explore"
	)

	SourceFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "source_fetch_total",
			Help:      "Total number of tutor source fetches",
		},
		[]string{"outcome"}, // "ok" / "error"
	)

	SourceFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "source_fetch_duration_seconds",
			Help:      "Tutor source fetch duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

var directoryMetricsRegistered bool

// RegisterDirectoryMetrics registers the directory and explore metrics. Must be called once from main.
func RegisterDirectoryMetrics() {
	if directoryMetricsRegistered {
		return
	}
	prometheus.MustRegister(FilterResults)
	prometheus.MustRegister(SourceFetchTotal)
	prometheus.MustRegister(SourceFetchDuration)
	directoryMetricsRegistered = true
}
