package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	inferenceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recommender",
			Subsystem: "inference",
			Name:      "requests_total",
			Help:      "Model calls by outcome",
		},
		[]string{"outcome"},
	)

	inferenceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recommender",
			Subsystem: "inference",
			Name:      "duration_seconds",
			Help:      "Duration of model calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	sessionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "recommender",
			Subsystem: "wizard",
			Name:      "sessions",
			Help:      "Live wizard sessions",
		},
	)

	submitRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recommender",
			Subsystem: "wizard",
			Name:      "submit_rejections_total",
			Help:      "Submissions rejected before reaching the model",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(inferenceTotal, inferenceDuration, sessionsGauge, submitRejections)
}
