package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace groups every collector registered by this package under one
// Prometheus namespace.
const Namespace = "vrptrash"

var (
	iterations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "tabu",
			Name:      "iterations_total",
			Help:      "Inner-pass iterations run, broken down by move family.",
		},
		[]string{"family"},
	)

	stagnation = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "tabu",
			Name:      "stagnation_count",
			Help:      "Consecutive iterations since the best-known solution last improved, by family.",
		},
		[]string{"family"},
	)

	acceptedSavings = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "tabu",
			Name:      "accepted_move_savings",
			Help:      "Savings value of every move accepted by the driver (aspiration or non-tabu).",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(iterations, stagnation, acceptedSavings)
}

// Recorder receives search-progress events from tabu.Driver. Passing a
// nil Recorder to the driver disables all instrumentation.
type Recorder interface {
	Iteration(family string)
	Stagnation(family string, count int)
	AcceptedSavings(savings float64)
}

// prometheusRecorder is the default Recorder backed by this package's
// registered collectors.
type prometheusRecorder struct{}

// NewPrometheusRecorder returns a Recorder that feeds the package-level
// collectors registered against the default Prometheus registry.
func NewPrometheusRecorder() Recorder { return prometheusRecorder{} }

func (prometheusRecorder) Iteration(family string) {
	iterations.WithLabelValues(family).Inc()
}

func (prometheusRecorder) Stagnation(family string, count int) {
	stagnation.WithLabelValues(family).Set(float64(count))
}

func (prometheusRecorder) AcceptedSavings(savings float64) {
	acceptedSavings.Observe(savings)
}
