// Package metrics records solver runs with Prometheus collectors.
//
// Metrics are never served; they can be written out in the node-exporter
// textfile format after a command finishes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder owns a private Prometheus registry and the puzzlebox collectors.
type Recorder struct {
	registry *prometheus.Registry
	solves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puzzlebox_solves_total",
				Help: "Total number of puzzle solves by outcome",
			},
			[]string{"puzzle", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "puzzlebox_solve_duration_seconds",
				Help:    "Duration of puzzle solves",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"puzzle"},
		),
	}
	r.registry.MustRegister(r.solves, r.duration)
	return r
}

// Observe records one solve of puzzle that took d and ended with err.
func (r *Recorder) Observe(puzzle string, d time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	r.solves.WithLabelValues(puzzle, outcome).Inc()
	r.duration.WithLabelValues(puzzle).Observe(d.Seconds())
}

// Solves returns the counter for a puzzle and outcome.
func (r *Recorder) Solves(puzzle, outcome string) prometheus.Counter {
	return r.solves.WithLabelValues(puzzle, outcome)
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
