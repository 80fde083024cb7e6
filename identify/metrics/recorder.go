package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder observes the identification loop's progress across k
// iterations. Every method is safe to call on a nil *Recorder.
type Recorder struct {
	registry   *prometheus.Registry
	solveTime  *prometheus.HistogramVec
	iterations prometheus.Counter
	outcomes   *prometheus.CounterVec
}

// NewRecorder returns a Recorder backed by a fresh, private registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		solveTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dfaident_solve_duration_seconds",
			Help:    "Duration of a single SAT oracle invocation, by outcome.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 16),
		}, []string{"outcome"}),
		iterations: factory.NewCounter(prometheus.CounterOpts{
			Name: "dfaident_iterations_total",
			Help: "Total number of k values attempted across all Identify calls.",
		}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dfaident_outcomes_total",
			Help: "Outcome of each k iteration (sat, unsat, timeout, io_error).",
		}, []string{"outcome"}),
	}
}

// Registry returns the Recorder's private registry, so a caller can expose
// it through their own /metrics endpoint.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveSolve records how long one oracle call took and its outcome.
func (r *Recorder) ObserveSolve(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.solveTime.WithLabelValues(outcome).Observe(d.Seconds())
	r.outcomes.WithLabelValues(outcome).Inc()
}

// IncIteration records one more k attempted.
func (r *Recorder) IncIteration() {
	if r == nil {
		return
	}
	r.iterations.Inc()
}
