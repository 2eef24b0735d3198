// Package metrics records program runs as Prometheus metrics. A Recorder is a
// driver.Observer; its registry can be served over HTTP or written once in the
// node_exporter textfile-collector format when the program exits.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/recur/internal/driver"
)

const namespace = "recur"

// Recorder collects per-program counters and timings.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	work        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	lastValue   *prometheus.GaugeVec
	runs        *prometheus.CounterVec
	runSeconds  *prometheus.GaugeVec
}

var _ driver.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of values computed.",
		}, []string{"program"}),
		work: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "work_units_total",
			Help:      "Loop advances (Fibonacci) or recursive invocations (Ackermann) performed.",
		}, []string{"program"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent computing a single value.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"program"}),
		lastValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_value",
			Help:      "Most recent value written by the program.",
		}, []string{"program"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_completed_total",
			Help:      "Runs that reached the completion marker.",
		}, []string{"program"}),
		runSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last completed run.",
		}, []string{"program"}),
	}

	r.registry.MustRegister(
		r.evaluations, r.work, r.duration, r.lastValue, r.runs, r.runSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// OnStep implements driver.Observer.
func (r *Recorder) OnStep(program string, step driver.Step) {
	r.evaluations.WithLabelValues(program).Inc()
	r.work.WithLabelValues(program).Add(float64(step.Work))
	r.duration.WithLabelValues(program).Observe(step.Elapsed.Seconds())
	r.lastValue.WithLabelValues(program).Set(float64(step.Value))
}

// OnComplete implements driver.Observer.
func (r *Recorder) OnComplete(program string, summary driver.Summary) {
	r.runs.WithLabelValues(program).Inc()
	r.runSeconds.WithLabelValues(program).Set(summary.Elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteToTextfile atomically writes the registry to path in the textfile
// collector format.
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
