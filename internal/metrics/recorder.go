package metrics

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every exported metric name.
const Namespace = "kata"

// Run status label values.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// Recorder collects run metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lines    *prometheus.CounterVec
	heap     prometheus.Gauge
	objects  prometheus.Gauge
}

// NewRecorder creates a Recorder backed by its own registry so that repeated
// construction (tests, multiple app instances) never collides.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Routine runs by routine and final status.",
		}, []string{"routine", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of routine runs.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 5, 30},
		}, []string{"routine"}),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lines_emitted_total",
			Help:      "Output lines written by each routine.",
		}, []string{"routine"}),
		heap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use after the last run.",
		}),
		objects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "heap_objects",
			Help:      "Allocated heap objects after the last run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.lines, r.heap, r.objects)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveRun records one finished run of routine.
func (r *Recorder) ObserveRun(routine string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(routine, StatusFor(err)).Inc()
	r.duration.WithLabelValues(routine).Observe(elapsed.Seconds())
}

// AddLines adds n emitted lines for routine.
func (r *Recorder) AddLines(routine string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.lines.WithLabelValues(routine).Add(float64(n))
}

// ObserveMemory stores a heap snapshot.
func (r *Recorder) ObserveMemory(s MemorySnapshot) {
	if r == nil {
		return
	}
	r.heap.Set(float64(s.HeapAlloc))
	r.objects.Set(float64(s.HeapObjects))
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return errors.New("metrics recorder is not initialised")
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

// StatusFor maps a run error to its status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

// LineCounter is an io.Writer that counts newline bytes passing through it.
type LineCounter struct {
	w     io.Writer
	lines int
}

// NewLineCounter wraps w.
func NewLineCounter(w io.Writer) *LineCounter {
	return &LineCounter{w: w}
}

func (c *LineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	for _, b := range p[:n] {
		if b == '\n' {
			c.lines++
		}
	}
	return n, err
}

// Lines returns the number of complete lines written so far.
func (c *LineCounter) Lines() int { return c.lines }
