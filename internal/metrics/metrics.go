// Package metrics collects run statistics as Prometheus metrics and exports
// them in the node-exporter textfile format.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/swalign/pipeline"
)

const namespace = "swalign"

// DurationBuckets spans single-word pairs (µs) up to long sequences (s).
var DurationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 12) //nolint: gochecknoglobals

// Metrics owns a private registry so repeated runs in one process do not
// collide on registration.
type Metrics struct {
	registry  *prometheus.Registry
	pairs     prometheus.Counter
	zeroScore prometheus.Counter
	cells     prometheus.Counter
	sequences prometheus.Counter
	duration  prometheus.Histogram
	bestScore prometheus.Gauge

	mu   sync.Mutex
	best float64
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "pairs_aligned_total",
			Help: "Number of word pairs aligned.",
		}),
		zeroScore: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "pairs_zero_score_total",
			Help: "Number of aligned pairs whose best local score was 0.",
		}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "matrix_cells_total",
			Help: "Scoring-matrix cells filled, (m+1)*(n+1) per pair.",
		}),
		sequences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sequences_reported_total",
			Help: "Distinct optimal substrings reported.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "align_duration_seconds",
			Help:    "Time spent aligning one pair.",
			Buckets: DurationBuckets,
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "best_score",
			Help: "Highest score seen in the run.",
		}),
	}
	m.registry.MustRegister(m.pairs, m.zeroScore, m.cells, m.sequences, m.duration, m.bestScore)

	return m
}

// Observe records one aligned pair. It matches pipeline.Config.OnAlign and
// is safe for concurrent use.
func (m *Metrics) Observe(pr pipeline.PairResult, d time.Duration) {
	m.pairs.Inc()
	if pr.Result.Score == 0 {
		m.zeroScore.Inc()
	}
	m.cells.Add(float64((len(pr.A) + 1) * (len(pr.B) + 1)))
	m.sequences.Add(float64(len(pr.Result.Sequences)))
	m.duration.Observe(d.Seconds())
	m.raiseBest(float64(pr.Result.Score))
}

// raiseBest keeps the gauge at the maximum seen.
func (m *Metrics) raiseBest(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v > m.best {
		m.best = v
		m.bestScore.Set(v)
	}
}

// Registry exposes the registry, e.g. for promhttp or tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path atomically (temp file + rename).
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
