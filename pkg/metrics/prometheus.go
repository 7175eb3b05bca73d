package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus. Metric
// names are prefixed with the configured namespace. Construct at most one
// Recorder per process; promauto registers on the default registry.
type Recorder struct {
	samplesAppended  prometheus.Counter
	evictions        prometheus.Counter
	analyses         *prometheus.CounterVec
	healthScore      prometheus.Gauge
	validationErrors *prometheus.CounterVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New(namespace string) *Recorder {
	return &Recorder{
		samplesAppended: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "samples_appended_total",
				Help:      "Total number of bin samples appended to the history",
			},
		),
		evictions: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "samples_evicted_total",
				Help:      "Total number of samples evicted at capacity",
			},
		),
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Analysis calls by operation",
			},
			[]string{"operation"},
		),
		healthScore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_health_score",
				Help:      "Most recently computed position health score",
			},
		),
		validationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Caller input validation failures by kind",
			},
			[]string{"kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of engine operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordSampleAppended counts an accepted sample.
func (r *Recorder) RecordSampleAppended() {
	r.samplesAppended.Inc()
}

// RecordEviction counts a capacity eviction.
func (r *Recorder) RecordEviction() {
	r.evictions.Inc()
}

// RecordAnalysis counts an analysis call by operation.
func (r *Recorder) RecordAnalysis(op string) {
	r.analyses.WithLabelValues(op).Inc()
}

// RecordHealthScore records the latest health score.
func (r *Recorder) RecordHealthScore(score float64) {
	r.healthScore.Set(score)
}

// RecordValidationError counts an input validation failure.
func (r *Recorder) RecordValidationError(kind string) {
	r.validationErrors.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
