package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dtengine"

// Recorder publishes dtengine's operational metrics to a Prometheus
// registry. The zero value is unusable; construct one with New.
type Recorder struct {
	changesApplied  prometheus.Counter
	changesRejected *prometheus.CounterVec
	evaluationTime  prometheus.Histogram
	sliceCacheSize  prometheus.Gauge
	sliceCacheHits  prometheus.Counter
}

// New creates a Recorder and registers its collectors with reg. Passing nil
// uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		changesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_applied_total",
			Help:      "Total number of Change values successfully applied to a rule set.",
		}),
		changesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changes_rejected_total",
			Help:      "Total number of Change values rejected, by reason.",
		}, []string{"reason"}),
		evaluationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of a single tree evaluation call.",
			Buckets:   prometheus.DefBuckets,
		}),
		sliceCacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slice_cache_size",
			Help:      "Number of per-slice sub-trees currently memoized by a SLICED tree.",
		}),
		sliceCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slice_cache_hits_total",
			Help:      "Total number of SLICED tree evaluations served from the per-slice cache.",
		}),
	}

	reg.MustRegister(r.changesApplied, r.changesRejected, r.evaluationTime, r.sliceCacheSize, r.sliceCacheHits)
	return r
}

// RecordChangeApplied increments the applied-changes counter.
func (r *Recorder) RecordChangeApplied() {
	r.changesApplied.Inc()
}

// RecordChangeRejected increments the rejected-changes counter for reason.
func (r *Recorder) RecordChangeRejected(reason string) {
	r.changesRejected.WithLabelValues(reason).Inc()
}

// ObserveEvaluationDuration records how long a tree evaluation took.
func (r *Recorder) ObserveEvaluationDuration(d time.Duration) {
	r.evaluationTime.Observe(d.Seconds())
}

// SetSliceCacheSize reports a SLICED tree's current memoized-entry count.
func (r *Recorder) SetSliceCacheSize(n int) {
	r.sliceCacheSize.Set(float64(n))
}

// RecordSliceCacheHit increments the slice-cache hit counter.
func (r *Recorder) RecordSliceCacheHit() {
	r.sliceCacheHits.Inc()
}
