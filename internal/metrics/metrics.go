package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exports lookup outcomes and latencies.
type Recorder struct {
	lookups  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the lookup collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ghprofile_lookups_total",
			Help: "Total submitted lookups by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ghprofile_lookup_duration_seconds",
			Help:    "Upstream profile request latency by outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.lookups, r.duration)
	return r
}

// ObserveLookup counts one lookup. Lookups rejected before dispatch carry a
// zero duration and are not added to the latency histogram.
func (r *Recorder) ObserveLookup(outcome string, elapsed time.Duration) {
	r.lookups.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	}
}

// RegisterActiveScreens exports the number of live per-session screens.
func RegisterActiveScreens(reg prometheus.Registerer, count func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ghprofile_active_screens",
		Help: "Number of per-session lookup screens held in memory",
	}, func() float64 {
		return float64(count())
	}))
}
