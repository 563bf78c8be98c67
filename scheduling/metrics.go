// SPDX-License-Identifier: MIT

package scheduling

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "lae"
	metricsSubsystem = "scheduler"
)

// Metrics holds the scheduler's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	tasks    *prometheus.CounterVec
	duration prometheus.Histogram
	inFlight prometheus.Gauge
	fatigue  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// Errors: the registration error (e.g. a duplicate registration).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "tasks_total",
			Help:      "Tasks completed by the scheduler, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "task_duration_seconds",
			Help:      "Wall-clock runtime of individual tasks.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "in_flight",
			Help:      "Tasks handed to a worker and not yet finished.",
		}),
		fatigue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "worker_fatigue",
			Help:      "Accumulated fatigue per worker.",
		}, []string{"worker"}),
	}
	for _, c := range []prometheus.Collector{m.tasks, m.duration, m.inFlight, m.fatigue} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) setInFlight(n int) {
	if m == nil {
		return
	}
	m.inFlight.Set(float64(n))
}

func (m *Metrics) observe(workerID int, d time.Duration, fatigue float64, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.tasks.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	m.fatigue.WithLabelValues(strconv.Itoa(workerID)).Set(fatigue)
}
