package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerMutations *prometheus.CounterVec
	statsDuration   prometheus.Histogram
	backupEvents    *prometheus.CounterVec
	unlockEvents    *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger document mutations",
			},
			[]string{"operation"},
		),
		statsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stats_compute_duration_milliseconds",
				Help:    "Monthly statistics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		backupEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backup_events_total",
				Help: "Total number of backup operations by outcome",
			},
			[]string{"operation", "status"},
		),
		unlockEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unlock_events_total",
				Help: "Total number of unlock attempts by method and outcome",
			},
			[]string{"method", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger.mutation":
		if operation := tags["operation"]; operation != "" {
			m.ledgerMutations.WithLabelValues(operation).Inc()
		}
	case "backup.event":
		m.backupEvents.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "unlock.event":
		m.unlockEvents.WithLabelValues(tags["method"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "stats.compute":
		m.statsDuration.Observe(float64(duration.Milliseconds()))
	}
}

// noopMetrics discards all recordings. Used in tests where a process-global
// prometheus registry would collide across suites.
type noopMetrics struct{}

// NewNoopMetrics creates a metrics recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return &noopMetrics{}
}

func (m *noopMetrics) IncrementCounter(string, map[string]string) {}
func (m *noopMetrics) RecordProcessingTime(string, time.Duration) {}
