package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	operationsTotal    *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	appointmentsStored prometheus.Gauge
	servicesStored     prometheus.Gauge
}

// NewPrometheusMetrics registers and returns the metrics recorder backing
// the /metrics endpoint.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spa_operations_total",
				Help: "Total number of business operations by name and status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spa_operation_duration_milliseconds",
				Help:    "Business operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		appointmentsStored: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "spa_appointments_stored",
				Help: "Current number of appointments in the store",
			},
		),
		servicesStored: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "spa_services_stored",
				Help: "Current number of services in the catalog",
			},
		),
	}
}

// IncrementCounter increments the operation counter with the given labels.
// Expected labels: "status"; the metric name doubles as the operation label.
func (m *PrometheusMetrics) IncrementCounter(name string, labels map[string]string) {
	status := labels["status"]
	if status == "" {
		status = "success"
	}
	m.operationsTotal.WithLabelValues(name, status).Inc()
}

// RecordProcessingTime records the duration of one business operation.
func (m *PrometheusMetrics) RecordProcessingTime(operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}

// SetGauge updates one of the stored-entity gauges.
func (m *PrometheusMetrics) SetGauge(name string, value float64) {
	switch name {
	case "appointments_stored":
		m.appointmentsStored.Set(value)
	case "services_stored":
		m.servicesStored.Set(value)
	}
}
