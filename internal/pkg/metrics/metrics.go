// Package metrics exposes prometheus counters and gauges for the registries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "logistics"

// Metrics tracks admissions, rejections, removals and deliveries, plus the
// registry sizes and dangling references seen by the audit job.
// A nil *Metrics records nothing.
type Metrics struct {
	RecordsAdmitted    *prometheus.CounterVec
	RecordsRejected    *prometheus.CounterVec
	RecordsRemoved     *prometheus.CounterVec
	Deliveries         *prometheus.CounterVec
	RegistrySize       *prometheus.GaugeVec
	DanglingReferences prometheus.Gauge
}

// New registers all metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsAdmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_admitted_total",
			Help:      "Records admitted or updated, by kind",
		}, []string{"kind"}),
		RecordsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rejected_total",
			Help:      "Records rejected, by kind and violated rule",
		}, []string{"kind", "rule"}),
		RecordsRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_removed_total",
			Help:      "Records removed, by kind",
		}, []string{"kind"}),
		Deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipment_deliveries_total",
			Help:      "Delivery requests, by outcome",
		}, []string{"outcome"}),
		RegistrySize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_records",
			Help:      "Records per registry at the last audit",
		}, []string{"kind"}),
		DanglingReferences: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dangling_references",
			Help:      "Shipment references to removed records at the last audit",
		}),
	}
}

// IncrementAdmitted records an admitted or updated record.
func (m *Metrics) IncrementAdmitted(kind string) {
	if m == nil {
		return
	}
	m.RecordsAdmitted.WithLabelValues(kind).Inc()
}

// IncrementRejected records a rejected record and the rule it violated.
func (m *Metrics) IncrementRejected(kind, rule string) {
	if m == nil {
		return
	}
	m.RecordsRejected.WithLabelValues(kind, rule).Inc()
}

// IncrementRemoved records a removed record.
func (m *Metrics) IncrementRemoved(kind string) {
	if m == nil {
		return
	}
	m.RecordsRemoved.WithLabelValues(kind).Inc()
}

// IncrementDelivery records the outcome of a delivery request.
func (m *Metrics) IncrementDelivery(outcome string) {
	if m == nil {
		return
	}
	m.Deliveries.WithLabelValues(outcome).Inc()
}

// SetRegistrySize records the number of records of one kind.
func (m *Metrics) SetRegistrySize(kind string, n int) {
	if m == nil {
		return
	}
	m.RegistrySize.WithLabelValues(kind).Set(float64(n))
}

// SetDanglingReferences records the number of dangling references found.
func (m *Metrics) SetDanglingReferences(n int) {
	if m == nil {
		return
	}
	m.DanglingReferences.Set(float64(n))
}
