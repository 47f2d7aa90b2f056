// Package metrics exposes the Prometheus instrumentation for the
// inventory service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors the sweep and storage layers report into.
type Metrics struct {
	SweepPasses   prometheus.Counter
	SweepFailures prometheus.Counter
	UnitsExpired  prometheus.Counter

	DBOpenConns  prometheus.Gauge
	DBInUseConns prometheus.Gauge
	DBIdleConns  prometheus.Gauge
	DBPoolWaits  prometheus.Counter

	Registry *prometheus.Registry
}

// New builds the collectors and registers them on a dedicated registry,
// keeping the default registry's Go runtime collectors out of tests.
func New() *Metrics {
	m := &Metrics{
		SweepPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "autolot",
			Subsystem: "sweep",
			Name:      "passes_total",
			Help:      "Number of completed expiration sweep passes.",
		}),
		SweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "autolot",
			Subsystem: "sweep",
			Name:      "failures_total",
			Help:      "Number of expiration sweep passes that failed.",
		}),
		UnitsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "autolot",
			Subsystem: "sweep",
			Name:      "units_expired_total",
			Help:      "Number of units marked expired by the sweep.",
		}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "autolot",
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Open connections in the PostgreSQL pool.",
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "autolot",
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Connections currently executing statements.",
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "autolot",
			Subsystem: "db",
			Name:      "idle_connections",
			Help:      "Idle connections in the PostgreSQL pool.",
		}),
		DBPoolWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "autolot",
			Subsystem: "db",
			Name:      "pool_waits_total",
			Help:      "Times a caller waited for a pooled connection.",
		}),
		Registry: prometheus.NewRegistry(),
	}

	m.Registry.MustRegister(
		m.SweepPasses, m.SweepFailures, m.UnitsExpired,
		m.DBOpenConns, m.DBInUseConns, m.DBIdleConns, m.DBPoolWaits,
	)

	return m
}
