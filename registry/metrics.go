// SPDX-License-Identifier: MIT

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "result" label.
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// Build failure causes used as the "cause" label.
const (
	CauseInvalidGrid          = "invalid_grid"
	CauseUnsupportedDimension = "unsupported_dimension"
	CauseDimensionMismatch    = "dimension_mismatch"
	CauseOther                = "other"
)

// Metrics holds the Prometheus collectors of one Registry.
// All methods are safe on a nil *Metrics and then do nothing.
type Metrics struct {
	reg      prometheus.Registerer
	created  prometheus.Counter
	live     prometheus.Gauge
	failures *prometheus.CounterVec
	queries  *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg.
// constLabels distinguish several registries sharing one reg; it may be nil.
// Panics if the collectors are already registered on reg, like promauto.
func NewMetrics(reg prometheus.Registerer, namespace string, constLabels prometheus.Labels) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		created: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "registry",
			Name:        "interpolators_created_total",
			Help:        "Interpolators successfully built and registered",
			ConstLabels: constLabels,
		}),
		live: f.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "registry",
			Name:        "interpolators_live",
			Help:        "Interpolators currently held by the registry",
			ConstLabels: constLabels,
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "registry",
			Name:        "build_failures_total",
			Help:        "Rejected interpolator constructions by cause",
			ConstLabels: constLabels,
		}, []string{"cause"}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "registry",
			Name:        "queries_total",
			Help:        "Interpolation queries by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// RecordBuildFailure counts a rejected construction under cause.
func (m *Metrics) RecordBuildFailure(cause string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(cause).Inc()
}

func (m *Metrics) added(live int) {
	if m == nil {
		return
	}
	m.created.Inc()
	m.live.Set(float64(live))
}

func (m *Metrics) query(result string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(result).Inc()
}

// unregister removes every collector from the Registerer it was created on,
// so a closed registry leaves no stale series behind.
func (m *Metrics) unregister() {
	if m == nil {
		return
	}
	m.reg.Unregister(m.created)
	m.reg.Unregister(m.live)
	m.reg.Unregister(m.failures)
	m.reg.Unregister(m.queries)
}
