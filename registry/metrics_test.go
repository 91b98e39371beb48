package registry_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lutgrid/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestMetrics_CountsRegistrationsAndQueries checks every collector moves.
func TestMetrics_CountsRegistrationsAndQueries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := registry.NewMetrics(reg, "lutgrid", prometheus.Labels{"engine": "test"})
	r := registry.New(registry.WithMetrics(m))
	require.Same(t, m, r.Metrics())

	h, err := r.Register(mustLine(t, 0, 1))
	require.NoError(t, err)
	_, err = r.Register(mustLine(t, 1, 2))
	require.NoError(t, err)

	_, err = r.Interpolate(h, []float64{0.5}, false)
	require.NoError(t, err)
	_, err = r.Interpolate(h, []float64{0.5, 1}, false)
	require.Error(t, err)
	_, err = r.Interpolate(99, []float64{0.5}, false)
	require.Error(t, err)
	m.RecordBuildFailure(registry.CauseDimensionMismatch)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 6, count, "created, live, 1 failure series, 3 query series")

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP lutgrid_registry_interpolators_live Interpolators currently held by the registry
# TYPE lutgrid_registry_interpolators_live gauge
lutgrid_registry_interpolators_live{engine="test"} 2
# HELP lutgrid_registry_queries_total Interpolation queries by result
# TYPE lutgrid_registry_queries_total counter
lutgrid_registry_queries_total{engine="test",result="error"} 1
lutgrid_registry_queries_total{engine="test",result="not_found"} 1
lutgrid_registry_queries_total{engine="test",result="ok"} 1
`), "lutgrid_registry_interpolators_live", "lutgrid_registry_queries_total"))

	require.NoError(t, r.Close())
	count, err = testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Zero(t, count, "Close unregisters every collector")
	require.NoError(t, r.Close(), "second Close leaves the registerer alone")

	// The names are free again for a successor with the same labels.
	require.NotPanics(t, func() {
		registry.NewMetrics(reg, "lutgrid", prometheus.Labels{"engine": "test"})
	})
}

// TestMetrics_NilSafe ensures a registry without metrics works.
func TestMetrics_NilSafe(t *testing.T) {
	var m *registry.Metrics
	require.NotPanics(t, func() { m.RecordBuildFailure(registry.CauseOther) })

	r := registry.New()
	require.Nil(t, r.Metrics())
	h, err := r.Register(mustLine(t, 0, 1))
	require.NoError(t, err)
	_, err = r.Interpolate(h, []float64{0}, true)
	require.NoError(t, err)
}
