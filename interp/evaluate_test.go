package interp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lutgrid/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumSurface is f(d1,d2) = d1 + d2 over dim1 = [0,1,2], dim2 = [0,10],
// flattened with the last dimension varying fastest.
func sumSurface(t *testing.T) *interp.Interpolator {
	t.Helper()
	ip, err := interp.Build(
		[][]float64{{0, 1, 2}, {0, 10}},
		[][]float64{{0, 10, 1, 11, 2, 12}},
	)
	require.NoError(t, err)
	return ip
}

// approx compares float slices up to rounding.
var approx = cmpopts.EquateApprox(0, 1e-12)

// TestInterpolate_SumSurface is the reference 2-D scenario.
func TestInterpolate_SumSurface(t *testing.T) {
	ip := sumSurface(t)

	got, err := ip.Interpolate([]float64{1, 5}, false)
	require.NoError(t, err)
	require.Equal(t, []float64{6}, got)

	got, err = ip.Interpolate([]float64{1.5, 2.5}, true)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{4}, got, approx); diff != "" {
		t.Errorf("interior value mismatch (-want +got):\n%s", diff)
	}
}

// TestInterpolate_LinearMidpoint checks (a+b)/2 on a two-point grid.
func TestInterpolate_LinearMidpoint(t *testing.T) {
	for _, ab := range [][2]float64{{0, 1}, {-3, 7}, {2.5, 2.5}, {1e6, -1e6}} {
		ip, err := interp.Build([][]float64{{0, 1}}, [][]float64{{ab[0], ab[1]}})
		require.NoError(t, err)

		got, err := ip.Interpolate([]float64{0.5}, false)
		require.NoError(t, err)
		assert.Equal(t, (ab[0]+ab[1])/2, got[0], "a=%g b=%g", ab[0], ab[1])
	}
}

// TestInterpolate_ExactAtNodes queries every node of a non-uniform 3-D grid.
func TestInterpolate_ExactAtNodes(t *testing.T) {
	axes := [][]float64{{-1, 0, 0.3, 4}, {0, 10}, {1, 2, 2.5}}
	rng := rand.New(rand.NewSource(7))
	f1 := make([]float64, 4*2*3)
	f2 := make([]float64, len(f1))
	for i := range f1 {
		f1[i] = rng.NormFloat64() * 100
		f2[i] = rng.Float64()
	}
	ip, err := interp.Build(axes, [][]float64{f1, f2})
	require.NoError(t, err)

	spec := ip.Grid()
	for node := 0; node < spec.NodeCount(); node++ {
		idx := spec.Coordinate(node)
		point := make([]float64, len(idx))
		for d, i := range idx {
			point[d] = axes[d][i]
		}
		for _, closed := range []bool{false, true} {
			got, err := ip.Interpolate(point, closed)
			require.NoError(t, err)
			require.Equal(t, []float64{f1[node], f2[node]}, got, "node %v closed=%v", idx, closed)
		}
	}
}

// TestInterpolate_ClosedRangeTotal ensures clamped queries always answer and
// stay within the sampled range.
func TestInterpolate_ClosedRangeTotal(t *testing.T) {
	ip := sumSurface(t)

	points := [][]float64{
		{-1e300, -1e300}, {1e300, 1e300}, {-5, 5}, {5, -5},
		{math.Inf(1), 3}, {1, math.Inf(-1)},
	}
	for _, p := range points {
		got, err := ip.Interpolate(p, true)
		require.NoError(t, err, "point %v", p)
		require.GreaterOrEqual(t, got[0], 0.0, "point %v", p)
		require.LessOrEqual(t, got[0], 12.0, "point %v", p)
	}

	got, err := ip.Interpolate([]float64{100, -100}, true)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, got, "clamped to node (2, 0)")
}

// TestInterpolate_OpenRangeExtrapolates uses the boundary gradients.
func TestInterpolate_OpenRangeExtrapolates(t *testing.T) {
	ip := sumSurface(t)

	cases := []struct {
		point []float64
		want  float64
	}{
		{[]float64{3, 15}, 18},
		{[]float64{-1, 5}, 4},
		{[]float64{1, -10}, -9},
		{[]float64{-2, -20}, -22},
	}
	for _, tc := range cases {
		got, err := ip.Interpolate(tc.point, false)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got[0], 1e-12, "point %v", tc.point)
	}

	// Beyond the last segment a 1-D curve continues that segment's slope.
	curve, err := interp.Build([][]float64{{0, 1, 2}}, [][]float64{{0, 1, 4}})
	require.NoError(t, err)
	got, err := curve.Interpolate([]float64{3}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, got)
	got, err = curve.Interpolate([]float64{-1}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, got)
}

// TestInterpolate_OpposingBoundarySlopes covers a saddle whose boundary
// corners slope in opposite directions: the blended slope decides, so huge
// and infinite excesses stay finite where it cancels.
func TestInterpolate_OpposingBoundarySlopes(t *testing.T) {
	// f(0,0)=0 f(0,1)=1 f(1,0)=1 f(1,1)=0; ∂f/∂x is +1 at (1,0), -1 at (1,1).
	ip, err := interp.Build([][]float64{{0, 1}, {0, 1}}, [][]float64{{0, 1, 1, 0}})
	require.NoError(t, err)

	cases := []struct {
		name  string
		point []float64
		want  float64
	}{
		{"+Inf cancels", []float64{math.Inf(1), 0.5}, 0.5},
		{"-Inf cancels", []float64{math.Inf(-1), 0.5}, 0.5},
		{"huge cancels", []float64{1e308, 0.5}, 0.5},
		{"+Inf rising", []float64{math.Inf(1), 0.25}, math.Inf(1)},
		{"-Inf on rising edge", []float64{math.Inf(-1), 0.25}, math.Inf(-1)},
		{"finite blend", []float64{3, 0.25}, 0.75 + 2*0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ip.Interpolate(tc.point, false)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.False(t, math.IsNaN(got[0]), "point %v", tc.point)
			if math.IsInf(tc.want, 0) {
				assert.Equal(t, tc.want, got[0])
				return
			}
			assert.InDelta(t, tc.want, got[0], 1e-12)
		})
	}
}

// TestInterpolate_BoundaryContinuity checks both policies agree on the
// boundary of a non-linear surface.
func TestInterpolate_BoundaryContinuity(t *testing.T) {
	axes := [][]float64{{0, 1, 3}, {-2, 0, 2, 5}}
	f := make([]float64, 12)
	for i := range f {
		f[i] = float64(i*i) - 3*float64(i)
	}
	ip, err := interp.Build(axes, [][]float64{f})
	require.NoError(t, err)

	boundary := [][]float64{
		{0, -1}, {3, -1}, {0.5, -2}, {0.5, 5}, {0, -2}, {3, 5}, {2, 5}, {3, 0.7},
	}
	for _, p := range boundary {
		closed, err := ip.Interpolate(p, true)
		require.NoError(t, err)
		open, err := ip.Interpolate(p, false)
		require.NoError(t, err)
		require.Equal(t, closed, open, "point %v", p)
	}
}

// TestInterpolate_NoOvershoot samples between nodes of a monotone 1-D curve.
func TestInterpolate_NoOvershoot(t *testing.T) {
	xs := []float64{0, 0.5, 2, 2.1, 7}
	ys := []float64{-4, 0, 0, 9, 30}
	ip, err := interp.Build([][]float64{xs}, [][]float64{ys})
	require.NoError(t, err)

	for i := 0; i+1 < len(xs); i++ {
		prev := ys[i]
		for s := 1; s <= 50; s++ {
			x := xs[i] + (xs[i+1]-xs[i])*float64(s)/50
			got, err := ip.Interpolate([]float64{x}, false)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got[0], prev-1e-12, "x=%g", x)
			require.LessOrEqual(t, got[0], ys[i+1]+1e-12, "x=%g", x)
			prev = got[0]
		}
	}
}

// TestInterpolate_FunctionOrder returns one value per function in order.
func TestInterpolate_FunctionOrder(t *testing.T) {
	ip, err := interp.Build([][]float64{{0, 1}}, [][]float64{{0, 10}, {5, 5}, {-1, 1}})
	require.NoError(t, err)

	got, err := ip.Interpolate([]float64{0.25}, false)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{2.5, 5, -0.5}, got, approx); diff != "" {
		t.Errorf("function order mismatch (-want +got):\n%s", diff)
	}
}

// TestInterpolate_BadPoint covers point-length and NaN guards.
func TestInterpolate_BadPoint(t *testing.T) {
	ip := sumSurface(t)

	_, err := ip.Interpolate([]float64{1}, false)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)

	_, err = ip.Interpolate([]float64{1, 2, 3}, true)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)

	_, err = ip.Interpolate([]float64{math.NaN(), 2}, true)
	require.ErrorIs(t, err, interp.ErrInvalidPoint)
}

// TestInterpolate_Deterministic repeats a query and expects identical output.
func TestInterpolate_Deterministic(t *testing.T) {
	ip := sumSurface(t)
	first, err := ip.Interpolate([]float64{0.3, 7.7}, false)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ip.Interpolate([]float64{0.3, 7.7}, false)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
