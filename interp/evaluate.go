// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lutgrid/grid"
)

// Interpolate evaluates every function at point and returns one value per
// function, in registration order.
//
// Algorithm Outline:
//  1. For every dimension d clamp x_d to [min_d, max_d] and locate the
//     bracketing interval i_d with fraction t_d ∈ [0, 1].
//  2. With closedRange=false remember the excess e_d = x_d - clamp(x_d).
//  3. Blend the 2^D corners of the cell, samples and slopes alike:
//     value = Σ_c w_c·f_c + Σ_d s_d·e_d, s_d = Σ_c w_c·g_{c,d},
//     w_c = Π_d (t_d | 1-t_d).
//
// Slopes are blended before they meet the excess, so opposing corner slopes
// cancel even for an infinite e_d instead of producing NaN.
//
// Corners with zero weight are skipped, so a query on a node returns the
// stored sample exactly. On the boundary e_d = 0 and both policies agree.
//
// Errors: ErrNotReady before GradientsReady, ErrDimensionMismatch when
// len(point) ≠ D, ErrInvalidPoint for a NaN coordinate.
// Complexity: O(D log n + 2^D × functions).
func (ip *Interpolator) Interpolate(point []float64, closedRange bool) ([]float64, error) {
	if ip.state != GradientsReady {
		return nil, fmt.Errorf("interp.Interpolate in state %s: %w", ip.state, ErrNotReady)
	}
	dims := ip.spec.Dims()
	if len(point) != dims {
		return nil, fmt.Errorf("interp.Interpolate: point has %d coordinates, grid has %d dimensions: %w",
			len(point), dims, ErrDimensionMismatch)
	}

	var (
		t       [grid.MaxDims]float64
		excess  [grid.MaxDims]float64
		base    int
		outside bool
	)
	for d, x := range point {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("interp.Interpolate: coordinate %d is NaN: %w", d, ErrInvalidPoint)
		}
		c := ip.spec.Clamp(d, x)
		if !closedRange && c != x {
			excess[d] = x - c
			outside = true
		}
		i, td := ip.spec.Locate(d, c)
		base += i * ip.spec.Stride(d)
		t[d] = td
	}

	out := make([]float64, ip.tab.Len())
	var slopes []float64
	if outside {
		slopes = make([]float64, len(out)*dims)
	}
	for c, off := range ip.v.offsets {
		w := 1.0
		for d := 0; d < dims; d++ {
			if c&(1<<d) != 0 {
				w *= t[d]
			} else {
				w *= 1 - t[d]
			}
		}
		if w == 0 {
			continue
		}

		node := base + off
		for k := range out {
			out[k] += w * ip.tab.At(k, node)
			if outside {
				g := ip.grads[k][node*dims : (node+1)*dims]
				s := slopes[k*dims : (k+1)*dims]
				for d := range s {
					if excess[d] != 0 {
						s[d] += w * g[d]
					}
				}
			}
		}
	}

	if outside {
		for k := range out {
			out[k] += extrapolation(slopes[k*dims:(k+1)*dims], excess[:dims])
		}
	}

	return out, nil
}

// extrapolation is the linear correction Σ s_d·e_d for the blended slopes s.
// A zero slope contributes nothing even for an infinite excess.
func extrapolation(slopes, excess []float64) float64 {
	sum := 0.0
	for d, e := range excess {
		if e != 0 && slopes[d] != 0 {
			sum += slopes[d] * e
		}
	}
	return sum
}
