// SPDX-License-Identifier: MIT

package interp

import "fmt"

// CalculateGradients fills the gradient cache and moves the Interpolator to
// GradientsReady. It is a no-op when gradients are already computed.
//
// For node i along dimension d with breakpoints b and samples f:
//
//	i = 0        forward:  (f[i+1] - f[i])   / (b[1] - b[0])
//	i = n-1      backward: (f[i]   - f[i-1]) / (b[n-1] - b[n-2])
//	otherwise    central:  (f[i+1] - f[i-1]) / (b[i+1] - b[i-1])
//
// where f[i±1] are the neighbours one stride away along d.
// Complexity: O(nodes × D × functions) time and memory.
func (ip *Interpolator) CalculateGradients() error {
	switch ip.state {
	case GradientsReady:
		return nil
	case Validated:
	default:
		return fmt.Errorf("interp.CalculateGradients in state %s: %w", ip.state, ErrNotReady)
	}

	dims, nodes := ip.spec.Dims(), ip.spec.NodeCount()
	axes := ip.spec.Split()

	grads := make([][]float64, ip.tab.Len())
	for k := range grads {
		f := ip.tab.Samples(k)
		g := make([]float64, nodes*dims)
		for node := 0; node < nodes; node++ {
			for d := 0; d < dims; d++ {
				g[node*dims+d] = slope(f, axes[d], ip.spec.Stride(d), node)
			}
		}
		grads[k] = g
	}

	ip.grads = grads
	ip.state = GradientsReady

	return nil
}

// slope is the finite-difference derivative of f at node along the axis b
// whose stride is stride.
func slope(f, b []float64, stride, node int) float64 {
	n := len(b)
	i := (node / stride) % n
	switch i {
	case 0:
		return (f[node+stride] - f[node]) / (b[1] - b[0])
	case n - 1:
		return (f[node] - f[node-stride]) / (b[n-1] - b[n-2])
	default:
		return (f[node+stride] - f[node-stride]) / (b[i+1] - b[i-1])
	}
}

// Gradient returns the cached slope of function k along dimension d at the
// node with per-dimension indices idx.
func (ip *Interpolator) Gradient(k, d int, idx []int) (float64, error) {
	if ip.state != GradientsReady {
		return 0, fmt.Errorf("interp.Gradient: %w", ErrNotReady)
	}
	if k < 0 || k >= len(ip.grads) || d < 0 || d >= ip.spec.Dims() || len(idx) != ip.spec.Dims() {
		return 0, fmt.Errorf("interp.Gradient(%d,%d,%v): %w", k, d, idx, ErrDimensionMismatch)
	}
	for dd, i := range idx {
		if i < 0 || i >= ip.spec.Size(dd) {
			return 0, fmt.Errorf("interp.Gradient(%d,%d,%v): %w", k, d, idx, ErrDimensionMismatch)
		}
	}
	return ip.grads[k][ip.spec.Index(idx)*ip.spec.Dims()+d], nil
}
