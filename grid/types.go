// SPDX-License-Identifier: MIT

package grid

// Dimension limits.
const (
	// MinDims is the smallest supported dimension count.
	MinDims = 1

	// MaxDims is the largest supported dimension count. A cell of a MaxDims
	// grid has 1<<MaxDims = 32 corners.
	MaxDims = 5

	// MinBreakpoints is the minimum number of breakpoints per dimension.
	MinBreakpoints = 2

	// MaxNodes bounds the total node count so that flat indices and sample
	// arrays stay addressable on 32-bit hosts.
	MaxNodes = 1<<31 - 1
)

// Spec is a validated rectilinear grid.
//
// flat holds all breakpoints, dimension after dimension; delimiters[d] is the
// breakpoint count of dimension d and offsets[d] its start in flat.
// strides are row-major (last dimension fastest); nodes = Π delimiters.
// steps[d] is the mean breakpoint spacing of dimension d, used by Locate to
// guess the bracketing interval before falling back to binary search.
type Spec struct {
	flat       []float64
	delimiters []int
	offsets    []int
	strides    []int
	steps      []float64
	nodes      int
}
