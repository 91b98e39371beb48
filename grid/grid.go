// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"strings"
)

// Build flattens per-dimension breakpoint sequences into a validated Spec.
// The input is deep-copied; later changes to it do not affect the Spec.
//
// Errors:
//   - ErrUnsupportedDimension if len(perDimension) ∉ [MinDims, MaxDims].
//   - ErrInvalidGrid if any sequence is shorter than MinBreakpoints,
//     not strictly increasing or holds NaN/±Inf.
//
// Complexity: O(total breakpoints).
func Build(perDimension [][]float64) (*Spec, error) {
	delimiters := make([]int, len(perDimension))
	total := 0
	for d, seq := range perDimension {
		delimiters[d] = len(seq)
		total += len(seq)
	}
	flat := make([]float64, 0, total)
	for _, seq := range perDimension {
		flat = append(flat, seq...)
	}

	return newSpec(flat, delimiters)
}

// FromFlat rebuilds a Spec from its flattened breakpoints and delimiters.
// Both slices are copied.
// Returns the same errors as Build, plus ErrInvalidGrid when the delimiters
// do not sum to len(flat).
func FromFlat(flat []float64, delimiters []int) (*Spec, error) {
	return newSpec(append([]float64(nil), flat...), append([]int(nil), delimiters...))
}

// newSpec validates the raw parts and derives offsets, strides and steps.
// It takes ownership of flat and delimiters.
func newSpec(flat []float64, delimiters []int) (*Spec, error) {
	// Stage 1 (Validate): reject malformed input before deriving anything.
	if err := validate(flat, delimiters); err != nil {
		return nil, err
	}

	// Stage 2 (Prepare): per-dimension offsets into flat and mean spacing.
	dims := len(delimiters)
	s := &Spec{
		flat:       flat,
		delimiters: delimiters,
		offsets:    make([]int, dims),
		strides:    make([]int, dims),
		steps:      make([]float64, dims),
	}
	off := 0
	for d, n := range delimiters {
		s.offsets[d] = off
		s.steps[d] = (flat[off+n-1] - flat[off]) / float64(n-1)
		off += n
	}

	// Stage 3 (Finalize): row-major strides, last dimension fastest.
	stride := 1
	for d := dims - 1; d >= 0; d-- {
		s.strides[d] = stride
		stride *= delimiters[d]
	}
	s.nodes = stride

	return s, nil
}

// validate checks the flattened representation against every grid invariant.
func validate(flat []float64, delimiters []int) error {
	dims := len(delimiters)
	if dims < MinDims || dims > MaxDims {
		return gridErrorf(ErrUnsupportedDimension, "%d dimensions, want %d..%d", dims, MinDims, MaxDims)
	}

	total, nodes := 0, 1
	for d, n := range delimiters {
		if n < MinBreakpoints {
			return gridErrorf(ErrInvalidGrid, "dimension %d has %d breakpoints, want at least %d", d, n, MinBreakpoints)
		}
		if nodes > MaxNodes/n {
			return gridErrorf(ErrInvalidGrid, "node count exceeds %d", MaxNodes)
		}
		nodes *= n
		total += n
	}
	if total != len(flat) {
		return gridErrorf(ErrInvalidGrid, "delimiters sum to %d, flattened grid has %d values", total, len(flat))
	}

	off := 0
	for d, n := range delimiters {
		seq := flat[off : off+n]
		for i, x := range seq {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return gridErrorf(ErrInvalidGrid, "dimension %d breakpoint %d is not finite", d, i)
			}
			// !(a < b) also rejects the NaN case on the previous value.
			if i > 0 && !(seq[i-1] < x) {
				return gridErrorf(ErrInvalidGrid, "dimension %d not strictly increasing at breakpoint %d (%g after %g)", d, i, x, seq[i-1])
			}
		}
		off += n
	}

	return nil
}

// Validate re-checks every invariant of s.
// A Spec obtained from Build or FromFlat always passes; Validate exists so
// that owners of a Spec can assert consistency after assembling other
// structures around it.
func (s *Spec) Validate() error {
	if s == nil {
		return gridErrorf(ErrInvalidGrid, "nil spec")
	}
	if err := validate(s.flat, s.delimiters); err != nil {
		return err
	}
	if len(s.strides) != len(s.delimiters) || len(s.offsets) != len(s.delimiters) {
		return gridErrorf(ErrInvalidGrid, "derived tables out of sync with %d dimensions", len(s.delimiters))
	}

	return nil
}

// Dims returns the dimension count D.
func (s *Spec) Dims() int {
	return len(s.delimiters)
}

// Size returns the breakpoint count of dimension d.
func (s *Spec) Size(d int) int {
	return s.delimiters[d]
}

// Sizes returns a copy of the per-dimension breakpoint counts.
func (s *Spec) Sizes() []int {
	return append([]int(nil), s.delimiters...)
}

// Delimiters is an alias of Sizes named after the flattened encoding.
func (s *Spec) Delimiters() []int {
	return s.Sizes()
}

// Flat returns a copy of the concatenated breakpoints.
func (s *Spec) Flat() []float64 {
	return append([]float64(nil), s.flat...)
}

// Breakpoints returns a copy of the breakpoints of dimension d.
func (s *Spec) Breakpoints(d int) []float64 {
	return append([]float64(nil), s.axis(d)...)
}

// Split returns the per-dimension breakpoint sequences, the inverse of Build.
// Complexity: O(total breakpoints).
func (s *Spec) Split() [][]float64 {
	out := make([][]float64, len(s.delimiters))
	for d := range out {
		out[d] = s.Breakpoints(d)
	}

	return out
}

// NodeCount returns Π sizes, the required length of every sample array.
func (s *Spec) NodeCount() int {
	return s.nodes
}

// Strides returns a copy of the row-major strides.
func (s *Spec) Strides() []int {
	return append([]int(nil), s.strides...)
}

// Stride returns the row-major stride of dimension d.
func (s *Spec) Stride(d int) int {
	return s.strides[d]
}

// Bounds returns the first and last breakpoint of dimension d.
func (s *Spec) Bounds(d int) (lo, hi float64) {
	a := s.axis(d)
	return a[0], a[len(a)-1]
}

// Clamp pins x to the bounds of dimension d.
func (s *Spec) Clamp(d int, x float64) float64 {
	lo, hi := s.Bounds(d)
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Index maps per-dimension node indices to a flat, row-major node index.
// It does not bounds-check; idx must hold Dims() in-range values.
// Complexity: O(D).
func (s *Spec) Index(idx []int) int {
	flat := 0
	for d, i := range idx {
		flat += i * s.strides[d]
	}
	return flat
}

// Coordinate converts a flat node index back to per-dimension indices.
// Complexity: O(D).
func (s *Spec) Coordinate(flat int) []int {
	idx := make([]int, len(s.delimiters))
	for d := range idx {
		idx[d] = flat / s.strides[d]
		flat %= s.strides[d]
	}
	return idx
}

// Shape renders the sizes as "3x2" for logs and diagnostics.
func (s *Spec) Shape() string {
	parts := make([]string, len(s.delimiters))
	for d, n := range s.delimiters {
		parts[d] = fmt.Sprint(n)
	}
	return strings.Join(parts, "x")
}

// axis returns the internal (shared) breakpoint slice of dimension d.
func (s *Spec) axis(d int) []float64 {
	off := s.offsets[d]
	return s.flat[off : off+s.delimiters[d]]
}
