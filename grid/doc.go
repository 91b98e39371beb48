// Package grid describes the rectilinear sampling grid of a lookup table.
//
// A grid has D ∈ [1, MaxDims] dimensions. Each dimension is a strictly
// increasing sequence of at least two breakpoints. The grid is stored in its
// flattened form (all sequences concatenated) together with a delimiter per
// dimension holding that sequence's length, so the flat form splits back
// deterministically:
//
//	dim0 = [0 1 2], dim1 = [0 10]
//	flat       = [0 1 2 0 10]
//	delimiters = [3 2]
//
// Grid nodes are addressed row-major: the last dimension varies fastest.
// For sizes [3 2] the node (i0, i1) lives at flat index i0*2 + i1. Every
// sample array defined over a Spec uses this convention.
//
// ✨ Key features:
//   - Build / FromFlat with full validation (ErrInvalidGrid, ErrUnsupportedDimension)
//   - Strides, Index and Coordinate for row-major node addressing
//   - Locate: bracketing-interval search with a uniform-spacing guess
//
// A Spec is immutable once built and safe for concurrent readers.
package grid
