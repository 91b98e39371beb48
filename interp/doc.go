// Package interp evaluates sampled functions on a rectilinear grid by
// multilinear interpolation.
//
// 🚀 What is it?
//
//	An Interpolator owns one grid.Spec, one table.Table with one or more
//	sample arrays, and a gradient cache. A query point is located cell by
//	cell along every dimension and the 2^D corner samples of the enclosing
//	cell are blended with weights Π_d (t_d or 1-t_d). One value is returned
//	per function, in registration order.
//
// ⚙️ Boundary policy:
//
//   - closed range: out-of-range coordinates are clamped to the grid bounds,
//     so every finite query yields a value within the sampled range.
//   - open range: out-of-range coordinates are extrapolated linearly from
//     the boundary with the precomputed one-sided gradient of the nearest
//     boundary node. On the boundary itself both policies agree exactly.
//
// Lifecycle:
//
//	Constructing ──Validate──▶ Validated ──CalculateGradients──▶ GradientsReady
//
// Functions can only be added while Constructing; Interpolate fails with
// ErrNotReady before GradientsReady. Build runs the whole sequence and
// returns a ready Interpolator or an error, never a partial one.
//
// Performance:
//
//   - Build:       O(nodes × D × functions) for the gradient pass
//   - Interpolate: O(D log n) interval search + O(2^D × functions) blend,
//     at most 32 corners for D = 5
//
// A ready Interpolator is immutable and safe for concurrent use.
package interp
