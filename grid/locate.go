// SPDX-License-Identifier: MIT

package grid

import "sort"

// Locate finds the interval of dimension d that brackets x.
//
// It returns the lower breakpoint index i ∈ [0, Size(d)-2] and the fractional
// position t = (x - b[i]) / (b[i+1] - b[i]). For x inside the bounds t lies in
// [0, 1]; a breakpoint maps to t = 0 of the interval it opens, except the last
// breakpoint, which maps to t = 1 of the final interval. Points outside the
// bounds land in the first or last interval with t < 0 or t > 1; callers
// that want clamping should pass Clamp(d, x).
//
// The interval is first guessed assuming uniform spacing, which is exact for
// evenly spaced axes, then found by binary search.
// Complexity: O(1) for uniform axes, O(log n) otherwise.
func (s *Spec) Locate(d int, x float64) (i int, t float64) {
	a := s.axis(d)
	i = s.bracket(d, a, x)
	return i, (x - a[i]) / (a[i+1] - a[i])
}

// bracket returns the largest i ≤ len(a)-2 with a[i] ≤ x, or 0 when x < a[0].
func (s *Spec) bracket(d int, a []float64, x float64) int {
	last := len(a) - 2

	// Guess under the assumption of uniform spacing.
	if g := int((x - a[0]) / s.steps[d]); g >= 0 && g <= last {
		if a[g] <= x && (x < a[g+1] || g == last) {
			return g
		}
	}

	// Binary search for the first breakpoint strictly above x.
	i := sort.Search(len(a), func(k int) bool { return a[k] > x }) - 1
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}
