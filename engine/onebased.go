// SPDX-License-Identifier: MIT

package engine

// FromOneBased converts a host table indexed from 1 into a slice indexed
// from 0. Keys ≤ 0 are ignored; gaps below the largest key read as zero.
//
//	FromOneBased(map[int]float64{1: 5, 3: 7}) == []float64{5, 0, 7}
func FromOneBased(m map[int]float64) []float64 {
	n := 0
	for k := range m {
		if k > n {
			n = k
		}
	}
	out := make([]float64, n)
	for k, v := range m {
		if k > 0 {
			out[k-1] = v
		}
	}
	return out
}

// FromOneBasedNested converts a 1-based table of 1-based tables, as used for
// both grids and function lists. Missing inner tables become empty slices,
// which construction then rejects.
func FromOneBasedNested(m map[int]map[int]float64) [][]float64 {
	n := 0
	for k := range m {
		if k > n {
			n = k
		}
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = FromOneBased(m[i+1])
	}
	return out
}

// ToOneBased converts a result slice into a 1-based host table.
func ToOneBased(vals []float64) map[int]float64 {
	out := make(map[int]float64, len(vals))
	for i, v := range vals {
		out[i+1] = v
	}
	return out
}
