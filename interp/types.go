// SPDX-License-Identifier: MIT

package interp

import (
	"github.com/katalvlaran/lutgrid/grid"
	"github.com/katalvlaran/lutgrid/table"
)

// State is the lifecycle stage of an Interpolator.
type State int

const (
	// Constructing: grid set, functions may still be added.
	Constructing State = iota

	// Validated: grid and functions checked for consistency; sealed.
	Validated

	// GradientsReady: gradient cache computed; read-only and queryable.
	GradientsReady
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Constructing:
		return "constructing"
	case Validated:
		return "validated"
	case GradientsReady:
		return "gradients-ready"
	default:
		return "unknown"
	}
}

// Interpolator evaluates the functions of one lookup table.
//
// tab is owned exclusively; spec is shared read-only. grads[k][node*D+d] is the slope of
// function k along dimension d at node. v holds the dimension-specific corner
// offsets selected at construction.
type Interpolator struct {
	name  string
	spec  *grid.Spec
	tab   *table.Table
	v     *variant
	grads [][]float64
	state State

	allowNonFinite bool
}

// Info summarises an Interpolator for diagnostics.
type Info struct {
	Name      string
	Dims      int
	Sizes     []int
	Nodes     int
	Functions int
	State     State
}
