// SPDX-License-Identifier: MIT

package interp

// Default sample policy.
const (
	// DefaultAllowNonFinite permits NaN/±Inf samples when true. When false,
	// Validate rejects them with ErrInvalidGrid, since they poison both the
	// gradient cache and every cell they touch.
	DefaultAllowNonFinite = false
)

const panicNameEmpty = "interp: WithName: name must not be empty"

// Option configures an Interpolator at construction.
type Option func(*Interpolator)

// WithName labels the Interpolator for diagnostics. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}
	return func(ip *Interpolator) { ip.name = name }
}

// WithAllowNonFinite lets sample arrays hold NaN or ±Inf.
func WithAllowNonFinite() Option {
	return func(ip *Interpolator) { ip.allowNonFinite = true }
}
