// SPDX-License-Identifier: MIT

package registry

import "errors"

var (
	// ErrNotFound indicates a handle that was never issued by this registry
	// (or was dropped by Close).
	ErrNotFound = errors.New("registry: handle not found")

	// ErrClosed indicates use of a registry after Close.
	ErrClosed = errors.New("registry: closed")

	// ErrNilInterpolator indicates Register was called with nil.
	ErrNilInterpolator = errors.New("registry: nil interpolator")
)
