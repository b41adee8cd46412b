// Package chaoserr defines the sentinel errors every component in this
// module fails with. Every failure is a precondition violated by the
// caller — there is no I/O, so there are no transient failures to
// distinguish from permanent ones.
package chaoserr

import "errors"

var (
	// ErrShapeMismatch is returned when a multi-buffer Generate call is
	// given output buffers of unequal length.
	ErrShapeMismatch = errors.New("chaos: output buffers must have equal length")

	// ErrInvalidKey is returned when a key is shorter than 4 bytes, too
	// short to derive even a single seed lane from.
	ErrInvalidKey = errors.New("chaos: key must be at least 4 bytes")

	// ErrInvalidRange is returned by RNG range sampling when hi < lo.
	ErrInvalidRange = errors.New("chaos: range upper bound must be >= lower bound")

	// ErrInvalidArgument is returned when a size argument that must be
	// positive is zero or negative.
	ErrInvalidArgument = errors.New("chaos: size must be positive")

	// ErrUnsupportedPrimitive is returned when a primitive ID's
	// dimensionality or numeric domain doesn't match what the called
	// operation requires — e.g. passing a 2D primitive to Generate1D.
	ErrUnsupportedPrimitive = errors.New("chaos: primitive does not match the requested dimension/domain")
)
