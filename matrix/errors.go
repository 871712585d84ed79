package matrix

import "errors"

// Sentinel errors for matrix assembly and access.
var (
	// ErrNilTopology indicates a nil half-edge structure.
	ErrNilTopology = errors.New("matrix: nil topology")

	// ErrBadShape indicates non-positive matrix dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
