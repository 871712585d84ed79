package relation

import "errors"

// Sentinel errors for relation construction.
var (
	// ErrNilTopology indicates a nil half-edge structure.
	ErrNilTopology = errors.New("relation: nil topology")

	// ErrUnsupportedPair indicates a rank pair outside the closed set of
	// supported relations.
	ErrUnsupportedPair = errors.New("relation: unsupported rank pair")
)
