package builder

import "errors"

// Sentinel errors for mesh generators.
var (
	// ErrTooFewCells indicates a generator parameter below its minimum
	// (QuadGrid needs rows, cols >= 1; TriangleFan n >= 1;
	// TriangulatedDisk n >= 3).
	ErrTooFewCells = errors.New("builder: too few cells requested")
)
