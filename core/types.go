// File: types.go
// Role: Shape enumeration and the immutable Connectivity tuple.
// Determinism:
//   - Connectivity preserves insertion order of its indices exactly.
// Concurrency:
//   - Connectivity is immutable after Connect; safe for concurrent readers.

package core

import "fmt"

// Shape tags a Connectivity tuple with its polytope kind.
// The enumeration is closed: topology algorithms switch over it and treat
// any other value as a programming error.
type Shape int

const (
	// Segment is a rank-1 polytope with exactly two endpoints.
	Segment Shape = iota

	// Triangle is a flat polygon with exactly three vertices.
	Triangle

	// Quadrangle is a flat polygon with exactly four vertices.
	Quadrangle

	// Ngon is a general flat polygon with three or more vertices.
	Ngon
)

// Shape arity bounds (no magic literals in validation code).
const (
	segmentArity    = 2
	triangleArity   = 3
	quadrangleArity = 4
	minNgonArity    = 3
)

// String returns the lowercase shape name, or "shape(n)" for unknown tags.
func (s Shape) String() string {
	switch s {
	case Segment:
		return "segment"
	case Triangle:
		return "triangle"
	case Quadrangle:
		return "quadrangle"
	case Ngon:
		return "ngon"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParamDim reports the parametric dimension of the shape:
// 1 for segments, 2 for flat polygons.
func (s Shape) ParamDim() int {
	if s == Segment {
		return 1
	}

	return 2
}

// accepts reports whether a tuple of n indices is valid for the shape.
func (s Shape) accepts(n int) bool {
	switch s {
	case Segment:
		return n == segmentArity
	case Triangle:
		return n == triangleArity
	case Quadrangle:
		return n == quadrangleArity
	case Ngon:
		return n >= minNgonArity
	default:
		return false
	}
}

// Connectivity is an immutable ordered tuple of 1-based vertex indices
// labeled with a Shape. For polygonal shapes the tuple is cyclic: index i
// connects to index (i+1) mod N.
//
// Construct with Connect; the zero value is not a valid connectivity.
type Connectivity struct {
	shape   Shape
	indices []int
}

// Connect builds a Connectivity from a shape tag and an ordered index tuple.
// The tuple is copied, so callers may reuse their slice.
//
// Returns ErrInvalidShape when the tuple length does not match the shape
// arity, and ErrBadIndex when any index is not positive.
// Complexity: O(N).
func Connect(shape Shape, indices ...int) (Connectivity, error) {
	if !shape.accepts(len(indices)) {
		return Connectivity{}, fmt.Errorf("%s with %d indices: %w", shape, len(indices), ErrInvalidShape)
	}
	for _, v := range indices {
		if v < 1 {
			return Connectivity{}, fmt.Errorf("index %d: %w", v, ErrBadIndex)
		}
	}
	own := make([]int, len(indices))
	copy(own, indices)

	return Connectivity{shape: shape, indices: own}, nil
}

// Shape returns the polytope tag of the tuple.
func (c Connectivity) Shape() Shape { return c.shape }

// ParamDim returns the parametric dimension of the underlying shape.
func (c Connectivity) ParamDim() int { return c.shape.ParamDim() }

// Len returns the number of indices in the tuple.
func (c Connectivity) Len() int { return len(c.indices) }

// Indices returns a fresh copy of the ordered index tuple.
// Callers may retain and mutate the result safely.
func (c Connectivity) Indices() []int {
	out := make([]int, len(c.indices))
	copy(out, c.indices)

	return out
}

// Equal reports whether two connectivities have the same shape tag and the
// same index tuple in the same order (rotations are NOT equal).
func (c Connectivity) Equal(other Connectivity) bool {
	if c.shape != other.shape || len(c.indices) != len(other.indices) {
		return false
	}
	for i, v := range c.indices {
		if other.indices[i] != v {
			return false
		}
	}

	return true
}

// String renders the tuple as "shape(i1,i2,...)" for debugging and tests.
func (c Connectivity) String() string {
	s := c.shape.String() + "("
	for i, v := range c.indices {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(v)
	}

	return s + ")"
}
