package core

import "errors"

// Sentinel errors for connectivity and element-list operations.
var (
	// ErrInvalidShape indicates an index tuple whose length does not match
	// the arity required by its shape tag.
	ErrInvalidShape = errors.New("core: index count does not match shape")

	// ErrBadIndex indicates a non-positive vertex index (ids are 1-based).
	ErrBadIndex = errors.New("core: vertex index must be positive")

	// ErrNotPolygon indicates an element whose shape is not a flat polygon
	// (parametric dimension 2) where one is required.
	ErrNotPolygon = errors.New("core: element is not a polygon")

	// ErrElementRange indicates an element id outside 1..NumElements.
	ErrElementRange = errors.New("core: element id out of range")

	// ErrVertexRange indicates a vertex id outside 1..NumVertices.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrFacetRange indicates a facet id outside 1..NumFacets.
	ErrFacetRange = errors.New("core: facet id out of range")
)
