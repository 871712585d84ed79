package halfedge

import "errors"

// Sentinel errors for half-edge construction and queries.
var (
	// ErrNilTopology indicates a nil topology source passed to New.
	ErrNilTopology = errors.New("halfedge: nil topology source")

	// ErrNonManifold indicates two elements claim the same oriented edge,
	// so the input is not an orientable 2-manifold with boundary.
	ErrNonManifold = errors.New("halfedge: duplicate oriented edge (non-manifold input)")

	// ErrVertexNotReferenced indicates a vertex id inside 1..NumVertices
	// that no element references, so it has no star to traverse.
	ErrVertexNotReferenced = errors.New("halfedge: vertex not referenced by any element")

	// ErrEdgeNotFound indicates a segment query on two vertices that are
	// not joined by any facet of the mesh.
	ErrEdgeNotFound = errors.New("halfedge: no facet joins the given vertices")
)
