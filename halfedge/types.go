// File: types.go
// Role: half-edge record, arena sentinels, and the Structure type.
// Concurrency:
//   - Structure is immutable after New; all fields are read-only thereafter.

package halfedge

import (
	"fmt"

	"github.com/meshtopo/meshtopo/core"
)

// Arena sentinels. Half-edge references are indices into Structure.arena;
// element ids are 1-based, so -1 is free for "none" in both spaces.
const (
	noElement = -1 // border half-edge: no incident element
	noEdge    = -1 // absent half-edge reference
)

// halfEdge is one directed arc of an element boundary.
//
// head is the vertex the arc leaves from toward head of its twin, elem the
// incident element id (noElement for border arcs). prev/next chain arcs
// around the same element; half is the opposite-direction twin. Border arcs
// keep prev == next == noEdge and are never walked along an element cycle.
type halfEdge struct {
	head int
	elem int
	prev int
	next int
	half int
}

// String renders the arc for debugging: head, elem, prev/next/half indices.
func (e halfEdge) String() string {
	return fmt.Sprintf("(v:%d e:%d p:%d n:%d h:%d)", e.head, e.elem, e.prev, e.next, e.half)
}

// Structure is the half-edge topology of an orientable 2-manifold mesh
// with optional boundary. Build it with New; it is immutable afterwards
// and safe for concurrent readers.
//
// Only one representative half-edge is stored per element (edgeOfElement)
// and per referenced vertex (edgeOfVertex); every other relation is derived
// by prev/next/half walks over the arena.
type Structure struct {
	arena []halfEdge

	// edgeOfElement[e-1] is the arena index of element e's arc that leaves
	// its first vertex, so element cycles reproduce input order exactly.
	edgeOfElement []int

	// edgeOfVertex[v] is the arena index of the first interior arc in arena
	// order whose head is v, or noEdge when v is never referenced.
	// Index 0 is unused (vertex ids are 1-based).
	edgeOfVertex []int

	// shapes[e-1] preserves the input shape tag of element e.
	shapes []core.Shape

	nvert int
}

// Compile-time check: Structure satisfies core.Topology.
var _ core.Topology = (*Structure)(nil)

// NumElements returns the number of rank-2 elements.
// Complexity: O(1).
func (s *Structure) NumElements() int { return len(s.edgeOfElement) }

// NumVertices returns the size of the shared vertex-index space
// (the maximum vertex id referenced by any element).
// Complexity: O(1).
func (s *Structure) NumVertices() int { return s.nvert }

// NumFacets returns the number of rank-1 facets (undirected edges).
// Each facet owns exactly two half-edges.
// Complexity: O(1).
func (s *Structure) NumFacets() int { return len(s.arena) / 2 }

// HalfEdgeCount returns the total number of half-edges in the arena,
// interior and border.
// Complexity: O(1).
func (s *Structure) HalfEdgeCount() int { return len(s.arena) }
