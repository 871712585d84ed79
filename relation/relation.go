// File: relation.go
// Role: rank constants and the Boundary/Coboundary/Adjacency callables.
// Determinism:
//   - Result order is fixed by the underlying halfedge traversal: element
//     cycles start at the element's first vertex; vertex stars are ordered
//     by rotation (see package halfedge).

package relation

import (
	"fmt"

	"github.com/meshtopo/meshtopo/halfedge"
)

// Entity ranks of a surface mesh.
const (
	// RankVertex is the rank of vertices.
	RankVertex = 0
	// RankFacet is the rank of facets (undirected edges).
	RankFacet = 1
	// RankElement is the rank of elements (polygonal faces).
	RankElement = 2
)

// Boundary maps an entity of rank From to the ordered ids of the rank-To
// entities bounding it. Supported pairs: (2,0), (2,1), (1,0).
type Boundary struct {
	from, to int
	topo     *halfedge.Structure
}

// NewBoundary builds a boundary relation for the given rank pair.
// Fails with ErrUnsupportedPair for pairs outside the supported set.
func NewBoundary(t *halfedge.Structure, from, to int) (Boundary, error) {
	if t == nil {
		return Boundary{}, ErrNilTopology
	}
	switch [2]int{from, to} {
	case [2]int{RankElement, RankVertex}, [2]int{RankElement, RankFacet}, [2]int{RankFacet, RankVertex}:
		return Boundary{from: from, to: to, topo: t}, nil
	default:
		return Boundary{}, fmt.Errorf("boundary (%d,%d): %w", from, to, ErrUnsupportedPair)
	}
}

// Query returns the ordered ids of the rank-To entities bounding entity id.
// Complexity: O(answer size).
func (b Boundary) Query(id int) ([]int, error) {
	switch [2]int{b.from, b.to} {
	case [2]int{RankElement, RankVertex}:
		return b.topo.BoundaryVertices(id)
	case [2]int{RankElement, RankFacet}:
		return b.topo.BoundaryFacets(id)
	default: // (RankFacet, RankVertex), guaranteed by the constructor
		return b.topo.FacetVertices(id)
	}
}

// Coboundary maps an entity of rank From to the ordered ids of the rank-To
// entities incident to it. Supported pairs: (0,1), (0,2), (1,2).
type Coboundary struct {
	from, to int
	topo     *halfedge.Structure
}

// NewCoboundary builds a coboundary relation for the given rank pair.
// Fails with ErrUnsupportedPair for pairs outside the supported set.
func NewCoboundary(t *halfedge.Structure, from, to int) (Coboundary, error) {
	if t == nil {
		return Coboundary{}, ErrNilTopology
	}
	switch [2]int{from, to} {
	case [2]int{RankVertex, RankFacet}, [2]int{RankVertex, RankElement}, [2]int{RankFacet, RankElement}:
		return Coboundary{from: from, to: to, topo: t}, nil
	default:
		return Coboundary{}, fmt.Errorf("coboundary (%d,%d): %w", from, to, ErrUnsupportedPair)
	}
}

// Query returns the ordered ids of the rank-To entities incident to
// entity id.
// Complexity: O(answer size).
func (c Coboundary) Query(id int) ([]int, error) {
	switch [2]int{c.from, c.to} {
	case [2]int{RankVertex, RankFacet}:
		return c.topo.FacetsOfVertex(id)
	case [2]int{RankVertex, RankElement}:
		return c.topo.ElementsOfVertex(id)
	default: // (RankFacet, RankElement), guaranteed by the constructor
		ends, err := c.topo.FacetVertices(id)
		if err != nil {
			return nil, err
		}

		return c.topo.ElementsOfSegment(ends[0], ends[1])
	}
}

// Adjacency maps an entity to the ordered ids of the same-rank entities
// connected to it through a shared higher-rank entity. Supported rank: 0
// (vertices sharing a facet).
type Adjacency struct {
	rank int
	topo *halfedge.Structure
}

// NewAdjacency builds an adjacency relation for the given rank.
// Fails with ErrUnsupportedPair for ranks other than RankVertex.
func NewAdjacency(t *halfedge.Structure, rank int) (Adjacency, error) {
	if t == nil {
		return Adjacency{}, ErrNilTopology
	}
	if rank != RankVertex {
		return Adjacency{}, fmt.Errorf("adjacency rank %d: %w", rank, ErrUnsupportedPair)
	}

	return Adjacency{rank: rank, topo: t}, nil
}

// Query returns the vertices adjacent to vertex id in counter-clockwise
// ring order.
// Complexity: O(degree(id)).
func (a Adjacency) Query(id int) ([]int, error) {
	return a.topo.AdjacentVertices(id)
}
