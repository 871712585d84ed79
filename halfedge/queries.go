// File: queries.go
// Role: boundary, coboundary, and adjacency queries over the arena.
// Determinism:
//   - Element cycles start at the element's first input vertex.
//   - Star-based results are ordered by rotation around the vertex:
//     adjacency counter-clockwise, vertex-to-element coboundary clockwise,
//     both starting at the border-most arm (open star) or the vertex's
//     representative arc (closed ring).

package halfedge

import (
	"fmt"

	"github.com/meshtopo/meshtopo/core"
)

// ElementAt reconstructs the connectivity of element i (1-based) by walking
// next-links from its representative arc, reproducing the input tuple
// exactly (same first vertex, same rotation, same shape tag).
// Fails with core.ErrElementRange for an id outside 1..NumElements.
// Complexity: O(element size).
func (s *Structure) ElementAt(i int) (core.Connectivity, error) {
	if i < 1 || i > len(s.edgeOfElement) {
		return core.Connectivity{}, fmt.Errorf("element %d of %d: %w", i, len(s.edgeOfElement), core.ErrElementRange)
	}
	start := s.edgeOfElement[i-1]
	ring := make([]int, 0, quadRing)
	for e := start; ; {
		ring = append(ring, s.arena[e].head)
		e = s.arena[e].next
		if e == start {
			break
		}
	}

	return core.Connect(s.shapes[i-1], ring...)
}

// FacetAt returns facet i (1-based) as a segment connectivity between its
// two endpoint vertices, oriented as first created during construction.
// Fails with core.ErrFacetRange for an id outside 1..NumFacets.
// Complexity: O(1).
func (s *Structure) FacetAt(i int) (core.Connectivity, error) {
	if i < 1 || i > s.NumFacets() {
		return core.Connectivity{}, fmt.Errorf("facet %d of %d: %w", i, s.NumFacets(), core.ErrFacetRange)
	}
	he := s.arena[2*(i-1)]

	return core.Connect(core.Segment, he.head, s.arena[he.half].head)
}

// AdjacentVertices returns the vertices sharing a facet with v, in
// counter-clockwise ring order. Interior vertices yield a closed ring
// starting at the representative arc's neighbor; boundary vertices yield an
// open ring including both border-adjacent extremes.
//
// Fails with core.ErrVertexRange for an out-of-range id and with
// ErrVertexNotReferenced for a vertex no element uses.
// Complexity: O(degree(v)).
func (s *Structure) AdjacentVertices(v int) ([]int, error) {
	e0, err := s.checkVertex(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, hexRing)
	s.visitStarCCW(e0, func(arm int) {
		out = append(out, s.arena[s.arena[arm].half].head)
	})

	return out, nil
}

// CoboundarySegments returns the facets incident to v as segment
// connectivities (v,u), ordered like AdjacentVertices.
// Complexity: O(degree(v)).
func (s *Structure) CoboundarySegments(v int) ([]core.Connectivity, error) {
	adj, err := s.AdjacentVertices(v)
	if err != nil {
		return nil, err
	}
	out := make([]core.Connectivity, len(adj))
	for i, u := range adj {
		seg, err := core.Connect(core.Segment, v, u)
		if err != nil {
			return nil, err
		}
		out[i] = seg
	}

	return out, nil
}

// FacetsOfVertex returns the ids of the facets incident to v, ordered like
// AdjacentVertices. Facet ids derive from arena slots: arc k belongs to
// facet k/2+1.
// Complexity: O(degree(v)).
func (s *Structure) FacetsOfVertex(v int) ([]int, error) {
	e0, err := s.checkVertex(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, hexRing)
	s.visitStarCCW(e0, func(arm int) {
		out = append(out, arm/2+1)
	})

	return out, nil
}

// ElementsOfVertex returns the ids of the elements incident to v in
// clockwise order around the vertex, one per interior arm of its star.
// Complexity: O(degree(v)).
func (s *Structure) ElementsOfVertex(v int) ([]int, error) {
	e0, err := s.checkVertex(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, hexRing)
	s.visitStarCW(e0, func(arm int) {
		out = append(out, s.arena[arm].elem)
	})

	return out, nil
}

// ElementsOfSegment returns the ids of the elements containing the facet
// between u and v: two for an interior facet (the element of arc u→v first,
// then of v→u), one for a border facet.
//
// Fails with ErrEdgeNotFound when no facet joins u and v, and propagates
// vertex validation errors for u and v.
// Complexity: O(degree(u)).
func (s *Structure) ElementsOfSegment(u, v int) ([]int, error) {
	e0, err := s.checkVertex(u)
	if err != nil {
		return nil, err
	}
	if v < 1 || v > s.nvert {
		return nil, fmt.Errorf("vertex %d of %d: %w", v, s.nvert, core.ErrVertexRange)
	}
	found := noEdge
	s.visitStarCCW(e0, func(arm int) {
		if found == noEdge && s.arena[s.arena[arm].half].head == v {
			found = arm
		}
	})
	if found == noEdge {
		return nil, fmt.Errorf("segment (%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	out := make([]int, 0, 2)
	if e := s.arena[found].elem; e != noElement {
		out = append(out, e)
	}
	if e := s.arena[s.arena[found].half].elem; e != noElement {
		out = append(out, e)
	}

	return out, nil
}

// BoundaryVertices returns the vertex cycle of element i, starting at its
// first input vertex.
// Complexity: O(element size).
func (s *Structure) BoundaryVertices(i int) ([]int, error) {
	c, err := s.ElementAt(i)
	if err != nil {
		return nil, err
	}

	return c.Indices(), nil
}

// BoundaryFacets returns the facet-id cycle of element i, aligned with its
// vertex cycle: facet j joins vertex j to vertex j+1 (cyclically).
// Complexity: O(element size).
func (s *Structure) BoundaryFacets(i int) ([]int, error) {
	if i < 1 || i > len(s.edgeOfElement) {
		return nil, fmt.Errorf("element %d of %d: %w", i, len(s.edgeOfElement), core.ErrElementRange)
	}
	start := s.edgeOfElement[i-1]
	out := make([]int, 0, quadRing)
	for e := start; ; {
		out = append(out, e/2+1)
		e = s.arena[e].next
		if e == start {
			break
		}
	}

	return out, nil
}

// FacetVertices returns the two endpoint vertex ids of facet i.
// Complexity: O(1).
func (s *Structure) FacetVertices(i int) ([]int, error) {
	c, err := s.FacetAt(i)
	if err != nil {
		return nil, err
	}

	return c.Indices(), nil
}

// BorderFacets returns the ids of all facets on the mesh boundary
// (facets owning a border half-edge), ascending. Empty for closed meshes.
// Complexity: O(NumFacets).
func (s *Structure) BorderFacets() []int {
	var out []int
	// The even slot of each facet is always interior; only the odd slot
	// can be a border arc.
	for idx := 1; idx < len(s.arena); idx += 2 {
		if s.arena[idx].elem == noElement {
			out = append(out, idx/2+1)
		}
	}

	return out
}

// Pre-size hints for ring buffers (typical quad-mesh element and
// triangle-mesh vertex degree).
const (
	quadRing = 4
	hexRing  = 6
)
