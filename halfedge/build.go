// File: build.go
// Role: two-pass construction of the half-edge arena from a topology source.
// Determinism:
//   - Arena layout is a pure function of input order: facets appear in
//     first-encounter order, the interior arc created first in the even slot.
// Concurrency:
//   - New is not safe to run concurrently with queries on the same value;
//     the returned Structure is immutable and freely shareable.

package halfedge

import (
	"fmt"

	"github.com/meshtopo/meshtopo/core"
)

// pairKey is an ordered vertex pair identifying one directed arc.
// The map keyed by it exists only during construction and is discarded
// once prev/next/half links are in place.
type pairKey struct{ u, v int }

// New builds the half-edge structure of the given topology source.
//
// Every element must be a flat polygon whose vertices are oriented
// consistently across the mesh. Each consecutive vertex pair of each
// element becomes one interior half-edge; a pair whose reverse is never
// claimed by another element gets a synthetic border twin instead.
//
// Fails with ErrNonManifold when two elements claim the same oriented pair,
// and with core.ErrNotPolygon when an element is not a flat polygon.
// No partially built structure is ever returned.
// Complexity: O(total indices) time and space.
func New(t core.Topology) (*Structure, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	n := t.NumElements()
	s := &Structure{
		arena:         make([]halfEdge, 0, 2*minGuessArcs(n)),
		edgeOfElement: make([]int, n),
		shapes:        make([]core.Shape, n),
		nvert:         t.NumVertices(),
	}

	// Scratch lookup: ordered pair -> arena index of its interior arc.
	half4pair := make(map[pairKey]int, minGuessArcs(n))
	rings := make([][]int, n)

	// Pass 1: create interior arcs in element order, pairing each new facet
	// with a reserved twin slot (filled by the opposite element or left as
	// a border arc). Duplicate ordered pairs are rejected immediately.
	for e := 1; e <= n; e++ {
		c, err := t.ElementAt(e)
		if err != nil {
			return nil, err
		}
		if c.ParamDim() != 2 {
			return nil, fmt.Errorf("element %d is a %s: %w", e, c.Shape(), core.ErrNotPolygon)
		}
		ring := c.Indices()
		rings[e-1] = ring
		s.shapes[e-1] = c.Shape()

		for i, a := range ring {
			b := ring[(i+1)%len(ring)]
			if _, dup := half4pair[pairKey{a, b}]; dup {
				return nil, fmt.Errorf("edge (%d,%d) claimed by element %d: %w", a, b, e, ErrNonManifold)
			}
			var idx int
			if tw, ok := half4pair[pairKey{b, a}]; ok {
				// The opposite arc exists: claim its reserved twin slot.
				idx = s.arena[tw].half
				s.arena[idx].elem = e
			} else {
				// New facet: interior arc in the even slot, reserved twin
				// (provisionally a border arc) in the odd slot.
				idx = len(s.arena)
				s.arena = append(s.arena,
					halfEdge{head: a, elem: e, prev: noEdge, next: noEdge, half: idx + 1},
					halfEdge{head: b, elem: noElement, prev: noEdge, next: noEdge, half: idx},
				)
			}
			half4pair[pairKey{a, b}] = idx
			if i == 0 {
				// Representative arc leaves the element's first vertex,
				// so element cycles reproduce input order exactly.
				s.edgeOfElement[e-1] = idx
			}
		}
	}

	// Pass 2: chain prev/next around every element. All keys are present
	// from pass 1; border arcs keep prev == next == noEdge.
	for e := 1; e <= n; e++ {
		ring := rings[e-1]
		m := len(ring)
		for i := 0; i < m; i++ {
			cur := half4pair[pairKey{ring[i], ring[(i+1)%m]}]
			s.arena[cur].prev = half4pair[pairKey{ring[(i-1+m)%m], ring[i]}]
			s.arena[cur].next = half4pair[pairKey{ring[(i+1)%m], ring[(i+2)%m]}]
		}
	}

	// Finalize: one representative interior arc per referenced vertex,
	// first seen in arena order wins.
	s.edgeOfVertex = make([]int, s.nvert+1)
	for v := range s.edgeOfVertex {
		s.edgeOfVertex[v] = noEdge
	}
	for idx := range s.arena {
		he := &s.arena[idx]
		if he.elem == noElement {
			continue
		}
		if s.edgeOfVertex[he.head] == noEdge {
			s.edgeOfVertex[he.head] = idx
		}
	}

	return s, nil
}

// minGuessArcs estimates the interior arc count for pre-sizing:
// three arcs per element covers triangle meshes exactly and larger
// polygons grow the arena amortized.
func minGuessArcs(n int) int { return 3 * n }
