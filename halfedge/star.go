// File: star.go
// Role: vertex-star walk primitives shared by adjacency and coboundary queries.
//
// Orientation: with elements wound counter-clockwise, stepping half.next
// rotates an outgoing arc clockwise around its head vertex and stepping
// prev.half rotates it counter-clockwise. Both walks below terminate at a
// border arc or after one full circle.

package halfedge

import (
	"fmt"

	"github.com/meshtopo/meshtopo/core"
)

// checkVertex validates a vertex id and resolves its representative arc.
func (s *Structure) checkVertex(v int) (int, error) {
	if v < 1 || v > s.nvert {
		return noEdge, fmt.Errorf("vertex %d of %d: %w", v, s.nvert, core.ErrVertexRange)
	}
	e0 := s.edgeOfVertex[v]
	if e0 == noEdge {
		return noEdge, fmt.Errorf("vertex %d: %w", v, ErrVertexNotReferenced)
	}

	return e0, nil
}

// cwMost rewinds clockwise from the interior arc e0 to the star's
// clockwise-most arm, or back to e0 when the star is a closed ring.
// The returned arm is always an interior arc.
func (s *Structure) cwMost(e0 int) int {
	e := e0
	for {
		h := s.arena[e].half
		if s.arena[h].elem == noElement {
			return e
		}
		n := s.arena[h].next
		if n == e0 {
			return e0
		}
		e = n
	}
}

// ccwMost rewinds counter-clockwise from the interior arc e0 to the star's
// counter-clockwise-most interior arm, or back to e0 on a closed ring.
func (s *Structure) ccwMost(e0 int) int {
	e := e0
	for {
		p := s.arena[s.arena[e].prev].half
		if s.arena[p].elem == noElement {
			return e
		}
		if p == e0 {
			return e0
		}
		e = p
	}
}

// visitStarCCW calls fn for every arm of the star of e0's head vertex in
// counter-clockwise order, starting from the clockwise-most arm. On an open
// star the final arm is a border arc (its twin still yields the neighbor);
// on a closed ring every arm is interior.
func (s *Structure) visitStarCCW(e0 int, fn func(arm int)) {
	start := s.cwMost(e0)
	for e := start; ; {
		fn(e)
		if s.arena[e].elem == noElement {
			return
		}
		p := s.arena[s.arena[e].prev].half
		if p == start {
			return
		}
		e = p
	}
}

// visitStarCW calls fn for every interior arm of the star of e0's head
// vertex in clockwise order, starting from the counter-clockwise-most
// interior arm. Border arcs carry no element and are skipped.
func (s *Structure) visitStarCW(e0 int, fn func(arm int)) {
	start := s.ccwMost(e0)
	for e := start; ; {
		fn(e)
		h := s.arena[e].half
		if s.arena[h].elem == noElement {
			return
		}
		n := s.arena[h].next
		if n == start {
			return
		}
		e = n
	}
}
