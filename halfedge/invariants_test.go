package halfedge

import (
	"testing"

	"github.com/meshtopo/meshtopo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixture constructs a structure from raw polygonal tuples for
// white-box arena inspection.
func buildFixture(t *testing.T, tuples ...[]int) *Structure {
	t.Helper()
	elems := make([]core.Connectivity, len(tuples))
	for i, idx := range tuples {
		shape := core.Ngon
		switch len(idx) {
		case 3:
			shape = core.Triangle
		case 4:
			shape = core.Quadrangle
		}
		c, err := core.Connect(shape, idx...)
		require.NoError(t, err)
		elems[i] = c
	}
	l, err := core.NewElementList(elems)
	require.NoError(t, err)
	s, err := New(l)
	require.NoError(t, err)

	return s
}

// TestArena_TwinSymmetry verifies half.half == self for every arc,
// interior and border.
func TestArena_TwinSymmetry(t *testing.T) {
	s := buildFixture(t,
		[]int{1, 2, 6, 5},
		[]int{2, 4, 6},
		[]int{4, 3, 5, 6},
		[]int{1, 5, 3},
	)

	for idx, he := range s.arena {
		twin := s.arena[he.half]
		assert.Equal(t, idx, twin.half, "arc %d: twin symmetry", idx)
		assert.NotEqual(t, idx, he.half, "arc %d: an arc is never its own twin", idx)
	}
}

// TestArena_CycleClosure verifies that walking next from each element's
// representative arc returns to it in exactly degree(element) steps, and
// that prev links are the exact inverse of next links.
func TestArena_CycleClosure(t *testing.T) {
	s := buildFixture(t,
		[]int{1, 2, 6, 5},
		[]int{2, 4, 6},
		[]int{4, 3, 5, 6},
		[]int{1, 5, 3},
	)

	degrees := []int{4, 3, 4, 3}
	for e, start := range s.edgeOfElement {
		steps := 0
		arc := start
		for {
			assert.Equal(t, e+1, s.arena[arc].elem, "arc %d belongs to element %d", arc, e+1)
			assert.Equal(t, arc, s.arena[s.arena[arc].next].prev, "prev must invert next at arc %d", arc)
			arc = s.arena[arc].next
			steps++
			if arc == start {
				break
			}
		}
		assert.Equal(t, degrees[e], steps, "element %d cycle length", e+1)
	}
}

// TestArena_BorderArcs verifies border arcs carry no element and no
// prev/next chain, and that every facet slot pairs an interior arc first.
func TestArena_BorderArcs(t *testing.T) {
	s := buildFixture(t, []int{1, 2, 3}, []int{4, 3, 2})

	borders := 0
	for idx, he := range s.arena {
		if he.elem == noElement {
			borders++
			assert.Equal(t, noEdge, he.prev, "border arc %d has no prev", idx)
			assert.Equal(t, noEdge, he.next, "border arc %d has no next", idx)
			assert.Equal(t, 1, idx%2, "border arcs occupy odd slots only")
		}
	}
	assert.Equal(t, 4, borders, "two shared-edge triangles expose four border arcs")

	for idx := 0; idx < len(s.arena); idx += 2 {
		assert.NotEqual(t, noElement, s.arena[idx].elem, "even slot %d must be interior", idx)
	}
}

// TestArena_VertexRepresentatives verifies every referenced vertex has an
// interior representative arc whose head is that vertex.
func TestArena_VertexRepresentatives(t *testing.T) {
	s := buildFixture(t, []int{1, 2, 3}, []int{4, 3, 2})

	for v := 1; v <= s.nvert; v++ {
		e0 := s.edgeOfVertex[v]
		require.NotEqual(t, noEdge, e0, "vertex %d must be represented", v)
		assert.Equal(t, v, s.arena[e0].head)
		assert.NotEqual(t, noElement, s.arena[e0].elem, "representative must be interior")
	}
}
