package halfedge_test

import (
	"testing"

	"github.com/meshtopo/meshtopo/core"
	"github.com/meshtopo/meshtopo/halfedge"
	"github.com/stretchr/testify/require"
)

// mustList builds an element list from index tuples, inferring Triangle and
// Quadrangle tags by arity and Ngon otherwise. Fails the test on bad input.
func mustList(t *testing.T, tuples ...[]int) *core.ElementList {
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

	return l
}

// mustBuild converts index tuples into a half-edge structure,
// failing the test on construction errors.
func mustBuild(t *testing.T, tuples ...[]int) *halfedge.Structure {
	t.Helper()
	s, err := halfedge.New(mustList(t, tuples...))
	require.NoError(t, err)

	return s
}

// twoTriangles is the smallest mesh with an interior facet:
// two triangles sharing edge (2,3).
func twoTriangles(t *testing.T) *halfedge.Structure {
	t.Helper()

	return mustBuild(t, []int{1, 2, 3}, []int{4, 3, 2})
}

// quadTriMix is a mixed quad/tri mesh of four elements around the interior
// vertex 6, with boundary square (1,2),(2,4),(4,3),(3,1).
func quadTriMix(t *testing.T) *halfedge.Structure {
	t.Helper()

	return mustBuild(t,
		[]int{1, 2, 6, 5},
		[]int{2, 4, 6},
		[]int{4, 3, 5, 6},
		[]int{1, 5, 3},
	)
}
