package relation_test

import (
	"testing"

	"github.com/meshtopo/meshtopo/core"
	"github.com/meshtopo/meshtopo/halfedge"
	"github.com/meshtopo/meshtopo/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedMesh builds the four-element quad/tri fixture around interior
// vertex 6.
func mixedMesh(t *testing.T) *halfedge.Structure {
	t.Helper()
	tuples := [][]int{
		{1, 2, 6, 5},
		{2, 4, 6},
		{4, 3, 5, 6},
		{1, 5, 3},
	}
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
	s, err := halfedge.New(l)
	require.NoError(t, err)

	return s
}

// TestBoundary_SupportedPairs pins the boundary relations on the mixed mesh.
func TestBoundary_SupportedPairs(t *testing.T) {
	s := mixedMesh(t)

	elemToVerts, err := relation.NewBoundary(s, relation.RankElement, relation.RankVertex)
	require.NoError(t, err)
	got, err := elemToVerts.Query(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 6, 5}, got)

	elemToFacets, err := relation.NewBoundary(s, relation.RankElement, relation.RankFacet)
	require.NoError(t, err)
	facets, err := elemToFacets.Query(1)
	require.NoError(t, err)
	require.Len(t, facets, 4)
	// The facet cycle must align with the vertex cycle pairwise.
	verts := got
	facetToVerts, err := relation.NewBoundary(s, relation.RankFacet, relation.RankVertex)
	require.NoError(t, err)
	for j, f := range facets {
		ends, err := facetToVerts.Query(f)
		require.NoError(t, err)
		pair := []int{verts[j], verts[(j+1)%len(verts)]}
		assert.ElementsMatch(t, pair, ends, "facet %d joins cycle positions %d,%d", f, j, (j+1)%len(verts))
	}
}

// TestCoboundary_SupportedPairs pins the coboundary relations on the mixed
// mesh, including the order-sensitive element ring of vertex 6.
func TestCoboundary_SupportedPairs(t *testing.T) {
	s := mixedMesh(t)

	vertToElems, err := relation.NewCoboundary(s, relation.RankVertex, relation.RankElement)
	require.NoError(t, err)
	ring, err := vertToElems.Query(6)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, ring)

	vertToFacets, err := relation.NewCoboundary(s, relation.RankVertex, relation.RankFacet)
	require.NoError(t, err)
	facets, err := vertToFacets.Query(6)
	require.NoError(t, err)
	assert.Len(t, facets, 3, "interior vertex 6 touches three facets")

	facetToElems, err := relation.NewCoboundary(s, relation.RankFacet, relation.RankElement)
	require.NoError(t, err)
	for _, f := range facets {
		elems, err := facetToElems.Query(f)
		require.NoError(t, err)
		assert.Len(t, elems, 2, "facets at the interior vertex are shared by two elements")
	}
}

// TestAdjacency_VertexRank verifies the rank-0 adjacency wrapper.
func TestAdjacency_VertexRank(t *testing.T) {
	s := mixedMesh(t)

	adj, err := relation.NewAdjacency(s, relation.RankVertex)
	require.NoError(t, err)

	ring, err := adj.Query(6)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5}, ring)
}

// TestUnsupportedPairs verifies the closed rank-pair set is enforced at
// construction time.
func TestUnsupportedPairs(t *testing.T) {
	s := mixedMesh(t)

	boundaryPairs := [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 2}, {0, 0}, {3, 0}}
	for _, p := range boundaryPairs {
		_, err := relation.NewBoundary(s, p[0], p[1])
		assert.ErrorIs(t, err, relation.ErrUnsupportedPair, "boundary (%d,%d)", p[0], p[1])
	}

	coboundaryPairs := [][2]int{{2, 0}, {2, 1}, {1, 0}, {1, 1}, {0, 3}}
	for _, p := range coboundaryPairs {
		_, err := relation.NewCoboundary(s, p[0], p[1])
		assert.ErrorIs(t, err, relation.ErrUnsupportedPair, "coboundary (%d,%d)", p[0], p[1])
	}

	for _, r := range []int{1, 2, -1} {
		_, err := relation.NewAdjacency(s, r)
		assert.ErrorIs(t, err, relation.ErrUnsupportedPair, "adjacency rank %d", r)
	}
}

// TestNilTopology verifies all constructors reject a nil structure.
func TestNilTopology(t *testing.T) {
	_, err := relation.NewBoundary(nil, relation.RankElement, relation.RankVertex)
	assert.ErrorIs(t, err, relation.ErrNilTopology)

	_, err = relation.NewCoboundary(nil, relation.RankVertex, relation.RankElement)
	assert.ErrorIs(t, err, relation.ErrNilTopology)

	_, err = relation.NewAdjacency(nil, relation.RankVertex)
	assert.ErrorIs(t, err, relation.ErrNilTopology)
}

// TestQueryErrorsPropagate verifies halfedge errors surface unchanged.
func TestQueryErrorsPropagate(t *testing.T) {
	s := mixedMesh(t)

	adj, err := relation.NewAdjacency(s, relation.RankVertex)
	require.NoError(t, err)
	_, err = adj.Query(99)
	assert.ErrorIs(t, err, core.ErrVertexRange)

	b, err := relation.NewBoundary(s, relation.RankElement, relation.RankVertex)
	require.NoError(t, err)
	_, err = b.Query(0)
	assert.ErrorIs(t, err, core.ErrElementRange)

	c, err := relation.NewCoboundary(s, relation.RankFacet, relation.RankElement)
	require.NoError(t, err)
	_, err = c.Query(99)
	assert.ErrorIs(t, err, core.ErrFacetRange)
}
