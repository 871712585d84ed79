// File: assemble.go
// Role: adjacency, incidence, and Laplacian assembly from a half-edge mesh.
// Determinism:
//   - Assembly iterates facets in facet-id order; results depend only on
//     the structure, never on map iteration.

package matrix

import (
	"github.com/meshtopo/meshtopo/halfedge"
)

// NewAdjacency assembles the n×n vertex adjacency matrix of t:
// A[u-1][v-1] = 1 iff a facet joins vertices u and v, 0 otherwise.
// Complexity: O(V² + E).
func NewAdjacency(t *halfedge.Structure) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	n := t.NumVertices()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for f := 1; f <= t.NumFacets(); f++ {
		ends, err := t.FacetVertices(f)
		if err != nil {
			return nil, err
		}
		u, v := ends[0]-1, ends[1]-1
		a.data[u*n+v] = 1
		a.data[v*n+u] = 1
	}

	return a, nil
}

// NewIncidence assembles the n×m vertex-facet incidence matrix of t:
// +1 at a facet's first endpoint, -1 at its second, using each facet's
// construction orientation.
// Complexity: O(V*F).
func NewIncidence(t *halfedge.Structure) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	n, m := t.NumVertices(), t.NumFacets()
	b, err := NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for f := 1; f <= m; f++ {
		ends, err := t.FacetVertices(f)
		if err != nil {
			return nil, err
		}
		b.data[(ends[0]-1)*m+(f-1)] = 1
		b.data[(ends[1]-1)*m+(f-1)] = -1
	}

	return b, nil
}

// NewLaplacian assembles the combinatorial graph Laplacian L = D - A of t,
// where D is the diagonal matrix of vertex degrees. Rows of vertices no
// element references stay zero.
// Complexity: O(V² + E).
func NewLaplacian(t *halfedge.Structure) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	n := t.NumVertices()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for f := 1; f <= t.NumFacets(); f++ {
		ends, err := t.FacetVertices(f)
		if err != nil {
			return nil, err
		}
		u, v := ends[0]-1, ends[1]-1
		l.data[u*n+v] = -1
		l.data[v*n+u] = -1
		l.data[u*n+u]++
		l.data[v*n+v]++
	}

	return l, nil
}
