// Package matrix assembles dense matrix views of a half-edge mesh topology:
// the vertex adjacency matrix, the vertex-facet incidence matrix, and the
// combinatorial graph Laplacian.
//
// What:
//
//   - Dense: a row-major float64 matrix with bounds-checked accessors.
//   - NewAdjacency: n×n 0/1 matrix, A[u][v] = 1 iff a facet joins u and v.
//   - NewIncidence: n×m signed matrix, +1 at a facet's first endpoint,
//     -1 at its second (rows = vertices, columns = facets).
//   - NewLaplacian: L = D - A with D the diagonal vertex-degree matrix.
//
// Why:
//
//   - Discrete differential operators (Laplacian smoothing, spectral mesh
//     analysis, FEM assembly) consume 1-ring adjacency as matrices; this
//     package turns star walks into those matrices once, deterministically.
//
// Rows and columns are 0-based (row v-1 corresponds to vertex id v).
// Vertices referenced by no element yield all-zero rows.
//
// Errors:
//
//   - ErrNilTopology: assembly from a nil structure.
//   - ErrBadShape / ErrOutOfRange: Dense construction and access violations.
//
// Complexity: all assemblers run in O(V + E) plus the O(V²) zero fill of the
// dense backing storage.
package matrix
