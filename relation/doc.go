// Package relation exposes the topological relation queries of a half-edge
// structure as small callable values parametrized by entity rank.
//
// What:
//
//   - Boundary{from,to}: entities of lower rank bounding a given entity
//     (element→vertices, element→facets, facet→vertices).
//   - Coboundary{from,to}: entities of higher rank incident to a given
//     entity (vertex→facets, vertex→elements, facet→elements).
//   - Adjacency{rank}: same-rank entities connected through a shared
//     higher-rank entity (vertex→vertices over shared facets).
//
// The supported rank pairs form a closed set; constructors reject any
// other pair with ErrUnsupportedPair instead of dispatching silently.
//
// Why:
//
//   - Consumers such as matrix assemblers select a relation once by rank
//     pair and then apply it to many entity ids, without caring which
//     traversal answers it. Ids in, ids out.
//
// Ranks: 0 = vertex, 1 = facet, 2 = element (see RankVertex, RankFacet,
// RankElement).
//
// Errors:
//
//   - ErrNilTopology: constructor given a nil structure.
//   - ErrUnsupportedPair: rank pair outside the closed set.
//   - Query errors propagate unchanged from package halfedge.
//
// All relation values are immutable and safe for concurrent use.
package relation
