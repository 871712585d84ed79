// Package halfedge implements the half-edge topology structure for
// orientable 2-manifold surface meshes with optional boundary.
//
// What:
//
//   - Structure: an immutable arena of half-edges built once from any
//     core.Topology source (typically a core.ElementList) by New.
//     Every directed arc of every polygon becomes one half-edge; arcs
//     missing an opposite face get a synthetic border twin.
//   - Adjacency, boundary, and coboundary queries answered by short walks
//     over the arena: O(element size) or O(vertex degree) per query.
//   - Lossless conversion back to a core.ElementList (ToElementList).
//
// Why:
//
//   - Element tables answer "which vertices form element i" in O(1) but
//     nothing else. The half-edge graph answers "what surrounds this
//     vertex/facet/element" in time proportional to the answer, with only
//     one representative half-edge stored per element and per vertex.
//
// Representation:
//
//   - Half-edges live in one flat arena; prev/next/half are arena indices,
//     never pointers, so the cyclic graph has no ownership cycles.
//   - The two half-edges of facet i occupy arena slots 2i-2 and 2i-1;
//     the first slot always holds the interior arc created first.
//   - elem == -1 marks a border half-edge; border arcs carry no prev/next.
//
// Concurrency:
//
//   - New validates completely before returning; the structure never
//     mutates afterwards, so any number of goroutines may query a shared
//     Structure concurrently without synchronization.
//
// Errors:
//
//   - ErrNonManifold: two elements claim the same oriented vertex pair.
//   - ErrVertexNotReferenced: in-range vertex id never used by any element.
//   - ErrEdgeNotFound: segment query on vertices not joined by a facet.
//   - core.ErrElementRange / core.ErrVertexRange / core.ErrFacetRange:
//     entity id outside the valid range.
//
// Complexity:
//
//   - New:               O(total indices) time and space.
//   - ElementAt:         O(element size).
//   - AdjacentVertices:  O(vertex degree).
//   - FacetAt, counts:   O(1).
package halfedge
