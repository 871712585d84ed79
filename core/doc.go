// Package core defines the combinatorial primitives shared by every
// topology structure in meshtopo: polytope Shape tags, the immutable
// Connectivity tuple, and the ElementList reference structure.
//
// What:
//
//   - Shape: a closed enumeration of polytope tags (Segment, Triangle,
//     Quadrangle, Ngon) carrying arity and parametric dimension.
//   - Connectivity: an immutable ordered tuple of 1-based vertex indices
//     labeled with a Shape. Pure value type; no topology queries.
//   - ElementList: a flat ordered sequence of polygonal Connectivity
//     records, index = element id. The canonical construction input and
//     round-trip target for richer structures such as halfedge.Structure.
//   - Topology: the minimal query surface (NumVertices, NumElements,
//     ElementAt) that any topology structure satisfies.
//
// Why:
//
//   - Vertex coordinates are irrelevant here: everything is purely
//     combinatorial, so structures stay cheap to build, compare, and test.
//   - One shared vertex-index space (1-based, matching OBJ/Gmsh style
//     element tables) keeps conversions between structures lossless.
//
// Errors:
//
//   - ErrInvalidShape: index-count mismatch with the shape tag.
//   - ErrBadIndex: non-positive vertex index in a connectivity tuple.
//   - ErrNotPolygon: element-list entry whose shape is not a flat polygon.
//   - ErrElementRange / ErrVertexRange / ErrFacetRange: entity id outside
//     the valid 1..N range of the queried structure.
//
// All types in this package are immutable after construction and safe for
// concurrent readers without synchronization.
package core
