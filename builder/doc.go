// Package builder provides deterministic generators of canonical element
// lists: structured quad grids, triangle fans, and triangulated disks.
//
// What:
//
//   - QuadGrid(rows, cols): rows×cols quadrangle cells over a structured
//     (rows+1)×(cols+1) vertex lattice, row-major ids, CCW winding.
//   - TriangleFan(n): n triangles sharing boundary vertex 1 (open star).
//   - TriangulatedDisk(n): n triangles closing a ring around interior
//     vertex 1 (closed star).
//
// Why:
//
//   - Tests, benchmarks, and examples need meshes with known combinatorics:
//     grids exercise mixed interior/boundary vertices at scale, the fan
//     pins open-star traversal, the disk pins closed-ring traversal.
//
// Determinism:
//
//   - Vertex ids and element order are fixed, documented functions of the
//     generator parameters; repeated calls produce equal lists.
//
// Errors:
//
//   - ErrTooFewCells: a generator parameter below its documented minimum.
package builder
