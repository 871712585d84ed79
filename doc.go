// Package meshtopo is a computational-geometry kernel for the combinatorial
// topology of orientable 2-manifold surface meshes with optional boundary.
//
// What is meshtopo?
//
//	A pure in-memory library that turns flat element tables into a
//	half-edge graph and answers adjacency, boundary, and coboundary
//	queries in time proportional to the answer:
//		• core/     — Shape tags, Connectivity tuples, ElementList
//		• halfedge/ — the half-edge structure: build once, query many times
//		• relation/ — Boundary/Coboundary/Adjacency callables by rank pair
//		• matrix/   — adjacency, incidence, and Laplacian assembly
//		• builder/  — deterministic canonical mesh generators
//
// Why meshtopo?
//
//   - Purely combinatorial – vertex coordinates never enter the kernel
//   - Immutable after construction – concurrent readers need no locks
//   - Eager validation – non-manifold input is rejected, never mis-answered
//   - Lossless – element lists round-trip through the half-edge structure
//
// Quick ASCII example (two triangles sharing edge 2-3):
//
//	    1───2
//	     ╲ ╱ ╲
//	      3───4
//
//	list, _ := core.NewElementList([]core.Connectivity{t123, t432})
//	s, _ := halfedge.New(list)
//	ring, _ := s.AdjacentVertices(2)   // [4 3 1], counter-clockwise
package meshtopo
