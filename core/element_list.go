// File: element_list.go
// Role: ElementList, the flat reference topology, and the Topology interface.
// Determinism:
//   - Element ids are assigned by insertion order: ElementAt(i) returns the
//     i-th input record unchanged.
// Concurrency:
//   - ElementList is immutable after NewElementList; safe for concurrent reads.

package core

import "fmt"

// Topology is the minimal query surface shared by all topology structures.
// Richer structures (e.g. halfedge.Structure) add adjacency and boundary
// queries on top of it.
type Topology interface {
	// NumVertices returns the size of the shared vertex-index space,
	// i.e. the maximum vertex index referenced by any element.
	NumVertices() int

	// NumElements returns the number of rank-2 elements (faces).
	NumElements() int

	// ElementAt returns the connectivity of element i (1-based).
	// Fails with ErrElementRange when i is outside 1..NumElements.
	ElementAt(i int) (Connectivity, error)
}

// ElementList is the canonical "element table" topology: an ordered sequence
// of polygonal Connectivity records with element id = position (1-based).
//
// It answers only direct indexed retrieval; all relation queries are
// delegated to a half-edge structure via conversion.
type ElementList struct {
	elems []Connectivity
	nvert int
}

// Compile-time check: ElementList satisfies Topology.
var _ Topology = (*ElementList)(nil)

// NewElementList builds an ElementList from an ordered sequence of polygonal
// connectivities. The slice is copied. Mixed polygon shapes are allowed;
// any record with a parametric dimension other than 2 fails with ErrNotPolygon.
// Complexity: O(total indices).
func NewElementList(elems []Connectivity) (*ElementList, error) {
	own := make([]Connectivity, len(elems))
	nvert := 0
	for i, c := range elems {
		if c.ParamDim() != 2 {
			return nil, fmt.Errorf("element %d is a %s: %w", i+1, c.Shape(), ErrNotPolygon)
		}
		for _, v := range c.indices {
			if v > nvert {
				nvert = v
			}
		}
		own[i] = c
	}

	return &ElementList{elems: own, nvert: nvert}, nil
}

// NumElements returns the number of stored elements.
// Complexity: O(1).
func (l *ElementList) NumElements() int { return len(l.elems) }

// NumVertices returns the maximum vertex index referenced by any element.
// Complexity: O(1).
func (l *ElementList) NumVertices() int { return l.nvert }

// ElementAt returns the connectivity of element i (1-based).
// Fails with ErrElementRange when i is outside 1..NumElements.
// Complexity: O(1).
func (l *ElementList) ElementAt(i int) (Connectivity, error) {
	if i < 1 || i > len(l.elems) {
		return Connectivity{}, fmt.Errorf("element %d of %d: %w", i, len(l.elems), ErrElementRange)
	}

	return l.elems[i-1], nil
}

// Elements returns a fresh copy of the ordered element sequence.
// Complexity: O(n).
func (l *ElementList) Elements() []Connectivity {
	out := make([]Connectivity, len(l.elems))
	copy(out, l.elems)

	return out
}

// Equal reports whether two element lists hold the same connectivity
// sequence in the same order. Used by round-trip tests.
func (l *ElementList) Equal(other *ElementList) bool {
	if other == nil || len(l.elems) != len(other.elems) {
		return false
	}
	for i := range l.elems {
		if !l.elems[i].Equal(other.elems[i]) {
			return false
		}
	}

	return true
}
