// File: convert.go
// Role: conversion from the half-edge structure back to the flat element list.

package halfedge

import "github.com/meshtopo/meshtopo/core"

// ToElementList converts the structure back to a flat element list in
// element-id order. Because element cycles reproduce input order exactly,
// converting an element list to a half-edge structure and back yields an
// equal list.
// Complexity: O(total indices).
func (s *Structure) ToElementList() (*core.ElementList, error) {
	elems := make([]core.Connectivity, s.NumElements())
	for i := 1; i <= s.NumElements(); i++ {
		c, err := s.ElementAt(i)
		if err != nil {
			return nil, err
		}
		elems[i-1] = c
	}

	return core.NewElementList(elems)
}
