// File: builder.go
// Role: canonical element-list generators (grid, fan, disk).
// Determinism:
//   - Stable vertex ids: QuadGrid lattice is row-major, fan/disk rims are
//     consecutive. Stable element order: row-major cells, rim order.

package builder

import (
	"fmt"

	"github.com/meshtopo/meshtopo/core"
)

// Generator minima (no magic literals in validation code).
const (
	minGridDim = 1
	minFanSize = 1
	minDiskRim = 3
)

// QuadGrid generates a rows×cols structured grid of quadrangles.
// Lattice vertex (r,c) has id r*(cols+1)+c+1 for r in 0..rows, c in 0..cols;
// cell (r,c) becomes the CCW quadrangle (v(r,c), v(r,c+1), v(r+1,c+1),
// v(r+1,c)), emitted row-major.
// Fails with ErrTooFewCells when rows or cols is below 1.
// Complexity: O(rows*cols).
func QuadGrid(rows, cols int) (*core.ElementList, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("grid %dx%d (each dim must be >= %d): %w", rows, cols, minGridDim, ErrTooFewCells)
	}
	vid := func(r, c int) int { return r*(cols+1) + c + 1 }

	elems := make([]core.Connectivity, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			q, err := core.Connect(core.Quadrangle, vid(r, c), vid(r, c+1), vid(r+1, c+1), vid(r+1, c))
			if err != nil {
				return nil, err
			}
			elems = append(elems, q)
		}
	}

	return core.NewElementList(elems)
}

// TriangleFan generates n triangles sharing vertex 1, an open star:
// triangle i is (1, i+1, i+2) over rim vertices 2..n+2. Vertex 1 stays on
// the mesh boundary.
// Fails with ErrTooFewCells when n is below 1.
// Complexity: O(n).
func TriangleFan(n int) (*core.ElementList, error) {
	if n < minFanSize {
		return nil, fmt.Errorf("fan of %d (must be >= %d): %w", n, minFanSize, ErrTooFewCells)
	}
	elems := make([]core.Connectivity, 0, n)
	for i := 1; i <= n; i++ {
		tr, err := core.Connect(core.Triangle, 1, i+1, i+2)
		if err != nil {
			return nil, err
		}
		elems = append(elems, tr)
	}

	return core.NewElementList(elems)
}

// TriangulatedDisk generates n triangles closing a ring around vertex 1:
// triangle i is (1, i+1, i+2) for i < n and the last triangle (1, n+1, 2)
// closes the rim, making vertex 1 interior.
// Fails with ErrTooFewCells when n is below 3.
// Complexity: O(n).
func TriangulatedDisk(n int) (*core.ElementList, error) {
	if n < minDiskRim {
		return nil, fmt.Errorf("disk of %d (must be >= %d): %w", n, minDiskRim, ErrTooFewCells)
	}
	elems := make([]core.Connectivity, 0, n)
	for i := 1; i < n; i++ {
		tr, err := core.Connect(core.Triangle, 1, i+1, i+2)
		if err != nil {
			return nil, err
		}
		elems = append(elems, tr)
	}
	last, err := core.Connect(core.Triangle, 1, n+1, 2)
	if err != nil {
		return nil, err
	}
	elems = append(elems, last)

	return core.NewElementList(elems)
}
