// File: dense.go
// Role: row-major dense matrix backing for topology matrix views.

package matrix

import "fmt"

// Dense is a row-major matrix of float64 values backed by one flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c matrix initialized to zeros.
// Fails with ErrBadShape when either dimension is not positive.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset of (row, col) with bounds checking.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Fails with ErrOutOfRange outside the matrix bounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	i, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[i], nil
}

// Set stores v at (row, col).
// Fails with ErrOutOfRange outside the matrix bounds.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	i, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[i] = v

	return nil
}

// Row returns a fresh copy of the given row.
// Fails with ErrOutOfRange for an invalid row index.
// Complexity: O(cols).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("row %d of %d: %w", row, m.r, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}
