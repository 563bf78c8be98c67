// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"sync/atomic"
)

// Matrix is an ordered generation of Vectors that all share one orientation
// and one length. The generation is replaced wholesale by LoadRowMajor and
// LoadColumnMajor; the zero value is an empty matrix.
type Matrix struct {
	vecs atomic.Pointer[[]*Vector] // current generation; nil means empty
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// NewMatrixRowMajor returns a matrix loaded with LoadRowMajor(grid).
func NewMatrixRowMajor(grid [][]float64) (*Matrix, error) {
	m := NewMatrix()
	if err := m.LoadRowMajor(grid); err != nil {
		return nil, err
	}

	return m, nil
}

// NewMatrixColumnMajor returns a matrix loaded with LoadColumnMajor(grid).
func NewMatrixColumnMajor(grid [][]float64) (*Matrix, error) {
	m := NewMatrix()
	if err := m.LoadColumnMajor(grid); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadRowMajor installs a new generation with one Row vector per grid row.
// An empty grid installs an empty generation.
// Errors: ErrDimensionMismatch for a ragged grid (the current generation is kept).
// Complexity: O(r*c) plus the exclusive locks on the outgoing generation.
func (m *Matrix) LoadRowMajor(grid [][]float64) error {
	if err := validateGrid(grid); err != nil {
		return opErrorf("Matrix.LoadRowMajor", err)
	}
	next := make([]*Vector, len(grid))
	for i, row := range grid {
		next[i] = NewVector(row, Row)
	}
	m.install(next)

	return nil
}

// LoadColumnMajor installs a new generation with one Column vector per grid
// column. An empty grid (or a grid of empty rows) installs an empty generation.
// Errors: ErrDimensionMismatch for a ragged grid (the current generation is kept).
// Complexity: O(r*c) plus the exclusive locks on the outgoing generation.
func (m *Matrix) LoadColumnMajor(grid [][]float64) error {
	if err := validateGrid(grid); err != nil {
		return opErrorf("Matrix.LoadColumnMajor", err)
	}
	var next []*Vector
	if len(grid) > 0 {
		cols := len(grid[0])
		next = make([]*Vector, cols)
		col := make([]float64, len(grid))
		var i, j int
		for j = 0; j < cols; j++ {
			for i = 0; i < len(grid); i++ {
				col[i] = grid[i][j]
			}
			next[j] = NewVector(col, Column) // NewVector copies col
		}
	}
	m.install(next)

	return nil
}

// install swaps in next while every vector of the outgoing generation is held
// exclusively, so in-flight operations on the old vectors finish first.
// The new generation is published unlocked.
func (m *Matrix) install(next []*Vector) {
	old := m.generation()
	release := lockAll(old, true)
	m.vecs.Store(&next)
	release()
}

// generation returns the currently installed vector slice (never nil-deref).
func (m *Matrix) generation() []*Vector {
	p := m.vecs.Load()
	if p == nil {
		return nil
	}

	return *p
}

// ReadRowMajor returns a dense row-major snapshot of the current generation.
// MAIN DESCRIPTION:
//   - Row-stored generations copy vector i into row i; Column-stored ones are
//     read by indexing columns, so a transposed generation reads back as the
//     transpose.
//
// Implementation:
//   - Stage 1: capture the generation once.
//   - Stage 2: read-lock all of its vectors in identity order.
//   - Stage 3: copy out.
//
// Behavior highlights:
//   - Empty generation returns an empty, non-nil grid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) ReadRowMajor() [][]float64 {
	vecs := m.generation()
	if len(vecs) == 0 {
		return [][]float64{}
	}
	release := lockAll(vecs, false)
	defer release()

	rows, cols, colMajor := shapeLocked(vecs)
	out := make([][]float64, rows)
	var i, j int
	if !colMajor {
		for i = 0; i < rows; i++ {
			out[i] = append(make([]float64, 0, len(vecs[i].data)), vecs[i].data...)
		}

		return out
	}
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			if i < len(vecs[j].data) {
				out[i][j] = vecs[j].data[i]
			}
		}
	}

	return out
}

// Get returns the i-th vector of the current generation.
// Errors: ErrOutOfRange.
func (m *Matrix) Get(i int) (*Vector, error) {
	vecs := m.generation()
	if i < 0 || i >= len(vecs) {
		return nil, opErrorf(fmt.Sprintf("Matrix.Get(%d)", i), ErrOutOfRange)
	}

	return vecs[i], nil
}

// Len returns the number of vectors in the current generation.
func (m *Matrix) Len() int {
	return len(m.generation())
}

// Orientation returns the orientation of vector 0, or Row when empty.
func (m *Matrix) Orientation() Orientation {
	vecs := m.generation()
	if len(vecs) == 0 {
		return Row
	}

	return vecs[0].Orientation()
}

// Rows returns the logical row count, honoring the stored orientation.
func (m *Matrix) Rows() int {
	r, _ := m.Shape()
	return r
}

// Cols returns the logical column count, honoring the stored orientation.
func (m *Matrix) Cols() int {
	_, c := m.Shape()
	return c
}

// Shape returns the logical (rows, cols) of the current generation.
// Only vector 0 is locked; member vectors share its length by invariant.
func (m *Matrix) Shape() (rows, cols int) {
	vecs := m.generation()
	if len(vecs) == 0 {
		return 0, 0
	}
	vecs[0].mu.RLock()
	rows, cols, _ = shapeLocked(vecs)
	vecs[0].mu.RUnlock()

	return rows, cols
}

// shapeLocked computes the logical shape from vector 0; the caller holds at
// least a shared lock on vecs[0].
func shapeLocked(vecs []*Vector) (rows, cols int, colMajor bool) {
	if len(vecs) == 0 {
		return 0, 0, false
	}
	if vecs[0].orient == Column {
		return len(vecs[0].data), len(vecs), true
	}

	return len(vecs), len(vecs[0].data), false
}

// validateGrid rejects ragged input.
func validateGrid(grid [][]float64) error {
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != len(grid[0]) {
			return fmt.Errorf("row %d has %d values, row 0 has %d: %w", i, len(grid[i]), len(grid[0]), ErrDimensionMismatch)
		}
	}

	return nil
}
