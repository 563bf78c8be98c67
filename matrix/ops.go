// SPDX-License-Identifier: MIT
// Package matrix - sequential linear-algebra kernels on Dense.
//
// Purpose:
//   - Reference results for the four expression operators (Add, Mul,
//     Transpose, Negate), computed on one goroutine without shared state.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures as
//     "<Op>: <sentinel>" via opErrorf.
//   - Inputs are never mutated; each call allocates exactly one result.

package matrix

import "fmt"

// Operation tags used in error wrapping.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opNegate    = "Negate"
)

// opErrorf wraps err with an operation tag. Only call with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: validate non-nil operands of identical shape.
//   - Stage 2: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Mul performs C = A × B with an i→k→j loop, accumulating over k in
// ascending order for every (i, j).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix with rows and columns swapped.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Negate returns -m.
// Errors: ErrNilMatrix.
func Negate(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opNegate, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] = -res.data[idx]
	}

	return res, nil
}

// HasNonFinite reports whether m holds any NaN or ±Inf, e.g. after an
// overflowing sum.
func HasNonFinite(m *Dense) bool {
	for _, x := range m.data {
		if isNonFinite(x) {
			return true
		}
	}

	return false
}
