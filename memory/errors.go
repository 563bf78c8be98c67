// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
)

// Sentinel errors for shared-memory operations.
var (
	// ErrDimensionMismatch indicates operands whose length or orientation are
	// incompatible (Add, Dot, MulMatrix) or a ragged input grid (Load*).
	ErrDimensionMismatch = errors.New("memory: dimension mismatch")

	// ErrOrientationMismatch indicates MulMatrix was called on a column vector.
	ErrOrientationMismatch = errors.New("memory: vector must be a row vector")

	// ErrOutOfRange indicates an element or vector index outside bounds.
	ErrOutOfRange = errors.New("memory: index out of range")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("memory: nil vector")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("memory: nil matrix")
)

// opErrorf wraps a sentinel with the receiver type and method name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
