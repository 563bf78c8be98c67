// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lae/expr"
	"github.com/katalvlaran/lae/matrix"
)

// ErrVerification is returned by Verify when the concurrent and sequential
// results disagree.
var ErrVerification = errors.New("engine: result differs from sequential reference")

// verifyTolerance bounds the element-wise difference accepted by Verify.
const verifyTolerance = 1e-9

// Reference evaluates x on the calling goroutine with the dense kernels of
// package matrix, visiting nodes in the same order as Run. It shares no
// state with any Engine.
// Errors: tree validation, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func Reference(x *expr.Expr) (*matrix.Dense, error) {
	tree, err := expr.NewTree(x)
	if err != nil {
		return nil, err
	}
	tree.Normalize()
	for {
		id, ok := tree.FindResolvable()
		if !ok {
			return tree.Result()
		}
		op, err := tree.Op(id)
		if err != nil {
			return nil, err
		}
		operands, err := tree.Operands(id)
		if err != nil {
			return nil, err
		}
		value, err := apply(op, operands)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if matrix.HasNonFinite(value) {
			return nil, fmt.Errorf("%s: %w", op, matrix.ErrNaNInf)
		}
		if err = tree.Resolve(id, value); err != nil {
			return nil, err
		}
	}
}

func apply(op expr.Op, operands []*matrix.Dense) (*matrix.Dense, error) {
	switch op {
	case expr.OpAdd:
		return matrix.Add(operands[0], operands[1])
	case expr.OpMultiply:
		return matrix.Mul(operands[0], operands[1])
	case expr.OpNegate:
		return matrix.Negate(operands[0])
	case expr.OpTranspose:
		return matrix.Transpose(operands[0])
	default:
		return nil, expr.ErrUnknownOp
	}
}

// Verify recomputes x with Reference and compares it to got.
// Errors: the Reference error, or ErrVerification.
func Verify(x *expr.Expr, got *matrix.Dense) error {
	want, err := Reference(x)
	if err != nil {
		return err
	}
	if !matrix.Equal(want, got, verifyTolerance) {
		return fmt.Errorf("%dx%d vs reference %dx%d: %w",
			got.Rows(), got.Cols(), want.Rows(), want.Cols(), ErrVerification)
	}

	return nil
}
