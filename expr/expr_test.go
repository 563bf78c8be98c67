// SPDX-License-Identifier: MIT
package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lae/expr"
	"github.com/katalvlaran/lae/matrix"
)

func dense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

func TestParseOp(t *testing.T) {
	cases := map[string]expr.Op{
		"+": expr.OpAdd,
		"*": expr.OpMultiply,
		"-": expr.OpNegate,
		"T": expr.OpTranspose,
	}
	for sym, want := range cases {
		got, err := expr.ParseOp(sym)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, sym, got.Symbol())
	}

	_, err := expr.ParseOp("/")
	require.ErrorIs(t, err, expr.ErrUnknownOp)
	_, err = expr.ParseOp("t")
	require.ErrorIs(t, err, expr.ErrUnknownOp)
}

func TestOp_ArityAndString(t *testing.T) {
	lo, hi := expr.OpAdd.Arity()
	require.Equal(t, 2, lo)
	require.Equal(t, -1, hi)
	lo, hi = expr.OpTranspose.Arity()
	require.Equal(t, 1, lo)
	require.Equal(t, 1, hi)

	require.Equal(t, "MULTIPLY", expr.OpMultiply.String())
	require.Equal(t, "NEGATE", expr.OpNegate.String())
	require.True(t, expr.OpAdd.Associative())
	require.False(t, expr.OpNegate.Associative())
}

func TestExpr_Validate(t *testing.T) {
	m := dense(t, 2, 2)
	cases := []struct {
		name string
		e    *expr.Expr
		err  error
	}{
		{"leaf", expr.Leaf(m), nil},
		{"nil", nil, expr.ErrNilExpr},
		{"empty leaf", expr.Leaf(nil), expr.ErrEmptyLeaf},
		{"unary add", expr.Apply(expr.OpAdd, expr.Leaf(m)), expr.ErrArity},
		{"binary negate", expr.Apply(expr.OpNegate, expr.Leaf(m), expr.Leaf(m)), expr.ErrArity},
		{"nullary transpose", expr.Apply(expr.OpTranspose), expr.ErrArity},
		{"nil operand", expr.Apply(expr.OpMultiply, expr.Leaf(m), nil), expr.ErrNilExpr},
		{"deep empty leaf", expr.Apply(expr.OpNegate, expr.Apply(expr.OpAdd, expr.Leaf(m), expr.Leaf(nil))), expr.ErrEmptyLeaf},
		{"ternary add", expr.Apply(expr.OpAdd, expr.Leaf(m), expr.Leaf(m), expr.Leaf(m)), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.e.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)

			_, err = expr.NewTree(tc.e)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestExpr_String(t *testing.T) {
	e := expr.Apply(expr.OpAdd,
		expr.Apply(expr.OpMultiply, expr.Leaf(dense(t, 2, 3)), expr.Leaf(dense(t, 3, 2))),
		expr.Apply(expr.OpTranspose, expr.Leaf(dense(t, 2, 2))),
	)
	require.Equal(t, "+(*(2x3, 3x2), T(2x2))", e.String())
}
