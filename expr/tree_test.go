// SPDX-License-Identifier: MIT
package expr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lae/expr"
	"github.com/katalvlaran/lae/matrix"
)

// tagged returns a 1x1 leaf whose single value identifies it.
func tagged(t *testing.T, v float64) *expr.Expr {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{{v}})
	require.NoError(t, err)

	return expr.Leaf(m)
}

// render prints leaves by their tag value so fold order is visible.
func render(e *expr.Expr) string {
	if e.IsLeaf() {
		v, _ := e.Matrix.At(0, 0)
		return fmt.Sprintf("%g", v)
	}
	s := e.Op.Symbol() + "("
	for i, o := range e.Operands {
		if i > 0 {
			s += ","
		}
		s += render(o)
	}

	return s + ")"
}

func newTree(t *testing.T, e *expr.Expr) *expr.Tree {
	t.Helper()
	tr, err := expr.NewTree(e)
	require.NoError(t, err)

	return tr
}

func TestNormalize_LeftFold(t *testing.T) {
	for k := 2; k <= 6; k++ {
		for _, op := range []expr.Op{expr.OpAdd, expr.OpMultiply} {
			operands := make([]*expr.Expr, k)
			for i := range operands {
				operands[i] = tagged(t, float64(i+1))
			}
			tr := newTree(t, expr.Apply(op, operands...))
			tr.Normalize()

			// Expected: op(op(op(1,2),3),...,k)
			want := fmt.Sprintf("%s(1,2)", op.Symbol())
			for i := 3; i <= k; i++ {
				want = fmt.Sprintf("%s(%s,%d)", op.Symbol(), want, i)
			}
			require.Equal(t, want, render(tr.Expr()), "k=%d op=%s", k, op)
			require.Equal(t, 2*k-1, tr.Len())
		}
	}
}

func TestNormalize_NestedAndUnary(t *testing.T) {
	e := expr.Apply(expr.OpNegate,
		expr.Apply(expr.OpAdd,
			tagged(t, 1),
			expr.Apply(expr.OpMultiply, tagged(t, 2), tagged(t, 3), tagged(t, 4)),
			tagged(t, 5),
		),
	)
	tr := newTree(t, e)
	root := tr.Root()
	tr.Normalize()

	require.Equal(t, "-(+(+(1,*(*(2,3),4)),5))", render(tr.Expr()))
	require.Equal(t, root, tr.Root(), "root id is stable")

	tr.Normalize()
	require.Equal(t, "-(+(+(1,*(*(2,3),4)),5))", render(tr.Expr()), "idempotent")
}

func TestNormalize_EveryAssociativeNodeBinary(t *testing.T) {
	operands := make([]*expr.Expr, 7)
	for i := range operands {
		operands[i] = expr.Apply(expr.OpAdd, tagged(t, 1), tagged(t, 2), tagged(t, 3))
	}
	tr := newTree(t, expr.Apply(expr.OpMultiply, operands...))
	tr.Normalize()

	var walk func(id expr.NodeID)
	walk = func(id expr.NodeID) {
		op, err := tr.Op(id)
		require.NoError(t, err)
		kids, err := tr.Children(id)
		require.NoError(t, err)
		if op.Associative() {
			require.Len(t, kids, 2)
		}
		for _, c := range kids {
			walk(c)
		}
	}
	walk(tr.Root())
}

func TestFindResolvable_LeafRoot(t *testing.T) {
	tr := newTree(t, tagged(t, 1))
	_, ok := tr.FindResolvable()
	require.False(t, ok)

	m, err := tr.Result()
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
}

func TestFindResolvable_LeftmostDepthFirst(t *testing.T) {
	// +( -(1), T(2) ): both unary subtrees are ready; the left one comes first.
	e := expr.Apply(expr.OpAdd,
		expr.Apply(expr.OpNegate, tagged(t, 1)),
		expr.Apply(expr.OpTranspose, tagged(t, 2)),
	)
	tr := newTree(t, e)
	tr.Normalize()

	id, ok := tr.FindResolvable()
	require.True(t, ok)
	op, err := tr.Op(id)
	require.NoError(t, err)
	require.Equal(t, expr.OpNegate, op)

	require.NoError(t, tr.Resolve(id, mustDense(t, -1)))
	id, ok = tr.FindResolvable()
	require.True(t, ok)
	op, _ = tr.Op(id)
	require.Equal(t, expr.OpTranspose, op)

	require.NoError(t, tr.Resolve(id, mustDense(t, 2)))
	id, ok = tr.FindResolvable()
	require.True(t, ok)
	require.Equal(t, tr.Root(), id)

	ops, err := tr.Operands(id)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	_, err = tr.Result()
	require.ErrorIs(t, err, expr.ErrUnresolved)

	require.NoError(t, tr.Resolve(id, mustDense(t, 1)))
	_, ok = tr.FindResolvable()
	require.False(t, ok, "none iff the tree is a single leaf")
	require.Equal(t, 1, tr.Len())
}

func TestResolve_Errors(t *testing.T) {
	e := expr.Apply(expr.OpAdd,
		expr.Apply(expr.OpNegate, tagged(t, 1)),
		tagged(t, 2),
	)
	tr := newTree(t, e)

	require.ErrorIs(t, tr.Resolve(tr.Root(), mustDense(t, 0)), expr.ErrNotResolvable)
	_, err := tr.Operands(tr.Root())
	require.ErrorIs(t, err, expr.ErrNotResolvable)

	kids, err := tr.Children(tr.Root())
	require.NoError(t, err)
	require.ErrorIs(t, tr.Resolve(kids[1], mustDense(t, 0)), expr.ErrNotResolvable, "leaf")
	require.ErrorIs(t, tr.Resolve(kids[0], nil), expr.ErrEmptyLeaf)
	require.ErrorIs(t, tr.Resolve(expr.NodeID(99), mustDense(t, 0)), expr.ErrNodeNotFound)

	_, err = tr.Op(-1)
	require.ErrorIs(t, err, expr.ErrNodeNotFound)
	require.False(t, tr.IsLeaf(99))
	require.True(t, tr.IsLeaf(kids[1]))
}

func TestNewTree_DoesNotAliasExpr(t *testing.T) {
	e := expr.Apply(expr.OpAdd, tagged(t, 1), tagged(t, 2), tagged(t, 3))
	tr := newTree(t, e)
	tr.Normalize()

	require.Len(t, e.Operands, 3, "source expression untouched")
	require.Equal(t, "+(+(1,2),3)", render(tr.Expr()))
}

func mustDense(t *testing.T, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{{v}})
	require.NoError(t, err)

	return m
}
