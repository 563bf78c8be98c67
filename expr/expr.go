// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lae/matrix"
)

// Expr is a recursive expression value: a leaf when Op is OpNone, otherwise
// an operator applied to Operands in order.
type Expr struct {
	Op       Op
	Matrix   *matrix.Dense
	Operands []*Expr
}

// Leaf wraps a matrix.
func Leaf(m *matrix.Dense) *Expr { return &Expr{Matrix: m} }

// Apply builds an operator node. Validation happens in Validate / NewTree.
func Apply(op Op, operands ...*Expr) *Expr {
	return &Expr{Op: op, Operands: operands}
}

// IsLeaf reports whether e is a leaf.
func (e *Expr) IsLeaf() bool { return e.Op == OpNone }

// Validate checks e recursively: leaves carry a matrix, operators have a
// legal operand count and no nil operand.
// Errors: ErrNilExpr, ErrEmptyLeaf, ErrArity, ErrUnknownOp.
func (e *Expr) Validate() error {
	if e == nil {
		return ErrNilExpr
	}
	if e.IsLeaf() {
		if e.Matrix == nil {
			return ErrEmptyLeaf
		}
		if len(e.Operands) > 0 {
			return fmt.Errorf("leaf with %d operands: %w", len(e.Operands), ErrArity)
		}
		return nil
	}
	if e.Op > OpTranspose {
		return fmt.Errorf("%s: %w", e.Op, ErrUnknownOp)
	}
	if err := checkArity(e.Op, len(e.Operands)); err != nil {
		return err
	}
	for i, o := range e.Operands {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%s operand %d: %w", e.Op, i, err)
		}
	}

	return nil
}

// String renders the structure, leaves as their shape: "+(*(2x3, 3x2), 2x2)".
func (e *Expr) String() string {
	var b strings.Builder
	e.render(&b)

	return b.String()
}

func (e *Expr) render(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	if e.IsLeaf() {
		if e.Matrix == nil {
			b.WriteString("<empty>")
			return
		}
		fmt.Fprintf(b, "%dx%d", e.Matrix.Rows(), e.Matrix.Cols())
		return
	}
	b.WriteString(e.Op.Symbol())
	b.WriteByte('(')
	for i, o := range e.Operands {
		if i > 0 {
			b.WriteString(", ")
		}
		o.render(b)
	}
	b.WriteByte(')')
}
