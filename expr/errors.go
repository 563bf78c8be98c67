// SPDX-License-Identifier: MIT

package expr

import "errors"

var (
	// ErrUnknownOp is returned by ParseOp for an unrecognized symbol.
	ErrUnknownOp = errors.New("expr: unknown operator")

	// ErrArity indicates an operator with the wrong number of operands.
	ErrArity = errors.New("expr: wrong number of operands")

	// ErrEmptyLeaf indicates a leaf without a matrix.
	ErrEmptyLeaf = errors.New("expr: leaf has no matrix")

	// ErrNilExpr indicates a nil expression or operand.
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrNodeNotFound indicates a NodeID outside the arena.
	ErrNodeNotFound = errors.New("expr: node not found")

	// ErrNotResolvable indicates Resolve on a leaf or on an operator with an
	// unresolved operand.
	ErrNotResolvable = errors.New("expr: node is not resolvable")

	// ErrUnresolved is returned by Result while the root is still an operator.
	ErrUnresolved = errors.New("expr: expression not fully resolved")
)
