// SPDX-License-Identifier: MIT

package expr

import "fmt"

// Op identifies a node's operator. OpNone marks a leaf.
type Op uint8

const (
	OpNone      Op = iota // leaf
	OpAdd                 // elementwise sum, n-ary, associative
	OpMultiply            // matrix product, n-ary, associative
	OpNegate              // elementwise sign flip, unary
	OpTranspose           // transpose, unary
)

// unbounded is the max arity of the associative operators.
const unbounded = -1

var opSymbols = map[string]Op{
	"+": OpAdd,
	"*": OpMultiply,
	"-": OpNegate,
	"T": OpTranspose,
}

// ParseOp maps an input symbol ("+", "*", "-", "T") to its Op.
// Errors: ErrUnknownOp.
func ParseOp(symbol string) (Op, error) {
	op, ok := opSymbols[symbol]
	if !ok {
		return OpNone, fmt.Errorf("ParseOp(%q): %w", symbol, ErrUnknownOp)
	}

	return op, nil
}

// Arity returns the accepted operand count; hi is -1 when unbounded.
func (op Op) Arity() (lo, hi int) {
	switch op {
	case OpAdd, OpMultiply:
		return 2, unbounded
	case OpNegate, OpTranspose:
		return 1, 1
	default:
		return 0, 0
	}
}

// Associative reports whether Normalize folds the operator.
func (op Op) Associative() bool { return op == OpAdd || op == OpMultiply }

// Symbol returns the input symbol, or "" for OpNone.
func (op Op) Symbol() string {
	for s, o := range opSymbols {
		if o == op {
			return s
		}
	}

	return ""
}

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "LEAF"
	case OpAdd:
		return "ADD"
	case OpMultiply:
		return "MULTIPLY"
	case OpNegate:
		return "NEGATE"
	case OpTranspose:
		return "TRANSPOSE"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// checkArity validates n operands for op.
func checkArity(op Op, n int) error {
	lo, hi := op.Arity()
	if n < lo || (hi != unbounded && n > hi) {
		return fmt.Errorf("%s with %d operands: %w", op, n, ErrArity)
	}

	return nil
}
