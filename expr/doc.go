// SPDX-License-Identifier: MIT

// Package expr models matrix expressions.
//
// Two forms exist:
//
//   - Expr is a plain recursive value. Parsers and tests build it with Leaf
//     and Apply; nothing in it is shared or mutated.
//   - Tree is the evaluation form: an arena of nodes addressed by NodeID.
//     The engine normalizes it once, then repeatedly asks for the next
//     resolvable node and rewrites that node into a leaf holding its value.
//
// Normalization binarizes ADD and MULTIPLY left-associatively:
//
//	op(a, b, c, d)  →  op(op(op(a, b), c), d)
//
// FindResolvable walks depth-first, left child first, and returns the first
// operator node whose children are all leaves. The walk order fixes the order
// in which independent subtrees are evaluated.
package expr
