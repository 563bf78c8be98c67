// SPDX-License-Identifier: MIT

// Package matrix provides the dense value matrix carried by expression leaves.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with safe indexers (At/Set return
//     errors instead of panicking).
//   - Conversion to and from plain [][]float64 grids, the exchange format of
//     the parser, the shared-memory layer and the result writer.
//   - Validators for grid shape and the finite-value numeric policy.
//   - Sequential kernels (Add, Mul, Transpose, Negate) used as the reference
//     evaluation of an expression.
//
// Dense values are immutable by convention once they sit in an expression
// tree: the engine copies them into shared vectors before mutating anything,
// and writes the outcome back as a fresh Dense.
//
// Zero-sized shapes (0×0, r×0) are legal and represent the empty operand.
package matrix
