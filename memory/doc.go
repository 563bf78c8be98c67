// SPDX-License-Identifier: MIT

// Package memory implements the concurrency-safe shared storage the engine
// mutates in place: Vector (a numeric sequence with an orientation tag and a
// reader/writer lock) and Matrix (an ordered generation of Vectors sharing one
// orientation).
//
// What:
//
//   - Vector: Get/Len/Orientation/Values under a shared lock;
//     Negate/Transpose/Add/MulMatrix under an exclusive lock; Dot under
//     shared locks on both operands.
//   - Matrix: LoadRowMajor/LoadColumnMajor replace the whole vector
//     generation; ReadRowMajor returns a dense row-major snapshot whatever the
//     stored orientation.
//
// Locking:
//
//   - Every operation that needs more than one vector lock acquires them in
//     ascending vector identity. A.Add(B) racing B.Add(A) therefore cannot
//     deadlock, and an operation whose peer is the receiver itself takes a
//     single lock (sync.RWMutex is not reentrant).
//   - Transpose is logical: it flips the tag and never moves data, so a Matrix
//     whose vectors were all transposed reads back as its transpose.
//
// Reload semantics:
//
//   - A reload write-locks every vector of the outgoing generation, swaps the
//     generation pointer, then releases. The incoming generation is published
//     unlocked. Readers that captured the old generation before the swap
//     finish against it (snapshot by reference, not by version number).
//
// Errors:
//
//   - ErrDimensionMismatch    length/orientation incompatible, ragged grid.
//   - ErrOrientationMismatch  MulMatrix on a column vector.
//   - ErrOutOfRange           index outside [0, Len()).
//   - ErrNilVector, ErrNilMatrix  nil operand.
package memory
