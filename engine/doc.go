// SPDX-License-Identifier: MIT

// Package engine evaluates expression trees on the shared-memory vectors of
// package memory, fanning every operator out over a scheduling.Executor.
//
// One evaluation step takes the next resolvable node, loads its operands into
// two reusable shared matrices (left, right), runs one task per left row and
// reads the left matrix back as the node's value:
//
//	ADD        left[i] += right[i]
//	MULTIPLY   left[i] = left[i] · right
//	NEGATE     left[i] = -left[i]
//	TRANSPOSE  flip left[i]'s orientation (the read-back is the transpose)
//
// Steps are strictly sequential: each batch drains before the next node is
// chosen. A failing task aborts the evaluation.
package engine
