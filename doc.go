// Package lae is a concurrent linear-algebra expression engine.
//
// 🚀 What is lae?
//
//	An in-process evaluator for matrix expressions built from four operators:
//		• ADD (+)        element-wise sum, n-ary
//		• MULTIPLY (*)   matrix product, n-ary
//		• NEGATE (-)     element-wise sign flip
//		• TRANSPOSE (T)  rows ↔ columns
//
// ✨ How it works
//
//   - The expression is binarized left-associatively, then reduced one
//     ready node at a time (leftmost, depth-first).
//   - Each step loads its operands into shared vectors guarded by
//     reader/writer locks and fans one task per row out to a worker pool.
//   - The pool always hands work to its least-fatigued idle worker; fatigue
//     grows with efficiency × busy time, and the run ends with a fairness
//     report (variance of fatigue across workers).
//
// Under the hood, everything is organized into subpackages:
//
//	matrix/     Dense value matrix, validators, sequential reference kernels
//	memory/     Shared Vector / Shared Matrix with ordered multi-lock acquisition
//	scheduling/ fatigue-weighted executor, worker report, Prometheus metrics
//	expr/       expression values and the arena Tree (normalize, find, resolve)
//	engine/     the evaluation loop and per-operator task fan-out
//	parser/     JSON / YAML expression documents
//	output/     {"result": ...} / {"error": ...} artifacts
//	config/     run configuration
//	cmd/        cobra command line (cmd/lae is the binary)
//
// Quick example:
//
//	exec, _ := scheduling.NewExecutor(4)
//	defer exec.Shutdown()
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{10, 20}, {30, 40}})
//	out, err := engine.New(exec).Evaluate(expr.Apply(expr.OpAdd, expr.Leaf(a), expr.Leaf(b)))
//	// out = [[11, 22], [33, 44]]
//
// Command line:
//
//	lae [--seed N] [--log-level L] [--metrics-out F] [--verify] <threads> <input> <output>
package lae
