// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lae/expr"
	"github.com/katalvlaran/lae/matrix"
	"github.com/katalvlaran/lae/memory"
	"github.com/katalvlaran/lae/scheduling"
)

// ErrNilExecutor is returned by Run when the engine has no executor.
var ErrNilExecutor = errors.New("engine: nil executor")

// Engine drives tree evaluation. Runs are serialized; the executor is owned
// by the caller and is not shut down by the engine.
type Engine struct {
	mu     sync.Mutex
	exec   *scheduling.Executor
	left   *memory.Matrix
	right  *memory.Matrix
	logger *slog.Logger
}

// New returns an engine dispatching through exec.
func New(exec *scheduling.Executor, opts ...Option) *Engine {
	e := &Engine{
		exec:   exec,
		left:   memory.NewMatrix(),
		right:  memory.NewMatrix(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate builds a tree from x and runs it.
// Errors: see expr.NewTree and Run.
func (e *Engine) Evaluate(x *expr.Expr) (*matrix.Dense, error) {
	tree, err := expr.NewTree(x)
	if err != nil {
		return nil, err
	}

	return e.Run(tree)
}

// Run reduces tree to a single leaf and returns its matrix.
// MAIN DESCRIPTION:
//   - Normalize once, then Step the leftmost depth-first resolvable node
//     until the root is a leaf.
//
// Errors:
//   - ErrNilExecutor; the first Step error, wrapped with the node's operator.
//     The tree keeps every node resolved before the failure.
func (e *Engine) Run(tree *expr.Tree) (*matrix.Dense, error) {
	if e.exec == nil {
		return nil, ErrNilExecutor
	}
	if tree == nil {
		return nil, expr.ErrNilExpr
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	runID := uuid.NewString()
	logger := e.logger.With(slog.String("run_id", runID))
	start := time.Now()

	tree.Normalize()
	logger.Info("evaluation started",
		slog.Int("nodes", tree.Len()),
		slog.Int("workers", e.exec.Size()))

	steps := 0
	for {
		id, ok := tree.FindResolvable()
		if !ok {
			break
		}
		if err := e.step(logger, tree, id); err != nil {
			logger.Error("evaluation failed",
				slog.Int("node", int(id)),
				slog.Int("steps", steps),
				slog.String("error", err.Error()))
			return nil, err
		}
		steps++
	}

	result, err := tree.Result()
	if err != nil {
		return nil, err
	}
	logger.Info("evaluation completed",
		slog.Int("steps", steps),
		slog.Int("rows", result.Rows()),
		slog.Int("cols", result.Cols()),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// Step evaluates resolvable node id and rewrites it into a leaf.
// Errors: expr.ErrNotResolvable, matrix.ErrDimensionMismatch, task errors.
func (e *Engine) Step(tree *expr.Tree, id expr.NodeID) error {
	if e.exec == nil {
		return ErrNilExecutor
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.step(e.logger, tree, id)
}

// step implements Step; the caller holds e.mu.
//
// Implementation:
//   - Stage 1: fetch operands and check shapes before touching shared memory.
//   - Stage 2: load left (and right) row-major.
//   - Stage 3: one task per left row, SubmitAll (barrier).
//   - Stage 4: read left back and resolve the node.
func (e *Engine) step(logger *slog.Logger, tree *expr.Tree, id expr.NodeID) error {
	op, err := tree.Op(id)
	if err != nil {
		return err
	}
	operands, err := tree.Operands(id)
	if err != nil {
		return err
	}
	rows, cols, err := resultShape(op, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Debug("step",
		slog.Int("node", int(id)),
		slog.String("op", op.String()),
		slog.Int("rows", rows),
		slog.Int("cols", cols))

	// An empty inner dimension has no row work but a non-empty product.
	if op == expr.OpMultiply && operands[0].Cols() == 0 {
		zero, err := matrix.NewDense(rows, cols)
		if err != nil {
			return err
		}
		return tree.Resolve(id, zero)
	}

	if err = e.left.LoadRowMajor(operands[0].ToRows()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(operands) > 1 {
		if err = e.right.LoadRowMajor(operands[1].ToRows()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err = e.exec.SubmitAll(e.tasks(op)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	value, err := readBack(e.left, rows, cols)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tree.Resolve(id, value)
}

// tasks builds one task per left row.
func (e *Engine) tasks(op expr.Op) []scheduling.Task {
	left, right := e.left, e.right
	n := left.Len()
	out := make([]scheduling.Task, n)
	for i := 0; i < n; i++ {
		switch op {
		case expr.OpAdd:
			out[i] = func() error {
				l, r, err := pair(left, right, i)
				if err != nil {
					return err
				}
				return l.Add(r)
			}
		case expr.OpMultiply:
			out[i] = func() error {
				l, err := left.Get(i)
				if err != nil {
					return err
				}
				return l.MulMatrix(right)
			}
		case expr.OpNegate:
			out[i] = func() error {
				l, err := left.Get(i)
				if err != nil {
					return err
				}
				l.Negate()
				return nil
			}
		case expr.OpTranspose:
			out[i] = func() error {
				l, err := left.Get(i)
				if err != nil {
					return err
				}
				l.Transpose()
				return nil
			}
		}
	}

	return out
}

// pair returns row i of both matrices.
func pair(left, right *memory.Matrix, i int) (*memory.Vector, *memory.Vector, error) {
	l, err := left.Get(i)
	if err != nil {
		return nil, nil, err
	}
	r, err := right.Get(i)
	if err != nil {
		return nil, nil, err
	}

	return l, r, nil
}

// resultShape validates operand shapes for op and returns the result shape.
func resultShape(op expr.Op, operands []*matrix.Dense) (rows, cols int, err error) {
	a := operands[0]
	switch op {
	case expr.OpAdd:
		if err = matrix.ValidateSameShape(a, operands[1]); err != nil {
			return 0, 0, err
		}
		return a.Rows(), a.Cols(), nil
	case expr.OpMultiply:
		if err = matrix.ValidateMulCompatible(a, operands[1]); err != nil {
			return 0, 0, err
		}
		return a.Rows(), operands[1].Cols(), nil
	case expr.OpTranspose:
		return a.Cols(), a.Rows(), nil
	default:
		return a.Rows(), a.Cols(), nil
	}
}

// readBack converts the shared matrix into a Dense of the expected shape.
// Zero-row results keep their column count, which a row-major grid cannot carry.
func readBack(m *memory.Matrix, rows, cols int) (*matrix.Dense, error) {
	grid := m.ReadRowMajor()
	if len(grid) == 0 {
		return matrix.NewDense(rows, cols)
	}
	d, err := matrix.NewDenseFromRows(grid)
	if err != nil {
		return nil, err
	}
	if d.Rows() != rows || d.Cols() != cols {
		return nil, fmt.Errorf("read back %dx%d, want %dx%d: %w",
			d.Rows(), d.Cols(), rows, cols, matrix.ErrDimensionMismatch)
	}

	return d, nil
}

// Report returns the executor's worker report.
func (e *Engine) Report() scheduling.Report {
	if e.exec == nil {
		return scheduling.Report{}
	}

	return e.exec.Report()
}
