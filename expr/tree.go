// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/lae/matrix"
)

// NodeID addresses a node in a Tree's arena.
type NodeID int

// node is one arena slot. A leaf has op == OpNone and a matrix.
type node struct {
	op       Op
	m        *matrix.Dense
	children []NodeID
}

// Tree is an arena-backed expression owned by a single evaluator.
// Not safe for concurrent mutation.
type Tree struct {
	nodes []node
	root  NodeID
}

// NewTree validates e and copies its structure into a fresh arena.
// Leaf matrices are shared with e, never mutated: Resolve installs new ones.
// Errors: see Expr.Validate.
// Complexity: O(nodes).
func NewTree(e *Expr) (*Tree, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("NewTree: %w", err)
	}
	t := &Tree{}
	t.root = t.add(e)

	return t, nil
}

// add appends e's subtree, parent before children, and returns e's id.
func (t *Tree) add(e *Expr) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{op: e.Op, m: e.Matrix})
	if e.IsLeaf() {
		return id
	}
	children := make([]NodeID, len(e.Operands))
	for i, o := range e.Operands {
		children[i] = t.add(o)
	}
	t.nodes[id].children = children

	return id
}

// Root returns the root id; stable across Normalize and Resolve.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes reachable from the root.
func (t *Tree) Len() int {
	n := 0
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, t.nodes[id].children...)
	}

	return n
}

func (t *Tree) get(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return &t.nodes[id], nil
}

// IsLeaf reports whether id is a leaf; unknown ids report false.
func (t *Tree) IsLeaf(id NodeID) bool {
	n, err := t.get(id)
	return err == nil && n.op == OpNone
}

// Op returns the operator of id (OpNone for a leaf).
// Errors: ErrNodeNotFound.
func (t *Tree) Op(id NodeID) (Op, error) {
	n, err := t.get(id)
	if err != nil {
		return OpNone, err
	}

	return n.op, nil
}

// Children returns a copy of id's operand ids, empty for a leaf.
// Errors: ErrNodeNotFound.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}

	return append([]NodeID(nil), n.children...), nil
}

// Matrix returns the matrix held by leaf id, nil for an operator.
// Errors: ErrNodeNotFound.
func (t *Tree) Matrix(id NodeID) (*matrix.Dense, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}

	return n.m, nil
}

// Normalize binarizes every ADD and MULTIPLY node left-associatively.
// MAIN DESCRIPTION:
//   - op(c0, c1, ..., ck) becomes op(op(...op(c0, c1)..., ck-1), ck); the
//     node keeps its id, folded prefixes get new ids. Unary nodes pass through.
//
// Implementation:
//   - Stage 1: children first (post-order).
//   - Stage 2: while more than two children remain, replace the first two by
//     a new node of the same operator.
//
// Idempotent. Complexity: O(nodes).
func (t *Tree) Normalize() {
	t.normalize(t.root)
}

func (t *Tree) normalize(id NodeID) {
	for _, c := range t.nodes[id].children {
		t.normalize(c)
	}
	op := t.nodes[id].op
	if !op.Associative() {
		return
	}
	kids := t.nodes[id].children
	for len(kids) > 2 {
		folded := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{op: op, children: []NodeID{kids[0], kids[1]}})
		kids = append([]NodeID{folded}, kids[2:]...)
	}
	t.nodes[id].children = kids
}

// FindResolvable returns the first operator node, in depth-first left-to-right
// order, whose operands are all leaves. ok is false iff the root is a leaf.
// Complexity: O(nodes).
func (t *Tree) FindResolvable() (id NodeID, ok bool) {
	return t.find(t.root)
}

func (t *Tree) find(id NodeID) (NodeID, bool) {
	n := &t.nodes[id]
	if n.op == OpNone {
		return 0, false
	}
	if t.ready(n) {
		return id, true
	}
	for _, c := range n.children {
		if found, ok := t.find(c); ok {
			return found, true
		}
	}

	return 0, false
}

// ready reports whether every operand of n is a leaf.
func (t *Tree) ready(n *node) bool {
	for _, c := range n.children {
		if t.nodes[c].op != OpNone {
			return false
		}
	}

	return true
}

// Operands returns the leaf matrices of resolvable node id, in order.
// Errors: ErrNodeNotFound, ErrNotResolvable.
func (t *Tree) Operands(id NodeID) ([]*matrix.Dense, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	if n.op == OpNone || !t.ready(n) {
		return nil, fmt.Errorf("Operands(%d): %w", id, ErrNotResolvable)
	}
	out := make([]*matrix.Dense, len(n.children))
	for i, c := range n.children {
		out[i] = t.nodes[c].m
	}

	return out, nil
}

// Resolve rewrites resolvable node id into a leaf holding m.
// Errors: ErrNodeNotFound, ErrNotResolvable, ErrEmptyLeaf (m == nil).
func (t *Tree) Resolve(id NodeID, m *matrix.Dense) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.op == OpNone || !t.ready(n) {
		return fmt.Errorf("Resolve(%d): %w", id, ErrNotResolvable)
	}
	if m == nil {
		return fmt.Errorf("Resolve(%d): %w", id, ErrEmptyLeaf)
	}
	n.op = OpNone
	n.m = m
	n.children = nil

	return nil
}

// Result returns the root matrix once the whole tree is resolved.
// Errors: ErrUnresolved.
func (t *Tree) Result() (*matrix.Dense, error) {
	n := &t.nodes[t.root]
	if n.op != OpNone {
		return nil, ErrUnresolved
	}

	return n.m, nil
}

// Expr exports the reachable tree as a recursive value.
func (t *Tree) Expr() *Expr {
	return t.export(t.root)
}

func (t *Tree) export(id NodeID) *Expr {
	n := &t.nodes[id]
	if n.op == OpNone {
		return Leaf(n.m)
	}
	ops := make([]*Expr, len(n.children))
	for i, c := range n.children {
		ops[i] = t.export(c)
	}

	return Apply(n.op, ops...)
}
