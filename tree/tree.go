// Package tree provides ordered trees with boundary: the open-tree
// representation of not-yet-reduced composites of operations, the flatten
// algorithm that collapses a tree of trees into one flat tree, and the
// structural isomorphism used to compare composite shapes.
//
// Trees are arena-backed: nodes live in a slice and are addressed by stable
// NodeID indices. The flatten algorithm repeatedly detaches and reattaches
// subtrees by identity, which index handles support without aliasing
// hazards.
package tree

import (
	"github.com/teranos/catena/errors"
)

// NodeID is a stable handle to a node within one tree's arena. IDs are
// never invalidated by grafting or reparenting.
type NodeID int

// InvalidNode is the null node handle.
const InvalidNode NodeID = -1

type node[T any] struct {
	value    T
	parent   NodeID
	children []NodeID
}

// Tree is an ordered tree of values. The zero value is not usable;
// construct with New.
//
// Nodes detached by reparenting remain in the arena as orphans. Orphans are
// unreachable from the root and ignored by traversals.
type Tree[T any] struct {
	nodes []node[T]
	root  NodeID
}

// New creates a tree with a single root node holding the given value.
func New[T any](rootValue T) *Tree[T] {
	return &Tree[T]{
		nodes: []node[T]{{value: rootValue, parent: InvalidNode}},
		root:  0,
	}
}

// Root returns the root node's handle.
func (t *Tree[T]) Root() NodeID {
	return t.root
}

// Value returns the value stored at a node.
func (t *Tree[T]) Value(id NodeID) T {
	return t.nodes[id].value
}

// SetValue replaces the value stored at a node.
func (t *Tree[T]) SetValue(id NodeID, v T) {
	t.nodes[id].value = v
}

// Parent returns a node's parent, or InvalidNode for the root and orphans.
func (t *Tree[T]) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns a node's children in order. The returned slice is owned
// by the tree and must not be mutated by the caller.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// AddChild appends a new child node under parent and returns its handle.
func (t *Tree[T]) AddChild(parent NodeID, v T) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{value: v, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Extend copies another tree into this tree's arena as an orphan subtree
// and returns the handle of the copied root. The copy preserves child
// order; the original tree is not modified.
func (t *Tree[T]) Extend(other *Tree[T]) NodeID {
	return t.extendNode(other, other.root, InvalidNode)
}

func (t *Tree[T]) extendNode(other *Tree[T], src, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{value: other.nodes[src].value, parent: parent})
	for _, child := range other.nodes[src].children {
		childID := t.extendNode(other, child, id)
		t.nodes[id].children = append(t.nodes[id].children, childID)
	}
	return id
}

// MoveChildren detaches every child of from and appends them, in order, to
// the children of to. After the move, from is childless.
func (t *Tree[T]) MoveChildren(from, to NodeID) {
	if from == to {
		panic(errors.AssertionFailedf("cannot move children of node %d onto itself", from))
	}
	moved := t.nodes[from].children
	t.nodes[from].children = nil
	for _, child := range moved {
		t.nodes[child].parent = to
	}
	t.nodes[to].children = append(t.nodes[to].children, moved...)
}

// Walk visits the subtree rooted at id in depth-first preorder, including
// id itself.
func (t *Tree[T]) Walk(id NodeID, visit func(NodeID)) {
	visit(id)
	for _, child := range t.nodes[id].children {
		t.Walk(child, visit)
	}
}

// Clone returns a deep copy of the tree. Reachable structure only; orphans
// are dropped.
func (t *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{}
	clone.extendNode(t, t.root, InvalidNode)
	clone.root = 0
	return clone
}
