package tree

// Slot is the label of a node in an open tree: an operation, or nothing.
// The zero Slot is empty. An empty childless node is a boundary leaf, an
// open input awaiting substitution; an empty node with children only
// appears transiently inside Flatten.
type Slot[Op any] struct {
	op     Op
	filled bool
}

// Filled returns a slot holding an operation.
func Filled[Op any](op Op) Slot[Op] {
	return Slot[Op]{op: op, filled: true}
}

// Op returns the operation held by the slot, if any.
func (s Slot[Op]) Op() (Op, bool) {
	return s.op, s.filled
}

// IsEmpty reports whether the slot holds no operation.
func (s Slot[Op]) IsEmpty() bool {
	return !s.filled
}

// OpenTree is a tree with boundary: the representation of a pending
// composite of operations. It is either the identity (empty) tree on a
// type, or a nonempty tree whose internal nodes carry operations and whose
// empty leaves are the open inputs of the composite.
type OpenTree[Ty, Op any] struct {
	ty   Ty
	comp *Tree[Slot[Op]]
}

// Id returns the identity open tree on a type.
func Id[Ty, Op any](ty Ty) OpenTree[Ty, Op] {
	return OpenTree[Ty, Op]{ty: ty}
}

// Comp wraps a nonempty tree of slots as an open tree.
func Comp[Ty, Op any](t *Tree[Slot[Op]]) OpenTree[Ty, Op] {
	if t == nil {
		panic("Comp requires a nonempty tree")
	}
	return OpenTree[Ty, Op]{comp: t}
}

// IsId reports whether the open tree is an identity.
func (ot OpenTree[Ty, Op]) IsId() bool {
	return ot.comp == nil
}

// IdType returns the type tag of an identity tree. It panics on a nonempty
// tree.
func (ot OpenTree[Ty, Op]) IdType() Ty {
	if !ot.IsId() {
		panic("IdType called on a nonempty open tree")
	}
	return ot.ty
}

// Tree returns the underlying slot tree of a nonempty open tree. It panics
// on an identity.
func (ot OpenTree[Ty, Op]) Tree() *Tree[Slot[Op]] {
	if ot.IsId() {
		panic("Tree called on an identity open tree")
	}
	return ot.comp
}

// Boundary returns, in depth-first left-to-right order, the open childless
// nodes reachable from id, including id itself when it qualifies. The
// boundary enumerates exactly the open inputs of the composite under id.
func Boundary[Op any](t *Tree[Slot[Op]], id NodeID) []NodeID {
	var out []NodeID
	t.Walk(id, func(n NodeID) {
		if t.Value(n).IsEmpty() && len(t.Children(n)) == 0 {
			out = append(out, n)
		}
	})
	return out
}

// NodeLit is a literal description of one node of an open tree, used with
// OpNode and OpenLeaf to write composite shapes inline.
type NodeLit[Op any] struct {
	op       Op
	filled   bool
	children []NodeLit[Op]
}

// OpNode describes an internal node applying an operation to the given
// sub-composites.
func OpNode[Op any](op Op, children ...NodeLit[Op]) NodeLit[Op] {
	return NodeLit[Op]{op: op, filled: true, children: children}
}

// OpenLeaf describes a boundary leaf, an open composition slot.
func OpenLeaf[Op any]() NodeLit[Op] {
	return NodeLit[Op]{}
}

// TreeOf builds a nonempty open tree from a node literal.
func TreeOf[Ty, Op any](lit NodeLit[Op]) OpenTree[Ty, Op] {
	t := New(litSlot(lit))
	addLitChildren(t, t.Root(), lit.children)
	return Comp[Ty](t)
}

func litSlot[Op any](lit NodeLit[Op]) Slot[Op] {
	if lit.filled {
		return Filled(lit.op)
	}
	return Slot[Op]{}
}

func addLitChildren[Op any](t *Tree[Slot[Op]], parent NodeID, children []NodeLit[Op]) {
	for _, child := range children {
		id := t.AddChild(parent, litSlot(child))
		addLitChildren(t, id, child.children)
	}
}

// take reads and clears a node's slot.
func take[Op any](t *Tree[Slot[Op]], id NodeID) (Op, bool) {
	op, ok := t.Value(id).Op()
	t.SetValue(id, Slot[Op]{})
	return op, ok
}
