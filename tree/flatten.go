package tree

import (
	"github.com/teranos/catena/errors"
)

// Flatten collapses a tree of trees into a single flat tree.
//
// The outer tree's internal nodes carry open trees; its boundary leaves are
// open slots. Each inner tree is substituted, in breadth-first order, into
// the boundary slot it feeds: identity inner trees are transparent and
// spliced out, nonempty inner trees are grafted in place and their boundary
// re-paired with the outer node's children.
//
// Flattening is associative and identity-transparent: inserting or removing
// identity-wrapped layers never changes the result up to Isomorphic.
//
// Flatten consumes its argument: the outer tree and the grafted inner trees
// are mutated in place and must not be reused.
//
// Structural invariants are enforced loudly: an outer root without an inner
// tree, an identity node with other than exactly one child, or a boundary
// arity mismatch all panic, since they indicate a malformed composite
// rather than a recoverable condition.
func Flatten[Ty, Op any](outer OpenTree[Ty, OpenTree[Ty, Op]]) OpenTree[Ty, Op] {
	// Degenerate case: the outer tree is itself an identity.
	if outer.IsId() {
		return Id[Ty, Op](outer.IdType())
	}
	outerTree := outer.Tree()

	// Seed the flattened tree from the root of the outer tree. An identity
	// at the root yields an empty placeholder whose type is remembered in
	// case the whole composite degenerates to an identity.
	rootValue, ok := take(outerTree, outerTree.Root())
	if !ok {
		panic(errors.AssertionFailedf("root node of outer tree must contain a tree"))
	}
	var (
		acc          *Tree[Slot[Op]]
		rootType     Ty
		haveRootType bool
	)
	if rootValue.IsId() {
		acc = New(Slot[Op]{})
		rootType = rootValue.IdType()
		haveRootType = true
	} else {
		acc = rootValue.Tree()
	}

	// Pending substitutions: an outer node paired with the boundary leaf of
	// the accumulated tree it must fill.
	type task struct {
		outer NodeID
		leaf  NodeID
	}
	var queue []task
	enqueue := func(outerID, accID NodeID) {
		kids := outerTree.Children(outerID)
		leaves := Boundary(acc, accID)
		if len(kids) != len(leaves) {
			panic(errors.AssertionFailedf(
				"outer node has %d children but the grafted boundary has %d slots",
				len(kids), len(leaves)))
		}
		for i := range kids {
			queue = append(queue, task{outer: kids[i], leaf: leaves[i]})
		}
	}
	enqueue(outerTree.Root(), acc.Root())

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		value, ok := take(outerTree, next.outer)
		if !ok {
			// A boundary leaf of the outer tree: the slot stays open.
			continue
		}
		if value.IsId() {
			// Identity trees are transparent: splice the node out by
			// re-queuing its single child against the same leaf.
			kids := outerTree.Children(next.outer)
			if len(kids) != 1 {
				panic(errors.AssertionFailedf(
					"identity node in outer tree must have exactly one child, found %d", len(kids)))
			}
			queue = append(queue, task{outer: kids[0], leaf: next.leaf})
			continue
		}

		// Graft the inner tree beneath the target leaf: the leaf takes the
		// inner root's operation and adopts the inner root's children.
		subRoot := acc.Extend(value.Tree())
		rootSlot := acc.Value(subRoot)
		acc.SetValue(subRoot, Slot[Op]{})
		acc.SetValue(next.leaf, rootSlot)
		acc.MoveChildren(subRoot, next.leaf)

		enqueue(next.outer, next.leaf)
	}

	// Fully degenerate case: nothing was ever grafted into the placeholder.
	if acc.Value(acc.Root()).IsEmpty() {
		if !haveRootType {
			panic(errors.AssertionFailedf("flattened tree is empty but no identity type was recorded"))
		}
		return Id[Ty, Op](rootType)
	}
	return Comp[Ty](acc)
}
