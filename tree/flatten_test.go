package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/catena/tree"
)

type ot = tree.OpenTree[rune, rune]

func outerLeaf() tree.NodeLit[ot] {
	return tree.OpenLeaf[ot]()
}

// flatTarget is the depth-3 composite f(h(k(_, _), _), g(_, l(_, _))).
func flatTarget() ot {
	return tree.TreeOf[rune](
		tree.OpNode('f',
			tree.OpNode('h',
				tree.OpNode('k', leaf(), leaf()),
				leaf(),
			),
			tree.OpNode('g',
				leaf(),
				tree.OpNode('l', leaf(), leaf()),
			),
		),
	)
}

// The three subtrees the target splits into: the top layer f(_, g(_, _)),
// the left branch h(k(_, _), _), and the inner node l(_, _).
func splitSubtrees() (ot, ot, ot) {
	sub1 := tree.TreeOf[rune](
		tree.OpNode('f',
			leaf(),
			tree.OpNode('g', leaf(), leaf()),
		),
	)
	sub2 := tree.TreeOf[rune](
		tree.OpNode('h',
			tree.OpNode('k', leaf(), leaf()),
			leaf(),
		),
	)
	sub3 := tree.TreeOf[rune](tree.OpNode('l', leaf(), leaf()))
	return sub1, sub2, sub3
}

func TestFlattenRoundTrip(t *testing.T) {
	sub1, sub2, sub3 := splitSubtrees()

	outer := tree.TreeOf[rune](
		tree.OpNode(sub1,
			tree.OpNode(sub2, outerLeaf(), outerLeaf(), outerLeaf()),
			outerLeaf(),
			tree.OpNode(sub3, outerLeaf(), outerLeaf()),
		),
	)

	got := tree.Flatten(outer)
	assert.True(t, tree.Isomorphic(got, flatTarget()))
}

func TestFlattenIdentityTransparency(t *testing.T) {
	sub1, sub2, sub3 := splitSubtrees()

	// Same split, but every lower subtree is wrapped in an identity layer.
	outer := tree.TreeOf[rune](
		tree.OpNode(sub1,
			tree.OpNode(tree.Id[rune, rune]('X'),
				tree.OpNode(sub2, outerLeaf(), outerLeaf(), outerLeaf()),
			),
			tree.OpNode(tree.Id[rune, rune]('X'), outerLeaf()),
			tree.OpNode(tree.Id[rune, rune]('X'),
				tree.OpNode(sub3, outerLeaf(), outerLeaf()),
			),
		),
	)

	got := tree.Flatten(outer)
	assert.True(t, tree.Isomorphic(got, flatTarget()))
}

func TestFlattenOuterIdentity(t *testing.T) {
	outer := tree.Id[rune, ot]('X')
	got := tree.Flatten(outer)
	require.True(t, got.IsId())
	assert.Equal(t, 'X', got.IdType())
}

func TestFlattenAllInnerIdentities(t *testing.T) {
	outer := tree.TreeOf[rune](
		tree.OpNode(tree.Id[rune, rune]('X'),
			tree.OpNode(tree.Id[rune, rune]('x'), outerLeaf()),
		),
	)
	got := tree.Flatten(outer)
	require.True(t, got.IsId())
	assert.Equal(t, 'X', got.IdType())
}

func TestFlattenIdentityRootWrapper(t *testing.T) {
	// An identity at the outer root is transparent: the lone grafted
	// subtree is the result.
	_, _, sub3 := splitSubtrees()
	outer := tree.TreeOf[rune](
		tree.OpNode(tree.Id[rune, rune]('X'),
			tree.OpNode(sub3, outerLeaf(), outerLeaf()),
		),
	)
	got := tree.Flatten(outer)
	assert.True(t, tree.Isomorphic(got, sub3))
}

func TestFlattenMalformedIdentityNode(t *testing.T) {
	// An identity node must have exactly one child.
	_, sub2, sub3 := splitSubtrees()
	outer := tree.TreeOf[rune](
		tree.OpNode(sub3,
			tree.OpNode(tree.Id[rune, rune]('X'),
				tree.OpNode(sub2, outerLeaf(), outerLeaf(), outerLeaf()),
				outerLeaf(),
			),
			outerLeaf(),
		),
	)
	assert.Panics(t, func() { tree.Flatten(outer) })
}
