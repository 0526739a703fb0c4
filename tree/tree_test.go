package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/catena/tree"
)

func TestArenaBasics(t *testing.T) {
	tr := tree.New("root")
	a := tr.AddChild(tr.Root(), "a")
	b := tr.AddChild(tr.Root(), "b")
	a1 := tr.AddChild(a, "a1")

	assert.Equal(t, "root", tr.Value(tr.Root()))
	assert.Equal(t, []tree.NodeID{a, b}, tr.Children(tr.Root()))
	assert.Equal(t, tr.Root(), tr.Parent(a))
	assert.Equal(t, a, tr.Parent(a1))
	assert.Equal(t, tree.InvalidNode, tr.Parent(tr.Root()))

	tr.SetValue(a, "A")
	assert.Equal(t, "A", tr.Value(a))
}

func TestArenaWalkPreorder(t *testing.T) {
	tr := tree.New(0)
	one := tr.AddChild(tr.Root(), 1)
	tr.AddChild(tr.Root(), 2)
	tr.AddChild(one, 3)

	var order []int
	tr.Walk(tr.Root(), func(id tree.NodeID) {
		order = append(order, tr.Value(id))
	})
	assert.Equal(t, []int{0, 1, 3, 2}, order)
}

func TestArenaExtendAndMoveChildren(t *testing.T) {
	dst := tree.New("x")
	leaf := dst.AddChild(dst.Root(), "leaf")

	src := tree.New("s")
	src.AddChild(src.Root(), "s1")
	src.AddChild(src.Root(), "s2")

	sub := dst.Extend(src)
	assert.Equal(t, "s", dst.Value(sub))
	assert.Equal(t, tree.InvalidNode, dst.Parent(sub), "extended subtree starts as an orphan")
	require.Len(t, dst.Children(sub), 2)

	dst.MoveChildren(sub, leaf)
	assert.Empty(t, dst.Children(sub))
	require.Len(t, dst.Children(leaf), 2)
	assert.Equal(t, "s1", dst.Value(dst.Children(leaf)[0]))
	assert.Equal(t, "s2", dst.Value(dst.Children(leaf)[1]))
	assert.Equal(t, leaf, dst.Parent(dst.Children(leaf)[0]))

	// The source tree is untouched.
	assert.Len(t, src.Children(src.Root()), 2)
}

func TestArenaClone(t *testing.T) {
	tr := tree.New("r")
	tr.AddChild(tr.Root(), "c")

	clone := tr.Clone()
	clone.SetValue(clone.Root(), "changed")
	assert.Equal(t, "r", tr.Value(tr.Root()))
	assert.Equal(t, "c", clone.Value(clone.Children(clone.Root())[0]))
}

func leaf() tree.NodeLit[rune] {
	return tree.OpenLeaf[rune]()
}

func TestBoundaryOrder(t *testing.T) {
	// f(h(k(_, _), _), g(_, l(_, _))) has boundary slots in depth-first
	// left-to-right order.
	ot := tree.TreeOf[rune](
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
	tr := ot.Tree()
	boundary := tree.Boundary(tr, tr.Root())
	assert.Len(t, boundary, 6)
	for _, id := range boundary {
		assert.True(t, tr.Value(id).IsEmpty())
		assert.Empty(t, tr.Children(id))
	}
}

func TestBoundaryIncludesQualifyingRoot(t *testing.T) {
	tr := tree.New(tree.Slot[rune]{})
	boundary := tree.Boundary(tr, tr.Root())
	assert.Equal(t, []tree.NodeID{tr.Root()}, boundary)
}

func TestOpenTreeVariants(t *testing.T) {
	id := tree.Id[rune, rune]('X')
	assert.True(t, id.IsId())
	assert.Equal(t, 'X', id.IdType())
	assert.Panics(t, func() { id.Tree() })

	comp := tree.TreeOf[rune](tree.OpNode('f', leaf()))
	assert.False(t, comp.IsId())
	assert.Panics(t, func() { comp.IdType() })
}

func TestIsomorphism(t *testing.T) {
	a := tree.TreeOf[rune](tree.OpNode('f', tree.OpNode('g', leaf()), leaf()))
	b := tree.TreeOf[rune](tree.OpNode('f', tree.OpNode('g', leaf()), leaf()))
	assert.True(t, tree.Isomorphic(a, b))

	// Child order is significant.
	swapped := tree.TreeOf[rune](tree.OpNode('f', leaf(), tree.OpNode('g', leaf())))
	assert.False(t, tree.Isomorphic(a, swapped))

	// Different labels.
	relabeled := tree.TreeOf[rune](tree.OpNode('f', tree.OpNode('h', leaf()), leaf()))
	assert.False(t, tree.Isomorphic(a, relabeled))

	// Identity vs nonempty.
	assert.False(t, tree.Isomorphic(a, tree.Id[rune, rune]('f')))
	assert.True(t, tree.Isomorphic(tree.Id[rune, rune]('X'), tree.Id[rune, rune]('X')))
	assert.False(t, tree.Isomorphic(tree.Id[rune, rune]('X'), tree.Id[rune, rune]('Y')))
}
