package cat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
)

func TestPathVariants(t *testing.T) {
	id := cat.IdPath[rune, string]('*')
	assert.True(t, id.IsId())
	assert.Equal(t, '*', id.Ob())
	assert.Equal(t, 0, id.Len())

	single := cat.SinglePath[rune]("n")
	assert.False(t, single.IsId())
	assert.Equal(t, []string{"n"}, single.Edges())

	pair := cat.PairPath[rune]("n", "m")
	assert.Equal(t, 2, pair.Len())

	assert.Panics(t, func() { cat.SeqPath[rune]([]string{}) })
	assert.Panics(t, func() { single.Ob() })
}

func TestReduce(t *testing.T) {
	// Reduce a path of strings by concatenation; identity paths map to "".
	unit := func(rune) string { return "" }
	concat := func(a, b string) string { return a + b }

	assert.Equal(t, "", cat.Reduce(cat.IdPath[rune, string]('*'), unit, concat))
	assert.Equal(t, "n", cat.Reduce(cat.SinglePath[rune]("n"), unit, concat))
	assert.Equal(t, "nm", cat.Reduce(cat.PairPath[rune]("n", "m"), unit, concat))
	assert.Equal(t, "abc", cat.Reduce(cat.SeqPath[rune]([]string{"a", "b", "c"}), unit, concat))
}

func TestReduceErrShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := cat.ReduceErr(cat.SeqPath[rune]([]string{"a", "b", "c"}),
		func(rune) (string, error) { return "", nil },
		func(a, b string) (string, error) {
			calls++
			return "", boom
		},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, calls, "fold should stop at the first error")
}

func TestFinCategoryComposition(t *testing.T) {
	// One object, one generator n with n.n = id.
	c := cat.NewFinCategory[rune, rune]()
	require.True(t, c.AddOb('*'))
	require.True(t, c.AddMor('n', '*', '*'))
	c.SetComposite('n', 'n', cat.MorId[rune, rune]{Ob: '*'})

	n := cat.MorGen[rune, rune]{Gen: 'n'}
	assert.True(t, c.HasOb('*'))
	assert.True(t, c.HasMor(n))
	assert.True(t, c.HasMor(cat.MorId[rune, rune]{Ob: '*'}))
	assert.Equal(t, '*', c.Dom(n))
	assert.Equal(t, '*', c.Cod(n))

	got, err := c.Compose(cat.PairPath[rune, cat.Mor[rune, rune]](n, n))
	require.NoError(t, err)
	assert.Equal(t, cat.MorId[rune, rune]{Ob: '*'}, got)

	// Identity paths compose to identities; identities absorb.
	got, err = c.Compose(cat.IdPath[rune, cat.Mor[rune, rune]]('*'))
	require.NoError(t, err)
	assert.Equal(t, cat.MorId[rune, rune]{Ob: '*'}, got)

	got, err = c.Compose(cat.PairPath[rune, cat.Mor[rune, rune]](cat.MorId[rune, rune]{Ob: '*'}, n))
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestFinCategoryPartialComposition(t *testing.T) {
	c := cat.NewFinCategory[string, string]()
	c.AddOb("x")
	c.AddOb("y")
	c.AddOb("z")
	c.AddMor("f", "x", "y")
	c.AddMor("g", "y", "z")

	f := cat.MorGen[string, string]{Gen: "f"}
	g := cat.MorGen[string, string]{Gen: "g"}

	_, err := c.Compose(cat.PairPath[string, cat.Mor[string, string]](f, g))
	require.Error(t, err)
	assert.True(t, errors.IsNotComposableError(err))
}

func TestPathContainedIn(t *testing.T) {
	c := cat.NewFinCategory[string, string]()
	c.AddOb("x")
	c.AddOb("y")
	c.AddMor("f", "x", "y")
	c.AddMor("g", "y", "x")
	g := c.UnderlyingGraph()

	f := cat.MorGen[string, string]{Gen: "f"}
	gg := cat.MorGen[string, string]{Gen: "g"}

	ok := cat.ContainedIn(cat.PairPath[string, cat.Mor[string, string]](f, gg), g)
	assert.True(t, ok)

	// f then f does not match up: tgt(f) = y but src(f) = x.
	ok = cat.ContainedIn(cat.PairPath[string, cat.Mor[string, string]](f, f), g)
	assert.False(t, ok)

	// Unknown generator.
	h := cat.MorGen[string, string]{Gen: "h"}
	ok = cat.ContainedIn(cat.SinglePath[string, cat.Mor[string, string]](h), g)
	assert.False(t, ok)

	// Identity path at a known vertex.
	ok = cat.ContainedIn(cat.IdPath[string, cat.Mor[string, string]]("x"), g)
	assert.True(t, ok)

	// Src and Tgt relative to the graph.
	p := cat.PairPath[string, cat.Mor[string, string]](f, gg)
	assert.Equal(t, "x", p.Src(g))
	assert.Equal(t, "x", p.Tgt(g))
}
