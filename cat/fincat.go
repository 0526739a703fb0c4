package cat

import (
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/set"
)

// Mor is a morphism in a finitely generated category: either an identity on
// an object (MorId) or a generating morphism (MorGen). The two concrete
// types are comparable structs, so morphisms compare structurally with ==.
type Mor[V, E comparable] interface {
	mor(V, E)
}

// MorId is the identity morphism on an object.
type MorId[V, E comparable] struct {
	Ob V
}

// MorGen is a generating morphism.
type MorGen[V, E comparable] struct {
	Gen E
}

func (MorId[V, E]) mor(V, E)  {}
func (MorGen[V, E]) mor(V, E) {}

// FinCategory is a finitely generated category: finite sets of object and
// morphism generators, source/target assignments, and an explicit partial
// table of binary composites of generators.
//
// Construct with NewFinCategory, populate with AddOb, AddMor and
// SetComposite, then treat as read-only. A fully built category is safe for
// concurrent readers.
type FinCategory[V, E comparable] struct {
	obs        set.FinSet[V]
	gens       set.FinSet[E]
	src        set.Column[E, V]
	tgt        set.Column[E, V]
	composites set.Column[set.Pair[E, E], Mor[V, E]]
}

// NewFinCategory creates an empty finitely generated category.
func NewFinCategory[V, E comparable]() *FinCategory[V, E] {
	return &FinCategory[V, E]{}
}

// AddOb adds an object generator. It reports false on a duplicate.
func (c *FinCategory[V, E]) AddOb(v V) bool {
	return c.obs.Insert(v)
}

// AddMor adds a morphism generator with the given endpoints. It reports
// false on a duplicate.
func (c *FinCategory[V, E]) AddMor(e E, dom, cod V) bool {
	c.src.Set(e, dom)
	c.tgt.Set(e, cod)
	return c.gens.Insert(e)
}

// SetComposite declares the composite of two consecutive generators.
func (c *FinCategory[V, E]) SetComposite(d, e E, m Mor[V, E]) {
	c.composites.Set(set.PairOf(d, e), m)
}

// HasOb reports whether the object belongs to the category.
func (c *FinCategory[V, E]) HasOb(v V) bool {
	return c.obs.Contains(v)
}

// HasMor reports whether the morphism belongs to the category.
func (c *FinCategory[V, E]) HasMor(m Mor[V, E]) bool {
	switch m := m.(type) {
	case MorId[V, E]:
		return c.obs.Contains(m.Ob)
	case MorGen[V, E]:
		return c.gens.Contains(m.Gen)
	default:
		return false
	}
}

// Dom returns the domain of a morphism. The morphism must belong to the
// category.
func (c *FinCategory[V, E]) Dom(m Mor[V, E]) V {
	switch m := m.(type) {
	case MorId[V, E]:
		return m.Ob
	case MorGen[V, E]:
		v, ok := c.src.Get(m.Gen)
		if !ok {
			panic(errors.AssertionFailedf("source of morphism generator %v is not defined", m.Gen))
		}
		return v
	default:
		panic(errors.AssertionFailedf("unknown morphism variant %T", m))
	}
}

// Cod returns the codomain of a morphism. The morphism must belong to the
// category.
func (c *FinCategory[V, E]) Cod(m Mor[V, E]) V {
	switch m := m.(type) {
	case MorId[V, E]:
		return m.Ob
	case MorGen[V, E]:
		v, ok := c.tgt.Get(m.Gen)
		if !ok {
			panic(errors.AssertionFailedf("target of morphism generator %v is not defined", m.Gen))
		}
		return v
	default:
		panic(errors.AssertionFailedf("unknown morphism variant %T", m))
	}
}

// Compose composes a path of morphisms using the composition table.
// Composition is partial: a pair of generators without a declared composite
// yields ErrNotComposable.
func (c *FinCategory[V, E]) Compose(p Path[V, Mor[V, E]]) (Mor[V, E], error) {
	return ReduceErr(p,
		func(v V) (Mor[V, E], error) { return MorId[V, E]{Ob: v}, nil },
		c.compose2,
	)
}

func (c *FinCategory[V, E]) compose2(m, n Mor[V, E]) (Mor[V, E], error) {
	if _, ok := m.(MorId[V, E]); ok {
		return n, nil
	}
	if _, ok := n.(MorId[V, E]); ok {
		return m, nil
	}
	d := m.(MorGen[V, E]).Gen
	e := n.(MorGen[V, E]).Gen
	composite, ok := c.composites.Get(set.PairOf(d, e))
	if !ok {
		return nil, errors.NewNotComposableError("generators (%v, %v) have no declared composite", d, e)
	}
	return composite, nil
}

// UnderlyingGraph returns the graph whose vertices are the category's
// objects and whose edges are all of its morphisms, identities included.
func (c *FinCategory[V, E]) UnderlyingGraph() Graph[V, Mor[V, E]] {
	return catGraph[V, E]{c}
}

type catGraph[V, E comparable] struct {
	cat *FinCategory[V, E]
}

func (g catGraph[V, E]) HasVertex(v V) bool       { return g.cat.HasOb(v) }
func (g catGraph[V, E]) HasEdge(m Mor[V, E]) bool { return g.cat.HasMor(m) }
func (g catGraph[V, E]) Src(m Mor[V, E]) V        { return g.cat.Dom(m) }
func (g catGraph[V, E]) Tgt(m Mor[V, E]) V        { return g.cat.Cod(m) }
