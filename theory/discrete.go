package theory

import (
	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/tree"
)

// DiscreteTheory is a double theory with no nontrivial operations on either
// object or morphism types, inheriting its composition verbatim from an
// underlying finitely generated category.
//
// Object types are the category's objects and morphism types its
// morphisms. The only object operations are identities, and a morphism
// operation is exactly a path in the underlying morphism graph: with no
// operations to apply, a cell is pure composition bookkeeping.
type DiscreteTheory[V, E comparable] struct {
	cat *cat.FinCategory[V, E]
}

// Discrete wraps a finitely generated category as a discrete double theory.
func Discrete[V, E comparable](c *cat.FinCategory[V, E]) *DiscreteTheory[V, E] {
	return &DiscreteTheory[V, E]{cat: c}
}

// Category returns the underlying finitely generated category.
func (d *DiscreteTheory[V, E]) Category() *cat.FinCategory[V, E] {
	return d.cat
}

// Dbl returns the theory viewed through the double-theory interface.
func (d *DiscreteTheory[V, E]) Dbl() DblTheory[V, cat.Mor[V, E], V, cat.Path[V, cat.Mor[V, E]]] {
	return FromVDbl[V, V, cat.Mor[V, E], cat.Path[V, cat.Mor[V, E]]](d)
}

func (d *DiscreteTheory[V, E]) HasOb(x V) bool {
	return d.cat.HasOb(x)
}

// HasArrow reports whether the arrow belongs to the theory. Arrows are
// objects, standing for their identity operations.
func (d *DiscreteTheory[V, E]) HasArrow(f V) bool {
	return d.cat.HasOb(f)
}

func (d *DiscreteTheory[V, E]) HasProarrow(m cat.Mor[V, E]) bool {
	return d.cat.HasMor(m)
}

func (d *DiscreteTheory[V, E]) HasCell(p cat.Path[V, cat.Mor[V, E]]) bool {
	return cat.ContainedIn(p, d.cat.UnderlyingGraph())
}

func (d *DiscreteTheory[V, E]) Dom(f V) V { return f }
func (d *DiscreteTheory[V, E]) Cod(f V) V { return f }

func (d *DiscreteTheory[V, E]) Src(m cat.Mor[V, E]) V { return d.cat.Dom(m) }
func (d *DiscreteTheory[V, E]) Tgt(m cat.Mor[V, E]) V { return d.cat.Cod(m) }

func (d *DiscreteTheory[V, E]) CellDom(p cat.Path[V, cat.Mor[V, E]]) cat.Path[V, cat.Mor[V, E]] {
	return p
}

// CellCod returns the codomain of a cell: the composite of its path. A
// valid cell composes in the underlying category, so failure here is a
// contract violation.
func (d *DiscreteTheory[V, E]) CellCod(p cat.Path[V, cat.Mor[V, E]]) cat.Mor[V, E] {
	m, err := d.cat.Compose(p)
	if err != nil {
		panic(errors.Wrap(err, "codomain of a cell requires its path to compose"))
	}
	return m
}

func (d *DiscreteTheory[V, E]) CellSrc(p cat.Path[V, cat.Mor[V, E]]) V {
	return p.Src(d.cat.UnderlyingGraph())
}

func (d *DiscreteTheory[V, E]) CellTgt(p cat.Path[V, cat.Mor[V, E]]) V {
	return p.Tgt(d.cat.UnderlyingGraph())
}

// Compose composes a path of object operations. A discrete theory has no
// nontrivial object operations, so every well-typed path is a chain of one
// identity; anything else is a contract violation.
func (d *DiscreteTheory[V, E]) Compose(p cat.Path[V, V]) V {
	return cat.Reduce(p,
		func(v V) V { return v },
		func(f, g V) V {
			if f != g {
				panic(errors.AssertionFailedf(
					"ill-typed composite of object operations in discrete theory: %v then %v", f, g))
			}
			return f
		},
	)
}

func (d *DiscreteTheory[V, E]) Composite(p cat.Path[V, cat.Mor[V, E]]) (cat.Mor[V, E], error) {
	return d.cat.Compose(p)
}

// ComposeCells collapses a tree of cells by taking its domain path relative
// to the open boundary: with no nontrivial operations in the theory, the
// composite cell is simply the flattened sequence of underlying morphism
// generators.
func (d *DiscreteTheory[V, E]) ComposeCells(
	t DblTree[cat.Mor[V, E], cat.Path[V, cat.Mor[V, E]]],
) cat.Path[V, cat.Mor[V, E]] {
	if t.IsId() {
		return cat.SinglePath[V](t.IdType())
	}
	tr := t.Tree()
	edges := d.cellDomEdges(tr, tr.Root())
	if len(edges) == 0 {
		root, ok := tr.Value(tr.Root()).Op()
		if !ok {
			panic(errors.AssertionFailedf("cell tree root must carry a cell"))
		}
		return cat.IdPath[V, cat.Mor[V, E]](root.Src(d.cat.UnderlyingGraph()))
	}
	return cat.SeqPath[V](edges)
}

// cellDomEdges concatenates, left to right, the generators along the
// boundary of the subtree at n: boundary leaves contribute the proarrow of
// the parent's domain they leave open, nested cells contribute recursively.
func (d *DiscreteTheory[V, E]) cellDomEdges(
	tr *tree.Tree[tree.Slot[cat.Path[V, cat.Mor[V, E]]]], n tree.NodeID,
) []cat.Mor[V, E] {
	p, ok := tr.Value(n).Op()
	if !ok {
		panic(errors.AssertionFailedf("cell tree node must carry a cell"))
	}
	kids := tr.Children(n)
	if len(kids) == 0 && !p.IsId() {
		// A frontier cell with every slot open: contributes its own path.
		return p.Edges()
	}
	if len(kids) != p.Len() {
		panic(errors.AssertionFailedf(
			"cell with domain of length %d has %d substitutions", p.Len(), len(kids)))
	}
	var out []cat.Mor[V, E]
	for i, kid := range kids {
		if tr.Value(kid).IsEmpty() && len(tr.Children(kid)) == 0 {
			out = append(out, p.Edges()[i])
			continue
		}
		out = append(out, d.cellDomEdges(tr, kid)...)
	}
	return out
}
