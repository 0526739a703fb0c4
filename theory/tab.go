package theory

import (
	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/set"
	"github.com/teranos/catena/tree"
)

// TabObType is an object type in a discrete tabulator theory: a generator
// (TabObBasic) or the tabulator of a morphism type (TabTabulator). The
// concrete variants are comparable structs, so object types compare
// structurally with ==.
type TabObType[V, E comparable] interface {
	tabObType(V, E)
}

// TabObBasic is a basic or generating object type.
type TabObBasic[V, E comparable] struct {
	Name V
}

// TabTabulator is the tabulator of a morphism type. Tabulators nest:
// tabulators of tabulators are well-formed object types.
type TabTabulator[V, E comparable] struct {
	Mor TabMorType[V, E]
}

func (TabObBasic[V, E]) tabObType(V, E) {}
func (TabTabulator[V, E]) tabObType(V, E) {}

// TabMorType is a morphism type in a discrete tabulator theory: a generator
// (TabMorBasic) or the hom type on an object type (TabHom).
type TabMorType[V, E comparable] interface {
	tabMorType(V, E)
}

// TabMorBasic is a basic or generating morphism type.
type TabMorBasic[V, E comparable] struct {
	Name E
}

// TabHom is the hom type on an object type.
type TabHom[V, E comparable] struct {
	Ob TabObType[V, E]
}

func (TabMorBasic[V, E]) tabMorType(V, E) {}
func (TabHom[V, E]) tabMorType(V, E) {}

// TabObOp is an object operation in a discrete tabulator theory.
type TabObOp[V, E comparable] interface {
	tabObOp(V, E)
}

// TabObId is the identity operation on an object type.
type TabObId[V, E comparable] struct {
	Ob TabObType[V, E]
}

// TabProjSrc is the projection from a tabulator onto the source of its
// morphism type.
type TabProjSrc[V, E comparable] struct {
	Mor TabMorType[V, E]
}

// TabProjTgt is the projection from a tabulator onto the target of its
// morphism type.
type TabProjTgt[V, E comparable] struct {
	Mor TabMorType[V, E]
}

func (TabObId[V, E]) tabObOp(V, E) {}
func (TabProjSrc[V, E]) tabObOp(V, E) {}
func (TabProjTgt[V, E]) tabObOp(V, E) {}

// TabMorOp is a morphism operation in a discrete tabulator theory.
type TabMorOp[V, E comparable] interface {
	tabMorOp(V, E)
}

// TabMorId is the identity operation on a morphism type.
type TabMorId[V, E comparable] struct {
	Mor TabMorType[V, E]
}

// TabHomOp is the hom operation on an object operation.
type TabHomOp[V, E comparable] struct {
	Op TabObOp[V, E]
}

// TabProj is the projection from a tabulator onto its morphism type.
type TabProj[V, E comparable] struct {
	Mor TabMorType[V, E]
}

func (TabMorId[V, E]) tabMorOp(V, E) {}
func (TabHomOp[V, E]) tabMorOp(V, E) {}
func (TabProj[V, E]) tabMorOp(V, E) {}

// TabTheory is a discrete tabulator theory: a discrete double theory
// extended to allow tabulators. It is a small double category with
// tabulators and with no arrows or cells beyond identities and tabulator
// projections.
//
// Construct with NewTabTheory, populate with AddObType, AddMorType and
// SetComposite, then treat as read-only. A fully built theory is safe for
// concurrent readers.
type TabTheory[V, E comparable] struct {
	obTypes    set.FinSet[V]
	morTypes   set.FinSet[E]
	src        set.Column[E, TabObType[V, E]]
	tgt        set.Column[E, TabObType[V, E]]
	composeMap set.Column[set.Pair[E, E], TabMorType[V, E]]
}

// NewTabTheory creates an empty discrete tabulator theory.
func NewTabTheory[V, E comparable]() *TabTheory[V, E] {
	return &TabTheory[V, E]{}
}

// Tabulator constructs the tabulator of a morphism type. Tabulators are
// computed, not stored: this never mutates the theory.
func (th *TabTheory[V, E]) Tabulator(m TabMorType[V, E]) TabObType[V, E] {
	return TabTabulator[V, E]{Mor: m}
}

// AddObType adds a basic object type. It reports false on a duplicate.
func (th *TabTheory[V, E]) AddObType(v V) bool {
	return th.obTypes.Insert(v)
}

// AddMorType adds a basic morphism type with the given source and target.
// It reports false on a duplicate.
func (th *TabTheory[V, E]) AddMorType(e E, src, tgt TabObType[V, E]) bool {
	th.src.Set(e, src)
	th.tgt.Set(e, tgt)
	return th.MakeMorType(e)
}

// MakeMorType adds a basic morphism type without initializing its source or
// target. It reports false on a duplicate.
func (th *TabTheory[V, E]) MakeMorType(e E) bool {
	return th.morTypes.Insert(e)
}

// SetComposite declares the composite morphism type of two consecutive
// basic morphism types.
func (th *TabTheory[V, E]) SetComposite(d, e E, m TabMorType[V, E]) {
	th.composeMap.Set(set.PairOf(d, e), m)
}

func (th *TabTheory[V, E]) HasObType(x TabObType[V, E]) bool {
	switch x := x.(type) {
	case TabObBasic[V, E]:
		return th.obTypes.Contains(x.Name)
	case TabTabulator[V, E]:
		return th.HasMorType(x.Mor)
	default:
		return false
	}
}

func (th *TabTheory[V, E]) HasMorType(m TabMorType[V, E]) bool {
	switch m := m.(type) {
	case TabMorBasic[V, E]:
		return th.morTypes.Contains(m.Name)
	case TabHom[V, E]:
		return th.HasObType(m.Ob)
	default:
		return false
	}
}

func (th *TabTheory[V, E]) HasObOp(f TabObOp[V, E]) bool {
	switch f := f.(type) {
	case TabObId[V, E]:
		return th.HasObType(f.Ob)
	case TabProjSrc[V, E]:
		return th.HasMorType(f.Mor)
	case TabProjTgt[V, E]:
		return th.HasMorType(f.Mor)
	default:
		return false
	}
}

func (th *TabTheory[V, E]) HasMorOp(a TabMorOp[V, E]) bool {
	switch a := a.(type) {
	case TabMorId[V, E]:
		return th.HasMorType(a.Mor)
	case TabHomOp[V, E]:
		return th.HasObOp(a.Op)
	case TabProj[V, E]:
		return th.HasMorType(a.Mor)
	default:
		return false
	}
}

// Src returns the source object type of a morphism type, recursing through
// Hom wrappers. Each step peels one wrapper, so the recursion terminates.
func (th *TabTheory[V, E]) Src(m TabMorType[V, E]) TabObType[V, E] {
	switch m := m.(type) {
	case TabMorBasic[V, E]:
		x, ok := th.src.Get(m.Name)
		if !ok {
			panic(errors.AssertionFailedf("source of morphism type %v is not defined", m.Name))
		}
		return x
	case TabHom[V, E]:
		return m.Ob
	default:
		panic(errors.AssertionFailedf("unknown morphism type variant %T", m))
	}
}

// Tgt returns the target object type of a morphism type.
func (th *TabTheory[V, E]) Tgt(m TabMorType[V, E]) TabObType[V, E] {
	switch m := m.(type) {
	case TabMorBasic[V, E]:
		x, ok := th.tgt.Get(m.Name)
		if !ok {
			panic(errors.AssertionFailedf("target of morphism type %v is not defined", m.Name))
		}
		return x
	case TabHom[V, E]:
		return m.Ob
	default:
		panic(errors.AssertionFailedf("unknown morphism type variant %T", m))
	}
}

func (th *TabTheory[V, E]) Dom(f TabObOp[V, E]) TabObType[V, E] {
	switch f := f.(type) {
	case TabObId[V, E]:
		return f.Ob
	case TabProjSrc[V, E]:
		return th.Tabulator(f.Mor)
	case TabProjTgt[V, E]:
		return th.Tabulator(f.Mor)
	default:
		panic(errors.AssertionFailedf("unknown object operation variant %T", f))
	}
}

func (th *TabTheory[V, E]) Cod(f TabObOp[V, E]) TabObType[V, E] {
	switch f := f.(type) {
	case TabObId[V, E]:
		return f.Ob
	case TabProjSrc[V, E]:
		return th.Src(f.Mor)
	case TabProjTgt[V, E]:
		return th.Tgt(f.Mor)
	default:
		panic(errors.AssertionFailedf("unknown object operation variant %T", f))
	}
}

func (th *TabTheory[V, E]) OpSrc(a TabMorOp[V, E]) TabObOp[V, E] {
	switch a := a.(type) {
	case TabMorId[V, E]:
		return TabObId[V, E]{Ob: th.Src(a.Mor)}
	case TabHomOp[V, E]:
		return a.Op
	case TabProj[V, E]:
		return TabProjSrc[V, E]{Mor: a.Mor}
	default:
		panic(errors.AssertionFailedf("unknown morphism operation variant %T", a))
	}
}

func (th *TabTheory[V, E]) OpTgt(a TabMorOp[V, E]) TabObOp[V, E] {
	switch a := a.(type) {
	case TabMorId[V, E]:
		return TabObId[V, E]{Ob: th.Tgt(a.Mor)}
	case TabHomOp[V, E]:
		return a.Op
	case TabProj[V, E]:
		return TabProjTgt[V, E]{Mor: a.Mor}
	default:
		panic(errors.AssertionFailedf("unknown morphism operation variant %T", a))
	}
}

func (th *TabTheory[V, E]) OpDom(a TabMorOp[V, E]) cat.Path[TabObType[V, E], TabMorType[V, E]] {
	switch a := a.(type) {
	case TabMorId[V, E]:
		return cat.SinglePath[TabObType[V, E]](a.Mor)
	case TabHomOp[V, E]:
		return cat.SinglePath[TabObType[V, E]](TabMorType[V, E](TabHom[V, E]{Ob: th.Dom(a.Op)}))
	case TabProj[V, E]:
		return cat.SinglePath[TabObType[V, E]](TabMorType[V, E](TabHom[V, E]{Ob: th.Tabulator(a.Mor)}))
	default:
		panic(errors.AssertionFailedf("unknown morphism operation variant %T", a))
	}
}

func (th *TabTheory[V, E]) OpCod(a TabMorOp[V, E]) TabMorType[V, E] {
	switch a := a.(type) {
	case TabMorId[V, E]:
		return a.Mor
	case TabProj[V, E]:
		return a.Mor
	case TabHomOp[V, E]:
		return TabHom[V, E]{Ob: th.Cod(a.Op)}
	default:
		panic(errors.AssertionFailedf("unknown morphism operation variant %T", a))
	}
}

// Dbl exposes the theory through the general double theory interface.
func (th *TabTheory[V, E]) Dbl() DblTheory[TabObType[V, E], TabMorType[V, E], TabObOp[V, E], TabMorOp[V, E]] {
	return th
}

// HomType returns the hom type on an object type directly, without going
// through composition.
func (th *TabTheory[V, E]) HomType(x TabObType[V, E]) TabMorType[V, E] {
	return TabHom[V, E]{Ob: x}
}

// HomOp returns the hom operation on an object operation.
func (th *TabTheory[V, E]) HomOp(f TabObOp[V, E]) TabMorOp[V, E] {
	return TabHomOp[V, E]{Op: th.ComposeObOps(cat.SinglePath[TabObType[V, E]](f))}
}

// IdObOp returns the identity operation on an object type.
func (th *TabTheory[V, E]) IdObOp(x TabObType[V, E]) TabObOp[V, E] {
	return TabObId[V, E]{Ob: x}
}

// IdMorOp returns the identity operation on a morphism type.
func (th *TabTheory[V, E]) IdMorOp(m TabMorType[V, E]) TabMorOp[V, E] {
	return TabMorId[V, E]{Mor: m}
}

// ComposeTypes composes a path of morphism types. Hom types are two-sided
// identities; basic types compose through the explicit table. A pair of
// basics without a table entry yields an ErrNotComposable error, though for
// a well-constructed theory every declared composable pair is present.
func (th *TabTheory[V, E]) ComposeTypes(
	p cat.Path[TabObType[V, E], TabMorType[V, E]],
) (TabMorType[V, E], error) {
	return cat.ReduceErr(p,
		func(x TabObType[V, E]) (TabMorType[V, E], error) { return th.HomType(x), nil },
		th.compose2Types,
	)
}

func (th *TabTheory[V, E]) compose2Types(m, n TabMorType[V, E]) (TabMorType[V, E], error) {
	if _, ok := m.(TabHom[V, E]); ok {
		return n, nil
	}
	if _, ok := n.(TabHom[V, E]); ok {
		return m, nil
	}
	d := m.(TabMorBasic[V, E]).Name
	e := n.(TabMorBasic[V, E]).Name
	composite, ok := th.composeMap.Get(set.PairOf(d, e))
	if !ok {
		return nil, errors.NewNotComposableError(
			"composite of basic morphism types (%v, %v) is not defined", d, e)
	}
	return composite, nil
}

// ComposeObOps composes a path of object operations. Identities are
// two-sided units; composing two non-identity operations is never
// well-typed in a discrete tabulator theory and panics.
func (th *TabTheory[V, E]) ComposeObOps(
	p cat.Path[TabObType[V, E], TabObOp[V, E]],
) TabObOp[V, E] {
	return cat.Reduce(p,
		func(x TabObType[V, E]) TabObOp[V, E] { return th.IdObOp(x) },
		th.compose2ObOps,
	)
}

func (th *TabTheory[V, E]) compose2ObOps(f, g TabObOp[V, E]) TabObOp[V, E] {
	if _, ok := g.(TabObId[V, E]); ok {
		return f
	}
	if _, ok := f.(TabObId[V, E]); ok {
		return g
	}
	panic(errors.AssertionFailedf(
		"ill-typed composite of object operations in discrete tabulator theory: %v then %v", f, g))
}

// ComposeMorOps collapses a composition tree of morphism operations. The
// theory has no cells beyond identities, hom lifts and projections, so the
// only well-typed pastings are identity splicings and towers of hom lifts;
// anything else panics.
func (th *TabTheory[V, E]) ComposeMorOps(
	t DblTree[TabMorType[V, E], TabMorOp[V, E]],
) TabMorOp[V, E] {
	if t.IsId() {
		return th.IdMorOp(t.IdType())
	}
	tr := t.Tree()
	return th.composeCellNode(tr, tr.Root())
}

func (th *TabTheory[V, E]) composeCellNode(
	tr *tree.Tree[tree.Slot[TabMorOp[V, E]]], n tree.NodeID,
) TabMorOp[V, E] {
	op, ok := tr.Value(n).Op()
	if !ok {
		panic(errors.AssertionFailedf("cell tree node must carry a morphism operation"))
	}
	acc := op
	for _, kid := range tr.Children(n) {
		if tr.Value(kid).IsEmpty() && len(tr.Children(kid)) == 0 {
			continue
		}
		acc = th.compose2MorOps(acc, th.composeCellNode(tr, kid))
	}
	return acc
}

func (th *TabTheory[V, E]) compose2MorOps(outer, inner TabMorOp[V, E]) TabMorOp[V, E] {
	if _, ok := inner.(TabMorId[V, E]); ok {
		return outer
	}
	if _, ok := outer.(TabMorId[V, E]); ok {
		return inner
	}
	of, outerHom := outer.(TabHomOp[V, E])
	inf, innerHom := inner.(TabHomOp[V, E])
	if outerHom && innerHom {
		return TabHomOp[V, E]{Op: th.compose2ObOps(of.Op, inf.Op)}
	}
	panic(errors.AssertionFailedf(
		"ill-typed composite of morphism operations in discrete tabulator theory: %v under %v",
		inner, outer))
}
