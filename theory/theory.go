// Package theory implements double theories: equational specifications of
// categorical structures, used as the type system against which concrete
// models are checked and interpreted.
//
// A double theory comprises four kinds of things:
//
//  1. Object types, interpreted in models as sets of objects.
//  2. Morphism types, each with source and target object types, interpreted
//     as spans of morphisms between those sets.
//  3. Object operations, interpreted as functions between sets of objects.
//  4. Morphism operations, each with source and target object operations,
//     interpreted as maps between spans.
//
// A double theory is "just" a virtual double category assumed to have
// units; the dictionary between the two vocabularies is:
//
//	Object type        = object
//	Morphism type      = proarrow (loose morphism)
//	Object operation   = arrow (tight morphism)
//	Morphism operation = cell
//
// Any VDblCategory yields a DblTheory through FromVDbl; it is not
// recommended to implement DblTheory from scratch.
package theory

import (
	"github.com/teranos/catena/cat"
	"github.com/teranos/catena/errors"
	"github.com/teranos/catena/tree"
)

// DblTree is the shape of a pending composite of morphism operations: an
// open tree whose identity is tagged by a morphism type and whose internal
// nodes carry morphism operations.
type DblTree[MorType, MorOp any] = tree.OpenTree[MorType, MorOp]

// DblTheory is the uniform interface satisfied by every double theory.
//
// Kinds are expected to be cheaply copyable values with structural
// equality. Membership predicates are consistent with the structure maps: a
// member's source, target, domain and codomain are themselves members.
type DblTheory[ObType, MorType, ObOp, MorOp any] interface {
	// HasObType reports whether the object type belongs to the theory.
	HasObType(x ObType) bool

	// HasMorType reports whether the morphism type belongs to the theory.
	HasMorType(m MorType) bool

	// HasObOp reports whether the object operation belongs to the theory.
	HasObOp(f ObOp) bool

	// HasMorOp reports whether the morphism operation belongs to the theory.
	HasMorOp(a MorOp) bool

	// Src returns the source object type of a morphism type.
	Src(m MorType) ObType

	// Tgt returns the target object type of a morphism type.
	Tgt(m MorType) ObType

	// Dom returns the domain object type of an object operation.
	Dom(f ObOp) ObType

	// Cod returns the codomain object type of an object operation.
	Cod(f ObOp) ObType

	// OpSrc returns the source object operation of a morphism operation.
	OpSrc(a MorOp) ObOp

	// OpTgt returns the target object operation of a morphism operation.
	OpTgt(a MorOp) ObOp

	// OpDom returns the domain of a morphism operation, a path of morphism
	// types.
	OpDom(a MorOp) cat.Path[ObType, MorType]

	// OpCod returns the codomain of a morphism operation, a single morphism
	// type.
	OpCod(a MorOp) MorType

	// ComposeTypes composes a path of morphism types. Composition need not
	// be total: a path with no composite in the theory yields an error
	// wrapping errors.ErrNotComposable, which callers must treat as a
	// normal outcome.
	ComposeTypes(p cat.Path[ObType, MorType]) (MorType, error)

	// ComposeObOps composes a path of object operations. Composition of
	// well-typed paths is total; an ill-typed path is a contract violation
	// and panics.
	ComposeObOps(p cat.Path[ObType, ObOp]) ObOp

	// ComposeMorOps collapses a composition tree of morphism operations
	// into a single operation. Total on well-formed trees; malformed trees
	// panic.
	ComposeMorOps(t DblTree[MorType, MorOp]) MorOp
}

// HomType returns the hom (unit) morphism type on an object type: the
// composite of the identity path. Every double theory has all hom types, so
// a theory for which the identity composite is undefined is broken and this
// panics.
func HomType[ObType, MorType, ObOp, MorOp any](
	th DblTheory[ObType, MorType, ObOp, MorOp], x ObType,
) MorType {
	m, err := th.ComposeTypes(cat.IdPath[ObType, MorType](x))
	if err != nil {
		panic(errors.Wrap(err, "a double theory should have all hom types"))
	}
	return m
}

// IdObOp returns the identity operation on an object type: the composite of
// the identity path of object operations.
func IdObOp[ObType, MorType, ObOp, MorOp any](
	th DblTheory[ObType, MorType, ObOp, MorOp], x ObType,
) ObOp {
	return th.ComposeObOps(cat.IdPath[ObType, ObOp](x))
}

// IdMorOp returns the identity operation on a morphism type: the composite
// of the empty tree labeled by that type.
func IdMorOp[ObType, MorType, ObOp, MorOp any](
	th DblTheory[ObType, MorType, ObOp, MorOp], m MorType,
) MorOp {
	return th.ComposeMorOps(tree.Id[MorType, MorOp](m))
}
