package theory

import (
	"github.com/teranos/catena/cat"
)

// VDblCategory is the primitive capability set of a finite virtual double
// category: objects, arrows, proarrows and cells with their structure maps
// and composition. Any structure satisfying it automatically satisfies
// DblTheory through FromVDbl.
type VDblCategory[Ob, Arr, Pro, Cell any] interface {
	// HasOb reports whether the object belongs to the category.
	HasOb(x Ob) bool

	// HasArrow reports whether the arrow belongs to the category.
	HasArrow(f Arr) bool

	// HasProarrow reports whether the proarrow belongs to the category.
	HasProarrow(m Pro) bool

	// HasCell reports whether the cell belongs to the category.
	HasCell(c Cell) bool

	// Dom returns the domain object of an arrow.
	Dom(f Arr) Ob

	// Cod returns the codomain object of an arrow.
	Cod(f Arr) Ob

	// Src returns the source object of a proarrow.
	Src(m Pro) Ob

	// Tgt returns the target object of a proarrow.
	Tgt(m Pro) Ob

	// CellDom returns the domain of a cell, a path of proarrows.
	CellDom(c Cell) cat.Path[Ob, Pro]

	// CellCod returns the codomain of a cell, a single proarrow.
	CellCod(c Cell) Pro

	// CellSrc returns the source arrow of a cell.
	CellSrc(c Cell) Arr

	// CellTgt returns the target arrow of a cell.
	CellTgt(c Cell) Arr

	// Compose composes a path of arrows. Total on well-typed paths.
	Compose(p cat.Path[Ob, Arr]) Arr

	// Composite composes a path of proarrows, when the composite exists.
	Composite(p cat.Path[Ob, Pro]) (Pro, error)

	// ComposeCells collapses a composition tree of cells into one cell.
	ComposeCells(t DblTree[Pro, Cell]) Cell
}

// VDbl views a virtual double category as a double theory. It is a thin
// renaming layer with no logic of its own: objects become object types,
// proarrows become morphism types, arrows become object operations, and
// cells become morphism operations.
type VDbl[Ob, Arr, Pro, Cell any] struct {
	vdc VDblCategory[Ob, Arr, Pro, Cell]
}

// FromVDbl wraps a virtual double category as a double theory.
func FromVDbl[Ob, Arr, Pro, Cell any](vdc VDblCategory[Ob, Arr, Pro, Cell]) VDbl[Ob, Arr, Pro, Cell] {
	return VDbl[Ob, Arr, Pro, Cell]{vdc: vdc}
}

func (t VDbl[Ob, Arr, Pro, Cell]) HasObType(x Ob) bool { return t.vdc.HasOb(x) }
func (t VDbl[Ob, Arr, Pro, Cell]) HasMorType(m Pro) bool { return t.vdc.HasProarrow(m) }
func (t VDbl[Ob, Arr, Pro, Cell]) HasObOp(f Arr) bool { return t.vdc.HasArrow(f) }
func (t VDbl[Ob, Arr, Pro, Cell]) HasMorOp(c Cell) bool { return t.vdc.HasCell(c) }

func (t VDbl[Ob, Arr, Pro, Cell]) Src(m Pro) Ob { return t.vdc.Src(m) }
func (t VDbl[Ob, Arr, Pro, Cell]) Tgt(m Pro) Ob { return t.vdc.Tgt(m) }
func (t VDbl[Ob, Arr, Pro, Cell]) Dom(f Arr) Ob { return t.vdc.Dom(f) }
func (t VDbl[Ob, Arr, Pro, Cell]) Cod(f Arr) Ob { return t.vdc.Cod(f) }

func (t VDbl[Ob, Arr, Pro, Cell]) OpSrc(c Cell) Arr { return t.vdc.CellSrc(c) }
func (t VDbl[Ob, Arr, Pro, Cell]) OpTgt(c Cell) Arr { return t.vdc.CellTgt(c) }

func (t VDbl[Ob, Arr, Pro, Cell]) OpDom(c Cell) cat.Path[Ob, Pro] { return t.vdc.CellDom(c) }
func (t VDbl[Ob, Arr, Pro, Cell]) OpCod(c Cell) Pro { return t.vdc.CellCod(c) }

func (t VDbl[Ob, Arr, Pro, Cell]) ComposeTypes(p cat.Path[Ob, Pro]) (Pro, error) {
	return t.vdc.Composite(p)
}

func (t VDbl[Ob, Arr, Pro, Cell]) ComposeObOps(p cat.Path[Ob, Arr]) Arr {
	return t.vdc.Compose(p)
}

func (t VDbl[Ob, Arr, Pro, Cell]) ComposeMorOps(tr DblTree[Pro, Cell]) Cell {
	return t.vdc.ComposeCells(tr)
}
