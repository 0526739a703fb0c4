package cat

import (
	"github.com/teranos/catena/errors"
)

// Path is a composable chain in a graph: either the identity path at a
// vertex (an empty composite) or a nonempty alternating sequence of edges
// whose endpoints match up.
//
// A path is immutable once built. Its vertices are implicit: the graph the
// path lives in supplies source and target for each edge.
type Path[V, E any] struct {
	ob    V
	edges []E
}

// IdPath returns the identity path at a vertex.
func IdPath[V, E any](v V) Path[V, E] {
	return Path[V, E]{ob: v}
}

// SinglePath returns the path consisting of one edge.
func SinglePath[V, E any](e E) Path[V, E] {
	return Path[V, E]{edges: []E{e}}
}

// PairPath returns the path consisting of two consecutive edges.
func PairPath[V, E any](e, f E) Path[V, E] {
	return Path[V, E]{edges: []E{e, f}}
}

// SeqPath returns the path consisting of the given nonempty edge sequence.
// It panics on an empty slice: an empty composite must name the object it
// sits at, so it can only be built with IdPath.
func SeqPath[V, E any](edges []E) Path[V, E] {
	if len(edges) == 0 {
		panic("empty edge sequence: use IdPath for an identity path")
	}
	return Path[V, E]{edges: edges}
}

// IsId reports whether the path is an identity.
func (p Path[V, E]) IsId() bool {
	return len(p.edges) == 0
}

// Ob returns the vertex of an identity path. It panics on a nonempty path.
func (p Path[V, E]) Ob() V {
	if !p.IsId() {
		panic("Ob called on a nonempty path")
	}
	return p.ob
}

// Edges returns the edge sequence of the path, empty for an identity.
func (p Path[V, E]) Edges() []E {
	return p.edges
}

// Len returns the number of edges in the path.
func (p Path[V, E]) Len() int {
	return len(p.edges)
}

// Src returns the source of the path relative to a graph: the identity's
// vertex, or the source of the first edge.
func (p Path[V, E]) Src(g Graph[V, E]) V {
	if p.IsId() {
		return p.ob
	}
	return g.Src(p.edges[0])
}

// Tgt returns the target of the path relative to a graph: the identity's
// vertex, or the target of the last edge.
func (p Path[V, E]) Tgt(g Graph[V, E]) V {
	if p.IsId() {
		return p.ob
	}
	return g.Tgt(p.edges[len(p.edges)-1])
}

// ContainedIn reports whether the path lies in the graph: every edge is a
// member and consecutive edges share the intervening vertex.
func ContainedIn[V comparable, E any](p Path[V, E], g Graph[V, E]) bool {
	if p.IsId() {
		return g.HasVertex(p.ob)
	}
	for i, e := range p.edges {
		if !g.HasEdge(e) {
			return false
		}
		if i > 0 && g.Tgt(p.edges[i-1]) != g.Src(e) {
			return false
		}
	}
	return true
}

// Reduce folds a path into a single value: identity paths map through unit,
// nonempty paths fold left-to-right through compose. Every composition law
// in the theory layer is a Reduce over some path.
func Reduce[V, E any](p Path[V, E], unit func(V) E, compose func(E, E) E) E {
	if p.IsId() {
		return unit(p.ob)
	}
	acc := p.edges[0]
	for _, e := range p.edges[1:] {
		acc = compose(acc, e)
	}
	return acc
}

// ReduceErr is Reduce for partial composition: the fold short-circuits on
// the first error.
func ReduceErr[V, E any](p Path[V, E], unit func(V) (E, error), compose func(E, E) (E, error)) (E, error) {
	if p.IsId() {
		return unit(p.ob)
	}
	acc := p.edges[0]
	for _, e := range p.edges[1:] {
		next, err := compose(acc, e)
		if err != nil {
			var zero E
			return zero, errors.Wrap(err, "reducing path")
		}
		acc = next
	}
	return acc, nil
}
