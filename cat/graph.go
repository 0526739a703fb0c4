// Package cat provides the one-dimensional layer under double theories:
// composable paths, finite graphs, and finitely generated categories with
// partial composition tables.
package cat

// Graph is a finite graph: membership tests for vertices and edges plus
// source and target lookups. Paths are validated against a Graph, and a
// finitely generated category exposes its underlying graph through it.
type Graph[V, E any] interface {
	// HasVertex reports whether the vertex belongs to the graph.
	HasVertex(v V) bool

	// HasEdge reports whether the edge belongs to the graph.
	HasEdge(e E) bool

	// Src returns the source vertex of an edge.
	Src(e E) V

	// Tgt returns the target vertex of an edge.
	Tgt(e E) V
}
