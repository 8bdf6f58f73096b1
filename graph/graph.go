/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graph

import (
	"cmp"

	"github.com/botobag/funcify/iterator"
)

// PersistentGraph is an immutable directed or undirected multigraph. Points (of type P) key the
// vertices (with payload V); edges (with payload E) connect pairs of points. Edges may reference
// points that have no vertex.
//
// Every mutator returns a new graph that shares structure with the receiver; the receiver is never
// changed, so a graph can be read by many goroutines at once. Mutators only record the operation;
// reads materialize the graph by folding the recorded operations.
//
// The zero value is not usable; create a graph with a Builder.
type PersistentGraph[P any, V any, E comparable] struct {
	design Design[P, V, E]
	target Representation
	config *Config
}

// NewOrderedBuilder creates a Builder for graphs whose points have a natural order.
func NewOrderedBuilder[P cmp.Ordered, V any, E comparable]() *Builder[P, V, E] {
	return NewBuilder[P, V, E](cmp.Compare[P])
}

func (g PersistentGraph[P, V, E]) with(design Design[P, V, E]) PersistentGraph[P, V, E] {
	return PersistentGraph[P, V, E]{
		design: design,
		target: g.target,
		config: g.config,
	}
}

// Data materializes the graph.
func (g PersistentGraph[P, V, E]) Data() GraphData[P, V, E] {
	return g.design.Fold(g.target)
}

// Design returns the recorded operations of the graph.
func (g PersistentGraph[P, V, E]) Design() Design[P, V, E] {
	return g.design
}

// Representation returns the storage strategy of the graph.
func (g PersistentGraph[P, V, E]) Representation() Representation {
	return g.target
}

// WithRepresentation returns the graph materialized with another storage strategy. Converting
// ParallelEdgesPerPair to SingleEdgePerPair keeps the last edge put for each pair.
func (g PersistentGraph[P, V, E]) WithRepresentation(r Representation) PersistentGraph[P, V, E] {
	return PersistentGraph[P, V, E]{
		design: g.design,
		target: r,
		config: g.config,
	}
}

// IsDirected returns true for a directed graph.
func (g PersistentGraph[P, V, E]) IsDirected() bool {
	return g.Data().graphTraits().directed
}

//===----------------------------------------------------------------------------------------====//
// Queries
//===----------------------------------------------------------------------------------------====//

// Get returns the payload of the vertex at the point.
func (g PersistentGraph[P, V, E]) Get(point P) (V, bool) {
	return g.Data().Vertex(point)
}

// ContainsVertex returns true if a vertex is stored at the point.
func (g PersistentGraph[P, V, E]) ContainsVertex(point P) bool {
	_, ok := g.Get(point)
	return ok
}

// GetEdges returns the edges between the points. In an undirected graph the order of the points
// doesn't matter.
func (g PersistentGraph[P, V, E]) GetEdges(from, to P) []E {
	d := g.Data()
	return edgesOf[P, V, E](d, d.graphTraits().key(from, to))
}

// GetEdge returns one edge between the points: the only one for SingleEdgePerPair and the first one
// added for ParallelEdgesPerPair.
func (g PersistentGraph[P, V, E]) GetEdge(from, to P) (E, bool) {
	edges := g.GetEdges(from, to)
	if len(edges) == 0 {
		var zero E
		return zero, false
	}
	return edges[0], true
}

// ContainsEdge returns true if at least one edge connects the points.
func (g PersistentGraph[P, V, E]) ContainsEdge(from, to P) bool {
	d := g.Data()
	return hasEdges[P, V, E](d, d.graphTraits().key(from, to))
}

// VertexCount returns the number of vertices.
func (g PersistentGraph[P, V, E]) VertexCount() int {
	return g.Data().VertexCount()
}

// EdgeCount returns the number of edges, counting each parallel edge.
func (g PersistentGraph[P, V, E]) EdgeCount() int {
	return edgeCount[P, V, E](g.Data())
}

// Vertices returns an iterator over the vertices ordered by point.
func (g PersistentGraph[P, V, E]) Vertices() iterator.Iterator[Vertex[P, V]] {
	return g.Data().Vertices()
}

// Edges returns an iterator over the edges ordered by their point pair. Parallel edges of a pair
// are visited in the order they were added.
func (g PersistentGraph[P, V, E]) Edges() iterator.Iterator[Edge[P, E]] {
	var edges []Edge[P, E]
	forEachEdgeGroup(g.Data(), func(key PointPair[P], values []E) bool {
		for _, value := range values {
			edges = append(edges, Edge[P, E]{From: key.First, To: key.Second, Value: value})
		}
		return true
	})
	return iterator.FromSlice(edges)
}

// ConnectedPaths returns the point pairs that have at least one edge, ordered.
func (g PersistentGraph[P, V, E]) ConnectedPaths() []PointPair[P] {
	return edgeKeys[P, V, E](g.Data())
}

// HasCycles returns true if any two points are connected in both directions (or a point is
// connected to itself). Longer cycles are not detected.
func (g PersistentGraph[P, V, E]) HasCycles() bool {
	return hasCycles[P, V, E](g.config, g.Data())
}

// Cycles returns every pair of edges forming a cycle found by HasCycles.
//
// A self loop is reported as the product of the edges on the point with themselves, and that
// product includes pairing an edge with itself. A single self loop therefore yields one Cycle
// whose First and Second are the same edge.
func (g PersistentGraph[P, V, E]) Cycles() []Cycle[P, E] {
	return cycles[P, V, E](g.config, g.Data())
}

// SuccessorVertices returns the vertices reachable from the point through one edge. Points without
// a stored vertex are skipped.
func (g PersistentGraph[P, V, E]) SuccessorVertices(point P) []Vertex[P, V] {
	return neighbors[P, V, E](g.Data(), point, true, false)
}

// PredecessorVertices returns the vertices from which the point is reachable through one edge.
func (g PersistentGraph[P, V, E]) PredecessorVertices(point P) []Vertex[P, V] {
	return neighbors[P, V, E](g.Data(), point, false, true)
}

// AdjacentVertices returns the union of SuccessorVertices and PredecessorVertices.
func (g PersistentGraph[P, V, E]) AdjacentVertices(point P) []Vertex[P, V] {
	return neighbors[P, V, E](g.Data(), point, true, true)
}

// EdgesFromPoint returns the edges leaving the point.
func (g PersistentGraph[P, V, E]) EdgesFromPoint(point P) []Edge[P, E] {
	return edgesTouching[P, V, E](g.Data(), point, true)
}

// EdgesToPoint returns the edges entering the point.
func (g PersistentGraph[P, V, E]) EdgesToPoint(point P) []Edge[P, E] {
	return edgesTouching[P, V, E](g.Data(), point, false)
}

//===----------------------------------------------------------------------------------------====//
// Mutators
//===----------------------------------------------------------------------------------------====//

// Put returns a graph with the vertex set at the point.
func (g PersistentGraph[P, V, E]) Put(point P, value V) PersistentGraph[P, V, E] {
	return g.with(&putVertexDesign[P, V, E]{
		parent: g.design,
		point:  point,
		value:  value,
	})
}

// PutVertices returns a graph with all the vertices set, in order.
func (g PersistentGraph[P, V, E]) PutVertices(vertices ...Vertex[P, V]) PersistentGraph[P, V, E] {
	return g.with(&putVerticesDesign[P, V, E]{
		parent:   g.design,
		vertices: append([]Vertex[P, V](nil), vertices...),
	})
}

// RemoveVertex returns a graph without the vertex at the point. An undirected graph also drops the
// edges incident to the point; a directed graph keeps them.
func (g PersistentGraph[P, V, E]) RemoveVertex(point P) PersistentGraph[P, V, E] {
	return g.with(&removeVertexDesign[P, V, E]{
		parent: g.design,
		point:  point,
	})
}

// PutEdge returns a graph with the edge between the points. It replaces the existing edge for
// SingleEdgePerPair and is added to the existing edges for ParallelEdgesPerPair. The points don't
// need to have vertices.
func (g PersistentGraph[P, V, E]) PutEdge(from, to P, value E) PersistentGraph[P, V, E] {
	return g.with(&putEdgeDesign[P, V, E]{
		parent: g.design,
		edge:   Edge[P, E]{From: from, To: to, Value: value},
	})
}

// PutEdges returns a graph with all the edges put, in order.
func (g PersistentGraph[P, V, E]) PutEdges(edges ...Edge[P, E]) PersistentGraph[P, V, E] {
	return g.with(&putEdgesDesign[P, V, E]{
		parent: g.design,
		edges:  append([]Edge[P, E](nil), edges...),
	})
}

// PutEdgeSets returns a graph with all the edges of the groups put, in order.
func (g PersistentGraph[P, V, E]) PutEdgeSets(groups ...EdgeGroup[P, E]) PersistentGraph[P, V, E] {
	copied := make([]EdgeGroup[P, E], len(groups))
	for i, group := range groups {
		group.Values = append([]E(nil), group.Values...)
		copied[i] = group
	}
	return g.with(&putEdgeSetsDesign[P, V, E]{
		parent: g.design,
		groups: copied,
	})
}

// RemoveEdges returns a graph without any edge between the points.
func (g PersistentGraph[P, V, E]) RemoveEdges(from, to P) PersistentGraph[P, V, E] {
	return g.with(&removeEdgesDesign[P, V, E]{
		parent: g.design,
		from:   from,
		to:     to,
	})
}

// FilterVertices returns a graph with the vertices for which keep returns true. An undirected graph
// also drops the edges incident to the removed vertices; a directed graph keeps them.
func (g PersistentGraph[P, V, E]) FilterVertices(keep func(point P, value V) bool) PersistentGraph[P, V, E] {
	return g.with(&filterVerticesDesign[P, V, E]{
		parent: g.design,
		keep:   keep,
	})
}

// FilterEdges returns a graph with the edges for which keep returns true.
func (g PersistentGraph[P, V, E]) FilterEdges(keep func(edge Edge[P, E]) bool) PersistentGraph[P, V, E] {
	return g.with(&filterEdgesDesign[P, V, E]{
		parent: g.design,
		keep:   keep,
	})
}

// MapVertices returns a graph with every vertex payload replaced by fn. Use MapVertexValues to
// change the payload type.
func (g PersistentGraph[P, V, E]) MapVertices(fn func(point P, value V) V) PersistentGraph[P, V, E] {
	return MapVertexValues(g, fn)
}

// MapEdges returns a graph with every edge payload replaced by fn. Use MapEdgeValues to change
// the payload type.
func (g PersistentGraph[P, V, E]) MapEdges(fn func(edge Edge[P, E]) E) PersistentGraph[P, V, E] {
	return MapEdgeValues(g, fn)
}

// FlatMapVertices returns a graph where each vertex is replaced by the vertices fn returns, which
// may have new points. When several outputs share a point, the last one wins.
func (g PersistentGraph[P, V, E]) FlatMapVertices(fn func(point P, value V) []Vertex[P, V]) PersistentGraph[P, V, E] {
	return g.with(&flatMapVerticesDesign[P, V, E]{
		parent: g.design,
		fn:     fn,
	})
}

// FlatMapEdges returns a graph where each edge is replaced by the edges fn returns, which may
// connect new points. The outputs are put like PutEdge.
func (g PersistentGraph[P, V, E]) FlatMapEdges(fn func(edge Edge[P, E]) []Edge[P, E]) PersistentGraph[P, V, E] {
	return g.with(&flatMapEdgesDesign[P, V, E]{
		parent: g.design,
		fn:     fn,
	})
}

// MapVertexValues returns a graph with every vertex payload transformed from V to W.
func MapVertexValues[P any, V any, W any, E comparable](
	g PersistentGraph[P, V, E],
	fn func(point P, value V) W) PersistentGraph[P, W, E] {

	return PersistentGraph[P, W, E]{
		design: &mapVerticesDesign[P, V, W, E]{
			parent: g.design,
			fn:     fn,
		},
		target: g.target,
		config: g.config,
	}
}

// MapEdgeValues returns a graph with every edge payload transformed from E to F. For
// ParallelEdgesPerPair, edges of a pair mapped to equal values collapse into one.
func MapEdgeValues[P any, V any, E comparable, F comparable](
	g PersistentGraph[P, V, E],
	fn func(edge Edge[P, E]) F) PersistentGraph[P, V, F] {

	return PersistentGraph[P, V, F]{
		design: &mapEdgesDesign[P, V, E, F]{
			parent: g.design,
			fn:     fn,
		},
		target: g.target,
		config: g.config,
	}
}
