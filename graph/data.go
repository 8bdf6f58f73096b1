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
	"github.com/benbjohnson/immutable"

	"github.com/botobag/funcify/iterator"
)

// Representation selects the storage strategy of a graph.
type Representation int

// Enumeration of Representation
const (
	// SingleEdgePerPair stores at most one edge for each ordered pair of points. Putting an edge for
	// a pair that already has one replaces it.
	SingleEdgePerPair Representation = iota

	// ParallelEdgesPerPair stores a set of edges for each ordered pair of points.
	ParallelEdgesPerPair

	numRepresentations
)

func (r Representation) String() string {
	switch r {
	case SingleEdgePerPair:
		return "SingleEdgePerPair"
	case ParallelEdgesPerPair:
		return "ParallelEdgesPerPair"
	}
	return "UnknownRepresentation"
}

// PointPair identifies the endpoints of an edge.
type PointPair[P any] struct {
	First  P
	Second P
}

// Reverse returns the pair with its endpoints swapped.
func (pair PointPair[P]) Reverse() PointPair[P] {
	return PointPair[P]{First: pair.Second, Second: pair.First}
}

// Vertex is a point with its payload.
type Vertex[P, V any] struct {
	Point P
	Value V
}

// Edge is a payload connecting two points.
type Edge[P, E any] struct {
	From  P
	To    P
	Value E
}

// EdgeGroup is all the edges between two points. It is the unit of PersistentGraph.PutEdgeSets.
type EdgeGroup[P, E any] struct {
	From   P
	To     P
	Values []E
}

//===----------------------------------------------------------------------------------------====//
// Ordering
//===----------------------------------------------------------------------------------------====//

// pointOrder implements immutable.Comparer for points.
type pointOrder[P any] struct {
	compare func(a, b P) int
}

// Compare implements immutable.Comparer.
func (o pointOrder[P]) Compare(a, b P) int {
	return o.compare(a, b)
}

// pairOrder implements immutable.Comparer for point pairs: by first point then by second point.
type pairOrder[P any] struct {
	compare func(a, b P) int
}

// Compare implements immutable.Comparer.
func (o pairOrder[P]) Compare(a, b PointPair[P]) int {
	if c := o.compare(a.First, b.First); c != 0 {
		return c
	}
	return o.compare(a.Second, b.Second)
}

// traits are the properties fixed for a graph when it is built.
type traits[P any] struct {
	points   pointOrder[P]
	pairs    pairOrder[P]
	directed bool
}

func newTraits[P any](compare func(a, b P) int, directed bool) *traits[P] {
	return &traits[P]{
		points:   pointOrder[P]{compare},
		pairs:    pairOrder[P]{compare},
		directed: directed,
	}
}

// key returns the storage key for an edge between the points. Undirected graphs store an edge
// under the pair with the lesser point first.
func (t *traits[P]) key(from, to P) PointPair[P] {
	if !t.directed && t.points.compare(from, to) > 0 {
		return PointPair[P]{First: to, Second: from}
	}
	return PointPair[P]{First: from, Second: to}
}

func (t *traits[P]) samePoint(a, b P) bool {
	return t.points.compare(a, b) == 0
}

//===----------------------------------------------------------------------------------------====//
// EdgeSet
//===----------------------------------------------------------------------------------------====//

// EdgeSet is a persistent set of parallel edges between a pair of points. Edges keep the order in
// which they were first added. The zero value is an empty set.
//
// Membership is checked by scanning the edges, so Contains and Add are linear in the size of the
// set and building a set of k edges costs O(k²). Edge values may be any comparable type, for which
// no hash is available. Sets are expected to hold a handful of edges.
type EdgeSet[E comparable] struct {
	list *immutable.List[E]
}

// NewEdgeSet creates a set from the given edges; duplicates are dropped.
func NewEdgeSet[E comparable](edges ...E) EdgeSet[E] {
	var set EdgeSet[E]
	for _, edge := range edges {
		set = set.Add(edge)
	}
	return set
}

// Len returns the number of edges in the set.
func (set EdgeSet[E]) Len() int {
	if set.list == nil {
		return 0
	}
	return set.list.Len()
}

// Contains returns true if the set contains the edge.
func (set EdgeSet[E]) Contains(edge E) bool {
	if set.list == nil {
		return false
	}
	itr := set.list.Iterator()
	for !itr.Done() {
		if _, e := itr.Next(); e == edge {
			return true
		}
	}
	return false
}

// Add returns a set containing the edge. It returns set itself if the edge is already present.
func (set EdgeSet[E]) Add(edge E) EdgeSet[E] {
	if set.list == nil {
		return EdgeSet[E]{list: immutable.NewList(edge)}
	}
	if set.Contains(edge) {
		return set
	}
	return EdgeSet[E]{list: set.list.Append(edge)}
}

// Values returns the edges in the set.
func (set EdgeSet[E]) Values() []E {
	if set.list == nil {
		return nil
	}
	values := make([]E, 0, set.list.Len())
	itr := set.list.Iterator()
	for !itr.Done() {
		_, e := itr.Next()
		values = append(values, e)
	}
	return values
}

// Last returns the most recently added edge.
func (set EdgeSet[E]) Last() (E, bool) {
	if set.Len() == 0 {
		var zero E
		return zero, false
	}
	return set.list.Get(set.list.Len() - 1), true
}

//===----------------------------------------------------------------------------------------====//
// GraphData
//===----------------------------------------------------------------------------------------====//

// GraphData is the materialized storage of a graph. It is a closed set of *SingleEdgeData and
// *ParallelEdgeData; both keep vertices in a persistent map ordered by point and share unchanged
// structure with the data they were derived from.
type GraphData[P any, V any, E comparable] interface {
	// Representation returns the storage strategy of the data.
	Representation() Representation

	// VerticesByPoint returns the persistent vertex map.
	VerticesByPoint() *immutable.SortedMap[P, V]

	// Vertex returns the payload of the vertex at the point.
	Vertex(point P) (V, bool)

	// VertexCount returns the number of vertices.
	VertexCount() int

	// Vertices returns an iterator over the vertices ordered by point.
	Vertices() iterator.Iterator[Vertex[P, V]]

	// graphTraits seals the interface.
	graphTraits() *traits[P]
}

// SingleEdgeData stores at most one edge per pair of points.
type SingleEdgeData[P any, V any, E comparable] struct {
	traits           *traits[P]
	verticesByPoint  *immutable.SortedMap[P, V]
	edgesByPointPair *immutable.SortedMap[PointPair[P], E]
}

// ParallelEdgeData stores a set of edges per pair of points.
type ParallelEdgeData[P any, V any, E comparable] struct {
	traits              *traits[P]
	verticesByPoint     *immutable.SortedMap[P, V]
	edgeSetsByPointPair *immutable.SortedMap[PointPair[P], EdgeSet[E]]
}

var (
	_ GraphData[string, int, int] = (*SingleEdgeData[string, int, int])(nil)
	_ GraphData[string, int, int] = (*ParallelEdgeData[string, int, int])(nil)
)

// Representation implements GraphData.
func (*SingleEdgeData[P, V, E]) Representation() Representation {
	return SingleEdgePerPair
}

// VerticesByPoint implements GraphData.
func (d *SingleEdgeData[P, V, E]) VerticesByPoint() *immutable.SortedMap[P, V] {
	return d.verticesByPoint
}

// Vertex implements GraphData.
func (d *SingleEdgeData[P, V, E]) Vertex(point P) (V, bool) {
	return d.verticesByPoint.Get(point)
}

// VertexCount implements GraphData.
func (d *SingleEdgeData[P, V, E]) VertexCount() int {
	return d.verticesByPoint.Len()
}

// Vertices implements GraphData.
func (d *SingleEdgeData[P, V, E]) Vertices() iterator.Iterator[Vertex[P, V]] {
	return vertexIterator(d.verticesByPoint)
}

// EdgesByPointPair returns the persistent edge map.
func (d *SingleEdgeData[P, V, E]) EdgesByPointPair() *immutable.SortedMap[PointPair[P], E] {
	return d.edgesByPointPair
}

func (d *SingleEdgeData[P, V, E]) graphTraits() *traits[P] {
	return d.traits
}

// Representation implements GraphData.
func (*ParallelEdgeData[P, V, E]) Representation() Representation {
	return ParallelEdgesPerPair
}

// VerticesByPoint implements GraphData.
func (d *ParallelEdgeData[P, V, E]) VerticesByPoint() *immutable.SortedMap[P, V] {
	return d.verticesByPoint
}

// Vertex implements GraphData.
func (d *ParallelEdgeData[P, V, E]) Vertex(point P) (V, bool) {
	return d.verticesByPoint.Get(point)
}

// VertexCount implements GraphData.
func (d *ParallelEdgeData[P, V, E]) VertexCount() int {
	return d.verticesByPoint.Len()
}

// Vertices implements GraphData.
func (d *ParallelEdgeData[P, V, E]) Vertices() iterator.Iterator[Vertex[P, V]] {
	return vertexIterator(d.verticesByPoint)
}

// EdgeSetsByPointPair returns the persistent map of edge sets.
func (d *ParallelEdgeData[P, V, E]) EdgeSetsByPointPair() *immutable.SortedMap[PointPair[P], EdgeSet[E]] {
	return d.edgeSetsByPointPair
}

func (d *ParallelEdgeData[P, V, E]) graphTraits() *traits[P] {
	return d.traits
}

func vertexIterator[P, V any](vertices *immutable.SortedMap[P, V]) iterator.Iterator[Vertex[P, V]] {
	itr := vertices.Iterator()
	return iterator.Func[Vertex[P, V]](func() (Vertex[P, V], error) {
		if itr.Done() {
			return Vertex[P, V]{}, iterator.Done
		}
		point, value, _ := itr.Next()
		return Vertex[P, V]{Point: point, Value: value}, nil
	})
}
