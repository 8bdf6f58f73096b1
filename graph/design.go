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
	"sync"

	"github.com/benbjohnson/immutable"

	"github.com/botobag/funcify/errors"
)

// Design is an immutable recipe for a graph: a chain of pending operations rooted at an empty graph
// (or at materialized data). Each PersistentGraph mutator wraps the design of the receiver in a
// new node and never touches the old one.
//
// Folding a design against a target representation folds its parent first and then applies its own
// operation with the behavior of the target, so one design can be materialized into either
// representation. Folding is referentially transparent; each node remembers its result per target
// so repeated reads of the same graph don't refold the chain.
type Design[P any, V any, E comparable] interface {
	// Fold materializes the design into data of the target representation.
	Fold(target Representation) GraphData[P, V, E]
}

// foldMemo records the fold result of a design node for each representation.
type foldMemo[P any, V any, E comparable] struct {
	once [numRepresentations]sync.Once
	data [numRepresentations]GraphData[P, V, E]
}

func (memo *foldMemo[P, V, E]) fold(
	target Representation,
	compute func(b behavior[P, V, E]) GraphData[P, V, E]) GraphData[P, V, E] {

	if target < 0 || target >= numRepresentations {
		errors.Invariant("graph.Design.Fold", "unhandled representation %d", int(target))
	}
	memo.once[target].Do(func() {
		memo.data[target] = compute(behaviorFor[P, V, E](target))
	})
	return memo.data[target]
}

//===----------------------------------------------------------------------------------------====//
// Roots
//===----------------------------------------------------------------------------------------====//

type emptyDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	traits *traits[P]
}

func (design *emptyDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		return b.empty(design.traits)
	})
}

type dataDesign[P any, V any, E comparable] struct {
	memo foldMemo[P, V, E]
	data GraphData[P, V, E]
}

func (design *dataDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		return b.convert(design.data)
	})
}

//===----------------------------------------------------------------------------------------====//
// Vertex insertion and removal
//===----------------------------------------------------------------------------------------====//

type putVertexDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	point  P
	value  V
}

func (design *putVertexDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		return b.withVertices(d, d.VerticesByPoint().Set(design.point, design.value))
	})
}

type putVerticesDesign[P any, V any, E comparable] struct {
	memo     foldMemo[P, V, E]
	parent   Design[P, V, E]
	vertices []Vertex[P, V]
}

func (design *putVerticesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		vertices := d.VerticesByPoint()
		for _, vertex := range design.vertices {
			vertices = vertices.Set(vertex.Point, vertex.Value)
		}
		return b.withVertices(d, vertices)
	})
}

type removeVertexDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	point  P
}

func (design *removeVertexDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		vertices := d.VerticesByPoint()
		if _, ok := vertices.Get(design.point); !ok {
			return d
		}
		d = b.withVertices(d, vertices.Delete(design.point))

		t := d.graphTraits()
		if t.directed {
			return d
		}
		// Undirected graphs drop the edges incident to the removed vertex.
		return b.filterEdges(d, func(key PointPair[P], _ E) bool {
			return !t.samePoint(key.First, design.point) && !t.samePoint(key.Second, design.point)
		})
	})
}

//===----------------------------------------------------------------------------------------====//
// Edge insertion and removal
//===----------------------------------------------------------------------------------------====//

type putEdgeDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	edge   Edge[P, E]
}

func (design *putEdgeDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		edge := design.edge
		return b.putEdge(d, d.graphTraits().key(edge.From, edge.To), edge.Value)
	})
}

type putEdgesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	edges  []Edge[P, E]
}

func (design *putEdgesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		t := d.graphTraits()
		for _, edge := range design.edges {
			d = b.putEdge(d, t.key(edge.From, edge.To), edge.Value)
		}
		return d
	})
}

type putEdgeSetsDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	groups []EdgeGroup[P, E]
}

func (design *putEdgeSetsDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		t := d.graphTraits()
		for _, group := range design.groups {
			key := t.key(group.From, group.To)
			for _, value := range group.Values {
				d = b.putEdge(d, key, value)
			}
		}
		return d
	})
}

type removeEdgesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	from   P
	to     P
}

func (design *removeEdgesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		return b.removeEdges(d, d.graphTraits().key(design.from, design.to))
	})
}

//===----------------------------------------------------------------------------------------====//
// Filters
//===----------------------------------------------------------------------------------------====//

type filterVerticesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	keep   func(point P, value V) bool
}

func (design *filterVerticesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		t := d.graphTraits()

		var (
			vertices = d.VerticesByPoint()
			removed  = immutable.NewSortedMap[P, struct{}](t.points)
		)
		itr := d.VerticesByPoint().Iterator()
		for !itr.Done() {
			point, value, _ := itr.Next()
			if !design.keep(point, value) {
				vertices = vertices.Delete(point)
				removed = removed.Set(point, struct{}{})
			}
		}
		if removed.Len() == 0 {
			return d
		}
		d = b.withVertices(d, vertices)

		if t.directed {
			return d
		}
		// Undirected graphs drop the edges incident to the removed vertices.
		return b.filterEdges(d, func(key PointPair[P], _ E) bool {
			_, firstRemoved := removed.Get(key.First)
			_, secondRemoved := removed.Get(key.Second)
			return !firstRemoved && !secondRemoved
		})
	})
}

type filterEdgesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	keep   func(edge Edge[P, E]) bool
}

func (design *filterEdgesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		return b.filterEdges(design.parent.Fold(target), func(key PointPair[P], edge E) bool {
			return design.keep(Edge[P, E]{From: key.First, To: key.Second, Value: edge})
		})
	})
}

//===----------------------------------------------------------------------------------------====//
// Maps
//===----------------------------------------------------------------------------------------====//

// mapVerticesDesign transforms vertex payloads from V to W keeping points and edges.
type mapVerticesDesign[P any, V any, W any, E comparable] struct {
	memo   foldMemo[P, W, E]
	parent Design[P, V, E]
	fn     func(point P, value V) W
}

func (design *mapVerticesDesign[P, V, W, E]) Fold(target Representation) GraphData[P, W, E] {
	return design.memo.fold(target, func(behavior[P, W, E]) GraphData[P, W, E] {
		d := design.parent.Fold(target)
		builder := immutable.NewSortedMapBuilder[P, W](d.graphTraits().points)
		itr := d.VerticesByPoint().Iterator()
		for !itr.Done() {
			point, value, _ := itr.Next()
			builder.Set(point, design.fn(point, value))
		}
		return rebindVertices[P, V, W, E](d, builder.Map())
	})
}

// rebindVertices returns data with the edges of d and the given vertices.
func rebindVertices[P any, V any, W any, E comparable](
	d GraphData[P, V, E],
	vertices *immutable.SortedMap[P, W]) GraphData[P, W, E] {

	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		return &SingleEdgeData[P, W, E]{
			traits:           d.traits,
			verticesByPoint:  vertices,
			edgesByPointPair: d.edgesByPointPair,
		}
	case *ParallelEdgeData[P, V, E]:
		return &ParallelEdgeData[P, W, E]{
			traits:              d.traits,
			verticesByPoint:     vertices,
			edgeSetsByPointPair: d.edgeSetsByPointPair,
		}
	}
	unhandledData("graph.rebindVertices", d)
	return nil
}

// mapEdgesDesign transforms edge payloads from E to F keeping vertices and edge keys. In
// ParallelEdgesPerPair, edges mapped to the same value under a key collapse into one.
type mapEdgesDesign[P any, V any, E comparable, F comparable] struct {
	memo   foldMemo[P, V, F]
	parent Design[P, V, E]
	fn     func(edge Edge[P, E]) F
}

func (design *mapEdgesDesign[P, V, E, F]) Fold(target Representation) GraphData[P, V, F] {
	return design.memo.fold(target, func(behavior[P, V, F]) GraphData[P, V, F] {
		return mapEdgeData(design.parent.Fold(target), design.fn)
	})
}

func mapEdgeData[P any, V any, E comparable, F comparable](
	d GraphData[P, V, E],
	fn func(edge Edge[P, E]) F) GraphData[P, V, F] {

	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		builder := immutable.NewSortedMapBuilder[PointPair[P], F](d.traits.pairs)
		itr := d.edgesByPointPair.Iterator()
		for !itr.Done() {
			key, edge, _ := itr.Next()
			builder.Set(key, fn(Edge[P, E]{From: key.First, To: key.Second, Value: edge}))
		}
		return &SingleEdgeData[P, V, F]{
			traits:           d.traits,
			verticesByPoint:  d.verticesByPoint,
			edgesByPointPair: builder.Map(),
		}

	case *ParallelEdgeData[P, V, E]:
		builder := immutable.NewSortedMapBuilder[PointPair[P], EdgeSet[F]](d.traits.pairs)
		itr := d.edgeSetsByPointPair.Iterator()
		for !itr.Done() {
			key, set, _ := itr.Next()
			var mapped EdgeSet[F]
			for _, edge := range set.Values() {
				mapped = mapped.Add(fn(Edge[P, E]{From: key.First, To: key.Second, Value: edge}))
			}
			builder.Set(key, mapped)
		}
		return &ParallelEdgeData[P, V, F]{
			traits:              d.traits,
			verticesByPoint:     d.verticesByPoint,
			edgeSetsByPointPair: builder.Map(),
		}
	}
	unhandledData("graph.mapEdgeData", d)
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Flat maps
//===----------------------------------------------------------------------------------------====//

// flatMapVerticesDesign replaces every vertex with zero or more vertices. Later outputs overwrite
// earlier ones with the same point; inputs are visited in point order.
type flatMapVerticesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	fn     func(point P, value V) []Vertex[P, V]
}

func (design *flatMapVerticesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		builder := immutable.NewSortedMapBuilder[P, V](d.graphTraits().points)
		itr := d.VerticesByPoint().Iterator()
		for !itr.Done() {
			point, value, _ := itr.Next()
			for _, vertex := range design.fn(point, value) {
				builder.Set(vertex.Point, vertex.Value)
			}
		}
		return b.withVertices(d, builder.Map())
	})
}

// flatMapEdgesDesign replaces every edge with zero or more edges. The outputs are put in order with
// the put semantics of the target representation: the last one wins for SingleEdgePerPair and all
// are kept for ParallelEdgesPerPair.
type flatMapEdgesDesign[P any, V any, E comparable] struct {
	memo   foldMemo[P, V, E]
	parent Design[P, V, E]
	fn     func(edge Edge[P, E]) []Edge[P, E]
}

func (design *flatMapEdgesDesign[P, V, E]) Fold(target Representation) GraphData[P, V, E] {
	return design.memo.fold(target, func(b behavior[P, V, E]) GraphData[P, V, E] {
		d := design.parent.Fold(target)
		t := d.graphTraits()

		var outputs []Edge[P, E]
		forEachEdgeGroup(d, func(key PointPair[P], edges []E) bool {
			for _, edge := range edges {
				outputs = append(outputs, design.fn(Edge[P, E]{From: key.First, To: key.Second, Value: edge})...)
			}
			return true
		})

		result := b.withVertices(b.empty(t), d.VerticesByPoint())
		for _, edge := range outputs {
			result = b.putEdge(result, t.key(edge.From, edge.To), edge.Value)
		}
		return result
	})
}
