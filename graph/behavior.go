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

	"github.com/botobag/funcify/errors"
)

// behavior implements the graph algorithms against one GraphData representation. Behaviors are
// stateless. Every method accepts data of any representation and converts it into its own first,
// so a design folded against a target representation always produces data of that
// representation.
type behavior[P any, V any, E comparable] interface {
	representation() Representation

	// empty creates data with no vertex and no edge.
	empty(t *traits[P]) GraphData[P, V, E]

	// convert converts data into the representation of the behavior.
	convert(d GraphData[P, V, E]) GraphData[P, V, E]

	// withVertices replaces the vertex map of the data.
	withVertices(d GraphData[P, V, E], vertices *immutable.SortedMap[P, V]) GraphData[P, V, E]

	// putEdge adds the edge under the storage key.
	putEdge(d GraphData[P, V, E], key PointPair[P], edge E) GraphData[P, V, E]

	// removeEdges removes all edges under the storage key.
	removeEdges(d GraphData[P, V, E], key PointPair[P]) GraphData[P, V, E]

	// filterEdges keeps the edges for which keep returns true.
	filterEdges(d GraphData[P, V, E], keep func(key PointPair[P], edge E) bool) GraphData[P, V, E]
}

// behaviorFor returns the behavior of the representation.
func behaviorFor[P any, V any, E comparable](r Representation) behavior[P, V, E] {
	switch r {
	case SingleEdgePerPair:
		return singleEdgeBehavior[P, V, E]{}
	case ParallelEdgesPerPair:
		return parallelEdgeBehavior[P, V, E]{}
	}
	errors.Invariant("graph.behaviorFor", "unhandled representation %d", int(r))
	return nil
}

// unhandledData panics for a GraphData implementation outside of the closed set.
func unhandledData(op errors.Op, d interface{}) {
	errors.Invariant(op, "unhandled graph data type %T", d)
}

//===----------------------------------------------------------------------------------------====//
// Edge access shared by both representations
//===----------------------------------------------------------------------------------------====//

// edgesOf returns the edges stored under the key.
func edgesOf[P any, V any, E comparable](d GraphData[P, V, E], key PointPair[P]) []E {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		if edge, ok := d.edgesByPointPair.Get(key); ok {
			return []E{edge}
		}
		return nil
	case *ParallelEdgeData[P, V, E]:
		set, _ := d.edgeSetsByPointPair.Get(key)
		return set.Values()
	}
	unhandledData("graph.edgesOf", d)
	return nil
}

// hasEdges returns true if at least one edge is stored under the key.
func hasEdges[P any, V any, E comparable](d GraphData[P, V, E], key PointPair[P]) bool {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		_, ok := d.edgesByPointPair.Get(key)
		return ok
	case *ParallelEdgeData[P, V, E]:
		_, ok := d.edgeSetsByPointPair.Get(key)
		return ok
	}
	unhandledData("graph.hasEdges", d)
	return false
}

// edgeCount returns the number of edges including parallel ones.
func edgeCount[P any, V any, E comparable](d GraphData[P, V, E]) int {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		return d.edgesByPointPair.Len()
	case *ParallelEdgeData[P, V, E]:
		n := 0
		itr := d.edgeSetsByPointPair.Iterator()
		for !itr.Done() {
			_, set, _ := itr.Next()
			n += set.Len()
		}
		return n
	}
	unhandledData("graph.edgeCount", d)
	return 0
}

// pairCount returns the number of keys that have edges.
func pairCount[P any, V any, E comparable](d GraphData[P, V, E]) int {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		return d.edgesByPointPair.Len()
	case *ParallelEdgeData[P, V, E]:
		return d.edgeSetsByPointPair.Len()
	}
	unhandledData("graph.pairCount", d)
	return 0
}

// forEachEdgeGroup calls f with every key and its edges in key order until f returns false.
func forEachEdgeGroup[P any, V any, E comparable](d GraphData[P, V, E], f func(key PointPair[P], edges []E) bool) {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		itr := d.edgesByPointPair.Iterator()
		for !itr.Done() {
			key, edge, _ := itr.Next()
			if !f(key, []E{edge}) {
				return
			}
		}
	case *ParallelEdgeData[P, V, E]:
		itr := d.edgeSetsByPointPair.Iterator()
		for !itr.Done() {
			key, set, _ := itr.Next()
			if !f(key, set.Values()) {
				return
			}
		}
	default:
		unhandledData("graph.forEachEdgeGroup", d)
	}
}

// edgeKeys returns all keys that have edges in key order.
func edgeKeys[P any, V any, E comparable](d GraphData[P, V, E]) []PointPair[P] {
	keys := make([]PointPair[P], 0, pairCount[P, V, E](d))
	forEachEdgeGroup(d, func(key PointPair[P], _ []E) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

//===----------------------------------------------------------------------------------------====//
// singleEdgeBehavior
//===----------------------------------------------------------------------------------------====//

type singleEdgeBehavior[P any, V any, E comparable] struct{}

var _ behavior[string, int, int] = singleEdgeBehavior[string, int, int]{}

func (singleEdgeBehavior[P, V, E]) representation() Representation {
	return SingleEdgePerPair
}

func (singleEdgeBehavior[P, V, E]) empty(t *traits[P]) GraphData[P, V, E] {
	return &SingleEdgeData[P, V, E]{
		traits:           t,
		verticesByPoint:  immutable.NewSortedMap[P, V](t.points),
		edgesByPointPair: immutable.NewSortedMap[PointPair[P], E](t.pairs),
	}
}

// convert keeps the most recently added edge of each parallel edge set.
func (singleEdgeBehavior[P, V, E]) convert(d GraphData[P, V, E]) GraphData[P, V, E] {
	switch d := d.(type) {
	case *SingleEdgeData[P, V, E]:
		return d
	case *ParallelEdgeData[P, V, E]:
		builder := immutable.NewSortedMapBuilder[PointPair[P], E](d.traits.pairs)
		itr := d.edgeSetsByPointPair.Iterator()
		for !itr.Done() {
			key, set, _ := itr.Next()
			if edge, ok := set.Last(); ok {
				builder.Set(key, edge)
			}
		}
		return &SingleEdgeData[P, V, E]{
			traits:           d.traits,
			verticesByPoint:  d.verticesByPoint,
			edgesByPointPair: builder.Map(),
		}
	}
	unhandledData("graph.singleEdgeBehavior.convert", d)
	return nil
}

func (b singleEdgeBehavior[P, V, E]) data(d GraphData[P, V, E]) *SingleEdgeData[P, V, E] {
	return b.convert(d).(*SingleEdgeData[P, V, E])
}

func (b singleEdgeBehavior[P, V, E]) withVertices(
	d GraphData[P, V, E],
	vertices *immutable.SortedMap[P, V]) GraphData[P, V, E] {

	data := b.data(d)
	return &SingleEdgeData[P, V, E]{
		traits:           data.traits,
		verticesByPoint:  vertices,
		edgesByPointPair: data.edgesByPointPair,
	}
}

func (b singleEdgeBehavior[P, V, E]) putEdge(d GraphData[P, V, E], key PointPair[P], edge E) GraphData[P, V, E] {
	data := b.data(d)
	return &SingleEdgeData[P, V, E]{
		traits:           data.traits,
		verticesByPoint:  data.verticesByPoint,
		edgesByPointPair: data.edgesByPointPair.Set(key, edge),
	}
}

func (b singleEdgeBehavior[P, V, E]) removeEdges(d GraphData[P, V, E], key PointPair[P]) GraphData[P, V, E] {
	data := b.data(d)
	return &SingleEdgeData[P, V, E]{
		traits:           data.traits,
		verticesByPoint:  data.verticesByPoint,
		edgesByPointPair: data.edgesByPointPair.Delete(key),
	}
}

func (b singleEdgeBehavior[P, V, E]) filterEdges(
	d GraphData[P, V, E],
	keep func(key PointPair[P], edge E) bool) GraphData[P, V, E] {

	data := b.data(d)
	edges := data.edgesByPointPair
	itr := data.edgesByPointPair.Iterator()
	for !itr.Done() {
		key, edge, _ := itr.Next()
		if !keep(key, edge) {
			edges = edges.Delete(key)
		}
	}
	return &SingleEdgeData[P, V, E]{
		traits:           data.traits,
		verticesByPoint:  data.verticesByPoint,
		edgesByPointPair: edges,
	}
}

//===----------------------------------------------------------------------------------------====//
// parallelEdgeBehavior
//===----------------------------------------------------------------------------------------====//

type parallelEdgeBehavior[P any, V any, E comparable] struct{}

var _ behavior[string, int, int] = parallelEdgeBehavior[string, int, int]{}

func (parallelEdgeBehavior[P, V, E]) representation() Representation {
	return ParallelEdgesPerPair
}

func (parallelEdgeBehavior[P, V, E]) empty(t *traits[P]) GraphData[P, V, E] {
	return &ParallelEdgeData[P, V, E]{
		traits:              t,
		verticesByPoint:     immutable.NewSortedMap[P, V](t.points),
		edgeSetsByPointPair: immutable.NewSortedMap[PointPair[P], EdgeSet[E]](t.pairs),
	}
}

// convert wraps each edge in a set of one.
func (parallelEdgeBehavior[P, V, E]) convert(d GraphData[P, V, E]) GraphData[P, V, E] {
	switch d := d.(type) {
	case *ParallelEdgeData[P, V, E]:
		return d
	case *SingleEdgeData[P, V, E]:
		builder := immutable.NewSortedMapBuilder[PointPair[P], EdgeSet[E]](d.traits.pairs)
		itr := d.edgesByPointPair.Iterator()
		for !itr.Done() {
			key, edge, _ := itr.Next()
			builder.Set(key, NewEdgeSet(edge))
		}
		return &ParallelEdgeData[P, V, E]{
			traits:              d.traits,
			verticesByPoint:     d.verticesByPoint,
			edgeSetsByPointPair: builder.Map(),
		}
	}
	unhandledData("graph.parallelEdgeBehavior.convert", d)
	return nil
}

func (b parallelEdgeBehavior[P, V, E]) data(d GraphData[P, V, E]) *ParallelEdgeData[P, V, E] {
	return b.convert(d).(*ParallelEdgeData[P, V, E])
}

func (b parallelEdgeBehavior[P, V, E]) withVertices(
	d GraphData[P, V, E],
	vertices *immutable.SortedMap[P, V]) GraphData[P, V, E] {

	data := b.data(d)
	return &ParallelEdgeData[P, V, E]{
		traits:              data.traits,
		verticesByPoint:     vertices,
		edgeSetsByPointPair: data.edgeSetsByPointPair,
	}
}

func (b parallelEdgeBehavior[P, V, E]) putEdge(d GraphData[P, V, E], key PointPair[P], edge E) GraphData[P, V, E] {
	data := b.data(d)
	set, _ := data.edgeSetsByPointPair.Get(key)
	return &ParallelEdgeData[P, V, E]{
		traits:              data.traits,
		verticesByPoint:     data.verticesByPoint,
		edgeSetsByPointPair: data.edgeSetsByPointPair.Set(key, set.Add(edge)),
	}
}

func (b parallelEdgeBehavior[P, V, E]) removeEdges(d GraphData[P, V, E], key PointPair[P]) GraphData[P, V, E] {
	data := b.data(d)
	return &ParallelEdgeData[P, V, E]{
		traits:              data.traits,
		verticesByPoint:     data.verticesByPoint,
		edgeSetsByPointPair: data.edgeSetsByPointPair.Delete(key),
	}
}

func (b parallelEdgeBehavior[P, V, E]) filterEdges(
	d GraphData[P, V, E],
	keep func(key PointPair[P], edge E) bool) GraphData[P, V, E] {

	data := b.data(d)
	sets := data.edgeSetsByPointPair
	itr := data.edgeSetsByPointPair.Iterator()
	for !itr.Done() {
		key, set, _ := itr.Next()
		var (
			kept    EdgeSet[E]
			changed bool
		)
		for _, edge := range set.Values() {
			if keep(key, edge) {
				kept = kept.Add(edge)
			} else {
				changed = true
			}
		}
		switch {
		case !changed:
		case kept.Len() == 0:
			sets = sets.Delete(key)
		default:
			sets = sets.Set(key, kept)
		}
	}
	return &ParallelEdgeData[P, V, E]{
		traits:              data.traits,
		verticesByPoint:     data.verticesByPoint,
		edgeSetsByPointPair: sets,
	}
}
