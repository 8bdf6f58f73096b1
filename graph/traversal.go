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
)

// Traversal queries scan the edge keys and keep those touching the point. In an undirected graph
// every edge is both outgoing and incoming for its two endpoints.

// edgesTouching returns edges leaving (outgoing) or entering (!outgoing) the point, oriented so
// that From (or To) is the point.
func edgesTouching[P any, V any, E comparable](d GraphData[P, V, E], point P, outgoing bool) []Edge[P, E] {
	t := d.graphTraits()
	var result []Edge[P, E]
	forEachEdgeGroup(d, func(key PointPair[P], edges []E) bool {
		var (
			from, to P
			matched  bool
		)
		switch {
		case outgoing && t.samePoint(key.First, point):
			from, to, matched = key.First, key.Second, true
		case !outgoing && t.samePoint(key.Second, point):
			from, to, matched = key.First, key.Second, true
		case !t.directed && outgoing && t.samePoint(key.Second, point):
			from, to, matched = key.Second, key.First, true
		case !t.directed && !outgoing && t.samePoint(key.First, point):
			from, to, matched = key.Second, key.First, true
		}
		if matched {
			for _, edge := range edges {
				result = append(result, Edge[P, E]{From: from, To: to, Value: edge})
			}
		}
		return true
	})
	return result
}

// neighbors returns the stored vertices at the other end of the edges touching the point, ordered by
// point and without duplicates.
func neighbors[P any, V any, E comparable](d GraphData[P, V, E], point P, outgoing, incoming bool) []Vertex[P, V] {
	t := d.graphTraits()
	found := immutable.NewSortedMapBuilder[P, V](t.points)
	collect := func(edges []Edge[P, E], other func(Edge[P, E]) P) {
		for _, edge := range edges {
			p := other(edge)
			if value, ok := d.Vertex(p); ok {
				found.Set(p, value)
			}
		}
	}
	if outgoing {
		collect(edgesTouching[P, V, E](d, point, true), func(edge Edge[P, E]) P { return edge.To })
	}
	if incoming {
		collect(edgesTouching[P, V, E](d, point, false), func(edge Edge[P, E]) P { return edge.From })
	}

	vertices := found.Map()
	result := make([]Vertex[P, V], 0, vertices.Len())
	itr := vertices.Iterator()
	for !itr.Done() {
		p, value, _ := itr.Next()
		result = append(result, Vertex[P, V]{Point: p, Value: value})
	}
	return result
}
