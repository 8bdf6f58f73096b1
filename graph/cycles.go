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
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Cycle is a pair of edges that close a loop between two points: First goes from a to b and Second
// goes from b back to a.
type Cycle[P, E any] struct {
	First  Edge[P, E]
	Second Edge[P, E]
}

// Cycle detection checks every edge key (a, b) for the reversed key (b, a). It therefore finds
// loops of length two (and self loops) only; a -> b -> c -> a is not reported. The check over the
// key set is read-only and is split into chunks that run in parallel when the graph is large.

// chunks splits keys into at most n contiguous chunks of similar size.
func chunks[T any](items []T, n int) [][]T {
	if n <= 1 || len(items) <= 1 {
		return [][]T{items}
	}
	if n > len(items) {
		n = len(items)
	}
	size := (len(items) + n - 1) / n
	result := make([][]T, 0, n)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		result = append(result, items[start:end])
	}
	return result
}

// scanKeys runs scan over chunks of the edge keys, in parallel when the key count reaches the
// configured threshold. Results are returned in chunk order. scan may return false to ask other
// chunks to stop early.
func scanKeys[P any, R any](
	config *Config,
	keys []PointPair[P],
	scan func(ctx context.Context, keys []PointPair[P]) (R, bool)) []R {

	parallelism := 1
	if len(keys) >= config.ParallelThreshold {
		parallelism = int(config.Parallelism)
	}
	parts := chunks(keys, parallelism)
	results := make([]R, len(parts))

	if len(parts) == 1 {
		results[0], _ = scan(context.Background(), parts[0])
		return results
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			var proceed bool
			results[i], proceed = scan(gCtx, part)
			if !proceed {
				cancel()
			}
			return nil
		})
	}
	// Workers never return errors.
	_ = g.Wait()
	return results
}

// hasCycles reports whether any mutual edge pair exists.
func hasCycles[P any, V any, E comparable](config *Config, d GraphData[P, V, E]) bool {
	t := d.graphTraits()
	if !t.directed {
		return len(undirectedCycles[P, V, E](d, true)) > 0
	}

	var found atomic.Bool
	scanKeys(config, edgeKeys[P, V, E](d), func(ctx context.Context, keys []PointPair[P]) (struct{}, bool) {
		for _, key := range keys {
			if found.Load() || ctx.Err() != nil {
				return struct{}{}, false
			}
			if hasEdges[P, V, E](d, key.Reverse()) {
				found.Store(true)
				return struct{}{}, false
			}
		}
		return struct{}{}, true
	})
	return found.Load()
}

// cycles enumerates the mutual edge pairs. Each pair of keys (a, b) and (b, a) is reported once,
// from the key whose first point orders before its second, as the Cartesian product of the edges
// on both keys.
func cycles[P any, V any, E comparable](config *Config, d GraphData[P, V, E]) []Cycle[P, E] {
	t := d.graphTraits()
	if !t.directed {
		return undirectedCycles[P, V, E](d, false)
	}

	parts := scanKeys(config, edgeKeys[P, V, E](d), func(_ context.Context, keys []PointPair[P]) ([]Cycle[P, E], bool) {
		var result []Cycle[P, E]
		for _, key := range keys {
			if t.points.compare(key.First, key.Second) > 0 {
				continue
			}
			reverse := key.Reverse()
			backward := edgesOf[P, V, E](d, reverse)
			if len(backward) == 0 {
				continue
			}
			for _, e1 := range edgesOf[P, V, E](d, key) {
				for _, e2 := range backward {
					result = append(result, Cycle[P, E]{
						First:  Edge[P, E]{From: key.First, To: key.Second, Value: e1},
						Second: Edge[P, E]{From: reverse.First, To: reverse.Second, Value: e2},
					})
				}
			}
		}
		return result, true
	})

	var result []Cycle[P, E]
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}

// undirectedCycles reports self loops and, for parallel edges, every pair of distinct edges between
// the same two points. It stops at the first cycle if firstOnly is set.
func undirectedCycles[P any, V any, E comparable](d GraphData[P, V, E], firstOnly bool) []Cycle[P, E] {
	t := d.graphTraits()
	var result []Cycle[P, E]
	forEachEdgeGroup(d, func(key PointPair[P], edges []E) bool {
		if t.samePoint(key.First, key.Second) {
			for _, e1 := range edges {
				for _, e2 := range edges {
					result = append(result, Cycle[P, E]{
						First:  Edge[P, E]{From: key.First, To: key.Second, Value: e1},
						Second: Edge[P, E]{From: key.Second, To: key.First, Value: e2},
					})
				}
			}
		} else {
			for i := 0; i < len(edges); i++ {
				for j := i + 1; j < len(edges); j++ {
					result = append(result, Cycle[P, E]{
						First:  Edge[P, E]{From: key.First, To: key.Second, Value: edges[i]},
						Second: Edge[P, E]{From: key.Second, To: key.First, Value: edges[j]},
					})
				}
			}
		}
		return !firstOnly || len(result) == 0
	})
	return result
}
