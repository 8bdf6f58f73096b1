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

// Package iterator documents the guidelines for using iterator pattern in funcify and provides the
// small generic foundation shared by the containers. The pattern draws significant inspiration
// from the Iterator Guidelines established for Google Cloud Client Libraries for Go [0].
//
// An "iterable" container provides a method that returns an iterator over its elements, named
// after the elements in plural. For example,
//
//	// Vertices returns an iterator over the vertices in the graph, ordered by point.
//	func (g PersistentGraph[P, V, E]) Vertices() iterator.Iterator[Vertex[P, V]] {
//		...
//	}
//
// The result iterator has just one method Next for iterating over individual elements. Next
// returns the error Done to indicate that there's no more element. Take the graph above,
//
//	iter := g.Vertices()
//	for {
//		vertex, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(vertex)
//	}
//
// Containers in funcify are immutable, so an iterator over one never observes a concurrent
// modification and never fails with anything other than Done.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
