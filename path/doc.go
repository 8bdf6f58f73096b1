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

// Package path implements the immutable, ordered path types used as keys into funcify graphs and
// trees:
//
//   - TreePath addresses a location in a tree with NameSegment, IndexSegment and ListSegment.
//   - ResultPath addresses a value in a GraphQL result with NamedSegment, UnnamedListSegment and
//     NamedListSegment.
//   - OperationPath addresses a selection in a GraphQL operation, optionally descending into an
//     argument value and a directive.
//
// All paths print to and parse from a scheme-prefixed, URI-like form:
//
//	tp:/pets/dogs[0]/name
//	gqlr:/pets/dogs[0][1]
//	gqlo:/pets/dogs?filter=/breed#include=/if
//
// Segment names are percent-encoded; list indices are written in brackets. Appending an invalid
// segment (a blank name or a negative index) to a path is a no-op that returns the path unchanged.
// Use a Builder with BuilderConfig.Strict to turn such appends into errors instead.
package path
