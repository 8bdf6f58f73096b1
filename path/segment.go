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

package path

import (
	"cmp"
	"net/url"
	"strconv"
	"strings"
)

// ValidName returns true if name can address a NameSegment: it must contain at least one non-space
// character.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) > 0
}

func writeIndex(b *strings.Builder, index int) {
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(index))
	b.WriteByte(']')
}

//===----------------------------------------------------------------------------------------====//
// Segment
//===----------------------------------------------------------------------------------------====//

// Segment is a step of a TreePath. It is a closed set of NameSegment, IndexSegment and
// ListSegment.
type Segment interface {
	// String returns the serialized form of the segment.
	String() string

	// kind seals the interface and defines the ordering between segment types.
	kind() segmentKind
}

// segmentKind orders segments with the same name: a plain name sorts before a list access.
type segmentKind int

// Enumeration of segmentKind
const (
	nameSegmentKind segmentKind = iota
	listSegmentKind
	indexSegmentKind
)

// NameSegment selects the child with the given name.
type NameSegment struct {
	Name string
}

// IndexSegment selects the child at the given position.
type IndexSegment struct {
	Index int
}

// ListSegment selects the child with the given name followed by one or more list indices. Each
// index selects one dimension of a nested list.
type ListSegment struct {
	Name    string
	Indices []int
}

var (
	_ Segment = NameSegment{}
	_ Segment = IndexSegment{}
	_ Segment = ListSegment{}
)

func (NameSegment) kind() segmentKind  { return nameSegmentKind }
func (IndexSegment) kind() segmentKind { return indexSegmentKind }
func (ListSegment) kind() segmentKind  { return listSegmentKind }

// String implements Segment.
func (s NameSegment) String() string {
	return url.PathEscape(s.Name)
}

// String implements Segment.
func (s IndexSegment) String() string {
	var b strings.Builder
	writeIndex(&b, s.Index)
	return b.String()
}

// String implements Segment.
func (s ListSegment) String() string {
	var b strings.Builder
	b.WriteString(url.PathEscape(s.Name))
	for _, index := range s.Indices {
		writeIndex(&b, index)
	}
	return b.String()
}

// validSegment reports whether the segment can be appended to a path.
func validSegment(s Segment) bool {
	switch s := s.(type) {
	case NameSegment:
		return ValidName(s.Name)
	case IndexSegment:
		return s.Index >= 0
	case ListSegment:
		if !ValidName(s.Name) || len(s.Indices) == 0 {
			return false
		}
		for _, index := range s.Indices {
			if index < 0 {
				return false
			}
		}
		return true
	}
	return false
}

// copySegment returns s with its index slice detached from the caller's.
func copySegment(s Segment) Segment {
	if list, ok := s.(ListSegment); ok {
		list.Indices = append([]int(nil), list.Indices...)
		return list
	}
	return s
}

func segmentName(s Segment) (string, bool) {
	switch s := s.(type) {
	case NameSegment:
		return s.Name, true
	case ListSegment:
		return s.Name, true
	}
	return "", false
}

func segmentIndices(s Segment) []int {
	switch s := s.(type) {
	case IndexSegment:
		return []int{s.Index}
	case ListSegment:
		return s.Indices
	}
	return nil
}

// compareNames orders two optional names; a missing name sorts last.
func compareNames(a string, hasA bool, b string, hasB bool) int {
	switch {
	case hasA && hasB:
		return strings.Compare(a, b)
	case hasA:
		return -1
	case hasB:
		return 1
	}
	return 0
}

// CompareSegments defines the total order of Segment values: by name (segments without a name
// sort last), then by segment type (name before list before index), then by indices.
func CompareSegments(a, b Segment) int {
	nameA, hasA := segmentName(a)
	nameB, hasB := segmentName(b)
	if c := compareNames(nameA, hasA, nameB, hasB); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind(), b.kind()); c != 0 {
		return c
	}
	return compareIndices(segmentIndices(a), segmentIndices(b))
}

func compareIndices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareSegmentSlices orders two segment sequences lexicographically; a prefix sorts first.
func compareSegmentSlices[S any](a, b []S, compare func(S, S) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

//===----------------------------------------------------------------------------------------====//
// ElementSegment
//===----------------------------------------------------------------------------------------====//

// ElementSegment is a step of a ResultPath. It is a closed set of NamedSegment,
// UnnamedListSegment and NamedListSegment.
type ElementSegment interface {
	// String returns the serialized form of the segment.
	String() string

	kind() segmentKind
}

// NamedSegment selects a field in a result object.
type NamedSegment struct {
	Name string
}

// UnnamedListSegment selects an element of a list that is itself an element of a list.
type UnnamedListSegment struct {
	Index int
}

// NamedListSegment selects an element of the list stored in the named field.
type NamedListSegment struct {
	Name  string
	Index int
}

var (
	_ ElementSegment = NamedSegment{}
	_ ElementSegment = UnnamedListSegment{}
	_ ElementSegment = NamedListSegment{}
)

func (NamedSegment) kind() segmentKind       { return nameSegmentKind }
func (UnnamedListSegment) kind() segmentKind { return indexSegmentKind }
func (NamedListSegment) kind() segmentKind   { return listSegmentKind }

// String implements ElementSegment.
func (s NamedSegment) String() string {
	return url.PathEscape(s.Name)
}

// String implements ElementSegment.
func (s UnnamedListSegment) String() string {
	var b strings.Builder
	writeIndex(&b, s.Index)
	return b.String()
}

// String implements ElementSegment.
func (s NamedListSegment) String() string {
	var b strings.Builder
	b.WriteString(url.PathEscape(s.Name))
	writeIndex(&b, s.Index)
	return b.String()
}

func validElementSegment(s ElementSegment) bool {
	switch s := s.(type) {
	case NamedSegment:
		return ValidName(s.Name)
	case UnnamedListSegment:
		return s.Index >= 0
	case NamedListSegment:
		return ValidName(s.Name) && s.Index >= 0
	}
	return false
}

func elementSegmentName(s ElementSegment) (string, bool) {
	switch s := s.(type) {
	case NamedSegment:
		return s.Name, true
	case NamedListSegment:
		return s.Name, true
	}
	return "", false
}

func elementSegmentIndex(s ElementSegment) int {
	switch s := s.(type) {
	case UnnamedListSegment:
		return s.Index
	case NamedListSegment:
		return s.Index
	}
	return -1
}

// CompareElementSegments defines the total order of ElementSegment values: by name (segments
// without a name sort last), then by segment type (named before named list before unnamed list),
// then by index.
func CompareElementSegments(a, b ElementSegment) int {
	nameA, hasA := elementSegmentName(a)
	nameB, hasB := elementSegmentName(b)
	if c := compareNames(nameA, hasA, nameB, hasB); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind(), b.kind()); c != 0 {
		return c
	}
	return cmp.Compare(elementSegmentIndex(a), elementSegmentIndex(b))
}
