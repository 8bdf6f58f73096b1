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
	"strings"
	"sync"
)

// ResultPathScheme is the scheme of a ResultPath created by NewResultPath.
const ResultPathScheme = "gqlr"

// ResultPath is an immutable sequence of ElementSegment values plus a scheme tag. It addresses a
// value within a GraphQL result.
type ResultPath struct {
	scheme   string
	segments []ElementSegment
	memo     *resultPathMemo
}

type resultPathMemo struct {
	parentOnce sync.Once
	parent     ResultPath
	hasParent  bool

	stringOnce sync.Once
	str        string
}

func newResultPath(scheme string, segments []ElementSegment) ResultPath {
	return ResultPath{
		scheme:   scheme,
		segments: segments,
		memo:     &resultPathMemo{},
	}
}

// NewResultPath returns the root ResultPath with ResultPathScheme.
func NewResultPath() ResultPath {
	return newResultPath(ResultPathScheme, nil)
}

// NewResultPathWithScheme returns the root ResultPath with the given scheme. An empty scheme
// selects ResultPathScheme.
func NewResultPathWithScheme(scheme string) ResultPath {
	if len(scheme) == 0 {
		scheme = ResultPathScheme
	}
	return newResultPath(scheme, nil)
}

// Scheme returns the scheme tag.
func (p ResultPath) Scheme() string {
	return p.scheme
}

// Segments returns a copy of the segments in the path.
func (p ResultPath) Segments() []ElementSegment {
	return append([]ElementSegment(nil), p.segments...)
}

// Len returns the number of segments in the path.
func (p ResultPath) Len() int {
	return len(p.segments)
}

// IsRoot returns true if the path has no segment.
func (p ResultPath) IsRoot() bool {
	return len(p.segments) == 0
}

// LastSegment returns the last segment or false for the root path.
func (p ResultPath) LastSegment() (ElementSegment, bool) {
	if len(p.segments) == 0 {
		return nil, false
	}
	return p.segments[len(p.segments)-1], true
}

func (p ResultPath) appendSegment(s ElementSegment) ResultPath {
	if !validElementSegment(s) {
		return p
	}
	segments := make([]ElementSegment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return newResultPath(p.scheme, append(segments, s))
}

// AppendNamedSegment returns a path with a NamedSegment added to the end. It returns p unchanged
// if the name is blank.
func (p ResultPath) AppendNamedSegment(name string) ResultPath {
	return p.appendSegment(NamedSegment{Name: name})
}

// AppendUnnamedListSegment returns a path with an UnnamedListSegment added to the end. It returns
// p unchanged if the index is negative.
func (p ResultPath) AppendUnnamedListSegment(index int) ResultPath {
	return p.appendSegment(UnnamedListSegment{Index: index})
}

// AppendNamedListSegment returns a path with a NamedListSegment added to the end. It returns p
// unchanged if the name is blank or the index is negative.
func (p ResultPath) AppendNamedListSegment(name string, index int) ResultPath {
	return p.appendSegment(NamedListSegment{Name: name, Index: index})
}

// AppendSegment returns a path with the segment added to the end. It returns p unchanged if the
// segment is invalid.
func (p ResultPath) AppendSegment(s ElementSegment) ResultPath {
	return p.appendSegment(s)
}

// Parent returns the path with the last segment dropped. It returns false for the root path. The
// result is computed once per path.
func (p ResultPath) Parent() (ResultPath, bool) {
	if p.memo == nil {
		return p.computeParent()
	}
	memo := p.memo
	memo.parentOnce.Do(func() {
		memo.parent, memo.hasParent = p.computeParent()
	})
	return memo.parent, memo.hasParent
}

func (p ResultPath) computeParent() (ResultPath, bool) {
	if len(p.segments) == 0 {
		return ResultPath{}, false
	}
	return newResultPath(p.scheme, p.segments[:len(p.segments)-1:len(p.segments)-1]), true
}

// Compare returns an integer comparing two paths. Scheme differences take priority over segment
// differences.
func (p ResultPath) Compare(other ResultPath) int {
	if c := strings.Compare(p.scheme, other.scheme); c != 0 {
		return c
	}
	return compareSegmentSlices(p.segments, other.segments, CompareElementSegments)
}

// Equal returns true if both paths have the same scheme and segments.
func (p ResultPath) Equal(other ResultPath) bool {
	return p.Compare(other) == 0
}

// String serializes the path.
func (p ResultPath) String() string {
	if p.memo == nil {
		return formatPath(p.scheme, p.segments)
	}
	memo := p.memo
	memo.stringOnce.Do(func() {
		memo.str = formatPath(p.scheme, p.segments)
	})
	return memo.str
}

// MarshalText implements encoding.TextMarshaler.
func (p ResultPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ResultPath) UnmarshalText(text []byte) error {
	parsed, err := ParseResultPath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
