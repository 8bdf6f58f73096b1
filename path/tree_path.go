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

// TreePathScheme is the scheme of a TreePath created by NewTreePath.
const TreePathScheme = "tp"

// TreePath is an immutable sequence of Segment values plus a scheme tag. The zero value is not
// usable; create one with NewTreePath, NewTreePathWithScheme or ParseTreePath.
type TreePath struct {
	scheme   string
	segments []Segment
	memo     *treePathMemo
}

// treePathMemo holds values derived from the path which are computed once on demand.
type treePathMemo struct {
	parentOnce sync.Once
	parent     TreePath
	hasParent  bool

	stringOnce sync.Once
	str        string
}

func newTreePath(scheme string, segments []Segment) TreePath {
	return TreePath{
		scheme:   scheme,
		segments: segments,
		memo:     &treePathMemo{},
	}
}

// NewTreePath returns the root TreePath with TreePathScheme.
func NewTreePath() TreePath {
	return newTreePath(TreePathScheme, nil)
}

// NewTreePathWithScheme returns the root TreePath with the given scheme. An empty scheme selects
// TreePathScheme.
func NewTreePathWithScheme(scheme string) TreePath {
	if len(scheme) == 0 {
		scheme = TreePathScheme
	}
	return newTreePath(scheme, nil)
}

// Scheme returns the scheme tag.
func (p TreePath) Scheme() string {
	return p.scheme
}

// Segments returns a copy of the segments in the path.
func (p TreePath) Segments() []Segment {
	segments := make([]Segment, len(p.segments))
	for i, s := range p.segments {
		segments[i] = copySegment(s)
	}
	return segments
}

// Len returns the number of segments in the path.
func (p TreePath) Len() int {
	return len(p.segments)
}

// Segment returns the i-th segment.
func (p TreePath) Segment(i int) Segment {
	return copySegment(p.segments[i])
}

// IsRoot returns true if the path has no segment.
func (p TreePath) IsRoot() bool {
	return len(p.segments) == 0
}

// LastSegment returns the last segment or false for the root path.
func (p TreePath) LastSegment() (Segment, bool) {
	if len(p.segments) == 0 {
		return nil, false
	}
	return copySegment(p.segments[len(p.segments)-1]), true
}

func (p TreePath) withSegments(segments []Segment) TreePath {
	return newTreePath(p.scheme, segments)
}

// appendSegment returns a path with s added to the end or p itself if s is invalid.
func (p TreePath) appendSegment(s Segment) TreePath {
	if !validSegment(s) {
		return p
	}
	segments := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return p.withSegments(append(segments, copySegment(s)))
}

// prependSegment returns a path with s added to the front or p itself if s is invalid.
func (p TreePath) prependSegment(s Segment) TreePath {
	if !validSegment(s) {
		return p
	}
	segments := make([]Segment, 0, len(p.segments)+1)
	segments = append(segments, copySegment(s))
	return p.withSegments(append(segments, p.segments...))
}

// AppendNameSegment returns a path with a NameSegment added to the end. It returns p unchanged if
// the name is blank.
func (p TreePath) AppendNameSegment(name string) TreePath {
	return p.appendSegment(NameSegment{Name: name})
}

// AppendIndexSegment returns a path with an IndexSegment added to the end. It returns p unchanged
// if the index is negative.
func (p TreePath) AppendIndexSegment(index int) TreePath {
	return p.appendSegment(IndexSegment{Index: index})
}

// AppendListSegment returns a path with a ListSegment added to the end. It returns p unchanged if
// the name is blank, no index is given or any index is negative.
func (p TreePath) AppendListSegment(name string, indices ...int) TreePath {
	return p.appendSegment(ListSegment{Name: name, Indices: indices})
}

// AppendSegment returns a path with the segment added to the end. It returns p unchanged if the
// segment is invalid.
func (p TreePath) AppendSegment(s Segment) TreePath {
	return p.appendSegment(s)
}

// PrependNameSegment returns a path with a NameSegment added to the front. It returns p unchanged
// if the name is blank.
func (p TreePath) PrependNameSegment(name string) TreePath {
	return p.prependSegment(NameSegment{Name: name})
}

// PrependIndexSegment returns a path with an IndexSegment added to the front. It returns p
// unchanged if the index is negative.
func (p TreePath) PrependIndexSegment(index int) TreePath {
	return p.prependSegment(IndexSegment{Index: index})
}

// PrependListSegment returns a path with a ListSegment added to the front. It returns p unchanged
// if the segment is invalid.
func (p TreePath) PrependListSegment(name string, indices ...int) TreePath {
	return p.prependSegment(ListSegment{Name: name, Indices: indices})
}

// Parent returns the path with the last segment dropped. It returns false for the root path. The
// result is computed once per path.
func (p TreePath) Parent() (TreePath, bool) {
	if p.memo == nil {
		return p.computeParent()
	}
	memo := p.memo
	memo.parentOnce.Do(func() {
		memo.parent, memo.hasParent = p.computeParent()
	})
	return memo.parent, memo.hasParent
}

func (p TreePath) computeParent() (TreePath, bool) {
	if len(p.segments) == 0 {
		return TreePath{}, false
	}
	return p.withSegments(p.segments[:len(p.segments)-1:len(p.segments)-1]), true
}

// IsAncestorOf returns true if other starts with all segments of p and is longer than p.
func (p TreePath) IsAncestorOf(other TreePath) bool {
	if p.scheme != other.scheme || len(p.segments) >= len(other.segments) {
		return false
	}
	return compareSegmentSlices(p.segments, other.segments[:len(p.segments)], CompareSegments) == 0
}

// Compare returns an integer comparing two paths. Scheme differences take priority over segment
// differences.
func (p TreePath) Compare(other TreePath) int {
	if c := strings.Compare(p.scheme, other.scheme); c != 0 {
		return c
	}
	return compareSegmentSlices(p.segments, other.segments, CompareSegments)
}

// Equal returns true if both paths have the same scheme and segments.
func (p TreePath) Equal(other TreePath) bool {
	return p.Compare(other) == 0
}

// String serializes the path.
func (p TreePath) String() string {
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
func (p TreePath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TreePath) UnmarshalText(text []byte) error {
	parsed, err := ParseTreePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// formatPath writes "scheme:/seg1/seg2".
func formatPath[S interface{ String() string }](scheme string, segments []S) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteByte(':')
	writeSegments(&b, segments)
	return b.String()
}

func writeSegments[S interface{ String() string }](b *strings.Builder, segments []S) {
	if len(segments) == 0 {
		b.WriteByte('/')
		return
	}
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
}
