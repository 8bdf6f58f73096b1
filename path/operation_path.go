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
	"net/url"
	"strings"
	"sync"
)

// OperationPathScheme is the scheme of an OperationPath created by NewOperationPath.
const OperationPathScheme = "gqlo"

// subPath is a named path that descends into an argument value or a directive.
type subPath struct {
	name     string
	segments []Segment
}

func (s *subPath) with(segments []Segment) *subPath {
	return &subPath{
		name:     s.name,
		segments: segments,
	}
}

func compareSubPaths(a, b *subPath) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	return compareSegmentSlices(a.segments, b.segments, CompareSegments)
}

// OperationPath addresses a selection within a GraphQL operation. Past the selection it can descend
// into the value of an argument of the selected field and then into a directive:
//
//	gqlo:/pets/dogs?filter=/breed#include=/if
//
// Once an argument or a directive is attached, the selection is fixed; once a directive is
// attached, the argument is fixed. Appends that violate this order are no-ops.
type OperationPath struct {
	scheme    string
	selection []Segment
	argument  *subPath
	directive *subPath
	memo      *operationPathMemo
}

type operationPathMemo struct {
	parentOnce sync.Once
	parent     OperationPath
	hasParent  bool

	stringOnce sync.Once
	str        string
}

func (p OperationPath) with(selection []Segment, argument, directive *subPath) OperationPath {
	return OperationPath{
		scheme:    p.scheme,
		selection: selection,
		argument:  argument,
		directive: directive,
		memo:      &operationPathMemo{},
	}
}

// NewOperationPath returns the root OperationPath with OperationPathScheme.
func NewOperationPath() OperationPath {
	return NewOperationPathWithScheme(OperationPathScheme)
}

// NewOperationPathWithScheme returns the root OperationPath with the given scheme. An empty scheme
// selects OperationPathScheme.
func NewOperationPathWithScheme(scheme string) OperationPath {
	if len(scheme) == 0 {
		scheme = OperationPathScheme
	}
	return OperationPath{
		scheme: scheme,
		memo:   &operationPathMemo{},
	}
}

// Scheme returns the scheme tag.
func (p OperationPath) Scheme() string {
	return p.scheme
}

// Selection returns a copy of the selection segments.
func (p OperationPath) Selection() []Segment {
	return append([]Segment(nil), p.selection...)
}

// Argument returns the argument name and the path into its value.
func (p OperationPath) Argument() (name string, segments []Segment, ok bool) {
	if p.argument == nil {
		return "", nil, false
	}
	return p.argument.name, append([]Segment(nil), p.argument.segments...), true
}

// Directive returns the directive name and the path into its arguments.
func (p OperationPath) Directive() (name string, segments []Segment, ok bool) {
	if p.directive == nil {
		return "", nil, false
	}
	return p.directive.name, append([]Segment(nil), p.directive.segments...), true
}

// IsRoot returns true if the path selects nothing.
func (p OperationPath) IsRoot() bool {
	return len(p.selection) == 0 && p.argument == nil && p.directive == nil
}

func appendValid(segments []Segment, s Segment) ([]Segment, bool) {
	if !validSegment(s) {
		return segments, false
	}
	result := make([]Segment, len(segments), len(segments)+1)
	copy(result, segments)
	return append(result, copySegment(s)), true
}

// AppendSelectionSegment returns a path with the segment added to the selection. It returns p
// unchanged if the segment is invalid or an argument or a directive is attached.
func (p OperationPath) AppendSelectionSegment(s Segment) OperationPath {
	if p.argument != nil || p.directive != nil {
		return p
	}
	selection, ok := appendValid(p.selection, s)
	if !ok {
		return p
	}
	return p.with(selection, nil, nil)
}

// AppendSelection returns a path with the named field added to the selection.
func (p OperationPath) AppendSelection(name string) OperationPath {
	return p.AppendSelectionSegment(NameSegment{Name: name})
}

// AppendSelectionList returns a path with a list access added to the selection.
func (p OperationPath) AppendSelectionList(name string, indices ...int) OperationPath {
	return p.AppendSelectionSegment(ListSegment{Name: name, Indices: indices})
}

// WithArgument returns a path descending into the named argument of the selected field. It returns
// p unchanged if the name is blank, an argument is already attached or a directive is attached.
func (p OperationPath) WithArgument(name string) OperationPath {
	if !ValidName(name) || p.argument != nil || p.directive != nil {
		return p
	}
	return p.with(p.selection, &subPath{name: name}, nil)
}

// AppendArgumentSegment returns a path with the segment added to the argument path. It returns p
// unchanged if no argument is attached, a directive is attached or the segment is invalid.
func (p OperationPath) AppendArgumentSegment(s Segment) OperationPath {
	if p.argument == nil || p.directive != nil {
		return p
	}
	segments, ok := appendValid(p.argument.segments, s)
	if !ok {
		return p
	}
	return p.with(p.selection, p.argument.with(segments), nil)
}

// WithDirective returns a path descending into the named directive. It returns p unchanged if the
// name is blank or a directive is already attached.
func (p OperationPath) WithDirective(name string) OperationPath {
	if !ValidName(name) || p.directive != nil {
		return p
	}
	return p.with(p.selection, p.argument, &subPath{name: name})
}

// AppendDirectiveSegment returns a path with the segment added to the directive path. It returns p
// unchanged if no directive is attached or the segment is invalid.
func (p OperationPath) AppendDirectiveSegment(s Segment) OperationPath {
	if p.directive == nil {
		return p
	}
	segments, ok := appendValid(p.directive.segments, s)
	if !ok {
		return p
	}
	return p.with(p.selection, p.argument, p.directive.with(segments))
}

// Parent returns the path with its deepest step removed: the last directive segment, the
// directive itself, the last argument segment, the argument itself and finally the last selection
// segment. It returns false for the root path.
func (p OperationPath) Parent() (OperationPath, bool) {
	if p.memo == nil {
		return p.computeParent()
	}
	memo := p.memo
	memo.parentOnce.Do(func() {
		memo.parent, memo.hasParent = p.computeParent()
	})
	return memo.parent, memo.hasParent
}

func dropLast(segments []Segment) []Segment {
	return segments[: len(segments)-1 : len(segments)-1]
}

func (p OperationPath) computeParent() (OperationPath, bool) {
	switch {
	case p.directive != nil:
		if len(p.directive.segments) > 0 {
			return p.with(p.selection, p.argument, p.directive.with(dropLast(p.directive.segments))), true
		}
		return p.with(p.selection, p.argument, nil), true

	case p.argument != nil:
		if len(p.argument.segments) > 0 {
			return p.with(p.selection, p.argument.with(dropLast(p.argument.segments)), nil), true
		}
		return p.with(p.selection, nil, nil), true

	case len(p.selection) > 0:
		return p.with(dropLast(p.selection), nil, nil), true
	}
	return OperationPath{}, false
}

// Compare returns an integer comparing two paths: by scheme, then selection, then argument, then
// directive. A missing argument or directive sorts first.
func (p OperationPath) Compare(other OperationPath) int {
	if c := strings.Compare(p.scheme, other.scheme); c != 0 {
		return c
	}
	if c := compareSegmentSlices(p.selection, other.selection, CompareSegments); c != 0 {
		return c
	}
	if c := compareSubPaths(p.argument, other.argument); c != 0 {
		return c
	}
	return compareSubPaths(p.directive, other.directive)
}

// Equal returns true if both paths are identical.
func (p OperationPath) Equal(other OperationPath) bool {
	return p.Compare(other) == 0
}

// String serializes the path.
func (p OperationPath) String() string {
	if p.memo == nil {
		return p.format()
	}
	memo := p.memo
	memo.stringOnce.Do(func() {
		memo.str = p.format()
	})
	return memo.str
}

func (p OperationPath) format() string {
	var b strings.Builder
	b.WriteString(p.scheme)
	b.WriteByte(':')
	writeSegments(&b, p.selection)
	if p.argument != nil {
		b.WriteByte('?')
		b.WriteString(url.PathEscape(p.argument.name))
		b.WriteByte('=')
		writeSegments(&b, p.argument.segments)
	}
	if p.directive != nil {
		b.WriteByte('#')
		b.WriteString(url.PathEscape(p.directive.name))
		b.WriteByte('=')
		writeSegments(&b, p.directive.segments)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p OperationPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *OperationPath) UnmarshalText(text []byte) error {
	parsed, err := ParseOperationPath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
