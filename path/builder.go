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
	"github.com/botobag/funcify/errors"
)

// BuilderConfig contains options to configure a path builder.
type BuilderConfig struct {
	// Strict makes the builder record an error for an invalid segment instead of ignoring it.
	Strict bool
}

// TreePathBuilder builds a TreePath segment by segment. In lenient mode (the default) invalid
// segments are ignored, matching the TreePath.Append methods. In strict mode the first invalid
// segment is recorded and returned from Build; later appends are ignored.
type TreePathBuilder struct {
	strict bool
	path   TreePath
	err    error
}

// NewTreePathBuilder creates a builder starting from the root TreePath. A nil config selects
// lenient mode.
func NewTreePathBuilder(config *BuilderConfig) *TreePathBuilder {
	return NewTreePathBuilderFrom(NewTreePath(), config)
}

// NewTreePathBuilderFrom creates a builder starting from the given path.
func NewTreePathBuilderFrom(p TreePath, config *BuilderConfig) *TreePathBuilder {
	return &TreePathBuilder{
		strict: config != nil && config.Strict,
		path:   p,
	}
}

func (builder *TreePathBuilder) append(s Segment) *TreePathBuilder {
	if builder.err != nil {
		return builder
	}
	if !validSegment(s) {
		if builder.strict {
			builder.err = errors.Newf("path.TreePathBuilder", errors.KindInvalidArgument,
				"invalid segment %#v", s)
		}
		return builder
	}
	builder.path = builder.path.appendSegment(s)
	return builder
}

// Name appends a NameSegment.
func (builder *TreePathBuilder) Name(name string) *TreePathBuilder {
	return builder.append(NameSegment{Name: name})
}

// Index appends an IndexSegment.
func (builder *TreePathBuilder) Index(index int) *TreePathBuilder {
	return builder.append(IndexSegment{Index: index})
}

// List appends a ListSegment.
func (builder *TreePathBuilder) List(name string, indices ...int) *TreePathBuilder {
	return builder.append(ListSegment{Name: name, Indices: indices})
}

// Build returns the path built so far. In strict mode it returns the first invalid-segment error.
func (builder *TreePathBuilder) Build() (TreePath, error) {
	if builder.err != nil {
		return TreePath{}, builder.err
	}
	return builder.path, nil
}

// ResultPathBuilder builds a ResultPath segment by segment. See TreePathBuilder for the lenient and
// strict modes.
type ResultPathBuilder struct {
	strict bool
	path   ResultPath
	err    error
}

// NewResultPathBuilder creates a builder starting from the root ResultPath. A nil config selects
// lenient mode.
func NewResultPathBuilder(config *BuilderConfig) *ResultPathBuilder {
	return &ResultPathBuilder{
		strict: config != nil && config.Strict,
		path:   NewResultPath(),
	}
}

func (builder *ResultPathBuilder) append(s ElementSegment) *ResultPathBuilder {
	if builder.err != nil {
		return builder
	}
	if !validElementSegment(s) {
		if builder.strict {
			builder.err = errors.Newf("path.ResultPathBuilder", errors.KindInvalidArgument,
				"invalid segment %#v", s)
		}
		return builder
	}
	builder.path = builder.path.appendSegment(s)
	return builder
}

// Named appends a NamedSegment.
func (builder *ResultPathBuilder) Named(name string) *ResultPathBuilder {
	return builder.append(NamedSegment{Name: name})
}

// UnnamedList appends an UnnamedListSegment.
func (builder *ResultPathBuilder) UnnamedList(index int) *ResultPathBuilder {
	return builder.append(UnnamedListSegment{Index: index})
}

// NamedList appends a NamedListSegment.
func (builder *ResultPathBuilder) NamedList(name string, index int) *ResultPathBuilder {
	return builder.append(NamedListSegment{Name: name, Index: index})
}

// Build returns the path built so far. In strict mode it returns the first invalid-segment error.
func (builder *ResultPathBuilder) Build() (ResultPath, error) {
	if builder.err != nil {
		return ResultPath{}, builder.err
	}
	return builder.path, nil
}
