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

package tree

import (
	"sort"

	"github.com/benbjohnson/immutable"

	"github.com/botobag/funcify/errors"
	"github.com/botobag/funcify/iterator"
	"github.com/botobag/funcify/path"
)

// MaxArrayGap is the number of positions without entry FromSequence fills with empty leaves in a
// single array branch.
const MaxArrayGap = 1024

// sequenceNode is a node under construction in FromSequence.
type sequenceNode[V any] struct {
	path     path.TreePath
	payload  payload[V]
	children []*sequenceNode[V]
	data     TreeData[V]
}

// sequenceBuilder assembles a tree bottom-up from entries addressed by path.
type sequenceBuilder[V any] struct {
	nodes  map[string]*sequenceNode[V]
	levels [][]*sequenceNode[V]
}

// normalizePath rewrites p into a path of NameSegment and IndexSegment only, with the default
// scheme.
func normalizePath(p path.TreePath) path.TreePath {
	normalized := path.NewTreePath()
	for _, s := range p.Segments() {
		switch s := s.(type) {
		case path.NameSegment:
			normalized = normalized.AppendNameSegment(s.Name)
		case path.IndexSegment:
			normalized = normalized.AppendIndexSegment(s.Index)
		case path.ListSegment:
			normalized = normalized.AppendNameSegment(s.Name)
			for _, index := range s.Indices {
				normalized = normalized.AppendIndexSegment(index)
			}
		}
	}
	return normalized
}

// nodeAt returns the node at the normalized path, creating it if absent.
func (builder *sequenceBuilder[V]) nodeAt(p path.TreePath) *sequenceNode[V] {
	key := p.String()
	if node, exists := builder.nodes[key]; exists {
		return node
	}
	node := &sequenceNode[V]{path: p}
	builder.nodes[key] = node

	depth := p.Len()
	for len(builder.levels) <= depth {
		builder.levels = append(builder.levels, nil)
	}
	builder.levels[depth] = append(builder.levels[depth], node)
	return node
}

// build creates the data of the node from the data of its children which must have been built.
func (node *sequenceNode[V]) build() (TreeData[V], error) {
	if len(node.children) == 0 {
		return newLeaf(node.payload), nil
	}

	var names, indices int
	for _, child := range node.children {
		last, _ := child.path.LastSegment()
		if _, ok := last.(path.IndexSegment); ok {
			indices++
		} else {
			names++
		}
	}
	if names > 0 && indices > 0 {
		return nil, errors.Newf("tree.FromSequence", errors.KindInvalidArgument,
			"mixed named and indexed children under %q", node.path.String())
	}

	if names > 0 {
		builder := immutable.NewSortedMapBuilder[string, TreeData[V]](nameOrder{})
		for _, child := range node.children {
			last, _ := child.path.LastSegment()
			builder.Set(last.(path.NameSegment).Name, child.data)
		}
		return newObjectBranch(node.payload, builder.Map()), nil
	}

	// Positions without an entry are filled with empty leaves.
	maxIndex := 0
	for _, child := range node.children {
		last, _ := child.path.LastSegment()
		if index := last.(path.IndexSegment).Index; index > maxIndex {
			maxIndex = index
		}
	}
	if maxIndex-len(node.children) >= MaxArrayGap {
		return nil, errors.Newf("tree.FromSequence", errors.KindInvalidArgument,
			"index %d under %q leaves more than %d positions without entry", maxIndex, node.path.String(), MaxArrayGap)
	}
	children := make([]TreeData[V], maxIndex+1)
	for _, child := range node.children {
		last, _ := child.path.LastSegment()
		children[last.(path.IndexSegment).Index] = child.data
	}
	for i := range children {
		if children[i] == nil {
			children[i] = newLeaf(payload[V]{})
		}
	}
	return newArrayBranch(node.payload, immutable.NewList(children...)), nil
}

// FromSequence builds a tree from entries. The paths of the entries may be sparse: nodes on the
// way to an entry that have no entry of their own are created without value, and positions of an
// array branch without an entry hold empty leaves. When several entries share a path, the last
// one wins. The scheme of the paths is ignored.
//
// A node whose children are addressed both by name and by index is an error with
// errors.KindInvalidArgument, and so is an array branch that would need more than MaxArrayGap
// empty leaves.
func FromSequence[V any](entries iterator.Iterator[Entry[V]]) (Tree[V], error) {
	builder := &sequenceBuilder[V]{
		nodes: map[string]*sequenceNode[V]{},
	}
	root := builder.nodeAt(path.NewTreePath())

	if err := iterator.ForEach(entries, func(entry Entry[V]) bool {
		builder.nodeAt(normalizePath(entry.Path)).payload = someValue(entry.Value)
		return true
	}); err != nil {
		return Tree[V]{}, errors.Wrap(err, "failed to read entries")
	}

	// Build the deepest nodes first and attach each one to its parent which is one level up.
	for depth := len(builder.levels) - 1; depth > 0; depth-- {
		level := builder.levels[depth]
		sort.Slice(level, func(i, j int) bool {
			return level[i].path.Compare(level[j].path) < 0
		})
		for _, node := range level {
			data, err := node.build()
			if err != nil {
				return Tree[V]{}, err
			}
			node.data = data

			parentPath, _ := node.path.Parent()
			parent := builder.nodeAt(parentPath)
			parent.children = append(parent.children, node)
		}
	}

	data, err := root.build()
	if err != nil {
		return Tree[V]{}, err
	}
	return Tree[V]{data: data}, nil
}

// FromEntries is a convenience function equivalent to FromSequence over a slice.
func FromEntries[V any](entries ...Entry[V]) (Tree[V], error) {
	return FromSequence[V](iterator.FromSlice(entries))
}
