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
	"strings"

	"github.com/benbjohnson/immutable"
)

// Kind identifies the variant of a TreeData.
type Kind int

// Enumeration of Kind
const (
	LeafKind Kind = iota
	ArrayBranchKind
	ObjectBranchKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "Leaf"
	case ArrayBranchKind:
		return "ArrayBranch"
	case ObjectBranchKind:
		return "ObjectBranch"
	}
	return "UnknownKind"
}

// TreeData is the storage of a tree node. It is a closed set of *LeafData, *ArrayBranchData and
// *ObjectBranchData.
type TreeData[V any] interface {
	// Kind returns the variant of the node.
	Kind() Kind

	// Value returns the value carried by the node itself.
	Value() (V, bool)

	// Len returns the number of children.
	Len() int

	// treeData seals the interface.
	treeData()
}

var (
	_ TreeData[int] = (*LeafData[int])(nil)
	_ TreeData[int] = (*ArrayBranchData[int])(nil)
	_ TreeData[int] = (*ObjectBranchData[int])(nil)
)

// payload is the optional value shared by all node variants.
type payload[V any] struct {
	value    V
	hasValue bool
}

// Value implements TreeData.
func (p payload[V]) Value() (V, bool) {
	return p.value, p.hasValue
}

func someValue[V any](value V) payload[V] {
	return payload[V]{value: value, hasValue: true}
}

// LeafData is a node without children.
type LeafData[V any] struct {
	payload[V]
}

// Kind implements TreeData.
func (*LeafData[V]) Kind() Kind {
	return LeafKind
}

// Len implements TreeData.
func (*LeafData[V]) Len() int {
	return 0
}

func (*LeafData[V]) treeData() {}

// ArrayBranchData is a node whose children are addressed by position.
type ArrayBranchData[V any] struct {
	payload[V]
	children *immutable.List[TreeData[V]]
}

// Kind implements TreeData.
func (*ArrayBranchData[V]) Kind() Kind {
	return ArrayBranchKind
}

// Len implements TreeData.
func (d *ArrayBranchData[V]) Len() int {
	return d.children.Len()
}

// Child returns the child at the index.
func (d *ArrayBranchData[V]) Child(index int) (TreeData[V], bool) {
	if index < 0 || index >= d.children.Len() {
		return nil, false
	}
	return d.children.Get(index), true
}

// Children returns the persistent list of children.
func (d *ArrayBranchData[V]) Children() *immutable.List[TreeData[V]] {
	return d.children
}

func (*ArrayBranchData[V]) treeData() {}

// ObjectBranchData is a node whose children are addressed by name. Children are kept ordered by
// name.
type ObjectBranchData[V any] struct {
	payload[V]
	children *immutable.SortedMap[string, TreeData[V]]
}

// Kind implements TreeData.
func (*ObjectBranchData[V]) Kind() Kind {
	return ObjectBranchKind
}

// Len implements TreeData.
func (d *ObjectBranchData[V]) Len() int {
	return d.children.Len()
}

// Child returns the child with the name.
func (d *ObjectBranchData[V]) Child(name string) (TreeData[V], bool) {
	return d.children.Get(name)
}

// Children returns the persistent map of children.
func (d *ObjectBranchData[V]) Children() *immutable.SortedMap[string, TreeData[V]] {
	return d.children
}

// Names returns the names of the children in order.
func (d *ObjectBranchData[V]) Names() []string {
	names := make([]string, 0, d.children.Len())
	itr := d.children.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	return names
}

func (*ObjectBranchData[V]) treeData() {}

// nameOrder implements immutable.Comparer for child names.
type nameOrder struct{}

// Compare implements immutable.Comparer.
func (nameOrder) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func newLeaf[V any](p payload[V]) *LeafData[V] {
	return &LeafData[V]{payload: p}
}

func newArrayBranch[V any](p payload[V], children *immutable.List[TreeData[V]]) *ArrayBranchData[V] {
	if children == nil {
		children = immutable.NewList[TreeData[V]]()
	}
	return &ArrayBranchData[V]{payload: p, children: children}
}

func newObjectBranch[V any](
	p payload[V],
	children *immutable.SortedMap[string, TreeData[V]]) *ObjectBranchData[V] {

	if children == nil {
		children = immutable.NewSortedMap[string, TreeData[V]](nameOrder{})
	}
	return &ObjectBranchData[V]{payload: p, children: children}
}
