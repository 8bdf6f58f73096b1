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
	"github.com/benbjohnson/immutable"

	"github.com/botobag/funcify/errors"
)

// behavior implements the updates of one node variant. Updates that don't apply to the variant
// return the node unchanged. Behaviors are stateless.
type behavior[V any] interface {
	// withValue replaces the value carried by the node.
	withValue(d TreeData[V], p payload[V]) TreeData[V]

	// put sets the named child. A leaf becomes an object branch.
	put(d TreeData[V], name string, child TreeData[V]) TreeData[V]

	// remove removes the named child.
	remove(d TreeData[V], name string) TreeData[V]

	// insert adds a child at the front or at the end. A leaf becomes an array branch.
	insert(d TreeData[V], child TreeData[V], front bool) TreeData[V]

	// removeAt removes the child at the index and shifts the following children.
	removeAt(d TreeData[V], index int) TreeData[V]
}

// behaviorOf returns the behavior for the variant of d.
func behaviorOf[V any](d TreeData[V]) behavior[V] {
	switch d.(type) {
	case *LeafData[V]:
		return leafBehavior[V]{}
	case *ArrayBranchData[V]:
		return arrayBranchBehavior[V]{}
	case *ObjectBranchData[V]:
		return objectBranchBehavior[V]{}
	}
	errors.Invariant("tree.behaviorOf", "unhandled tree data type %T", d)
	return nil
}

//===----------------------------------------------------------------------------------------====//
// leafBehavior
//===----------------------------------------------------------------------------------------====//

type leafBehavior[V any] struct{}

var _ behavior[int] = leafBehavior[int]{}

func (leafBehavior[V]) withValue(_ TreeData[V], p payload[V]) TreeData[V] {
	return newLeaf(p)
}

func (leafBehavior[V]) put(d TreeData[V], name string, child TreeData[V]) TreeData[V] {
	leaf := d.(*LeafData[V])
	return newObjectBranch(leaf.payload, immutable.NewSortedMap[string, TreeData[V]](nameOrder{}).Set(name, child))
}

func (leafBehavior[V]) remove(d TreeData[V], _ string) TreeData[V] {
	return d
}

func (leafBehavior[V]) insert(d TreeData[V], child TreeData[V], _ bool) TreeData[V] {
	leaf := d.(*LeafData[V])
	return newArrayBranch(leaf.payload, immutable.NewList(child))
}

func (leafBehavior[V]) removeAt(d TreeData[V], _ int) TreeData[V] {
	return d
}

//===----------------------------------------------------------------------------------------====//
// arrayBranchBehavior
//===----------------------------------------------------------------------------------------====//

type arrayBranchBehavior[V any] struct{}

var _ behavior[int] = arrayBranchBehavior[int]{}

func (arrayBranchBehavior[V]) withValue(d TreeData[V], p payload[V]) TreeData[V] {
	return newArrayBranch(p, d.(*ArrayBranchData[V]).children)
}

func (arrayBranchBehavior[V]) put(d TreeData[V], _ string, _ TreeData[V]) TreeData[V] {
	return d
}

func (arrayBranchBehavior[V]) remove(d TreeData[V], _ string) TreeData[V] {
	return d
}

func (arrayBranchBehavior[V]) insert(d TreeData[V], child TreeData[V], front bool) TreeData[V] {
	branch := d.(*ArrayBranchData[V])
	if front {
		return newArrayBranch(branch.payload, branch.children.Prepend(child))
	}
	return newArrayBranch(branch.payload, branch.children.Append(child))
}

func (arrayBranchBehavior[V]) removeAt(d TreeData[V], index int) TreeData[V] {
	branch := d.(*ArrayBranchData[V])
	n := branch.children.Len()
	if index < 0 || index >= n {
		return d
	}
	children := branch.children.Slice(0, index)
	for i := index + 1; i < n; i++ {
		children = children.Append(branch.children.Get(i))
	}
	return newArrayBranch(branch.payload, children)
}

//===----------------------------------------------------------------------------------------====//
// objectBranchBehavior
//===----------------------------------------------------------------------------------------====//

type objectBranchBehavior[V any] struct{}

var _ behavior[int] = objectBranchBehavior[int]{}

func (objectBranchBehavior[V]) withValue(d TreeData[V], p payload[V]) TreeData[V] {
	return newObjectBranch(p, d.(*ObjectBranchData[V]).children)
}

// put replaces any existing child including its descendants.
func (objectBranchBehavior[V]) put(d TreeData[V], name string, child TreeData[V]) TreeData[V] {
	branch := d.(*ObjectBranchData[V])
	return newObjectBranch(branch.payload, branch.children.Set(name, child))
}

func (objectBranchBehavior[V]) remove(d TreeData[V], name string) TreeData[V] {
	branch := d.(*ObjectBranchData[V])
	if _, ok := branch.children.Get(name); !ok {
		return d
	}
	return newObjectBranch(branch.payload, branch.children.Delete(name))
}

func (objectBranchBehavior[V]) insert(d TreeData[V], _ TreeData[V], _ bool) TreeData[V] {
	return d
}

func (objectBranchBehavior[V]) removeAt(d TreeData[V], _ int) TreeData[V] {
	return d
}
