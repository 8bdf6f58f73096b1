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
	"github.com/botobag/funcify/errors"
	"github.com/botobag/funcify/iterator"
	"github.com/botobag/funcify/path"
)

// Tree is an immutable tree. The zero value is an empty leaf.
//
// Every update returns a new Tree; the receiver is never changed and may be read by many
// goroutines at once. Updates that don't apply to the kind of the root node (e.g., Append on an
// object branch or Put on an array branch) return the tree unchanged.
type Tree[V any] struct {
	data TreeData[V]
}

// Entry is a value in a tree along with the path of its node.
type Entry[V any] struct {
	Path  path.TreePath
	Value V
}

// Empty returns a leaf without value.
func Empty[V any]() Tree[V] {
	return Tree[V]{}
}

// Leaf returns a leaf carrying the value.
func Leaf[V any](value V) Tree[V] {
	return Tree[V]{data: newLeaf(someValue(value))}
}

// FromData wraps the node data into a Tree.
func FromData[V any](d TreeData[V]) Tree[V] {
	return Tree[V]{data: d}
}

// Data returns the data of the root node.
func (t Tree[V]) Data() TreeData[V] {
	if t.data == nil {
		return newLeaf(payload[V]{})
	}
	return t.data
}

func (t Tree[V]) update(apply func(b behavior[V], d TreeData[V]) TreeData[V]) Tree[V] {
	d := t.Data()
	return Tree[V]{data: apply(behaviorOf(d), d)}
}

// Kind returns the kind of the root node.
func (t Tree[V]) Kind() Kind {
	return t.Data().Kind()
}

// Value returns the value of the root node.
func (t Tree[V]) Value() (V, bool) {
	return t.Data().Value()
}

// Set returns a tree with the value of the root node replaced. The children are kept.
func (t Tree[V]) Set(value V) Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.withValue(d, someValue(value))
	})
}

// Unset returns a tree with the value of the root node removed. The children are kept.
func (t Tree[V]) Unset() Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.withValue(d, payload[V]{})
	})
}

// Len returns the number of children of the root node.
func (t Tree[V]) Len() int {
	return t.Data().Len()
}

//===----------------------------------------------------------------------------------------====//
// Object branches
//===----------------------------------------------------------------------------------------====//

// Contains returns true if the root node has a child with the name.
func (t Tree[V]) Contains(name string) bool {
	_, ok := t.Child(name)
	return ok
}

// Child returns the subtree with the name.
func (t Tree[V]) Child(name string) (Tree[V], bool) {
	if branch, ok := t.Data().(*ObjectBranchData[V]); ok {
		if child, ok := branch.Child(name); ok {
			return Tree[V]{data: child}, true
		}
	}
	return Tree[V]{}, false
}

// Get returns the value of the child with the name.
func (t Tree[V]) Get(name string) (V, bool) {
	child, ok := t.Child(name)
	if !ok {
		var zero V
		return zero, false
	}
	return child.Value()
}

// Names returns the names of the children of an object branch in order.
func (t Tree[V]) Names() []string {
	if branch, ok := t.Data().(*ObjectBranchData[V]); ok {
		return branch.Names()
	}
	return nil
}

// Put returns a tree with the named child set to a leaf carrying the value. An existing child is
// replaced along with its descendants. A leaf root becomes an object branch and keeps its value.
// A name that path.ValidName rejects returns the tree unchanged.
func (t Tree[V]) Put(name string, value V) Tree[V] {
	return t.PutTree(name, Leaf(value))
}

// PutTree is like Put but sets the named child to a subtree.
func (t Tree[V]) PutTree(name string, child Tree[V]) Tree[V] {
	if !path.ValidName(name) {
		return t
	}
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.put(d, name, child.Data())
	})
}

// Remove returns a tree without the named child.
func (t Tree[V]) Remove(name string) Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.remove(d, name)
	})
}

//===----------------------------------------------------------------------------------------====//
// Array branches
//===----------------------------------------------------------------------------------------====//

// ContainsIndex returns true if the root node has a child at the index.
func (t Tree[V]) ContainsIndex(index int) bool {
	_, ok := t.ChildAt(index)
	return ok
}

// ChildAt returns the subtree at the index.
func (t Tree[V]) ChildAt(index int) (Tree[V], bool) {
	if branch, ok := t.Data().(*ArrayBranchData[V]); ok {
		if child, ok := branch.Child(index); ok {
			return Tree[V]{data: child}, true
		}
	}
	return Tree[V]{}, false
}

// GetIndex returns the value of the child at the index.
func (t Tree[V]) GetIndex(index int) (V, bool) {
	child, ok := t.ChildAt(index)
	if !ok {
		var zero V
		return zero, false
	}
	return child.Value()
}

// Append returns a tree with a leaf carrying the value added after the last child. A leaf root
// becomes an array branch and keeps its value.
func (t Tree[V]) Append(value V) Tree[V] {
	return t.AppendTree(Leaf(value))
}

// AppendTree is like Append but adds a subtree.
func (t Tree[V]) AppendTree(child Tree[V]) Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.insert(d, child.Data(), false)
	})
}

// Prepend returns a tree with a leaf carrying the value added before the first child. A leaf root
// becomes an array branch and keeps its value.
func (t Tree[V]) Prepend(value V) Tree[V] {
	return t.PrependTree(Leaf(value))
}

// PrependTree is like Prepend but adds a subtree.
func (t Tree[V]) PrependTree(child Tree[V]) Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.insert(d, child.Data(), true)
	})
}

// RemoveIndex returns a tree without the child at the index. Following children move down one
// position. An index out of range returns the tree unchanged.
func (t Tree[V]) RemoveIndex(index int) Tree[V] {
	return t.update(func(b behavior[V], d TreeData[V]) TreeData[V] {
		return b.removeAt(d, index)
	})
}

//===----------------------------------------------------------------------------------------====//
// Paths
//===----------------------------------------------------------------------------------------====//

// Lookup returns the subtree at the path. A ListSegment selects the named child and then the
// elements at its indices.
func (t Tree[V]) Lookup(p path.TreePath) (Tree[V], bool) {
	current := t
	for _, s := range p.Segments() {
		var ok bool
		switch s := s.(type) {
		case path.NameSegment:
			current, ok = current.Child(s.Name)
		case path.IndexSegment:
			current, ok = current.ChildAt(s.Index)
		case path.ListSegment:
			current, ok = current.Child(s.Name)
			for i := 0; ok && i < len(s.Indices); i++ {
				current, ok = current.ChildAt(s.Indices[i])
			}
		}
		if !ok {
			return Tree[V]{}, false
		}
	}
	return current, true
}

// ValueAt returns the value of the node at the path.
func (t Tree[V]) ValueAt(p path.TreePath) (V, bool) {
	node, ok := t.Lookup(p)
	if !ok {
		var zero V
		return zero, false
	}
	return node.Value()
}

type entryFrame[V any] struct {
	path path.TreePath
	data TreeData[V]
}

// Entries returns an iterator over the nodes carrying a value, depth first with parents before
// children. Children of an object branch are visited by name and children of an array branch by
// position. Paths consist of NameSegment and IndexSegment only.
func (t Tree[V]) Entries() iterator.Iterator[Entry[V]] {
	stack := []entryFrame[V]{{path: path.NewTreePath(), data: t.Data()}}
	return iterator.Func[Entry[V]](func() (Entry[V], error) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = pushChildren(stack[:len(stack)-1], top)
			if value, ok := top.data.Value(); ok {
				return Entry[V]{Path: top.path, Value: value}, nil
			}
		}
		return Entry[V]{}, iterator.Done
	})
}

// pushChildren pushes the children of frame in reverse order so that the first child is popped
// first.
func pushChildren[V any](stack []entryFrame[V], frame entryFrame[V]) []entryFrame[V] {
	switch d := frame.data.(type) {
	case *LeafData[V]:
	case *ArrayBranchData[V]:
		for i := d.children.Len() - 1; i >= 0; i-- {
			stack = append(stack, entryFrame[V]{
				path: frame.path.AppendIndexSegment(i),
				data: d.children.Get(i),
			})
		}
	case *ObjectBranchData[V]:
		start := len(stack)
		itr := d.children.Iterator()
		for !itr.Done() {
			name, child, _ := itr.Next()
			stack = append(stack, entryFrame[V]{
				path: frame.path.AppendNameSegment(name),
				data: child,
			})
		}
		for i, j := start, len(stack)-1; i < j; i, j = i+1, j-1 {
			stack[i], stack[j] = stack[j], stack[i]
		}
	default:
		errors.Invariant("tree.Tree.Entries", "unhandled tree data type %T", frame.data)
	}
	return stack
}
