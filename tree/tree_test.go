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

package tree_test

import (
	"fmt"

	"github.com/botobag/funcify/iterator"
	"github.com/botobag/funcify/path"
	"github.com/botobag/funcify/tree"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func value[V any](t tree.Tree[V]) V {
	v, ok := t.Value()
	Expect(ok).Should(BeTrue())
	return v
}

func child[V any](t tree.Tree[V], name string) tree.Tree[V] {
	c, ok := t.Child(name)
	Expect(ok).Should(BeTrue())
	return c
}

func childAt[V any](t tree.Tree[V], index int) tree.Tree[V] {
	c, ok := t.ChildAt(index)
	Expect(ok).Should(BeTrue())
	return c
}

// entries renders the entries of t as "path=value".
func entries[V any](t tree.Tree[V]) []string {
	var result []string
	err := iterator.ForEach(t.Entries(), func(entry tree.Entry[V]) bool {
		result = append(result, fmt.Sprintf("%s=%v", entry.Path, entry.Value))
		return true
	})
	Expect(err).ShouldNot(HaveOccurred())
	return result
}

func mustParse(s string) path.TreePath {
	p, err := path.ParseTreePath(s)
	Expect(err).ShouldNot(HaveOccurred())
	return p
}

var _ = Describe("Tree", func() {
	It("starts as an empty leaf", func() {
		t := tree.Empty[int]()
		Expect(t.Kind()).Should(Equal(tree.LeafKind))
		Expect(t.Len()).Should(Equal(0))
		_, ok := t.Value()
		Expect(ok).Should(BeFalse())

		var zero tree.Tree[int]
		Expect(zero.Kind()).Should(Equal(tree.LeafKind))
	})

	It("sets and unsets the value of a node", func() {
		t := tree.Leaf(1)
		Expect(value(t)).Should(Equal(1))
		Expect(value(t.Set(2))).Should(Equal(2))
		Expect(value(t)).Should(Equal(1))

		_, ok := t.Unset().Value()
		Expect(ok).Should(BeFalse())
	})

	It("promotes a leaf into an object branch keeping its value", func() {
		t := tree.Empty[int]().Set(1).Put("child", 5)
		Expect(t.Kind()).Should(Equal(tree.ObjectBranchKind))
		Expect(value(t)).Should(Equal(1))

		c := child(t, "child")
		Expect(c.Kind()).Should(Equal(tree.LeafKind))
		Expect(value(c)).Should(Equal(5))
	})

	It("promotes a leaf into an array branch keeping its value", func() {
		t := tree.Leaf("root").Append("b").Prepend("a")
		Expect(t.Kind()).Should(Equal(tree.ArrayBranchKind))
		Expect(value(t)).Should(Equal("root"))
		Expect(t.Len()).Should(Equal(2))
		Expect(value(childAt(t, 0))).Should(Equal("a"))
		Expect(value(childAt(t, 1))).Should(Equal("b"))
	})

	Describe("object branches", func() {
		var t tree.Tree[int]

		BeforeEach(func() {
			t = tree.Empty[int]().Put("b", 2).Put("a", 1)
		})

		It("looks up children by name", func() {
			Expect(t.Contains("a")).Should(BeTrue())
			Expect(t.Contains("c")).Should(BeFalse())
			v, ok := t.Get("b")
			Expect(ok).Should(BeTrue())
			Expect(v).Should(Equal(2))
			_, ok = t.Get("c")
			Expect(ok).Should(BeFalse())
			Expect(t.Names()).Should(Equal([]string{"a", "b"}))
		})

		It("overwrites a child with a leaf", func() {
			nested := t.PutTree("a", tree.Leaf(10).Put("x", 11))
			Expect(child(nested, "a").Len()).Should(Equal(1))

			replaced := nested.Put("a", 12)
			a := child(replaced, "a")
			Expect(a.Kind()).Should(Equal(tree.LeafKind))
			Expect(value(a)).Should(Equal(12))
		})

		It("removes children", func() {
			removed := t.Remove("a")
			Expect(removed.Names()).Should(Equal([]string{"b"}))
			Expect(t.Names()).Should(Equal([]string{"a", "b"}))
			Expect(removed.Remove("missing").Names()).Should(Equal([]string{"b"}))
		})

		It("ignores blank names", func() {
			Expect(t.Put("", 3).Names()).Should(Equal([]string{"a", "b"}))
			Expect(t.PutTree(" ", tree.Leaf(3)).Names()).Should(Equal([]string{"a", "b"}))

			leaf := tree.Leaf(1).Put(" ", 2)
			Expect(leaf.Kind()).Should(Equal(tree.LeafKind))
			Expect(leaf.Len()).Should(Equal(0))
			Expect(entries(leaf)).Should(Equal([]string{"tp:/=1"}))
		})

		It("ignores array updates", func() {
			Expect(t.Append(3).Len()).Should(Equal(2))
			Expect(t.Prepend(3).Kind()).Should(Equal(tree.ObjectBranchKind))
			Expect(t.RemoveIndex(0).Len()).Should(Equal(2))
			Expect(t.ContainsIndex(0)).Should(BeFalse())
		})
	})

	Describe("array branches", func() {
		var t tree.Tree[string]

		BeforeEach(func() {
			t = tree.Empty[string]().Append("a").Append("b").Append("c")
		})

		It("looks up children by index", func() {
			Expect(t.ContainsIndex(2)).Should(BeTrue())
			Expect(t.ContainsIndex(3)).Should(BeFalse())
			Expect(t.ContainsIndex(-1)).Should(BeFalse())
			v, ok := t.GetIndex(1)
			Expect(ok).Should(BeTrue())
			Expect(v).Should(Equal("b"))
		})

		It("shifts children on removal", func() {
			removed := t.RemoveIndex(0)
			Expect(removed.Len()).Should(Equal(2))
			Expect(value(childAt(removed, 0))).Should(Equal("b"))
			Expect(value(childAt(removed, 1))).Should(Equal("c"))
			Expect(t.Len()).Should(Equal(3))
		})

		It("removes the middle child", func() {
			removed := t.RemoveIndex(1)
			Expect(value(childAt(removed, 0))).Should(Equal("a"))
			Expect(value(childAt(removed, 1))).Should(Equal("c"))
		})

		table.DescribeTable("ignores out of range removal",
			func(index int) {
				Expect(t.RemoveIndex(index).Len()).Should(Equal(3))
			},
			table.Entry("negative", -1),
			table.Entry("past the end", 3),
		)

		It("ignores object updates", func() {
			Expect(t.Put("x", "y").Kind()).Should(Equal(tree.ArrayBranchKind))
			Expect(t.Remove("x").Len()).Should(Equal(3))
			Expect(t.Contains("x")).Should(BeFalse())
		})
	})

	Describe("paths", func() {
		var t tree.Tree[int]

		BeforeEach(func() {
			t = tree.Empty[int]().
				PutTree("dogs", tree.Empty[int]().
					AppendTree(tree.Empty[int]().Append(1).Append(2)).
					AppendTree(tree.Leaf(3).Put("age", 4))).
				Put("cats", 5)
		})

		table.DescribeTable("looks up nodes",
			func(p string, expected int) {
				v, ok := t.ValueAt(mustParse(p))
				Expect(ok).Should(BeTrue())
				Expect(v).Should(Equal(expected))
			},
			table.Entry("name", "tp:/cats", 5),
			table.Entry("list segment", "tp:/dogs[0][1]", 2),
			table.Entry("index segments", "tp:/dogs/[0]/[0]", 1),
			table.Entry("branch value", "tp:/dogs[1]", 3),
			table.Entry("nested name", "tp:/dogs[1]/age", 4),
		)

		It("reports missing nodes", func() {
			_, ok := t.Lookup(mustParse("tp:/dogs[2]"))
			Expect(ok).Should(BeFalse())
			_, ok = t.Lookup(mustParse("tp:/cats/x"))
			Expect(ok).Should(BeFalse())
			_, ok = t.ValueAt(mustParse("tp:/dogs"))
			Expect(ok).Should(BeFalse())
		})

		It("returns the tree itself for the root path", func() {
			root, ok := t.Lookup(path.NewTreePath())
			Expect(ok).Should(BeTrue())
			Expect(root.Names()).Should(Equal([]string{"cats", "dogs"}))
		})

		It("iterates entries depth first", func() {
			Expect(entries(t)).Should(Equal([]string{
				"tp:/cats=5",
				"tp:/dogs/[0]/[0]=1",
				"tp:/dogs/[0]/[1]=2",
				"tp:/dogs/[1]=3",
				"tp:/dogs/[1]/age=4",
			}))
		})
	})

	table.DescribeTable("prints kinds",
		func(k tree.Kind, expected string) {
			Expect(k.String()).Should(Equal(expected))
		},
		table.Entry("leaf", tree.LeafKind, "Leaf"),
		table.Entry("array", tree.ArrayBranchKind, "ArrayBranch"),
		table.Entry("object", tree.ObjectBranchKind, "ObjectBranch"),
		table.Entry("unknown", tree.Kind(9), "UnknownKind"),
	)
})
