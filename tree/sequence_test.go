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
	"github.com/botobag/funcify/errors"
	"github.com/botobag/funcify/iterator"
	"github.com/botobag/funcify/path"
	"github.com/botobag/funcify/tree"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func entry[V any](p string, v V) tree.Entry[V] {
	return tree.Entry[V]{Path: mustParse(p), Value: v}
}

var _ = Describe("FromSequence", func() {
	It("builds an empty tree from no entry", func() {
		t, err := tree.FromEntries[int]()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.Kind()).Should(Equal(tree.LeafKind))
		_, ok := t.Value()
		Expect(ok).Should(BeFalse())
	})

	It("builds branches bottom-up", func() {
		t, err := tree.FromEntries(
			entry("tp:/pets/dogs[0]/name", "rex"),
			entry("tp:/pets/dogs[1]/name", "fido"),
			entry("tp:/pets/owner", "ann"),
			entry("tp:/", "root"),
		)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value(t)).Should(Equal("root"))

		pets := child(t, "pets")
		Expect(pets.Kind()).Should(Equal(tree.ObjectBranchKind))
		Expect(pets.Names()).Should(Equal([]string{"dogs", "owner"}))

		dogs := child(pets, "dogs")
		Expect(dogs.Kind()).Should(Equal(tree.ArrayBranchKind))
		Expect(dogs.Len()).Should(Equal(2))
		v, ok := childAt(dogs, 1).Get("name")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal("fido"))
	})

	It("merges a value into a node that has descendants", func() {
		t, err := tree.FromEntries(
			entry("tp:/a/b", 2),
			entry("tp:/a", 1),
		)
		Expect(err).ShouldNot(HaveOccurred())
		a := child(t, "a")
		Expect(a.Kind()).Should(Equal(tree.ObjectBranchKind))
		Expect(value(a)).Should(Equal(1))
		Expect(value(child(a, "b"))).Should(Equal(2))
	})

	It("keeps the last entry for a path", func() {
		t, err := tree.FromEntries(entry("tp:/a", 1), entry("tp:/a", 2))
		Expect(err).ShouldNot(HaveOccurred())
		v, _ := t.Get("a")
		Expect(v).Should(Equal(2))
	})

	It("fills missing positions with empty leaves", func() {
		t, err := tree.FromEntries(entry("tp:/list[2]", "c"), entry("tp:/list[0]", "a"))
		Expect(err).ShouldNot(HaveOccurred())
		list := child(t, "list")
		Expect(list.Len()).Should(Equal(3))
		Expect(value(childAt(list, 0))).Should(Equal("a"))
		Expect(value(childAt(list, 2))).Should(Equal("c"))

		gap := childAt(list, 1)
		Expect(gap.Kind()).Should(Equal(tree.LeafKind))
		_, ok := gap.Value()
		Expect(ok).Should(BeFalse())
	})

	It("treats list segments as a name followed by indices", func() {
		listForm, err := tree.FromEntries(entry("tp:/m[1][0]", 7))
		Expect(err).ShouldNot(HaveOccurred())
		stepForm, err := tree.FromEntries(entry("tp:/m/[1]/[0]", 7))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(entries(listForm)).Should(Equal(entries(stepForm)))
		Expect(entries(listForm)).Should(Equal([]string{"tp:/m/[1]/[0]=7"}))
	})

	It("ignores the scheme of the paths", func() {
		t, err := tree.FromEntries(tree.Entry[int]{
			Path:  path.NewTreePathWithScheme("other").AppendNameSegment("x"),
			Value: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(entries(t)).Should(Equal([]string{"tp:/x=1"}))
	})

	It("rejects mixed named and indexed children", func() {
		_, err := tree.FromEntries(entry("tp:/a/b", 1), entry("tp:/a/[0]", 2))
		Expect(err).Should(HaveOccurred())
		Expect(errors.KindOf(err)).Should(Equal(errors.KindInvalidArgument))
		Expect(err.Error()).Should(ContainSubstring(`"tp:/a"`))
	})

	It("rejects indices far beyond the entries of an array", func() {
		_, err := tree.FromEntries(tree.Entry[int]{
			Path:  path.NewTreePath().AppendNameSegment("a").AppendIndexSegment(1 << 62),
			Value: 1,
		})
		Expect(err).Should(HaveOccurred())
		Expect(errors.KindOf(err)).Should(Equal(errors.KindInvalidArgument))
		Expect(err.Error()).Should(ContainSubstring(`"tp:/a"`))
	})

	It("fills up to MaxArrayGap positions", func() {
		t, err := tree.FromEntries(tree.Entry[int]{
			Path:  path.NewTreePath().AppendIndexSegment(tree.MaxArrayGap),
			Value: 1,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t.Len()).Should(Equal(tree.MaxArrayGap + 1))
		Expect(value(childAt(t, tree.MaxArrayGap))).Should(Equal(1))

		_, err = tree.FromEntries(tree.Entry[int]{
			Path:  path.NewTreePath().AppendIndexSegment(tree.MaxArrayGap + 1),
			Value: 1,
		})
		Expect(err).Should(HaveOccurred())
	})

	It("rebuilds a tree from its entries", func() {
		original := tree.Empty[int]().
			PutTree("dogs", tree.Empty[int]().Append(1).AppendTree(tree.Leaf(2).Put("age", 3))).
			Put("cats", 4)

		rebuilt, err := tree.FromSequence(original.Entries())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(entries(rebuilt)).Should(Equal(entries(original)))
	})

	It("reports iterator failures", func() {
		failure := errors.New("broken source")
		_, err := tree.FromSequence[int](iterator.Func[tree.Entry[int]](func() (tree.Entry[int], error) {
			return tree.Entry[int]{}, failure
		}))
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("broken source"))
	})
})
