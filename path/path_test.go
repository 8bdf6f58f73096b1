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

package path_test

import (
	"sort"

	"github.com/botobag/funcify/path"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Segment", func() {
	It("orders element segments by name, then kind, then index", func() {
		Expect(path.CompareElementSegments(path.NamedSegment{Name: "dogs"}, path.NamedSegment{Name: "snakes"})).
			Should(BeNumerically("<", 0))
		Expect(path.CompareElementSegments(path.UnnamedListSegment{Index: 0}, path.UnnamedListSegment{Index: 1})).
			Should(BeNumerically("<", 0))
		Expect(path.CompareElementSegments(
			path.NamedSegment{Name: "dogs"},
			path.NamedListSegment{Name: "dogs", Index: 1},
		)).Should(BeNumerically("<", 0))
		Expect(path.CompareElementSegments(
			path.NamedListSegment{Name: "dogs", Index: 1},
			path.NamedListSegment{Name: "dogs", Index: 1},
		)).Should(Equal(0))
	})

	It("sorts unnamed segments last", func() {
		segments := []path.ElementSegment{
			path.UnnamedListSegment{Index: 0},
			path.NamedListSegment{Name: "b", Index: 2},
			path.NamedSegment{Name: "b"},
			path.NamedSegment{Name: "a"},
		}
		sort.Slice(segments, func(i, j int) bool {
			return path.CompareElementSegments(segments[i], segments[j]) < 0
		})
		Expect(segments).Should(Equal([]path.ElementSegment{
			path.NamedSegment{Name: "a"},
			path.NamedSegment{Name: "b"},
			path.NamedListSegment{Name: "b", Index: 2},
			path.UnnamedListSegment{Index: 0},
		}))
	})

	It("orders tree segments the same way", func() {
		Expect(path.CompareSegments(path.NameSegment{Name: "a"}, path.ListSegment{Name: "a", Indices: []int{0}})).
			Should(BeNumerically("<", 0))
		Expect(path.CompareSegments(path.ListSegment{Name: "a", Indices: []int{0}}, path.IndexSegment{Index: 0})).
			Should(BeNumerically("<", 0))
		Expect(path.CompareSegments(
			path.ListSegment{Name: "a", Indices: []int{0}},
			path.ListSegment{Name: "a", Indices: []int{0, 1}},
		)).Should(BeNumerically("<", 0))
		Expect(path.CompareSegments(path.IndexSegment{Index: 3}, path.IndexSegment{Index: 2})).
			Should(BeNumerically(">", 0))
	})

	It("escapes names when printed", func() {
		Expect(path.NameSegment{Name: "a b/c"}.String()).Should(Equal("a%20b%2Fc"))
		Expect(path.ListSegment{Name: "dogs", Indices: []int{1, 2}}.String()).Should(Equal("dogs[1][2]"))
		Expect(path.IndexSegment{Index: 7}.String()).Should(Equal("[7]"))
		Expect(path.NamedListSegment{Name: "dogs", Index: 0}.String()).Should(Equal("dogs[0]"))
	})
})

var _ = Describe("TreePath", func() {
	It("ignores invalid appends", func() {
		root := path.NewTreePath()
		Expect(root.AppendNameSegment("  ")).Should(Equal(root))
		Expect(root.AppendIndexSegment(-1)).Should(Equal(root))
		Expect(root.AppendListSegment("a")).Should(Equal(root))
		Expect(root.AppendListSegment("a", 0, -2)).Should(Equal(root))
		Expect(root.PrependNameSegment("")).Should(Equal(root))
	})

	It("never changes the receiver", func() {
		p := path.NewTreePath().AppendNameSegment("a")
		q := p.AppendNameSegment("b")
		Expect(p.String()).Should(Equal("tp:/a"))
		Expect(q.String()).Should(Equal("tp:/a/b"))
		Expect(p.PrependIndexSegment(0).String()).Should(Equal("tp:/[0]/a"))
	})

	It("returns its parent", func() {
		p := path.NewTreePath().AppendNameSegment("a").AppendListSegment("b", 0, 1)
		parent, ok := p.Parent()
		Expect(ok).Should(BeTrue())
		Expect(parent.String()).Should(Equal("tp:/a"))

		again, _ := p.Parent()
		Expect(again.Equal(parent)).Should(BeTrue())

		root, ok := parent.Parent()
		Expect(ok).Should(BeTrue())
		Expect(root.IsRoot()).Should(BeTrue())

		_, ok = root.Parent()
		Expect(ok).Should(BeFalse())
	})

	It("compares scheme before segments", func() {
		a := path.NewTreePathWithScheme("a").AppendNameSegment("z")
		b := path.NewTreePathWithScheme("b").AppendNameSegment("a")
		Expect(a.Compare(b)).Should(BeNumerically("<", 0))
		Expect(b.Compare(a)).Should(BeNumerically(">", 0))

		short := path.NewTreePath().AppendNameSegment("a")
		long := short.AppendNameSegment("b")
		Expect(short.Compare(long)).Should(BeNumerically("<", 0))
		Expect(short.IsAncestorOf(long)).Should(BeTrue())
		Expect(long.IsAncestorOf(short)).Should(BeFalse())
	})

	It("detaches list indices from the caller", func() {
		indices := []int{0, 1}
		p := path.NewTreePath().AppendListSegment("a", indices...)
		indices[0] = 9
		Expect(p.String()).Should(Equal("tp:/a[0][1]"))
	})
})

var _ = Describe("ResultPath", func() {
	It("builds and prints", func() {
		p := path.NewResultPath().
			AppendNamedSegment("pets").
			AppendNamedListSegment("dogs", 0).
			AppendUnnamedListSegment(1).
			AppendNamedSegment("name")
		Expect(p.String()).Should(Equal("gqlr:/pets/dogs[0]/[1]/name"))
		Expect(p.Len()).Should(Equal(4))

		last, ok := p.LastSegment()
		Expect(ok).Should(BeTrue())
		Expect(last).Should(Equal(path.NamedSegment{Name: "name"}))
	})

	It("ignores invalid appends", func() {
		root := path.NewResultPath()
		Expect(root.AppendNamedSegment("")).Should(Equal(root))
		Expect(root.AppendNamedListSegment("a", -1)).Should(Equal(root))
		Expect(root.AppendUnnamedListSegment(-3)).Should(Equal(root))
	})
})

var _ = Describe("OperationPath", func() {
	It("descends into arguments and directives", func() {
		p := path.NewOperationPath().
			AppendSelection("pets").
			AppendSelectionList("dogs", 0).
			WithArgument("filter").
			AppendArgumentSegment(path.NameSegment{Name: "breed"}).
			WithDirective("include").
			AppendDirectiveSegment(path.NameSegment{Name: "if"})
		Expect(p.String()).Should(Equal("gqlo:/pets/dogs[0]?filter=/breed#include=/if"))

		// Selection is fixed once an argument is attached.
		Expect(p.AppendSelection("cats")).Should(Equal(p))
		Expect(p.WithArgument("other")).Should(Equal(p))
	})

	It("walks parents from the deepest step", func() {
		p, err := path.ParseOperationPath("gqlo:/a?x=/b#d=/c")
		Expect(err).ShouldNot(HaveOccurred())

		var parents []string
		for {
			parent, ok := p.Parent()
			if !ok {
				break
			}
			parents = append(parents, parent.String())
			p = parent
		}
		Expect(parents).Should(Equal([]string{
			"gqlo:/a?x=/b#d=/",
			"gqlo:/a?x=/b",
			"gqlo:/a?x=/",
			"gqlo:/a",
			"gqlo:/",
		}))
	})

	It("orders a missing argument first", func() {
		a := path.NewOperationPath().AppendSelection("a")
		b := a.WithArgument("x")
		Expect(a.Compare(b)).Should(BeNumerically("<", 0))
		Expect(b.Equal(b.WithArgument("y"))).Should(BeTrue())
	})
})

var _ = Describe("Builder", func() {
	It("ignores invalid segments in lenient mode", func() {
		p, err := path.NewTreePathBuilder(nil).Name("a").Index(-1).Name("").List("b", 2).Build()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p.String()).Should(Equal("tp:/a/b[2]"))
	})

	It("reports the first invalid segment in strict mode", func() {
		_, err := path.NewTreePathBuilder(&path.BuilderConfig{Strict: true}).Name("a").Index(-1).Name("").Build()
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("IndexSegment"))
	})

	It("builds result paths", func() {
		p, err := path.NewResultPathBuilder(&path.BuilderConfig{Strict: true}).
			Named("a").NamedList("b", 1).UnnamedList(0).Build()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p.String()).Should(Equal("gqlr:/a/b[1]/[0]"))

		_, err = path.NewResultPathBuilder(&path.BuilderConfig{Strict: true}).Named(" ").Build()
		Expect(err).Should(HaveOccurred())
	})
})
