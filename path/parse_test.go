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
	"fmt"

	"github.com/botobag/funcify/errors"
	"github.com/botobag/funcify/path"

	jsoniter "github.com/json-iterator/go"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	table.DescribeTable("round trips built tree paths",
		func(p path.TreePath) {
			parsed, err := path.ParseTreePath(p.String())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(parsed.Equal(p)).Should(BeTrue(), "parsed %s from %s", parsed, p)
		},
		table.Entry("root", path.NewTreePath()),
		table.Entry("names", path.NewTreePath().AppendNameSegment("pets").AppendNameSegment("dogs")),
		table.Entry("list", path.NewTreePath().AppendListSegment("dogs", 0, 12)),
		table.Entry("index", path.NewTreePath().AppendNameSegment("a").AppendIndexSegment(3)),
		table.Entry("escaped", path.NewTreePath().AppendNameSegment("a/b[0]?#").AppendNameSegment("c d")),
		table.Entry("custom scheme", path.NewTreePathWithScheme("mlfs").AppendNameSegment("x")),
	)

	table.DescribeTable("round trips built result paths",
		func(p path.ResultPath) {
			parsed, err := path.ParseResultPath(p.String())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(parsed.Equal(p)).Should(BeTrue(), "parsed %s from %s", parsed, p)
		},
		table.Entry("root", path.NewResultPath()),
		table.Entry("named", path.NewResultPath().AppendNamedSegment("a").AppendNamedSegment("b")),
		table.Entry("lists", path.NewResultPath().AppendNamedListSegment("a", 0).AppendUnnamedListSegment(2)),
		table.Entry("leading unnamed", path.NewResultPath().AppendUnnamedListSegment(0).AppendNamedSegment("x")),
	)

	table.DescribeTable("round trips built operation paths",
		func(p path.OperationPath) {
			parsed, err := path.ParseOperationPath(p.String())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(parsed.Equal(p)).Should(BeTrue(), "parsed %s from %s", parsed, p)
		},
		table.Entry("root", path.NewOperationPath()),
		table.Entry("selection", path.NewOperationPath().AppendSelection("a").AppendSelectionList("b", 1)),
		table.Entry("argument", path.NewOperationPath().AppendSelection("a").WithArgument("x=y").
			AppendArgumentSegment(path.NameSegment{Name: "k"})),
		table.Entry("directive only", path.NewOperationPath().AppendSelection("a").WithDirective("skip")),
	)

	It("splits a named multi-index segment of a result path", func() {
		p, err := path.ParseResultPath("gqlr:/a/b[0][1]")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p.Segments()).Should(Equal([]path.ElementSegment{
			path.NamedSegment{Name: "a"},
			path.NamedListSegment{Name: "b", Index: 0},
			path.UnnamedListSegment{Index: 1},
		}))
	})

	It("skips empty segments", func() {
		p, err := path.ParseTreePath("tp:/a//b/")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p.String()).Should(Equal("tp:/a/b"))
	})

	table.DescribeTable("rejects malformed input",
		func(input string, message string) {
			_, err := path.ParseResultPath(input)
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring(message))
			Expect(errors.KindOf(err)).Should(Equal(errors.KindSyntax))

			_, err = path.ParseTreePath(input)
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring(message))
		},
		table.Entry("unterminated bracket", "gqlr:/a/b[0/c", "end bracket"),
		table.Entry("trailing text", "gqlr:/a/b[0]x/c", "after"),
		table.Entry("empty index", "gqlr:/a/[]/c", "no index"),
		table.Entry("negative index", "gqlr:/a/b[-1]", "invalid index"),
		table.Entry("non-numeric index", "gqlr:/a/b[x]", "invalid index"),
		table.Entry("stray end bracket", "gqlr:/a/b]", "without start bracket"),
		table.Entry("missing scheme", "/a/b", "missing scheme"),
		table.Entry("relative", "gqlr:a/b", "must start with"),
		table.Entry("bad escape", "gqlr:/a%zz", "invalid escape"),
	)

	It("rejects malformed operation paths", func() {
		_, err := path.ParseOperationPath("gqlo:/a?")
		Expect(err).Should(MatchError(ContainSubstring("missing argument name")))

		_, err = path.ParseOperationPath("gqlo:/a#d")
		Expect(err).Should(MatchError(ContainSubstring(`expect "="`)))

		_, err = path.ParseOperationPath("gqlo:/a?%20=/b")
		Expect(err).Should(MatchError(ContainSubstring("blank name")))
	})

	It("serves repeated parses from its cache", func() {
		cache, err := path.NewLRUCache(2)
		Expect(err).ShouldNot(HaveOccurred())
		parser, err := path.NewParser(&path.ParserConfig{Cache: cache})
		Expect(err).ShouldNot(HaveOccurred())

		first, err := parser.ParseTreePath("tp:/a")
		Expect(err).ShouldNot(HaveOccurred())
		second, err := parser.ParseTreePath("tp:/a")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(second).Should(Equal(first))
		Expect(cache.Len()).Should(Equal(1))

		_, err = parser.ParseTreePath("tp:/a[")
		Expect(err).Should(HaveOccurred())
		Expect(cache.Len()).Should(Equal(1))
	})

	It("rejects conflicting parser config", func() {
		_, err := path.NewParser(&path.ParserConfig{CacheSize: 1, Cache: path.NopCache{}})
		Expect(err).Should(HaveOccurred())
	})

	It("encodes paths as JSON strings", func() {
		p := path.NewTreePath().AppendListSegment("dogs", 0)
		data, err := jsoniter.Marshal(map[string]path.TreePath{"at": p})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(MatchJSON(`{"at": "tp:/dogs[0]"}`))

		var decoded struct {
			At path.ResultPath `json:"at"`
		}
		Expect(jsoniter.Unmarshal([]byte(`{"at": "gqlr:/a/b[2]"}`), &decoded)).Should(Succeed())
		Expect(decoded.At.String()).Should(Equal("gqlr:/a/b[2]"))

		err = jsoniter.Unmarshal([]byte(`{"at": "gqlr:/a/b[2"}`), &decoded)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("LRUCache", func() {
	It("evicts the least recently used entry", func() {
		cache, err := path.NewLRUCache(2)
		Expect(err).ShouldNot(HaveOccurred())

		cache.Add("a", 1)
		cache.Add("b", 2)
		_, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())

		cache.Add("c", 3)
		Expect(cache.Len()).Should(Equal(2))
		_, ok = cache.Get("b")
		Expect(ok).Should(BeFalse())

		v, ok := cache.Get("a")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal(1))
		v, ok = cache.Get("c")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal(3))
	})

	It("replaces the value of an existing key", func() {
		cache, _ := path.NewLRUCache(1)
		cache.Add("a", 1)
		cache.Add("a", 2)
		v, _ := cache.Get("a")
		Expect(v).Should(Equal(2))
		Expect(cache.Len()).Should(Equal(1))
	})

	It("reuses freed slots under churn", func() {
		cache, _ := path.NewLRUCache(3)
		for i := 0; i < 100; i++ {
			cache.Add(fmt.Sprint(i), i)
		}
		Expect(cache.Len()).Should(Equal(3))
		v, ok := cache.Get("99")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal(99))
	})

	It("requires a positive size", func() {
		_, err := path.NewLRUCache(0)
		Expect(err).Should(HaveOccurred())
		Expect(errors.KindOf(err)).Should(Equal(errors.KindInvalidArgument))
	})
})
