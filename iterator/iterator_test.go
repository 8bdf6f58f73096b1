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

package iterator_test

import (
	"errors"

	"github.com/botobag/funcify/iterator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Iterator", func() {
	It("describes Done", func() {
		Expect(iterator.Done.Error()).Should(Equal("no more items in iterator"))
	})

	It("iterates a slice in order", func() {
		iter := iterator.FromSlice([]string{"a", "b"})

		v, err := iter.Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("a"))

		v, err = iter.Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("b"))

		_, err = iter.Next()
		Expect(err).Should(Equal(iterator.Done))
	})

	It("collects all elements", func() {
		values, err := iterator.Collect[int](iterator.FromSlice([]int{1, 2, 3}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values).Should(Equal([]int{1, 2, 3}))
	})

	It("stops collecting on failure", func() {
		failure := errors.New("boom")
		calls := 0
		iter := iterator.Func[int](func() (int, error) {
			calls++
			if calls > 2 {
				return 0, failure
			}
			return calls, nil
		})
		values, err := iterator.Collect[int](iter)
		Expect(err).Should(Equal(failure))
		Expect(values).Should(Equal([]int{1, 2}))
	})

	It("stops ForEach when the callback returns false", func() {
		var seen []int
		err := iterator.ForEach[int](iterator.FromSlice([]int{1, 2, 3}), func(v int) bool {
			seen = append(seen, v)
			return v < 2
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(seen).Should(Equal([]int{1, 2}))
	})
})
