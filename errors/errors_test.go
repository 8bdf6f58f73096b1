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

package errors_test

import (
	stderrors "errors"
	"io"

	"github.com/botobag/funcify/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("accepts op, kind and cause in any order", func() {
		err := errors.New("bad thing", errors.KindSyntax, io.EOF, errors.Op("path.Parse"))
		Expect(err).Should(MatchError("path.Parse: bad thing: syntax error: EOF"))

		e, ok := err.(*errors.Error)
		Expect(ok).Should(BeTrue())
		Expect(e.Op).Should(Equal(errors.Op("path.Parse")))
		Expect(e.Kind).Should(Equal(errors.KindSyntax))
		Expect(e.Err).Should(Equal(io.EOF))
	})

	It("rejects unknown argument types", func() {
		err := errors.New("bad call", 42)
		_, ok := err.(*errors.Error)
		Expect(ok).Should(BeFalse())
		Expect(err.Error()).Should(ContainSubstring("unknown type int"))
	})

	It("pulls kind from the underlying error", func() {
		inner := errors.New("no index", errors.KindSyntax)
		outer := errors.Wrap(inner, "failed to parse")
		Expect(errors.KindOf(outer)).Should(Equal(errors.KindSyntax))
		Expect(outer).Should(MatchError("failed to parse: syntax error:\n  no index"))
	})

	It("supports errors.Is through the chain", func() {
		err := errors.Wrapf(io.ErrUnexpectedEOF, "reading %s", "tree")
		Expect(stderrors.Is(err, io.ErrUnexpectedEOF)).Should(BeTrue())
		Expect(errors.KindOf(err)).Should(Equal(errors.KindOther))
		Expect(errors.KindOf(io.EOF)).Should(Equal(errors.KindOther))
	})

	It("formats messages with Newf", func() {
		err := errors.Newf("tree.FromSequence", errors.KindInvalidArgument, "mixed children under %q", "a")
		Expect(err).Should(MatchError(`tree.FromSequence: mixed children under "a": invalid argument`))
	})

	It("panics with an internal error on a broken invariant", func() {
		defer func() {
			r := recover()
			Expect(r).ShouldNot(BeNil())
			err, ok := r.(*errors.Error)
			Expect(ok).Should(BeTrue())
			Expect(err.Kind).Should(Equal(errors.KindInternal))
			Expect(err.Error()).Should(Equal("graph.fold: unhandled variant *int: internal error"))
		}()
		errors.Invariant("graph.fold", "unhandled variant %T", new(int))
	})
})
