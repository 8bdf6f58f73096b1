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

// Package errors defines the error values produced by funcify containers. The design follows
// upspin.io/errors [0]: an Error carries the operation being performed, a class of error and the
// underlying cause, and prints them as a single chain.
//
// Two classes of failure exist. Input errors (such as a malformed path string) are returned as
// values. Broken internal invariants (such as an unrecognized container variant) panic with an
// *Error of KindInternal via Invariant.
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html
package errors

import (
	stderrors "errors"
	"fmt"
	"log"
	"runtime"
	"strings"
)

// Op describes an operation, usually as the package and method, such as "path.ParseTreePath".
type Op string

// Kind defines the kind of error this is.
type Kind uint8

// Enumeration of Kind
const (
	KindOther           Kind = iota // Unclassified error. This value is not printed in the error message.
	KindSyntax                      // Malformed textual input such as a path string.
	KindInvalidArgument             // An argument rejected by a strict builder.
	KindInternal                    // Internal error; a broken invariant.
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other error"
	case KindSyntax:
		return "syntax error"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// Error describes a failure within funcify. It can wrap an underlying error; Kind is pulled from
// the underlying *Error when it is not given explicitly.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind Kind
}

var _ error = (*Error)(nil)

// New builds an error value from arguments. Arguments may be an Op, a Kind or an error, in any
// order.
func New(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg

		case Kind:
			e.Kind = arg

		case error:
			e.Err = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("errors.New: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind from underlying error.
	if e.Kind == KindOther {
		if prev, ok := e.Err.(*Error); ok {
			e.Kind = prev.Kind
		}
	}

	return e
}

// Newf is similar to New but formats the message with the format specifier. Only the message is
// formatted; Op, Kind and the cause cannot be passed.
func Newf(op Op, kind Kind, format string, args ...interface{}) error {
	return New(fmt.Sprintf(format, args...), op, kind)
}

// Wrap is a convenient wrapper to build an Error value from an underlying error with a message.
func Wrap(err error, message string) error {
	return New(message, err)
}

// Wrapf is similar to Wrap but with the format specifier.
func Wrapf(err error, format string, args ...interface{}) error {
	return New(fmt.Sprintf(format, args...), err)
}

// Invariant panics with an *Error of KindInternal. It reports states that can only be reached when
// an exhaustiveness invariant of a container is broken.
func Invariant(op Op, format string, args ...interface{}) {
	panic(New(fmt.Sprintf(format, args...), op, KindInternal))
}

// KindOf returns the Kind of the first *Error found in err's chain or KindOther.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != KindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}
