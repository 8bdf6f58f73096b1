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

package iterator

// done is defined to serve as type for Done. It allows us to define an immutable global variable.
type done int

// Error implements Go's error inteface for "done".
func (done) Error() string {
	return "no more items in iterator"
}

var _ error = done(0)

// Done is returned by an iterator's Next method when the iteration is complete; when there are no
// more items to return.
const Done done = 0

// Iterator iterates over a sequence of T.
type Iterator[T any] interface {
	// Next returns the next element in the iteration or Done when there's no more element.
	Next() (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as an Iterator.
type Func[T any] func() (T, error)

// Next implements Iterator. It calls f().
func (f Func[T]) Next() (T, error) {
	return f()
}

// SliceIterator iterates over the elements of a slice in order.
type SliceIterator[T any] struct {
	elements []T
	next     int
}

var _ Iterator[int] = (*SliceIterator[int])(nil)

// FromSlice returns an iterator over the given elements. The slice must not be modified while it
// is being iterated.
func FromSlice[T any](elements []T) *SliceIterator[T] {
	return &SliceIterator[T]{
		elements: elements,
	}
}

// Next implements Iterator.
func (iter *SliceIterator[T]) Next() (T, error) {
	if iter.next >= len(iter.elements) {
		var zero T
		return zero, Done
	}
	element := iter.elements[iter.next]
	iter.next++
	return element, nil
}

// Collect drains the iterator into a slice. It returns the elements read so far along with the
// error if the iterator fails with anything other than Done.
func Collect[T any](iter Iterator[T]) ([]T, error) {
	var result []T
	for {
		element, err := iter.Next()
		if err == Done {
			return result, nil
		} else if err != nil {
			return result, err
		}
		result = append(result, element)
	}
}

// ForEach calls f for each element until the iterator is exhausted or f returns false.
func ForEach[T any](iter Iterator[T], f func(T) bool) error {
	for {
		element, err := iter.Next()
		if err == Done {
			return nil
		} else if err != nil {
			return err
		}
		if !f(element) {
			return nil
		}
	}
}
