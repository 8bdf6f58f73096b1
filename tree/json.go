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
	jsoniter "github.com/json-iterator/go"

	"github.com/botobag/funcify/errors"
	"github.com/botobag/funcify/path"
)

// MarshalJSON implements json.Marshaler. A leaf is encoded as its value (or null without value),
// an array branch as an array of its children and an object branch as an object of its children.
// The values of branch nodes are not encoded.
func (t Tree[V]) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	encodeData(t.Data(), stream)
	if stream.Error != nil {
		return nil, errors.New("failed to encode tree", errors.Op("tree.Tree.MarshalJSON"), stream.Error)
	}
	// The buffer is reused once the stream is returned.
	return append([]byte(nil), stream.Buffer()...), nil
}

func encodeData[V any](d TreeData[V], stream *jsoniter.Stream) {
	switch d := d.(type) {
	case *LeafData[V]:
		if value, ok := d.Value(); ok {
			stream.WriteVal(value)
		} else {
			stream.WriteNil()
		}

	case *ArrayBranchData[V]:
		stream.WriteArrayStart()
		itr := d.children.Iterator()
		for !itr.Done() {
			i, child := itr.Next()
			if i > 0 {
				stream.WriteMore()
			}
			encodeData(child, stream)
		}
		stream.WriteArrayEnd()

	case *ObjectBranchData[V]:
		stream.WriteObjectStart()
		first := true
		itr := d.children.Iterator()
		for !itr.Done() {
			name, child, _ := itr.Next()
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(name)
			encodeData(child, stream)
		}
		stream.WriteObjectEnd()

	default:
		errors.Invariant("tree.encodeData", "unhandled tree data type %T", d)
	}
}

// FromJSON builds a tree from a JSON document: objects become object branches, arrays become array
// branches and other values become leaves. A null becomes a leaf without value. Numbers are decoded
// as float64. An object member with a blank name is an error with errors.KindInvalidArgument.
func FromJSON(data []byte) (Tree[interface{}], error) {
	var document interface{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &document); err != nil {
		return Tree[interface{}]{}, errors.New("invalid JSON document", errors.Op("tree.FromJSON"), errors.KindSyntax, err)
	}
	root, err := fromDocument(document)
	if err != nil {
		return Tree[interface{}]{}, err
	}
	return Tree[interface{}]{data: root}, nil
}

func fromDocument(document interface{}) (TreeData[interface{}], error) {
	switch document := document.(type) {
	case nil:
		return newLeaf(payload[interface{}]{}), nil

	case []interface{}:
		children := make([]TreeData[interface{}], len(document))
		for i, element := range document {
			child, err := fromDocument(element)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return newArrayBranch(payload[interface{}]{}, immutable.NewList(children...)), nil

	case map[string]interface{}:
		builder := immutable.NewSortedMapBuilder[string, TreeData[interface{}]](nameOrder{})
		for name, field := range document {
			if !path.ValidName(name) {
				return nil, errors.Newf("tree.FromJSON", errors.KindInvalidArgument, "blank member name %q", name)
			}
			child, err := fromDocument(field)
			if err != nil {
				return nil, err
			}
			builder.Set(name, child)
		}
		return newObjectBranch(payload[interface{}]{}, builder.Map()), nil
	}
	return newLeaf(someValue(document)), nil
}
