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

package path

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/botobag/funcify/errors"
)

// DefaultCacheSize is the size of the LRU cache used by the package-level Parse functions.
const DefaultCacheSize = 1024

// ParserConfig contains options to configure a Parser.
type ParserConfig struct {
	// The maximum number of parsed paths to keep in an LRUCache created for the Parser. Zero disables
	// caching unless Cache is set.
	CacheSize uint

	// Cache stores parsed paths. If set, CacheSize must be zero.
	Cache Cache
}

// Validate verifies config values.
func (config *ParserConfig) Validate() error {
	if config.Cache != nil && config.CacheSize > 0 {
		return errors.New("CacheSize must be zero when a Cache is provided", errors.Op("path.NewParser"),
			errors.KindInvalidArgument)
	}
	return nil
}

// Parser parses path strings and memoizes the results in a bounded cache it owns.
type Parser struct {
	cache Cache
}

// NewParser creates a Parser from the config. A nil config creates a Parser without cache.
func NewParser(config *ParserConfig) (*Parser, error) {
	if config == nil {
		config = &ParserConfig{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var cache Cache = NopCache{}
	switch {
	case config.Cache != nil:
		cache = config.Cache
	case config.CacheSize > 0:
		lru, err := NewLRUCache(config.CacheSize)
		if err != nil {
			return nil, err
		}
		cache = lru
	}

	return &Parser{cache: cache}, nil
}

var defaultParser = func() *Parser {
	parser, err := NewParser(&ParserConfig{CacheSize: DefaultCacheSize})
	if err != nil {
		panic(err)
	}
	return parser
}()

// Cache keys are prefixed by the kind of path so one cache can serve all path types.
const (
	treePathCachePrefix      = "t|"
	resultPathCachePrefix    = "r|"
	operationPathCachePrefix = "o|"
)

// ParseTreePath parses a TreePath such as "tp:/pets/dogs[0]/name" with the default parser.
func ParseTreePath(s string) (TreePath, error) {
	return defaultParser.ParseTreePath(s)
}

// ParseResultPath parses a ResultPath such as "gqlr:/pets/dogs[0]/name" with the default parser.
func ParseResultPath(s string) (ResultPath, error) {
	return defaultParser.ParseResultPath(s)
}

// ParseOperationPath parses an OperationPath such as "gqlo:/pets/dogs?filter=/breed" with the
// default parser.
func ParseOperationPath(s string) (OperationPath, error) {
	return defaultParser.ParseOperationPath(s)
}

// ParseTreePath parses a TreePath.
func (parser *Parser) ParseTreePath(s string) (TreePath, error) {
	key := treePathCachePrefix + s
	if cached, ok := parser.cache.Get(key); ok {
		return cached.(TreePath), nil
	}

	const op = errors.Op("path.ParseTreePath")
	scheme, rest, err := splitScheme(op, s)
	if err != nil {
		return TreePath{}, err
	}
	segments, err := parseSegments(op, s, rest)
	if err != nil {
		return TreePath{}, err
	}

	p := newTreePath(scheme, segments)
	parser.cache.Add(key, p)
	return p, nil
}

// ParseResultPath parses a ResultPath. A segment with a name and more than one index, such as
// "dogs[0][1]", yields a NamedListSegment followed by UnnamedListSegment's.
func (parser *Parser) ParseResultPath(s string) (ResultPath, error) {
	key := resultPathCachePrefix + s
	if cached, ok := parser.cache.Get(key); ok {
		return cached.(ResultPath), nil
	}

	const op = errors.Op("path.ParseResultPath")
	scheme, rest, err := splitScheme(op, s)
	if err != nil {
		return ResultPath{}, err
	}

	var segments []ElementSegment
	err = lexSegments(op, s, rest, func(seg lexedSegment) {
		indices := seg.indices
		if seg.hasName {
			if len(indices) == 0 {
				segments = append(segments, NamedSegment{Name: seg.name})
				return
			}
			segments = append(segments, NamedListSegment{Name: seg.name, Index: indices[0]})
			indices = indices[1:]
		}
		for _, index := range indices {
			segments = append(segments, UnnamedListSegment{Index: index})
		}
	})
	if err != nil {
		return ResultPath{}, err
	}

	p := newResultPath(scheme, segments)
	parser.cache.Add(key, p)
	return p, nil
}

// ParseOperationPath parses an OperationPath.
func (parser *Parser) ParseOperationPath(s string) (OperationPath, error) {
	key := operationPathCachePrefix + s
	if cached, ok := parser.cache.Get(key); ok {
		return cached.(OperationPath), nil
	}

	const op = errors.Op("path.ParseOperationPath")
	scheme, rest, err := splitScheme(op, s)
	if err != nil {
		return OperationPath{}, err
	}

	p := NewOperationPathWithScheme(scheme)

	// Names are percent-encoded so '#' and '?' only appear as delimiters.
	var argumentPart, directivePart string
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest, directivePart = rest[:i], rest[i+1:]
		if len(directivePart) == 0 {
			return OperationPath{}, errors.Newf(op, errors.KindSyntax, "missing directive name in %q", s)
		}
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, argumentPart = rest[:i], rest[i+1:]
		if len(argumentPart) == 0 {
			return OperationPath{}, errors.Newf(op, errors.KindSyntax, "missing argument name in %q", s)
		}
	}

	selection, err := parseSegments(op, s, rest)
	if err != nil {
		return OperationPath{}, err
	}

	var argument, directive *subPath
	if len(argumentPart) > 0 {
		if argument, err = parseSubPath(op, s, argumentPart); err != nil {
			return OperationPath{}, err
		}
	}
	if len(directivePart) > 0 {
		if directive, err = parseSubPath(op, s, directivePart); err != nil {
			return OperationPath{}, err
		}
	}

	p = p.with(selection, argument, directive)
	parser.cache.Add(key, p)
	return p, nil
}

// parseSubPath parses "name=/seg1/seg2" of an argument or a directive.
func parseSubPath(op errors.Op, input string, s string) (*subPath, error) {
	var rawName, rest string
	if i := strings.Index(s, "=/"); i >= 0 {
		rawName, rest = s[:i], s[i+1:]
	} else if strings.HasSuffix(s, "=") {
		rawName = s[:len(s)-1]
	} else {
		return nil, errors.Newf(op, errors.KindSyntax, `expect "=" after name %q in %q`, s, input)
	}

	name, err := url.PathUnescape(rawName)
	if err != nil {
		return nil, errors.New("invalid escape in name "+strconv.Quote(rawName), op, errors.KindSyntax, err)
	}
	if !ValidName(name) {
		return nil, errors.Newf(op, errors.KindSyntax, "blank name in %q", input)
	}

	segments, err := parseSegments(op, input, rest)
	if err != nil {
		return nil, err
	}
	return &subPath{name: name, segments: segments}, nil
}

// splitScheme splits "scheme:/rest" into "scheme" and "/rest".
func splitScheme(op errors.Op, s string) (scheme string, rest string, err error) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", "", errors.Newf(op, errors.KindSyntax, "missing scheme in %q", s)
	}
	return s[:i], s[i+1:], nil
}

// parseSegments parses "/seg1/seg2[0]" into tree segments. A segment with no name and several
// indices such as "[0][1]" yields one IndexSegment per index.
func parseSegments(op errors.Op, input string, s string) ([]Segment, error) {
	var segments []Segment
	err := lexSegments(op, input, s, func(seg lexedSegment) {
		switch {
		case seg.hasName && len(seg.indices) == 0:
			segments = append(segments, NameSegment{Name: seg.name})
		case seg.hasName:
			segments = append(segments, ListSegment{Name: seg.name, Indices: seg.indices})
		default:
			for _, index := range seg.indices {
				segments = append(segments, IndexSegment{Index: index})
			}
		}
	})
	return segments, err
}

// lexedSegment is the syntactic form of a segment: an optional name and zero or more indices.
type lexedSegment struct {
	name    string
	hasName bool
	indices []int
}

// lexSegments splits s on '/' and lexes each non-empty segment.
func lexSegments(op errors.Op, input string, s string, emit func(lexedSegment)) error {
	if len(s) == 0 {
		return nil
	}
	if s[0] != '/' {
		return errors.Newf(op, errors.KindSyntax, `path must start with "/" in %q`, input)
	}
	for _, raw := range strings.Split(s[1:], "/") {
		if len(raw) == 0 {
			continue
		}
		seg, err := lexSegment(op, input, raw)
		if err != nil {
			return err
		}
		emit(seg)
	}
	return nil
}

// lexSegment lexes "name", "name[0][1]" or "[0]".
func lexSegment(op errors.Op, input string, raw string) (lexedSegment, error) {
	var seg lexedSegment

	rawName := raw
	rest := ""
	if i := strings.IndexByte(raw, '['); i >= 0 {
		rawName, rest = raw[:i], raw[i:]
	}
	if strings.IndexByte(rawName, ']') >= 0 {
		return seg, errors.Newf(op, errors.KindSyntax,
			"end bracket without start bracket in segment %q of %q", raw, input)
	}

	if len(rawName) > 0 {
		name, err := url.PathUnescape(rawName)
		if err != nil {
			return seg, errors.New("invalid escape in segment "+strconv.Quote(raw), op, errors.KindSyntax, err)
		}
		if !ValidName(name) {
			return seg, errors.Newf(op, errors.KindSyntax, "blank name in segment %q of %q", raw, input)
		}
		seg.name, seg.hasName = name, true
	}

	for len(rest) > 0 {
		if rest[0] != '[' {
			return seg, errors.Newf(op, errors.KindSyntax,
				"unexpected characters %q after end bracket in segment %q of %q", rest, raw, input)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return seg, errors.Newf(op, errors.KindSyntax,
				"missing end bracket in segment %q of %q", raw, input)
		}
		content := rest[1:end]
		if len(content) == 0 {
			return seg, errors.Newf(op, errors.KindSyntax,
				"no index provided within brackets in segment %q of %q", raw, input)
		}
		index, err := strconv.Atoi(content)
		if err != nil || index < 0 || content[0] == '+' || content[0] == '-' {
			return seg, errors.Newf(op, errors.KindSyntax,
				"invalid index %q in segment %q of %q", content, raw, input)
		}
		seg.indices = append(seg.indices, index)
		rest = rest[end+1:]
	}

	return seg, nil
}
