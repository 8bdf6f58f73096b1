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

package graph

import (
	"runtime"

	"github.com/botobag/funcify/errors"
)

// DefaultParallelThreshold is the default Config.ParallelThreshold.
const DefaultParallelThreshold = 4096

// Config contains options to configure the algorithms run on a graph.
type Config struct {
	// The maximum number of goroutines scanning edge keys for cycles (required, must be greater than
	// 0)
	Parallelism uint32

	// The minimum number of edge keys for which cycle scans run in parallel. Smaller graphs are
	// scanned by the calling goroutine.
	ParallelThreshold int
}

// DefaultConfig returns the config used when the Builder isn't given one.
func DefaultConfig() *Config {
	return &Config{
		Parallelism:       uint32(runtime.GOMAXPROCS(-1)),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Validate verifies config values.
func (config *Config) Validate() error {
	if config.Parallelism == 0 {
		return errors.New(`Parallelism must be a non-zero value which specifies the maximum number of `+
			`goroutines to scan a graph. If you have no idea, try to set the value to `+
			`uint32(runtime.GOMAXPROCS(-1)).`, errors.Op("graph.Config.Validate"), errors.KindInvalidArgument)
	}
	if config.ParallelThreshold < 0 {
		return errors.Newf("graph.Config.Validate", errors.KindInvalidArgument,
			"ParallelThreshold (%d) must not be negative", config.ParallelThreshold)
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Builder
//===----------------------------------------------------------------------------------------====//

// Builder selects the direction and the representation of an empty PersistentGraph. Graphs are
// directed with a single edge per pair unless specified otherwise.
type Builder[P any, V any, E comparable] struct {
	compare        func(a, b P) int
	directed       bool
	representation Representation
	config         *Config
}

// NewBuilder creates a Builder for graphs whose points are ordered by compare.
func NewBuilder[P any, V any, E comparable](compare func(a, b P) int) *Builder[P, V, E] {
	return &Builder[P, V, E]{
		compare:        compare,
		directed:       true,
		representation: SingleEdgePerPair,
	}
}

// Directed makes the graph directed.
func (builder *Builder[P, V, E]) Directed() *Builder[P, V, E] {
	builder.directed = true
	return builder
}

// Undirected makes the graph undirected.
func (builder *Builder[P, V, E]) Undirected() *Builder[P, V, E] {
	builder.directed = false
	return builder
}

// PermitParallelEdges selects ParallelEdgesPerPair.
func (builder *Builder[P, V, E]) PermitParallelEdges() *Builder[P, V, E] {
	builder.representation = ParallelEdgesPerPair
	return builder
}

// SingleEdgePerPair selects SingleEdgePerPair.
func (builder *Builder[P, V, E]) SingleEdgePerPair() *Builder[P, V, E] {
	builder.representation = SingleEdgePerPair
	return builder
}

// Config sets the config of the graph.
func (builder *Builder[P, V, E]) Config(config *Config) *Builder[P, V, E] {
	builder.config = config
	return builder
}

func (builder *Builder[P, V, E]) validatedConfig() (*Config, error) {
	if builder.compare == nil {
		return nil, errors.New("a point comparison function is required", errors.Op("graph.Builder.Build"),
			errors.KindInvalidArgument)
	}
	config := builder.config
	if config == nil {
		return DefaultConfig(), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	copied := *config
	return &copied, nil
}

// Build returns an empty graph.
func (builder *Builder[P, V, E]) Build() (PersistentGraph[P, V, E], error) {
	config, err := builder.validatedConfig()
	if err != nil {
		return PersistentGraph[P, V, E]{}, err
	}
	return PersistentGraph[P, V, E]{
		design: &emptyDesign[P, V, E]{
			traits: newTraits(builder.compare, builder.directed),
		},
		target: builder.representation,
		config: config,
	}, nil
}

// MustBuild is a convenience function equivalent to Build but panics on failure instead of
// returning an error.
func (builder *Builder[P, V, E]) MustBuild() PersistentGraph[P, V, E] {
	g, err := builder.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// FromData returns a graph whose design starts from materialized data. The graph keeps the
// representation of the data.
func FromData[P any, V any, E comparable](d GraphData[P, V, E], config *Config) (PersistentGraph[P, V, E], error) {
	if config == nil {
		config = DefaultConfig()
	} else if err := config.Validate(); err != nil {
		return PersistentGraph[P, V, E]{}, err
	}
	return PersistentGraph[P, V, E]{
		design: &dataDesign[P, V, E]{data: d},
		target: d.Representation(),
		config: config,
	}, nil
}
