// Package scc types and options for Kosaraju decomposition.
package scc

import (
	"context"
	"errors"

	"github.com/mkarulin/socgraph/digraph"
)

// ErrNilGraph is returned when a nil *digraph.Graph is passed to Decompose.
var ErrNilGraph = errors.New("scc: graph is nil")

// Option configures optional behavior of Decompose.
type Option func(*options)

// options holds settings for Decompose, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result captures the outcome of an SCC decomposition.
type Result struct {
	// Components holds one induced subgraph per SCC, in the order the
	// components were discovered during pass 2 (reverse finish order roots).
	// Component vertex sets are pairwise disjoint and cover the whole graph.
	Components []*digraph.Graph

	// ComponentOf maps every vertex id to the index of its component in
	// Components.
	ComponentOf map[int64]int
}
