// Package core: sentinel errors, the Edge and Dist value types, and the
// functional options applied at Graph construction.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation that requires a named vertex
	// referenced one that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a removal of an edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a vertex to itself; the engine
	// stores simple graphs only.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is a pair of node values: ordered From→To for directed graphs, an
// unordered pair (normalized by engine id) for undirected ones. Edge
// identity is structural; an Edge carries no lifecycle of its own.
type Edge[N comparable] struct {
	From N
	To   N
}

// Dist is an optional hop distance. Known reports whether any path exists;
// when it is false Hops is meaningless. Unreachable pairs are always
// reported this way, never as a numeric sentinel.
type Dist struct {
	Hops  int64
	Known bool
}

// config collects construction-time settings resolved from GraphOptions.
type config struct {
	directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(*config)

// WithDirected sets the graph's directedness (default undirected). The
// orientation is fixed for the graph's lifetime.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}
