// Package session provides sequential composition over a single Graph
// handle: a Session threads the handle through a chain of operations so
// callers get both each operation's effect and the updated handle without
// re-passing it by hand.
//
// Error handling is sticky, in the manner of bufio.Scanner: the first
// failing step records its error, every later step becomes a no-op, and
// Err (or End) surfaces that first error. This keeps chains total — a
// caller writes the whole sequence and checks once at the end.
//
// A Session wraps exactly one handle and is meant for strictly sequential
// use. Two Sessions must never interleave over the same handle from
// different goroutines: the operations themselves are serialized by the
// handle, but the chain's composition order would be meaningless.
package session

import (
	"cmp"

	"github.com/vexlio/dengraph/core"
)

// Session threads one Graph handle through a sequence of operations.
type Session[N cmp.Ordered] struct {
	g   *core.Graph[N]
	err error
}

// New starts a session over an existing handle.
func New[N cmp.Ordered](g *core.Graph[N]) *Session[N] {
	return &Session[N]{g: g}
}

// Open starts a session over a fresh empty graph built with opts.
func Open[N cmp.Ordered](opts ...core.GraphOption) *Session[N] {
	return &Session[N]{g: core.New[N](opts...)}
}

// Graph returns the current handle. Useful for read-only queries mid-chain;
// the handle reflects every step applied so far.
func (s *Session[N]) Graph() *core.Graph[N] { return s.g }

// Err returns the first error recorded by a step, or nil.
func (s *Session[N]) Err() error { return s.err }

// End terminates the chain, returning the threaded handle and the first
// step error. The handle is valid even on error for inspection, though its
// state after an engine failure is undefined and should be discarded.
func (s *Session[N]) End() (*core.Graph[N], error) { return s.g, s.err }

// AddVertex chains core.Graph.AddVertex.
func (s *Session[N]) AddVertex(node N) *Session[N] {
	return s.Do(func(g *core.Graph[N]) error { return g.AddVertex(node) })
}

// AddEdge chains core.Graph.AddEdge.
func (s *Session[N]) AddEdge(u, v N) *Session[N] {
	return s.Do(func(g *core.Graph[N]) error { return g.AddEdge(u, v) })
}

// RemoveEdge chains core.Graph.RemoveEdge.
func (s *Session[N]) RemoveEdge(u, v N) *Session[N] {
	return s.Do(func(g *core.Graph[N]) error { return g.RemoveEdge(u, v) })
}

// RemoveVertex chains core.Graph.RemoveVertex.
func (s *Session[N]) RemoveVertex(node N) *Session[N] {
	return s.Do(func(g *core.Graph[N]) error { return g.RemoveVertex(node) })
}

// Do applies an arbitrary step to the threaded handle. Skipped if an
// earlier step failed.
func (s *Session[N]) Do(step func(*core.Graph[N]) error) *Session[N] {
	if s.err != nil {
		return s
	}
	s.err = step(s.g)

	return s
}

// Run evaluates a query against the session's current handle, pairing the
// result with the session's error state. A sticky error short-circuits the
// query and is returned with the zero result.
func Run[N cmp.Ordered, T any](s *Session[N], op func(*core.Graph[N]) (T, error)) (T, error) {
	var zero T
	if s.err != nil {
		return zero, s.err
	}

	return op(s.g)
}
