// Package core: Graph construction and mutating operations.
//
// Every mutator holds the write lock across both the engine call and the
// identity-map update, so the 1:1 correspondence between the two is never
// observably broken. A divergence between them cannot be
// produced by public operations; if one is ever detected it panics as a
// programming defect rather than surfacing as a recoverable error.

package core

import (
	"cmp"
	"errors"
	"fmt"
	"sync"

	"github.com/vexlio/dengraph/engine"
	"github.com/vexlio/dengraph/idmap"
)

// Graph is a typed handle over an engine-side graph. It owns the engine
// resource and the node↔id identity map, and is the unit of sequential
// composition: operations consume and update the same handle.
type Graph[N cmp.Ordered] struct {
	mu       sync.RWMutex
	directed bool
	ids      *idmap.Map[N]
	eng      engine.Engine
}

// New creates an empty Graph. Undirected unless WithDirected(true) is given.
// Complexity: O(1).
func New[N cmp.Ordered](opts ...GraphOption) *Graph[N] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Graph[N]{
		directed: c.directed,
		ids:      idmap.New[N](),
		eng:      engine.New(c.directed),
	}
}

// FromEdges builds a Graph incrementally from endpoint pairs, inserting any
// endpoint not yet present. Pair order fixes the id assignment order, so
// the same input always produces the same identity map.
// Complexity: O(len(pairs) · log V).
func FromEdges[N cmp.Ordered](pairs [][2]N, opts ...GraphOption) (*Graph[N], error) {
	g := New[N](opts...)
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("core: from edges %v→%v: %w", p[0], p[1], err)
		}
	}

	return g, nil
}

// newFrom wraps an engine produced by subgraph extraction together with the
// identity map freshly built for it.
func newFrom[N cmp.Ordered](directed bool, ids *idmap.Map[N], eng engine.Engine) *Graph[N] {
	return &Graph[N]{directed: directed, ids: ids, eng: eng}
}

// Directed reports the orientation fixed at construction. O(1).
func (g *Graph[N]) Directed() bool { return g.directed }

// AddVertex inserts node as an isolated vertex. Inserting a node that is
// already present is a no-op. Complexity: O(log V).
func (g *Graph[N]) AddVertex(node N) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(node)

	return nil
}

// AddEdge inserts the edge u→v (an unordered pair for undirected graphs),
// first inserting either endpoint that is not yet present. Adding an edge
// that already exists is a no-op. Returns ErrSelfLoop for u == v, checked
// before any endpoint is inserted so a rejected call mutates nothing.
// Complexity: O(log V).
func (g *Graph[N]) AddEdge(u, v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v {
		return fmt.Errorf("%w: %v", ErrSelfLoop, u)
	}
	uid := g.ensure(u)
	vid := g.ensure(v)
	if err := g.eng.AddEdge(uid, vid); err != nil {
		return fmt.Errorf("core: add edge %v→%v: %w", u, v, err)
	}

	return nil
}

// RemoveEdge deletes the edge u→v. Returns ErrEdgeNotFound if either
// endpoint is absent or no such edge exists. Complexity: O(log V).
func (g *Graph[N]) RemoveEdge(u, v N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	uid, uok := g.ids.IDOf(u)
	vid, vok := g.ids.IDOf(v)
	if !uok || !vok {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, u, v)
	}
	if err := g.eng.RemoveEdge(uid, vid); err != nil {
		if errors.Is(err, engine.ErrNoEdge) {
			return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, u, v)
		}

		return fmt.Errorf("core: remove edge %v→%v: %w", u, v, err)
	}

	return nil
}

// RemoveVertex deletes node together with all incident edges. The engine
// renumbers every greater id down by one and the identity map mirrors that
// shift within the same critical section, restoring the [0, n) density
// invariant before the handle is observable again.
// Returns ErrVertexNotFound if node is absent.
// Complexity: O(V + E) for the engine rebuild plus O(V log V) renumbering.
func (g *Graph[N]) RemoveVertex(node N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.ids.IDOf(node)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, node)
	}
	if err := g.eng.RemoveVertex(id); err != nil {
		return fmt.Errorf("core: remove vertex %v: %w", node, err)
	}
	if _, err := g.ids.Remove(node); err != nil {
		// The id was just looked up under the same lock; failing here means
		// the map and the engine diverged, which no public operation allows.
		panic(fmt.Sprintf("core: identity map diverged from engine: %v", err))
	}

	return nil
}

// Clone returns a deep, independently owned copy of the graph: a fresh
// engine resource and a fresh identity map assigning the same ids.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() (*Graph[N], error) {
	return g.Subgraph(AllVertices[N]())
}

// Close releases the engine resource. The handle must not be used
// afterwards. A second Close returns engine.ErrClosed.
func (g *Graph[N]) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.eng.Close()
}

// newIdentity builds the identity map for a subgraph extracted with the
// given parent ids: the i-th parent id's node value takes subgraph id i.
// Caller holds at least the parent's read lock.
func newIdentity[N cmp.Ordered](g *Graph[N], ids []int64) *idmap.Map[N] {
	fresh := idmap.New[N]()
	for _, id := range ids {
		if _, err := fresh.Insert(g.ids.NodeOf(id)); err != nil {
			panic(fmt.Sprintf("core: identity map diverged from engine: %v", err))
		}
	}

	return fresh
}

// ensure returns node's id, inserting it into both the engine and the
// identity map if absent. Caller holds the write lock.
func (g *Graph[N]) ensure(node N) int64 {
	if id, ok := g.ids.IDOf(node); ok {
		return id
	}
	id := g.eng.AddVertex()
	mid, err := g.ids.Insert(node)
	if err != nil || mid != id {
		panic(fmt.Sprintf("core: identity map diverged from engine: id %d vs %d (%v)", mid, id, err))
	}

	return id
}
