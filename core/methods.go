// Package core: read-only queries on the Graph handle.
//
// Queries referencing an unknown node degrade to an empty or false result
// rather than erroring; callers that need strict behavior use the path
// operations in algorithms.go.

package core

import "github.com/vexlio/dengraph/engine"

// VertexCount returns the number of vertices. O(1).
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids.Len()
}

// EdgeCount returns the number of edges, each undirected edge counted once.
// Complexity: O(E).
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.eng.EdgeCount()
}

// HasVertex reports whether node is in the graph. O(log V).
func (g *Graph[N]) HasVertex(node N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids.Has(node)
}

// HasEdge reports whether the edge u→v exists, honoring orientation for
// directed graphs. Unknown endpoints report false. O(log V).
func (g *Graph[N]) HasEdge(u, v N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	uid, uok := g.ids.IDOf(u)
	vid, vok := g.ids.IDOf(v)

	return uok && vok && g.eng.HasEdge(uid, vid)
}

// Vertices returns all node values in ascending node order. O(V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids.Nodes()
}

// Edges returns all edges translated to node values, in the engine's
// deterministic id order. Complexity: O(E log E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pairs := g.eng.Edges()
	out := make([]Edge[N], len(pairs))
	for i, p := range pairs {
		out[i] = Edge[N]{From: g.ids.NodeOf(p[0]), To: g.ids.NodeOf(p[1])}
	}

	return out
}

// Neighbors returns the nodes adjacent to node under mode, in ascending
// engine-id order. An unknown node yields an empty slice.
// Complexity: O(deg log deg).
func (g *Graph[N]) Neighbors(node N, mode engine.Dir) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids.IDOf(node)
	if !ok {
		return nil
	}

	return g.toNodes(g.eng.Neighbors(id, mode))
}

// Degree returns the number of nodes adjacent to node under mode; 0 for an
// unknown node. Complexity: O(deg).
func (g *Graph[N]) Degree(node N, mode engine.Dir) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids.IDOf(node)
	if !ok {
		return 0
	}

	return g.eng.Degree(id, mode)
}

// toNodes translates engine ids to node values, preserving order.
// Caller holds at least the read lock.
func (g *Graph[N]) toNodes(ids []int64) []N {
	if len(ids) == 0 {
		return nil
	}
	out := make([]N, len(ids))
	for i, id := range ids {
		out[i] = g.ids.NodeOf(id)
	}

	return out
}
