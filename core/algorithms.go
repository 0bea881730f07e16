// Package core: algorithm delegation — thin per-operation translation
// between node values and the engine's id space.
//
// Each function here resolves its node or selector arguments immediately
// before the engine call and translates the engine's id results back, all
// inside one critical section so the identity map used for translation is
// the one the engine computed against.

package core

import (
	"fmt"
	"math"

	"github.com/vexlio/dengraph/engine"
)

// AreConnected reports whether the edge u→v exists, honoring orientation
// for directed graphs. Adjacency here requires an actual edge: a vertex is
// NOT connected to itself unless a self-loop could exist, and since the
// engine rejects self-loops, AreConnected(n, n) is always false.
// Unknown endpoints report false, never an error.
// Complexity: O(log V).
func (g *Graph[N]) AreConnected(u, v N) bool {
	return g.HasEdge(u, v)
}

// ShortestPath returns a minimum-hop path from u to v under mode, as the
// node sequence including both endpoints plus the traversed edges. Unlike
// the lenient membership queries, a path between named endpoints is
// meaningless if either is absent, so that case fails with
// ErrVertexNotFound. An unreachable v yields empty slices and a nil error.
// Complexity: O((V + E) log V).
func (g *Graph[N]) ShortestPath(u, v N, mode engine.Dir) ([]N, []Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	uid, ok := g.ids.IDOf(u)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	vid, ok := g.ids.IDOf(v)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	ids, err := g.eng.ShortestPath(uid, vid, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("core: shortest path %v→%v: %w", u, v, err)
	}
	nodes := g.toNodes(ids)
	var edges []Edge[N]
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, Edge[N]{From: nodes[i-1], To: nodes[i]})
	}

	return nodes, edges, nil
}

// Distances computes the hop-distance table between the vertices designated
// by from and those designated by to, under mode. The table is dense: its
// outer keys are exactly Select(from) and every inner map has an entry for
// each vertex of Select(to). Unreachable pairs carry Dist{Known: false};
// the diagonal carries Dist{Hops: 0, Known: true}.
// Complexity: O(|from| · (V + E) log V).
func (g *Graph[N]) Distances(from, to Selector[N], mode engine.Dir) (map[N]map[N]Dist, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fromIDs := g.eng.Enumerate(g.resolve(from))
	toIDs := g.eng.Enumerate(g.resolve(to))

	matrix, err := g.eng.Distances(fromIDs, toIDs, mode)
	if err != nil {
		return nil, fmt.Errorf("core: distances: %w", err)
	}

	table := make(map[N]map[N]Dist, len(fromIDs))
	for i, uid := range fromIDs {
		row := make(map[N]Dist, len(toIDs))
		for j, vid := range toIDs {
			w := matrix[i][j]
			if math.IsInf(w, 1) {
				row[g.ids.NodeOf(vid)] = Dist{}

				continue
			}
			row[g.ids.NodeOf(vid)] = Dist{Hops: int64(w), Known: true}
		}
		table[g.ids.NodeOf(uid)] = row
	}

	return table, nil
}

// Subcomponent returns the nodes reachable from node under mode, including
// node itself, in ascending engine-id order. An unknown node yields an
// empty slice. Complexity: O(V + E).
func (g *Graph[N]) Subcomponent(node N, mode engine.Dir) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.ids.IDOf(node)
	if !ok {
		return nil
	}

	return g.toNodes(g.eng.Subcomponent(id, mode))
}

// Subgraph extracts the subgraph induced by the vertices sel designates
// into a new, independently owned Graph. The result's identity map is
// freshly built from the engine's output order — the subgraph's ids are
// dense from 0 and unrelated to the parent's — and its engine resource
// shares no state with the parent, so mutating one never affects the other.
// Complexity: O(V + E).
func (g *Graph[N]) Subgraph(sel Selector[N]) (*Graph[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.eng.Enumerate(g.resolve(sel))
	sub, err := g.eng.Subgraph(ids)
	if err != nil {
		return nil, fmt.Errorf("core: subgraph: %w", err)
	}

	fresh := newIdentity(g, ids)

	return newFrom(g.directed, fresh, sub), nil
}

// IsConnected reports whether the graph is connected under c. Strong is
// meaningful only for directed graphs; on undirected ones both notions
// coincide. Graphs with fewer than two vertices are connected by
// convention. Complexity: O(V + E).
func (g *Graph[N]) IsConnected(c engine.Connectedness) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.eng.Connected(c)
}
