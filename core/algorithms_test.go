// Package core_test: algorithm delegation — the per-operation absence
// policies (lenient vs strict), id↔node translation of engine results, and
// independence of extracted subgraphs.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlio/dengraph/core"
	"github.com/vexlio/dengraph/engine"
)

func TestAreConnected_AdjacencySemantics(t *testing.T) {
	g := chain(t) // 1–2–3–4

	assert.True(t, g.AreConnected(1, 2))
	assert.False(t, g.AreConnected(1, 3), "adjacency, not reachability")
	assert.False(t, g.AreConnected(2, 2), "no self-loops, so a vertex is not adjacent to itself")
	assert.False(t, g.AreConnected(1, 99), "absent endpoint is lenient false")
}

// TestShortestPath_Chain is the canonical scenario: edges (1,2),(2,3),(3,4)
// on an undirected graph; the 1→4 path visits every vertex and 3 edges.
func TestShortestPath_Chain(t *testing.T) {
	g := chain(t)

	nodes, edges, err := g.ShortestPath(1, 4, engine.All)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, nodes)
	require.Len(t, edges, 3)
	assert.Equal(t, []core.Edge[int]{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}, edges)
}

func TestShortestPath_AbsentEndpointIsStrict(t *testing.T) {
	g := chain(t)

	_, _, err := g.ShortestPath(1, 99, engine.All)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = g.ShortestPath(99, 1, engine.All)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, err := core.FromEdges([][2]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	nodes, edges, err := g.ShortestPath(1, 4, engine.All)
	require.NoError(t, err, "unreachable is not an error, both endpoints exist")
	assert.Empty(t, nodes)
	assert.Empty(t, edges)
}

func TestShortestPath_DirectedModes(t *testing.T) {
	g, err := core.FromEdges([][2]int{{1, 2}, {2, 3}}, core.WithDirected(true))
	require.NoError(t, err)

	nodes, _, err := g.ShortestPath(3, 1, engine.Out)
	require.NoError(t, err)
	assert.Empty(t, nodes, "cannot walk against the arrows in Out mode")

	nodes, _, err = g.ShortestPath(3, 1, engine.In)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, nodes)
}

// TestDistances_DisconnectedComponents: components {1,2} and {3,4}; the
// table is dense over AllVertices×AllVertices with unknown distances for
// cross-component pairs and 0 on the diagonal.
func TestDistances_DisconnectedComponents(t *testing.T) {
	g, err := core.FromEdges([][2]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	all := core.AllVertices[int]()
	table, err := g.Distances(all, all, engine.All)
	require.NoError(t, err)
	require.Len(t, table, 4)

	component := map[int]int{1: 0, 2: 0, 3: 1, 4: 1}
	for _, u := range g.Select(all) {
		require.Len(t, table[u], 4, "dense row for %d", u)
		for _, v := range g.Select(all) {
			d := table[u][v]
			switch {
			case u == v:
				assert.Equal(t, core.Dist{Hops: 0, Known: true}, d)
			case component[u] == component[v]:
				assert.Equal(t, core.Dist{Hops: 1, Known: true}, d)
			default:
				assert.False(t, d.Known, "cross-component (%d,%d) must be unknown", u, v)
			}
		}
	}
}

func TestDistances_SelectorKeys(t *testing.T) {
	g := chain(t)

	table, err := g.Distances(core.VertexList(1, 4), core.Vertex(3), engine.All)
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, core.Dist{Hops: 2, Known: true}, table[1][3])
	assert.Equal(t, core.Dist{Hops: 1, Known: true}, table[4][3])
}

func TestSubcomponent(t *testing.T) {
	g, err := core.FromEdges([][2]int{{1, 2}, {2, 3}}, core.WithDirected(true))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, g.Subcomponent(2, engine.Out))
	assert.Equal(t, []int{1, 2}, g.Subcomponent(2, engine.In))
	assert.Equal(t, []int{1, 2, 3}, g.Subcomponent(2, engine.All))
	assert.Empty(t, g.Subcomponent(99, engine.All), "absent node is lenient")
}

// TestSubgraph_IndependentIdentity extracts {1,3,4} from the post-deletion
// chain and checks the child's identity map and engine share nothing with
// the parent.
func TestSubgraph_IndependentIdentity(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.RemoveVertex(2))

	sub, err := g.Subgraph(core.VertexList(1, 3, 4))
	require.NoError(t, err)

	assert.Equal(t, 3, sub.VertexCount())
	assert.Equal(t, []int{1, 3, 4}, sub.Vertices())
	assert.True(t, sub.HasEdge(3, 4), "induced edge survives extraction")
	assert.False(t, sub.HasEdge(1, 3))

	// Mutating the subgraph must not affect the parent, and vice versa.
	require.NoError(t, sub.RemoveVertex(3))
	assert.True(t, g.HasVertex(3))
	require.NoError(t, g.AddEdge(1, 3))
	assert.False(t, sub.HasVertex(3))
}

func TestSubgraph_OfListWithAbsentMemberIsEmpty(t *testing.T) {
	g := chain(t)
	sub, err := g.Subgraph(core.VertexList(1, 99))
	require.NoError(t, err)
	assert.Equal(t, 0, sub.VertexCount(), "all-or-nothing list yields the empty subgraph")
}

func TestIsConnected(t *testing.T) {
	g := chain(t)
	assert.True(t, g.IsConnected(engine.Weak))

	require.NoError(t, g.RemoveVertex(2))
	assert.False(t, g.IsConnected(engine.Weak), "1 is isolated after the cut")

	d, err := core.FromEdges([][2]int{{1, 2}, {2, 3}, {3, 1}}, core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, d.IsConnected(engine.Strong))

	require.NoError(t, d.RemoveEdge(3, 1))
	assert.True(t, d.IsConnected(engine.Weak))
	assert.False(t, d.IsConnected(engine.Strong))
}
