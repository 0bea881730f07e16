// Package core_test: selector resolution policies — lenient single/anchor
// absence, all-or-nothing explicit lists, id-range semantics — and the
// Count/Select contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlio/dengraph/core"
	"github.com/vexlio/dengraph/engine"
)

func TestSelector_AllVerticesCoversGraph(t *testing.T) {
	g := chain(t) // 1–2–3–4
	got := g.Select(core.AllVertices[int]())

	assert.Len(t, got, g.VertexCount())
	seen := make(map[int]bool, len(got))
	for _, n := range got {
		assert.False(t, seen[n], "duplicate node %d in AllVertices selection", n)
		seen[n] = true
	}
	assert.Equal(t, 4, g.Count(core.AllVertices[int]()))
}

func TestSelector_NoVertices(t *testing.T) {
	g := chain(t)
	assert.Empty(t, g.Select(core.NoVertices[int]()))
	assert.Zero(t, g.Count(core.NoVertices[int]()))
}

func TestSelector_SingleVertexAbsentIsEmpty(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []int{3}, g.Select(core.Vertex(3)))
	assert.Empty(t, g.Select(core.Vertex(99)), "absent single resolves to no selection")
	assert.Zero(t, g.Count(core.Vertex(99)))
}

// TestSelector_ListAllOrNothing: one absent member collapses the whole list
// to the empty selection, identical to NoVertices.
func TestSelector_ListAllOrNothing(t *testing.T) {
	g := chain(t)

	assert.Equal(t, []int{1, 3, 4}, g.Select(core.VertexList(1, 3, 4)))

	withAbsent := core.VertexList(1, 3, 99)
	assert.Equal(t, g.Select(core.NoVertices[int]()), g.Select(withAbsent))
	assert.Equal(t, g.Count(core.NoVertices[int]()), g.Count(withAbsent))
}

func TestSelector_ListKeepsRequestOrderAndDropsDuplicates(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []int{4, 1, 3}, g.Select(core.VertexList(4, 1, 4, 3)))
}

func TestSelector_Adjacent(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []int{1, 3}, g.Select(core.Adjacent(2, engine.All)))
	assert.Equal(t, 2, g.Count(core.Adjacent(2, engine.All)))
	assert.Empty(t, g.Select(core.Adjacent(99, engine.All)), "absent anchor resolves to no selection")
}

func TestSelector_NonAdjacentExcludesAnchor(t *testing.T) {
	g := chain(t)
	// Neighbors of 2 are {1, 3}; 2 itself is excluded as well.
	assert.Equal(t, []int{4}, g.Select(core.NonAdjacent(2, engine.All)))
	assert.Equal(t, 1, g.Count(core.NonAdjacent(2, engine.All)))
}

func TestSelector_AdjacentDirectionModes(t *testing.T) {
	g, err := core.FromEdges([][2]int{{1, 2}, {2, 3}}, core.WithDirected(true))
	require.NoError(t, err)

	assert.Equal(t, []int{3}, g.Select(core.Adjacent(2, engine.Out)))
	assert.Equal(t, []int{1}, g.Select(core.Adjacent(2, engine.In)))
	assert.ElementsMatch(t, []int{1, 3}, g.Select(core.Adjacent(2, engine.All)))
}

func TestSelector_RangeAscendingByID(t *testing.T) {
	g := chain(t) // insertion order fixes ids: 1→0, 2→1, 3→2, 4→3
	assert.Equal(t, []int{2, 3, 4}, g.Select(core.VertexRange(2, 4)))
	assert.Equal(t, 3, g.Count(core.VertexRange(2, 4)))

	assert.Empty(t, g.Select(core.VertexRange(4, 2)), "inverted range is empty")
	assert.Empty(t, g.Select(core.VertexRange(1, 99)), "absent endpoint resolves to no selection")
}

// TestSelector_ResolutionIsSnapshotFree: a selector holds node values, so
// resolving the same selector after a mutation sees the new graph state.
func TestSelector_ResolutionIsSnapshotFree(t *testing.T) {
	g := chain(t)
	sel := core.Adjacent(3, engine.All)

	assert.Equal(t, []int{2, 4}, g.Select(sel))
	require.NoError(t, g.RemoveVertex(4))
	assert.Equal(t, []int{2}, g.Select(sel))
}
