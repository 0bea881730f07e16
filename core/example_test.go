package core_test

import (
	"fmt"

	"github.com/vexlio/dengraph/core"
	"github.com/vexlio/dengraph/engine"
)

// ExampleFromEdges builds a small road network and finds a minimum-hop
// route between two towns.
func ExampleFromEdges() {
	g, _ := core.FromEdges([][2]string{
		{"avon", "bray"},
		{"bray", "cley"},
		{"cley", "dent"},
	})

	route, hops, _ := g.ShortestPath("avon", "cley", engine.All)
	fmt.Println(route, len(hops))
	// Output: [avon bray cley] 2
}

// ExampleGraph_Select shows selector resolution policies: an explicit list
// resolves all-or-nothing, while a single absent vertex is simply empty.
func ExampleGraph_Select() {
	g, _ := core.FromEdges([][2]int{{1, 2}, {2, 3}})

	fmt.Println(g.Select(core.VertexList(1, 3)))
	fmt.Println(g.Select(core.VertexList(1, 99)))
	fmt.Println(g.Select(core.Vertex(99)))
	// Output:
	// [1 3]
	// []
	// []
}

// ExampleGraph_Subgraph extracts an induced subgraph; the child owns its
// own engine resource and identity map.
func ExampleGraph_Subgraph() {
	g, _ := core.FromEdges([][2]int{{1, 2}, {2, 3}, {3, 4}})

	sub, _ := g.Subgraph(core.VertexList(2, 3, 4))
	fmt.Println(sub.Vertices(), sub.EdgeCount())
	// Output: [2 3 4] 2
}
