// Package build provides deterministic topology constructors over
// core.Graph: path, cycle, complete and star graphs. They exist mostly to
// assemble fixtures and demos in one call with a fixed id-assignment
// order, so the same parameters always produce the same identity map.
//
// Contract shared by all constructors:
//
//	– Vertices are created in ascending index order 0..n-1 through the
//	  supplied IDFunc, which fixes the engine ids deterministically.
//	– Edges are emitted in a stable documented order.
//	– Parameter violations return sentinel errors; constructors never panic.
package build

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/vexlio/dengraph/core"
)

// ErrTooFewVertices indicates a vertex count below the topology's minimum.
var ErrTooFewVertices = errors.New("build: too few vertices")

// Minimum vertex counts per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
)

// IDFunc maps a vertex index in 0..n-1 to its node value. It must be
// injective over the indexes used; a colliding IDFunc folds vertices
// together silently.
type IDFunc[N cmp.Ordered] func(i int) N

// Seq returns an IDFunc producing consecutive ints starting at base.
func Seq(base int) IDFunc[int] {
	return func(i int) int { return base + i }
}

// Path builds the path graph id(0)–id(1)–…–id(n-1), edges emitted in
// increasing index order. Requires n ≥ 2.
func Path[N cmp.Ordered](n int, id IDFunc[N], opts ...core.GraphOption) (*core.Graph[N], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("build: Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	g := core.New[N](opts...)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(i-1), id(i)); err != nil {
			return nil, fmt.Errorf("build: Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph on n vertices: the path edges plus the
// closing edge id(n-1)→id(0). Requires n ≥ 3.
func Cycle[N cmp.Ordered](n int, id IDFunc[N], opts ...core.GraphOption) (*core.Graph[N], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("build: Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	g, err := Path(n, id, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(id(n-1), id(0)); err != nil {
		return nil, fmt.Errorf("build: Cycle: %w", err)
	}

	return g, nil
}

// Complete builds the complete graph K_n: one edge per index pair i<j,
// oriented id(i)→id(j) when the graph is directed. Requires n ≥ 1.
func Complete[N cmp.Ordered](n int, id IDFunc[N], opts ...core.GraphOption) (*core.Graph[N], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("build: Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	g := core.New[N](opts...)
	if err := g.AddVertex(id(0)); err != nil {
		return nil, fmt.Errorf("build: Complete: %w", err)
	}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if err := g.AddEdge(id(i), id(j)); err != nil {
				return nil, fmt.Errorf("build: Complete: %w", err)
			}
		}
	}

	return g, nil
}

// Star builds the star graph with center id(0) and leaves id(1)..id(n-1),
// edges oriented center→leaf when the graph is directed. Requires n ≥ 2.
func Star[N cmp.Ordered](n int, id IDFunc[N], opts ...core.GraphOption) (*core.Graph[N], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("build: Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	g := core.New[N](opts...)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(0), id(i)); err != nil {
			return nil, fmt.Errorf("build: Star: %w", err)
		}
	}

	return g, nil
}
