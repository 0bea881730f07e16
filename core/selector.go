// Package core: declarative vertex selectors and their resolution.
//
// A Selector describes "which vertices" in node-value terms and stays
// unresolved until applied against a specific Graph's identity map, at
// which point it becomes an engine-native Selection holding integer ids.
// Resolution is a pure function of (selector, identity map); it never
// mutates the graph.
//
// Absence policy during resolution:
//
//	– Vertex / Adjacent / NonAdjacent with an unknown anchor resolve to the
//	  empty selection: "no selection" rather than an error keeps selector
//	  composition total.
//	– VertexList resolves all-or-nothing: one unknown member collapses the
//	  whole list to the empty selection, so a caller can never silently
//	  receive a smaller selection than requested.
//	– VertexRange with either endpoint unknown resolves to the empty
//	  selection.

package core

import (
	"cmp"

	"github.com/vexlio/dengraph/engine"
)

// selKind tags the variant held by a Selector.
type selKind uint8

const (
	selNone selKind = iota
	selAll
	selSingle
	selAdjacent
	selNonAdjacent
	selList
	selRange
)

// Selector is an unresolved, declarative vertex selection over node values.
// The zero value selects no vertices. Selectors are immutable and may be
// reused across graphs; the graph only matters at resolution time.
type Selector[N cmp.Ordered] struct {
	kind     selKind
	node     N          // selSingle / selAdjacent / selNonAdjacent
	nodes    []N        // selList
	from, to N          // selRange endpoints
	dir      engine.Dir // selAdjacent / selNonAdjacent
}

// AllVertices selects every vertex of the graph it is resolved against.
func AllVertices[N cmp.Ordered]() Selector[N] { return Selector[N]{kind: selAll} }

// NoVertices selects nothing.
func NoVertices[N cmp.Ordered]() Selector[N] { return Selector[N]{kind: selNone} }

// Vertex selects the single given node, or nothing if it is absent.
func Vertex[N cmp.Ordered](node N) Selector[N] {
	return Selector[N]{kind: selSingle, node: node}
}

// Adjacent selects the vertices adjacent to node under mode, or nothing if
// node is absent. Mode is ignored for undirected graphs.
func Adjacent[N cmp.Ordered](node N, mode engine.Dir) Selector[N] {
	return Selector[N]{kind: selAdjacent, node: node, dir: mode}
}

// NonAdjacent selects the vertices that are neither node itself nor
// adjacent to it under mode, or nothing if node is absent.
func NonAdjacent[N cmp.Ordered](node N, mode engine.Dir) Selector[N] {
	return Selector[N]{kind: selNonAdjacent, node: node, dir: mode}
}

// VertexList selects exactly the given nodes, all-or-nothing: if any is
// absent at resolution time the whole selection is empty. Duplicates are
// dropped, keeping the first occurrence's position.
func VertexList[N cmp.Ordered](nodes ...N) Selector[N] {
	return Selector[N]{kind: selList, nodes: nodes}
}

// VertexRange selects the vertices whose engine ids lie in the contiguous
// inclusive range [id(from), id(to)], enumerated ascending by id. Either
// endpoint being absent, or an inverted range, selects nothing.
func VertexRange[N cmp.Ordered](from, to N) Selector[N] {
	return Selector[N]{kind: selRange, from: from, to: to}
}

// Resolve translates sel into the engine's id space using the graph's
// current identity map. Resolution is lenient: unknown references yield the
// empty selection per the package's absence policy, never an error.
// Complexity: O(k log V), k = number of node references in sel.
func (g *Graph[N]) Resolve(sel Selector[N]) engine.Selection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolve(sel)
}

// resolve is Resolve without locking. Caller holds at least the read lock.
func (g *Graph[N]) resolve(sel Selector[N]) engine.Selection {
	switch sel.kind {
	case selAll:
		return engine.SelectAll()
	case selSingle:
		id, ok := g.ids.IDOf(sel.node)
		if !ok {
			return engine.SelectNone()
		}

		return engine.SelectIDs(id)
	case selAdjacent:
		id, ok := g.ids.IDOf(sel.node)
		if !ok {
			return engine.SelectNone()
		}

		return engine.SelectAdjacent(id, sel.dir)
	case selNonAdjacent:
		id, ok := g.ids.IDOf(sel.node)
		if !ok {
			return engine.SelectNone()
		}

		return engine.SelectNonAdjacent(id, sel.dir)
	case selList:
		ids := make([]int64, 0, len(sel.nodes))
		seen := make(map[int64]struct{}, len(sel.nodes))
		for _, n := range sel.nodes {
			id, ok := g.ids.IDOf(n)
			if !ok {
				return engine.SelectNone() // all-or-nothing
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}

		return engine.SelectIDs(ids...)
	case selRange:
		lo, lok := g.ids.IDOf(sel.from)
		hi, hok := g.ids.IDOf(sel.to)
		if !lok || !hok {
			return engine.SelectNone()
		}

		return engine.SelectRange(lo, hi)
	default: // selNone
		return engine.SelectNone()
	}
}

// Count returns the number of vertices sel designates on this graph,
// without materializing the selection where the kind permits.
func (g *Graph[N]) Count(sel Selector[N]) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.eng.Count(g.resolve(sel))
}

// Select materializes the vertices sel designates as node values. Order is
// the engine's enumeration order over the resolved selection: ascending by
// id for all/range/adjacency kinds, list order for explicit lists. Callers
// must not rely on a particular relative order across selector kinds.
func (g *Graph[N]) Select(sel Selector[N]) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.toNodes(g.eng.Enumerate(g.resolve(sel)))
}
