// Package dengraph is a typed front door to an integer-indexed
// graph-algorithms engine.
//
// 🚀 What is dengraph?
//
//	A thin, deterministic wrapper layer that lets you work with graphs of
//	arbitrary ordered node values while a vertex-indexed engine does the
//	actual storage and algorithm work:
//		• Identity mapping: node values ↔ dense engine ids in [0, n)
//		• Graph handle: owns the engine resource, directed or undirected
//		• Selectors: declarative vertex selections (all, single, adjacent,
//		  explicit list, contiguous range) resolved against the handle
//		• Delegation: shortest paths, distance tables, reachability,
//		  connectivity and induced subgraphs, translated back to node values
//		• Sessions: sequential chaining of operations over one handle
//
// ✨ Why dengraph?
//
//   - The engine speaks dense integer ids; your code never has to.
//   - Every public operation leaves the id mapping and the engine's vertex
//     set in exact 1:1 correspondence, including renumbering after deletes.
//   - Absence is handled per operation: membership-style queries degrade to
//     empty results, path queries between named endpoints fail loudly.
//
// The module is organized into small per-concern packages:
//
//	idmap/   — bidirectional node↔id map with the density invariant
//	engine/  — the engine boundary and its gonum-backed implementation
//	core/    — Graph handle, vertex selectors, algorithm delegation
//	session/ — sequential composition over a single handle
//	build/   — deterministic topology constructors for fixtures and demos
//
// Quick ASCII example:
//
//	    1───2
//	        │
//	    4───3
//
//	g, _ := core.FromEdges([][2]int{{1, 2}, {2, 3}, {3, 4}})
//	nodes, edges, _ := g.ShortestPath(1, 4, engine.All)
//	// nodes == [1 2 3 4], len(edges) == 3
//
// See each package's doc.go for contracts, complexity and error semantics.
package dengraph
