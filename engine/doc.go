// Package engine defines the boundary to the graph-algorithms engine and
// provides its default implementation on top of gonum's graph packages.
//
// The engine speaks only dense integer vertex ids: after any mutation the
// vertex set is exactly [0, VertexCount()), with ids renumbered downwards
// after a vertex removal. The wrapper layer (package core) owns the mapping
// between user node values and these ids; nothing in this package ever sees
// a node value.
//
// The contract is captured by the Engine interface:
//
//	– vertex/edge mutation with dense-id renumbering on removal
//	– adjacency and neighborhood queries under a direction mode
//	– resolved-selector (Selection) counting and enumeration
//	– single-pair shortest path and many-to-many hop distances
//	– reachability (Subcomponent), weak/strong connectivity
//	– induced subgraph extraction into a fresh, independently owned engine
//	– Close, releasing the engine resource exactly once
//
// Direction modes (Out, In, All) govern which incident edge direction
// counts during traversal of a directed graph; they are ignored for
// undirected graphs. Internally they are realized as read-only views over
// the directed representation, so every algorithm runs unchanged on any
// mode.
//
// Unreachability in distance results is reported as math.Inf(1), matching
// gonum's convention; callers translate it to their own optional type.
//
// The implementation is not safe for concurrent use; the owning handle
// serializes access.
package engine
