// Package engine: direction modes, connectivity kinds, resolved selections,
// sentinel errors, and the Engine interface itself.

package engine

import "errors"

// Sentinel errors reported at the engine boundary.
var (
	// ErrBadVertex indicates an id outside the dense range [0, VertexCount()).
	ErrBadVertex = errors.New("engine: vertex id out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself;
	// the engine stores simple graphs only.
	ErrSelfLoop = errors.New("engine: self-loop not allowed")

	// ErrNoEdge indicates a removal of an edge that does not exist.
	ErrNoEdge = errors.New("engine: edge not found")

	// ErrClosed indicates a second Close of an already released engine.
	ErrClosed = errors.New("engine: already closed")
)

// Dir selects which incident edge direction counts as adjacent when
// traversing a directed graph. Undirected graphs ignore it.
type Dir uint8

const (
	// Out follows edges in their stored orientation (u→v walks u to v).
	Out Dir = iota

	// In follows edges against their stored orientation.
	In

	// All treats every edge as bidirectional.
	All
)

// String returns a short human-readable mode name.
func (d Dir) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Connectedness selects the connectivity notion tested by Connected.
// Weak ignores edge orientation; Strong requires mutual reachability and is
// meaningful only for directed graphs (both coincide on undirected ones).
type Connectedness uint8

const (
	// Weak tests connectivity with edge orientation ignored.
	Weak Connectedness = iota

	// Strong tests mutual reachability between every vertex pair.
	Strong
)

// selKind tags the variant held by a Selection.
type selKind uint8

const (
	selNone selKind = iota
	selAll
	selIDs
	selRange
	selAdjacent
	selNonAdjacent
)

// Selection is a resolved, engine-native vertex selector: it designates
// vertices purely in id space and is interpreted against the engine's
// current vertex set by Count and Enumerate.
//
// A Selection is immutable once constructed. The zero value designates no
// vertices.
type Selection struct {
	kind   selKind
	ids    []int64 // selIDs: explicit ids, enumerated in the given order
	lo, hi int64   // selRange: inclusive id bounds
	anchor int64   // selAdjacent / selNonAdjacent: the anchor vertex
	dir    Dir     // selAdjacent / selNonAdjacent: incident direction mode
}

// SelectNone designates no vertices.
func SelectNone() Selection { return Selection{kind: selNone} }

// SelectAll designates every vertex currently in the engine.
func SelectAll() Selection { return Selection{kind: selAll} }

// SelectIDs designates exactly the given ids, enumerated in the given order.
// The caller is responsible for the ids being valid and duplicate-free.
func SelectIDs(ids ...int64) Selection {
	return Selection{kind: selIDs, ids: ids}
}

// SelectRange designates the contiguous inclusive id range [lo, hi],
// enumerated ascending. An inverted range (lo > hi) designates no vertices.
func SelectRange(lo, hi int64) Selection {
	return Selection{kind: selRange, lo: lo, hi: hi}
}

// SelectAdjacent designates the vertices adjacent to anchor under dir.
func SelectAdjacent(anchor int64, dir Dir) Selection {
	return Selection{kind: selAdjacent, anchor: anchor, dir: dir}
}

// SelectNonAdjacent designates the vertices that are neither anchor itself
// nor adjacent to it under dir.
func SelectNonAdjacent(anchor int64, dir Dir) Selection {
	return Selection{kind: selNonAdjacent, anchor: anchor, dir: dir}
}

// Engine is the capability contract of the graph-algorithms engine.
//
// All ids are dense: valid ids are exactly [0, VertexCount()), and
// RemoveVertex renumbers every greater id down by one. Engines are not safe
// for concurrent use; the owning handle serializes access. Using an engine
// after Close is a programming error.
type Engine interface {
	// Directed reports the orientation fixed at construction.
	Directed() bool

	// VertexCount returns the number of vertices. Ids are [0, VertexCount()).
	VertexCount() int

	// EdgeCount returns the number of edges (each undirected edge counted once).
	EdgeCount() int

	// AddVertex creates a new isolated vertex and returns its id, which is
	// always the previous VertexCount().
	AddVertex() int64

	// RemoveVertex deletes id together with all incident edges and renumbers
	// every id greater than it down by one. Returns ErrBadVertex for an
	// out-of-range id.
	RemoveVertex(id int64) error

	// AddEdge adds the edge u→v (an unordered pair for undirected engines).
	// Adding an existing edge is a no-op. Returns ErrBadVertex or ErrSelfLoop.
	AddEdge(u, v int64) error

	// RemoveEdge deletes the edge u→v. Returns ErrBadVertex for out-of-range
	// ids and ErrNoEdge if no such edge exists.
	RemoveEdge(u, v int64) error

	// HasEdge reports whether the edge u→v exists, honoring orientation for
	// directed engines. Out-of-range ids report false.
	HasEdge(u, v int64) bool

	// Neighbors returns the ids adjacent to id under dir, ascending.
	// An out-of-range id yields an empty slice.
	Neighbors(id int64, dir Dir) []int64

	// Degree returns len(Neighbors(id, dir)) without exposing the slice.
	Degree(id int64, dir Dir) int

	// Edges returns all edges as id pairs in deterministic ascending order;
	// undirected pairs are normalized to (min, max).
	Edges() [][2]int64

	// Count returns the number of vertices sel designates, without
	// materializing the enumeration where the kind permits.
	Count(sel Selection) int

	// Enumerate materializes the ids sel designates. Order: ascending for
	// all/range/adjacency kinds, as given for explicit id lists.
	Enumerate(sel Selection) []int64

	// ShortestPath returns a minimum-hop path from u to v under dir as the
	// id sequence including both endpoints. If v is unreachable the path is
	// empty with a nil error. Returns ErrBadVertex for out-of-range ids.
	ShortestPath(u, v int64, dir Dir) ([]int64, error)

	// Distances returns the hop-distance matrix between from and to under
	// dir: out[i][j] is the distance from from[i] to to[j], math.Inf(1) when
	// unreachable. Returns ErrBadVertex for out-of-range ids.
	Distances(from, to []int64, dir Dir) ([][]float64, error)

	// Subcomponent returns the ids reachable from id under dir, ascending,
	// including id itself. An out-of-range id yields an empty slice.
	Subcomponent(id int64, dir Dir) []int64

	// Subgraph extracts the subgraph induced by ids into a fresh engine of
	// the same orientation, with vertices renumbered from 0 in the order
	// given. The result shares no state with the receiver. Returns
	// ErrBadVertex for out-of-range ids.
	Subgraph(ids []int64) (Engine, error)

	// Connected reports whether the graph is connected under c. Graphs with
	// fewer than two vertices are connected by convention.
	Connected(c Connectedness) bool

	// Close releases the engine resource. A second Close returns ErrClosed.
	Close() error
}
