// Package engine: default Engine implementation backed by
// gonum.org/v1/gonum/graph.
//
// Storage is a simple directed or undirected gonum graph whose node ids are
// kept dense by construction: vertices are created with consecutive ids and
// a removal rebuilds the structure with the surviving ids shifted down.
// Direction modes are realized as read-only traverse views (reverseView,
// bothView) over the directed representation, so gonum's path, topo and
// traverse algorithms run unchanged on any mode.

package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// mutableGraph is the slice of the simple.DirectedGraph/UndirectedGraph API
// the engine needs regardless of orientation.
type mutableGraph interface {
	graph.Graph
	AddNode(n graph.Node)
	RemoveNode(id int64)
	SetEdge(e graph.Edge)
	RemoveEdge(fid, tid int64)
	Edges() graph.Edges
}

// gonumEngine implements Engine over gonum simple graphs.
type gonumEngine struct {
	directed bool
	g        mutableGraph            // the active storage (dg or ug)
	dg       *simple.DirectedGraph   // non-nil iff directed
	ug       *simple.UndirectedGraph // non-nil iff undirected
	n        int64                   // vertex count; valid ids are [0, n)
	closed   bool
}

// New creates an empty engine with the given orientation.
func New(directed bool) Engine {
	e := &gonumEngine{directed: directed}
	if directed {
		e.dg = simple.NewDirectedGraph()
		e.g = e.dg
	} else {
		e.ug = simple.NewUndirectedGraph()
		e.g = e.ug
	}

	return e
}

func (e *gonumEngine) Directed() bool   { return e.directed }
func (e *gonumEngine) VertexCount() int { return int(e.n) }

func (e *gonumEngine) EdgeCount() int {
	return len(graph.EdgesOf(e.g.Edges()))
}

func (e *gonumEngine) valid(id int64) bool { return id >= 0 && id < e.n }

func (e *gonumEngine) AddVertex() int64 {
	id := e.n
	e.g.AddNode(simple.Node(id))
	e.n++

	return id
}

// RemoveVertex rebuilds the storage with id dropped and every greater id
// shifted down by one, which is what keeps the id space dense. Linear in
// V+E; acceptable because deletion already implies a renumbering pass.
func (e *gonumEngine) RemoveVertex(id int64) error {
	if !e.valid(id) {
		return fmt.Errorf("%w: %d", ErrBadVertex, id)
	}

	remap := func(j int64) int64 {
		if j > id {
			return j - 1
		}

		return j
	}

	var fresh mutableGraph
	var fdg *simple.DirectedGraph
	var fug *simple.UndirectedGraph
	if e.directed {
		fdg = simple.NewDirectedGraph()
		fresh = fdg
	} else {
		fug = simple.NewUndirectedGraph()
		fresh = fug
	}
	for j := int64(0); j < e.n; j++ {
		if j == id {
			continue
		}
		fresh.AddNode(simple.Node(remap(j)))
	}
	for _, ed := range graph.EdgesOf(e.g.Edges()) {
		u, v := ed.From().ID(), ed.To().ID()
		if u == id || v == id {
			continue // incident edges vanish with the vertex
		}
		fresh.SetEdge(simple.Edge{F: simple.Node(remap(u)), T: simple.Node(remap(v))})
	}

	e.g, e.dg, e.ug = fresh, fdg, fug
	e.n--

	return nil
}

func (e *gonumEngine) AddEdge(u, v int64) error {
	if !e.valid(u) {
		return fmt.Errorf("%w: %d", ErrBadVertex, u)
	}
	if !e.valid(v) {
		return fmt.Errorf("%w: %d", ErrBadVertex, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if e.HasEdge(u, v) {
		return nil // idempotent
	}
	e.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})

	return nil
}

func (e *gonumEngine) RemoveEdge(u, v int64) error {
	if !e.valid(u) {
		return fmt.Errorf("%w: %d", ErrBadVertex, u)
	}
	if !e.valid(v) {
		return fmt.Errorf("%w: %d", ErrBadVertex, v)
	}
	if !e.HasEdge(u, v) {
		return fmt.Errorf("%w: %d→%d", ErrNoEdge, u, v)
	}
	e.g.RemoveEdge(u, v)

	return nil
}

func (e *gonumEngine) HasEdge(u, v int64) bool {
	if !e.valid(u) || !e.valid(v) {
		return false
	}
	if e.directed {
		return e.dg.HasEdgeFromTo(u, v)
	}

	return e.ug.HasEdgeBetween(u, v)
}

func (e *gonumEngine) Neighbors(id int64, dir Dir) []int64 {
	if !e.valid(id) {
		return nil
	}

	var its []graph.Nodes
	switch {
	case !e.directed:
		its = []graph.Nodes{e.ug.From(id)}
	case dir == Out:
		its = []graph.Nodes{e.dg.From(id)}
	case dir == In:
		its = []graph.Nodes{e.dg.To(id)}
	default: // All: union of both incident directions
		its = []graph.Nodes{e.dg.From(id), e.dg.To(id)}
	}

	seen := make(map[int64]struct{})
	var out []int64
	for _, it := range its {
		for it.Next() {
			nid := it.Node().ID()
			if _, dup := seen[nid]; dup {
				continue
			}
			seen[nid] = struct{}{}
			out = append(out, nid)
		}
	}
	slices.Sort(out)

	return out
}

func (e *gonumEngine) Degree(id int64, dir Dir) int {
	return len(e.Neighbors(id, dir))
}

func (e *gonumEngine) Edges() [][2]int64 {
	eds := graph.EdgesOf(e.g.Edges())
	out := make([][2]int64, 0, len(eds))
	for _, ed := range eds {
		u, v := ed.From().ID(), ed.To().ID()
		if !e.directed && u > v {
			u, v = v, u // normalize undirected pairs
		}
		out = append(out, [2]int64{u, v})
	}
	slices.SortFunc(out, func(a, b [2]int64) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}

		return cmp.Compare(a[1], b[1])
	})

	return out
}

func (e *gonumEngine) Count(sel Selection) int {
	switch sel.kind {
	case selNone:
		return 0
	case selAll:
		return int(e.n)
	case selIDs:
		return len(sel.ids)
	case selRange:
		lo, hi := clipRange(sel.lo, sel.hi, e.n)
		if hi < lo {
			return 0
		}

		return int(hi - lo + 1)
	case selAdjacent:
		return e.Degree(sel.anchor, sel.dir)
	case selNonAdjacent:
		if !e.valid(sel.anchor) {
			return 0
		}

		return int(e.n) - 1 - e.Degree(sel.anchor, sel.dir)
	default:
		return 0
	}
}

func (e *gonumEngine) Enumerate(sel Selection) []int64 {
	switch sel.kind {
	case selAll:
		out := make([]int64, e.n)
		for i := range out {
			out[i] = int64(i)
		}

		return out
	case selIDs:
		return slices.Clone(sel.ids)
	case selRange:
		lo, hi := clipRange(sel.lo, sel.hi, e.n)
		if hi < lo {
			return nil
		}
		out := make([]int64, 0, hi-lo+1)
		for id := lo; id <= hi; id++ {
			out = append(out, id)
		}

		return out
	case selAdjacent:
		return e.Neighbors(sel.anchor, sel.dir)
	case selNonAdjacent:
		if !e.valid(sel.anchor) {
			return nil
		}
		adj := e.Neighbors(sel.anchor, sel.dir)
		excluded := make(map[int64]struct{}, len(adj)+1)
		excluded[sel.anchor] = struct{}{}
		for _, id := range adj {
			excluded[id] = struct{}{}
		}
		var out []int64
		for id := int64(0); id < e.n; id++ {
			if _, skip := excluded[id]; !skip {
				out = append(out, id)
			}
		}

		return out
	default: // selNone
		return nil
	}
}

// clipRange intersects [lo, hi] with the valid id range [0, n).
func clipRange(lo, hi, n int64) (int64, int64) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}

	return lo, hi
}

// view returns the traverse-compatible read view for dir. For undirected
// engines every mode is the graph itself.
func (e *gonumEngine) view(dir Dir) traverse.Graph {
	if !e.directed {
		return e.ug
	}
	switch dir {
	case In:
		return reverseView{d: e.dg}
	case All:
		return bothView{d: e.dg}
	default:
		return e.dg
	}
}

func (e *gonumEngine) ShortestPath(u, v int64, dir Dir) ([]int64, error) {
	if !e.valid(u) {
		return nil, fmt.Errorf("%w: %d", ErrBadVertex, u)
	}
	if !e.valid(v) {
		return nil, fmt.Errorf("%w: %d", ErrBadVertex, v)
	}
	if u == v {
		return []int64{u}, nil
	}

	sp := path.DijkstraFrom(simple.Node(u), e.view(dir))
	nodes, w := sp.To(v)
	if math.IsInf(w, 1) {
		return nil, nil // unreachable: empty path, not an error
	}
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}

	return out, nil
}

func (e *gonumEngine) Distances(from, to []int64, dir Dir) ([][]float64, error) {
	for _, id := range from {
		if !e.valid(id) {
			return nil, fmt.Errorf("%w: %d", ErrBadVertex, id)
		}
	}
	for _, id := range to {
		if !e.valid(id) {
			return nil, fmt.Errorf("%w: %d", ErrBadVertex, id)
		}
	}

	view := e.view(dir)
	out := make([][]float64, len(from))
	for i, u := range from {
		sp := path.DijkstraFrom(simple.Node(u), view)
		row := make([]float64, len(to))
		for j, v := range to {
			if u == v {
				continue // row[j] stays 0: a vertex is at distance 0 from itself
			}
			_, w := sp.To(v)
			row[j] = w
		}
		out[i] = row
	}

	return out, nil
}

func (e *gonumEngine) Subcomponent(id int64, dir Dir) []int64 {
	if !e.valid(id) {
		return nil
	}

	var out []int64
	bfs := traverse.BreadthFirst{
		Visit: func(n graph.Node) { out = append(out, n.ID()) },
	}
	bfs.Walk(e.view(dir), simple.Node(id), nil)
	slices.Sort(out)

	return out
}

func (e *gonumEngine) Subgraph(ids []int64) (Engine, error) {
	remap := make(map[int64]int64, len(ids))
	for i, id := range ids {
		if !e.valid(id) {
			return nil, fmt.Errorf("%w: %d", ErrBadVertex, id)
		}
		remap[id] = int64(i)
	}

	sub := New(e.directed).(*gonumEngine)
	for range ids {
		sub.AddVertex()
	}
	for _, ed := range e.Edges() {
		u, uok := remap[ed[0]]
		v, vok := remap[ed[1]]
		if !uok || !vok {
			continue
		}
		sub.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return sub, nil
}

func (e *gonumEngine) Connected(c Connectedness) bool {
	if e.n < 2 {
		return true
	}
	if !e.directed {
		return len(topo.ConnectedComponents(e.ug)) <= 1
	}
	if c == Strong {
		return len(topo.TarjanSCC(e.dg)) <= 1
	}

	return len(e.Subcomponent(0, All)) == int(e.n)
}

func (e *gonumEngine) Close() error {
	if e.closed {
		return ErrClosed
	}
	// Drop the storage so use-after-close fails fast instead of silently
	// operating on a released resource.
	e.closed = true
	e.g, e.dg, e.ug = nil, nil, nil
	e.n = 0

	return nil
}

// reverseView exposes a directed graph with every edge reversed, which
// turns "incoming" traversal into plain forward traversal.
type reverseView struct {
	d *simple.DirectedGraph
}

func (v reverseView) From(id int64) graph.Nodes { return v.d.To(id) }

func (v reverseView) Edge(uid, vid int64) graph.Edge {
	if v.d.Edge(vid, uid) == nil {
		return nil
	}

	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

// bothView exposes a directed graph with orientation erased: every edge is
// traversable in both directions.
type bothView struct {
	d *simple.DirectedGraph
}

func (v bothView) From(id int64) graph.Nodes {
	seen := make(map[int64]struct{})
	var nodes []graph.Node
	for _, it := range []graph.Nodes{v.d.From(id), v.d.To(id)} {
		for it.Next() {
			n := it.Node()
			if _, dup := seen[n.ID()]; dup {
				continue
			}
			seen[n.ID()] = struct{}{}
			nodes = append(nodes, n)
		}
	}

	return iterator.NewOrderedNodes(nodes)
}

func (v bothView) Edge(uid, vid int64) graph.Edge {
	if e := v.d.Edge(uid, vid); e != nil {
		return e
	}
	if v.d.Edge(vid, uid) == nil {
		return nil
	}

	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}
