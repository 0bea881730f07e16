// Package idmap maintains the bidirectional association between arbitrary
// ordered node values and the dense integer ids used by a vertex-indexed
// graph engine.
//
// The map upholds two invariants after every mutation:
//
//   - Density: the id set is exactly [0, Len()) with no gaps.
//   - Bijection: IDOf(NodeOf(i)) == (i, true) for every valid id i, and
//     NodeOf(id) round-trips every present node.
//
// Removing a node therefore renumbers every node whose id was greater than
// the removed one, decrementing by one, mirroring the engine's dense-id
// requirement after a vertex deletion.
//
// Lookup policy is asymmetric on purpose: IDOf is lenient (absence is a
// normal outcome, reported via the ok bool), while NodeOf panics on an
// out-of-range id — ids only ever originate from the engine itself, so an
// invalid id is a programming defect, not a runtime condition.
//
// Complexity:
//
//	– IDOf:   O(log n)
//	– NodeOf: O(1)
//	– Insert: O(log n) amortized
//	– Remove: O(k log n), where k = number of ids renumbered
package idmap

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/tidwall/btree"
)

// Sentinel errors for identity-map mutations.
var (
	// ErrNodePresent indicates an Insert for a node that already has an id;
	// id assignment is creation-only.
	ErrNodePresent = errors.New("idmap: node already present")

	// ErrNodeAbsent indicates a Remove for a node that has no id.
	ErrNodeAbsent = errors.New("idmap: node not present")
)

// entry is one node→id association stored in the ordered index.
// Ordering (and therefore lookup) considers only the node value.
type entry[N cmp.Ordered] struct {
	node N
	id   int64
}

// Map is a bijection between node values and dense engine ids in [0, n).
//
// The node→id side is a B-tree keyed by node order, which doubles as a
// deterministic ascending enumeration of the vertex set. The id→node side
// is a plain slice indexed by id, which is what keeps NodeOf O(1) and makes
// the density invariant structural rather than checked.
//
// The zero value is not usable; call New.
type Map[N cmp.Ordered] struct {
	byNode *btree.BTreeG[entry[N]]
	byID   []N
}

// New returns an empty identity map.
func New[N cmp.Ordered]() *Map[N] {
	return &Map[N]{
		byNode: btree.NewBTreeG[entry[N]](func(a, b entry[N]) bool { return a.node < b.node }),
	}
}

// Len returns the number of nodes currently mapped. O(1).
func (m *Map[N]) Len() int { return len(m.byID) }

// IDOf returns the current engine id for node and whether node is present.
// Absence is never an error here; callers decide how to treat it
// (commonly: an empty selection or a false/empty result).
// Complexity: O(log n).
func (m *Map[N]) IDOf(node N) (int64, bool) {
	e, ok := m.byNode.Get(entry[N]{node: node})
	if !ok {
		return 0, false
	}

	return e.id, true
}

// NodeOf returns the node value mapped to id.
// It panics if id is outside [0, Len()): ids originate exclusively from the
// engine, so an out-of-range id can only be a programming error.
// Complexity: O(1).
func (m *Map[N]) NodeOf(id int64) N {
	if id < 0 || id >= int64(len(m.byID)) {
		panic(fmt.Sprintf("idmap: id %d out of range [0, %d)", id, len(m.byID)))
	}

	return m.byID[id]
}

// Has reports whether node currently has an id. Complexity: O(log n).
func (m *Map[N]) Has(node N) bool {
	_, ok := m.byNode.Get(entry[N]{node: node})

	return ok
}

// Insert assigns the next free id (== Len() before the call) to node and
// returns it. Returns ErrNodePresent if node already has an id.
// Complexity: O(log n) amortized.
func (m *Map[N]) Insert(node N) (int64, error) {
	if m.Has(node) {
		return 0, fmt.Errorf("%w: %v", ErrNodePresent, node)
	}
	id := int64(len(m.byID))
	m.byNode.Set(entry[N]{node: node, id: id})
	m.byID = append(m.byID, node)

	return id, nil
}

// Remove deletes node's mapping and returns the id it occupied.
// Every node whose id was greater than the removed one is renumbered down
// by one, so the id set is again exactly [0, Len()). The caller must pair
// this with the corresponding engine-side vertex deletion so the two never
// observably diverge.
// Returns ErrNodeAbsent if node has no id.
// Complexity: O(k log n), k = Len() - removed id.
func (m *Map[N]) Remove(node N) (int64, error) {
	e, ok := m.byNode.Delete(entry[N]{node: node})
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeAbsent, node)
	}

	// Close the gap in the id→node slice, then rewrite the shifted ids in
	// the ordered index. Only nodes with ids above the removed one move.
	m.byID = append(m.byID[:e.id], m.byID[e.id+1:]...)
	for id := e.id; id < int64(len(m.byID)); id++ {
		m.byNode.Set(entry[N]{node: m.byID[id], id: id})
	}

	return e.id, nil
}

// Nodes returns all mapped node values in ascending node order.
// Complexity: O(n).
func (m *Map[N]) Nodes() []N {
	out := make([]N, 0, len(m.byID))
	m.byNode.Scan(func(e entry[N]) bool {
		out = append(out, e.node)

		return true
	})

	return out
}

// ByID returns all mapped node values indexed by id, i.e. out[i] == NodeOf(i).
// The slice is a copy; mutating it does not affect the map.
// Complexity: O(n).
func (m *Map[N]) ByID() []N {
	out := make([]N, len(m.byID))
	copy(out, m.byID)

	return out
}
