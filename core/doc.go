// Package core provides the Graph handle: a typed graph of arbitrary
// ordered node values backed by an integer-indexed algorithms engine.
//
// A Graph owns two things for its whole lifetime: the engine resource that
// stores the actual graph, and the identity map associating every node
// value with the dense engine id in [0, n) that represents it. Every public
// operation keeps the two in exact 1:1 correspondence — including the
// renumbering of surviving ids after a vertex deletion — so engine results
// can always be translated back to node values.
//
// The package covers three concerns:
//
//	– the handle itself: construction, mutation, membership and
//	  neighborhood queries (graph.go, methods.go)
//	– vertex selectors: declarative descriptions of "which vertices",
//	  resolved against the handle's identity map immediately before
//	  delegation (selector.go)
//	– algorithm delegation: shortest paths, distance tables, reachability,
//	  connectivity and induced subgraphs, with id↔node translation on both
//	  sides of the engine call (algorithms.go)
//
// Absence policy — deliberately asymmetric, per operation:
//
//	– membership-style queries (Neighbors, Degree, AreConnected,
//	  Subcomponent, selector resolution) treat an unknown node as an empty
//	  result, never an error
//	– operations that are meaningless without their named endpoints
//	  (ShortestPath) fail with ErrVertexNotFound
//	– engine ids are never user input, so an id-level inconsistency is a
//	  programming defect and panics rather than returning an error
//
// A Graph serializes all access internally with a single RWMutex held for
// the duration of each delegated engine call, so the identity map is never
// observable out of sync with the engine. Sequential composition over one
// handle is the intended usage pattern (see package session); concurrent
// mutation, while safe, provides no useful ordering guarantees.
package core
