// Package core defines the Point contract, Connection and Node adjacency
// types, and the Path accumulator used by the net search engine.
//
// This file declares the Point interface, the Same identity predicate,
// the Connection edge record, and the package sentinel errors.
package core

import "errors"

// Sentinel errors for core builder operations.
var (
	// ErrMissingPoint indicates NodeBuilder.Build was called without a subject point.
	ErrMissingPoint = errors.New("core: node has no point")

	// ErrSelfConnection indicates a node's point appears among its own connections.
	ErrSelfConnection = errors.New("core: node connected to itself")

	// ErrEmptyPath indicates PathBuilder.Build was called with no points.
	ErrEmptyPath = errors.New("core: path has no points")
)

// Point is the capability every value placed in a net must supply:
// a stable identifier of some comparable type I.
//
// Identity is the only contract. The graph never mutates a point and never
// compares anything but identifiers, so implementations should be small,
// cheaply copyable value types (a named region, a labeled vertex, a station).
type Point[I comparable] interface {
	// ID returns the point's stable identifier.
	// It must be constant for the lifetime of the value.
	ID() I
}

// Same reports whether a and b denote the same point, i.e. their
// identifiers are equal. Structural differences outside the identifier
// are deliberately ignored.
// Complexity: O(1)
func Same[I comparable, P Point[I]](a, b P) bool {
	return a.ID() == b.ID()
}

// Connection is a directed edge record naming a target point.
// A Connection is always owned by exactly one Node and holds its own copy
// of the target point, never a reference into another node.
type Connection[I comparable, P Point[I]] struct {
	to P
}

// NewConnection returns a Connection aimed at the given target point.
// Complexity: O(1)
func NewConnection[I comparable, P Point[I]](to P) Connection[I, P] {
	return Connection[I, P]{to: to}
}

// Target returns the point this connection leads to.
func (c Connection[I, P]) Target() P {
	return c.to
}

// Targets reports whether this connection leads to the given point,
// comparing identifiers only. Node deduplicates connections by this
// relation, not by full structural equality.
// Complexity: O(1)
func (c Connection[I, P]) Targets(p P) bool {
	return c.to.ID() == p.ID()
}
