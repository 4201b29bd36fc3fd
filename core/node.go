// This file declares Node and NodeBuilder.
//
// Node is immutable after Build; NodeBuilder is the transient, mutable
// construction half of the pair and enforces both node invariants:
// no self-connection, no duplicate connections to the same target.
package core

// Node is one adjacency entry of a net: a subject point plus its ordered
// outbound connections. The connection set is conceptually unordered, but
// insertion order is preserved so every traversal over the node is
// deterministic.
//
// Construct via NewNodeBuilder; a zero Node is valid only as a placeholder
// and holds no point.
type Node[I comparable, P Point[I]] struct {
	point P
	conns []Connection[I, P]
}

// Point returns the node's subject point.
func (n Node[I, P]) Point() P {
	return n.point
}

// PointIs reports whether the node's subject is the given point
// (identifier comparison).
// Complexity: O(1)
func (n Node[I, P]) PointIs(p P) bool {
	return n.point.ID() == p.ID()
}

// IsConnectedTo reports whether any connection of this node targets p.
// Complexity: O(C)
func (n Node[I, P]) IsConnectedTo(p P) bool {
	var c Connection[I, P]
	for _, c = range n.conns {
		if c.Targets(p) {
			return true
		}
	}

	return false
}

// Connections returns a copy of the node's connection list in insertion
// order. The copy keeps Node immutable in the face of caller mutation.
// Complexity: O(C)
func (n Node[I, P]) Connections() []Connection[I, P] {
	out := make([]Connection[I, P], len(n.conns))
	copy(out, n.conns)

	return out
}

// ConnectedPointsNotIn returns, in connection insertion order, every target
// point whose identifier does not occur in path, or nil when no such target
// exists. This is the single primitive the search engine uses to compute
// valid next hops; cycle prevention lives here rather than in the search.
// Complexity: O(C·L) for C connections and path length L.
func (n Node[I, P]) ConnectedPointsNotIn(path Path[I, P]) []P {
	var candidates []P
	var c Connection[I, P]
	for _, c = range n.conns {
		if !path.Contains(c.Target()) {
			candidates = append(candidates, c.Target())
		}
	}

	return candidates
}

// Equal reports whether two nodes have identity-equal subjects and
// pairwise identity-equal connections in the same order.
// Intended for test assertions, not runtime logic.
// Complexity: O(C)
func (n Node[I, P]) Equal(other Node[I, P]) bool {
	if !Same[I](n.point, other.point) {
		return false
	}
	if len(n.conns) != len(other.conns) {
		return false
	}
	for i := range n.conns {
		if !n.conns[i].Targets(other.conns[i].Target()) {
			return false
		}
	}

	return true
}

// NodeBuilder accumulates a subject point and connections, then validates
// them into an immutable Node. The builder is mutable and single-use;
// it is not safe for concurrent use.
type NodeBuilder[I comparable, P Point[I]] struct {
	point    P
	hasPoint bool
	conns    []Connection[I, P]
}

// NewNodeBuilder returns an empty NodeBuilder.
// Complexity: O(1)
func NewNodeBuilder[I comparable, P Point[I]]() *NodeBuilder[I, P] {
	return &NodeBuilder[I, P]{}
}

// SetPoint sets (or overwrites) the node's subject point.
func (b *NodeBuilder[I, P]) SetPoint(p P) *NodeBuilder[I, P] {
	b.point = p
	b.hasPoint = true

	return b
}

// AddConnection appends p as a neighbor unless a connection to a
// same-identifier point was already added; the duplicate is a silent no-op,
// so connections behave as a set keyed by target identity.
// Complexity: O(C)
func (b *NodeBuilder[I, P]) AddConnection(p P) *NodeBuilder[I, P] {
	var c Connection[I, P]
	for _, c = range b.conns {
		if c.Targets(p) {
			return b
		}
	}
	b.conns = append(b.conns, NewConnection[I](p))

	return b
}

// AddConnections applies AddConnection to each point in order,
// preserving first-seen order across duplicates.
// Complexity: O(len(points)·C)
func (b *NodeBuilder[I, P]) AddConnections(points ...P) *NodeBuilder[I, P] {
	var p P
	for _, p = range points {
		b.AddConnection(p)
	}

	return b
}

// Build validates the accumulated state and returns an immutable Node.
//
// Errors:
//   - ErrMissingPoint   if SetPoint was never called.
//   - ErrSelfConnection if any connection targets the subject point.
//
// Complexity: O(C)
func (b *NodeBuilder[I, P]) Build() (Node[I, P], error) {
	if !b.hasPoint {
		return Node[I, P]{}, ErrMissingPoint
	}

	var c Connection[I, P]
	for _, c = range b.conns {
		if c.Targets(b.point) {
			return Node[I, P]{}, ErrSelfConnection
		}
	}

	// Copy the connection slice so later builder reuse cannot
	// alias into the built node.
	conns := make([]Connection[I, P], len(b.conns))
	copy(conns, b.conns)

	return Node[I, P]{point: b.point, conns: conns}, nil
}
