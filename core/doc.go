// Package core defines the identity-keyed building blocks of a netpath net:
// the Point contract, the Connection edge record, the Node adjacency entry,
// and the Path route accumulator, together with the validating builders that
// construct Node and Path values.
//
// What:
//
//   - Point[I]: any caller-supplied value type exposing a stable, comparable
//     identifier via ID(). Two points are the same point iff their
//     identifiers are equal; nothing else about them is compared.
//   - Connection[I, P]: a directed edge record naming a target point.
//     Connections compare by target identity, which is how NodeBuilder
//     collapses duplicate edges.
//   - Node[I, P]: one point plus its ordered outbound connections.
//     Immutable after NodeBuilder.Build; the insertion order of connections
//     is preserved so traversals stay deterministic.
//   - Path[I, P]: an ordered sequence of points representing a route under
//     construction. Built incrementally via PathBuilder, cloned before each
//     search branch so sibling branches never share mutable state.
//
// Why:
//   - Keep identity comparison, adjacency, and route bookkeeping in one
//     small package so the net search engine stays a pure algorithm.
//   - Builders validate the two construction invariants (a node never
//     connects to itself, a path is never empty) exactly once, at Build
//     time, and the built values are immutable thereafter.
//
// Complexity:
//
//   - NodeBuilder.AddConnection: O(C) scan over accumulated connections.
//   - Node.ConnectedPointsNotIn: O(C·L) for C connections and path length L.
//   - Path.Contains / EndsWith:  O(L) / O(1).
//   - Path.Clone:                O(L) copy; points themselves are copied by
//     value, never aliased.
//
// Errors:
//
//   - ErrMissingPoint   NodeBuilder.Build called before SetPoint.
//   - ErrSelfConnection node's own point appears among its connections.
//   - ErrEmptyPath      PathBuilder.Build called with zero points.
package core
