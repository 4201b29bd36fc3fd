// Package net implements exhaustive enumeration of all simple paths
// between two points of an identity-keyed net.
//
// What:
//
//   - Net[I, P]: an unordered collection of core.Node values, at most one
//     per distinct point identifier.
//   - FindPaths(from, to): depth-first recursive enumeration of every
//     loop-free route from from to to. Each branch extends a private clone
//     of the walked path, so a point visited on one branch may still be
//     visited by a sibling branch exploring a different route.
//
// Why:
//   - Connectivity questions over small relational webs (regions and their
//     borders, stations and their lines) where the caller wants every
//     route, not the shortest one.
//
// Semantics worth knowing:
//
//   - Connections are one-directional. A net is "undirected" only by the
//     convention of populating both endpoints; the engine never assumes
//     symmetry.
//   - Traversal follows each node's connection insertion order, so the
//     result order is deterministic for a deterministically built net.
//     It is not sorted by length or by any other canonical key.
//   - A branch that dead-ends reports no-path for itself only; sibling
//     branches keep exploring. Only an empty aggregate surfaces
//     ErrNoPathFound to the caller.
//   - A connection whose target has no node is a broken net invariant and
//     panics rather than degrading into a no-path answer.
//   - A net must not be mutated while a search is in flight. The engine
//     itself never mutates the net.
//
// Complexity:
//
//   - Worst case exponential in net density: enumerating all simple paths
//     is inherently exponential on dense graphs, and there is nothing to
//     memoize because simple-path validity depends on the walked path,
//     not on the node alone.
//
// Errors:
//
//   - ErrPointNotFound  from (checked first) or to has no node in the net;
//     wrapped with the offending identifier.
//   - ErrNoPathFound    both points exist but no simple path connects them.
//   - ErrPathBuild      seeding the start path failed (defensive; should
//     not occur for a valid from).
package net
