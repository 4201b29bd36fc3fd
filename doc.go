// Package netpath is a small generic library for enumerating every simple
// path between two points of an identity-keyed connectivity net.
//
// 🚀 What is netpath?
//
//	A pure-Go library built around one algorithm and the three abstractions
//	it needs:
//		• Point contract: any value type with a stable, comparable identifier
//		• Node/Connection: a point plus its ordered outbound connections,
//		  constructed through a validating builder (no self-loops, no
//		  duplicate edges)
//		• Path: the route accumulator, cloned per search branch so sibling
//		  branches never share mutable state
//		• Net: the node collection with FindPaths, a depth-first exhaustive
//		  enumeration of all loop-free routes
//
// ✨ Why choose netpath?
//
//   - Generic over your own domain types - bring any identifier, no wrapping
//   - Deterministic - traversal follows connection insertion order
//   - Honest contract - every simple path, not the shortest one; dense nets
//     are exponential by nature and the library says so
//   - Pure Go - no cgo, no runtime deps
//
// Everything is organized under three subpackages:
//
//	core/    — Point, Connection, Node, Path and their builders
//	net/     — the Net collection and the FindPaths engine
//	builder/ — deterministic topology fixtures (Line, Ring, Star, Mesh)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	FindPaths(A, C) enumerates A-B-C and A-D-C.
//
// Dive into the package docs for semantics, complexity notes, and the
// error taxonomy; runnable demos live under examples/.
//
//	go get github.com/katalvlaran/netpath
package netpath
