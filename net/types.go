// Package net defines the Net collection type and the sentinel errors of
// the path-finding engine. The search itself lives in net.go.
package net

import (
	"errors"

	"github.com/katalvlaran/netpath/core"
)

// Sentinel errors returned by FindPaths.
var (
	// ErrPointNotFound indicates a queried point has no node in the net.
	// FindPaths wraps it with the offending identifier; branch with errors.Is.
	ErrPointNotFound = errors.New("net: point not found")

	// ErrNoPathFound indicates both points exist but no simple path
	// connects them. It doubles as the internal per-branch dead-end signal,
	// which the parent branch absorbs; only the empty aggregate reaches
	// the caller.
	ErrNoPathFound = errors.New("net: no path found between points")

	// ErrPathBuild indicates the engine failed to seed the initial path.
	// Defensive: unreachable for a from point that passed lookup.
	ErrPathBuild = errors.New("net: path cannot be built")
)

// Net is the full collection of nodes forming the graph being queried.
//
// Invariant: at most one node per distinct point identifier. New enforces
// it by construction; assembling the struct literal directly leaves the
// invariant to the caller, and lookups then use first-match semantics.
//
// A Net is read-only for the duration of any FindPaths call and holds no
// other state, so distinct searches over the same value may run from
// multiple goroutines as long as nothing mutates Nodes.
type Net[I comparable, P core.Point[I]] struct {
	Nodes []core.Node[I, P]
}

// New assembles a Net from nodes, keeping the first node seen for each
// distinct point identifier and dropping later duplicates. This pins down
// lookup semantics instead of leaving duplicate identifiers ambiguous.
// Complexity: O(N)
func New[I comparable, P core.Point[I]](nodes ...core.Node[I, P]) Net[I, P] {
	seen := make(map[I]struct{}, len(nodes))
	kept := make([]core.Node[I, P], 0, len(nodes))

	var n core.Node[I, P]
	for _, n = range nodes {
		id := n.Point().ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, n)
	}

	return Net[I, P]{Nodes: kept}
}
