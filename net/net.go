// Package net: the recursive all-simple-paths search.
//
// The engine is plain call-stack recursion with copy-on-branch path state:
// every recursive call that wants to extend the walked path first takes an
// independent clone, so sibling branches share nothing mutable and there is
// no backtracking state to unwind.
package net

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netpath/core"
)

// FindPaths enumerates every simple path from from to to, in the order the
// depth-first exploration discovers them.
//
// Preconditions and validation (in order):
//  1. from must have a node in the net (ErrPointNotFound, wrapped with id).
//  2. to must have a node in the net (ErrPointNotFound, wrapped with id).
//
// Returns:
//
//   - the collected paths, each starting with from, ending with to, and
//     visiting no point twice,
//   - ErrNoPathFound when both points exist but every branch dead-ends,
//   - ErrPathBuild if seeding the start path fails (defensive).
//
// Panics when a connection targets a point with no node: that is a broken
// net, a construction bug rather than a reachable input.
//
// Complexity: worst case exponential in net density (all simple paths).
func (n Net[I, P]) FindPaths(from, to P) ([]core.Path[I, P], error) {
	// 1) Resolve the starting node; from is checked before to.
	start, ok := n.findNode(from)
	if !ok {
		return nil, fmt.Errorf("net: point %v: %w", from.ID(), ErrPointNotFound)
	}

	// 2) The destination must exist even if unreachable.
	if _, ok = n.findNode(to); !ok {
		return nil, fmt.Errorf("net: point %v: %w", to.ID(), ErrPointNotFound)
	}

	// 3) Seed the walked path with the start point alone.
	seed, err := core.NewPathBuilder[I, P]().AddPoint(from).Build()
	if err != nil {
		return nil, fmt.Errorf("net: seeding path from %v: %w", from.ID(), ErrPathBuild)
	}

	// 4) Explore. A dead-end aggregate surfaces as ErrNoPathFound.
	return n.search(start, to, seed)
}

// search explores every untraveled connection of current, extending a clone
// of walked per candidate, and aggregates the complete paths of all
// successful sub-branches.
//
// ErrNoPathFound returned here is branch-local: the parent absorbs it and
// keeps exploring siblings. Any other error aborts the whole search.
func (n Net[I, P]) search(current core.Node[I, P], to P, walked core.Path[I, P]) ([]core.Path[I, P], error) {
	// 1) Complete branch: the walked path already ends at the destination.
	if walked.EndsWith(to) {
		return []core.Path[I, P]{walked}, nil
	}

	// 2) Valid next hops: connected points not yet on this branch's path.
	candidates := current.ConnectedPointsNotIn(walked)
	if len(candidates) == 0 {
		return nil, ErrNoPathFound
	}

	// 3) Branch per candidate, in connection insertion order.
	var found []core.Path[I, P]
	var candidate P
	for _, candidate = range candidates {
		next, ok := n.findNode(candidate)
		if !ok {
			// A connection pointing at a point with no node means the net
			// was assembled from mismatched node data. Fail loudly instead
			// of mistaking it for a dead end.
			panic(fmt.Sprintf("net: inconsistent net: connection targets %v but no node exists for it", candidate.ID()))
		}

		branch := walked.Clone()
		branch.Push(candidate)

		sub, err := n.search(next, to, branch)
		if err != nil {
			if errors.Is(err, ErrNoPathFound) {
				// This branch found nothing; siblings still count.
				continue
			}

			return nil, err
		}
		found = append(found, sub...)
	}

	// 4) Empty aggregate: every sub-branch dead-ended.
	if len(found) == 0 {
		return nil, ErrNoPathFound
	}

	return found, nil
}

// findNode returns the first node whose subject is point, if any.
// First-match semantics back the at-most-one-node-per-identifier invariant.
// Complexity: O(N)
func (n Net[I, P]) findNode(point P) (core.Node[I, P], bool) {
	var node core.Node[I, P]
	for _, node = range n.Nodes {
		if node.PointIs(point) {
			return node, true
		}
	}

	return core.Node[I, P]{}, false
}
