// Package builder: topology constructors over core nodes and net collections.
//
// Each constructor validates its parameters, assembles one node per input
// point with both endpoints of every edge populated, and returns the
// finished net. Construction errors from core are wrapped with the
// constructor name; callers branch with errors.Is against the sentinels.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/net"
)

// Sentinel errors for builder constructors.
var (
	// ErrTooFewPoints indicates a constructor received fewer points than
	// its topology requires.
	ErrTooFewPoints = errors.New("builder: too few points")

	// ErrDuplicatePoint indicates two input points share an identifier.
	ErrDuplicatePoint = errors.New("builder: duplicate point identifier")

	// ErrLetterCount indicates Letters was asked for fewer than 1 or more
	// than 26 points.
	ErrLetterCount = errors.New("builder: letter count out of range")
)

// Topology minima; each constructor below names its own.
const (
	minLinePoints = 2
	minRingPoints = 3
	minMeshPoints = 2
	minStarLeaves = 1

	letterAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Letter is a ready-made point with a single-letter string identifier,
// produced by Letters.
type Letter struct {
	Name string
}

// ID returns the letter itself.
func (l Letter) ID() string { return l.Name }

// Letters returns n points identified "A" through the n-th letter,
// in alphabet order.
//
// Errors: ErrLetterCount unless 1 ≤ n ≤ 26.
// Complexity: O(n)
func Letters(n int) ([]Letter, error) {
	if n < 1 || n > len(letterAlphabet) {
		return nil, fmt.Errorf("Letters: n=%d: %w", n, ErrLetterCount)
	}

	out := make([]Letter, n)
	for i := 0; i < n; i++ {
		out[i] = Letter{Name: letterAlphabet[i : i+1]}
	}

	return out, nil
}

// Line builds the open chain p0-p1-…-pn: every interior point connects to
// both neighbors, the endpoints to one.
//
// Errors: ErrTooFewPoints (n < 2), ErrDuplicatePoint, wrapped core errors.
// Complexity: O(n²) due to per-node duplicate scans; n is fixture-sized.
func Line[I comparable, P core.Point[I]](points ...P) (net.Net[I, P], error) {
	if len(points) < minLinePoints {
		return net.Net[I, P]{}, fmt.Errorf("Line: %d point(s): %w", len(points), ErrTooFewPoints)
	}
	if err := distinct[I](points); err != nil {
		return net.Net[I, P]{}, fmt.Errorf("Line: %w", err)
	}

	nodes := make([]core.Node[I, P], 0, len(points))
	var i int
	for i = range points {
		var neighbors []P
		if i > 0 {
			neighbors = append(neighbors, points[i-1])
		}
		if i < len(points)-1 {
			neighbors = append(neighbors, points[i+1])
		}

		n, err := buildNode[I](points[i], neighbors)
		if err != nil {
			return net.Net[I, P]{}, fmt.Errorf("Line: %w", err)
		}
		nodes = append(nodes, n)
	}

	return net.New(nodes...), nil
}

// Ring builds the closed loop p0-p1-…-pn-p0.
//
// Errors: ErrTooFewPoints (n < 3), ErrDuplicatePoint, wrapped core errors.
// Complexity: O(n²)
func Ring[I comparable, P core.Point[I]](points ...P) (net.Net[I, P], error) {
	if len(points) < minRingPoints {
		return net.Net[I, P]{}, fmt.Errorf("Ring: %d point(s): %w", len(points), ErrTooFewPoints)
	}
	if err := distinct[I](points); err != nil {
		return net.Net[I, P]{}, fmt.Errorf("Ring: %w", err)
	}

	nodes := make([]core.Node[I, P], 0, len(points))
	var i int
	for i = range points {
		prev := points[(i+len(points)-1)%len(points)]
		next := points[(i+1)%len(points)]

		n, err := buildNode[I](points[i], []P{prev, next})
		if err != nil {
			return net.Net[I, P]{}, fmt.Errorf("Ring: %w", err)
		}
		nodes = append(nodes, n)
	}

	return net.New(nodes...), nil
}

// Star builds a hub-and-spokes net: center connects to every leaf, each
// leaf connects back to center only.
//
// Errors: ErrTooFewPoints (no leaves), ErrDuplicatePoint (among all points
// including the center), wrapped core errors.
// Complexity: O(n²)
func Star[I comparable, P core.Point[I]](center P, leaves ...P) (net.Net[I, P], error) {
	if len(leaves) < minStarLeaves {
		return net.Net[I, P]{}, fmt.Errorf("Star: no leaves: %w", ErrTooFewPoints)
	}
	all := append([]P{center}, leaves...)
	if err := distinct[I](all); err != nil {
		return net.Net[I, P]{}, fmt.Errorf("Star: %w", err)
	}

	hub, err := buildNode[I](center, leaves)
	if err != nil {
		return net.Net[I, P]{}, fmt.Errorf("Star: %w", err)
	}

	nodes := make([]core.Node[I, P], 0, len(leaves)+1)
	nodes = append(nodes, hub)
	var leaf P
	for _, leaf = range leaves {
		n, err := buildNode[I](leaf, []P{center})
		if err != nil {
			return net.Net[I, P]{}, fmt.Errorf("Star: %w", err)
		}
		nodes = append(nodes, n)
	}

	return net.New(nodes...), nil
}

// Mesh builds the complete net: every point connects to every other point.
// Path enumeration over a mesh is the worst case the engine documents, so
// this doubles as the blow-up fixture for benchmarks.
//
// Errors: ErrTooFewPoints (n < 2), ErrDuplicatePoint, wrapped core errors.
// Complexity: O(n³) construction (n nodes × n connections × dedup scan).
func Mesh[I comparable, P core.Point[I]](points ...P) (net.Net[I, P], error) {
	if len(points) < minMeshPoints {
		return net.Net[I, P]{}, fmt.Errorf("Mesh: %d point(s): %w", len(points), ErrTooFewPoints)
	}
	if err := distinct[I](points); err != nil {
		return net.Net[I, P]{}, fmt.Errorf("Mesh: %w", err)
	}

	nodes := make([]core.Node[I, P], 0, len(points))
	var i, j int
	for i = range points {
		neighbors := make([]P, 0, len(points)-1)
		for j = range points {
			if j != i {
				neighbors = append(neighbors, points[j])
			}
		}

		n, err := buildNode[I](points[i], neighbors)
		if err != nil {
			return net.Net[I, P]{}, fmt.Errorf("Mesh: %w", err)
		}
		nodes = append(nodes, n)
	}

	return net.New(nodes...), nil
}

// buildNode assembles one node through the validating core builder.
func buildNode[I comparable, P core.Point[I]](subject P, neighbors []P) (core.Node[I, P], error) {
	n, err := core.NewNodeBuilder[I, P]().
		SetPoint(subject).
		AddConnections(neighbors...).
		Build()
	if err != nil {
		return core.Node[I, P]{}, fmt.Errorf("node %v: %w", subject.ID(), err)
	}

	return n, nil
}

// distinct rejects inputs with repeated identifiers so constructors never
// silently collapse two points into one node.
func distinct[I comparable, P core.Point[I]](points []P) error {
	seen := make(map[I]struct{}, len(points))
	var p P
	for _, p = range points {
		if _, dup := seen[p.ID()]; dup {
			return fmt.Errorf("point %v: %w", p.ID(), ErrDuplicatePoint)
		}
		seen[p.ID()] = struct{}{}
	}

	return nil
}
