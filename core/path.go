// This file declares Path and PathBuilder.
//
// A Path under search is never shared between branches: the engine clones
// it before every push, so Push mutates exclusively-owned state only.
package core

import (
	"fmt"
	"strings"
)

// PathSeparator joins point identifiers when a Path is rendered.
const PathSeparator = "-"

// Path is an ordered, growable sequence of points representing one route
// from a start point toward a destination. It exclusively owns its point
// copies; Clone produces an independent snapshot for branching.
type Path[I comparable, P Point[I]] struct {
	points []P
}

// Push appends p to the end of the path.
//
// Push is mutation on exclusively-owned state: the search engine only ever
// pushes onto a fresh Clone, never onto a path another branch can still see.
// Complexity: O(1) amortized.
func (p *Path[I, P]) Push(pt P) {
	p.points = append(p.points, pt)
}

// Contains reports whether pt already occurs anywhere in the path
// (identifier comparison).
// Complexity: O(L)
func (p Path[I, P]) Contains(pt P) bool {
	var v P
	for _, v = range p.points {
		if v.ID() == pt.ID() {
			return true
		}
	}

	return false
}

// EndsWith reports whether the last point of the path is pt.
// An empty path ends with nothing.
// Complexity: O(1)
func (p Path[I, P]) EndsWith(pt P) bool {
	if len(p.points) == 0 {
		return false
	}

	return p.points[len(p.points)-1].ID() == pt.ID()
}

// Points returns a copy of the path's points in order.
// Complexity: O(L)
func (p Path[I, P]) Points() []P {
	out := make([]P, len(p.points))
	copy(out, p.points)

	return out
}

// Len returns the number of points in the path.
func (p Path[I, P]) Len() int {
	return len(p.points)
}

// Clone returns an independent copy of the path. Sibling search branches
// each extend their own clone, so no branch observes another's pushes.
// Complexity: O(L)
func (p Path[I, P]) Clone() Path[I, P] {
	points := make([]P, len(p.points))
	copy(points, p.points)

	return Path[I, P]{points: points}
}

// String renders the path as its point identifiers joined by PathSeparator,
// in path order: "A-B-C". Intended for diagnostics and tests, not logic.
// Complexity: O(L)
func (p Path[I, P]) String() string {
	ids := make([]string, len(p.points))
	var i int
	var v P
	for i, v = range p.points {
		ids[i] = fmt.Sprintf("%v", v.ID())
	}

	return strings.Join(ids, PathSeparator)
}

// PathBuilder accumulates points one at a time or in batches, then
// validates them into a Path. The builder is mutable and single-use;
// it is not safe for concurrent use.
type PathBuilder[I comparable, P Point[I]] struct {
	points []P
}

// NewPathBuilder returns an empty PathBuilder.
// Complexity: O(1)
func NewPathBuilder[I comparable, P Point[I]]() *PathBuilder[I, P] {
	return &PathBuilder[I, P]{}
}

// AddPoint appends a single point in call order.
func (b *PathBuilder[I, P]) AddPoint(p P) *PathBuilder[I, P] {
	b.points = append(b.points, p)

	return b
}

// AddPoints appends each point in call order.
func (b *PathBuilder[I, P]) AddPoints(points ...P) *PathBuilder[I, P] {
	b.points = append(b.points, points...)

	return b
}

// Build validates the accumulated points and returns the Path.
//
// Errors:
//   - ErrEmptyPath if no point was ever added; a path must start somewhere.
//
// Complexity: O(L)
func (b *PathBuilder[I, P]) Build() (Path[I, P], error) {
	if len(b.points) == 0 {
		return Path[I, P]{}, ErrEmptyPath
	}

	points := make([]P, len(b.points))
	copy(points, b.points)

	return Path[I, P]{points: points}, nil
}
