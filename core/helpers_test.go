package core_test

import "github.com/katalvlaran/netpath/core"

// country is a domain point keyed by its name, the kind of caller-supplied
// value type the Point contract is meant for.
type country struct {
	name string
}

func (c country) ID() string { return c.name }

// letter is a minimal point with a single-letter identifier, convenient
// for rendering assertions ("A-B-C").
type letter struct {
	id string
}

func (l letter) ID() string { return l.id }

// mustNode builds a node from a subject and its neighbors, failing the
// fixture loudly on builder errors.
func mustNode(subject letter, neighbors ...letter) core.Node[string, letter] {
	n, err := core.NewNodeBuilder[string, letter]().
		SetPoint(subject).
		AddConnections(neighbors...).
		Build()
	if err != nil {
		panic(err)
	}

	return n
}

// mustPath builds a path through the given letters in order.
func mustPath(points ...letter) core.Path[string, letter] {
	p, err := core.NewPathBuilder[string, letter]().
		AddPoints(points...).
		Build()
	if err != nil {
		panic(err)
	}

	return p
}
