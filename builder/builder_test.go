package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/builder"
	"github.com/katalvlaran/netpath/core"
	"github.com/katalvlaran/netpath/net"
)

func letters(t *testing.T, n int) []builder.Letter {
	t.Helper()

	pts, err := builder.Letters(n)
	require.NoError(t, err)

	return pts
}

// rendered returns found paths as sorted display strings.
func rendered(paths []core.Path[string, builder.Letter]) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	sort.Strings(out)

	return out
}

func TestLetters(t *testing.T) {
	pts := letters(t, 3)

	require.Len(t, pts, 3)
	assert.Equal(t, "A", pts[0].ID())
	assert.Equal(t, "B", pts[1].ID())
	assert.Equal(t, "C", pts[2].ID())
}

func TestLetters_OutOfRange(t *testing.T) {
	_, err := builder.Letters(0)
	assert.ErrorIs(t, err, builder.ErrLetterCount)

	_, err = builder.Letters(27)
	assert.ErrorIs(t, err, builder.ErrLetterCount)
}

func TestLine_TooFewPoints(t *testing.T) {
	_, err := builder.Line[string](builder.Letter{Name: "A"})

	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
}

func TestLine_DuplicatePoint(t *testing.T) {
	a := builder.Letter{Name: "A"}

	_, err := builder.Line[string](a, builder.Letter{Name: "B"}, a)

	assert.ErrorIs(t, err, builder.ErrDuplicatePoint)
}

func TestLine_EndToEnd(t *testing.T) {
	pts := letters(t, 4)
	web, err := builder.Line[string](pts...)
	require.NoError(t, err)

	paths, err := web.FindPaths(pts[0], pts[3])
	require.NoError(t, err)

	assert.Equal(t, []string{"A-B-C-D"}, rendered(paths))
}

func TestLine_IsBidirectional(t *testing.T) {
	pts := letters(t, 3)
	web, err := builder.Line[string](pts...)
	require.NoError(t, err)

	back, err := web.FindPaths(pts[2], pts[0])
	require.NoError(t, err)

	assert.Equal(t, []string{"C-B-A"}, rendered(back))
}

func TestRing_TwoRoutesBetweenAnyPair(t *testing.T) {
	pts := letters(t, 4)
	web, err := builder.Ring[string](pts...)
	require.NoError(t, err)

	paths, err := web.FindPaths(pts[0], pts[2])
	require.NoError(t, err)

	assert.Equal(t, []string{"A-B-C", "A-D-C"}, rendered(paths))
}

func TestRing_TooFewPoints(t *testing.T) {
	pts := letters(t, 2)

	_, err := builder.Ring[string](pts...)

	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
}

func TestStar_LeafToLeafGoesThroughCenter(t *testing.T) {
	pts := letters(t, 4)
	web, err := builder.Star[string](pts[0], pts[1:]...)
	require.NoError(t, err)

	paths, err := web.FindPaths(pts[1], pts[3])
	require.NoError(t, err)

	assert.Equal(t, []string{"B-A-D"}, rendered(paths))
}

func TestStar_NoLeaves(t *testing.T) {
	_, err := builder.Star[string](builder.Letter{Name: "A"})

	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
}

func TestStar_DuplicateCenter(t *testing.T) {
	a := builder.Letter{Name: "A"}

	_, err := builder.Star[string](a, builder.Letter{Name: "B"}, a)

	assert.ErrorIs(t, err, builder.ErrDuplicatePoint)
}

func TestMesh_EnumeratesAllSimplePaths(t *testing.T) {
	pts := letters(t, 4)
	web, err := builder.Mesh[string](pts...)
	require.NoError(t, err)

	paths, err := web.FindPaths(pts[0], pts[2])
	require.NoError(t, err)

	// K4 has five simple A→C paths: direct, two 2-hop, two 3-hop.
	assert.Equal(t,
		[]string{"A-B-C", "A-B-D-C", "A-C", "A-D-B-C", "A-D-C"},
		rendered(paths))
}

func TestMesh_NodeCount(t *testing.T) {
	pts := letters(t, 5)
	web, err := builder.Mesh[string](pts...)
	require.NoError(t, err)

	require.Len(t, web.Nodes, 5)
	for _, n := range web.Nodes {
		assert.Len(t, n.Connections(), 4)
	}
}

func TestConstructors_SymmetricEdges(t *testing.T) {
	pts := letters(t, 5)

	nets := map[string]net.Net[string, builder.Letter]{}

	line, err := builder.Line[string](pts...)
	require.NoError(t, err)
	nets["line"] = line

	ring, err := builder.Ring[string](pts...)
	require.NoError(t, err)
	nets["ring"] = ring

	star, err := builder.Star[string](pts[0], pts[1:]...)
	require.NoError(t, err)
	nets["star"] = star

	mesh, err := builder.Mesh[string](pts...)
	require.NoError(t, err)
	nets["mesh"] = mesh

	for name, web := range nets {
		for _, n := range web.Nodes {
			for _, c := range n.Connections() {
				other, ok := findNode(web, c.Target())
				require.True(t, ok, "%s: connection target %s has no node", name, c.Target().ID())
				assert.True(t, other.IsConnectedTo(n.Point()),
					"%s: edge %s-%s not mirrored", name, n.Point().ID(), c.Target().ID())
			}
		}
	}
}

func findNode(web net.Net[string, builder.Letter], p builder.Letter) (core.Node[string, builder.Letter], bool) {
	for _, n := range web.Nodes {
		if n.PointIs(p) {
			return n, true
		}
	}

	return core.Node[string, builder.Letter]{}, false
}
