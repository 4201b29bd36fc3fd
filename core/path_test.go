package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/core"
)

func TestPathBuilder_Empty(t *testing.T) {
	_, err := core.NewPathBuilder[string, letter]().Build()

	assert.ErrorIs(t, err, core.ErrEmptyPath)
}

func TestPathBuilder_OneByOne(t *testing.T) {
	path, err := core.NewPathBuilder[string, letter]().
		AddPoint(letter{"A"}).
		AddPoint(letter{"B"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "A-B", path.String())
}

func TestPathBuilder_Batch(t *testing.T) {
	path, err := core.NewPathBuilder[string, letter]().
		AddPoints(letter{"A"}, letter{"B"}, letter{"C"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "A-B-C", path.String())
}

func TestPath_Contains(t *testing.T) {
	path := mustPath(letter{"A"}, letter{"B"})

	assert.True(t, path.Contains(letter{"A"}))
	assert.True(t, path.Contains(letter{"B"}))
	assert.False(t, path.Contains(letter{"C"}))
}

func TestPath_EndsWith(t *testing.T) {
	path := mustPath(letter{"A"}, letter{"B"})

	assert.True(t, path.EndsWith(letter{"B"}))
	assert.False(t, path.EndsWith(letter{"A"}))
}

func TestPath_EndsWith_Empty(t *testing.T) {
	var path core.Path[string, letter]

	assert.False(t, path.EndsWith(letter{"A"}))
}

func TestPath_Push(t *testing.T) {
	path := mustPath(letter{"A"})
	path.Push(letter{"B"})

	assert.Equal(t, "A-B", path.String())
	assert.True(t, path.EndsWith(letter{"B"}))
}

func TestPath_CloneIsIndependent(t *testing.T) {
	original := mustPath(letter{"A"}, letter{"B"})
	branch := original.Clone()
	branch.Push(letter{"C"})

	assert.Equal(t, "A-B", original.String(), "pushing onto a clone must not leak into the original")
	assert.Equal(t, "A-B-C", branch.String())
	assert.Equal(t, 2, original.Len())
	assert.Equal(t, 3, branch.Len())
}

func TestPath_Points_CopyNotAlias(t *testing.T) {
	path := mustPath(letter{"A"}, letter{"B"})
	points := path.Points()
	points[0] = letter{"Z"}

	assert.True(t, path.Contains(letter{"A"}))
	assert.False(t, path.Contains(letter{"Z"}))
}

func TestPath_RenderWithNumericIdentifiers(t *testing.T) {
	path, err := core.NewPathBuilder[int, numbered]().
		AddPoints(numbered{8}, numbered{5}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "8-5", path.String())
}

// numbered is a point keyed by an integer identifier.
type numbered struct {
	n int
}

func (n numbered) ID() int { return n.n }
