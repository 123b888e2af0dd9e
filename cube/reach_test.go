package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachableCoversOpenSphere(t *testing.T) {
	g, err := NewGrid(4, 10, 1)
	require.NoError(t, err)

	got := Reachable(g, Cell{Bottom, 0, 0})
	assert.Equal(t, 6*4*4, got.Size())
}

func TestReachableStopsAtWalls(t *testing.T) {
	const n = 5
	g, err := NewGrid(n, 10, 1)
	require.NoError(t, err)

	// Seal Front off by walling its whole border ring
	for i := 0; i < n; i++ {
		require.NoError(t, g.Set(Front, 0, i, Wall))
		require.NoError(t, g.Set(Front, n-1, i, Wall))
		require.NoError(t, g.Set(Front, i, 0, Wall))
		require.NoError(t, g.Set(Front, i, n-1, Wall))
	}

	inside := Reachable(g, Cell{Front, 2, 2})
	assert.Equal(t, (n-2)*(n-2), inside.Size())

	outside := Reachable(g, Cell{Back, 2, 2})
	assert.Equal(t, 5*n*n, outside.Size())
	assert.False(t, outside.Has(Cell{Front, 2, 2}))

	assert.Equal(t, 0, Reachable(g, Cell{Front, 0, 0}).Size())
}

func TestReachableCrossesSeam(t *testing.T) {
	const n = 3
	g, err := NewGrid(n, 10, 1)
	require.NoError(t, err)
	for _, f := range Faces {
		g.Fill(f, Wall)
	}
	// Corridor: Top middle column, across the north seam onto Front
	require.NoError(t, g.Set(Top, 0, 1, Empty))
	require.NoError(t, g.Set(Top, 1, 1, Empty))
	require.NoError(t, g.Set(Front, n-1, 1, Empty))

	got := Reachable(g, Cell{Top, 1, 1})
	assert.Equal(t, 3, got.Size())
	assert.True(t, got.Has(Cell{Front, n - 1, 1}))
}

func TestFarthest(t *testing.T) {
	g, err := NewGrid(5, 10, 1)
	require.NoError(t, err)

	far, ok := Farthest(g, Cell{Right, 0, 0})
	require.True(t, ok)
	assert.Equal(t, Cell{Right, 4, 4}, far)

	require.NoError(t, g.Set(Right, 0, 0, Wall))
	_, ok = Farthest(g, Cell{Right, 0, 0})
	assert.False(t, ok)
}
