package cube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		radius, depth float64
		wantErr       error
	}{
		{"valid", 10, 40, 3, nil},
		{"zero resolution", 0, 40, 3, ErrInvalidResolution},
		{"zero radius", 10, 0, 0, ErrInvalidGeometry},
		{"depth reaches center", 10, 40, 40, ErrInvalidGeometry},
		{"negative depth", 10, 40, -1, ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.n, tt.radius, tt.depth)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n*tt.n*int(FaceCount), g.Count(Empty))
		})
	}
}

func TestCellAtInvalidFace(t *testing.T) {
	g, err := NewGrid(4, 10, 1)
	require.NoError(t, err)

	_, err = g.CellAt(FaceCount, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidFace)
	assert.ErrorIs(t, g.Set(Face(9), 0, 0, Wall), ErrInvalidFace)
	assert.Equal(t, Wall, g.Neighbor(Face(9), 0, 0))
}

func TestSetAndCellAt(t *testing.T) {
	g, err := NewGrid(5, 10, 1)
	require.NoError(t, err)

	require.NoError(t, g.Set(Top, 2, 3, Item))
	s, err := g.CellAt(Top, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Item, s)

	assert.Error(t, g.Set(Top, 5, 0, Wall))
	assert.Equal(t, 1, g.Count(Item))
}

func TestCornerClampsOnSameFace(t *testing.T) {
	const n = 5
	g, err := NewGrid(n, 10, 1)
	require.NoError(t, err)

	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{-1, -1, 0, 0},
		{-1, n, 0, n - 1},
		{n, -1, n - 1, 0},
		{n, n, n - 1, n - 1},
	}
	for _, tt := range tests {
		f, r, c := g.Resolve(Left, tt.row, tt.col)
		assert.Equal(t, Left, f)
		assert.Equal(t, tt.wantRow, r)
		assert.Equal(t, tt.wantCol, c)
	}
}

func TestResolveClampsAlongEdge(t *testing.T) {
	g, err := NewGrid(4, 10, 1)
	require.NoError(t, err)

	// Two steps off the grid still lands on the adjacent face's boundary
	f, r, c := g.Resolve(Front, 1, -3)
	assert.Equal(t, Left, f)
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(3, 10, 1)
	require.NoError(t, err)
	c := g.Clone()

	require.NoError(t, c.Set(Back, 1, 1, Wall))
	assert.Equal(t, Empty, g.Neighbor(Back, 1, 1))
	assert.Equal(t, Wall, c.Neighbor(Back, 1, 1))
}

func TestToSpherePointOnSphere(t *testing.T) {
	for _, f := range Faces {
		for _, uv := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 0.3}, {0.25, 1}} {
			p := ToSpherePoint(f, uv[0], uv[1], 37)
			assert.InDelta(t, 37, p.Len(), 1e-9)
		}
		center := ToSpherePoint(f, 0.5, 0.5, 1)
		assert.True(t, center.ApproxEqual(Axis(f)), "face %s center %v", f, center)
	}
}

func TestFromSpherePointInverts(t *testing.T) {
	for _, f := range Faces {
		for _, uv := range [][2]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.2}, {0.33, 0.77}} {
			p := ToSpherePoint(f, uv[0], uv[1], 12)
			gf, u, v, ok := FromSpherePoint(p)
			require.True(t, ok)
			assert.Equal(t, f, gf)
			assert.InDelta(t, uv[0], u, 1e-9)
			assert.InDelta(t, uv[1], v, 1e-9)
		}
	}

	_, _, _, ok := FromSpherePoint(mgl64.Vec3{})
	assert.False(t, ok)
}

func TestCellOf(t *testing.T) {
	g, err := NewGrid(10, 40, 3)
	require.NoError(t, err)

	g.Each(func(f Face, row, col int, _ CellState) {
		p := g.CellPoint(f, row, col, g.InnerRadius())
		cf, cr, cc, ok := g.CellOf(p)
		require.True(t, ok)
		assert.Equal(t, Cell{f, row, col}, Cell{cf, cr, cc})
	})
}

func TestParseFace(t *testing.T) {
	for _, f := range Faces {
		got, err := ParseFace(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFace("side")
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestCellsAndWalls(t *testing.T) {
	g, err := NewGrid(3, 10, 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(Top, 0, 2, Wall))
	require.NoError(t, g.Set(Front, 1, 1, Wall))
	require.NoError(t, g.Set(Back, 2, 0, Item))

	// Storage order follows Faces: Front before Top
	assert.Equal(t, []Cell{{Front, 1, 1}, {Top, 0, 2}}, g.Walls())
	assert.Equal(t, []Cell{{Back, 2, 0}}, g.Cells(Item))
}

func TestWallRevisionTracksWallChanges(t *testing.T) {
	g, err := NewGrid(3, 10, 1)
	require.NoError(t, err)
	r0 := g.WallRevision()

	require.NoError(t, g.Set(Top, 0, 0, Item))
	assert.Equal(t, r0, g.WallRevision(), "non-wall edits keep the revision")

	require.NoError(t, g.Set(Top, 0, 0, Wall))
	r1 := g.WallRevision()
	assert.NotEqual(t, r0, r1)

	require.NoError(t, g.Set(Top, 0, 0, Wall))
	assert.Equal(t, r1, g.WallRevision(), "rewriting a wall is not a change")

	g.Fill(Top, Empty)
	assert.NotEqual(t, r1, g.WallRevision())
}
