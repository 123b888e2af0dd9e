package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/collision"
	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/cube"
	"github.com/lixenwraith/cubeworld/item"
	"github.com/lixenwraith/cubeworld/world"
)

// floorSamples are in-cell offsets, in cell widths, splatted for each floor cell
var floorSamples = [][2]float64{{0, 0}, {-0.25, -0.25}, {0.25, -0.25}, {-0.25, 0.25}, {0.25, 0.25}}

// itemLift raises items off the floor toward the centre
const itemLift = 1.0

// itemSize is the longest extent of a drawn item model
const itemSize = 1.5

// drawScene splats floor, walls and items of the rotated world as seen from
// the eye into the top height rows of the buffer
func drawScene(b *Buffer, s world.Snapshot, height int) {
	width, _ := b.Bounds()
	if width == 0 || height <= 0 {
		return
	}
	cam := NewCamera(s.Eye, s.View.Look(), width, height)
	g := s.Grid

	plot := func(local mgl64.Vec3, r rune, style tcell.Style) {
		x, y, d, ok := cam.Project(s.Frame.TransformPoint(local))
		if ok && y < height {
			b.Plot(x, y, d, r, style)
		}
	}

	floor := tcell.StyleDefault.Foreground(constant.ColorFloor).Background(constant.ColorSky)
	n := float64(g.N())
	g.Each(func(f cube.Face, row, col int, st cube.CellState) {
		if st == cube.Wall {
			return
		}
		u, v := cube.CellUV(g.N(), row, col)
		for _, o := range floorSamples {
			plot(cube.ToSpherePoint(f, u+o[0]/n, v+o[1]/n, g.Radius()), constant.GlyphFloor, floor)
		}
	})

	drawWalls(s, plot)
	drawItems(s, plot)
}

// drawWalls samples each wall probe column from the floor up to the wall top
func drawWalls(s world.Snapshot, plot func(mgl64.Vec3, rune, tcell.Style)) {
	g := s.Grid
	top := tcell.StyleDefault.Foreground(constant.ColorWallTop).Background(constant.ColorSky)
	side := tcell.StyleDefault.Foreground(constant.ColorWallSide).Background(constant.ColorSky)
	levels := []float64{g.Radius(), collision.ProbeRadius(g), g.InnerRadius()}

	for _, p := range collision.Probes(g, s.Smart) {
		dir := p.Point.Normalize()
		for i, r := range levels {
			if i == len(levels)-1 {
				plot(dir.Mul(r), constant.GlyphWallTop, top)
			} else {
				plot(dir.Mul(r), constant.GlyphWallSide, side)
			}
		}
	}
}

// drawItems draws each active item at its cell, with its model vertices
// around it when a model is present
func drawItems(s world.Snapshot, plot func(mgl64.Vec3, rune, tcell.Style)) {
	g := s.Grid
	style := tcell.StyleDefault.Foreground(constant.ColorItem).Background(constant.ColorSky)
	scale := 0.0
	if s.Model != nil && !s.Model.Empty() {
		scale = s.Model.FitScale(itemSize)
	}

	for _, it := range s.Items {
		if !it.Active {
			continue
		}
		base := item.Position(g, it)
		centre := base.Normalize().Mul(g.Radius() - itemLift)
		plot(centre, constant.GlyphItem, style)
		if scale == 0 {
			continue
		}
		for _, v := range s.Model.Vertices {
			plot(centre.Add(v.Mul(scale)), constant.GlyphItem, style)
		}
	}
}
