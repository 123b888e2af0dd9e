package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cubeworld/constant"
	"github.com/lixenwraith/cubeworld/item"
	"github.com/lixenwraith/cubeworld/parameter"
	"github.com/lixenwraith/cubeworld/world"
)

// overview is the outside view panel: the observer's hemisphere projected
// onto the X/Z plane, -Z up and +X right, with the view frustum
type overview struct {
	b      *Buffer
	cx, cy int
	sx, sy float64 // Cells per world unit
	style  tcell.Style
}

// cell maps a world point onto the panel
func (o overview) cell(p mgl64.Vec3) (x, y int) {
	return o.cx + int(math.Round(p[0]*o.sx)), o.cy + int(math.Round(p[2]*o.sy))
}

func (o overview) plot(p mgl64.Vec3, r rune, fg tcell.Color) {
	x, y := o.cell(p)
	if x < 0 || x >= parameter.OverviewCols || y < 0 || y >= parameter.OverviewRows {
		return
	}
	o.b.Set(x, y, r, o.style.Foreground(fg))
}

// horizontalHalfFOV is half the horizontal view angle of the main camera
func horizontalHalfFOV(width, viewHeight int) float64 {
	aspect := 1.0
	if viewHeight > 0 {
		aspect = float64(width) / (float64(viewHeight) * parameter.CellAspect)
	}
	return math.Atan(math.Tan(mgl64.DegToRad(parameter.FieldOfView)/2) * aspect)
}

// drawOverview draws the panel in the top left corner. It is skipped when
// the buffer cannot hold it beside the view.
func drawOverview(b *Buffer, s world.Snapshot, viewHeight int) {
	width, _ := b.Bounds()
	if parameter.OverviewCols > width/3 || parameter.OverviewRows > viewHeight {
		return
	}

	g := s.Grid
	r := g.Radius()
	o := overview{
		b:     b,
		cx:    parameter.OverviewCols / 2,
		cy:    parameter.OverviewRows / 2,
		sx:    float64(parameter.OverviewCols/2-1) / r,
		sy:    float64(parameter.OverviewRows/2-1) / r,
		style: tcell.StyleDefault.Background(constant.ColorMinimapBg),
	}
	for y := 0; y < parameter.OverviewRows; y++ {
		for x := 0; x < parameter.OverviewCols; x++ {
			b.Set(x, y, ' ', o.style)
		}
	}

	for a := 0; a < 64; a++ {
		t := 2 * math.Pi * float64(a) / 64
		o.plot(mgl64.Vec3{r * math.Cos(t), 0, r * math.Sin(t)}, constant.GlyphOverviewRim, constant.ColorFloor)
	}

	for _, c := range g.Walls() {
		p := s.Frame.TransformPoint(g.CellPoint(c.Face, c.Row, c.Col, g.Radius()))
		if p[1] < 0 {
			o.plot(p, constant.GlyphOverviewWall, constant.ColorWallSide)
		}
	}
	for _, it := range s.Items {
		if !it.Active {
			continue
		}
		if p := s.Frame.TransformPoint(item.Position(g, it)); p[1] < 0 {
			o.plot(p, constant.GlyphOverviewItem, constant.ColorItem)
		}
	}

	drawFrustum(o, s, r, horizontalHalfFOV(width, viewHeight))
	o.plot(s.Anchor, constant.GlyphObserver, constant.ColorObserver)
}

// drawFrustum traces the two horizontal edges of the view from the anchor
// out to the sphere
func drawFrustum(o overview, s world.Snapshot, r, half float64) {
	for _, side := range []float64{-half, half} {
		yaw := s.View.Yaw + side
		dir := mgl64.Vec3{math.Sin(yaw), 0, -math.Cos(yaw)}
		for k := 1; k <= 2*parameter.OverviewCols; k++ {
			d := r * float64(k) / float64(2*parameter.OverviewCols)
			o.plot(s.Anchor.Add(dir.Mul(d)), constant.GlyphFrustum, constant.ColorFrustum)
		}
	}
}
